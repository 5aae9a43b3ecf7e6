// This file is part of spipwm.
//
// spipwm is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// spipwm is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with spipwm.  If not, see <https://www.gnu.org/licenses/>.


// Package digest is used to create fingerprints of the output of a
// peripheral. The fingerprint of a run can be compared with the fingerprint
// of a previous run to check that behaviour has not changed.
//
// Digests are chained. Each new block of data is hashed together with the
// digest of the previous block, so the final digest depends on the entire
// history of the output and not just the most recent block.
package digest

// Digest implementations compute a hash of a stream of data.
type Digest interface {
	Hash() string
	ResetDigest()
}

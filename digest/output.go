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


package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/hardware/pins"
)

// the number of ticks in each block of the output stream.
const blockTicks = 256

// the length of the buffer required for a block and the chained digest value
// at the head of the buffer.
const outputBufferLength = sha1.Size + blockTicks*2

// Output is a digest of the stream of output vectors. It is updated once per
// tick with the Tick() function.
type Output struct {
	digest   [sha1.Size]byte
	buffer   []byte
	bufferCt int
	ticks    uint64
}

// NewOutput is the preferred method of initialisation for the Output type.
func NewOutput() *Output {
	dig := &Output{}
	dig.buffer = make([]byte, outputBufferLength)
	dig.bufferCt = sha1.Size
	return dig
}

func (dig *Output) String() string {
	return fmt.Sprintf("%d ticks: %s", dig.ticks, dig.Hash())
}

// Hash implements the digest.Digest interface. Outputs added since the most
// recent flush are not part of the hash.
func (dig *Output) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Output) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.bufferCt = sha1.Size
	dig.ticks = 0
}

// Ticks returns the number of outputs added since the digest was reset.
func (dig *Output) Ticks() uint64 {
	return dig.ticks
}

// Tick adds the output vector for a single tick to the digest.
func (dig *Output) Tick(o pins.Output) error {
	dig.buffer[dig.bufferCt] = byte(o)
	dig.buffer[dig.bufferCt+1] = byte(o >> 8)
	dig.bufferCt += 2
	dig.ticks++

	if dig.bufferCt >= outputBufferLength {
		return dig.Flush()
	}

	return nil
}

// Flush outputs that have not yet been added to the hash.
func (dig *Output) Flush() error {
	if dig.bufferCt == sha1.Size {
		return nil
	}

	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the buffer
	n := copy(dig.buffer, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: error while flushing output stream")
	}
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	dig.bufferCt = sha1.Size

	return nil
}

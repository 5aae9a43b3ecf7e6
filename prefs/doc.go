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

// Package prefs holds typed preference values. Values can be stored on disk,
// one "key :: value" pair per line, and overridden from the command line
// through the command line stack:
//
//	prefs.PushCommandLineStack("stimulus.halfperiod::10; stimulus.settle::20")
//
// Values on the stack are consumed by Disk.Load() and take precedence over
// what is found on disk.
package prefs

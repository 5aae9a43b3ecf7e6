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


// Package monitor is a live view of a running peripheral in a terminal. The
// terminal is put into cbreak mode so that single key presses can control
// the peripheral:
//
//	q		quit
//	r		reset the peripheral
//	space	pause and resume
//
// The view shows the register file, the state of the decoder and the level of
// each of the sixteen output channels.
package monitor

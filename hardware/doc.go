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

// Package hardware is the base package for the peripheral model. The
// Peripheral type is the main container for the emulated components:
//
//	Synchroniser -> Decoder -> Registers -> Generator -> Output
//
// Every call to Step() advances the system clock by one tick. Each component
// computes its next state from the state of the other components as it was at
// the start of the tick. This is achieved by stepping the components in
// reader-before-writer order: the waveform generator reads the register file
// before the decoder has the chance to commit to it, and the decoder reads
// the synchroniser before the synchroniser samples the new pin levels.
//
// The sub-packages can be used on their own but most code will want to use
// the Peripheral type.
package hardware

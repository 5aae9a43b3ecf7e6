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


// Package macro implements a simple language for describing a sequence of
// transactions on the serial link. A macro is run into a stimulus.Master,
// which will then produce the pin levels for every tick of the peripheral.
//
// The first line of a macro file must be the header:
//
//	spipwmmacro
//
// The instructions are:
//
//	WRITE address data
//	READ address data
//	ABORT address data bits
//	BITS value count
//	WAIT [ticks]
//	RESET [ticks]
//
// An address can be a number or the name of a register (OUTEN_LO, OUTEN_HI,
// PWMEN_LO, PWMEN_HI, DUTY). Numbers are decimal or hexadecimal with either
// the 0x or $ prefix.
//
// READ sends a frame with the write flag clear. The peripheral will ignore
// it but it is useful for checking that it does so.
//
// ABORT sends only the specified number of bits of a write frame before
// releasing chip select.
//
// BITS sends count bits of value, most significant bit first, regardless of
// the frame layout. It can be used to send frames that are too long.
//
// The WAIT instruction holds the lines idle for the specified number of ticks.
// If no value is given the number of ticks defaults to one period of the PWM
// waveform. RESET asserts the reset line for the specified number of ticks,
// defaulting to one.
//
// Loops can be formed with the DO and LOOP instructions and can be nested.
//
//	DO loopCt [loopName]
//		...
//	LOOP
//
// When a loop is named the current counter value can be referenced as a
// variable with the % symbol wherever a number is expected. For example, the
// following ramps the duty cycle from zero to full:
//
//	DO 256 d
//		WRITE DUTY %d
//		WAIT
//	LOOP
//
// Lines can be commented by prefixing the line with two dashes (--), with or
// without a following space. Leading and trailing white space is ignored.
package macro

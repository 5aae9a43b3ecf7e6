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

// Package pins describes the signals that cross the boundary of the
// peripheral. Pins are the raw input levels for a single tick of the system
// clock. Output is the registered 16 bit output vector.
package pins

import (
	"fmt"
	"strings"
)

// Pins is the level of each input line for one tick of the system clock.
//
// ChipSelect is active-low, so a value of false means that a transaction is
// in progress. Reset is the logical state of the active-low system reset
// line, true meaning that reset is being asserted.
type Pins struct {
	ChipSelect  bool
	SerialClock bool
	SerialData  bool
	Reset       bool
}

// Idle is the state of the lines when no transaction is in progress: chip
// select is high, serial clock and serial data are low.
var Idle = Pins{ChipSelect: true}

// Hold is the state of the lines while the system reset is being asserted.
var Hold = Pins{ChipSelect: true, Reset: true}

func level(v bool) byte {
	if v {
		return '1'
	}
	return '0'
}

// String returns the line levels in the order nCS, SCLK, SDATA. Reset is
// indicated with a trailing R.
func (p Pins) String() string {
	s := strings.Builder{}
	s.WriteString("nCS=")
	s.WriteByte(level(p.ChipSelect))
	s.WriteString(" SCLK=")
	s.WriteByte(level(p.SerialClock))
	s.WriteString(" SDATA=")
	s.WriteByte(level(p.SerialData))
	if p.Reset {
		s.WriteString(" R")
	}
	return s.String()
}

// NumChannels is the number of output lines.
const NumChannels = 16

// Output is the registered output vector. Bit i is the level of output
// channel i.
type Output uint16

// Bit returns the level of the numbered channel. Channel numbers outside the
// range 0 to 15 always return false.
func (o Output) Bit(channel int) bool {
	if channel < 0 || channel >= NumChannels {
		return false
	}
	return o&(1<<channel) != 0
}

// Channels returns the level of every channel. Index 0 is channel 0.
func (o Output) Channels() [NumChannels]bool {
	var c [NumChannels]bool
	for i := range c {
		c[i] = o.Bit(i)
	}
	return c
}

// String returns the output vector in binary, channel 15 first.
func (o Output) String() string {
	return fmt.Sprintf("%016b", uint16(o))
}

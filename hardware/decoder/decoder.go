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

// Package decoder implements the frame decoder of the serial link. The
// decoder watches the synchronised lines and accumulates a 16 bit frame while
// chip select is asserted. When chip select is released the frame is checked
// and, if it is a valid write, the payload is committed to the register file.
//
// Invalid frames are silently discarded. The protocol has no way of telling
// the sender that a frame has been ignored.
package decoder

import (
	"fmt"

	"github.com/jetsetilly/spipwm/environment"
	"github.com/jetsetilly/spipwm/hardware/registers"
	"github.com/jetsetilly/spipwm/hardware/synchroniser"
	"github.com/jetsetilly/spipwm/logger"
)

// State of the decoder.
type State int

// List of valid State values.
const (
	Idle State = iota
	Capturing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Capturing:
		return "capturing"
	}
	return "unknown state"
}

// Decoder is the frame decoder.
type Decoder struct {
	env  *environment.Environment
	regs *registers.Registers

	State State

	// the shift register and the number of bits shifted into it during the
	// current transaction. BitCount never exceeds FrameBits although the
	// shift register keeps shifting
	Frame    Frame
	BitCount int

	// the outcome of the most recently completed transaction
	LastFrame   Frame
	LastCount   int
	LastVerdict Verdict

	// number of completed transactions and the number that resulted in a
	// commit
	Transactions int
	Commits      int
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// Commits will be written to the supplied register file.
func NewDecoder(env *environment.Environment, regs *registers.Registers) *Decoder {
	dec := &Decoder{
		env:  env,
		regs: regs,
	}
	dec.Reset()
	return dec
}

func (dec *Decoder) String() string {
	return fmt.Sprintf("%s frame=%016b bits=%d", dec.State, uint16(dec.Frame), dec.BitCount)
}

// Reset the decoder to the idle state with an empty frame.
func (dec *Decoder) Reset() {
	dec.State = Idle
	dec.Frame = 0
	dec.BitCount = 0
	dec.LastFrame = 0
	dec.LastCount = 0
	dec.LastVerdict = Commit
	dec.Transactions = 0
	dec.Commits = 0
}

// Step the decoder forward one tick. The synchroniser is read but not
// changed; it should be stepped after the decoder.
func (dec *Decoder) Step(syn *synchroniser.Synchroniser) {
	switch dec.State {
	case Idle:
		// chip select is active-low so a falling edge starts a transaction
		if syn.ChipSelect.Falling() {
			dec.State = Capturing
			dec.Frame = 0
			dec.BitCount = 0
		}

	case Capturing:
		if syn.ChipSelect.Rising() {
			dec.end()
			return
		}

		if syn.SerialClock.Rising() {
			dec.Frame <<= 1
			if syn.SerialData.Value() {
				dec.Frame |= 1
			}
			if dec.BitCount < FrameBits {
				dec.BitCount++
			}
		}
	}
}

// end of transaction. the frame is checked using the values accumulated
// before chip select was released.
func (dec *Decoder) end() {
	dec.LastFrame = dec.Frame
	dec.LastCount = dec.BitCount
	dec.LastVerdict = Check(dec.Frame, dec.BitCount)
	dec.Transactions++

	if dec.LastVerdict == Commit {
		dec.regs.Write(dec.Frame.Address(), dec.Frame.Data())
		dec.Commits++
		logger.Logf(dec.env, "decoder", "%s = %02x", dec.Frame.Address(), dec.Frame.Data())
	} else if dec.LastVerdict == ShortFrame {
		logger.Logf(dec.env, "decoder", "discarded %d bit frame", dec.BitCount)
	} else {
		logger.Logf(dec.env, "decoder", "discarded frame %04x (%s)", uint16(dec.Frame), dec.LastVerdict)
	}

	dec.State = Idle
	dec.BitCount = 0
}

// Snapshot creates a copy of the Decoder in its current state. The copy must
// be plumbed into a register file with Plumb() before it is used.
func (dec *Decoder) Snapshot() *Decoder {
	n := *dec
	n.env = nil
	n.regs = nil
	return &n
}

// Plumb attaches the environment and register file to a snapshotted Decoder.
func (dec *Decoder) Plumb(env *environment.Environment, regs *registers.Registers) {
	dec.env = env
	dec.regs = regs
}

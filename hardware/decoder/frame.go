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

package decoder

import (
	"fmt"

	"github.com/jetsetilly/spipwm/hardware/registers"
)

// FrameBits is the number of bits in a complete frame.
const FrameBits = 16

// Frame is the shift register of the decoder. Bits are shifted in at the
// least significant end so that the first bit of a transaction ends up as bit
// 15.
//
//	bit 15     write flag
//	bits 14-8  register address
//	bits 7-0   data
type Frame uint16

// masks for the fields of a frame.
const (
	writeFlag   = 0x8000
	addressMask = 0x7f
	addressPos  = 8
	dataMask    = 0xff
)

// NewFrame creates a Frame from its fields. The address is truncated to 7
// bits.
func NewFrame(write bool, address uint8, data uint8) Frame {
	f := Frame(address&addressMask)<<addressPos | Frame(data)
	if write {
		f |= writeFlag
	}
	return f
}

// Write returns true if the write flag of the frame is set.
func (f Frame) Write() bool {
	return f&writeFlag == writeFlag
}

// Address returns the 7 bit address field of the frame.
func (f Frame) Address() registers.Address {
	return registers.Address((f >> addressPos) & addressMask)
}

// Data returns the 8 bit payload of the frame.
func (f Frame) Data() uint8 {
	return uint8(f & dataMask)
}

func (f Frame) String() string {
	op := "R"
	if f.Write() {
		op = "W"
	}
	return fmt.Sprintf("%s %s %02x", op, f.Address(), f.Data())
}

// Verdict is the result of evaluating a frame at the end of a transaction.
type Verdict int

// List of valid Verdict values. Everything other than Commit means that the
// frame was discarded.
const (
	Commit Verdict = iota
	ShortFrame
	ReadRequest
	BadAddress
)

func (v Verdict) String() string {
	switch v {
	case Commit:
		return "commit"
	case ShortFrame:
		return "short frame"
	case ReadRequest:
		return "read request"
	case BadAddress:
		return "address out of range"
	}
	return "unknown verdict"
}

// Check decides whether a frame can be committed to the register file. The
// count is the number of bits that were clocked in during the transaction,
// saturated at FrameBits.
func Check(frame Frame, count int) Verdict {
	if count != FrameBits {
		return ShortFrame
	}
	if !frame.Write() {
		return ReadRequest
	}
	if !frame.Address().Valid() {
		return BadAddress
	}
	return Commit
}

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

// Package stimulus is a bit-banged master for the serial link. Transactions
// are expanded into the pin levels for every tick of the system clock, timed
// in the same way as a mode 0 master running from a slower serial clock:
//
//   - chip select is asserted with the serial clock low
//   - for each bit, MSB first, the data line is set and the serial clock is
//     held low for one half period and high for one half period
//   - chip select is released with the serial clock and data lines low and
//     the lines are left idle for the settle period
//
// The Master type queues transactions and produces one set of pin levels per
// tick with the Next() function.
package stimulus

import (
	"fmt"

	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/hardware/decoder"
	"github.com/jetsetilly/spipwm/hardware/preferences"
)

// Sentinal error patterns.
const (
	AddressRange = "stimulus: address out of range (%d)"
	BitsRange    = "stimulus: number of bits out of range (%d)"
	TimingError  = "stimulus: invalid timing (%s = %d)"
)

// MaxAddress is the largest address that can be sent in a frame. Addresses
// above registers.MaxAddress are valid on the wire and will be ignored by
// the decoder.
const MaxAddress = 0x7f

// Transaction is a single chip select cycle on the serial link.
type Transaction struct {
	Write   bool
	Address int
	Data    uint8

	// the number of bits to send before chip select is released. a value of
	// zero means a complete frame.
	Bits int
}

// Validate returns an error if the transaction can not be sent.
func (tr Transaction) Validate() error {
	if tr.Address < 0 || tr.Address > MaxAddress {
		return curated.Errorf(AddressRange, tr.Address)
	}
	if tr.Bits < 0 || tr.Bits > decoder.FrameBits {
		return curated.Errorf(BitsRange, tr.Bits)
	}
	return nil
}

// Frame returns the complete frame for the transaction. The address is
// truncated to seven bits.
func (tr Transaction) Frame() decoder.Frame {
	return decoder.NewFrame(tr.Write, uint8(tr.Address), tr.Data)
}

// bits returns the number of bits that will be clocked.
func (tr Transaction) bits() int {
	if tr.Bits == 0 {
		return decoder.FrameBits
	}
	return tr.Bits
}

func (tr Transaction) String() string {
	s := tr.Frame().String()
	if tr.bits() != decoder.FrameBits {
		s = fmt.Sprintf("%s (%d bits)", s, tr.bits())
	}
	return s
}

// Timing of the serial link, in ticks of the system clock.
type Timing struct {
	HalfPeriod int
	Settle     int
	Lead       int
}

// Validate returns an error if the timing can not be used.
func (tm Timing) Validate() error {
	if tm.HalfPeriod < 1 {
		return curated.Errorf(TimingError, "half period", tm.HalfPeriod)
	}
	if tm.Lead < 1 {
		return curated.Errorf(TimingError, "lead", tm.Lead)
	}
	if tm.Settle < 0 {
		return curated.Errorf(TimingError, "settle", tm.Settle)
	}
	return nil
}

// TimingFromPrefs returns the timing described by the preferences.
func TimingFromPrefs(p *preferences.Preferences) Timing {
	return Timing{
		HalfPeriod: p.HalfPeriod.Get().(int),
		Settle:     p.Settle.Get().(int),
		Lead:       p.Lead.Get().(int),
	}
}

// DefaultTiming is a 100kHz serial clock when the system clock runs at 10MHz.
var DefaultTiming = Timing{
	HalfPeriod: preferences.DefaultHalfPeriod,
	Settle:     preferences.DefaultSettle,
	Lead:       preferences.DefaultLead,
}

// Ticks returns the number of ticks the transaction will take with the
// specified timing, including the settle period.
func (tm Timing) Ticks(tr Transaction) int {
	return tm.Lead + tr.bits()*tm.HalfPeriod*2 + tm.Settle
}

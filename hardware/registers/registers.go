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

// Package registers implements the register file of the peripheral. There are
// five 8 bit registers. The two output enable registers and the two PWM enable
// registers each combine to form a 16 bit mask, the high register providing
// bits 15 to 8.
//
// The only writer of the register file is the frame decoder. Validation of
// the address and of the frame itself is the responsibility of the decoder.
package registers

import (
	"fmt"
	"strings"
)

// Address of a register in the register file.
type Address uint8

// List of valid register addresses.
const (
	OutputEnableLow Address = iota
	OutputEnableHigh
	PWMEnableLow
	PWMEnableHigh
	DutyCycle
)

// MaxAddress is the highest valid register address.
const MaxAddress = DutyCycle

// NumRegisters is the number of registers in the register file.
const NumRegisters = int(MaxAddress) + 1

// Names of the registers, indexed by address.
var Names = [NumRegisters]string{"OUTEN_LO", "OUTEN_HI", "PWMEN_LO", "PWMEN_HI", "DUTY"}

func (a Address) String() string {
	if a.Valid() {
		return Names[a]
	}
	return fmt.Sprintf("0x%02x", uint8(a))
}

// Valid returns true if the address refers to a register.
func (a Address) Valid() bool {
	return a <= MaxAddress
}

// Lookup returns the address of the named register. The comparison is case
// insensitive.
func Lookup(name string) (Address, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range Names {
		if n == name {
			return Address(i), true
		}
	}
	return 0, false
}

// Registers is the register file.
type Registers struct {
	OutputEnableLow  uint8
	OutputEnableHigh uint8
	PWMEnableLow     uint8
	PWMEnableHigh    uint8
	DutyCycle        uint8
}

// NewRegisters is the preferred method of initialisation for the Registers
// type.
func NewRegisters() *Registers {
	return &Registers{}
}

func (r *Registers) String() string {
	s := strings.Builder{}
	for a := Address(0); a <= MaxAddress; a++ {
		v, _ := r.Read(a)
		if a > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%s=%02x", a, v))
	}
	return s.String()
}

// Reset all registers to zero. Every output will be disabled.
func (r *Registers) Reset() {
	*r = Registers{}
}

// Write a value to the addressed register. Writes to invalid addresses are
// ignored.
func (r *Registers) Write(addr Address, data uint8) {
	switch addr {
	case OutputEnableLow:
		r.OutputEnableLow = data
	case OutputEnableHigh:
		r.OutputEnableHigh = data
	case PWMEnableLow:
		r.PWMEnableLow = data
	case PWMEnableHigh:
		r.PWMEnableHigh = data
	case DutyCycle:
		r.DutyCycle = data
	}
}

// Read the value of the addressed register. Returns false if the address is
// not valid.
func (r *Registers) Read(addr Address) (uint8, bool) {
	switch addr {
	case OutputEnableLow:
		return r.OutputEnableLow, true
	case OutputEnableHigh:
		return r.OutputEnableHigh, true
	case PWMEnableLow:
		return r.PWMEnableLow, true
	case PWMEnableHigh:
		return r.PWMEnableHigh, true
	case DutyCycle:
		return r.DutyCycle, true
	}
	return 0, false
}

// OutputEnable returns the 16 bit output enable mask.
func (r *Registers) OutputEnable() uint16 {
	return uint16(r.OutputEnableHigh)<<8 | uint16(r.OutputEnableLow)
}

// PWMEnable returns the 16 bit PWM enable mask.
func (r *Registers) PWMEnable() uint16 {
	return uint16(r.PWMEnableHigh)<<8 | uint16(r.PWMEnableLow)
}

// Snapshot creates a copy of the register file in its current state.
func (r *Registers) Snapshot() *Registers {
	n := *r
	return &n
}

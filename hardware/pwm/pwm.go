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

// Package pwm implements the waveform generator. A single duty counter is
// compared against the duty cycle register to produce one shared PWM pulse.
// Every channel that is both output enabled and PWM enabled follows that
// pulse, which keeps all PWM channels in phase.
//
// The output vector is registered. The value computed during a tick is not
// visible until the tick has completed.
package pwm

import (
	"fmt"

	"github.com/jetsetilly/spipwm/hardware/pins"
	"github.com/jetsetilly/spipwm/hardware/registers"
)

// FullDuty is the duty cycle value that means the PWM pulse is always high.
// Without this special case the comparison against an 8 bit counter could
// never reach 100%.
const FullDuty = 0xff

// Active returns the level of the shared PWM pulse for the duty cycle and the
// current value of the duty counter.
func Active(dutyCycle uint8, counter uint8) bool {
	if dutyCycle == FullDuty {
		return true
	}
	return counter < dutyCycle
}

// Mode of an output channel as selected by the two enable masks.
type Mode int

// List of valid Mode values.
const (
	Disabled Mode = iota
	Static
	Pulse
)

func (m Mode) String() string {
	switch m {
	case Disabled:
		return "off"
	case Static:
		return "high"
	case Pulse:
		return "pwm"
	}
	return "unknown mode"
}

// ChannelMode returns the mode of the numbered channel. A channel that is not
// output enabled is disabled whatever the PWM enable mask says.
func ChannelMode(outputEnable uint16, pwmEnable uint16, channel int) Mode {
	bit := uint16(1) << channel
	if outputEnable&bit == 0 {
		return Disabled
	}
	if pwmEnable&bit == 0 {
		return Static
	}
	return Pulse
}

// Mux computes the next output vector from the enable masks and the level of
// the shared PWM pulse.
func Mux(outputEnable uint16, pwmEnable uint16, active bool) pins.Output {
	var o pins.Output
	for ch := 0; ch < pins.NumChannels; ch++ {
		switch ChannelMode(outputEnable, pwmEnable, ch) {
		case Static:
			o |= 1 << ch
		case Pulse:
			if active {
				o |= 1 << ch
			}
		}
	}
	return o
}

// Generator is the waveform generator.
type Generator struct {
	regs *registers.Registers

	Timers Timers

	// the registered output vector
	Output pins.Output
}

// NewGenerator is the preferred method of initialisation for the Generator
// type. The register file is read every tick but never written.
func NewGenerator(regs *registers.Registers) *Generator {
	gen := &Generator{regs: regs}
	gen.Reset()
	return gen
}

func (gen *Generator) String() string {
	return fmt.Sprintf("%s out=%s", gen.Timers, gen.Output)
}

// Reset clears the timers and the output vector.
func (gen *Generator) Reset() {
	gen.Timers.Reset()
	gen.Output = 0
}

// Step the generator forward one tick. The next output is computed from the
// register file and the timers as they were at the start of the tick. The
// timers are then advanced and the output is registered.
func (gen *Generator) Step() {
	// every component sees only pre-tick values, so the comparator reads the
	// duty counter before the timers advance. this delays the waveform by one
	// tick but leaves period and duty unchanged
	active := Active(gen.regs.DutyCycle, gen.Timers.Duty)
	next := Mux(gen.regs.OutputEnable(), gen.regs.PWMEnable(), active)
	gen.Timers.Step()
	gen.Output = next
}

// Snapshot creates a copy of the Generator in its current state. The copy
// must be plumbed into a register file with Plumb() before it is used.
func (gen *Generator) Snapshot() *Generator {
	n := *gen
	n.regs = nil
	return &n
}

// Plumb attaches a register file to a snapshotted Generator.
func (gen *Generator) Plumb(regs *registers.Registers) {
	gen.regs = regs
}

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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/environment"
	"github.com/jetsetilly/spipwm/hardware/decoder"
	"github.com/jetsetilly/spipwm/hardware/pins"
	"github.com/jetsetilly/spipwm/hardware/pwm"
	"github.com/jetsetilly/spipwm/hardware/registers"
	"github.com/jetsetilly/spipwm/hardware/synchroniser"
	"github.com/jetsetilly/spipwm/logger"
)

// NoEnvironment is the error pattern returned by NewPeripheral() when the
// environment is missing.
const NoEnvironment = "hardware: a peripheral requires an environment"

// Peripheral is the main container for the emulated components.
type Peripheral struct {
	Env *environment.Environment

	Sync    *synchroniser.Synchroniser
	Decoder *decoder.Decoder
	Regs    *registers.Registers
	PWM     *pwm.Generator

	// number of ticks since the most recent reset
	Ticks uint64
}

// NewPeripheral creates a new Peripheral in the reset state.
func NewPeripheral(env *environment.Environment) (*Peripheral, error) {
	if env == nil {
		return nil, curated.Errorf(NoEnvironment)
	}

	p := &Peripheral{Env: env}
	p.Sync = synchroniser.NewSynchroniser()
	p.Regs = registers.NewRegisters()
	p.Decoder = decoder.NewDecoder(env, p.Regs)
	p.PWM = pwm.NewGenerator(p.Regs)

	return p, nil
}

func (p *Peripheral) String() string {
	return fmt.Sprintf("tick=%d %s", p.Ticks, p.Regs)
}

// Reset every component to its power-on state.
func (p *Peripheral) Reset() {
	p.Sync.Reset()
	p.Decoder.Reset()
	p.Regs.Reset()
	p.PWM.Reset()
	p.Ticks = 0
	logger.Log(p.Env, "hardware", "reset")
}

// Step the peripheral forward one tick of the system clock. If the reset line
// is asserted the peripheral is held in reset instead.
func (p *Peripheral) Step(in pins.Pins) {
	if in.Reset {
		p.Reset()
		return
	}

	p.PWM.Step()
	p.Decoder.Step(p.Sync)
	p.Sync.Step(in)

	p.Ticks++
}

// Output returns the registered output vector.
func (p *Peripheral) Output() pins.Output {
	return p.PWM.Output
}

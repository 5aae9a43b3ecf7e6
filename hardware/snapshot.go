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
	"github.com/jetsetilly/spipwm/hardware/decoder"
	"github.com/jetsetilly/spipwm/hardware/pwm"
	"github.com/jetsetilly/spipwm/hardware/registers"
	"github.com/jetsetilly/spipwm/hardware/synchroniser"
)

// State stores the peripheral sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// Note that the environment is not part of the snapshot.
type State struct {
	Sync    *synchroniser.Synchroniser
	Decoder *decoder.Decoder
	Regs    *registers.Registers
	PWM     *pwm.Generator
	Ticks   uint64
}

// Snapshot the state of the peripheral sub-systems.
func (p *Peripheral) Snapshot() *State {
	return &State{
		Sync:    p.Sync.Snapshot(),
		Decoder: p.Decoder.Snapshot(),
		Regs:    p.Regs.Snapshot(),
		PWM:     p.PWM.Snapshot(),
		Ticks:   p.Ticks,
	}
}

// Plumb a previously snapshotted state into the peripheral. The state is
// copied again so that the peripheral can not change what has been stored.
func (p *Peripheral) Plumb(state *State) {
	if state == nil {
		panic("hardware: cannot plumb in a nil state")
	}

	p.Sync = state.Sync.Snapshot()
	p.Decoder = state.Decoder.Snapshot()
	p.Regs = state.Regs.Snapshot()
	p.PWM = state.PWM.Snapshot()
	p.Ticks = state.Ticks

	p.Decoder.Plumb(p.Env, p.Regs)
	p.PWM.Plumb(p.Regs)
}

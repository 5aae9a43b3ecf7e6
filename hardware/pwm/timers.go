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

package pwm

import "fmt"

// PrescaleThreshold is the value at which the prescale counter wraps to zero.
// The duty counter therefore advances once every PrescaleThreshold+1 ticks.
const PrescaleThreshold = 12

// the prescale counter is eleven bits wide.
const prescaleMask = 0x07ff

// Period is the number of ticks in one complete cycle of the PWM waveform.
const Period = (PrescaleThreshold + 1) * 256

// Timers are the free running counters of the waveform generator. They are
// only ever cleared by a system reset.
type Timers struct {
	Prescale uint16
	Duty     uint8
}

func (tm Timers) String() string {
	return fmt.Sprintf("prescale=%02d duty=%02x", tm.Prescale, tm.Duty)
}

// Reset both counters to zero.
func (tm *Timers) Reset() {
	tm.Prescale = 0
	tm.Duty = 0
}

// Step advances the prescale counter. When the threshold is reached the
// prescale counter wraps and the duty counter advances. The duty counter
// wraps naturally at 256.
func (tm *Timers) Step() {
	if tm.Prescale == PrescaleThreshold {
		tm.Prescale = 0
		tm.Duty++
		return
	}
	tm.Prescale = (tm.Prescale + 1) & prescaleMask
}

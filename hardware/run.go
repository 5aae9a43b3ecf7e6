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
	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/govern"
	"github.com/jetsetilly/spipwm/hardware/pins"
)

// It can be expensive to do a full continue check every tick. The
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 1000

// UnsupportedState is the error pattern returned by Run() when continueCheck()
// returns an unexpected state.
const UnsupportedState = "hardware: unsupported state (%s) in Run() function"

// Input is the source of pin levels for each tick. A nil Input means that the
// lines are held in their idle state.
type Input func() pins.Pins

func (in Input) next() pins.Pins {
	if in == nil {
		return pins.Idle
	}
	return in()
}

// Run steps the peripheral until continueCheck() returns govern.Ending. The
// peripheral is not stepped while the state is govern.Paused.
func (p *Peripheral) Run(input Input, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	for state != govern.Ending {
		switch state {
		case govern.Running:
			p.Step(input.next())
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForTicks steps the peripheral for the specified number of ticks. The
// continueCheck() function is called after every tick with the number of
// ticks completed and can end the run early.
func (p *Peripheral) RunForTicks(numTicks int, input Input, continueCheck func(tick int) (govern.State, error)) error {
	for tick := 1; tick <= numTicks; tick++ {
		p.Step(input.next())

		if continueCheck != nil {
			state, err := continueCheck(tick)
			if err != nil {
				return err
			}
			if state == govern.Ending {
				return nil
			}
		}
	}

	return nil
}

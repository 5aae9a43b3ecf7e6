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


package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/govern"
	"github.com/jetsetilly/spipwm/hardware"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the time allowed for the run to settle before measurement begins.
var leadtime = 2 * time.Second

// Check the performance of the peripheral.
//
// The peripheral will run for the specificed duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, p *hardware.Peripheral, input hardware.Input, duration string) error {
	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startTick := p.Ticks

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool, 2)

		// leadtime to allow the rate to settle down and then restart timer
		// for the specified duration
		time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// only check for end of measurement period every PerformanceBrake
		// ticks. checking the timerChan is relatively expensive
		performanceBrake := 0

		return p.Run(input, func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					// measurement period has finished
					if v {
						return govern.Ending, timedOut
					}

					// leadtime has concluded. the measurement has begun and
					// we should record the start tick
					startTick = p.Ticks
				default:
				}
			}

			return govern.Running, nil
		})
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	// calculate performance
	numTicks := p.Ticks - startTick
	tps, accuracy := CalcTickRate(numTicks, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f MHz (%d ticks in %.2f seconds) %.1f%%\n", tps/1000000, numTicks, dur.Seconds(), accuracy)))

	return nil
}

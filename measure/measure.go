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


// Package measure finds the period and high time of the waveform on an
// output channel. Measurement is made on a copy of the peripheral so the
// peripheral being measured is not disturbed.
package measure

import (
	"fmt"

	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/environment"
	"github.com/jetsetilly/spipwm/hardware"
	"github.com/jetsetilly/spipwm/hardware/pins"
)

// Sentinal error patterns.
const (
	ChannelRange = "measure: channel out of range (%d)"
	NoPeripheral = "measure: no peripheral to measure"
)

// Label of the environment used for the copy of the peripheral.
const Label = environment.Label("measure")

// Result of a measurement. Period and High are in ticks of the system clock.
type Result struct {
	Period int
	High   int

	// the channel did not change within the timeout. Level is the level of
	// the channel for the duration of the measurement
	Constant bool
	Level    bool
}

func (r Result) String() string {
	if r.Constant {
		if r.Level {
			return "constant high"
		}
		return "constant low"
	}
	return fmt.Sprintf("period=%d high=%d duty=%.1f%%", r.Period, r.High, r.Duty()*100)
}

// Frequency of the waveform for the clock frequency, in Hz. The frequency of
// a constant channel is zero.
func (r Result) Frequency(clockHz float64) float64 {
	if r.Constant || r.Period == 0 {
		return 0
	}
	return clockHz / float64(r.Period)
}

// Duty returns the proportion of the period that the channel is high, in the
// range 0.0 to 1.0.
func (r Result) Duty() float64 {
	if r.Constant || r.Period == 0 {
		if r.Level {
			return 1.0
		}
		return 0.0
	}
	return float64(r.High) / float64(r.Period)
}

// Channel measures the waveform on the channel with the lines held idle.
// The measurement is made rising edge to falling edge to rising edge. If any
// edge is not seen within timeout ticks the channel is reported as constant.
func Channel(p *hardware.Peripheral, channel int, timeout int) (Result, error) {
	if p == nil {
		return Result{}, curated.Errorf(NoPeripheral)
	}
	if channel < 0 || channel >= pins.NumChannels {
		return Result{}, curated.Errorf(ChannelRange, channel)
	}

	env, err := environment.NewEnvironment(Label, p.Env.Prefs)
	if err != nil {
		return Result{}, curated.Errorf("measure: %v", err)
	}
	cp, err := hardware.NewPeripheral(env)
	if err != nil {
		return Result{}, curated.Errorf("measure: %v", err)
	}
	cp.Plumb(p.Snapshot())

	level := cp.Output().Bit(channel)

	// step until the channel reaches the level. returns the number of ticks
	// or -1 if the timeout is reached
	wait := func(target bool) int {
		for t := 1; t <= timeout; t++ {
			cp.Step(pins.Idle)
			if cp.Output().Bit(channel) == target {
				return t
			}
		}
		return -1
	}

	// the level reported for a constant channel is the level at the point
	// the timeout was reached, which may differ from the starting level
	constant := func() Result {
		return Result{Constant: true, Level: cp.Output().Bit(channel)}
	}

	// find the first rising edge
	if level {
		if wait(false) == -1 {
			return constant(), nil
		}
	}
	if wait(true) == -1 {
		return constant(), nil
	}

	high := wait(false)
	if high == -1 {
		return constant(), nil
	}
	low := wait(true)
	if low == -1 {
		return constant(), nil
	}

	return Result{Period: high + low, High: high}, nil
}

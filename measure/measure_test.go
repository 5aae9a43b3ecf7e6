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


package measure_test

import (
	"testing"

	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/environment"
	"github.com/jetsetilly/spipwm/hardware"
	"github.com/jetsetilly/spipwm/hardware/clocks"
	"github.com/jetsetilly/spipwm/hardware/preferences"
	"github.com/jetsetilly/spipwm/hardware/pwm"
	"github.com/jetsetilly/spipwm/hardware/registers"
	"github.com/jetsetilly/spipwm/measure"
	"github.com/jetsetilly/spipwm/stimulus"
	"github.com/jetsetilly/spipwm/test"
)

const timeout = preferences.DefaultMeasureTimeout

func newPeripheral(t *testing.T, duty uint8) *hardware.Peripheral {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile("")
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainPeripheral, prefs)
	test.DemandSuccess(t, err)
	p, err := hardware.NewPeripheral(env)
	test.DemandSuccess(t, err)

	p.Regs.Write(registers.OutputEnableLow, 0xff)
	p.Regs.Write(registers.PWMEnableLow, 0x0f)
	p.Regs.Write(registers.DutyCycle, duty)

	return p
}

func TestFrequencyAndDuty(t *testing.T) {
	p := newPeripheral(t, 0x80)

	// move away from the start of the period
	p.RunForTicks(1000, nil, nil)
	ticks := p.Ticks

	r, err := measure.Channel(p, 0, timeout)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Constant, false)
	test.ExpectEquality(t, r.Period, pwm.Period)
	test.ExpectEquality(t, r.High, 0x80*(pwm.PrescaleThreshold+1))
	test.ExpectApproximate(t, r.Frequency(clocks.SystemHz), 3000.0, 0.01)
	test.ExpectApproximate(t, r.Frequency(clocks.SystemHz), 3004.8, 0.0001)
	test.ExpectApproximate(t, r.Duty(), 0.5, 0.01)

	// the measured peripheral has not moved
	test.ExpectEquality(t, p.Ticks, ticks)
}

func TestDuty(t *testing.T) {
	for _, d := range []uint8{0x01, 0x40, 0xc0, 0xfe} {
		p := newPeripheral(t, d)
		r, err := measure.Channel(p, 3, timeout)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, r.Period, pwm.Period, d)
		test.ExpectApproximate(t, r.Duty(), float64(d)/256.0, 0.0001, d)
	}
}

func TestConstant(t *testing.T) {
	p := newPeripheral(t, 0x00)
	r, err := measure.Channel(p, 0, timeout)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, measure.Result{Constant: true, Level: false})
	test.ExpectEquality(t, r.Frequency(clocks.SystemHz), 0.0)
	test.ExpectEquality(t, r.Duty(), 0.0)

	p = newPeripheral(t, 0xff)
	p.RunForTicks(2, nil, nil)
	r, err = measure.Channel(p, 0, timeout)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, measure.Result{Constant: true, Level: true})
	test.ExpectEquality(t, r.Duty(), 1.0)

	// static high channel
	r, err = measure.Channel(p, 7, timeout)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, measure.Result{Constant: true, Level: true})

	// disabled channel
	r, err = measure.Channel(p, 8, timeout)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, measure.Result{Constant: true, Level: false})
}

func TestChannelDisabledDuringMeasurement(t *testing.T) {
	p := newPeripheral(t, 0x00)
	p.RunForTicks(2, nil, nil)

	// clear the output enable register. the frame is driven up to the tick
	// where chip select is released so the commit happens after measurement
	// has started
	m, err := stimulus.NewMaster(stimulus.Timing{HalfPeriod: 3, Settle: 0, Lead: 1})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.Queue(stimulus.Transaction{Write: true, Address: int(registers.OutputEnableLow), Data: 0x00}))
	m.Drive(p)
	test.ExpectEquality(t, p.Output().Bit(7), true)

	r, err := measure.Channel(p, 7, timeout)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, measure.Result{Constant: true, Level: false})
	test.ExpectEquality(t, r.Duty(), 0.0)

	// the live peripheral agrees once it has caught up
	p.RunForTicks(10, nil, nil)
	test.ExpectEquality(t, p.Output().Bit(7), false)
}

func TestErrors(t *testing.T) {
	p := newPeripheral(t, 0x80)
	_, err := measure.Channel(p, 16, timeout)
	test.ExpectEquality(t, curated.Is(err, measure.ChannelRange), true)
	_, err = measure.Channel(nil, 0, timeout)
	test.ExpectEquality(t, curated.Is(err, measure.NoPeripheral), true)
}

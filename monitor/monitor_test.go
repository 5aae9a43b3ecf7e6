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


package monitor_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/spipwm/environment"
	"github.com/jetsetilly/spipwm/hardware"
	"github.com/jetsetilly/spipwm/hardware/preferences"
	"github.com/jetsetilly/spipwm/hardware/registers"
	"github.com/jetsetilly/spipwm/monitor"
	"github.com/jetsetilly/spipwm/test"
)

func newPeripheral(t *testing.T) *hardware.Peripheral {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile("")
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", prefs)
	test.DemandSuccess(t, err)
	p, err := hardware.NewPeripheral(env)
	test.DemandSuccess(t, err)
	return p
}

func TestRender(t *testing.T) {
	p := newPeripheral(t)
	p.Regs.Write(registers.OutputEnableLow, 0x03)
	p.Regs.Write(registers.PWMEnableLow, 0x02)
	p.Regs.Write(registers.DutyCycle, 0x80)
	p.RunForTicks(2, nil, nil)

	w := &strings.Builder{}
	monitor.Render(w, p, true)
	s := w.String()

	test.ExpectEquality(t, strings.Contains(s, "tick 2 "), true)
	test.ExpectEquality(t, strings.Contains(s, "[paused]"), true)
	test.ExpectEquality(t, strings.Contains(s, "OUTEN_LO=03"), true)
	test.ExpectEquality(t, strings.Contains(s, " 1 "), true)
	test.ExpectEquality(t, strings.Contains(s, "pwm   50.0%"), true)
	test.ExpectEquality(t, strings.Contains(s, "high"), true)
	test.ExpectEquality(t, strings.Count(s, "off"), 14)
}

func TestKeys(t *testing.T) {
	p := newPeripheral(t)
	p.Regs.Write(registers.OutputEnableLow, 0xff)

	keys := make(chan byte, 4)
	keys <- monitor.KeyPause
	keys <- monitor.KeyReset
	keys <- monitor.KeyPause
	keys <- monitor.KeyQuit

	w := &strings.Builder{}
	mon := monitor.NewMonitor(p, nil, w, keys)
	test.ExpectSuccess(t, mon.Run())

	// the reset key clears the register file
	test.ExpectEquality(t, *p.Regs, registers.Registers{})
	test.ExpectEquality(t, strings.Contains(w.String(), "[paused]"), true)
}

func TestClosedKeys(t *testing.T) {
	p := newPeripheral(t)
	keys := make(chan byte)
	close(keys)

	mon := monitor.NewMonitor(p, nil, &strings.Builder{}, keys)
	test.ExpectSuccess(t, mon.Run())
}

func TestRate(t *testing.T) {
	p := newPeripheral(t)

	keys := make(chan byte, 1)
	mon := monitor.NewMonitor(p, nil, &strings.Builder{}, keys)
	mon.Rate = 1000

	// the quit key is seen after the first wait of the limiter
	keys <- monitor.KeyQuit
	test.ExpectSuccess(t, mon.Run())
	test.ExpectEquality(t, p.Ticks, uint64(10))
}

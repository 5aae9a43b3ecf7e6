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


package macro_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/environment"
	"github.com/jetsetilly/spipwm/hardware"
	"github.com/jetsetilly/spipwm/hardware/preferences"
	"github.com/jetsetilly/spipwm/hardware/pwm"
	"github.com/jetsetilly/spipwm/hardware/registers"
	"github.com/jetsetilly/spipwm/macro"
	"github.com/jetsetilly/spipwm/stimulus"
	"github.com/jetsetilly/spipwm/test"
)

var fast = stimulus.Timing{HalfPeriod: 3, Settle: 8, Lead: 1}

func run(t *testing.T, script string) (*hardware.Peripheral, error) {
	t.Helper()

	mcr, err := macro.Read("test", strings.NewReader(script))
	if err != nil {
		return nil, err
	}

	m, err := stimulus.NewMaster(fast)
	test.DemandSuccess(t, err)
	err = mcr.Run(m)
	if err != nil {
		return nil, err
	}

	prefs, err := preferences.NewPreferencesFromFile("")
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", prefs)
	test.DemandSuccess(t, err)
	p, err := hardware.NewPeripheral(env)
	test.DemandSuccess(t, err)

	m.Drive(p)
	return p, nil
}

func TestHeader(t *testing.T) {
	_, err := macro.Read("test", strings.NewReader(""))
	test.ExpectEquality(t, curated.Is(err, macro.NotAMacro), true)

	_, err = macro.Read("test", strings.NewReader("WRITE 0 1\n"))
	test.ExpectEquality(t, curated.Is(err, macro.NotAMacro), true)

	_, err = macro.Read("test", strings.NewReader("spipwmmacro\n"))
	test.ExpectSuccess(t, err)
}

func TestWrite(t *testing.T) {
	p, err := run(t, `spipwmmacro
-- enable the lower eight channels
WRITE OUTEN_LO $ff
--WRITE OUTEN_HI $ff
  --no space after the dashes
write 2 0x80
  WRITE DUTY 64
READ 1 0xff
ABORT PWMEN_HI 0xff 8
`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *p.Regs, registers.Registers{
		OutputEnableLow: 0xff,
		PWMEnableLow:    0x80,
		DutyCycle:       64,
	})
}

func TestLongFrame(t *testing.T) {
	// a leading one followed by a complete frame. the decoder keeps the last
	// sixteen bits
	p, err := run(t, `spipwmmacro
BITS 0x18480 17
`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Regs.DutyCycle, uint8(0x80))
}

func TestLoop(t *testing.T) {
	mcr, err := macro.Read("test", strings.NewReader(`spipwmmacro
DO 3 i
	DO 2
		WRITE DUTY %i
	LOOP
	WAIT 10
LOOP
RESET
WAIT
`))
	test.DemandSuccess(t, err)

	m, err := stimulus.NewMaster(fast)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mcr.Run(m))

	tr := fast.Ticks(stimulus.Transaction{Write: true})
	test.ExpectEquality(t, m.Pending(), 3*(2*tr+10)+1+pwm.Period)
}

func TestErrors(t *testing.T) {
	errs := []struct {
		script string
		line   int
	}{
		{"FOO", 2},
		{"WRITE 0", 2},
		{"\nWRITE 0 0x100", 3},
		{"WRITE 0x80 0", 2},
		{"WRITE NOTAREG 0", 2},
		{"ABORT 0 0 16", 2},
		{"ABORT 0 0 0", 2},
		{"BITS 0 33", 2},
		{"WAIT 1 2", 2},
		{"LOOP", 2},
		{"DO 0", 2},
		{"DO 2\nWRITE 0 0", 2},
		{"DO 2\nWRITE 0 %j\nLOOP", 3},
		{"DO 300 i\nWRITE 0 %i\nLOOP", 3},
	}

	for _, e := range errs {
		_, err := run(t, "spipwmmacro\n"+e.script)
		if test.ExpectFailure(t, err, e.script) {
			test.ExpectEquality(t, curated.Is(err, macro.MacroError), true, e.script)
			test.ExpectEquality(t, strings.HasPrefix(err.Error(), "macro: test: "), true, e.script)
			test.ExpectEquality(t, strings.Contains(err.Error(), fmt.Sprintf(": %d: ", e.line)), true, e.script)
		}
	}
}


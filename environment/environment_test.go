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

package environment_test

import (
	"testing"

	"github.com/jetsetilly/spipwm/environment"
	"github.com/jetsetilly/spipwm/hardware/preferences"
	"github.com/jetsetilly/spipwm/test"
)

func TestLogging(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile("")
	test.DemandSuccess(t, err)

	main, err := environment.NewEnvironment(environment.MainPeripheral, p)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, main.AllowLogging())

	other, err := environment.NewEnvironment("measure", p)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, other.AllowLogging())

	// preferences are shared
	test.ExpectSuccess(t, main.Prefs.Settle.Set(5))
	test.ExpectEquality(t, other.Prefs.Settle.Get().(int), 5)
	test.ExpectSuccess(t, other.Normalise())
	test.ExpectEquality(t, main.Prefs.Settle.Get().(int), preferences.DefaultSettle)
}

func TestNilEnvironment(t *testing.T) {
	var env *environment.Environment
	test.ExpectFailure(t, env.AllowLogging())
}

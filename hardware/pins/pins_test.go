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

package pins_test

import (
	"testing"

	"github.com/jetsetilly/spipwm/hardware/pins"
	"github.com/jetsetilly/spipwm/test"
)

func TestOutput(t *testing.T) {
	o := pins.Output(0x8001)
	test.ExpectSuccess(t, o.Bit(0))
	test.ExpectSuccess(t, o.Bit(15))
	test.ExpectFailure(t, o.Bit(7))
	test.ExpectFailure(t, o.Bit(16))
	test.ExpectFailure(t, o.Bit(-1))
	test.ExpectEquality(t, o.String(), "1000000000000001")

	c := o.Channels()
	test.ExpectSuccess(t, c[0])
	test.ExpectFailure(t, c[1])
	test.ExpectSuccess(t, c[15])
}

func TestPins(t *testing.T) {
	test.ExpectEquality(t, pins.Idle.String(), "nCS=1 SCLK=0 SDATA=0")
	test.ExpectEquality(t, pins.Hold.String(), "nCS=1 SCLK=0 SDATA=0 R")
	test.ExpectFailure(t, pins.Idle.Reset)
}

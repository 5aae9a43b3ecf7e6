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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/spipwm/hardware/clocks"
	"github.com/jetsetilly/spipwm/test"
)

func TestConversion(t *testing.T) {
	// half a serial clock period at 100kHz
	test.ExpectEquality(t, clocks.SecondsToTicks(0.000005), 50)
	test.ExpectApproximate(t, clocks.TicksToSeconds(50), 0.000005, 0.0001)
}

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


package version

import (
	"strings"
	"testing"

	"github.com/jetsetilly/spipwm/test"
)

func TestDecide(t *testing.T) {
	v, r := decide("", settings{})
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")

	v, r = decide("", settings{vcs: true, revision: "abc", modified: true})
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "abc+dirty")

	v, r = decide("v1.0.0", settings{vcs: true, revision: "abc"})
	test.ExpectEquality(t, v, "v1.0.0")
	test.ExpectEquality(t, r, "abc")
}

func TestString(t *testing.T) {
	test.ExpectEquality(t, strings.HasPrefix(String(), ApplicationName+" "), true)
}

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

package paths_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/spipwm/paths"
	"github.com/jetsetilly/spipwm/test"
)

func TestResourcePath(t *testing.T) {
	pth := paths.ResourcePath("foo", "bar")
	test.ExpectSuccess(t, strings.HasSuffix(pth, filepath.Join("foo", "bar")))
	test.ExpectSuccess(t, strings.Contains(pth, "spipwm"))
}

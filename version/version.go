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


// Package version reports the version and the source revision of the
// program. The version number is set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/spipwm/version.number=v0.1.0"
//
// The revision is taken from the build information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "spipwm"

// set by the linker. empty if the program was built without the -X flag
var number string

// version and revision are decided once by init()
var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// The version string is "unreleased" if there is no version number but there
// is version control information. It is "local" if there is neither.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line description of the version.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = decide(number, buildSettings())
}

// the build settings relevant to the version.
type settings struct {
	vcs      bool
	revision string
	modified bool
}

func buildSettings() settings {
	var s settings

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return s
	}

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs":
			s.vcs = true
		case "vcs.revision":
			s.revision = v.Value
		case "vcs.modified":
			s.modified = v.Value == "true"
		}
	}

	return s
}

func decide(number string, s settings) (string, string) {
	rev := "no revision information"
	if s.revision != "" {
		rev = s.revision
		if s.modified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	if number != "" {
		return number, rev
	}
	if s.vcs {
		return "unreleased", rev
	}
	return "local", rev
}

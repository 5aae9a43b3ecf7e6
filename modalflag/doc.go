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


// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each with their own set of flags.
//
// Arguments are first given with NewArgs() and then parsed with Parse(). Flags
// are added before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "WATCH", "PERFORMANCE")
//	_, _ = md.Parse()
//
// The first sub-mode in the list is the default. After parsing, Mode()
// returns the selected sub-mode. The next layer of flags can then be
// prepared with NewMode() and parsed with another call to Parse():
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		ticks := md.AddInt("ticks", 0, "number of ticks to run for")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseHelp:
//			return nil
//		case modalflag.ParseError:
//			return err
//		}
//	}
//
// Sub-mode names are compared without regard to case.
//
// Arguments that are neither flags nor sub-modes are returned by
// RemainingArgs() and GetArg().
//
// A request for help (the -help or -h flag) prints the flags and sub-modes of
// the current mode to the Output field and Parse() returns ParseHelp.
package modalflag

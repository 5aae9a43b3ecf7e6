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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is kept so that the
// error can be identified later:
//
//	e := curated.Errorf(stimulus.AddressRange, 200)
//
//	if curated.Is(e, stimulus.AddressRange) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	f := curated.Errorf(script.LineError, 10, e)
//
//	if curated.Has(f, stimulus.AddressRange) {
//		fmt.Println("true")
//	}
//
// The Error() function normalises the message so that a chain of errors does
// not repeat the same leading part twice. For example, "stimulus: stimulus:
// address out of range" becomes "stimulus: address out of range".
package curated

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

// Package clocks defines the speed of the system clock that drives the
// peripheral. The model itself is only concerned with ticks. The values here
// are used to convert ticks into real time, for example when measuring the
// frequency of the PWM waveform.
package clocks

// System is the frequency of the system clock in MHz.
const System = 10.0

// SystemHz is the frequency of the system clock in Hz.
const SystemHz = System * 1000000

// TicksToSeconds converts a number of system clock ticks to seconds.
func TicksToSeconds(ticks int) float64 {
	return float64(ticks) / SystemHz
}

// SecondsToTicks converts a duration in seconds to the nearest number of
// system clock ticks.
func SecondsToTicks(seconds float64) int {
	return int(seconds*SystemHz + 0.5)
}

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

// Package logger is the central log for spipwm. Entries are tagged and
// consecutive duplicate entries are folded into a single entry with a repeat
// count.
//
// Every logging request carries a Permission. Components of the hardware model
// pass their environment, which only allows logging for the main peripheral
// instance. Copies of the peripheral made for measurement purposes therefore
// do not pollute the log.
package logger

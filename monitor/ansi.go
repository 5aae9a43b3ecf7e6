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


package monitor

// CSI sequences used by the monitor.
const (
	csi = "\x1b["

	ansiClear      = csi + "2J"
	ansiHome       = csi + "H"
	ansiClearLine  = csi + "K"
	ansiHideCursor = csi + "?25l"
	ansiShowCursor = csi + "?25h"
	ansiNormal     = csi + "0m"
	ansiBold       = csi + "1m"
	ansiGreen      = csi + "32m"
	ansiDim        = csi + "2m"
)

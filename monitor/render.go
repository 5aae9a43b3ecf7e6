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

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/spipwm/hardware"
	"github.com/jetsetilly/spipwm/hardware/clocks"
	"github.com/jetsetilly/spipwm/hardware/pins"
	"github.com/jetsetilly/spipwm/hardware/pwm"
)

// Render a view of the peripheral. The view begins with a CSI sequence to
// move the cursor to the top left of the terminal.
func Render(w io.Writer, p *hardware.Peripheral, paused bool) {
	s := strings.Builder{}
	s.WriteString(ansiHome)

	status := ""
	if paused {
		status = " [paused]"
	}
	s.WriteString(fmt.Sprintf("%sspipwm%s  tick %d (%.3fs)%s%s\n", ansiBold, ansiNormal,
		p.Ticks, clocks.TicksToSeconds(int(p.Ticks)), status, ansiClearLine))

	s.WriteString(fmt.Sprintf("%s%s\n", p.Regs, ansiClearLine))
	s.WriteString(fmt.Sprintf("decoder %s  transactions=%d commits=%d%s\n", p.Decoder.State,
		p.Decoder.Transactions, p.Decoder.Commits, ansiClearLine))
	if p.Decoder.Transactions > 0 {
		s.WriteString(fmt.Sprintf("last    %s (%d bits) %s%s\n", p.Decoder.LastFrame,
			p.Decoder.LastCount, p.Decoder.LastVerdict, ansiClearLine))
	} else {
		s.WriteString(fmt.Sprintf("last    -%s\n", ansiClearLine))
	}
	s.WriteString(ansiClearLine + "\n")

	oe := p.Regs.OutputEnable()
	pe := p.Regs.PWMEnable()
	duty := float64(p.Regs.DutyCycle) / 256.0 * 100
	if p.Regs.DutyCycle == pwm.FullDuty {
		duty = 100
	}

	for ch := pins.NumChannels - 1; ch >= 0; ch-- {
		mode := pwm.ChannelMode(oe, pe, ch)

		level := ansiDim + "." + ansiNormal
		if p.Output().Bit(ch) {
			level = ansiGreen + "#" + ansiNormal
		}

		detail := ""
		if mode == pwm.Pulse {
			detail = fmt.Sprintf(" %5.1f%%", duty)
		}

		s.WriteString(fmt.Sprintf("  %2d %s %-4s%s%s\n", ch, level, mode, detail, ansiClearLine))
	}

	s.WriteString(fmt.Sprintf("\n[q] quit  [r] reset  [space] pause%s\n", ansiClearLine))

	io.WriteString(w, s.String())
}

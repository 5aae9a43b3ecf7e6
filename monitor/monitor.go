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
	"io"
	"time"

	"github.com/jetsetilly/spipwm/govern"
	"github.com/jetsetilly/spipwm/hardware"
	"github.com/jetsetilly/spipwm/logger"
	"github.com/jetsetilly/spipwm/performance/limiter"
)

// DefaultRefresh is the period between redraws of the view.
const DefaultRefresh = 50 * time.Millisecond

// Monitor runs a peripheral and presents a live view of it.
type Monitor struct {
	p     *hardware.Peripheral
	input hardware.Input
	out   io.Writer
	keys  <-chan byte

	// period between redraws
	Refresh time.Duration

	// number of ticks per second. zero means that the peripheral runs as
	// quickly as possible
	Rate int

	paused bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The keys channel will usually be the channel returned by Terminal.Keys().
func NewMonitor(p *hardware.Peripheral, input hardware.Input, out io.Writer, keys <-chan byte) *Monitor {
	return &Monitor{
		p:       p,
		input:   input,
		out:     out,
		keys:    keys,
		Refresh: DefaultRefresh,
	}
}

// handle a single key press. returns govern.Ending if the monitor should
// stop.
func (mon *Monitor) handleKey(k byte) govern.State {
	switch k {
	case KeyQuit, KeyInterrupt:
		return govern.Ending
	case KeyReset:
		mon.p.Reset()
	case KeyPause:
		mon.paused = !mon.paused
		logger.Logf(mon.p.Env, "monitor", "paused: %v", mon.paused)
	}

	if mon.paused {
		return govern.Paused
	}
	return govern.Running
}

// the maximum number of times per second the limiter is triggered.
const maxLimiterRate = 100

// Run the peripheral until the quit key is pressed or the keys channel is
// closed.
func (mon *Monitor) Run() error {
	var lim *limiter.Limiter
	var batch int
	var count int

	if mon.Rate > 0 {
		per := maxLimiterRate
		if mon.Rate < per {
			per = mon.Rate
		}

		var err error
		lim, err = limiter.NewLimiter(per)
		if err != nil {
			return err
		}
		defer lim.Stop()

		batch = mon.Rate / per
	}

	io.WriteString(mon.out, ansiClear+ansiHideCursor)

	last := time.Now()
	brake := 0

	redraw := func() {
		Render(mon.out, mon.p, mon.paused)
		last = time.Now()
	}
	redraw()

	return mon.p.Run(mon.input, func() (govern.State, error) {
		// while paused, wait for a key press rather than spinning
		if mon.paused {
			select {
			case k, ok := <-mon.keys:
				if !ok {
					return govern.Ending, nil
				}
				state := mon.handleKey(k)
				redraw()
				return state, nil
			case <-time.After(mon.Refresh):
				return govern.Paused, nil
			}
		}

		// a limited run checks for key presses after every wait
		waited := false
		if lim != nil {
			count++
			if count >= batch {
				count = 0
				lim.Wait()
				waited = true
			}
		}

		brake++
		if !waited && brake < hardware.PerformanceBrake {
			return govern.Running, nil
		}
		brake = 0

		state := govern.Running
		select {
		case k, ok := <-mon.keys:
			if !ok {
				return govern.Ending, nil
			}
			state = mon.handleKey(k)
			redraw()
		default:
		}

		if time.Since(last) >= mon.Refresh {
			redraw()
		}

		return state, nil
	})
}

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


// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(100)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		p.RunForTicks(batch, input, nil)
//	}
package limiter

import (
	"time"

	"github.com/jetsetilly/spipwm/curated"
)

// RateRange is the error pattern returned by NewLimiter() when the rate is
// not positive.
const RateRange = "limiter: rate must be positive (%d)"

// this is a really rough attempt at rate limiting. probably only any good if
// base performance of the machine is well above the required rate.

// Limiter will trigger a fixed number of times per second.
type Limiter struct {
	perSecond int
	period    time.Duration

	tick chan bool
	quit chan bool
}

// NewLimiter is the preferred method of initialisation for Limiter type.
func NewLimiter(perSecond int) (*Limiter, error) {
	if perSecond <= 0 {
		return nil, curated.Errorf(RateRange, perSecond)
	}

	lim := &Limiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}
	lim.perSecond = perSecond
	lim.period = time.Second / time.Duration(perSecond)

	// run ticker concurrently
	go func() {
		adjustedPeriod := lim.period
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}
			time.Sleep(adjustedPeriod)
			nt := time.Now()
			adjustedPeriod -= nt.Sub(t) - lim.period
			if adjustedPeriod < 0 {
				adjustedPeriod = 0
			}
			t = nt
		}
	}()

	return lim, nil
}

// PerSecond returns the number of triggers per second.
func (lim *Limiter) PerSecond() int {
	return lim.perSecond
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the limiter. The limiter should not be used after stopping.
func (lim *Limiter) Stop() {
	close(lim.quit)
}

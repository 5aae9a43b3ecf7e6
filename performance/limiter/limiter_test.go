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


package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/performance/limiter"
	"github.com/jetsetilly/spipwm/test"
)

func TestLimiter(t *testing.T) {
	_, err := limiter.NewLimiter(0)
	test.ExpectEquality(t, curated.Is(err, limiter.RateRange), true)

	lim, err := limiter.NewLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()
	test.ExpectEquality(t, lim.PerSecond(), 100)

	start := time.Now()
	for i := 0; i < 11; i++ {
		lim.Wait()
	}

	// ten periods of 10ms. the limiter is not accurate over short periods so
	// only the lower bound is tested
	test.ExpectEquality(t, time.Since(start) >= 80*time.Millisecond, true)
}

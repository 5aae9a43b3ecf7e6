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


package digest_test

import (
	"testing"

	"github.com/jetsetilly/spipwm/digest"
	"github.com/jetsetilly/spipwm/hardware/pins"
	"github.com/jetsetilly/spipwm/test"
)

func feed(t *testing.T, dig *digest.Output, n int, f func(i int) pins.Output) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, dig.Tick(f(i)))
	}
}

func TestOutput(t *testing.T) {
	var _ digest.Digest = digest.NewOutput()

	a := digest.NewOutput()
	b := digest.NewOutput()
	zero := a.Hash()

	// no hash until the first block is complete
	feed(t, a, 255, func(i int) pins.Output { return pins.Output(i) })
	test.ExpectEquality(t, a.Hash(), zero)
	feed(t, a, 1, func(i int) pins.Output { return 0 })
	test.ExpectInequality(t, a.Hash(), zero)
	test.ExpectEquality(t, a.Ticks(), uint64(256))

	// same stream, same hash
	feed(t, b, 255, func(i int) pins.Output { return pins.Output(i) })
	feed(t, b, 1, func(i int) pins.Output { return 0 })
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// a single difference changes the hash
	a.ResetDigest()
	b.ResetDigest()
	test.ExpectEquality(t, a.Hash(), zero)
	feed(t, a, 1000, func(i int) pins.Output { return 0xffff })
	feed(t, b, 1000, func(i int) pins.Output {
		if i == 999 {
			return 0x7fff
		}
		return 0xffff
	})
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.DemandSuccess(t, a.Flush())
	test.DemandSuccess(t, b.Flush())
	test.ExpectInequality(t, a.Hash(), b.Hash())

	// flushing with nothing pending does not change the hash
	h := a.Hash()
	test.DemandSuccess(t, a.Flush())
	test.ExpectEquality(t, a.Hash(), h)
}

func TestChaining(t *testing.T) {
	a := digest.NewOutput()
	b := digest.NewOutput()

	// the same final block after different histories gives a different hash
	feed(t, a, 256, func(i int) pins.Output { return 0x0001 })
	feed(t, b, 256, func(i int) pins.Output { return 0x0002 })
	feed(t, a, 256, func(i int) pins.Output { return 0x0003 })
	feed(t, b, 256, func(i int) pins.Output { return 0x0003 })
	test.ExpectInequality(t, a.Hash(), b.Hash())
}

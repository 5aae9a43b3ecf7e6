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


package stimulus_test

import (
	"testing"

	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/hardware/pins"
	"github.com/jetsetilly/spipwm/stimulus"
	"github.com/jetsetilly/spipwm/test"
)

func TestTransaction(t *testing.T) {
	tr := stimulus.Transaction{Write: true, Address: 2, Data: 0x80}
	test.ExpectSuccess(t, tr.Validate())
	test.ExpectEquality(t, uint16(tr.Frame()), 0x8280)
	test.ExpectEquality(t, tr.String(), "W PWMEN_LO 80")

	tr = stimulus.Transaction{Address: 0x80}
	err := tr.Validate()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, stimulus.AddressRange), true)

	tr = stimulus.Transaction{Address: 1, Bits: 17}
	err = tr.Validate()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, stimulus.BitsRange), true)

	tr = stimulus.Transaction{Write: true, Address: 1, Bits: 8}
	test.ExpectEquality(t, tr.String(), "W OUTEN_HI 00 (8 bits)")
}

func TestTiming(t *testing.T) {
	test.ExpectSuccess(t, stimulus.DefaultTiming.Validate())
	test.ExpectFailure(t, stimulus.Timing{HalfPeriod: 0, Lead: 1}.Validate())
	test.ExpectFailure(t, stimulus.Timing{HalfPeriod: 1, Lead: 0}.Validate())
	test.ExpectFailure(t, stimulus.Timing{HalfPeriod: 1, Lead: 1, Settle: -1}.Validate())

	_, err := stimulus.NewMaster(stimulus.Timing{})
	test.ExpectFailure(t, err)

	tr := stimulus.Transaction{Write: true}
	test.ExpectEquality(t, stimulus.DefaultTiming.Ticks(tr), 1+16*100+600)
}

func TestWaveform(t *testing.T) {
	tm := stimulus.Timing{HalfPeriod: 2, Settle: 3, Lead: 1}
	m, err := stimulus.NewMaster(tm)
	test.DemandSuccess(t, err)

	// an empty queue is idle
	test.ExpectEquality(t, m.Next(), pins.Idle)

	tr := stimulus.Transaction{Write: true, Address: 0, Data: 0xff}
	test.DemandSuccess(t, m.Queue(tr))
	test.ExpectEquality(t, m.Pending(), tm.Ticks(tr))

	// lead
	p := m.Next()
	test.ExpectEquality(t, p, pins.Pins{})

	// the frame is 0x80ff: the write flag, seven zero bits of address and
	// eight one bits of data
	frame := uint16(tr.Frame())
	for i := 15; i >= 0; i-- {
		bit := (frame>>i)&0x01 == 0x01
		for h := 0; h < tm.HalfPeriod; h++ {
			p = m.Next()
			test.ExpectEquality(t, p, pins.Pins{SerialData: bit}, i)
		}
		for h := 0; h < tm.HalfPeriod; h++ {
			p = m.Next()
			test.ExpectEquality(t, p, pins.Pins{SerialData: bit, SerialClock: true}, i)
		}
	}

	// settle
	for i := 0; i < tm.Settle; i++ {
		test.ExpectEquality(t, m.Next(), pins.Idle)
	}
	test.ExpectEquality(t, m.Pending(), 0)
}

func TestWaitAndReset(t *testing.T) {
	m, err := stimulus.NewMaster(stimulus.DefaultTiming)
	test.DemandSuccess(t, err)

	m.Reset(2)
	m.Wait(3)
	m.Wait(0)
	test.ExpectEquality(t, m.Pending(), 5)
	test.ExpectEquality(t, m.Next(), pins.Hold)
	test.ExpectEquality(t, m.Next(), pins.Hold)
	test.ExpectEquality(t, m.Next(), pins.Idle)
	test.ExpectEquality(t, m.Pending(), 2)
}

func TestQueueBits(t *testing.T) {
	tm := stimulus.Timing{HalfPeriod: 1, Settle: 0, Lead: 1}
	m, err := stimulus.NewMaster(tm)
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, m.QueueBits(0, 33))
	test.DemandSuccess(t, m.QueueBits(0x01, 3))

	// lead, three bits of two ticks each and a single tick of idle when the
	// settle period is zero
	test.ExpectEquality(t, m.Pending(), 1+3*2+1)
}

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

package stimulus

import (
	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/hardware"
	"github.com/jetsetilly/spipwm/hardware/pins"
	"github.com/jetsetilly/spipwm/logger"
)

// a run of identical pin levels.
type segment struct {
	pins  pins.Pins
	ticks int
}

// Master queues transactions and produces the pin levels for each tick.
type Master struct {
	timing Timing
	queue  []segment

	// the number of ticks remaining in the queue
	pending int
}

// NewMaster is the preferred method of initialisation for the Master type.
func NewMaster(timing Timing) (*Master, error) {
	if err := timing.Validate(); err != nil {
		return nil, err
	}
	return &Master{timing: timing}, nil
}

// Timing returns the timing used by the master.
func (m *Master) Timing() Timing {
	return m.timing
}

func (m *Master) push(p pins.Pins, ticks int) {
	if ticks <= 0 {
		return
	}
	m.pending += ticks

	// join with previous segment if the pins are the same
	if len(m.queue) > 0 && m.queue[len(m.queue)-1].pins == p {
		m.queue[len(m.queue)-1].ticks += ticks
		return
	}
	m.queue = append(m.queue, segment{pins: p, ticks: ticks})
}

// Queue a transaction.
func (m *Master) Queue(tr Transaction) error {
	if err := tr.Validate(); err != nil {
		return err
	}

	n := tr.bits()

	// the bits to clock are the most significant bits of the frame
	value := uint32(tr.Frame()) >> (16 - n)
	m.queueBits(value, n)

	logger.Logf(logger.Allow, "stimulus", "queued %s", tr)

	return nil
}

// QueueBits queues a transaction of arbitrary length. The n least significant
// bits of value are sent, most significant bit first. This is useful for
// sending frames that are longer than the decoder expects.
func (m *Master) QueueBits(value uint32, n int) error {
	if n < 0 || n > 32 {
		return curated.Errorf(BitsRange, n)
	}
	m.queueBits(value, n)
	return nil
}

func (m *Master) queueBits(value uint32, n int) {
	// chip select asserted with the serial clock low
	p := pins.Pins{}
	m.push(p, m.timing.Lead)

	for i := n - 1; i >= 0; i-- {
		p.SerialData = (value>>i)&0x01 == 0x01
		p.SerialClock = false
		m.push(p, m.timing.HalfPeriod)
		p.SerialClock = true
		m.push(p, m.timing.HalfPeriod)
	}

	// release chip select. the idle period allows the synchroniser and the
	// decoder to see the end of the transaction
	m.push(pins.Idle, m.timing.Settle)

	// make sure there is always at least one tick with chip select
	// released, even with a settle period of zero
	if m.timing.Settle == 0 {
		m.push(pins.Idle, 1)
	}
}

// Wait queues the specified number of idle ticks.
func (m *Master) Wait(ticks int) {
	m.push(pins.Idle, ticks)
}

// Reset queues the specified number of ticks with the reset line asserted.
func (m *Master) Reset(ticks int) {
	m.push(pins.Hold, ticks)
}

// Pending returns the number of ticks remaining in the queue.
func (m *Master) Pending() int {
	return m.pending
}

// Next returns the pin levels for the next tick. When the queue is empty the
// lines are idle.
func (m *Master) Next() pins.Pins {
	if len(m.queue) == 0 {
		return pins.Idle
	}

	s := &m.queue[0]
	p := s.pins
	s.ticks--
	m.pending--
	if s.ticks == 0 {
		m.queue = m.queue[1:]
	}

	return p
}

// Input returns the master as a hardware.Input.
func (m *Master) Input() hardware.Input {
	return m.Next
}

// Drive steps the peripheral until the queue is empty.
func (m *Master) Drive(p *hardware.Peripheral) {
	for m.pending > 0 {
		p.Step(m.Next())
	}
}

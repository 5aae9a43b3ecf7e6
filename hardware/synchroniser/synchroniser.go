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

// Package synchroniser brings the asynchronous input lines into the time
// domain of the system clock.
//
// Each line is sampled into a two stage pipeline every tick. The older of the
// two samples is the synchronised value of the line; it is always exactly two
// ticks behind the pin. Comparing the newer sample with the older sample
// gives the edge flags for the line.
package synchroniser

import (
	"fmt"

	"github.com/jetsetilly/spipwm/hardware/pins"
)

// Signal is the sampling pipeline for a single input line.
type Signal struct {
	Newer bool
	Older bool
}

func (sig Signal) String() string {
	return fmt.Sprintf("%v%v", b2i(sig.Newer), b2i(sig.Older))
}

func b2i(v bool) int {
	if v {
		return 1
	}
	return 0
}

// Value returns the synchronised level of the line.
func (sig Signal) Value() bool {
	return sig.Older
}

// Rising returns true if the line is transitioning from low to high.
func (sig Signal) Rising() bool {
	return sig.Newer && !sig.Older
}

// Falling returns true if the line is transitioning from high to low.
func (sig Signal) Falling() bool {
	return !sig.Newer && sig.Older
}

// sample the raw level of the line. the newer sample moves to the older
// position.
func (sig *Signal) sample(raw bool) {
	sig.Older = sig.Newer
	sig.Newer = raw
}

// fill both stages of the pipeline with the same level. no edge will be
// reported until the line changes.
func (sig *Signal) fill(level bool) {
	sig.Newer = level
	sig.Older = level
}

// Synchroniser holds the pipelines for the three serial lines.
type Synchroniser struct {
	ChipSelect  Signal
	SerialClock Signal
	SerialData  Signal
}

// NewSynchroniser is the preferred method of initialisation for the
// Synchroniser type.
func NewSynchroniser() *Synchroniser {
	syn := &Synchroniser{}
	syn.Reset()
	return syn
}

func (syn *Synchroniser) String() string {
	return fmt.Sprintf("nCS=%s SCLK=%s SDATA=%s", syn.ChipSelect, syn.SerialClock, syn.SerialData)
}

// Reset puts every pipeline into the idle state of its line. Chip select is
// active-low so its idle level is high.
func (syn *Synchroniser) Reset() {
	syn.ChipSelect.fill(true)
	syn.SerialClock.fill(false)
	syn.SerialData.fill(false)
}

// Step samples the raw pin levels. This happens every tick, regardless of the
// state of chip select.
func (syn *Synchroniser) Step(in pins.Pins) {
	syn.ChipSelect.sample(in.ChipSelect)
	syn.SerialClock.sample(in.SerialClock)
	syn.SerialData.sample(in.SerialData)
}

// Snapshot creates a copy of the Synchroniser in its current state.
func (syn *Synchroniser) Snapshot() *Synchroniser {
	n := *syn
	return &n
}

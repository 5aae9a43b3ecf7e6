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


package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/hardware/pins"
	"github.com/jetsetilly/spipwm/test"
	"github.com/jetsetilly/spipwm/wavwriter"
)

func TestParameters(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	_, err := wavwriter.New(fn, nil, 1)
	test.ExpectEquality(t, curated.Is(err, wavwriter.NoChannels), true)
	_, err = wavwriter.New(fn, []int{0, 16}, 1)
	test.ExpectEquality(t, curated.Is(err, wavwriter.ChannelRange), true)
	_, err = wavwriter.New(fn, []int{0}, 0)
	test.ExpectEquality(t, curated.Is(err, wavwriter.DecimateRange), true)

	aw, err := wavwriter.New(fn, []int{0}, wavwriter.DefaultDecimate)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, aw.SampleRate(), 100000)
}

func TestWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(fn, []int{0, 15}, 4)
	test.DemandSuccess(t, err)

	// channel 0 toggles every 8 ticks. channel 15 is always high
	for i := 0; i < 64; i++ {
		o := pins.Output(0x8000)
		if (i/8)%2 == 0 {
			o |= 0x0001
		}
		aw.Tick(o)
	}
	test.ExpectEquality(t, aw.Samples(), 16)
	test.DemandSuccess(t, aw.Close())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandEquality(t, dec.IsValidFile(), true)
	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, int(dec.NumChans), 2)
	test.ExpectEquality(t, int(dec.SampleRate), aw.SampleRate())
	test.ExpectEquality(t, int(dec.BitDepth), 16)
	test.DemandEquality(t, len(buf.Data), 32)

	for i := 0; i < 16; i++ {
		ch0 := buf.Data[i*2]
		ch15 := buf.Data[i*2+1]
		test.ExpectEquality(t, ch15 > 0, true, i)
		test.ExpectEquality(t, ch0 > 0, (i/2)%2 == 0, i)
	}
}

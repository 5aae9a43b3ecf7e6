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


// Package wavwriter allows writing of output channels to disk as a WAV file.
// Each selected output channel is a channel in the WAV file. A channel that
// is high is a positive sample and a channel that is low is a negative
// sample.
//
// Note that data is buffered in memory in its entirity, and written to disk
// when the WavWriter is closed. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/hardware/clocks"
	"github.com/jetsetilly/spipwm/hardware/pins"
	"github.com/jetsetilly/spipwm/logger"
)

// Sentinal error patterns.
const (
	NoChannels    = "wavwriter: no channels"
	ChannelRange  = "wavwriter: channel out of range (%d)"
	DecimateRange = "wavwriter: decimation out of range (%d)"
)

// DefaultDecimate is the number of ticks for each sample by default. With the
// system clock running at 10MHz this is a sample rate of 100kHz.
const DefaultDecimate = 100

const (
	bitDepth  = 16
	levelHigh = 0x3fff
	levelLow  = -0x3fff

	// PCM audio format
	audioFormat = 1
)

// WavWriter collects samples of the output channels.
type WavWriter struct {
	filename string
	channels []int
	decimate int

	// ticks since the last sample
	ct int

	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type. The
// channels argument lists the output channels to be written, in order. A
// sample is taken every decimate ticks.
func New(filename string, channels []int, decimate int) (*WavWriter, error) {
	if len(channels) == 0 {
		return nil, curated.Errorf(NoChannels)
	}
	for _, c := range channels {
		if c < 0 || c >= pins.NumChannels {
			return nil, curated.Errorf(ChannelRange, c)
		}
	}
	if decimate < 1 {
		return nil, curated.Errorf(DecimateRange, decimate)
	}

	aw := &WavWriter{
		filename: filename,
		channels: channels,
		decimate: decimate,
		buffer:   make([]int, 0),
	}

	return aw, nil
}

// SampleRate returns the sample rate of the WAV file in Hz.
func (aw *WavWriter) SampleRate() int {
	return int(clocks.SystemHz) / aw.decimate
}

// Samples returns the number of samples collected for each channel.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer) / len(aw.channels)
}

// Tick should be called with the output vector for every tick.
func (aw *WavWriter) Tick(o pins.Output) {
	if aw.ct > 0 {
		aw.ct--
		return
	}
	aw.ct = aw.decimate - 1

	for _, c := range aw.channels {
		if o.Bit(c) {
			aw.buffer = append(aw.buffer, levelHigh)
		} else {
			aw.buffer = append(aw.buffer, levelLow)
		}
	}
}

// Close writes the collected samples to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.SampleRate(), bitDepth, len(aw.channels), audioFormat)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: len(aw.channels),
			SampleRate:  aw.SampleRate(),
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", aw.Samples(), aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

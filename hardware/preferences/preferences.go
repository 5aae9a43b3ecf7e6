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

// Package preferences collates the preference values used when driving the
// peripheral. The design constants of the peripheral itself (frame width,
// prescale threshold) are not preferences and can not be changed.
package preferences

import (
	"github.com/jetsetilly/spipwm/paths"
	"github.com/jetsetilly/spipwm/prefs"
)

// the name of the preferences file in the resource directory.
const prefsFile = "preferences"

// default values for the preferences. the serial clock timing matches a
// 100kHz serial clock when the system clock is running at 10MHz.
const (
	DefaultHalfPeriod     = 50
	DefaultSettle         = 600
	DefaultLead           = 1
	DefaultMeasureTimeout = 50000
)

// Preferences defines and collates all the preference values.
type Preferences struct {
	dsk *prefs.Disk

	// number of ticks the serial clock is held low and then high for each
	// bit of a transaction
	HalfPeriod prefs.Int

	// number of idle ticks after chip select has been released
	Settle prefs.Int

	// number of ticks between chip select assertion and the first bit
	Lead prefs.Int

	// number of ticks to wait for an edge when measuring a channel
	MeasureTimeout prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are loaded from the default location on disk.
func NewPreferences() (*Preferences, error) {
	return NewPreferencesFromFile(paths.ResourcePath(prefsFile))
}

// NewPreferencesFromFile is like NewPreferences but the location of the
// preferences file is specified. An empty filename means that the preferences
// are never saved or loaded from disk.
func NewPreferencesFromFile(filename string) (*Preferences, error) {
	p := &Preferences{}

	p.HalfPeriod.SetRange(1, 1000000)
	p.Settle.SetRange(0, 10000000)
	p.Lead.SetRange(1, 1000000)
	p.MeasureTimeout.SetRange(1, 100000000)

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	var err error
	p.dsk, err = prefs.NewDisk(filename)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("stimulus.halfperiod", &p.HalfPeriod); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("stimulus.settle", &p.Settle); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("stimulus.lead", &p.Lead); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("measure.timeout", &p.MeasureTimeout); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.HalfPeriod.Set(DefaultHalfPeriod); err != nil {
		return err
	}
	if err := p.Settle.Set(DefaultSettle); err != nil {
		return err
	}
	if err := p.Lead.Set(DefaultLead); err != nil {
		return err
	}
	return p.MeasureTimeout.Set(DefaultMeasureTimeout)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

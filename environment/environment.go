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

// Package environment provides the context for a peripheral instance. More
// than one peripheral can exist at the same time (measurement runs on a copy
// of the main peripheral for example) and the environment is how the
// instances are told apart.
package environment

import (
	"github.com/jetsetilly/spipwm/hardware/preferences"
)

// Label is used to name the environment.
type Label string

// MainPeripheral is the label for the main peripheral instance.
const MainPeripheral = Label("")

// Environment is used to provide context for a peripheral.
type Environment struct {
	Label Label

	// the preferences used when driving the peripheral
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
//
// The prefs argument can be nil, in which case a new Preferences instance will
// be created. Providing a non-nil value allows the preferences of more than
// one peripheral to be shared.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// testing where the timing of the stimulus must be the same for every run.
func (env *Environment) Normalise() error {
	return env.Prefs.SetDefaults()
}

// IsMainPeripheral returns true if the environment is intended for the main
// peripheral instance.
func (env *Environment) IsMainPeripheral() bool {
	return env.Label == MainPeripheral
}

// AllowLogging implements the logger.Permission interface. Only the main
// peripheral instance is allowed to log. A nil environment never logs.
func (env *Environment) AllowLogging() bool {
	if env == nil {
		return false
	}
	return env.IsMainPeripheral()
}

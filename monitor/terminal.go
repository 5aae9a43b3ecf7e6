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


package monitor

import (
	"os"

	"github.com/jetsetilly/spipwm/curated"
	"github.com/pkg/term"
)

// the terminal device opened for keyboard input.
const ttyDevice = "/dev/tty"

// Terminal is a wrapper for "github.com/pkg/term". The terminal is put into
// cbreak mode on opening and key presses are delivered on the channel
// returned by Keys().
type Terminal struct {
	tty  *term.Term
	keys chan byte
}

// OpenTerminal is the preferred method of initialisation for the Terminal
// type.
func OpenTerminal() (*Terminal, error) {
	tty, err := term.Open(ttyDevice, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf("monitor: %v", err)
	}

	trm := &Terminal{
		tty:  tty,
		keys: make(chan byte, 16),
	}

	// the read loop ends when the terminal is closed
	go func() {
		defer close(trm.keys)
		b := make([]byte, 1)
		for {
			n, err := trm.tty.Read(b)
			if err != nil {
				return
			}
			if n == 1 {
				trm.keys <- b[0]
			}
		}
	}()

	return trm, nil
}

// Keys returns the channel on which key presses are sent. The channel is
// closed when the terminal is closed or can no longer be read.
func (trm *Terminal) Keys() <-chan byte {
	return trm.keys
}

// Output is the file that the view should be written to.
func (trm *Terminal) Output() *os.File {
	return os.Stdout
}

// Close restores the terminal to the mode it was in before opening.
func (trm *Terminal) Close() error {
	os.Stdout.WriteString(ansiShowCursor)

	err := trm.tty.Restore()
	if err != nil {
		trm.tty.Close()
		return curated.Errorf("monitor: %v", err)
	}
	err = trm.tty.Close()
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	return nil
}

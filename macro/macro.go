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


package macro

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/hardware/decoder"
	"github.com/jetsetilly/spipwm/hardware/pwm"
	"github.com/jetsetilly/spipwm/hardware/registers"
	"github.com/jetsetilly/spipwm/logger"
	"github.com/jetsetilly/spipwm/stimulus"
)

// Sentinal error patterns.
const (
	NotAMacro  = "macro: %s: not a macro file"
	MacroError = "macro: %s: %d: %v"
)

const headerID = "spipwmmacro"

// the number of lines in the header. used to adjust line numbers in error
// messages.
const headerNumLines = 1

// the default number of ticks for the WAIT and RESET instructions.
const (
	defaultWait  = pwm.Period
	defaultReset = 1
)

// Macro is a sequence of instructions that can be run into a
// stimulus.Master.
type Macro struct {
	filename     string
	instructions []string
}

// NewMacro is the preferred method of initialisation for the Macro type. The
// macro is read from the named file.
func NewMacro(filename string) (*Macro, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("macro: %v", err)
	}
	defer f.Close()

	return Read(filename, f)
}

// Read a macro from an io.Reader. The name is used in error messages.
func Read(name string, r io.Reader) (*Macro, error) {
	mcr := &Macro{
		filename: name,
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		mcr.instructions = append(mcr.instructions, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("macro: %v", err)
	}

	if len(mcr.instructions) < headerNumLines {
		return nil, curated.Errorf(NotAMacro, name)
	}
	if strings.TrimSpace(mcr.instructions[0]) != headerID {
		return nil, curated.Errorf(NotAMacro, name)
	}

	// we no longer need the header
	mcr.instructions = mcr.instructions[headerNumLines:]

	return mcr, nil
}

type loop struct {
	line int

	// loop counters count upwards because it is more natural when
	// referencing the counter value to think of the counter as counting
	// upwards
	count    int
	countEnd int

	// if loop counter has been named then we need to know it so that we can
	// update the entry in the variables table
	countName string
}

// Run the macro to completion, queueing every transaction with the master.
// The first error in the macro ends the run.
func (mcr *Macro) Run(m *stimulus.Master) error {
	var loops []loop
	variables := make(map[string]int)

	fail := func(ln int, err error) error {
		return curated.Errorf(MacroError, mcr.filename, ln+headerNumLines+1, err)
	}

	// convert a number or a variable reference
	value := func(s string, bitSize int) (int, error) {
		if s[0] == '%' {
			v, ok := variables[s[1:]]
			if !ok {
				return 0, fmt.Errorf("variable '%s' does not exist", s[1:])
			}
			if v>>bitSize != 0 {
				return 0, fmt.Errorf("variable '%s' out of range (%d)", s[1:], v)
			}
			return v, nil
		}

		// convert hex indicator to one that ParseUint can deal with
		if s[0] == '$' {
			s = fmt.Sprintf("0x%s", s[1:])
		}

		v, err := strconv.ParseUint(s, 0, bitSize)
		if err != nil {
			return 0, fmt.Errorf("invalid value: %s", s)
		}
		return int(v), nil
	}

	address := func(s string) (int, error) {
		if a, ok := registers.Lookup(strings.ToUpper(s)); ok {
			return int(a), nil
		}
		return value(s, 7)
	}

	// parse the arguments of the WRITE, READ and ABORT instructions
	transaction := func(toks []string, write bool) (stimulus.Transaction, error) {
		var tr stimulus.Transaction
		var err error

		tr.Write = write
		tr.Address, err = address(toks[0])
		if err != nil {
			return tr, err
		}
		d, err := value(toks[1], 8)
		if err != nil {
			return tr, err
		}
		tr.Data = uint8(d)

		return tr, nil
	}

	for ln := 0; ln < len(mcr.instructions); ln++ {
		toks := strings.Fields(mcr.instructions[ln])
		if len(toks) == 0 {
			continue // for loop
		}

		// comment lines need not have white space after the dashes
		if strings.HasPrefix(toks[0], "--") {
			continue // for loop
		}

		switch strings.ToUpper(toks[0]) {
		default:
			return fail(ln, fmt.Errorf("unrecognised instruction: %s", toks[0]))

		case "DO":
			tl := len(toks)
			switch tl {
			case 1:
				return fail(ln, fmt.Errorf("too few arguments for DO"))
			case 3:
				fallthrough
			case 2:
				ct, err := strconv.Atoi(toks[1])
				if err != nil {
					return fail(ln, err)
				}
				if ct < 1 {
					return fail(ln, fmt.Errorf("loop count must be positive (%d)", ct))
				}
				lp := loop{
					line:     ln,
					countEnd: ct,
				}
				if tl == 3 {
					lp.countName = toks[2]
					variables[lp.countName] = lp.count
				}
				loops = append(loops, lp)
			default:
				return fail(ln, fmt.Errorf("too many arguments for DO"))
			}

		case "LOOP":
			if len(toks) > 1 {
				return fail(ln, fmt.Errorf("too many arguments for LOOP"))
			}

			idx := len(loops) - 1
			if idx == -1 {
				return fail(ln, fmt.Errorf("LOOP without a DO"))
			}

			lp := &loops[idx]
			lp.count++

			if lp.count < lp.countEnd {
				// loop is ongoing so return to start of loop
				ln = lp.line

				// update named variable
				if lp.countName != "" {
					variables[lp.countName] = lp.count
				}
			} else {
				// loop has ended. remove from loop stack and delete variable name
				loops = loops[:idx]
				delete(variables, lp.countName)
			}

		case "WRITE", "READ":
			if len(toks) != 3 {
				return fail(ln, fmt.Errorf("%s requires an address and a value", toks[0]))
			}
			tr, err := transaction(toks[1:], strings.ToUpper(toks[0]) == "WRITE")
			if err != nil {
				return fail(ln, err)
			}
			if err := m.Queue(tr); err != nil {
				return fail(ln, err)
			}

		case "ABORT":
			if len(toks) != 4 {
				return fail(ln, fmt.Errorf("ABORT requires an address, a value and a bit count"))
			}
			tr, err := transaction(toks[1:3], true)
			if err != nil {
				return fail(ln, err)
			}
			tr.Bits, err = value(toks[3], 8)
			if err != nil {
				return fail(ln, err)
			}
			if tr.Bits == 0 || tr.Bits >= decoder.FrameBits {
				return fail(ln, fmt.Errorf("ABORT bit count must be between 1 and %d", decoder.FrameBits-1))
			}
			if err := m.Queue(tr); err != nil {
				return fail(ln, err)
			}

		case "BITS":
			if len(toks) != 3 {
				return fail(ln, fmt.Errorf("BITS requires a value and a bit count"))
			}
			v, err := value(toks[1], 32)
			if err != nil {
				return fail(ln, err)
			}
			n, err := value(toks[2], 8)
			if err != nil {
				return fail(ln, err)
			}
			if err := m.QueueBits(uint32(v), n); err != nil {
				return fail(ln, err)
			}

		case "WAIT", "RESET":
			w := defaultWait
			if strings.ToUpper(toks[0]) == "RESET" {
				w = defaultReset
			}

			switch len(toks) {
			case 2:
				var err error
				w, err = value(toks[1], 31)
				if err != nil {
					return fail(ln, err)
				}
			case 1:
			default:
				return fail(ln, fmt.Errorf("too many arguments for %s", toks[0]))
			}

			if strings.ToUpper(toks[0]) == "RESET" {
				m.Reset(w)
			} else {
				m.Wait(w)
			}
		}
	}

	if len(loops) > 0 {
		return fail(loops[len(loops)-1].line, fmt.Errorf("DO without a LOOP"))
	}

	logger.Logf(logger.Allow, "macro", "%s: %d ticks queued", mcr.filename, m.Pending())

	return nil
}

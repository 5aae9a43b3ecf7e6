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


package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/digest"
	"github.com/jetsetilly/spipwm/environment"
	"github.com/jetsetilly/spipwm/govern"
	"github.com/jetsetilly/spipwm/hardware"
	"github.com/jetsetilly/spipwm/hardware/clocks"
	"github.com/jetsetilly/spipwm/hardware/pwm"
	"github.com/jetsetilly/spipwm/logger"
	"github.com/jetsetilly/spipwm/macro"
	"github.com/jetsetilly/spipwm/measure"
	"github.com/jetsetilly/spipwm/modalflag"
	"github.com/jetsetilly/spipwm/monitor"
	"github.com/jetsetilly/spipwm/performance"
	"github.com/jetsetilly/spipwm/prefs"
	"github.com/jetsetilly/spipwm/statsview"
	"github.com/jetsetilly/spipwm/stimulus"
	"github.com/jetsetilly/spipwm/version"
	"github.com/jetsetilly/spipwm/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the WATCH mode handles ctrl-c as a key
	// press.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// ctrl-c default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "WATCH", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "WATCH":
		err = watch(md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// create the main peripheral. the prefs argument is a list of preference
// overrides in the form "key::value; key::value".
func newPeripheral(output io.Writer, prefsOverrides string) (*hardware.Peripheral, error) {
	prefs.PushCommandLineStack(prefsOverrides)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(output, "* unused preferences: %s\n", unused)
		}
	}()

	env, err := environment.NewEnvironment(environment.MainPeripheral, nil)
	if err != nil {
		return nil, err
	}

	return hardware.NewPeripheral(env)
}

// create a stimulus master and queue the contents of the macro file, if any.
func newMaster(p *hardware.Peripheral, macroFile string) (*stimulus.Master, error) {
	m, err := stimulus.NewMaster(stimulus.TimingFromPrefs(p.Env.Prefs))
	if err != nil {
		return nil, err
	}

	if macroFile != "" {
		mcr, err := macro.NewMacro(macroFile)
		if err != nil {
			return nil, err
		}
		err = mcr.Run(m)
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

func setLogEcho(output io.Writer, log bool) {
	if log {
		logger.SetEcho(output, false)
	} else {
		logger.SetEcho(nil, false)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	macroFile := md.AddString("macro", "", "macro file describing the transactions to send")
	ticks := md.AddInt("ticks", pwm.Period*4, "number of ticks to run after the macro has completed")
	wavFile := md.AddString("wav", "", "record output channels to WAV file")
	channels := md.AddChannels("channels", []int{0}, "output channels to record to the WAV file")
	decimate := md.AddInt("decimate", wavwriter.DefaultDecimate, "number of ticks for each WAV sample")
	measureChannels := md.AddChannels("measure", nil, "output channels to measure at the end of the run")
	showDigest := md.AddBool("digest", false, "print digest of the output vector")
	memvizFile := md.AddString("memviz", "", "write graphviz description of the peripheral to file")
	log := md.AddBool("log", false, "echo log to stdout")
	prefsOverrides := md.AddString("prefs", "", "preference overrides (key::value; key::value)")
	savePrefs := md.AddBool("saveprefs", false, "save preferences to disk")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}
	if *ticks < 0 {
		return fmt.Errorf("ticks must not be negative (%d)", *ticks)
	}

	setLogEcho(md.Output, *log)

	pk, err := newPeripheral(md.Output, *prefsOverrides)
	if err != nil {
		return err
	}

	if *savePrefs {
		err = pk.Env.Prefs.Save()
		if err != nil {
			return err
		}
	}

	m, err := newMaster(pk, *macroFile)
	if err != nil {
		return err
	}

	var wav *wavwriter.WavWriter
	if *wavFile != "" {
		wav, err = wavwriter.New(*wavFile, *channels, *decimate)
		if err != nil {
			return err
		}
	}

	var dig *digest.Output
	if *showDigest {
		dig = digest.NewOutput()
	}

	total := m.Pending() + *ticks
	err = pk.RunForTicks(total, m.Input(), func(_ int) (govern.State, error) {
		o := pk.Output()
		if wav != nil {
			wav.Tick(o)
		}
		if dig != nil {
			if err := dig.Tick(o); err != nil {
				return govern.Ending, err
			}
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "ticks:     %d (%.6fs)\n", pk.Ticks, clocks.TicksToSeconds(int(pk.Ticks)))
	fmt.Fprintf(md.Output, "registers: %s\n", pk.Regs)
	fmt.Fprintf(md.Output, "output:    %s\n", pk.Output())
	fmt.Fprintf(md.Output, "commits:   %d of %d transactions\n", pk.Decoder.Commits, pk.Decoder.Transactions)

	if dig != nil {
		if err := dig.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "digest:    %s\n", dig.Hash())
	}

	timeout := pk.Env.Prefs.MeasureTimeout.Get().(int)
	for _, c := range *measureChannels {
		r, err := measure.Channel(pk, c, timeout)
		if err != nil {
			return err
		}
		if r.Constant {
			fmt.Fprintf(md.Output, "channel %2d: %s\n", c, r)
		} else {
			fmt.Fprintf(md.Output, "channel %2d: %s %.1fHz\n", c, r, r.Frequency(clocks.SystemHz))
		}
	}

	if wav != nil {
		if err := wav.Close(); err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		memviz.Map(f, pk)
		if err := f.Close(); err != nil {
			return curated.Errorf("memviz: %v", err)
		}
	}

	return nil
}

func watch(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	macroFile := md.AddString("macro", "", "macro file describing the transactions to send")
	rate := md.AddInt("rate", 0, "ticks per second (zero for unlimited)")
	log := md.AddBool("log", false, "echo log to stdout")
	prefsOverrides := md.AddString("prefs", "", "preference overrides (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	setLogEcho(md.Output, *log)

	pk, err := newPeripheral(md.Output, *prefsOverrides)
	if err != nil {
		return err
	}

	m, err := newMaster(pk, *macroFile)
	if err != nil {
		return err
	}

	trm, err := monitor.OpenTerminal()
	if err != nil {
		return err
	}
	defer trm.Close()

	// ctrl-c is handled by the monitor
	sync.state <- stateRequest{req: reqNoIntSig}

	mon := monitor.NewMonitor(pk, m.Input(), trm.Output(), trm.Keys())
	mon.Rate = *rate

	return mon.Run()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	macroFile := md.AddString("macro", "", "macro file describing the transactions to send")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%v)", statsview.Available()))
	prefsOverrides := md.AddString("prefs", "", "preference overrides (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(md.Output)
	}

	pk, err := newPeripheral(md.Output, *prefsOverrides)
	if err != nil {
		return err
	}

	m, err := newMaster(pk, *macroFile)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, pk, m.Input(), *duration)
}

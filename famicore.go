// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/easyterm"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/harness"
	"github.com/famicore/famicore/logger"
	"github.com/famicore/famicore/modalflag"
	"github.com/famicore/famicore/performance"
	"github.com/famicore/famicore/statedump"
	"github.com/famicore/famicore/statsview"
)

// exit values returned by launch()
const (
	exitOK        = 0
	exitParse     = 10
	exitMode      = 20
	exitFailed    = 30
	exitInterrupt = 40
)

const additionalHelp = `famicore runs flat binary images on an emulation of the NES CPU.
Addresses are in hexadecimal. Illegal opcode policies are strict, nop or emulate.`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(launch(ctx, os.Args[1:], os.Stdout))
}

// launch runs the program with the command line arguments and returns the
// exit value.
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "TEST", "STEP", "PERFORMANCE")
	md.AdditionalHelp(additionalHelp)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	var passed bool

	switch md.Mode() {
	case "RUN":
		passed, err = run(ctx, md, output)
	case "TEST":
		passed, err = batch(ctx, md, output)
	case "STEP":
		passed, err = step(md, output)
	case "PERFORMANCE":
		passed, err = perform(ctx, md, output)
	}

	// an interrupted program may also have returned an error
	if ctx.Err() != nil {
		return exitInterrupt
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitMode
	}

	if !passed {
		return exitFailed
	}

	return exitOK
}

// flags common to all modes that run a program
type programFlags struct {
	md      *modalflag.Modes
	load    *uint16
	entry   *uint16
	success *uint16
	reset   *bool
	random  *bool
	log     *bool
	illegal cpu.IllegalPolicy
}

func addProgramFlags(md *modalflag.Modes) *programFlags {
	pf := &programFlags{md: md}
	pf.load = md.AddAddress("load", 0x0000, "load address of image")
	pf.entry = md.AddAddress("entry", 0x0400, "entry address (ignored with -reset)")
	pf.success = md.AddAddress("success", 0x0000, "success address (if not set the first trap is a success)")
	pf.reset = md.AddBool("reset", false, "load PC from the reset vector in the image")
	pf.random = md.AddBool("random", false, "randomise registers on reset")
	pf.log = md.AddBool("log", false, "echo log to stdout")
	md.AddFunc("illegal", "illegal opcode policy: strict, nop, emulate (default strict)", func(s string) error {
		var err error
		pf.illegal, err = cpu.ParseIllegalPolicy(s)
		return err
	})
	return pf
}

func (pf *programFlags) preferences() cpu.Preferences {
	prefs := cpu.DefaultPreferences()
	prefs.Illegal = pf.illegal
	prefs.RandomState = *pf.random
	return prefs
}

func (pf *programFlags) program(filename string) (harness.Program, error) {
	prog, err := harness.LoadProgram(filename, *pf.load)
	if err != nil {
		return prog, err
	}
	prog.Entry = *pf.entry
	prog.ResetVector = *pf.reset
	if pf.md.IsSet("success") {
		prog.Success = *pf.success
		prog.HasSuccess = true
	}
	return prog, nil
}

func (pf *programFlags) echoLog(output io.Writer) {
	if *pf.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer) (bool, error) {
	md.NewMode()

	pf := addProgramFlags(md)
	limit := md.AddUint64("limit", 100000000, "cycle limit (0 for no limit)")
	history := md.AddBool("history", false, "print execution history at end of run")
	memviz := md.AddString("memviz", "", "write DOT rendering of final CPU state to file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return true, err
	}

	pf.echoLog(output)

	if *stats {
		statsview.Launch(output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return false, curated.Errorf("image required for %s mode", md)
	case 1:
	default:
		return false, curated.Errorf("too many arguments for %s mode", md)
	}

	prog, err := pf.program(md.GetArg(0))
	if err != nil {
		return false, err
	}

	rep, runErr := harness.Run(ctx, prog, pf.preferences(), *limit)

	fmt.Fprintln(output, rep)
	if runErr != nil {
		fmt.Fprintf(output, "* %v\n", runErr)
	}

	if *history || runErr != nil {
		rep.WriteHistory(output)
	}

	if *memviz != "" && rep.CPU != nil {
		if err := statedump.WriteFile(*memviz, rep.CPU); err != nil {
			return false, err
		}
	}

	return rep.Passed, nil
}

func batch(ctx context.Context, md *modalflag.Modes, output io.Writer) (bool, error) {
	md.NewMode()

	pf := addProgramFlags(md)
	limit := md.AddUint64("limit", 100000000, "cycle limit for each image (0 for no limit)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return true, err
	}

	pf.echoLog(output)

	if len(md.RemainingArgs()) == 0 {
		return false, curated.Errorf("at least one image required for %s mode", md)
	}

	var progs []harness.Program
	for _, fn := range md.RemainingArgs() {
		prog, err := pf.program(fn)
		if err != nil {
			return false, err
		}
		progs = append(progs, prog)
	}

	outcomes, err := harness.RunBatch(ctx, progs, pf.preferences(), *limit)
	if err != nil {
		return false, err
	}

	passed := true
	for _, o := range outcomes {
		fmt.Fprintln(output, o.Report)
		if o.Err != nil {
			fmt.Fprintf(output, "* %v\n", o.Err)
		}
		passed = passed && o.Report.Passed
	}

	return passed, nil
}

func step(md *modalflag.Modes, output io.Writer) (bool, error) {
	md.NewMode()

	pf := addProgramFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return true, err
	}

	pf.echoLog(output)

	if len(md.RemainingArgs()) != 1 {
		return false, curated.Errorf("one image required for %s mode", md)
	}

	prog, err := pf.program(md.GetArg(0))
	if err != nil {
		return false, err
	}

	var term easyterm.Terminal
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return false, err
	}

	if err := term.CBreakMode(); err != nil {
		return false, err
	}
	defer term.CanonicalMode()

	return stepper(&term, prog, pf.preferences())
}

// the subset of easyterm.Terminal used by the stepper
type stepTerminal interface {
	Print(s string, a ...any)
	ReadKey() (byte, error)
}

// stepper executes one instruction of the program for every key press.
func stepper(term stepTerminal, prog harness.Program, prefs cpu.Preferences) (bool, error) {
	mem, err := harness.NewMemory(prog)
	if err != nil {
		return false, err
	}

	mc := cpu.NewCPU(mem, prefs)
	reset := func() {
		if prog.ResetVector {
			mc.Reset()
		} else {
			mc.ResetAt(prog.Entry)
		}
	}
	reset()

	term.Print("%s\n", mc)
	term.Print("q: quit, r: reset, i: irq, n: nmi, any other key: step\n")

	for {
		k, err := term.ReadKey()
		if err != nil {
			if err == io.EOF {
				return true, nil
			}
			return false, err
		}

		switch k {
		case 'q', 'Q', easyterm.KeyCtrlD:
			return true, nil
		case 'r', 'R':
			reset()
			term.Print("reset: %s\n", mc)
		case 'i', 'I':
			term.Print("irq (%d cycles): %s\n", mc.IRQ(), mc)
		case 'n', 'N':
			term.Print("nmi (%d cycles): %s\n", mc.NMI(), mc)
		default:
			if _, err := mc.Step(); err != nil {
				term.Print("* %v\n", err)
				continue
			}
			term.Print("%s\n", mc.Trace())
		}
	}
}

func perform(ctx context.Context, md *modalflag.Modes, output io.Writer) (bool, error) {
	md.NewMode()

	pf := addProgramFlags(md)
	limit := md.AddUint64("limit", 1000000, "cycle limit for each run (0 for no limit)")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "NONE", "create profiling reports: CPU, MEM, TRACE, ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return true, err
	}

	pf.echoLog(output)

	if len(md.RemainingArgs()) != 1 {
		return false, curated.Errorf("one image required for %s mode", md)
	}

	prog, err := pf.program(md.GetArg(0))
	if err != nil {
		return false, err
	}

	dur, err := time.ParseDuration(*duration)
	if err != nil {
		return false, curated.Errorf("performance: %v", err)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return false, err
	}

	_, err = performance.Check(ctx, output, prf, prog, pf.preferences(), *limit, dur)
	if err != nil {
		return false, err
	}

	return true, nil
}

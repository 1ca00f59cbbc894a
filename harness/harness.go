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

package harness

import (
	"context"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory"
	"github.com/famicore/famicore/logger"
)

// Sentinel error patterns returned by Run().
const (
	Trapped     = "harness: %s: trapped at (%#04x)"
	CycleLimit  = "harness: %s: cycle limit (%d) reached at (%#04x)"
	Failed      = "harness: %s: %v"
	Interrupted = "harness: %s: interrupted at (%#04x)"
)

// the number of instructions between checks of the context
const interruptCheck = 1024

// Run the program until it passes, traps, reaches the cycle limit or causes
// the CPU to return an error. A limit of zero means that there is no cycle
// limit. The run also ends with the Interrupted error if the context is
// cancelled.
//
// The Report is valid even when an error is returned.
func Run(ctx context.Context, prog Program, prefs cpu.Preferences, limit uint64) (Report, error) {
	mem, err := NewMemory(prog)
	if err != nil {
		return Report{Name: prog.Name}, err
	}
	return run(ctx, prog, mem, cpu.NewCPU(mem, prefs), limit)
}

// NewMemory returns a new instance of memory.RAM with the program loaded.
func NewMemory(prog Program) (*memory.RAM, error) {
	mem := memory.NewRAM()
	if err := mem.Load(prog.Load, prog.Data); err != nil {
		return nil, curated.Errorf(Failed, prog.Name, err)
	}
	return mem, nil
}

func run(ctx context.Context, prog Program, mem *memory.RAM, mc *cpu.CPU, limit uint64) (Report, error) {
	if prog.ResetVector {
		mc.Reset()
	} else {
		mc.ResetAt(prog.Entry)
	}

	var history [historyLength]execution.Result
	var recorded int

	rep := Report{Name: prog.Name}

	// fill in the report with the final state of the CPU
	finish := func(passed bool) Report {
		rep.Passed = passed
		rep.Cycles = mc.Cycles()
		rep.Registers = mc.Registers()
		rep.History = append([]execution.Result{}, history[historyLength-recorded:]...)
		rep.CPU = mc.Snapshot()

		sp := rep.Registers.SP
		sp.Increment()
		if sp.Value() != 0 {
			for a := sp.Address(); a <= registers.StackPage|0xff; a++ {
				rep.Stack = append(rep.Stack, mem.Peek(a))
			}
		}
		return rep
	}

	for {
		addr := mc.Registers().PC.Address()

		if rep.Instructions%interruptCheck == 0 && ctx.Err() != nil {
			rep = finish(false)
			logger.Log(logger.Allow, "harness", rep)
			return rep, curated.Errorf(Interrupted, prog.Name, addr)
		}

		_, err := mc.Step()
		if err != nil {
			rep = finish(false)
			logger.Logf(logger.Allow, "harness", "%s: %v", prog.Name, err)
			return rep, curated.Errorf(Failed, prog.Name, err)
		}

		rep.Instructions++
		if mc.LastResult.Tolerated {
			rep.Tolerated++
		}

		copy(history[:], history[1:])
		history[historyLength-1] = mc.LastResult
		if recorded < historyLength {
			recorded++
		}

		pc := mc.Registers().PC.Address()

		if prog.HasSuccess && pc == prog.Success {
			rep = finish(true)
			logger.Log(logger.Allow, "harness", rep)
			return rep, nil
		}

		// "loop on program counter determines error or successful completion
		// of test"
		if pc == addr {
			if !prog.HasSuccess {
				rep = finish(true)
				logger.Log(logger.Allow, "harness", rep)
				return rep, nil
			}
			rep = finish(false)
			logger.Log(logger.Allow, "harness", rep)
			return rep, curated.Errorf(Trapped, prog.Name, pc)
		}

		if limit > 0 && mc.Cycles() >= limit {
			rep = finish(false)
			logger.Log(logger.Allow, "harness", rep)
			return rep, curated.Errorf(CycleLimit, prog.Name, limit, pc)
		}
	}
}

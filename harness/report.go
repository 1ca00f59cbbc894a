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
	"fmt"
	"io"

	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/registers"
)

// the number of execution results kept by a Report
const historyLength = 16

// Report is the outcome of a call to Run().
type Report struct {
	Name   string
	Passed bool

	// the number of instructions executed and the total number of cycles,
	// including the cycles taken by the reset sequence
	Instructions int
	Cycles       uint64

	// the number of undocumented opcodes executed under the nop or emulate
	// policies
	Tolerated int

	// the state of the CPU at the end of the run
	Registers registers.File

	// the most recent execution results, oldest first
	History []execution.Result

	// the stack page at the end of the run, from the top of the stack
	Stack []uint8

	// snapshot of the CPU at the end of the run. nil if the program could
	// not be loaded
	CPU *cpu.CPU
}

func (r Report) String() string {
	status := "failed"
	if r.Passed {
		status = "passed"
	}
	s := fmt.Sprintf("%s: %s at %s after %d instructions (%d cycles)",
		r.Name, status, r.Registers.PC, r.Instructions, r.Cycles)
	if r.Tolerated > 0 {
		s = fmt.Sprintf("%s [%d undocumented]", s, r.Tolerated)
	}
	return s
}

// WriteHistory writes the execution history and the final state of the
// registers to the io.Writer.
func (r Report) WriteHistory(w io.Writer) {
	for _, e := range r.History {
		io.WriteString(w, e.String())
		io.WriteString(w, "\n")
	}
	io.WriteString(w, r.Registers.String())
	io.WriteString(w, "\n")
	if len(r.Stack) > 0 {
		io.WriteString(w, fmt.Sprintf("stack: % 02x\n", r.Stack))
	}
}

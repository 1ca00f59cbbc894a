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

// Package statedump writes a Graphviz rendering of the CPU state. The
// rendering is produced by "github.com/bradleyjkemp/memviz" and is useful
// for seeing how the execution result refers to the opcode table.
//
// The output can be converted to an image with the dot command:
//
//	dot -Tsvg state.dot > state.svg
package statedump

import (
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/registers"
)

// State is the part of the CPU that is rendered. The CPU type itself is not
// rendered because memviz would follow the reference to memory.
type State struct {
	Registers  registers.File
	LastResult execution.Result
	Cycles     uint64
	Jammed     bool
}

// NewState copies the state of the CPU.
func NewState(mc *cpu.CPU) *State {
	return &State{
		Registers:  mc.Registers(),
		LastResult: mc.LastResult,
		Cycles:     mc.Cycles(),
		Jammed:     mc.IsJammed(),
	}
}

// Write the DOT rendering of the CPU state to the io.Writer.
func Write(w io.Writer, mc *cpu.CPU) {
	memviz.Map(w, NewState(mc))
}

// WriteFile writes the DOT rendering of the CPU state to the named file.
func WriteFile(filename string, mc *cpu.CPU) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("statedump: %v", err)
	}
	Write(f, mc)
	if err := f.Close(); err != nil {
		return curated.Errorf("statedump: %v", err)
	}
	return nil
}

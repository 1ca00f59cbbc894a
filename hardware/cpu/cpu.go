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

package cpu

import (
	"fmt"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/logger"
	"github.com/famicore/famicore/random"
)

// Sentinel error patterns returned by Step().
const (
	IllegalOpcode = "cpu: illegal opcode (%#02x) at (%#04x)"
	Jammed        = "cpu: jammed by opcode (%#02x) at (%#04x)"
)

// the number of cycles taken by the reset sequence and by interrupts
const interruptCycles = 7

// CPU implements the 6502 as found in the NES. Register logic is implemented
// by the types in the registers sub-package.
type CPU struct {
	regs  registers.File
	mem   cpubus.Memory
	prefs Preferences

	// last result. the result of the most recently executed instruction.
	// tracing tools can use this after every call to Step()
	LastResult execution.Result

	// total number of cycles since the CPU was created
	cycles uint64

	// the CPU has executed a KIL opcode. requires a Reset()
	jammed     bool
	jamOpcode  uint8
	jamAddress uint16

	// undocumented opcodes that have already been logged
	logged [256]bool

	random *random.Random
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU is in the power-on state but the PC is not loaded from the reset
// vector until Reset() is called.
func NewCPU(mem cpubus.Memory, prefs Preferences) *CPU {
	mc := &CPU{
		regs:  registers.NewFile(),
		mem:   mem,
		prefs: prefs,
	}
	mc.random = random.NewRandom(mc)
	return mc
}

func (mc *CPU) String() string {
	return mc.regs.String()
}

// Registers returns a copy of the register file.
func (mc *CPU) Registers() registers.File {
	return mc.regs
}

// LoadRegisters replaces the contents of the register file. The cycle count
// and the LastResult field are not changed.
func (mc *CPU) LoadRegisters(f registers.File) {
	mc.regs = f
}

// Cycles returns the total number of cycles executed, including cycles taken
// by the reset sequence and by interrupts.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// Preferences returns the preferences the CPU was created with.
func (mc *CPU) Preferences() Preferences {
	return mc.prefs
}

// IsJammed returns true if the CPU has executed a KIL opcode and has not
// been reset since.
func (mc *CPU) IsJammed() bool {
	return mc.jammed
}

// Reset puts the registers into the power-on state and loads the PC from the
// reset vector. Returns the number of cycles taken by the reset sequence.
func (mc *CPU) Reset() int {
	mc.powerOn()
	mc.regs.PC.Load(read16(mc.mem, cpubus.Reset))
	mc.cycles += interruptCycles
	return interruptCycles
}

// ResetAt is the same as Reset() except that the PC is loaded with the entry
// address rather than from the reset vector. Useful for test programs that
// have a fixed entry point.
func (mc *CPU) ResetAt(entry uint16) int {
	mc.powerOn()
	mc.regs.PC.Load(entry)
	mc.cycles += interruptCycles
	return interruptCycles
}

func (mc *CPU) powerOn() {
	mc.LastResult.Reset()
	mc.jammed = false
	mc.regs.PowerOn()

	if mc.prefs.RandomState {
		b := mc.random.Bytes(3)
		mc.regs.A.Load(b[0])
		mc.regs.X.Load(b[1])
		mc.regs.Y.Load(b[2])
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the memory of the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.random = random.NewRandom(&n)
	return &n
}

// Restore the CPU to the state of a snapshot. The memory is not changed.
func (mc *CPU) Restore(s *CPU) {
	mem := mc.mem
	rnd := mc.random
	*mc = *s
	mc.mem = mem
	mc.random = rnd
}

// Step executes the instruction at the PC. Returns the number of cycles
// taken by the instruction.
//
// Returns an IllegalOpcode error if the opcode is undocumented and the
// IllegalStrict policy is in effect. In which case the CPU state is
// unchanged. Returns a Jammed error if the CPU has been jammed by a KIL
// opcode.
func (mc *CPU) Step() (int, error) {
	if mc.jammed {
		return 0, curated.Errorf(Jammed, mc.jamOpcode, mc.jamAddress)
	}

	address := mc.regs.PC.Address()
	opcode := mc.mem.Read(address)
	defn := instructions.Lookup(opcode)

	// decide how to handle the opcode before changing any state
	h := handlers[defn.Operator]
	if defn.Undocumented {
		switch mc.prefs.Illegal {
		case IllegalStrict:
			return 0, curated.Errorf(IllegalOpcode, opcode, address)
		case IllegalNop:
			// undocumented NOPs already do nothing but they still read
			// their operand
			if defn.Operator != instructions.Nop {
				h = ignore
			}
		}
		if !mc.logged[opcode] {
			mc.logged[opcode] = true
			logger.Logf(logger.Allow, "cpu", "tolerating undocumented opcode %#02x (%s) at %#04x [%s]",
				opcode, defn.Operator, address, mc.prefs.Illegal)
		}
	}

	// operand bytes in little-endian order. the address wraps at the top of
	// memory
	var data uint16
	switch defn.Bytes {
	case 2:
		data = uint16(mc.mem.Read(address + 1))
	case 3:
		lo := mc.mem.Read(address + 1)
		hi := mc.mem.Read(address + 2)
		data = uint16(hi)<<8 | uint16(lo)
	}

	// the resolver works with the state of the registers before the PC has
	// been advanced
	op := resolve(defn, data, &mc.regs, mc.mem)
	mc.regs.PC.Add(uint16(defn.Bytes))

	extra := h(&mc.regs, mc.mem, op)

	cycles := defn.Cycles + extra
	if op.pageCrossed && defn.PageSensitive {
		cycles++
	}
	mc.cycles += uint64(cycles)

	mc.LastResult = execution.Result{
		Address:         address,
		Defn:            defn,
		ByteCount:       defn.Bytes,
		InstructionData: data,
		Cycles:          cycles,
		CPUBug:          op.bug,
		Tolerated:       defn.Undocumented,
		Final:           true,
	}

	if defn.IsBranch() {
		mc.LastResult.BranchSuccess = extra > 0
		mc.LastResult.PageFault = extra > 1
	} else {
		mc.LastResult.PageFault = op.pageCrossed && defn.PageSensitive
	}

	if defn.Operator == instructions.KIL && mc.prefs.Illegal == IllegalEmulate {
		mc.jammed = true
		mc.jamOpcode = opcode
		mc.jamAddress = address
		logger.Logf(logger.Allow, "cpu", "jammed by %s (%#02x) at %#04x", defn.Operator, opcode, address)
	}

	return cycles, nil
}

// adhoc interface exposing the Peek() function to the CPU
type peeker interface {
	Peek(address uint16) uint8
}

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment. Returns false if the memory implementation does not allow
// reading without side effects.
func (mc *CPU) PredictRTS() (uint16, bool) {
	p, ok := mc.mem.(peeker)
	if !ok {
		return 0, false
	}

	sp := mc.regs.SP
	sp.Increment()
	lo := p.Peek(sp.Address())
	sp.Increment()
	hi := p.Peek(sp.Address())

	return (uint16(hi)<<8 | uint16(lo)) + 1, true
}

// Trace returns the last result and the register file as a single line.
func (mc *CPU) Trace() string {
	return fmt.Sprintf("%-44s %s", mc.LastResult.String(), mc.regs.String())
}

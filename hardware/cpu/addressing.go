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
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// operand is the resolved operand of an instruction. it is only valid for
// the duration of the instruction.
type operand struct {
	mode instructions.AddressingMode

	// the effective address. not used for the Implied, Accumulator,
	// Immediate and Relative modes
	address uint16

	// the address before indexing was applied. for indirect modes this is
	// the address read from the pointer
	base uint16

	// the immediate value or the branch offset
	literal uint8

	// indexing has carried into the high byte of the address
	pageCrossed bool

	bug execution.Bug
}

// read the value of the operand.
func (op operand) read(regs *registers.File, mem cpubus.Memory) uint8 {
	switch op.mode {
	case instructions.Immediate, instructions.Relative:
		return op.literal
	case instructions.Accumulator:
		return regs.A.Value()
	}
	return mem.Read(op.address)
}

// write a value to the operand.
func (op operand) write(regs *registers.File, mem cpubus.Memory, v uint8) {
	if op.mode == instructions.Accumulator {
		regs.A.Load(v)
		return
	}
	mem.Write(op.address, v)
}

// modify performs a read-modify-write of the operand. the unmodified value
// is written back to memory before the result of the modification, as the
// hardware does. returns the modified value.
func (op operand) modify(regs *registers.File, mem cpubus.Memory, f func(v uint8) uint8) uint8 {
	v := op.read(regs, mem)
	r := f(v)
	if op.mode != instructions.Accumulator {
		mem.Write(op.address, v)
	}
	op.write(regs, mem, r)
	return r
}

// resolve the addressing mode and the operand bytes of an instruction into
// an operand. the effective address is never read by resolve(). only the
// pointers of the indirect modes are read.
//
// data is the operand bytes of the instruction in little-endian order.
func resolve(defn *instructions.Definition, data uint16, regs *registers.File, mem cpubus.Memory) operand {
	op := operand{mode: defn.AddressingMode}

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:

	case instructions.Immediate, instructions.Relative:
		op.literal = uint8(data)

	case instructions.Absolute:
		op.address = data
		op.base = data

	case instructions.ZeroPage:
		op.address = data & 0x00ff
		op.base = op.address

	case instructions.Indirect:
		// the pointer does not carry into the high byte when reading the
		// high byte of the address. ie. JMP ($10ff) will read the high byte
		// from $1000 and not $1100
		lo := mem.Read(data)
		hi := mem.Read((data & 0xff00) | ((data + 1) & 0x00ff))
		op.address = uint16(hi)<<8 | uint16(lo)
		op.base = data
		if data&0x00ff == 0x00ff {
			op.bug = execution.JmpIndirectAddressingBug
		}

	case instructions.IndexedIndirect: // x indexing
		ptr := uint8(data) + regs.X.Value()
		if ptr < uint8(data) {
			op.bug = execution.ZeroPageIndexBug
		}
		lo := mem.Read(uint16(ptr))
		hi := mem.Read(uint16(ptr + 1))
		if ptr == 0xff {
			op.bug = execution.IndexedIndirectAddressingBug
		}
		op.address = uint16(hi)<<8 | uint16(lo)
		op.base = op.address

	case instructions.IndirectIndexed: // y indexing
		ptr := uint8(data)
		lo := mem.Read(uint16(ptr))
		hi := mem.Read(uint16(ptr + 1))
		if ptr == 0xff {
			op.bug = execution.IndirectIndexedAddressingBug
		}
		op.base = uint16(hi)<<8 | uint16(lo)
		op.address = op.base + regs.Y.Address()
		op.pageCrossed = op.base&0xff00 != op.address&0xff00

	case instructions.AbsoluteIndexedX:
		op.base = data
		op.address = data + regs.X.Address()
		op.pageCrossed = op.base&0xff00 != op.address&0xff00

	case instructions.AbsoluteIndexedY:
		op.base = data
		op.address = data + regs.Y.Address()
		op.pageCrossed = op.base&0xff00 != op.address&0xff00

	case instructions.ZeroPageIndexedX:
		op.base = data & 0x00ff
		op.address = uint16(uint8(data) + regs.X.Value())
		if op.address < op.base {
			op.bug = execution.ZeroPageIndexBug
		}

	case instructions.ZeroPageIndexedY:
		op.base = data & 0x00ff
		op.address = uint16(uint8(data) + regs.Y.Value())
		if op.address < op.base {
			op.bug = execution.ZeroPageIndexBug
		}
	}

	return op
}

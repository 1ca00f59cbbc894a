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
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// the value ORed with the accumulator by the unstable XAA and LXA opcodes.
// the value differs between individual chips. 0xff is the most common
// choice in other emulators and produces the same result as the 2A03 in
// the majority of cases
const magicConstant = uint8(0xff)

// KIL does nothing here. the CPU is jammed by Step()
func kil(_ *registers.File, _ cpubus.Memory, _ operand) int {
	return 0
}

// SLO is ASL followed by ORA
func slo(regs *registers.File, mem cpubus.Memory, op operand) int {
	v := shift(regs, mem, op, func(r *registers.Register) bool { return r.ASL() })
	regs.A.ORA(v)
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

// RLA is ROL followed by AND
func rla(regs *registers.File, mem cpubus.Memory, op operand) int {
	carry := regs.Status.Carry
	v := shift(regs, mem, op, func(r *registers.Register) bool { return r.ROL(carry) })
	regs.A.AND(v)
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

// SRE is LSR followed by EOR
func sre(regs *registers.File, mem cpubus.Memory, op operand) int {
	v := shift(regs, mem, op, func(r *registers.Register) bool { return r.LSR() })
	regs.A.EOR(v)
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

// RRA is ROR followed by ADC. the carry out of the rotate is the carry into
// the addition
func rra(regs *registers.File, mem cpubus.Memory, op operand) int {
	carry := regs.Status.Carry
	v := shift(regs, mem, op, func(r *registers.Register) bool { return r.ROR(carry) })
	regs.Status.Carry, regs.Status.Overflow = regs.A.Add(v, regs.Status.Carry)
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

// DCP is DEC followed by CMP
func dcp(regs *registers.File, mem cpubus.Memory, op operand) int {
	v := op.modify(regs, mem, func(v uint8) uint8 { return v - 1 })
	compare(regs, regs.A, v)
	return 0
}

// ISC is INC followed by SBC
func isc(regs *registers.File, mem cpubus.Memory, op operand) int {
	v := op.modify(regs, mem, func(v uint8) uint8 { return v + 1 })
	regs.Status.Carry, regs.Status.Overflow = regs.A.Subtract(v, regs.Status.Carry)
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

// SAX stores A AND X. no flags are affected
func sax(regs *registers.File, mem cpubus.Memory, op operand) int {
	op.write(regs, mem, regs.A.Value()&regs.X.Value())
	return 0
}

// LAX is LDA and LDX with the same value
func lax(regs *registers.File, mem cpubus.Memory, op operand) int {
	v := op.read(regs, mem)
	regs.A.Load(v)
	regs.X.Load(v)
	regs.Status.UpdateNZ(v)
	return 0
}

// LXA is the immediate form of LAX. it is unstable on the hardware
func lxa(regs *registers.File, mem cpubus.Memory, op operand) int {
	v := (regs.A.Value() | magicConstant) & op.read(regs, mem)
	regs.A.Load(v)
	regs.X.Load(v)
	regs.Status.UpdateNZ(v)
	return 0
}

// ANC is an immediate AND that puts bit 7 of the result into the carry flag
// (in microcode terms this is as though ASL had been enacted)
func anc(regs *registers.File, mem cpubus.Memory, op operand) int {
	regs.A.AND(op.read(regs, mem))
	regs.Status.UpdateNZ(regs.A.Value())
	regs.Status.Carry = regs.A.IsNegative()
	return 0
}

// ALR is an immediate AND followed by LSR of the accumulator
func alr(regs *registers.File, mem cpubus.Memory, op operand) int {
	regs.A.AND(op.read(regs, mem))
	regs.Status.Carry = regs.A.LSR()
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

// ARR is an immediate AND followed by ROR of the accumulator. the carry and
// overflow flags are set from bits 6 and 5 of the result
func arr(regs *registers.File, mem cpubus.Memory, op operand) int {
	regs.A.AND(op.read(regs, mem))
	regs.A.ROR(regs.Status.Carry)
	v := regs.A.Value()
	regs.Status.UpdateNZ(v)
	regs.Status.Carry = v&0x40 == 0x40
	regs.Status.Overflow = (v&0x40)>>6^(v&0x20)>>5 == 1
	return 0
}

// XAA is unstable on the hardware
func xaa(regs *registers.File, mem cpubus.Memory, op operand) int {
	regs.A.Load((regs.A.Value() | magicConstant) & regs.X.Value() & op.read(regs, mem))
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

// AXS subtracts the immediate value from A AND X without borrow and stores
// the result in X. the flags are set as though by CMP
func axs(regs *registers.File, mem cpubus.Memory, op operand) int {
	v := op.read(regs, mem)
	r := registers.NewAnonRegister(regs.A.Value() & regs.X.Value())
	var d uint8
	regs.Status.Carry, d = r.Compare(v)
	regs.X.Load(d)
	regs.Status.UpdateNZ(d)
	return 0
}

// storeHigh is the common behaviour of the AHX, TAS, SHY and SHX opcodes.
// the value stored is ANDed with the high byte of the unindexed address plus
// one. when the indexing crosses a page the high byte of the target address
// is replaced by the stored value
func storeHigh(mem cpubus.Memory, op operand, v uint8) {
	v &= uint8(op.base>>8) + 1
	address := op.address
	if op.pageCrossed {
		address = uint16(v)<<8 | address&0x00ff
	}
	mem.Write(address, v)
}

func ahx(regs *registers.File, mem cpubus.Memory, op operand) int {
	storeHigh(mem, op, regs.A.Value()&regs.X.Value())
	return 0
}

// TAS also puts A AND X into the stack pointer
func tas(regs *registers.File, mem cpubus.Memory, op operand) int {
	regs.SP.Load(regs.A.Value() & regs.X.Value())
	storeHigh(mem, op, regs.SP.Value())
	return 0
}

func shy(regs *registers.File, mem cpubus.Memory, op operand) int {
	storeHigh(mem, op, regs.Y.Value())
	return 0
}

func shx(regs *registers.File, mem cpubus.Memory, op operand) int {
	storeHigh(mem, op, regs.X.Value())
	return 0
}

// LAS loads A, X and SP with the value ANDed with the stack pointer
func las(regs *registers.File, mem cpubus.Memory, op operand) int {
	v := op.read(regs, mem) & regs.SP.Value()
	regs.A.Load(v)
	regs.X.Load(v)
	regs.SP.Load(v)
	regs.Status.UpdateNZ(v)
	return 0
}

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

	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// handler implements the operation of one operator. the PC has already been
// advanced past the instruction when the handler is called. the return value
// is the number of cycles the instruction takes in addition to the cycles in
// the instruction definition and any page crossing cycle.
type handler func(regs *registers.File, mem cpubus.Memory, op operand) int

// one handler for every operator
var handlers [instructions.NumOperators]handler

func init() {
	handlers = [instructions.NumOperators]handler{
		instructions.Adc: adc,
		instructions.And: and,
		instructions.Asl: asl,
		instructions.Bcc: bcc,
		instructions.Bcs: bcs,
		instructions.Beq: beq,
		instructions.Bit: bit,
		instructions.Bmi: bmi,
		instructions.Bne: bne,
		instructions.Bpl: bpl,
		instructions.Brk: brk,
		instructions.Bvc: bvc,
		instructions.Bvs: bvs,
		instructions.Clc: clc,
		instructions.Cld: cld,
		instructions.Cli: cli,
		instructions.Clv: clv,
		instructions.Cmp: cmp,
		instructions.Cpx: cpx,
		instructions.Cpy: cpy,
		instructions.Dec: dec,
		instructions.Dex: dex,
		instructions.Dey: dey,
		instructions.Eor: eor,
		instructions.Inc: inc,
		instructions.Inx: inx,
		instructions.Iny: iny,
		instructions.Jmp: jmp,
		instructions.Jsr: jsr,
		instructions.Lda: lda,
		instructions.Ldx: ldx,
		instructions.Ldy: ldy,
		instructions.Lsr: lsr,
		instructions.Nop: nop,
		instructions.Ora: ora,
		instructions.Pha: pha,
		instructions.Php: php,
		instructions.Pla: pla,
		instructions.Plp: plp,
		instructions.Rol: rol,
		instructions.Ror: ror,
		instructions.Rti: rti,
		instructions.Rts: rts,
		instructions.Sbc: sbc,
		instructions.Sec: sec,
		instructions.Sed: sed,
		instructions.Sei: sei,
		instructions.Sta: sta,
		instructions.Stx: stx,
		instructions.Sty: sty,
		instructions.Tax: tax,
		instructions.Tay: tay,
		instructions.Tsx: tsx,
		instructions.Txa: txa,
		instructions.Txs: txs,
		instructions.Tya: tya,

		instructions.KIL: kil,
		instructions.SLO: slo,
		instructions.RLA: rla,
		instructions.SRE: sre,
		instructions.RRA: rra,
		instructions.SAX: sax,
		instructions.LAX: lax,
		instructions.LXA: lxa,
		instructions.DCP: dcp,
		instructions.ISC: isc,
		instructions.ANC: anc,
		instructions.ALR: alr,
		instructions.ARR: arr,
		instructions.XAA: xaa,
		instructions.AXS: axs,
		instructions.AHX: ahx,
		instructions.TAS: tas,
		instructions.SHY: shy,
		instructions.SHX: shx,
		instructions.LAS: las,
	}

	for i, h := range handlers {
		if h == nil {
			panic(fmt.Sprintf("cpu: no handler for operator %s", instructions.Operator(i)))
		}
	}
}

// ignore is used in place of the handler for undocumented opcodes when the
// IllegalNop policy is in effect.
func ignore(_ *registers.File, _ cpubus.Memory, _ operand) int {
	return 0
}

// arithmetic and logic

func adc(regs *registers.File, mem cpubus.Memory, op operand) int {
	regs.Status.Carry, regs.Status.Overflow = regs.A.Add(op.read(regs, mem), regs.Status.Carry)
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

func sbc(regs *registers.File, mem cpubus.Memory, op operand) int {
	regs.Status.Carry, regs.Status.Overflow = regs.A.Subtract(op.read(regs, mem), regs.Status.Carry)
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

func and(regs *registers.File, mem cpubus.Memory, op operand) int {
	regs.A.AND(op.read(regs, mem))
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

func ora(regs *registers.File, mem cpubus.Memory, op operand) int {
	regs.A.ORA(op.read(regs, mem))
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

func eor(regs *registers.File, mem cpubus.Memory, op operand) int {
	regs.A.EOR(op.read(regs, mem))
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

func bit(regs *registers.File, mem cpubus.Memory, op operand) int {
	v := op.read(regs, mem)
	regs.Status.Sign = v&0x80 == 0x80
	regs.Status.Overflow = v&0x40 == 0x40
	regs.Status.Zero = regs.A.Value()&v == 0
	return 0
}

// compare sets the flags as though val had been subtracted from the register
func compare(regs *registers.File, r registers.Register, val uint8) {
	var v uint8
	regs.Status.Carry, v = r.Compare(val)
	regs.Status.UpdateNZ(v)
}

func cmp(regs *registers.File, mem cpubus.Memory, op operand) int {
	compare(regs, regs.A, op.read(regs, mem))
	return 0
}

func cpx(regs *registers.File, mem cpubus.Memory, op operand) int {
	compare(regs, regs.X, op.read(regs, mem))
	return 0
}

func cpy(regs *registers.File, mem cpubus.Memory, op operand) int {
	compare(regs, regs.Y, op.read(regs, mem))
	return 0
}

// shifts and rotates

// shift performs a read-modify-write of the operand with one of the shift or
// rotate functions of the Register type. returns the modified value.
func shift(regs *registers.File, mem cpubus.Memory, op operand, f func(r *registers.Register) bool) uint8 {
	var carry bool
	v := op.modify(regs, mem, func(v uint8) uint8 {
		acc := registers.NewAnonRegister(v)
		carry = f(&acc)
		return acc.Value()
	})
	regs.Status.Carry = carry
	regs.Status.UpdateNZ(v)
	return v
}

func asl(regs *registers.File, mem cpubus.Memory, op operand) int {
	shift(regs, mem, op, func(r *registers.Register) bool { return r.ASL() })
	return 0
}

func lsr(regs *registers.File, mem cpubus.Memory, op operand) int {
	shift(regs, mem, op, func(r *registers.Register) bool { return r.LSR() })
	return 0
}

func rol(regs *registers.File, mem cpubus.Memory, op operand) int {
	carry := regs.Status.Carry
	shift(regs, mem, op, func(r *registers.Register) bool { return r.ROL(carry) })
	return 0
}

func ror(regs *registers.File, mem cpubus.Memory, op operand) int {
	carry := regs.Status.Carry
	shift(regs, mem, op, func(r *registers.Register) bool { return r.ROR(carry) })
	return 0
}

// increment and decrement

func inc(regs *registers.File, mem cpubus.Memory, op operand) int {
	v := op.modify(regs, mem, func(v uint8) uint8 { return v + 1 })
	regs.Status.UpdateNZ(v)
	return 0
}

func dec(regs *registers.File, mem cpubus.Memory, op operand) int {
	v := op.modify(regs, mem, func(v uint8) uint8 { return v - 1 })
	regs.Status.UpdateNZ(v)
	return 0
}

func inx(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.X.Load(regs.X.Value() + 1)
	regs.Status.UpdateNZ(regs.X.Value())
	return 0
}

func iny(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.Y.Load(regs.Y.Value() + 1)
	regs.Status.UpdateNZ(regs.Y.Value())
	return 0
}

func dex(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.X.Load(regs.X.Value() - 1)
	regs.Status.UpdateNZ(regs.X.Value())
	return 0
}

func dey(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.Y.Load(regs.Y.Value() - 1)
	regs.Status.UpdateNZ(regs.Y.Value())
	return 0
}

// loads and stores

func lda(regs *registers.File, mem cpubus.Memory, op operand) int {
	regs.A.Load(op.read(regs, mem))
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

func ldx(regs *registers.File, mem cpubus.Memory, op operand) int {
	regs.X.Load(op.read(regs, mem))
	regs.Status.UpdateNZ(regs.X.Value())
	return 0
}

func ldy(regs *registers.File, mem cpubus.Memory, op operand) int {
	regs.Y.Load(op.read(regs, mem))
	regs.Status.UpdateNZ(regs.Y.Value())
	return 0
}

func sta(regs *registers.File, mem cpubus.Memory, op operand) int {
	op.write(regs, mem, regs.A.Value())
	return 0
}

func stx(regs *registers.File, mem cpubus.Memory, op operand) int {
	op.write(regs, mem, regs.X.Value())
	return 0
}

func sty(regs *registers.File, mem cpubus.Memory, op operand) int {
	op.write(regs, mem, regs.Y.Value())
	return 0
}

// transfers. TXS is the only transfer that does not affect the flags

func tax(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.X.Load(regs.A.Value())
	regs.Status.UpdateNZ(regs.X.Value())
	return 0
}

func tay(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.Y.Load(regs.A.Value())
	regs.Status.UpdateNZ(regs.Y.Value())
	return 0
}

func txa(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.A.Load(regs.X.Value())
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

func tya(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.A.Load(regs.Y.Value())
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

func tsx(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.X.Load(regs.SP.Value())
	regs.Status.UpdateNZ(regs.X.Value())
	return 0
}

func txs(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.SP.Load(regs.X.Value())
	return 0
}

// flags

func clc(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.Status.Carry = false
	return 0
}

func sec(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.Status.Carry = true
	return 0
}

func cli(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.Status.InterruptDisable = false
	return 0
}

func sei(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.Status.InterruptDisable = true
	return 0
}

func cld(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.Status.DecimalMode = false
	return 0
}

func sed(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.Status.DecimalMode = true
	return 0
}

func clv(regs *registers.File, _ cpubus.Memory, _ operand) int {
	regs.Status.Overflow = false
	return 0
}

// nop. the undocumented variants with a memory operand read from the address
// as the hardware does
func nop(regs *registers.File, mem cpubus.Memory, op operand) int {
	switch op.mode {
	case instructions.Implied, instructions.Immediate:
	default:
		_ = op.read(regs, mem)
	}
	return 0
}

// stack

func pha(regs *registers.File, mem cpubus.Memory, _ operand) int {
	push(regs, mem, regs.A.Value())
	return 0
}

func pla(regs *registers.File, mem cpubus.Memory, _ operand) int {
	regs.A.Load(pull(regs, mem))
	regs.Status.UpdateNZ(regs.A.Value())
	return 0
}

// the status register is always pushed with both break-marker bits set by
// PHP and BRK
func php(regs *registers.File, mem cpubus.Memory, _ operand) int {
	push(regs, mem, regs.Status.Value()|registers.BreakMask|registers.UnusedMask)
	return 0
}

func plp(regs *registers.File, mem cpubus.Memory, _ operand) int {
	regs.Status.Pull(pull(regs, mem))
	return 0
}

// branches

// branch moves the PC by the signed offset in the operand if the condition
// is true. returns one extra cycle for a taken branch and two if the branch
// destination is in a different page to the instruction following the
// branch.
func branch(regs *registers.File, op operand, condition bool) int {
	if !condition {
		return 0
	}

	pc := regs.PC.Address()
	dest := pc + uint16(int8(op.literal))
	regs.PC.Load(dest)

	if pc&0xff00 != dest&0xff00 {
		return 2
	}
	return 1
}

func bcc(regs *registers.File, _ cpubus.Memory, op operand) int {
	return branch(regs, op, !regs.Status.Carry)
}

func bcs(regs *registers.File, _ cpubus.Memory, op operand) int {
	return branch(regs, op, regs.Status.Carry)
}

func beq(regs *registers.File, _ cpubus.Memory, op operand) int {
	return branch(regs, op, regs.Status.Zero)
}

func bne(regs *registers.File, _ cpubus.Memory, op operand) int {
	return branch(regs, op, !regs.Status.Zero)
}

func bmi(regs *registers.File, _ cpubus.Memory, op operand) int {
	return branch(regs, op, regs.Status.Sign)
}

func bpl(regs *registers.File, _ cpubus.Memory, op operand) int {
	return branch(regs, op, !regs.Status.Sign)
}

func bvc(regs *registers.File, _ cpubus.Memory, op operand) int {
	return branch(regs, op, !regs.Status.Overflow)
}

func bvs(regs *registers.File, _ cpubus.Memory, op operand) int {
	return branch(regs, op, regs.Status.Overflow)
}

// jumps and subroutines

func jmp(regs *registers.File, _ cpubus.Memory, op operand) int {
	regs.PC.Load(op.address)
	return 0
}

// JSR pushes the address of the last byte of the JSR instruction
func jsr(regs *registers.File, mem cpubus.Memory, op operand) int {
	push16(regs, mem, regs.PC.Address()-1)
	regs.PC.Load(op.address)
	return 0
}

func rts(regs *registers.File, mem cpubus.Memory, _ operand) int {
	regs.PC.Load(pull16(regs, mem) + 1)
	return 0
}

// interrupts

// BRK is a one byte instruction but the address pushed to the stack skips
// the byte following the opcode
func brk(regs *registers.File, mem cpubus.Memory, _ operand) int {
	push16(regs, mem, regs.PC.Address()+1)
	push(regs, mem, regs.Status.Value()|registers.BreakMask|registers.UnusedMask)
	regs.Status.InterruptDisable = true
	regs.PC.Load(read16(mem, cpubus.BRK))
	return 0
}

// unlike RTS there is no need to add one to return address
func rti(regs *registers.File, mem cpubus.Memory, _ operand) int {
	regs.Status.Pull(pull(regs, mem))
	regs.PC.Load(pull16(regs, mem))
	return 0
}

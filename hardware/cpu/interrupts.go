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

// interrupt pushes the PC and the status register and loads the PC from the
// vector. the status register is pushed with the break bit (bit 4) clear,
// which is how an interrupt handler can tell an interrupt from a BRK.
func (mc *CPU) interrupt(vector uint16) int {
	push16(&mc.regs, mc.mem, mc.regs.PC.Address())
	push(&mc.regs, mc.mem, (mc.regs.Status.Value()&^registers.BreakMask)|registers.UnusedMask)
	mc.regs.Status.InterruptDisable = true
	mc.regs.PC.Load(read16(mc.mem, vector))
	mc.cycles += interruptCycles
	return interruptCycles
}

// IRQ raises a maskable interrupt. Returns the number of cycles taken. The
// interrupt is ignored if the InterruptDisable flag is set, in which case
// the return value is zero.
func (mc *CPU) IRQ() int {
	if mc.jammed || mc.regs.Status.InterruptDisable {
		return 0
	}
	return mc.interrupt(cpubus.IRQ)
}

// NMI raises a non-maskable interrupt. Returns the number of cycles taken.
// A jammed CPU does not respond to an NMI and the return value is zero.
func (mc *CPU) NMI() int {
	if mc.jammed {
		return 0
	}
	return mc.interrupt(cpubus.NMI)
}

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

// push writes to the current stack address and then decrements the stack
// pointer. the stack pointer wraps within the stack page.
func push(regs *registers.File, mem cpubus.Memory, v uint8) {
	mem.Write(regs.SP.Address(), v)
	regs.SP.Decrement()
}

// pull increments the stack pointer and then reads from the stack.
func pull(regs *registers.File, mem cpubus.Memory) uint8 {
	regs.SP.Increment()
	return mem.Read(regs.SP.Address())
}

// push16 pushes the high byte first so that the value sits on the stack in
// little-endian order.
func push16(regs *registers.File, mem cpubus.Memory, v uint16) {
	push(regs, mem, uint8(v>>8))
	push(regs, mem, uint8(v))
}

func pull16(regs *registers.File, mem cpubus.Memory) uint16 {
	lo := pull(regs, mem)
	hi := pull(regs, mem)
	return uint16(hi)<<8 | uint16(lo)
}

// read16 reads a little-endian address. used for the interrupt vectors.
func read16(mem cpubus.Memory, address uint16) uint16 {
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

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

// Package cpu emulates the 6502 as found in the NES (the 2A03). The decimal
// mode of the 6502 is disabled in the 2A03 so the DecimalMode flag can be set
// and cleared but never affects arithmetic.
//
// The CPU is driven one instruction at a time with the Step() function. The
// number of cycles taken by the instruction is returned:
//
//	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
//	mc.Reset()
//	for {
//		cycles, err := mc.Step()
//		if err != nil {
//			return err
//		}
//		...
//	}
//
// Interrupts are raised between instructions with the IRQ() and NMI()
// functions.
//
// The memory the CPU addresses is implemented by the host, through the
// cpubus.Memory interface. The CPU only accesses memory when the hardware
// would. In particular, a store instruction will never read from its target
// address, and a read-modify-write instruction will write the original value
// back to memory before writing the modified value.
//
// Undocumented opcodes are handled according to the IllegalPolicy in the
// Preferences type. By default an undocumented opcode causes Step() to return
// an error. The error is returned before any change to the CPU state so the
// host can examine the CPU exactly as it was before the opcode was fetched.
//
// The CPU is not safe for concurrent use. Separate CPU instances with separate
// memory are independent of one another.
package cpu

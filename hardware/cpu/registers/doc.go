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

// Package registers implements the registers found in the 2A03's 6502 core.
// There are four types: the 8 bit Register type used for A, X and Y; the
// StackPointer, which is an 8 bit register always interpreted as an offset
// into the stack page; the 16 bit ProgramCounter; and the StatusRegister.
//
// The Register type defines the basic arithmetic and logical operations of
// the processor: load, add, subtract, logical operations and shifts/rotates.
// Each operation reports the carry and overflow results rather than setting
// status flags itself. Setting of flags is done directly by the caller. For
// instance:
//
//	a.Load(10)
//	sr.Carry, sr.Overflow = a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// In this case, the zero flag in the status register will be false and the
// sign flag will be true.
//
// The File type collects one of each register into the complete register
// file of the CPU. The instruction handlers in the cpu package operate on a
// File explicitly.
//
// Note that decimal mode is never used by the arithmetic operations of this
// package. The 2A03 carries the decimal flag but the BCD circuitry is
// disconnected.
package registers

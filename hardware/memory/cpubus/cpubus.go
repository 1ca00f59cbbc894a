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

// Package cpubus defines the interface between the CPU and the memory it
// addresses. The memory is implemented outside of the CPU package.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The address space is a flat 64KB and every address is valid. Any
// mirroring or memory mapping is the responsibility of the implementation.
//
// A Read() may have side effects in the implementation, for example when the
// address is an I/O register. The CPU takes care to only read an address
// when the real hardware would do so.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// The interrupt vectors. Each vector is the address of the low byte of a
// little-endian 16 bit address.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)

	// BRK uses the same vector as IRQ
	BRK = IRQ
)

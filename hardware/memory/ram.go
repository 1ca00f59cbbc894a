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

package memory

import (
	"fmt"
	"strings"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// AddressSpace is the number of addressable bytes.
const AddressSpace = 0x10000

// RAM is a flat 64KB memory. Every address is readable and writable.
type RAM struct {
	memory [AddressSpace]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

// String returns a hex dump of the zero page.
func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := range 16 {
		s.WriteString(fmt.Sprintf("%X- | ", y))
		for x := range 16 {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Read is an implementation of cpubus.Memory.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.memory[address]
}

// Write is an implementation of cpubus.Memory.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.memory[address] = data
}

// Peek returns the value at the address. For RAM this is the same as Read()
// but Peek() is guaranteed never to have side effects.
func (ram *RAM) Peek(address uint16) uint8 {
	return ram.memory[address]
}

// Load copies data into memory starting at the origin address. It is an error
// for the data to extend beyond the top of the address space.
func (ram *RAM) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > AddressSpace {
		return curated.Errorf("memory: image of %d bytes does not fit at origin %#04x", len(data), origin)
	}
	copy(ram.memory[origin:], data)
	return nil
}

// SetVector writes the address to one of the interrupt vectors (or any other
// address) in little-endian order.
func (ram *RAM) SetVector(vector uint16, address uint16) {
	ram.memory[vector] = uint8(address)
	ram.memory[vector+1] = uint8(address >> 8)
}

// Vector returns the little-endian address stored at the vector.
func (ram *RAM) Vector(vector uint16) uint16 {
	return uint16(ram.memory[vector]) | uint16(ram.memory[vector+1])<<8
}

// Clear sets every address to zero.
func (ram *RAM) Clear() {
	clear(ram.memory[:])
}

// SetDefaultVectors points all three interrupt vectors at the address.
func (ram *RAM) SetDefaultVectors(address uint16) {
	ram.SetVector(cpubus.NMI, address)
	ram.SetVector(cpubus.Reset, address)
	ram.SetVector(cpubus.IRQ, address)
}

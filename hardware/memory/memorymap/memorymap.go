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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case APU:
		return "APU"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the NES.
const (
	Undefined Area = iota
	RAM
	PPU
	APU
	Cartridge
)

// The origin and memory top for each area of memory. The mask for each area
// is applied to an address to force it into the range of the primary mirror.
const (
	OriginRAM = uint16(0x0000)
	MemtopRAM = uint16(0x07ff)
	MaskRAM   = uint16(0x07ff)
	LimitRAM  = uint16(0x1fff)

	OriginPPU = uint16(0x2000)
	MemtopPPU = uint16(0x2007)
	MaskPPU   = uint16(0x2007)
	LimitPPU  = uint16(0x3fff)

	OriginAPU = uint16(0x4000)
	MemtopAPU = uint16(0x401f)

	OriginCart = uint16(0x4020)
	MemtopCart = uint16(0xffff)
)

// The zero page and the stack page are both in internal RAM.
const (
	OriginZeroPage = uint16(0x0000)
	MemtopZeroPage = uint16(0x00ff)

	OriginStack = uint16(0x0100)
	MemtopStack = uint16(0x01ff)
)

// MapAddress translates the address argument from mirror space to primary
// space. Also returns the area the address belongs to.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= LimitRAM:
		return address & MaskRAM, RAM
	case address <= LimitPPU:
		return address & MaskPPU, PPU
	case address <= MemtopAPU:
		return address, APU
	}
	return address, Cartridge
}

// IsZeroPage returns true if the address is in the zero page. Mirrors of the
// zero page are not counted.
func IsZeroPage(address uint16) bool {
	return address <= MemtopZeroPage
}

// IsStack returns true if the address is in the stack page. Mirrors of the
// stack page are not counted.
func IsStack(address uint16) bool {
	return address >= OriginStack && address <= MemtopStack
}

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

package registers

import (
	"strings"
)

// Bit masks for the packed form of the status register. The order, from
// least significant bit, is C Z I D B4 B5 V N.
const (
	CarryMask            = uint8(0x01)
	ZeroMask             = uint8(0x02)
	InterruptDisableMask = uint8(0x04)
	DecimalModeMask      = uint8(0x08)
	BreakMask            = uint8(0x10)
	UnusedMask           = uint8(0x20)
	OverflowMask         = uint8(0x40)
	SignMask             = uint8(0x80)
)

// StatusRegister is the special purpose register that stores the flags of the CPU.
//
// The Break and Unused flags are the two break-marker bits. They have no
// effect on execution but they are carried so that the value pushed to the
// stack by BRK and PHP differs from the value pushed by an interrupt.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Unused           bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	sr := StatusRegister{}
	sr.Reset()
	return sr
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, on, off rune) {
		if set {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}

	flag(sr.Sign, 'S', 's')
	flag(sr.Overflow, 'V', 'v')
	flag(sr.Unused, 'U', 'u')
	flag(sr.Break, 'B', 'b')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to the power-on state. Interrupts are disabled and the
// unused bit is set.
func (sr *StatusRegister) Reset() {
	sr.Load(UnusedMask | InterruptDisableMask)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= SignMask
	}
	if sr.Overflow {
		v |= OverflowMask
	}
	if sr.Unused {
		v |= UnusedMask
	}
	if sr.Break {
		v |= BreakMask
	}
	if sr.DecimalMode {
		v |= DecimalModeMask
	}
	if sr.InterruptDisable {
		v |= InterruptDisableMask
	}
	if sr.Zero {
		v |= ZeroMask
	}
	if sr.Carry {
		v |= CarryMask
	}

	return v
}

// Load converts an 8 bit integer to the StatusRegister struct receiver.
// All eight bits are loaded, including both break-marker bits.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&SignMask == SignMask
	sr.Overflow = v&OverflowMask == OverflowMask
	sr.Unused = v&UnusedMask == UnusedMask
	sr.Break = v&BreakMask == BreakMask
	sr.DecimalMode = v&DecimalModeMask == DecimalModeMask
	sr.InterruptDisable = v&InterruptDisableMask == InterruptDisableMask
	sr.Zero = v&ZeroMask == ZeroMask
	sr.Carry = v&CarryMask == CarryMask
}

// Pull loads a value taken from the stack (by PLP or RTI). The break-marker
// bits do not exist as storage in the processor so they are ignored: the
// register always reads back with bit 4 clear and bit 5 set.
func (sr *StatusRegister) Pull(v uint8) {
	sr.Load(v)
	sr.Break = false
	sr.Unused = true
}

// UpdateNZ sets the Zero and Sign flags according to the value.
func (sr *StatusRegister) UpdateNZ(v uint8) {
	sr.Zero = v == 0
	sr.Sign = v&0x80 == 0x80
}

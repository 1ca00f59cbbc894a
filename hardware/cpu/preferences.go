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
	"strings"

	"github.com/famicore/famicore/curated"
)

// IllegalPolicy decides what happens when the CPU encounters an
// undocumented opcode.
type IllegalPolicy int

// List of valid IllegalPolicy values.
const (
	// Step() returns an IllegalOpcode error
	IllegalStrict IllegalPolicy = iota

	// the opcode is executed as a no-op but with the byte length and cycle
	// cost of the real opcode
	IllegalNop

	// the opcode is executed. KIL opcodes jam the CPU
	IllegalEmulate
)

func (p IllegalPolicy) String() string {
	switch p {
	case IllegalStrict:
		return "strict"
	case IllegalNop:
		return "nop"
	case IllegalEmulate:
		return "emulate"
	}
	return "unknown"
}

// UnknownIllegalPolicy is returned by ParseIllegalPolicy() when the string
// is not recognised.
const UnknownIllegalPolicy = "cpu: unknown illegal opcode policy (%s)"

// ParseIllegalPolicy converts a string to an IllegalPolicy value. The string
// is not case sensitive.
func ParseIllegalPolicy(s string) (IllegalPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return IllegalStrict, nil
	case "nop":
		return IllegalNop, nil
	case "emulate":
		return IllegalEmulate, nil
	}
	return IllegalStrict, curated.Errorf(UnknownIllegalPolicy, s)
}

// Preferences for the CPU. Preferences are fixed for the lifetime of the CPU.
type Preferences struct {
	// what to do with undocumented opcodes
	Illegal IllegalPolicy

	// randomise the A, X and Y registers on reset. the real hardware does
	// not guarantee the contents of these registers at power on
	RandomState bool
}

// DefaultPreferences returns the default preferences for the CPU.
func DefaultPreferences() Preferences {
	return Preferences{
		Illegal:     IllegalStrict,
		RandomState: false,
	}
}

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

package execution

import (
	"fmt"
	"strings"

	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// Result records the state/result of the last instruction executed by the
// CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the executed opcode
	Defn *instructions.Definition

	// the number of bytes read during instruction decode, including the
	// opcode. an instruction is always decoded in full so this is the same
	// as Defn.Bytes for any result produced by the CPU
	ByteCount int

	// the operand bytes of the instruction, little-endian. in the case of a
	// branch instruction it is the offset value
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of page faults and branches this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction branched
	BranchSuccess bool

	// whether a known buggy code path was triggered
	CPUBug Bug

	// whether this data has been finalised. the values of the other fields
	// may be undefined unless Final is true
	Final bool

	// an undocumented opcode was executed
	Tolerated bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns a single line trace of the instruction. Operands that refer
// to an I/O register are annotated with the register name.
func (r Result) String() string {
	if r.Defn == nil {
		return "???"
	}

	var hex string
	switch r.Defn.Bytes {
	case 1:
		hex = fmt.Sprintf("%02x", r.Defn.OpCode)
	case 2:
		hex = fmt.Sprintf("%02x %02x", r.Defn.OpCode, uint8(r.InstructionData))
	case 3:
		hex = fmt.Sprintf("%02x %02x %02x", r.Defn.OpCode, uint8(r.InstructionData), uint8(r.InstructionData>>8))
	}

	var operand string
	switch r.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Accumulator:
		operand = "A"
	case instructions.Immediate:
		operand = fmt.Sprintf("#$%02x", uint8(r.InstructionData))
	case instructions.Relative:
		// operand is shown as the branch destination
		dest := r.Address + 2 + uint16(int8(uint8(r.InstructionData)))
		operand = fmt.Sprintf("$%04x", dest)
	case instructions.Absolute:
		operand = fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.ZeroPage:
		operand = fmt.Sprintf("$%02x", uint8(r.InstructionData))
	case instructions.Indirect:
		operand = fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf("($%02x,X)", uint8(r.InstructionData))
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf("($%02x),Y", uint8(r.InstructionData))
	case instructions.AbsoluteIndexedX:
		operand = fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		operand = fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf("$%02x,X", uint8(r.InstructionData))
	case instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf("$%02x,Y", uint8(r.InstructionData))
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x  %-8s  ", r.Address, hex))
	if r.Defn.Undocumented {
		s.WriteString("*")
	} else {
		s.WriteString(" ")
	}
	s.WriteString(r.Defn.Operator.String())
	if operand != "" {
		s.WriteString(" ")
		s.WriteString(operand)
	}

	if r.Defn.AddressingMode == instructions.Absolute && r.Defn.Effect != instructions.Flow && r.Defn.Effect != instructions.Subroutine {
		if sym, ok := cpubus.Symbol(r.InstructionData); ok {
			s.WriteString(fmt.Sprintf(" = %s", sym))
		}
	}

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	} else {
		s.WriteString(" [v]")
	}

	var notes []string
	if r.PageFault {
		notes = append(notes, "page-fault")
	}
	if r.Defn.IsBranch() && r.Final {
		if r.BranchSuccess {
			notes = append(notes, "branched")
		} else {
			notes = append(notes, "next")
		}
	}
	if r.CPUBug != NoBug {
		notes = append(notes, string(r.CPUBug))
	}
	if len(notes) > 0 {
		s.WriteString(" ")
		s.WriteString(strings.Join(notes, " "))
	}

	return s.String()
}

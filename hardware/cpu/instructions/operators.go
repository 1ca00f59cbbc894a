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

package instructions

// Operator is the mnemonic identity of an instruction. More than one opcode
// can share an operator, differing only in addressing mode.
type Operator int

// List of documented operators.
const (
	Adc Operator = iota
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// undocumented operators. the undocumented variants of NOP and SBC share
	// the operator of the documented instruction

	KIL
	SLO
	RLA
	SRE
	RRA
	SAX
	LAX
	LXA
	DCP
	ISC
	ANC
	ALR
	ARR
	XAA
	AXS
	AHX
	TAS
	SHY
	SHX
	LAS

	// the number of operators. not a valid operator
	NumOperators
)

var operatorNames = [NumOperators]string{
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL",
	"BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY",
	"DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR", "LDA",
	"LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
	"KIL", "SLO", "RLA", "SRE", "RRA", "SAX", "LAX", "LXA", "DCP", "ISC",
	"ANC", "ALR", "ARR", "XAA", "AXS", "AHX", "TAS", "SHY", "SHX", "LAS",
}

func (o Operator) String() string {
	if o < 0 || o >= NumOperators {
		return "unknown operator"
	}
	return operatorNames[o]
}

// Documented returns true if the operator is part of the documented
// instruction set.
func (o Operator) Documented() bool {
	return o >= Adc && o < KIL
}

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

import "github.com/famicore/famicore/curated"

// Sentinel error patterns returned when the opcode table is built.
const (
	DuplicateDefinition  = "instructions: duplicate definition for opcode %#02x"
	InconsistentBytes    = "instructions: opcode %#02x has %d bytes but %s addressing requires %d"
	InvalidOperator      = "instructions: opcode %#02x has an invalid operator"
	InconsistentDocument = "instructions: opcode %#02x (%s) has inconsistent documentation flag"
	MissingDefinition    = "instructions: missing definition for opcode %#02x"
)

// readability aliases for the table below
const (
	pageSensitive = true
	samePage      = false
	undocumented  = true
	documented    = false
)

// the opcode table. fields are in the order of the Definition type: opcode,
// operator, addressing mode, bytes, cycles, page sensitivity, effect and
// whether the opcode is undocumented.
var definitions = []Definition{
	// 0x00
	{0x00, Brk, Implied, 1, 7, samePage, Interrupt, documented},
	{0x01, Ora, IndexedIndirect, 2, 6, samePage, Read, documented},
	{0x02, KIL, Implied, 1, 2, samePage, Flow, undocumented},
	{0x03, SLO, IndexedIndirect, 2, 8, samePage, Modify, undocumented},
	{0x04, Nop, ZeroPage, 2, 3, samePage, Read, undocumented},
	{0x05, Ora, ZeroPage, 2, 3, samePage, Read, documented},
	{0x06, Asl, ZeroPage, 2, 5, samePage, Modify, documented},
	{0x07, SLO, ZeroPage, 2, 5, samePage, Modify, undocumented},
	{0x08, Php, Implied, 1, 3, samePage, Write, documented},
	{0x09, Ora, Immediate, 2, 2, samePage, Read, documented},
	{0x0a, Asl, Accumulator, 1, 2, samePage, Modify, documented},
	{0x0b, ANC, Immediate, 2, 2, samePage, Read, undocumented},
	{0x0c, Nop, Absolute, 3, 4, samePage, Read, undocumented},
	{0x0d, Ora, Absolute, 3, 4, samePage, Read, documented},
	{0x0e, Asl, Absolute, 3, 6, samePage, Modify, documented},
	{0x0f, SLO, Absolute, 3, 6, samePage, Modify, undocumented},

	// 0x10
	{0x10, Bpl, Relative, 2, 2, pageSensitive, Flow, documented},
	{0x11, Ora, IndirectIndexed, 2, 5, pageSensitive, Read, documented},
	{0x12, KIL, Implied, 1, 2, samePage, Flow, undocumented},
	{0x13, SLO, IndirectIndexed, 2, 8, samePage, Modify, undocumented},
	{0x14, Nop, ZeroPageIndexedX, 2, 4, samePage, Read, undocumented},
	{0x15, Ora, ZeroPageIndexedX, 2, 4, samePage, Read, documented},
	{0x16, Asl, ZeroPageIndexedX, 2, 6, samePage, Modify, documented},
	{0x17, SLO, ZeroPageIndexedX, 2, 6, samePage, Modify, undocumented},
	{0x18, Clc, Implied, 1, 2, samePage, Read, documented},
	{0x19, Ora, AbsoluteIndexedY, 3, 4, pageSensitive, Read, documented},
	{0x1a, Nop, Implied, 1, 2, samePage, Read, undocumented},
	{0x1b, SLO, AbsoluteIndexedY, 3, 7, samePage, Modify, undocumented},
	{0x1c, Nop, AbsoluteIndexedX, 3, 4, pageSensitive, Read, undocumented},
	{0x1d, Ora, AbsoluteIndexedX, 3, 4, pageSensitive, Read, documented},
	{0x1e, Asl, AbsoluteIndexedX, 3, 7, samePage, Modify, documented},
	{0x1f, SLO, AbsoluteIndexedX, 3, 7, samePage, Modify, undocumented},

	// 0x20
	{0x20, Jsr, Absolute, 3, 6, samePage, Subroutine, documented},
	{0x21, And, IndexedIndirect, 2, 6, samePage, Read, documented},
	{0x22, KIL, Implied, 1, 2, samePage, Flow, undocumented},
	{0x23, RLA, IndexedIndirect, 2, 8, samePage, Modify, undocumented},
	{0x24, Bit, ZeroPage, 2, 3, samePage, Read, documented},
	{0x25, And, ZeroPage, 2, 3, samePage, Read, documented},
	{0x26, Rol, ZeroPage, 2, 5, samePage, Modify, documented},
	{0x27, RLA, ZeroPage, 2, 5, samePage, Modify, undocumented},
	{0x28, Plp, Implied, 1, 4, samePage, Read, documented},
	{0x29, And, Immediate, 2, 2, samePage, Read, documented},
	{0x2a, Rol, Accumulator, 1, 2, samePage, Modify, documented},
	{0x2b, ANC, Immediate, 2, 2, samePage, Read, undocumented},
	{0x2c, Bit, Absolute, 3, 4, samePage, Read, documented},
	{0x2d, And, Absolute, 3, 4, samePage, Read, documented},
	{0x2e, Rol, Absolute, 3, 6, samePage, Modify, documented},
	{0x2f, RLA, Absolute, 3, 6, samePage, Modify, undocumented},

	// 0x30
	{0x30, Bmi, Relative, 2, 2, pageSensitive, Flow, documented},
	{0x31, And, IndirectIndexed, 2, 5, pageSensitive, Read, documented},
	{0x32, KIL, Implied, 1, 2, samePage, Flow, undocumented},
	{0x33, RLA, IndirectIndexed, 2, 8, samePage, Modify, undocumented},
	{0x34, Nop, ZeroPageIndexedX, 2, 4, samePage, Read, undocumented},
	{0x35, And, ZeroPageIndexedX, 2, 4, samePage, Read, documented},
	{0x36, Rol, ZeroPageIndexedX, 2, 6, samePage, Modify, documented},
	{0x37, RLA, ZeroPageIndexedX, 2, 6, samePage, Modify, undocumented},
	{0x38, Sec, Implied, 1, 2, samePage, Read, documented},
	{0x39, And, AbsoluteIndexedY, 3, 4, pageSensitive, Read, documented},
	{0x3a, Nop, Implied, 1, 2, samePage, Read, undocumented},
	{0x3b, RLA, AbsoluteIndexedY, 3, 7, samePage, Modify, undocumented},
	{0x3c, Nop, AbsoluteIndexedX, 3, 4, pageSensitive, Read, undocumented},
	{0x3d, And, AbsoluteIndexedX, 3, 4, pageSensitive, Read, documented},
	{0x3e, Rol, AbsoluteIndexedX, 3, 7, samePage, Modify, documented},
	{0x3f, RLA, AbsoluteIndexedX, 3, 7, samePage, Modify, undocumented},

	// 0x40
	{0x40, Rti, Implied, 1, 6, samePage, Interrupt, documented},
	{0x41, Eor, IndexedIndirect, 2, 6, samePage, Read, documented},
	{0x42, KIL, Implied, 1, 2, samePage, Flow, undocumented},
	{0x43, SRE, IndexedIndirect, 2, 8, samePage, Modify, undocumented},
	{0x44, Nop, ZeroPage, 2, 3, samePage, Read, undocumented},
	{0x45, Eor, ZeroPage, 2, 3, samePage, Read, documented},
	{0x46, Lsr, ZeroPage, 2, 5, samePage, Modify, documented},
	{0x47, SRE, ZeroPage, 2, 5, samePage, Modify, undocumented},
	{0x48, Pha, Implied, 1, 3, samePage, Write, documented},
	{0x49, Eor, Immediate, 2, 2, samePage, Read, documented},
	{0x4a, Lsr, Accumulator, 1, 2, samePage, Modify, documented},
	{0x4b, ALR, Immediate, 2, 2, samePage, Read, undocumented},
	{0x4c, Jmp, Absolute, 3, 3, samePage, Flow, documented},
	{0x4d, Eor, Absolute, 3, 4, samePage, Read, documented},
	{0x4e, Lsr, Absolute, 3, 6, samePage, Modify, documented},
	{0x4f, SRE, Absolute, 3, 6, samePage, Modify, undocumented},

	// 0x50
	{0x50, Bvc, Relative, 2, 2, pageSensitive, Flow, documented},
	{0x51, Eor, IndirectIndexed, 2, 5, pageSensitive, Read, documented},
	{0x52, KIL, Implied, 1, 2, samePage, Flow, undocumented},
	{0x53, SRE, IndirectIndexed, 2, 8, samePage, Modify, undocumented},
	{0x54, Nop, ZeroPageIndexedX, 2, 4, samePage, Read, undocumented},
	{0x55, Eor, ZeroPageIndexedX, 2, 4, samePage, Read, documented},
	{0x56, Lsr, ZeroPageIndexedX, 2, 6, samePage, Modify, documented},
	{0x57, SRE, ZeroPageIndexedX, 2, 6, samePage, Modify, undocumented},
	{0x58, Cli, Implied, 1, 2, samePage, Read, documented},
	{0x59, Eor, AbsoluteIndexedY, 3, 4, pageSensitive, Read, documented},
	{0x5a, Nop, Implied, 1, 2, samePage, Read, undocumented},
	{0x5b, SRE, AbsoluteIndexedY, 3, 7, samePage, Modify, undocumented},
	{0x5c, Nop, AbsoluteIndexedX, 3, 4, pageSensitive, Read, undocumented},
	{0x5d, Eor, AbsoluteIndexedX, 3, 4, pageSensitive, Read, documented},
	{0x5e, Lsr, AbsoluteIndexedX, 3, 7, samePage, Modify, documented},
	{0x5f, SRE, AbsoluteIndexedX, 3, 7, samePage, Modify, undocumented},

	// 0x60
	{0x60, Rts, Implied, 1, 6, samePage, Subroutine, documented},
	{0x61, Adc, IndexedIndirect, 2, 6, samePage, Read, documented},
	{0x62, KIL, Implied, 1, 2, samePage, Flow, undocumented},
	{0x63, RRA, IndexedIndirect, 2, 8, samePage, Modify, undocumented},
	{0x64, Nop, ZeroPage, 2, 3, samePage, Read, undocumented},
	{0x65, Adc, ZeroPage, 2, 3, samePage, Read, documented},
	{0x66, Ror, ZeroPage, 2, 5, samePage, Modify, documented},
	{0x67, RRA, ZeroPage, 2, 5, samePage, Modify, undocumented},
	{0x68, Pla, Implied, 1, 4, samePage, Read, documented},
	{0x69, Adc, Immediate, 2, 2, samePage, Read, documented},
	{0x6a, Ror, Accumulator, 1, 2, samePage, Modify, documented},
	{0x6b, ARR, Immediate, 2, 2, samePage, Read, undocumented},
	{0x6c, Jmp, Indirect, 3, 5, samePage, Flow, documented},
	{0x6d, Adc, Absolute, 3, 4, samePage, Read, documented},
	{0x6e, Ror, Absolute, 3, 6, samePage, Modify, documented},
	{0x6f, RRA, Absolute, 3, 6, samePage, Modify, undocumented},

	// 0x70
	{0x70, Bvs, Relative, 2, 2, pageSensitive, Flow, documented},
	{0x71, Adc, IndirectIndexed, 2, 5, pageSensitive, Read, documented},
	{0x72, KIL, Implied, 1, 2, samePage, Flow, undocumented},
	{0x73, RRA, IndirectIndexed, 2, 8, samePage, Modify, undocumented},
	{0x74, Nop, ZeroPageIndexedX, 2, 4, samePage, Read, undocumented},
	{0x75, Adc, ZeroPageIndexedX, 2, 4, samePage, Read, documented},
	{0x76, Ror, ZeroPageIndexedX, 2, 6, samePage, Modify, documented},
	{0x77, RRA, ZeroPageIndexedX, 2, 6, samePage, Modify, undocumented},
	{0x78, Sei, Implied, 1, 2, samePage, Read, documented},
	{0x79, Adc, AbsoluteIndexedY, 3, 4, pageSensitive, Read, documented},
	{0x7a, Nop, Implied, 1, 2, samePage, Read, undocumented},
	{0x7b, RRA, AbsoluteIndexedY, 3, 7, samePage, Modify, undocumented},
	{0x7c, Nop, AbsoluteIndexedX, 3, 4, pageSensitive, Read, undocumented},
	{0x7d, Adc, AbsoluteIndexedX, 3, 4, pageSensitive, Read, documented},
	{0x7e, Ror, AbsoluteIndexedX, 3, 7, samePage, Modify, documented},
	{0x7f, RRA, AbsoluteIndexedX, 3, 7, samePage, Modify, undocumented},

	// 0x80
	{0x80, Nop, Immediate, 2, 2, samePage, Read, undocumented},
	{0x81, Sta, IndexedIndirect, 2, 6, samePage, Write, documented},
	{0x82, Nop, Immediate, 2, 2, samePage, Read, undocumented},
	{0x83, SAX, IndexedIndirect, 2, 6, samePage, Write, undocumented},
	{0x84, Sty, ZeroPage, 2, 3, samePage, Write, documented},
	{0x85, Sta, ZeroPage, 2, 3, samePage, Write, documented},
	{0x86, Stx, ZeroPage, 2, 3, samePage, Write, documented},
	{0x87, SAX, ZeroPage, 2, 3, samePage, Write, undocumented},
	{0x88, Dey, Implied, 1, 2, samePage, Read, documented},
	{0x89, Nop, Immediate, 2, 2, samePage, Read, undocumented},
	{0x8a, Txa, Implied, 1, 2, samePage, Read, documented},
	{0x8b, XAA, Immediate, 2, 2, samePage, Read, undocumented},
	{0x8c, Sty, Absolute, 3, 4, samePage, Write, documented},
	{0x8d, Sta, Absolute, 3, 4, samePage, Write, documented},
	{0x8e, Stx, Absolute, 3, 4, samePage, Write, documented},
	{0x8f, SAX, Absolute, 3, 4, samePage, Write, undocumented},

	// 0x90
	{0x90, Bcc, Relative, 2, 2, pageSensitive, Flow, documented},
	{0x91, Sta, IndirectIndexed, 2, 6, samePage, Write, documented},
	{0x92, KIL, Implied, 1, 2, samePage, Flow, undocumented},
	{0x93, AHX, IndirectIndexed, 2, 6, samePage, Write, undocumented},
	{0x94, Sty, ZeroPageIndexedX, 2, 4, samePage, Write, documented},
	{0x95, Sta, ZeroPageIndexedX, 2, 4, samePage, Write, documented},
	{0x96, Stx, ZeroPageIndexedY, 2, 4, samePage, Write, documented},
	{0x97, SAX, ZeroPageIndexedY, 2, 4, samePage, Write, undocumented},
	{0x98, Tya, Implied, 1, 2, samePage, Read, documented},
	{0x99, Sta, AbsoluteIndexedY, 3, 5, samePage, Write, documented},
	{0x9a, Txs, Implied, 1, 2, samePage, Read, documented},
	{0x9b, TAS, AbsoluteIndexedY, 3, 5, samePage, Write, undocumented},
	{0x9c, SHY, AbsoluteIndexedX, 3, 5, samePage, Write, undocumented},
	{0x9d, Sta, AbsoluteIndexedX, 3, 5, samePage, Write, documented},
	{0x9e, SHX, AbsoluteIndexedY, 3, 5, samePage, Write, undocumented},
	{0x9f, AHX, AbsoluteIndexedY, 3, 5, samePage, Write, undocumented},

	// 0xa0
	{0xa0, Ldy, Immediate, 2, 2, samePage, Read, documented},
	{0xa1, Lda, IndexedIndirect, 2, 6, samePage, Read, documented},
	{0xa2, Ldx, Immediate, 2, 2, samePage, Read, documented},
	{0xa3, LAX, IndexedIndirect, 2, 6, samePage, Read, undocumented},
	{0xa4, Ldy, ZeroPage, 2, 3, samePage, Read, documented},
	{0xa5, Lda, ZeroPage, 2, 3, samePage, Read, documented},
	{0xa6, Ldx, ZeroPage, 2, 3, samePage, Read, documented},
	{0xa7, LAX, ZeroPage, 2, 3, samePage, Read, undocumented},
	{0xa8, Tay, Implied, 1, 2, samePage, Read, documented},
	{0xa9, Lda, Immediate, 2, 2, samePage, Read, documented},
	{0xaa, Tax, Implied, 1, 2, samePage, Read, documented},
	{0xab, LXA, Immediate, 2, 2, samePage, Read, undocumented},
	{0xac, Ldy, Absolute, 3, 4, samePage, Read, documented},
	{0xad, Lda, Absolute, 3, 4, samePage, Read, documented},
	{0xae, Ldx, Absolute, 3, 4, samePage, Read, documented},
	{0xaf, LAX, Absolute, 3, 4, samePage, Read, undocumented},

	// 0xb0
	{0xb0, Bcs, Relative, 2, 2, pageSensitive, Flow, documented},
	{0xb1, Lda, IndirectIndexed, 2, 5, pageSensitive, Read, documented},
	{0xb2, KIL, Implied, 1, 2, samePage, Flow, undocumented},
	{0xb3, LAX, IndirectIndexed, 2, 5, pageSensitive, Read, undocumented},
	{0xb4, Ldy, ZeroPageIndexedX, 2, 4, samePage, Read, documented},
	{0xb5, Lda, ZeroPageIndexedX, 2, 4, samePage, Read, documented},
	{0xb6, Ldx, ZeroPageIndexedY, 2, 4, samePage, Read, documented},
	{0xb7, LAX, ZeroPageIndexedY, 2, 4, samePage, Read, undocumented},
	{0xb8, Clv, Implied, 1, 2, samePage, Read, documented},
	{0xb9, Lda, AbsoluteIndexedY, 3, 4, pageSensitive, Read, documented},
	{0xba, Tsx, Implied, 1, 2, samePage, Read, documented},
	{0xbb, LAS, AbsoluteIndexedY, 3, 4, pageSensitive, Read, undocumented},
	{0xbc, Ldy, AbsoluteIndexedX, 3, 4, pageSensitive, Read, documented},
	{0xbd, Lda, AbsoluteIndexedX, 3, 4, pageSensitive, Read, documented},
	{0xbe, Ldx, AbsoluteIndexedY, 3, 4, pageSensitive, Read, documented},
	{0xbf, LAX, AbsoluteIndexedY, 3, 4, pageSensitive, Read, undocumented},

	// 0xc0
	{0xc0, Cpy, Immediate, 2, 2, samePage, Read, documented},
	{0xc1, Cmp, IndexedIndirect, 2, 6, samePage, Read, documented},
	{0xc2, Nop, Immediate, 2, 2, samePage, Read, undocumented},
	{0xc3, DCP, IndexedIndirect, 2, 8, samePage, Modify, undocumented},
	{0xc4, Cpy, ZeroPage, 2, 3, samePage, Read, documented},
	{0xc5, Cmp, ZeroPage, 2, 3, samePage, Read, documented},
	{0xc6, Dec, ZeroPage, 2, 5, samePage, Modify, documented},
	{0xc7, DCP, ZeroPage, 2, 5, samePage, Modify, undocumented},
	{0xc8, Iny, Implied, 1, 2, samePage, Read, documented},
	{0xc9, Cmp, Immediate, 2, 2, samePage, Read, documented},
	{0xca, Dex, Implied, 1, 2, samePage, Read, documented},
	{0xcb, AXS, Immediate, 2, 2, samePage, Read, undocumented},
	{0xcc, Cpy, Absolute, 3, 4, samePage, Read, documented},
	{0xcd, Cmp, Absolute, 3, 4, samePage, Read, documented},
	{0xce, Dec, Absolute, 3, 6, samePage, Modify, documented},
	{0xcf, DCP, Absolute, 3, 6, samePage, Modify, undocumented},

	// 0xd0
	{0xd0, Bne, Relative, 2, 2, pageSensitive, Flow, documented},
	{0xd1, Cmp, IndirectIndexed, 2, 5, pageSensitive, Read, documented},
	{0xd2, KIL, Implied, 1, 2, samePage, Flow, undocumented},
	{0xd3, DCP, IndirectIndexed, 2, 8, samePage, Modify, undocumented},
	{0xd4, Nop, ZeroPageIndexedX, 2, 4, samePage, Read, undocumented},
	{0xd5, Cmp, ZeroPageIndexedX, 2, 4, samePage, Read, documented},
	{0xd6, Dec, ZeroPageIndexedX, 2, 6, samePage, Modify, documented},
	{0xd7, DCP, ZeroPageIndexedX, 2, 6, samePage, Modify, undocumented},
	{0xd8, Cld, Implied, 1, 2, samePage, Read, documented},
	{0xd9, Cmp, AbsoluteIndexedY, 3, 4, pageSensitive, Read, documented},
	{0xda, Nop, Implied, 1, 2, samePage, Read, undocumented},
	{0xdb, DCP, AbsoluteIndexedY, 3, 7, samePage, Modify, undocumented},
	{0xdc, Nop, AbsoluteIndexedX, 3, 4, pageSensitive, Read, undocumented},
	{0xdd, Cmp, AbsoluteIndexedX, 3, 4, pageSensitive, Read, documented},
	{0xde, Dec, AbsoluteIndexedX, 3, 7, samePage, Modify, documented},
	{0xdf, DCP, AbsoluteIndexedX, 3, 7, samePage, Modify, undocumented},

	// 0xe0
	{0xe0, Cpx, Immediate, 2, 2, samePage, Read, documented},
	{0xe1, Sbc, IndexedIndirect, 2, 6, samePage, Read, documented},
	{0xe2, Nop, Immediate, 2, 2, samePage, Read, undocumented},
	{0xe3, ISC, IndexedIndirect, 2, 8, samePage, Modify, undocumented},
	{0xe4, Cpx, ZeroPage, 2, 3, samePage, Read, documented},
	{0xe5, Sbc, ZeroPage, 2, 3, samePage, Read, documented},
	{0xe6, Inc, ZeroPage, 2, 5, samePage, Modify, documented},
	{0xe7, ISC, ZeroPage, 2, 5, samePage, Modify, undocumented},
	{0xe8, Inx, Implied, 1, 2, samePage, Read, documented},
	{0xe9, Sbc, Immediate, 2, 2, samePage, Read, documented},
	{0xea, Nop, Implied, 1, 2, samePage, Read, documented},
	{0xeb, Sbc, Immediate, 2, 2, samePage, Read, undocumented},
	{0xec, Cpx, Absolute, 3, 4, samePage, Read, documented},
	{0xed, Sbc, Absolute, 3, 4, samePage, Read, documented},
	{0xee, Inc, Absolute, 3, 6, samePage, Modify, documented},
	{0xef, ISC, Absolute, 3, 6, samePage, Modify, undocumented},

	// 0xf0
	{0xf0, Beq, Relative, 2, 2, pageSensitive, Flow, documented},
	{0xf1, Sbc, IndirectIndexed, 2, 5, pageSensitive, Read, documented},
	{0xf2, KIL, Implied, 1, 2, samePage, Flow, undocumented},
	{0xf3, ISC, IndirectIndexed, 2, 8, samePage, Modify, undocumented},
	{0xf4, Nop, ZeroPageIndexedX, 2, 4, samePage, Read, undocumented},
	{0xf5, Sbc, ZeroPageIndexedX, 2, 4, samePage, Read, documented},
	{0xf6, Inc, ZeroPageIndexedX, 2, 6, samePage, Modify, documented},
	{0xf7, ISC, ZeroPageIndexedX, 2, 6, samePage, Modify, undocumented},
	{0xf8, Sed, Implied, 1, 2, samePage, Read, documented},
	{0xf9, Sbc, AbsoluteIndexedY, 3, 4, pageSensitive, Read, documented},
	{0xfa, Nop, Implied, 1, 2, samePage, Read, undocumented},
	{0xfb, ISC, AbsoluteIndexedY, 3, 7, samePage, Modify, undocumented},
	{0xfc, Nop, AbsoluteIndexedX, 3, 4, pageSensitive, Read, undocumented},
	{0xfd, Sbc, AbsoluteIndexedX, 3, 4, pageSensitive, Read, documented},
	{0xfe, Inc, AbsoluteIndexedX, 3, 7, samePage, Modify, documented},
	{0xff, ISC, AbsoluteIndexedX, 3, 7, samePage, Modify, undocumented},
}

// the table indexed by opcode
var table [256]*Definition

func init() {
	err := buildTable(definitions, &table)
	if err != nil {
		panic(err)
	}
}

// buildTable fills in the table from the list of definitions. An error is
// returned if the list contains duplicate entries, if any opcode is missing,
// or if any entry is internally inconsistent.
func buildTable(defs []Definition, t *[256]*Definition) error {
	for i := range defs {
		d := &defs[i]

		if t[d.OpCode] != nil {
			return curated.Errorf(DuplicateDefinition, d.OpCode)
		}
		if d.Bytes != d.AddressingMode.Bytes() {
			return curated.Errorf(InconsistentBytes,
				d.OpCode, d.Bytes, d.AddressingMode, d.AddressingMode.Bytes())
		}
		if d.Operator < 0 || d.Operator >= NumOperators {
			return curated.Errorf(InvalidOperator, d.OpCode)
		}
		if d.Operator.Documented() == d.Undocumented && d.Operator != Nop && d.Operator != Sbc {
			return curated.Errorf(InconsistentDocument, d.OpCode, d.Operator)
		}

		t[d.OpCode] = d
	}

	for i, d := range t {
		if d == nil {
			return curated.Errorf(MissingDefinition, i)
		}
	}

	return nil
}

// Lookup returns the definition for the opcode. There is a definition for
// every possible opcode value.
func Lookup(opcode uint8) *Definition {
	return table[opcode]
}

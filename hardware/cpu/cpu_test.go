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

package cpu_test

import (
	"strings"
	"testing"

	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/memory"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/test"
)

type mockMem struct {
	*memory.RAM
}

func newMockMem() *mockMem {
	return &mockMem{RAM: memory.NewRAM()}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d := mem.Read(address)
	if d != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %04x)", d, value, address)
	}
}

func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles, err := mc.Step()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return cycles
}

func TestPowerOn(t *testing.T) {
	mem := newMockMem()
	mem.SetVector(cpubus.Reset, 0xc000)
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())

	test.ExpectEquality(t, mc.Reset(), 7)
	regs := mc.Registers()
	test.ExpectEquality(t, regs.PC.Address(), 0xc000)
	test.ExpectEquality(t, regs.A.Value(), 0)
	test.ExpectEquality(t, regs.X.Value(), 0)
	test.ExpectEquality(t, regs.Y.Value(), 0)
	test.ExpectEquality(t, regs.SP.Value(), 0xfd)
	test.ExpectEquality(t, regs.Status.Value(), 0x24)
	test.ExpectEquality(t, mc.Cycles(), 7)

	mc.ResetAt(0x8000)
	test.ExpectEquality(t, mc.Registers().PC.Address(), 0x8000)
	test.ExpectEquality(t, mc.Cycles(), 14)
	test.ExpectEquality(t, mc.String(), "PC=8000 A=00 X=00 Y=00 P=24 SP=fd [svUbdIzc]")
}

func TestRandomState(t *testing.T) {
	mem := newMockMem()
	prefs := cpu.DefaultPreferences()
	prefs.RandomState = true
	mc := cpu.NewCPU(mem, prefs)
	mc.ResetAt(0x8000)

	// only the general purpose registers are randomised
	regs := mc.Registers()
	test.ExpectEquality(t, regs.SP.Value(), 0xfd)
	test.ExpectEquality(t, regs.Status.Value(), 0x24)
	test.ExpectEquality(t, regs.PC.Address(), 0x8000)
}

func TestStatusInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())

	var origin uint16
	mc.ResetAt(origin)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin = mem.putInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Registers().Status.String(), "svUbdIzC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Registers().Status.String(), "svUbdIzc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Registers().Status.String(), "svUbdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Registers().Status.String(), "svUbdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Registers().Status.String(), "svUbDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Registers().Status.String(), "svUbdIzc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Registers().Status.String(), "svUbdIzc")

	// PHP; LDA #$ff; PHA; PLP; PLP
	_ = mem.putInstructions(origin, 0x08, 0xa9, 0xff, 0x48, 0x28, 0x28)
	test.ExpectEquality(t, step(t, mc), 3) // PHP
	test.ExpectEquality(t, mc.Registers().SP.Value(), 0xfc)

	// PHP pushes the status register with both break-marker bits set
	mem.assert(t, 0x01fd, 0x34)

	step(t, mc) // LDA #$ff
	step(t, mc) // PHA
	mem.assert(t, 0x01fc, 0xff)

	// PLP ignores the break-marker bits in the pulled value
	test.ExpectEquality(t, step(t, mc), 4) // PLP
	test.ExpectEquality(t, mc.Registers().Status.String(), "SVUbDIZC")
	test.ExpectEquality(t, mc.Registers().Status.Value(), 0xef)

	step(t, mc) // PLP
	test.ExpectEquality(t, mc.Registers().Status.String(), "svUbdIzc")
	test.ExpectEquality(t, mc.Registers().SP.Value(), 0xfd)
}

func TestArithmetic(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())

	var origin uint16
	mc.ResetAt(origin)

	// LDA immediate; ADC immediate
	origin = mem.putInstructions(origin, 0xa9, 1, 0x69, 10)
	step(t, mc) // LDA #1
	step(t, mc) // ADC #10
	test.ExpectEquality(t, mc.Registers().A.Value(), 11)

	// SEC; SBC immediate
	origin = mem.putInstructions(origin, 0x38, 0xe9, 8)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	test.ExpectEquality(t, mc.Registers().A.Value(), 3)
	test.ExpectEquality(t, mc.Registers().Status.Carry, true)

	// SBC with borrow: CLC; SBC #3
	_ = mem.putInstructions(origin, 0x18, 0xe9, 3)
	step(t, mc) // CLC
	step(t, mc) // SBC #3
	test.ExpectEquality(t, mc.Registers().A.Value(), 0xff)
	test.ExpectEquality(t, mc.Registers().Status.Carry, false)
	test.ExpectEquality(t, mc.Registers().Status.Sign, true)
}

// ADC #$05 with A=$10 and carry clear
func TestADCScenario(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
	mc.ResetAt(0x8000)

	mem.putInstructions(0x8000, 0xa9, 0x10, 0x18, 0x69, 0x05)
	step(t, mc) // LDA #$10
	step(t, mc) // CLC
	test.ExpectEquality(t, step(t, mc), 2)

	regs := mc.Registers()
	test.ExpectEquality(t, regs.A.Value(), 0x15)
	test.ExpectEquality(t, regs.Status.Carry, false)
	test.ExpectEquality(t, regs.Status.Zero, false)
	test.ExpectEquality(t, regs.Status.Sign, false)
	test.ExpectEquality(t, regs.Status.Overflow, false)
	test.ExpectEquality(t, regs.PC.Address(), 0x8005)
}

// BCC +2 with carry clear
func TestBCCScenario(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())

	mc.ResetAt(0x8000)
	mem.putInstructions(0x8000, 0x90, 0x02)
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.Registers().PC.Address(), 0x8004)
	test.ExpectSuccess(t, mc.LastResult.BranchSuccess)
	test.ExpectFailure(t, mc.LastResult.PageFault)

	// same instruction but the destination is in the next page
	mc.ResetAt(0x80fd)
	mem.putInstructions(0x80fd, 0x90, 0x02)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.Registers().PC.Address(), 0x8101)
	test.ExpectSuccess(t, mc.LastResult.PageFault)
}

// BRK followed by RTI
func TestBRKScenario(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())

	mem.SetVector(cpubus.BRK, 0x9000)
	mem.putInstructions(0x8000, 0x58, 0x00)
	mem.putInstructions(0x9000, 0x40)
	mc.ResetAt(0x8000)

	step(t, mc) // CLI
	test.ExpectEquality(t, step(t, mc), 7) // BRK

	regs := mc.Registers()
	test.ExpectEquality(t, regs.PC.Address(), 0x9000)
	test.ExpectEquality(t, regs.SP.Value(), 0xfa)
	test.ExpectEquality(t, regs.Status.InterruptDisable, true)

	// BRK is a one byte instruction but the return address skips the
	// following byte. the address is pushed high byte first
	mem.assert(t, 0x01fd, 0x80)
	mem.assert(t, 0x01fc, 0x03)

	// status is pushed with both break-marker bits set
	mem.assert(t, 0x01fb, 0x30)

	test.ExpectEquality(t, step(t, mc), 6) // RTI
	regs = mc.Registers()
	test.ExpectEquality(t, regs.PC.Address(), 0x8003)
	test.ExpectEquality(t, regs.SP.Value(), 0xfd)
	test.ExpectEquality(t, regs.Status.String(), "svUbdizc")
}

func TestBitwiseInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
	mc.ResetAt(0)

	// ORA immediate; EOR immediate; AND immediate
	mem.putInstructions(0, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	step(t, mc) // ORA #$FF
	test.ExpectEquality(t, mc.Registers().A.Value(), 0xff)
	test.ExpectEquality(t, mc.Registers().Status.Sign, true)
	step(t, mc) // EOR #$F0
	test.ExpectEquality(t, mc.Registers().A.Value(), 0x0f)
	test.ExpectEquality(t, mc.Registers().Status.Sign, false)
	step(t, mc) // AND #$01
	test.ExpectEquality(t, mc.Registers().A.Value(), 0x01)
	test.ExpectEquality(t, mc.Registers().Status.Zero, false)
}

func TestBIT(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
	mc.ResetAt(0x0200)

	mem.Write(0x10, 0xc0)
	mem.Write(0x11, 0x01)

	// LDA #$01; BIT $10; BIT $11
	mem.putInstructions(0x0200, 0xa9, 0x01, 0x24, 0x10, 0x24, 0x11)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 3)
	regs := mc.Registers()
	test.ExpectEquality(t, regs.Status.Sign, true)
	test.ExpectEquality(t, regs.Status.Overflow, true)
	test.ExpectEquality(t, regs.Status.Zero, true)

	// A is unchanged
	test.ExpectEquality(t, regs.A.Value(), 0x01)

	step(t, mc)
	regs = mc.Registers()
	test.ExpectEquality(t, regs.Status.Sign, false)
	test.ExpectEquality(t, regs.Status.Overflow, false)
	test.ExpectEquality(t, regs.Status.Zero, false)
}

func TestCompare(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
	mc.ResetAt(0)

	// LDA #$40; CMP #$41; CMP #$40; LDX #$10; CPX #$01; LDY #$00; CPY #$01
	mem.putInstructions(0, 0xa9, 0x40, 0xc9, 0x41, 0xc9, 0x40, 0xa2, 0x10, 0xe0, 0x01, 0xa0, 0x00, 0xc0, 0x01)
	step(t, mc)
	step(t, mc) // CMP #$41
	test.ExpectEquality(t, mc.Registers().Status.String(), "SvUbdIzc")
	step(t, mc) // CMP #$40
	test.ExpectEquality(t, mc.Registers().Status.String(), "svUbdIZC")
	step(t, mc)
	step(t, mc) // CPX #$01
	test.ExpectEquality(t, mc.Registers().Status.String(), "svUbdIzC")
	step(t, mc)
	step(t, mc) // CPY #$01
	test.ExpectEquality(t, mc.Registers().Status.String(), "SvUbdIzc")

	// registers are unchanged by a compare
	test.ExpectEquality(t, mc.Registers().A.Value(), 0x40)
	test.ExpectEquality(t, mc.Registers().X.Value(), 0x10)
	test.ExpectEquality(t, mc.Registers().Y.Value(), 0x00)
}

func TestShifts(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
	mc.ResetAt(0)

	// LDA #$81; ASL A; LSR A; ROR A; ROL A
	mem.putInstructions(0, 0xa9, 0x81, 0x0a, 0x4a, 0x6a, 0x2a)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 2) // ASL A
	test.ExpectEquality(t, mc.Registers().A.Value(), 0x02)
	test.ExpectEquality(t, mc.Registers().Status.Carry, true)
	step(t, mc) // LSR A
	test.ExpectEquality(t, mc.Registers().A.Value(), 0x01)
	test.ExpectEquality(t, mc.Registers().Status.Carry, false)
	step(t, mc) // ROR A
	test.ExpectEquality(t, mc.Registers().A.Value(), 0x00)
	test.ExpectEquality(t, mc.Registers().Status.Carry, true)
	test.ExpectEquality(t, mc.Registers().Status.Zero, true)
	step(t, mc) // ROL A
	test.ExpectEquality(t, mc.Registers().A.Value(), 0x01)
	test.ExpectEquality(t, mc.Registers().Status.Carry, false)
}

func TestReadModifyWrite(t *testing.T) {
	ram := memory.NewRAM()
	rec := memory.NewRecorder(ram)
	mc := cpu.NewCPU(rec, cpu.DefaultPreferences())
	mc.ResetAt(0x0200)

	// INC $10; ASL $11; ROR A
	ram.Load(0x0200, []uint8{0xe6, 0x10, 0x06, 0x11, 0x6a})
	ram.Write(0x10, 0x41)
	ram.Write(0x11, 0x81)

	test.ExpectEquality(t, step(t, mc), 5)
	w := rec.Writes()
	test.DemandEquality(t, len(w), 2)

	// the unmodified value is written first
	test.ExpectEquality(t, w[0], memory.Access{Address: 0x10, Data: 0x41, Write: true})
	test.ExpectEquality(t, w[1], memory.Access{Address: 0x10, Data: 0x42, Write: true})

	rec.Reset()
	test.ExpectEquality(t, step(t, mc), 5)
	w = rec.Writes()
	test.DemandEquality(t, len(w), 2)
	test.ExpectEquality(t, w[0], memory.Access{Address: 0x11, Data: 0x81, Write: true})
	test.ExpectEquality(t, w[1], memory.Access{Address: 0x11, Data: 0x02, Write: true})
	test.ExpectEquality(t, mc.Registers().Status.Carry, true)

	// accumulator mode does not touch memory beyond the opcode fetch
	rec.Reset()
	step(t, mc)
	test.DemandEquality(t, len(rec.Accesses), 1)
	test.ExpectEquality(t, rec.Accesses[0].Address, 0x0204)
}

func TestStoresDoNotRead(t *testing.T) {
	ram := memory.NewRAM()
	rec := memory.NewRecorder(ram)
	mc := cpu.NewCPU(rec, cpu.DefaultPreferences())
	mc.ResetAt(0x0200)

	// STA $2002
	ram.Load(0x0200, []uint8{0x8d, 0x02, 0x20})
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, rec.String(), "R 0200 8d\nR 0201 02\nR 0202 20\nW 2002 00\n")
}

func TestLoadsAndStores(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
	mc.ResetAt(0x0200)

	mem.Write(0x1234, 0x99)

	// LDA $1234; LDX #$80; LDY #$00; STA $10; STX $11; STY $12
	mem.putInstructions(0x0200, 0xad, 0x34, 0x12, 0xa2, 0x80, 0xa0, 0x00, 0x85, 0x10, 0x86, 0x11, 0x84, 0x12)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.Registers().A.Value(), 0x99)
	step(t, mc)
	test.ExpectEquality(t, mc.Registers().Status.Sign, true)
	step(t, mc)
	test.ExpectEquality(t, mc.Registers().Status.Zero, true)

	test.ExpectEquality(t, step(t, mc), 3)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x10, 0x99)
	mem.assert(t, 0x11, 0x80)
	mem.assert(t, 0x12, 0x00)
}

func TestTransfers(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
	mc.ResetAt(0)

	// LDX #$00; LDA #$01; TXS; TSX; LDA #$f0; TAY; TYA; TAX; TXA
	mem.putInstructions(0, 0xa2, 0x00, 0xa9, 0x01, 0x9a, 0xba, 0xa9, 0xf0, 0xa8, 0x98, 0xaa, 0x8a)
	step(t, mc)
	step(t, mc)

	// TXS does not affect the flags
	step(t, mc)
	test.ExpectEquality(t, mc.Registers().SP.Value(), 0x00)
	test.ExpectEquality(t, mc.Registers().Status.Zero, false)

	// but TSX does
	step(t, mc)
	test.ExpectEquality(t, mc.Registers().Status.Zero, true)

	step(t, mc)
	step(t, mc) // TAY
	test.ExpectEquality(t, mc.Registers().Y.Value(), 0xf0)
	test.ExpectEquality(t, mc.Registers().Status.Sign, true)
	step(t, mc) // TYA
	step(t, mc) // TAX
	test.ExpectEquality(t, mc.Registers().X.Value(), 0xf0)
	step(t, mc) // TXA
	test.ExpectEquality(t, mc.Registers().A.Value(), 0xf0)
}

func TestIncrementsAndDecrements(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
	mc.ResetAt(0x0200)

	mem.Write(0x10, 0xff)

	// LDX #$ff; INX; DEY; INY; DEX; INC $10; DEC $10
	mem.putInstructions(0x0200, 0xa2, 0xff, 0xe8, 0x88, 0xc8, 0xca, 0xe6, 0x10, 0xc6, 0x10)
	step(t, mc)
	step(t, mc) // INX
	test.ExpectEquality(t, mc.Registers().X.Value(), 0x00)
	test.ExpectEquality(t, mc.Registers().Status.Zero, true)
	step(t, mc) // DEY
	test.ExpectEquality(t, mc.Registers().Y.Value(), 0xff)
	test.ExpectEquality(t, mc.Registers().Status.Sign, true)
	step(t, mc) // INY
	test.ExpectEquality(t, mc.Registers().Y.Value(), 0x00)
	step(t, mc) // DEX
	test.ExpectEquality(t, mc.Registers().X.Value(), 0xff)
	step(t, mc) // INC $10
	mem.assert(t, 0x10, 0x00)
	test.ExpectEquality(t, mc.Registers().Status.Zero, true)
	step(t, mc) // DEC $10
	mem.assert(t, 0x10, 0xff)
	test.ExpectEquality(t, mc.Registers().Status.Sign, true)
}

func TestSubroutine(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
	mc.ResetAt(0x0200)

	// JSR $0300; ... RTS
	mem.putInstructions(0x0200, 0x20, 0x00, 0x03)
	mem.putInstructions(0x0300, 0x60)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.Registers().PC.Address(), 0x0300)
	test.ExpectEquality(t, mc.Registers().SP.Value(), 0xfb)

	// the address of the last byte of the JSR instruction
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x02)

	rts, ok := mc.PredictRTS()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, rts, 0x0203)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.Registers().PC.Address(), 0x0203)
	test.ExpectEquality(t, mc.Registers().SP.Value(), 0xfd)
}

// stack wraps within the stack page
func TestStackRoundTrip(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
	mc.ResetAt(0x0200)

	// LDX #$01; TXS; then push four values
	origin := mem.putInstructions(0x0200, 0xa2, 0x01, 0x9a)
	for i := range 4 {
		origin = mem.putInstructions(origin, 0xa9, uint8(i+1), 0x48)
	}
	for range 4 {
		origin = mem.putInstructions(origin, 0x68)
	}

	step(t, mc)
	step(t, mc)
	for range 4 {
		step(t, mc) // LDA
		step(t, mc) // PHA
	}
	test.ExpectEquality(t, mc.Registers().SP.Value(), 0xfd)
	mem.assert(t, 0x0101, 0x01)
	mem.assert(t, 0x0100, 0x02)
	mem.assert(t, 0x01ff, 0x03)
	mem.assert(t, 0x01fe, 0x04)

	for i := range 4 {
		test.ExpectEquality(t, step(t, mc), 4) // PLA
		test.ExpectEquality(t, mc.Registers().A.Value(), uint8(4-i))
	}
	test.ExpectEquality(t, mc.Registers().SP.Value(), 0x01)
}

func TestJMPIndirect(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())

	// JMP ($1100)
	mem.putInstructions(0x0200, 0x6c, 0x00, 0x11)
	mem.Write(0x1100, 0x78)
	mem.Write(0x1101, 0x56)
	mc.ResetAt(0x0200)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.Registers().PC.Address(), 0x5678)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)

	// JMP ($10ff). the high byte is read from $1000 and not $1100
	mem.putInstructions(0x0200, 0x6c, 0xff, 0x10)
	mem.Write(0x10ff, 0x34)
	mem.Write(0x1000, 0x12)
	mem.Write(0x1100, 0x56)
	mc.ResetAt(0x0200)
	step(t, mc)
	test.ExpectEquality(t, mc.Registers().PC.Address(), 0x1234)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.JmpIndirectAddressingBug)

	// JMP $c000
	mem.putInstructions(0x0200, 0x4c, 0x00, 0xc0)
	mc.ResetAt(0x0200)
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.Registers().PC.Address(), 0xc000)
}

func TestBranches(t *testing.T) {
	type branchTest struct {
		name     string
		opcode   uint8
		taken    []uint8
		notTaken []uint8
	}

	// each setup is a single instruction. BIT $10 is used to set the
	// overflow flag
	tests := []branchTest{
		{"BCC", 0x90, []uint8{0x18}, []uint8{0x38}},
		{"BCS", 0xb0, []uint8{0x38}, []uint8{0x18}},
		{"BEQ", 0xf0, []uint8{0xa9, 0x00}, []uint8{0xa9, 0x01}},
		{"BNE", 0xd0, []uint8{0xa9, 0x01}, []uint8{0xa9, 0x00}},
		{"BMI", 0x30, []uint8{0xa9, 0x80}, []uint8{0xa9, 0x01}},
		{"BPL", 0x10, []uint8{0xa9, 0x01}, []uint8{0xa9, 0x80}},
		{"BVC", 0x50, []uint8{0xb8}, []uint8{0x24, 0x10}},
		{"BVS", 0x70, []uint8{0x24, 0x10}, []uint8{0xb8}},
	}

	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())

	// run the setup instruction and then the branch instruction at the
	// location. returns the number of cycles taken by the branch
	run := func(t *testing.T, setup []uint8, opcode uint8, location uint16, offset uint8) int {
		t.Helper()
		mem.Clear()
		mem.Write(0x10, 0x40)
		origin := location - uint16(len(setup))
		mem.putInstructions(origin, setup...)
		mem.putInstructions(location, opcode, offset)
		mc.ResetAt(origin)
		step(t, mc)
		return step(t, mc)
	}

	for _, b := range tests {
		t.Run(b.name, func(t *testing.T) {
			test.ExpectEquality(t, run(t, b.notTaken, b.opcode, 0x8010, 0x02), 2)
			test.ExpectEquality(t, mc.Registers().PC.Address(), 0x8012)
			test.ExpectFailure(t, mc.LastResult.BranchSuccess)

			test.ExpectEquality(t, run(t, b.taken, b.opcode, 0x8010, 0x02), 3)
			test.ExpectEquality(t, mc.Registers().PC.Address(), 0x8014)
			test.ExpectSuccess(t, mc.LastResult.BranchSuccess)
			test.ExpectFailure(t, mc.LastResult.PageFault)

			// forwards into the next page
			test.ExpectEquality(t, run(t, b.taken, b.opcode, 0x80fd, 0x02), 4)
			test.ExpectEquality(t, mc.Registers().PC.Address(), 0x8101)
			test.ExpectSuccess(t, mc.LastResult.PageFault)

			// backwards into the previous page
			test.ExpectEquality(t, run(t, b.taken, b.opcode, 0x8100, 0xfc), 4)
			test.ExpectEquality(t, mc.Registers().PC.Address(), 0x80fe)
			test.ExpectSuccess(t, mc.LastResult.PageFault)

			// a branch to itself
			test.ExpectEquality(t, run(t, b.taken, b.opcode, 0x8010, 0xfe), 3)
			test.ExpectEquality(t, mc.Registers().PC.Address(), 0x8010)
		})
	}
}

func TestZeroPageIndexing(t *testing.T) {
	ram := memory.NewRAM()
	rec := memory.NewRecorder(ram)
	mc := cpu.NewCPU(rec, cpu.DefaultPreferences())

	// LDX #x; LDA zp,X for every combination of zero page address and
	// index. the effective address never leaves the zero page
	for x := range 256 {
		for zp := range 256 {
			ram.Load(0x0200, []uint8{0xa2, uint8(x), 0xb5, uint8(zp)})
			mc.ResetAt(0x0200)
			step(t, mc)
			rec.Reset()
			test.DemandEquality(t, step(t, mc), 4)

			last := rec.Accesses[len(rec.Accesses)-1]
			test.DemandEquality(t, last.Address, uint16(uint8(zp+x)))
			if zp+x > 0xff {
				test.DemandEquality(t, mc.LastResult.CPUBug, execution.ZeroPageIndexBug)
			}
		}
	}

	// STA $80,X with X=$ff writes to $7f
	mem := newMockMem()
	mc = cpu.NewCPU(mem, cpu.DefaultPreferences())
	mem.putInstructions(0x0200, 0xa2, 0xff, 0xa9, 0x42, 0x95, 0x80)
	mc.ResetAt(0x0200)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x007f, 0x42)
	mem.assert(t, 0x017f, 0x00)

	// LDX $ff,Y with Y=$02 reads from $01
	mem.Write(0x0001, 0x99)
	mem.putInstructions(0x0200, 0xa0, 0x02, 0xb6, 0xff)
	mc.ResetAt(0x0200)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Registers().X.Value(), 0x99)
}

func TestIndirectAddressing(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())

	// LDX #$01; LDA ($ff,X). the pointer wraps to $00
	mem.Write(0x0000, 0x34)
	mem.Write(0x0001, 0x12)
	mem.Write(0x1234, 0xaa)
	mem.putInstructions(0x0200, 0xa2, 0x01, 0xa1, 0xff)
	mc.ResetAt(0x0200)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.Registers().A.Value(), 0xaa)

	// LDX #$01; LDA ($fe,X). the pointer is at $ff and the high byte is
	// read from $00
	mem.Write(0x00ff, 0x00)
	mem.Write(0x0000, 0x13)
	mem.Write(0x1300, 0xbb)
	mem.putInstructions(0x0200, 0xa2, 0x01, 0xa1, 0xfe)
	mc.ResetAt(0x0200)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Registers().A.Value(), 0xbb)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.IndexedIndirectAddressingBug)

	// LDY #$10; LDA ($20),Y. indexing carries into the next page
	mem.Write(0x0020, 0xf8)
	mem.Write(0x0021, 0x12)
	mem.Write(0x1308, 0xcc)
	mem.putInstructions(0x0200, 0xa0, 0x10, 0xb1, 0x20)
	mc.ResetAt(0x0200)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.Registers().A.Value(), 0xcc)
	test.ExpectSuccess(t, mc.LastResult.PageFault)

	// LDY #$01; LDA ($20),Y. no page cross
	mem.putInstructions(0x0200, 0xa0, 0x01, 0xb1, 0x20)
	mc.ResetAt(0x0200)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectFailure(t, mc.LastResult.PageFault)

	// STA ($20),Y always takes the extra cycle
	mem.putInstructions(0x0200, 0xa0, 0x01, 0x91, 0x20)
	mc.ResetAt(0x0200)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectFailure(t, mc.LastResult.PageFault)
	mem.assert(t, 0x12f9, 0x00)
}

func TestAbsoluteIndexing(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())

	mem.Write(0x1300, 0x11)
	mem.Write(0x1280, 0x22)

	// LDX #$01; LDA $12ff,X
	mem.putInstructions(0x0200, 0xa2, 0x01, 0xbd, 0xff, 0x12)
	mc.ResetAt(0x0200)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.Registers().A.Value(), 0x11)
	test.ExpectSuccess(t, mc.LastResult.PageFault)

	// LDY #$80; LDA $1200,Y
	mem.putInstructions(0x0200, 0xa0, 0x80, 0xb9, 0x00, 0x12)
	mc.ResetAt(0x0200)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.Registers().A.Value(), 0x22)

	// LDX #$01; STA $12ff,X takes five cycles whether or not the page is
	// crossed
	mem.putInstructions(0x0200, 0xa2, 0x01, 0x9d, 0xff, 0x12)
	mc.ResetAt(0x0200)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectFailure(t, mc.LastResult.PageFault)

	// LDX #$01; INC $12ff,X takes seven cycles
	mem.putInstructions(0x0200, 0xa2, 0x01, 0xfe, 0xff, 0x12)
	mc.ResetAt(0x0200)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 7)
}

func TestSnapshot(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
	mc.ResetAt(0x0200)

	// LDA #$01; LDA #$02
	mem.putInstructions(0x0200, 0xa9, 0x01, 0xa9, 0x02)
	step(t, mc)

	s := mc.Snapshot()
	step(t, mc)
	test.ExpectEquality(t, mc.Registers().A.Value(), 0x02)
	test.ExpectEquality(t, s.Registers().A.Value(), 0x01)

	mc.Restore(s)
	test.ExpectEquality(t, mc.Registers(), s.Registers())
	test.ExpectEquality(t, mc.Cycles(), s.Cycles())
	test.ExpectEquality(t, mc.Registers().PC.Address(), 0x0202)

	// the snapshot continues independently
	step(t, s)
	test.ExpectEquality(t, s.Registers().A.Value(), 0x02)
	test.ExpectEquality(t, mc.Registers().A.Value(), 0x01)
}

func TestTrace(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
	mc.ResetAt(0xc000)

	mem.putInstructions(0xc000, 0xa9, 0x05)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.String(), "c000  a9 05      LDA #$05 [2]")
	test.ExpectEquality(t, strings.HasSuffix(mc.Trace(), "PC=c002 A=05 X=00 Y=00 P=24 SP=fd [svUbdIzc]"), true)
}

func TestCycles(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
	test.ExpectEquality(t, mc.ResetAt(0x0200), 7)

	// NOP; NOP; LDA $10
	mem.putInstructions(0x0200, 0xea, 0xea, 0xa5, 0x10)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Cycles(), 7+2+2+3)
}

func TestDecodeIsComplete(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
	mc.ResetAt(0x0200)

	// NOP; LDA #$01; LDA $1234
	mem.putInstructions(0x0200, 0xea, 0xa9, 0x01, 0xad, 0x34, 0x12)
	for _, n := range []int{1, 2, 3} {
		step(t, mc)
		test.ExpectEquality(t, mc.LastResult.ByteCount, n)
		test.ExpectEquality(t, mc.LastResult.ByteCount, mc.LastResult.Defn.Bytes)
		test.ExpectSuccess(t, mc.LastResult.Final)
	}
}

func TestLoadRegisters(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.DefaultPreferences())
	mc.ResetAt(0x0200)

	regs := mc.Registers()
	regs.A.Load(0x12)
	regs.X.Load(0x34)
	regs.PC.Load(0x0300)
	regs.Status.Carry = true
	mc.LoadRegisters(regs)

	// ADC #$01
	mem.putInstructions(0x0300, 0x69, 0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.Registers().A.Value(), 0x14)
	test.ExpectEquality(t, mc.Registers().X.Value(), 0x34)
}

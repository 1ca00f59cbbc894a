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

package thomharte

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory"
	"github.com/famicore/famicore/test"
)

// the posible memory events in the BusCycle test data
type memEvent string

const (
	read  = memEvent("read")
	write = memEvent("write")
)

type RAMEntry struct {
	Address uint16
	Value   uint8
}

func (r *RAMEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint64
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	r.Address = uint16(raw[0])
	r.Value = uint8(raw[1])
	return nil
}

type BusCycle struct {
	Address uint16
	Data    uint8
	Event   memEvent
}

func (b *BusCycle) UnmarshalJSON(data []byte) error {
	var raw [3]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	addr, _ := raw[0].(float64)
	dat, _ := raw[1].(float64)
	ev, _ := raw[2].(string)

	b.Address = uint16(addr)
	b.Data = uint8(dat)
	b.Event = memEvent(ev)

	switch b.Event {
	case read, write:
	default:
		return fmt.Errorf("unexpected memory event: %q", b.Event)
	}

	return nil
}

type State struct {
	PC  uint64     `json:"pc"`
	S   uint64     `json:"s"`
	A   uint64     `json:"a"`
	X   uint64     `json:"x"`
	Y   uint64     `json:"y"`
	P   uint64     `json:"p"`
	RAM []RAMEntry `json:"ram"`
}

// registers returns the state as a register file.
func (s State) registers() registers.File {
	f := registers.NewFile()
	f.PC.Load(uint16(s.PC))
	f.A.Load(uint8(s.A))
	f.X.Load(uint8(s.X))
	f.Y.Load(uint8(s.Y))
	f.SP.Load(uint8(s.S))
	f.Status.Load(uint8(s.P))
	return f
}

type Tests struct {
	Name    string     `json:"name"`
	Initial State      `json:"initial"`
	Final   State      `json:"final"`
	Cycles  []BusCycle `json:"cycles"`
}

func (d *Tests) UnmarshalJSON(data []byte) error {
	// alias type so that the unmarshaller does not recurse. the custom
	// unmarshaller exists only to add the name of the test to any error
	type norecurse Tests

	var tmp norecurse
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("error unmarshalling test %q: %w", tmp.Name, err)
	}
	*d = Tests(tmp)
	return nil
}

// opcodes that are jammed or whose behaviour differs between chips
var skipped = map[instructions.Operator]bool{
	instructions.KIL: true,
	instructions.XAA: true,
	instructions.LXA: true,
	instructions.AHX: true,
	instructions.TAS: true,
	instructions.SHY: true,
	instructions.SHX: true,
}

var testsPath = filepath.Join("nes6502", "v1")

func TestThomHarte(t *testing.T) {
	d, err := os.ReadDir(testsPath)
	if err != nil {
		t.Skipf("no test data: %v", err)
	}

	for _, e := range d {
		if e.Type().IsRegular() && filepath.Ext(e.Name()) == ".json" {
			testThomHarte(t, filepath.Join(testsPath, e.Name()))
		}
	}
}

// isSkipped returns true if tests for the opcode should not be run.
func isSkipped(opcode uint8) bool {
	return skipped[instructions.Lookup(opcode).Operator]
}

// testThomHarte runs every test in the file and returns the number of tests
// that were not skipped. A file usually holds tests for a single opcode but
// that is not assumed.
func testThomHarte(t *testing.T, testFile string) int {
	t.Logf("testing %s", testFile)

	f, err := os.Open(testFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var tests []Tests
	if err := json.NewDecoder(f).Decode(&tests); err != nil {
		t.Fatalf("%s: %v", testFile, err)
	}

	ram := memory.NewRAM()
	rec := memory.NewRecorder(ram)

	prefs := cpu.DefaultPreferences()
	prefs.Illegal = cpu.IllegalEmulate
	mc := cpu.NewCPU(rec, prefs)

	var run int
	var logged bool

	for i, s := range tests {
		mc.Reset()
		mc.LoadRegisters(s.Initial.registers())
		for _, r := range s.Initial.RAM {
			ram.Write(r.Address, r.Value)
		}

		opcode := ram.Peek(uint16(s.Initial.PC))
		if isSkipped(opcode) {
			if !logged {
				logged = true
				t.Logf("%s: skipping %s", testFile, instructions.Lookup(opcode))
			}
			for _, r := range s.Initial.RAM {
				ram.Write(r.Address, 0)
			}
			continue
		}
		run++

		rec.Reset()
		cycles, err := mc.Step()
		if err != nil {
			t.Fatal(err)
		}

		var fail bool

		regs := mc.Registers()
		fail = !test.ExpectEquality(t, regs.PC.Address(), uint16(s.Final.PC), testFile, i, "PC") || fail
		fail = !test.ExpectEquality(t, regs.A.Value(), uint8(s.Final.A), testFile, i, "A") || fail
		fail = !test.ExpectEquality(t, regs.X.Value(), uint8(s.Final.X), testFile, i, "X") || fail
		fail = !test.ExpectEquality(t, regs.Y.Value(), uint8(s.Final.Y), testFile, i, "Y") || fail
		fail = !test.ExpectEquality(t, regs.SP.Value(), uint8(s.Final.S), testFile, i, "SP") || fail

		// the break-marker bits are not storage in the CPU
		fail = !test.ExpectEquality(t, regs.Status.Value()&0xcf, uint8(s.Final.P)&0xcf, testFile, i, "Status") || fail

		for _, r := range s.Final.RAM {
			fail = !test.ExpectEquality(t, ram.Peek(r.Address), r.Value, testFile, i, fmt.Sprintf("RAM %04x", r.Address)) || fail
		}

		fail = !test.ExpectEquality(t, cycles, len(s.Cycles), testFile, i, "cycles") || fail

		var writes []BusCycle
		for _, c := range s.Cycles {
			if c.Event == write {
				writes = append(writes, c)
			}
		}
		w := rec.Writes()
		if test.ExpectEquality(t, len(w), len(writes), testFile, i, "number of writes") {
			for j := range w {
				fail = !test.ExpectEquality(t, w[j].Address, writes[j].Address, testFile, i, "write address") || fail
				fail = !test.ExpectEquality(t, w[j].Data, writes[j].Data, testFile, i, "write data") || fail
			}
		} else {
			fail = true
		}

		if fail {
			t.Logf("last instruction: %s", mc.LastResult.String())
			t.Fatalf("%s: failed on test %d (%s)", testFile, i, s.Name)
		}

		// the RAM must be clean for the next test
		for _, r := range s.Final.RAM {
			ram.Write(r.Address, 0)
		}
	}

	return run
}

func TestSkipped(t *testing.T) {
	test.ExpectSuccess(t, isSkipped(0x02)) // KIL
	test.ExpectSuccess(t, isSkipped(0x8b)) // XAA
	test.ExpectSuccess(t, isSkipped(0x9c)) // SHY
	test.ExpectFailure(t, isSkipped(0xa9)) // LDA
	test.ExpectFailure(t, isSkipped(0xa7)) // LAX
}

// a skipped test does not stop the tests that follow it in the same file
const mixedTests = `[
	{
		"name": "02 00 00",
		"initial": {"pc": 768, "s": 253, "a": 0, "x": 0, "y": 0, "p": 36, "ram": [[768, 2]]},
		"final": {"pc": 769, "s": 253, "a": 0, "x": 0, "y": 0, "p": 36, "ram": [[768, 2]]},
		"cycles": [[768, 2, "read"]]
	},
	{
		"name": "a9 05",
		"initial": {"pc": 512, "s": 253, "a": 0, "x": 0, "y": 0, "p": 36, "ram": [[512, 169], [513, 5]]},
		"final": {"pc": 514, "s": 253, "a": 5, "x": 0, "y": 0, "p": 36, "ram": [[512, 169], [513, 5]]},
		"cycles": [[512, 169, "read"], [513, 5, "read"]]
	},
	{
		"name": "85 10",
		"initial": {"pc": 512, "s": 253, "a": 7, "x": 0, "y": 0, "p": 36, "ram": [[512, 133], [513, 16], [16, 0]]},
		"final": {"pc": 514, "s": 253, "a": 7, "x": 0, "y": 0, "p": 36, "ram": [[512, 133], [513, 16], [16, 7]]},
		"cycles": [[512, 133, "read"], [513, 16, "read"], [16, 7, "write"]]
	}
]`

func TestMixedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "mixed.json")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(mixedTests), 0o644))
	test.ExpectEquality(t, testThomHarte(t, fn), 2)
}

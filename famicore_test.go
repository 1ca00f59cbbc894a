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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/harness"
	"github.com/famicore/famicore/test"
)

// sums the numbers 1 to 10 and jumps to itself at $060f
var sumProgram = []uint8{
	0xa9, 0x00, 0xa2, 0x0a, 0x18, 0x86, 0x10, 0x65,
	0x10, 0xca, 0xd0, 0xf8, 0x8d, 0x00, 0x02, 0x4c,
	0x0f, 0x06,
}

func writeImage(t *testing.T, data []uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "image.bin")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestHelp(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-help"}, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "available sub-modes: RUN, TEST, STEP, PERFORMANCE"))
}

func TestRun(t *testing.T) {
	fn := writeImage(t, sumProgram)
	dot := filepath.Join(t.TempDir(), "state.dot")

	w := &test.Writer{}
	v := launch(context.Background(), []string{"RUN", "-load", "0600", "-entry", "0600", "-success", "$060f", "-memviz", dot, fn}, w)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, w.String(), "image.bin: passed at 060f after 53 instructions (144 cycles)\n")

	_, err := os.Stat(dot)
	test.ExpectSuccess(t, err)

	// the wrong success address
	w.Clear()
	v = launch(context.Background(), []string{"RUN", "-load", "0600", "-entry", "0600", "-success", "1234", fn}, w)
	test.ExpectEquality(t, v, exitFailed)
	test.ExpectSuccess(t, strings.Contains(w.String(), "trapped at (0x060f)"))

	// the history is printed on failure
	test.ExpectSuccess(t, strings.Contains(w.String(), "PC=060f"))
}

func TestRunErrors(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch(context.Background(), []string{"RUN"}, w), exitMode)

	w.Clear()
	// unknown flags fall through to the default mode
	test.ExpectEquality(t, launch(context.Background(), []string{"-nosuchflag"}, w), exitMode)

	w.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"RUN", "-illegal", "lenient", "x.bin"}, w), exitMode)

	w.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"RUN", "missing.bin"}, w), exitMode)
}

func TestBatch(t *testing.T) {
	a := writeImage(t, sumProgram)
	b := writeImage(t, sumProgram)

	w := &test.Writer{}
	v := launch(context.Background(), []string{"TEST", "-load", "0600", "-entry", "0600", a, b}, w)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, strings.Count(w.String(), "passed"), 2)
}

func TestInterrupt(t *testing.T) {
	// NOP; JMP $0400 never traps
	fn := writeImage(t, []uint8{0xea, 0x4c, 0x00, 0x04})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &test.Writer{}
	v := launch(ctx, []string{"RUN", "-load", "0400", "-entry", "0400", "-limit", "0", fn}, w)
	test.ExpectEquality(t, v, exitInterrupt)
	test.ExpectSuccess(t, strings.Contains(w.String(), "interrupted at (0x0400)"))

	// cancellation while running
	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	w.Clear()
	v = launch(ctx, []string{"TEST", "-load", "0400", "-entry", "0400", "-limit", "0", fn, fn}, w)
	test.ExpectEquality(t, v, exitInterrupt)

	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	w.Clear()
	v = launch(ctx, []string{"PERFORMANCE", "-load", "0400", "-entry", "0400", "-limit", "0", "-duration", "1m", fn}, w)
	test.ExpectEquality(t, v, exitInterrupt)
}

// keyboard input for the stepper
type keys struct {
	input  string
	output strings.Builder
}

func (k *keys) Print(s string, a ...any) {
	fmt.Fprintf(&k.output, s, a...)
}

func (k *keys) ReadKey() (byte, error) {
	if len(k.input) == 0 {
		return 0, io.EOF
	}
	b := k.input[0]
	k.input = k.input[1:]
	return b, nil
}

func TestStepper(t *testing.T) {
	prog := harness.Program{
		Name:  "sum",
		Data:  sumProgram,
		Load:  0x0600,
		Entry: 0x0600,
	}

	// three steps and then quit
	k := &keys{input: "   q"}
	passed, err := stepper(k, prog, cpu.DefaultPreferences())
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, passed)
	test.ExpectEquality(t, k.input, "")
	test.ExpectSuccess(t, strings.Contains(k.output.String(), "LDA #$00"))

	// input ends without a quit
	k = &keys{input: " r i n"}
	passed, err = stepper(k, prog, cpu.DefaultPreferences())
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, passed)
}

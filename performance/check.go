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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/harness"
)

// NTSCClock is the frequency of the CPU in the NTSC console, in Hz.
const NTSCClock = 1789773.0

// Result of a call to Check().
type Result struct {
	Runs         int
	Instructions int
	Cycles       uint64
	Duration     time.Duration
}

// Hz returns the emulated clock rate.
func (r Result) Hz() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Cycles) / r.Duration.Seconds()
}

// Ratio returns the emulated clock rate as a multiple of the NTSC clock.
func (r Result) Ratio() float64 {
	return r.Hz() / NTSCClock
}

func (r Result) String() string {
	return fmt.Sprintf("%d runs, %d instructions, %d cycles in %.2fs: %.2f MHz (%.1fx NTSC)",
		r.Runs, r.Instructions, r.Cycles, r.Duration.Seconds(), r.Hz()/1000000, r.Ratio())
}

// Check runs the program repeatedly until the duration has elapsed or the
// context is cancelled. Every run of the program must end. A run that
// reaches the cycle limit is counted normally, which allows programs that
// never end to be measured.
func Check(ctx context.Context, output io.Writer, profile Profile, prog harness.Program, prefs cpu.Preferences, limit uint64, duration time.Duration) (Result, error) {
	var res Result

	runner := func() error {
		start := time.Now()
		for time.Since(start) < duration {
			rep, err := harness.Run(ctx, prog, prefs, limit)
			if err != nil && !curated.Is(err, harness.CycleLimit) {
				return err
			}
			res.Runs++
			res.Instructions += rep.Instructions
			res.Cycles += rep.Cycles
		}
		res.Duration = time.Since(start)
		return nil
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return res, curated.Errorf("performance: %v", err)
	}

	io.WriteString(output, res.String())
	io.WriteString(output, "\n")

	return res, nil
}

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

package harness

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cpu"
)

// Outcome is the result of a single program in a batch.
type Outcome struct {
	Report Report
	Err    error
}

// RunBatch runs every program concurrently, each on its own CPU. The
// outcomes are in the same order as the programs.
//
// An error is returned only if the context is cancelled before all programs
// have finished. Errors from the programs themselves are in the Outcome.
func RunBatch(ctx context.Context, progs []Program, prefs cpu.Preferences, limit uint64) ([]Outcome, error) {
	outcomes := make([]Outcome, len(progs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, p := range progs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep, err := Run(ctx, p, prefs, limit)
			outcomes[i] = Outcome{Report: rep, Err: err}
			if curated.Is(err, Interrupted) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}

	return outcomes, nil
}

package replay

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mewbak/sile/internal/sessionlog"
)

// Input names one session to replay.
type Input struct {
	Name   string
	Events []sessionlog.Event
}

// All replays the given sessions concurrently, at most jobs at a time
// (jobs <= 0 means GOMAXPROCS). One stack per session: stacks are
// single-owner, so parallelism happens across sessions, never within one.
// Results keep the order of inputs regardless of scheduling.
func All(ctx context.Context, inputs []Input, jobs int, opts Options) ([]Result, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(inputs), 1)))

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = Run(in.Name, in.Events, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

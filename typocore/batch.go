package typocore

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pair is one (compared, accurate) input to BatchAnalyze.
type Pair struct {
	Compared string
	Accurate string
}

// BatchAnalyze fans Analyze out over pairs, bounded by GOMAXPROCS the way
// the teacher's own chunked dispatch was (a semaphore sized to
// runtime.GOMAXPROCS(0)), generalized to errgroup.Group.SetLimit since the
// core itself has no shared state and is reentrant (§5: "callers that want
// parallelism MUST invoke the core from multiple independent contexts").
//
// ctx governs only the fan-out itself: if it's cancelled, outstanding
// analyses are abandoned and BatchAnalyze returns ctx.Err(). The core
// computation per pair has no cancellation points of its own.
func BatchAnalyze(ctx context.Context, pairs []Pair, cfg Config) ([]Text, error) {
	out := make([]Text, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = Analyze(p.Compared, p.Accurate, cfg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

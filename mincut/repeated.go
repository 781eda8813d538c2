package mincut

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mincut/core"
)

// workerBest is one worker's running minimum.
type workerBest struct {
	cut       core.Cut
	index     int
	hits      int
	completed int
}

// RepeatedMinCut returns the smallest cut over trials independent trials of
// the configured strategy. Trial i draws from TrialRand(seed, i); seed 0 is
// replaced by NewSeed and reported in Result.Seed.
//
// Trials run on min(Workers, trials) goroutines. When ctx is cancelled the
// remaining trials are skipped; if any trial completed, the partial Result is
// returned together with the context error.
//
// Errors: ErrNilGraph, ErrTooFewVertices, ErrBadTrials, ErrEntropy, ctx.Err().
func (s *Solver) RepeatedMinCut(ctx context.Context, g *core.Graph, trials int, seed int64) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("RepeatedMinCut: %w", ErrNilGraph)
	}
	if g.VertexCount() < 2 {
		return Result{}, fmt.Errorf("RepeatedMinCut: n=%d: %w", g.VertexCount(), ErrTooFewVertices)
	}
	if trials < 1 {
		return Result{}, fmt.Errorf("RepeatedMinCut: trials=%d: %w", trials, ErrBadTrials)
	}
	seed, err := resolveSeed(seed)
	if err != nil {
		return Result{}, fmt.Errorf("RepeatedMinCut: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("RepeatedMinCut: %w", err)
	}

	// Every trial on a disconnected graph returns the same exact cut.
	if cut, ok := g.DisconnectedCut(); ok {
		return Result{Cut: cut, Seed: seed, Trials: trials, Completed: trials, Hits: trials}, nil
	}

	workers := min(s.opts.Workers, trials)
	bests := make([]workerBest, workers)
	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			b := &bests[w]
			b.index = -1
			for i := w; i < trials; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				cut, err := s.trial(g, TrialRand(seed, i))
				if err != nil {
					return fmt.Errorf("trial %d: %w", i, err)
				}
				b.completed++
				switch {
				case b.index < 0 || cut.Value < b.cut.Value:
					b.cut, b.index, b.hits = cut, i, 1
				case cut.Value == b.cut.Value:
					b.hits++
				}
			}

			return nil
		})
	}
	err = eg.Wait()

	res := Result{Seed: seed, Trials: trials}
	best := -1
	for w := range bests {
		b := bests[w]
		res.Completed += b.completed
		if b.index < 0 {
			continue
		}
		switch {
		case best < 0 || b.cut.Value < res.Cut.Value:
			res.Cut, res.Hits, best = b.cut, b.hits, b.index
		case b.cut.Value == res.Cut.Value:
			res.Hits += b.hits
			if b.index < best {
				res.Cut, best = b.cut, b.index
			}
		}
	}
	if err != nil {
		if res.Completed == 0 {
			return Result{}, fmt.Errorf("RepeatedMinCut: %w", err)
		}

		return res, fmt.Errorf("RepeatedMinCut: %d of %d trials: %w", res.Completed, trials, err)
	}

	return res, nil
}

// RepeatedMinCut runs trials independent trials on a solver built from opts.
func RepeatedMinCut(ctx context.Context, g *core.Graph, trials int, seed int64, opts ...Option) (Result, error) {
	s, err := NewSolver(opts...)
	if err != nil {
		return Result{}, err
	}

	return s.RepeatedMinCut(ctx, g, trials, seed)
}

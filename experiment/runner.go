package experiment

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/exact"
	"github.com/katalvlaran/mincut/graphio"
	"github.com/katalvlaran/mincut/mincut"
)

// ErrBadSettings indicates an unusable Settings value.
var ErrBadSettings = fmt.Errorf("experiment: invalid settings: %w", core.ErrInvalidArgument)

// Settings configures a Runner.
type Settings struct {
	// Seed is the base seed of every run; 0 draws a fresh entropy seed per run.
	Seed int64

	// Budgets lists the trial budgets T of the success-rate mode, in order.
	Budgets []int

	// AppendQuadratic adds T = n² to Budgets when it is not already there.
	AppendQuadratic bool

	// RuntimeTrials is the trial count timed per graph; 0 means n².
	RuntimeTrials int

	// RuntimeSamples is how many timed runs are averaged per graph.
	RuntimeSamples int

	// VerifyTruth cross-checks the known cut with exact.StoerWagner.
	VerifyTruth bool
}

// DefaultSettings mirrors the classic benchmark: budgets 1…150, n² runtime trials.
func DefaultSettings() Settings {
	return Settings{
		Budgets:        []int{1, 5, 10, 20, 50, 100, 150},
		RuntimeSamples: 1,
	}
}

// Validate reports the first unusable field.
func (s Settings) Validate() error {
	if s.RuntimeTrials < 0 {
		return fmt.Errorf("Validate: runtime trials %d: %w", s.RuntimeTrials, ErrBadSettings)
	}
	if s.RuntimeSamples < 1 {
		return fmt.Errorf("Validate: runtime samples %d: %w", s.RuntimeSamples, ErrBadSettings)
	}
	for _, t := range s.Budgets {
		if t < 1 {
			return fmt.Errorf("Validate: budget %d: %w", t, ErrBadSettings)
		}
	}

	return nil
}

// Runner executes experiments with one solver.
type Runner struct {
	solver *mincut.Solver
	set    Settings
	log    zerolog.Logger
}

// NewRunner validates set and returns a Runner.
func NewRunner(solver *mincut.Solver, set Settings, log zerolog.Logger) (*Runner, error) {
	if solver == nil {
		return nil, fmt.Errorf("NewRunner: nil solver: %w", ErrBadSettings)
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("NewRunner: %w", err)
	}
	set.Budgets = slices.Clone(set.Budgets)

	return &Runner{solver: solver, set: set, log: log}, nil
}

// seed returns the seed of run r in stream s, or 0 to request entropy.
func (r *Runner) seed(stream, run int) int64 {
	if r.set.Seed == 0 {
		return 0
	}

	return mincut.DeriveSeed(r.set.Seed, uint64(stream)<<32|uint64(run))
}

// Runtime times RuntimeSamples runs of RepeatedMinCut on g and reports the mean.
func (r *Runner) Runtime(ctx context.Context, g *core.Graph) (graphio.RuntimeRow, error) {
	n := g.VertexCount()
	trials := r.set.RuntimeTrials
	if trials == 0 {
		trials = n * n
	}

	samples := make([]float64, r.set.RuntimeSamples)
	value := -1
	for i := range samples {
		start := time.Now()
		res, err := r.solver.RepeatedMinCut(ctx, g, trials, r.seed(n, i))
		if err != nil {
			return graphio.RuntimeRow{}, fmt.Errorf("Runtime: n=%d: %w", n, err)
		}
		samples[i] = float64(time.Since(start)) / float64(time.Millisecond)
		if value < 0 || res.Cut.Value < value {
			value = res.Cut.Value
		}
	}

	mean := stat.Mean(samples, nil)
	ev := r.log.Info().
		Int("n", n).
		Int("m", g.EdgeCount()).
		Int("trials", trials).
		Int("cut", value).
		Float64("mean_ms", mean)
	if len(samples) > 1 {
		ev = ev.Float64("stddev_ms", stat.StdDev(samples, nil))
	}
	ev.Msg("runtime measured")

	return graphio.RuntimeRow{N: n, TimeMS: mean}, nil
}

// budgets returns the success-rate budgets for a graph on n vertices.
func (r *Runner) budgets(n int) []int {
	out := slices.Clone(r.set.Budgets)
	if r.set.AppendQuadratic && !slices.Contains(out, n*n) {
		out = append(out, n*n)
	}

	return out
}

// SuccessRate scores, for every budget T, repeats independent
// RepeatedMinCut(T) runs against known. Each row is passed to emit (when
// non-nil) as soon as it is complete.
func (r *Runner) SuccessRate(ctx context.Context, g *core.Graph, known, repeats int, emit func(graphio.SuccessRow) error) ([]graphio.SuccessRow, error) {
	if repeats < 1 {
		return nil, fmt.Errorf("SuccessRate: repeats %d: %w", repeats, ErrBadSettings)
	}
	if r.set.VerifyTruth {
		r.verify(g, known)
	}

	budgets := r.budgets(g.VertexCount())
	rows := make([]graphio.SuccessRow, 0, len(budgets))
	for b, T := range budgets {
		hits := 0
		for run := 0; run < repeats; run++ {
			res, err := r.solver.RepeatedMinCut(ctx, g, T, r.seed(b, run))
			if err != nil {
				return rows, fmt.Errorf("SuccessRate: T=%d run %d: %w", T, run, err)
			}
			if res.Cut.Value == known {
				hits++
			}
		}
		row := graphio.SuccessRow{Iterations: T, SuccessRate: float64(hits) / float64(repeats)}
		rows = append(rows, row)
		r.log.Info().Int("T", T).Int("hits", hits).Int("repeats", repeats).
			Float64("rate", row.SuccessRate).Msg("budget scored")
		if emit != nil {
			if err := emit(row); err != nil {
				return rows, fmt.Errorf("SuccessRate: %w", err)
			}
		}
	}

	return rows, nil
}

// verify logs a warning when known disagrees with the exact minimum cut.
func (r *Runner) verify(g *core.Graph, known int) {
	cut, err := exact.StoerWagner(g)
	if err != nil {
		r.log.Warn().Err(err).Msg("cannot verify known cut")
		return
	}
	if cut.Value != known {
		r.log.Warn().Int("known", known).Int("exact", cut.Value).Ints("side", cut.Side).
			Msg("known cut differs from exact minimum")
		return
	}
	r.log.Debug().Int("known", known).Msg("known cut verified")
}

// Run executes a parsed request and streams its CSV table to out.
// In runtime mode an unreadable graph file is logged and skipped.
func (r *Runner) Run(ctx context.Context, req graphio.Request, out io.Writer) error {
	switch req.Mode {
	case graphio.ModeRuntime:
		w, err := graphio.NewRuntimeWriter(out)
		if err != nil {
			return err
		}
		for _, path := range req.Files {
			g, err := graphio.ReadFile(path)
			if err != nil {
				r.log.Warn().Err(err).Str("file", path).Msg("skipping graph")
				continue
			}
			row, err := r.Runtime(ctx, g)
			if err != nil {
				return err
			}
			if err = w.Write(row); err != nil {
				return err
			}
		}

		return nil

	case graphio.ModeSuccessRate:
		g, err := graphio.ReadFile(req.File)
		if err != nil {
			return fmt.Errorf("Run: %w", err)
		}
		w, err := graphio.NewSuccessWriter(out)
		if err != nil {
			return err
		}
		_, err = r.SuccessRate(ctx, g, req.Known, req.Repeats, w.Write)

		return err
	}

	return fmt.Errorf("Run: mode %d: %w", req.Mode, graphio.ErrBadRequest)
}

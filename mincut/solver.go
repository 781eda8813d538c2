package mincut

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mincut/contraction"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/exact"
)

// Solver runs min-cut trials under fixed Options. It holds no mutable state
// and is safe for concurrent use.
type Solver struct {
	opts Options
}

// NewSolver applies opts over DefaultOptions and validates the result.
func NewSolver(opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("NewSolver: %w", err)
	}

	return &Solver{opts: o}, nil
}

// Options returns a copy of the solver's configuration.
func (s *Solver) Options() Options { return s.opts }

// FastMinCut runs one Karger–Stein trial on g.
//
// Errors: ErrNilGraph, ErrNilSource, ErrTooFewVertices.
//
// Complexity: O(n² log n) expected with the default base case.
func (s *Solver) FastMinCut(g *core.Graph, rng contraction.Source) (core.Cut, error) {
	if cut, done, err := prepare("FastMinCut", g, rng); done || err != nil {
		return cut, err
	}

	return s.fastMinCut(g, rng)
}

// KargerMinCut runs one plain Karger trial on g: a single contraction down to
// two super-vertices.
//
// Errors: ErrNilGraph, ErrNilSource, ErrTooFewVertices.
//
// Complexity: O(m·α(n) + n).
func (s *Solver) KargerMinCut(g *core.Graph, rng contraction.Source) (core.Cut, error) {
	if cut, done, err := prepare("KargerMinCut", g, rng); done || err != nil {
		return cut, err
	}

	return kargerMinCut(g, rng)
}

// Trial runs one trial of the configured strategy.
func (s *Solver) Trial(g *core.Graph, rng contraction.Source) (core.Cut, error) {
	if s.opts.Strategy == StrategyKarger {
		return s.KargerMinCut(g, rng)
	}

	return s.FastMinCut(g, rng)
}

// prepare validates inputs. done is true when g is disconnected and cut is
// already its exact zero-valued minimum.
func prepare(method string, g *core.Graph, rng contraction.Source) (cut core.Cut, done bool, err error) {
	if g == nil {
		return core.Cut{}, false, fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if rng == nil {
		return core.Cut{}, false, fmt.Errorf("%s: %w", method, ErrNilSource)
	}
	if g.VertexCount() < 2 {
		return core.Cut{}, false, fmt.Errorf("%s: n=%d: %w", method, g.VertexCount(), ErrTooFewVertices)
	}
	cut, done = g.DisconnectedCut()

	return cut, done, nil
}

// trial dispatches on the strategy for a connected g with n ≥ 2.
func (s *Solver) trial(g *core.Graph, rng contraction.Source) (core.Cut, error) {
	if s.opts.Strategy == StrategyKarger {
		return kargerMinCut(g, rng)
	}

	return s.fastMinCut(g, rng)
}

func (s *Solver) fastMinCut(g *core.Graph, rng contraction.Source) (core.Cut, error) {
	_, side, err := s.recurse(g, rng)
	if err != nil {
		return core.Cut{}, fmt.Errorf("FastMinCut: %w", err)
	}

	return core.NewCut(g, side), nil
}

func kargerMinCut(g *core.Graph, rng contraction.Source) (core.Cut, error) {
	_, res, err := contraction.CutValue(g, rng)
	if err != nil {
		return core.Cut{}, fmt.Errorf("KargerMinCut: %w", err)
	}

	return core.NewCut(g, labelSide(res.Labels)), nil
}

// recurse returns a cut value of a connected g together with a shore indicator
// over g's vertices.
func (s *Solver) recurse(g *core.Graph, rng contraction.Source) (int, []bool, error) {
	n := g.VertexCount()
	if n <= s.opts.BaseThreshold {
		return s.base(g, rng)
	}

	t := int(math.Ceil(float64(n)/math.Sqrt2)) + 1
	best := -1
	var bestSide []bool
	for branch := 0; branch < 2; branch++ {
		res, err := contraction.Contract(g, t, rng)
		if err != nil {
			return 0, nil, err
		}
		value, sub, err := s.recurse(res.Graph, rng)
		if err != nil {
			return 0, nil, err
		}
		if best < 0 || value < best {
			best = value
			bestSide = make([]bool, n)
			for v, l := range res.Labels {
				bestSide[v] = sub[l]
			}
		}
	}

	return best, bestSide, nil
}

// base solves a small connected graph with the configured policy.
func (s *Solver) base(g *core.Graph, rng contraction.Source) (int, []bool, error) {
	n := g.VertexCount()
	if s.opts.BaseMode == BaseEnumerate {
		cut, err := exact.Enumerate(g)
		if err != nil {
			return 0, nil, err
		}
		side := make([]bool, n)
		for _, v := range cut.Side {
			side[v] = true
		}

		return cut.Value, side, nil
	}

	best := -1
	var bestSide []bool
	for r := 0; r < s.opts.BaseRepeats; r++ {
		value, res, err := contraction.CutValue(g, rng)
		if err != nil {
			return 0, nil, err
		}
		if best < 0 || value < best {
			best, bestSide = value, labelSide(res.Labels)
		}
	}

	return best, bestSide, nil
}

// labelSide marks the vertices sharing super-vertex 0 in a two-way contraction.
func labelSide(labels []int) []bool {
	side := make([]bool, len(labels))
	for v, l := range labels {
		side[v] = l == 0
	}

	return side
}

var defaultSolver = &Solver{opts: DefaultOptions()}

// FastMinCut runs one Karger–Stein trial with DefaultOptions.
func FastMinCut(g *core.Graph, rng contraction.Source) (core.Cut, error) {
	return defaultSolver.FastMinCut(g, rng)
}

// KargerMinCut runs one plain Karger trial.
func KargerMinCut(g *core.Graph, rng contraction.Source) (core.Cut, error) {
	return defaultSolver.KargerMinCut(g, rng)
}

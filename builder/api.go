// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// api.go — the BuildGraph orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// Constructor appends one topology to the draft using the resolved config.
// Constructors validate parameters first and return sentinel errors; they never panic.
type Constructor func(d *draft, cfg builderConfig) error

// BuildGraph resolves bopts, applies every constructor in order and returns the
// resulting immutable graph. Constructor errors are wrapped as "BuildGraph: %w".
//
// Complexity: Σ cost of constructors plus O(n + m) for validation in core.NewGraph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := &draft{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	if d.n == 0 {
		return nil, fmt.Errorf("BuildGraph: no vertices: %w", ErrConstructFailed)
	}

	if cfg.shuffle {
		if cfg.rng == nil {
			return nil, fmt.Errorf("BuildGraph: shuffle: %w", ErrNeedRandSource)
		}
		perm := cfg.rng.Perm(d.n)
		for i, e := range d.edges {
			d.edges[i] = core.Edge{U: perm[e.U], V: perm[e.V]}
		}
	}

	g, err := core.NewGraph(d.n, d.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_random.go — RandomSparse(n, p) and Needle(n, p).
//
// Both run one Bernoulli trial per unordered pair {i,j}, i<j, in lexicographic
// order, so a fixed seed reproduces the same edge list.

package builder

import (
	"fmt"
	"math/rand"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodNeedle            = "Needle"
	minRandomSparseVertices = 1
	minNeedleVertices       = 3
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples an Erdős–Rényi graph G(n, p).
// The RNG is required only when 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if err := checkProbability(methodRandomSparse, p, cfg.rng); err != nil {
			return err
		}
		base := d.addVertices(n)
		bernoulliPairs(d, cfg, base, n, p)

		return nil
	}
}

// Needle builds the adversarial graph used to stress success probability:
//
//   - the needle: vertex 0 joined only to vertices 1 and 2;
//   - the haystack: every pair in 1..n-1 joined with probability p;
//   - the backbone: i–(i+1) for 1 ≤ i < n-1, keeping the haystack connected.
//
// Backbone edges may duplicate haystack edges; the result is a multigraph.
// With a dense haystack the unique minimum cut isolates vertex 0 with value 2.
func Needle(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minNeedleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodNeedle, n, minNeedleVertices, ErrTooFewVertices)
		}
		if err := checkProbability(methodNeedle, p, cfg.rng); err != nil {
			return err
		}
		base := d.addVertices(n)
		d.link(cfg, base, base+1)
		d.link(cfg, base, base+2)
		bernoulliPairs(d, cfg, base+1, n-1, p)
		for i := 1; i < n-1; i++ {
			d.link(cfg, base+i, base+i+1)
		}

		return nil
	}
}

// checkProbability validates p and the RNG requirement.
func checkProbability(method string, p float64, rng *rand.Rand) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// bernoulliPairs links each pair in [base, base+n) independently with probability p.
func bernoulliPairs(d *draft, cfg builderConfig, base, n int, p float64) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch {
			case p == probMax:
				d.link(cfg, base+i, base+j)
			case p == probMin:
			case cfg.rng.Float64() < p:
				d.link(cfg, base+i, base+j)
			}
		}
	}
}

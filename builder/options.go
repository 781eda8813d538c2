// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Seeding is explicit via WithSeed or WithRand; nothing reads the clock.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a deterministic *rand.Rand from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMultiplicity repeats every emitted edge k times. Panics on k < 1.
func WithMultiplicity(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithMultiplicity(k<1)")
	}
	return func(c *builderConfig) {
		c.multiplicity = k
	}
}

// WithShuffle relabels vertices by a uniformly random permutation after all
// constructors ran, so fixtures do not hand solvers their answer at vertex 0.
// Requires an RNG.
func WithShuffle() BuilderOption {
	return func(c *builderConfig) {
		c.shuffle = true
	}
}

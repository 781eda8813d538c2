// SPDX-License-Identifier: MIT
// Package: mincut
//
// types.go — strategies, options and sentinel errors.

package mincut

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/exact"
)

// MinBaseThreshold is the smallest usable base-case threshold. For n ≤ 6 the
// recursive size ⌈n/√2⌉+1 is not smaller than n, so recursion would not shrink.
const MinBaseThreshold = 6

// Sentinel errors. All but ErrEntropy wrap core.ErrInvalidArgument.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = fmt.Errorf("mincut: graph is nil: %w", core.ErrInvalidArgument)

	// ErrNilSource indicates a nil random source.
	ErrNilSource = fmt.Errorf("mincut: random source is nil: %w", core.ErrInvalidArgument)

	// ErrTooFewVertices indicates n < 2, where no cut exists.
	ErrTooFewVertices = fmt.Errorf("mincut: min cut needs at least two vertices: %w", core.ErrInvalidArgument)

	// ErrBadTrials indicates a trial count below 1.
	ErrBadTrials = fmt.Errorf("mincut: trials must be positive: %w", core.ErrInvalidArgument)

	// ErrBadOptions indicates an inconsistent Options value.
	ErrBadOptions = fmt.Errorf("mincut: invalid options: %w", core.ErrInvalidArgument)

	// ErrEntropy indicates that no seed could be read from the OS entropy
	// source. Without it no probability guarantee holds, so callers should
	// treat it as fatal.
	ErrEntropy = errors.New("mincut: entropy source unavailable")
)

// Strategy selects the algorithm run by one trial.
type Strategy int

const (
	// StrategyKargerStein runs the recursive contraction.
	StrategyKargerStein Strategy = iota

	// StrategyKarger runs a single full contraction.
	StrategyKarger
)

var strategyNames = [...]string{"karger-stein", "karger"}

// String returns the configuration name of s.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps a configuration name ("karger-stein", "karger") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for i, s := range strategyNames {
		if strings.EqualFold(name, s) {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("ParseStrategy: %q: %w", name, ErrBadOptions)
}

// BaseMode selects how Karger–Stein solves graphs at or below BaseThreshold.
type BaseMode int

const (
	// BaseEnumerate solves the base case exactly.
	BaseEnumerate BaseMode = iota

	// BaseContract repeats full contraction BaseRepeats times.
	BaseContract
)

var baseModeNames = [...]string{"enumerate", "contract"}

// String returns the configuration name of m.
func (m BaseMode) String() string {
	if m < 0 || int(m) >= len(baseModeNames) {
		return fmt.Sprintf("BaseMode(%d)", int(m))
	}

	return baseModeNames[m]
}

// ParseBaseMode maps a configuration name ("enumerate", "contract") to a BaseMode.
func ParseBaseMode(name string) (BaseMode, error) {
	for i, m := range baseModeNames {
		if strings.EqualFold(name, m) {
			return BaseMode(i), nil
		}
	}

	return 0, fmt.Errorf("ParseBaseMode: %q: %w", name, ErrBadOptions)
}

// Options configures a Solver.
//
// Strategy      – per-trial algorithm. Default StrategyKargerStein.
// BaseThreshold – Karger–Stein recursion stops at n ≤ BaseThreshold.
//
//	Must be ≥ MinBaseThreshold; with BaseEnumerate also ≤ exact.MaxEnumerateVertices. Default 6.
//
// BaseMode      – base-case policy. Default BaseEnumerate.
// BaseRepeats   – contractions per base case under BaseContract. Default 1.
// Workers       – goroutines used by RepeatedMinCut. Default GOMAXPROCS.
type Options struct {
	Strategy      Strategy
	BaseThreshold int
	BaseMode      BaseMode
	BaseRepeats   int
	Workers       int
}

// Option is a functional option for NewSolver and RepeatedMinCut.
type Option func(*Options)

// DefaultOptions returns the defaults listed on Options.
func DefaultOptions() Options {
	return Options{
		Strategy:      StrategyKargerStein,
		BaseThreshold: MinBaseThreshold,
		BaseMode:      BaseEnumerate,
		BaseRepeats:   1,
		Workers:       runtime.GOMAXPROCS(0),
	}
}

// WithOptions replaces every field with o. Options listed after it still apply.
func WithOptions(o Options) Option {
	return func(dst *Options) {
		*dst = o
	}
}

// WithStrategy sets the per-trial algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithBaseThreshold sets the Karger–Stein base-case size. Panics below MinBaseThreshold.
func WithBaseThreshold(k int) Option {
	if k < MinBaseThreshold {
		panic(fmt.Sprintf("mincut: WithBaseThreshold(%d) below %d", k, MinBaseThreshold))
	}
	return func(o *Options) {
		o.BaseThreshold = k
	}
}

// WithBaseMode sets the base-case policy.
func WithBaseMode(m BaseMode) Option {
	return func(o *Options) {
		o.BaseMode = m
	}
}

// WithBaseRepeats sets the number of base-case contractions under BaseContract. Panics on k < 1.
func WithBaseRepeats(k int) Option {
	if k < 1 {
		panic("mincut: WithBaseRepeats(k<1)")
	}
	return func(o *Options) {
		o.BaseRepeats = k
	}
}

// WithWorkers bounds RepeatedMinCut's concurrency. Panics on w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic("mincut: WithWorkers(w<1)")
	}
	return func(o *Options) {
		o.Workers = w
	}
}

// Validate reports the first inconsistent field, wrapped in ErrBadOptions.
func (o Options) Validate() error {
	switch {
	case o.Strategy != StrategyKargerStein && o.Strategy != StrategyKarger:
		return fmt.Errorf("Validate: strategy %v: %w", o.Strategy, ErrBadOptions)
	case o.BaseMode != BaseEnumerate && o.BaseMode != BaseContract:
		return fmt.Errorf("Validate: base mode %v: %w", o.BaseMode, ErrBadOptions)
	case o.BaseThreshold < MinBaseThreshold:
		return fmt.Errorf("Validate: base threshold %d < %d: %w", o.BaseThreshold, MinBaseThreshold, ErrBadOptions)
	case o.BaseMode == BaseEnumerate && o.BaseThreshold > exact.MaxEnumerateVertices:
		return fmt.Errorf("Validate: base threshold %d > %d for enumeration: %w",
			o.BaseThreshold, exact.MaxEnumerateVertices, ErrBadOptions)
	case o.BaseRepeats < 1:
		return fmt.Errorf("Validate: base repeats %d: %w", o.BaseRepeats, ErrBadOptions)
	case o.Workers < 1:
		return fmt.Errorf("Validate: workers %d: %w", o.Workers, ErrBadOptions)
	}

	return nil
}

// Result is the outcome of RepeatedMinCut.
type Result struct {
	// Cut is the smallest cut over all completed trials; among equal values,
	// the one from the lowest trial index.
	Cut core.Cut

	// Seed is the seed the trial streams were derived from. When the caller
	// passed 0 it is the drawn entropy seed, so the run can be replayed.
	Seed int64

	// Trials is the requested trial count; Completed how many finished.
	Trials    int
	Completed int

	// Hits counts completed trials that returned Cut.Value.
	Hits int
}

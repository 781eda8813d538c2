// Package mincut - RNG utilities for independent trials.
//
// Every trial owns a *rand.Rand derived from (seed, trial index) through a
// SplitMix64 finalizer, so:
//   - a fixed seed reproduces every trial, whatever the worker count;
//   - consecutive trial indices get decorrelated streams.
//
// math/rand.Rand is NOT goroutine-safe; a stream is never shared.
package mincut

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
)

// DeriveSeed mixes a parent seed and a stream identifier into a new seed.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer (Vigna 2014).
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// TrialRand returns the deterministic stream of trial i under seed.
func TrialRand(seed int64, i int) *mrand.Rand {
	return mrand.New(mrand.NewSource(DeriveSeed(seed, uint64(i))))
}

// NewSeed reads a non-zero seed from the OS entropy source.
// Failure is reported as ErrEntropy.
func NewSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("NewSeed: %v: %w", err, ErrEntropy)
	}
	s := int64(binary.LittleEndian.Uint64(buf[:]))
	if s == 0 {
		s = 1
	}

	return s, nil
}

// resolveSeed returns seed itself, or a fresh entropy seed when seed is 0.
func resolveSeed(seed int64) (int64, error) {
	if seed != 0 {
		return seed, nil
	}

	return NewSeed()
}

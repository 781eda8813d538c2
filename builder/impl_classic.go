// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_classic.go — deterministic topologies: Cycle, Path, Star, Wheel, Complete, Barbell.
//
// Emission order is stable: ascending index, and for Complete the pairs (i,j)
// with i<j in lexicographic order.

package builder

import "fmt"

// Stable method tags and minimum sizes.
const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"
	methodBarbell  = "Barbell"

	minCycleVertices    = 3
	minPathVertices     = 2
	minStarVertices     = 2
	minWheelVertices    = 4
	minCompleteVertices = 1
	minBarbellClique    = 2
)

// Cycle builds C_n: edges i–(i+1) mod n.
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		base := d.addVertices(n)
		for i := 0; i < n; i++ {
			d.link(cfg, base+i, base+(i+1)%n)
		}

		return nil
	}
}

// Path builds P_n: edges i–(i+1) for i < n-1.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		base := d.addVertices(n)
		for i := 0; i+1 < n; i++ {
			d.link(cfg, base+i, base+i+1)
		}

		return nil
	}
}

// Star builds a hub at the first vertex with n-1 leaves.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		base := d.addVertices(n)
		for i := 1; i < n; i++ {
			d.link(cfg, base, base+i)
		}

		return nil
	}
}

// Wheel builds a rim cycle on the first n-1 vertices and a hub at the last one.
func Wheel(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minWheelVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelVertices, ErrTooFewVertices)
		}
		base := d.addVertices(n)
		rim := n - 1
		hub := base + rim
		for i := 0; i < rim; i++ {
			d.link(cfg, base+i, base+(i+1)%rim)
		}
		for i := 0; i < rim; i++ {
			d.link(cfg, base+i, hub)
		}

		return nil
	}
}

// Complete builds K_n.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		base := d.addVertices(n)
		completeOn(d, cfg, base, n)

		return nil
	}
}

// Barbell builds two copies of K_k, on [0,k) and [k,2k), joined by the single
// bridge (k-1)–k. The bridge is the unique minimum cut.
func Barbell(k int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if k < minBarbellClique {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodBarbell, k, minBarbellClique, ErrTooFewVertices)
		}
		left := d.addVertices(k)
		right := d.addVertices(k)
		completeOn(d, cfg, left, k)
		completeOn(d, cfg, right, k)
		d.link(cfg, left+k-1, right)

		return nil
	}
}

// completeOn links every pair in [base, base+n).
func completeOn(d *draft, cfg builderConfig, base, n int) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.link(cfg, base+i, base+j)
		}
	}
}

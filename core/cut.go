package core

import (
	"errors"
	"fmt"
)

// ErrCutMismatch indicates a Cut whose Value disagrees with its Side.
var ErrCutMismatch = errors.New("core: cut value does not match its side")

// NewCut builds a normalized Cut over g from a shore indicator.
// inSide[v] marks one shore; the complement is the other. Value is recomputed
// from g, so callers never have to keep the two in sync.
//
// Complexity: O(n + m).
func NewCut(g *Graph, inSide []bool) Cut {
	var (
		count int
		value int
	)
	for _, in := range inSide {
		if in {
			count++
		}
	}
	for _, e := range g.edges {
		if inSide[e.U] != inSide[e.V] {
			value++
		}
	}

	// Pick the smaller shore; on a tie, the one holding vertex 0.
	want := true
	if other := g.n - count; other < count || (other == count && !inSide[0]) {
		want = false
	}
	side := make([]int, 0, min(count, g.n-count))
	for v, in := range inSide {
		if in == want {
			side = append(side, v)
		}
	}

	return Cut{Value: value, Side: side}
}

// Validate recomputes the crossing count of c on g.
// It fails when Side is empty, covers every vertex, contains an out-of-range or
// repeated vertex, or when Value is wrong.
func (c Cut) Validate(g *Graph) error {
	if len(c.Side) == 0 || len(c.Side) >= g.n {
		return fmt.Errorf("Validate: side has %d of %d vertices: %w", len(c.Side), g.n, ErrInvalidArgument)
	}
	in := make([]bool, g.n)
	for _, v := range c.Side {
		if v < 0 || v >= g.n {
			return fmt.Errorf("Validate: side vertex %d: %w", v, ErrVertexOutOfRange)
		}
		if in[v] {
			return fmt.Errorf("Validate: side vertex %d repeated: %w", v, ErrInvalidArgument)
		}
		in[v] = true
	}
	var value int
	for _, e := range g.edges {
		if in[e.U] != in[e.V] {
			value++
		}
	}
	if value != c.Value {
		return fmt.Errorf("Validate: value=%d, crossing edges=%d: %w", c.Value, value, ErrCutMismatch)
	}

	return nil
}

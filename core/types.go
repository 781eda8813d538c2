// SPDX-License-Identifier: MIT
// Package: mincut/core
//
// types.go — Edge, Graph, Cut and sentinel errors.

package core

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the class of every precondition violation in this module.
// Package-specific sentinels wrap it, so callers may branch on either.
var ErrInvalidArgument = errors.New("invalid argument")

// Sentinel errors for graph construction.
var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = fmt.Errorf("core: vertex count must be positive: %w", ErrInvalidArgument)

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = fmt.Errorf("core: vertex out of range: %w", ErrInvalidArgument)

	// ErrLoopNotAllowed indicates an input edge whose endpoints coincide.
	ErrLoopNotAllowed = fmt.Errorf("core: self-loop not allowed: %w", ErrInvalidArgument)
)

// Edge is an unordered pair of vertex indices.
type Edge struct {
	U, V int
}

// Other returns the endpoint of e opposite to x. x must be one of the endpoints.
func (e Edge) Other(x int) int {
	if e.U == x {
		return e.V
	}

	return e.U
}

// Graph is an immutable undirected multigraph on vertices 0..n-1.
type Graph struct {
	n     int
	edges []Edge
}

// Cut is a bipartition witness together with the number of crossing edges.
//
// Side lists, in ascending order, the vertices of the smaller shore; when both
// shores have equal size, the one containing vertex 0.
type Cut struct {
	Value int
	Side  []int
}

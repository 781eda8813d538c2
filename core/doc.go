// Package core defines the immutable undirected multigraph and the Cut witness
// shared by every min-cut package in this module.
//
// Vertices are dense integers 0..n-1 and edges are unordered pairs kept in
// insertion order. Parallel edges are allowed and meaningful: the min-cut
// solvers count them individually. Self-loops are rejected at construction,
// because a contraction engine discards them anyway and they never cross a cut.
//
// A *Graph never changes after NewGraph returns, so a single instance may be
// shared by any number of goroutines, each running its own contraction trial.
//
// Errors:
//
//	ErrInvalidArgument  - class sentinel for caller precondition violations.
//	ErrTooFewVertices   - n < 1.
//	ErrVertexOutOfRange - an endpoint outside [0, n).
//	ErrLoopNotAllowed   - an edge with u == v.
//
// Quick ASCII example (two triangles joined by the bridge 2–3, min cut 1):
//
//	0───1       4───5
//	 \ /         \ /
//	  2─────────3
package core

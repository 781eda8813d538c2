// Package builder constructs deterministic and seeded-random multigraph fixtures
// whose minimum cuts are known by construction.
//
// One orchestrator, BuildGraph(opts, cons...), resolves functional options into
// an immutable config and applies constructors in order. Every constructor adds
// its own block of fresh vertices, so composing several of them yields their
// disjoint union.
//
// Known global min cuts (single constructor, multiplicity 1):
//
//	Cycle(n)         2        n ≥ 3
//	Path(n)          1        n ≥ 2
//	Star(n)          1        n ≥ 2
//	Wheel(n)         3        n ≥ 4
//	Complete(n)      n-1      n ≥ 2
//	Barbell(k)       1        k ≥ 2   (two K_k joined by one bridge)
//	Needle(n, p)     2        vertex 0 has degree 2; holds when the haystack
//	                          on 1..n-1 is dense enough (e.g. n ≥ 10, p ≥ 0.5)
//
// WithMultiplicity(c) repeats every emitted edge c times and scales each of the
// values above by c.
//
// Determinism: for a fixed seed and option list, vertex numbering, edge order
// and random draws are identical across runs and platforms.
package builder

// Package contraction implements the randomized edge-contraction step shared by
// Karger's algorithm and the Karger–Stein recursion.
//
// What & Why
//
//   - Contracting an edge merges its endpoints into one super-vertex, keeps all
//     other incident edges (parallel edges included) and discards the edges that
//     became self-loops.
//
//   - Repeating this with a uniformly random live edge until k super-vertices
//     remain preserves any fixed minimum cut with probability at least
//     C(k,2)/C(n,2). Every probability bound downstream depends on the draw
//     being uniform over live (non-loop) edges.
//
// Algorithm
//
//   - Super-vertices are tracked by a unionfind.UnionFind over original vertices.
//   - A pool holds every edge not drawn yet. Each step draws a pool slot
//     uniformly and swap-removes it. A drawn edge whose endpoints already share
//     a root is a self-loop and is dropped without counting; otherwise the two
//     roots are merged. Conditioned on being live, the drawn edge is uniform
//     over live edges, and no edge is ever inspected twice.
//   - The result is materialized as a fresh core.Graph on k densely relabelled
//     super-vertices with self-loops removed, plus the label of every input vertex.
//
// Complexity: O(m·α(n)) for the contraction loop, O(n + m) to materialize.
//
// Randomness comes from a caller-supplied Source, never from a package-level
// generator, so concurrent trials each pass their own stream.
package contraction

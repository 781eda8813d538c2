// Package exact provides deterministic global minimum-cut solvers used as
// ground truth for the randomized algorithms and as the Karger–Stein base case.
//
// Algorithms Provided
//
//   - Enumerate(g) (core.Cut, error)
//
//   - Strategy: fix the last vertex on one shore and try all 2^(n-1)-1
//     bipartitions of the rest over the collapsed multiplicity table.
//
//   - Complexity: O(2^n · p) where p ≤ n²/2 is the number of adjacent pairs.
//     Limited to n ≤ MaxEnumerateVertices.
//
//   - StoerWagner(g) (core.Cut, error)
//
//   - Strategy: n-1 maximum-adjacency phases on a gonum mat.Dense weight
//     matrix; each phase yields a cut-of-the-phase and merges its last two vertices.
//
//   - Complexity: O(n³) time, O(n²) space.
//
//   - MaxFlow(ctx, g) (core.Cut, error)
//
//   - Strategy: the global min cut equals min over t≠0 of the 0–t max flow;
//     each flow is computed with Edmonds–Karp (BFS shortest augmenting paths)
//     on the integer capacity matrix.
//
//   - Complexity: O(n · λ · n²) where λ is the min cut value.
//
// Every solver returns a normalized core.Cut (smaller shore, sorted). On a
// disconnected graph all three return value 0. Graphs with fewer than two
// vertices are rejected with ErrTooFewVertices.
package exact

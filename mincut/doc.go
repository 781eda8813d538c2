// Package mincut computes global minimum cuts of undirected multigraphs with
// randomized contraction.
//
// Strategies
//
//   - Karger–Stein (StrategyKargerStein, default): contract to
//     t = ⌈n/√2⌉+1 super-vertices twice independently, recurse on both copies
//     and keep the smaller cut. Graphs with at most BaseThreshold vertices are
//     solved by the base-case policy. One call finds a minimum cut with
//     probability Ω(1/log n) in O(n² log n) time.
//
//   - Karger (StrategyKarger): one full contraction to two super-vertices.
//     One call succeeds with probability at least 2/(n(n-1)).
//
// Base case
//
//   - BaseEnumerate (default): exact search over every bipartition; the base
//     case never fails.
//   - BaseContract: BaseRepeats full contractions, keep the minimum.
//
// Amplification
//
// RepeatedMinCut runs many independent trials over a bounded worker pool and
// returns the smallest cut observed. Trial i draws from its own *rand.Rand
// derived from (seed, i), so a fixed non-zero seed reproduces the same cut
// regardless of worker count or scheduling. Seed 0 takes a fresh seed from the
// OS entropy source.
//
// A randomized solver can only overestimate: every returned Cut is a real
// bipartition, so its Value is never below the true minimum cut.
//
// Disconnected graphs have minimum cut 0; every entry point detects this up
// front and returns the component of vertex 0 against the rest.
package mincut

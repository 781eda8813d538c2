// Package mincut is a toolkit for randomized global minimum cuts of undirected
// multigraphs: Karger contraction, the Karger–Stein recursion, an amplification
// driver and the experiment harness that measures them.
//
// 🚀 What is inside?
//
//	core/        — immutable edge-list Graph, Cut witness, connectivity
//	unionfind/   — flat disjoint-set forest tracking super-vertices
//	contraction/ — uniform random edge contraction down to k super-vertices
//	mincut/      — Karger and Karger–Stein trials, RepeatedMinCut worker pool
//	exact/       — Enumerate, Stoer–Wagner and max-flow ground truth
//	builder/     — cycles, cliques, barbells, needle graphs and random graphs
//	graphio/     — graph file format, request protocol, CSV result tables
//	experiment/  — runtime and success-rate experiments
//	config/      — viper-backed settings, flags and zerolog setup
//
// Quick start:
//
//	g, _ := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.Needle(50, 0.5))
//	res, _ := mincut.RepeatedMinCut(ctx, g, 100, 42)
//	fmt.Println(res.Cut.Value, res.Cut.Side) // 2 [0]
//
// Commands: cmd/mincut reads an experiment request on stdin and prints CSV;
// cmd/graphgen writes graph files.
package mincut

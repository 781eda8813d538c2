// Package graphio reads and writes the plain-text graph format, parses the
// experiment request protocol and emits CSV result tables.
//
// Graph format (whitespace separated, 0-indexed):
//
//	n
//	m
//	u₁ v₁
//	…
//	uₘ vₘ
//
// Tokens may be split across lines arbitrarily, but line numbers are kept so
// that every failure is a *ParseError naming the offending line. Nothing may
// follow the m-th edge. Read never returns a partial graph.
//
// Request protocol: a leading mode integer, then for mode 1 a list of graph
// files ended by the token "done" (or EOF), for mode 2 a file name, the known
// minimum cut and a repeat count.
//
// Result tables: mode 1 writes "n,time_ms" rows, mode 2 "Iterations,SuccessRate"
// rows, one flushed record per row so a consumer can stream them.
package graphio

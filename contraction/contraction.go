package contraction

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/unionfind"
)

// Source is the random capability needed by contraction: a uniform integer in
// [0, n) for n > 0. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Sentinel errors. Each wraps core.ErrInvalidArgument.
var (
	// ErrTargetOutOfRange indicates target < 1 or target > current vertex count.
	ErrTargetOutOfRange = fmt.Errorf("contraction: target size out of range: %w", core.ErrInvalidArgument)

	// ErrUnreachableTarget indicates the graph has more than target connected
	// components, so live edges ran out before target super-vertices remained.
	ErrUnreachableTarget = fmt.Errorf("contraction: target below component count: %w", core.ErrInvalidArgument)

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = fmt.Errorf("contraction: graph is nil: %w", core.ErrInvalidArgument)

	// ErrNilSource indicates a nil Source.
	ErrNilSource = fmt.Errorf("contraction: random source is nil: %w", core.ErrInvalidArgument)
)

// errPoolExhausted is internal; callers see ErrUnreachableTarget.
var errPoolExhausted = errors.New("edge pool exhausted")

// Result is the outcome of one contraction pass.
type Result struct {
	// Graph is the contracted multigraph on exactly target vertices.
	Graph *core.Graph

	// Labels maps every vertex of the input graph to its super-vertex in Graph.
	Labels []int
}

// Contract merges uniformly random live edges of g until exactly target
// super-vertices remain.
//
// Errors:
//   - ErrNilGraph, ErrNilSource       : nil inputs.
//   - ErrTargetOutOfRange             : target < 1 or target > g.VertexCount().
//   - ErrUnreachableTarget            : g has more than target components.
//
// Complexity: O(m·α(n) + n) time, O(n + m) space.
func Contract(g *core.Graph, target int, rng Source) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if rng == nil {
		return Result{}, ErrNilSource
	}
	n := g.VertexCount()
	if target < 1 || target > n {
		return Result{}, fmt.Errorf("Contract: target=%d, n=%d: %w", target, n, ErrTargetOutOfRange)
	}

	uf := unionfind.New(n)
	if err := contractInto(g, uf, target, rng); err != nil {
		return Result{}, fmt.Errorf("Contract: target=%d, components>%d: %w", target, uf.Sets(), ErrUnreachableTarget)
	}

	return materialize(g, uf)
}

// contractInto runs the draw loop on uf until uf.Sets() == target.
func contractInto(g *core.Graph, uf *unionfind.UnionFind, target int, rng Source) error {
	pool := g.Edges()
	for uf.Sets() > target {
		last := len(pool) - 1
		if last < 0 {
			return errPoolExhausted
		}
		j := rng.Intn(last + 1)
		e := pool[j]
		pool[j] = pool[last]
		pool = pool[:last]
		// A false Union is a self-loop; it is dropped and not counted.
		uf.Union(e.U, e.V)
	}

	return nil
}

// materialize resolves every input edge through uf and drops self-loops.
func materialize(g *core.Graph, uf *unionfind.UnionFind) (Result, error) {
	labels := uf.Labels()
	m := g.EdgeCount()
	edges := make([]core.Edge, 0, m)
	for i := 0; i < m; i++ {
		e := g.Edge(i)
		a, b := labels[e.U], labels[e.V]
		if a != b {
			edges = append(edges, core.Edge{U: a, V: b})
		}
	}
	cg, err := core.NewGraph(uf.Sets(), edges)
	if err != nil {
		return Result{}, fmt.Errorf("materialize: %w", err)
	}

	return Result{Graph: cg, Labels: labels}, nil
}

// CutValue contracts g down to two super-vertices and returns the number of
// surviving edges together with the Result. It is one run of Karger's
// algorithm.
func CutValue(g *core.Graph, rng Source) (int, Result, error) {
	res, err := Contract(g, 2, rng)
	if err != nil {
		return 0, Result{}, err
	}

	return res.Graph.EdgeCount(), res, nil
}

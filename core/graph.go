package core

import "fmt"

// NewGraph validates edges against n and returns an immutable Graph.
// The edge slice is copied; the caller may reuse it afterwards.
//
// Complexity: O(n + m) time, O(m) space.
func NewGraph(n int, edges []Edge) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrTooFewVertices)
	}
	own := make([]Edge, len(edges))
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("NewGraph: edge %d (%d,%d) with n=%d: %w", i, e.U, e.V, n, ErrVertexOutOfRange)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("NewGraph: edge %d (%d,%d): %w", i, e.U, e.V, ErrLoopNotAllowed)
		}
		own[i] = e
	}

	return &Graph{n: n, edges: own}, nil
}

// MustGraph is NewGraph for fixtures whose validity is known at compile time.
// It panics on error.
func MustGraph(n int, edges ...Edge) *Graph {
	g, err := NewGraph(n, edges)
	if err != nil {
		panic(err)
	}

	return g
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns m, counting parallel edges individually.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns the i-th edge in insertion order.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// Edges returns a copy of the edge list.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Degrees returns the degree of every vertex, parallel edges counted.
func (g *Graph) Degrees() []int {
	deg := make([]int, g.n)
	for _, e := range g.edges {
		deg[e.U]++
		deg[e.V]++
	}

	return deg
}

// MinDegree returns the smallest vertex degree and one vertex attaining it.
// The degree of any vertex bounds the global min cut from above.
func (g *Graph) MinDegree() (degree, vertex int) {
	deg := g.Degrees()
	degree, vertex = deg[0], 0
	for v := 1; v < g.n; v++ {
		if deg[v] < degree {
			degree, vertex = deg[v], v
		}
	}

	return degree, vertex
}

// Multiplicities collapses parallel edges into a dense n×n symmetric count table.
// Intended for small graphs (base cases, exact solvers).
//
// Complexity: O(n² + m) time and space.
func (g *Graph) Multiplicities() [][]int {
	w := make([][]int, g.n)
	cells := make([]int, g.n*g.n)
	for i := range w {
		w[i] = cells[i*g.n : (i+1)*g.n]
	}
	for _, e := range g.edges {
		w[e.U][e.V]++
		w[e.V][e.U]++
	}

	return w
}

// String renders a short summary, e.g. "Graph(n=3, m=3)".
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(n=%d, m=%d)", g.n, len(g.edges))
}

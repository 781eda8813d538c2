package core

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Components returns the connected components of g, each sorted ascending,
// ordered by their smallest vertex. Parallel edges are irrelevant here, so the
// graph is projected onto a gonum simple graph.
//
// Complexity: O(n + m).
func (g *Graph) Components() [][]int {
	sg := simple.NewUndirectedGraph()
	for v := 0; v < g.n; v++ {
		sg.AddNode(simple.Node(v))
	}
	for _, e := range g.edges {
		sg.SetEdge(sg.NewEdge(simple.Node(e.U), simple.Node(e.V)))
	}

	raw := topo.ConnectedComponents(sg)
	comps := make([][]int, 0, len(raw))
	for _, nodes := range raw {
		c := make([]int, len(nodes))
		for i, nd := range nodes {
			c[i] = int(nd.ID())
		}
		sort.Ints(c)
		comps = append(comps, c)
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	return comps
}

// Connected reports whether g has a single connected component.
func (g *Graph) Connected() bool {
	if g.n == 1 {
		return true
	}
	if len(g.edges) < g.n-1 {
		return false
	}

	return len(g.Components()) == 1
}

// DisconnectedCut returns the zero-valued cut separating the component of
// vertex 0 from the rest, and false when g is connected.
func (g *Graph) DisconnectedCut() (Cut, bool) {
	comps := g.Components()
	if len(comps) < 2 {
		return Cut{}, false
	}
	in := make([]bool, g.n)
	for _, v := range comps[0] {
		in[v] = true
	}

	return NewCut(g, in), true
}

package exact

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mincut/core"
)

// StoerWagner computes a global minimum cut of g in O(n³).
//
// Steps:
//  1. Collapse parallel edges into a symmetric weight matrix W (mat.Dense).
//  2. Repeat n-1 phases over the active vertices: grow a set A from the first
//     active vertex, always adding the vertex most tightly connected to A.
//     The last vertex t added, with connectivity key[t], defines the
//     cut-of-the-phase ({merged vertices of t}, rest).
//  3. Merge t into the vertex s added just before it and deactivate t.
//  4. Return the lightest cut-of-the-phase.
func StoerWagner(g *core.Graph) (core.Cut, error) {
	if err := check("StoerWagner", g); err != nil {
		return core.Cut{}, err
	}
	n := g.VertexCount()

	w := mat.NewDense(n, n, nil)
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.Edge(i)
		w.Set(e.U, e.V, w.At(e.U, e.V)+1)
		w.Set(e.V, e.U, w.At(e.V, e.U)+1)
	}

	members := make([][]int, n)
	active := make([]bool, n)
	for v := range members {
		members[v] = []int{v}
		active[v] = true
	}

	var (
		best     = -1.0
		bestSide []int
		key      = make([]float64, n)
		inA      = make([]bool, n)
	)
	for phase := n; phase > 1; phase-- {
		for v := 0; v < n; v++ {
			key[v] = 0
			inA[v] = false
		}
		prev, last := -1, -1
		for added := 0; added < phase; added++ {
			next := -1
			for v := 0; v < n; v++ {
				if active[v] && !inA[v] && (next < 0 || key[v] > key[next]) {
					next = v
				}
			}
			inA[next] = true
			prev, last = last, next
			for v := 0; v < n; v++ {
				if active[v] && !inA[v] {
					key[v] += w.At(next, v)
				}
			}
		}

		if best < 0 || key[last] < best {
			best = key[last]
			bestSide = append(bestSide[:0], members[last]...)
		}

		// Merge last into prev.
		for v := 0; v < n; v++ {
			if v == prev || v == last {
				continue
			}
			s := w.At(prev, v) + w.At(last, v)
			w.Set(prev, v, s)
			w.Set(v, prev, s)
		}
		members[prev] = append(members[prev], members[last]...)
		active[last] = false
	}

	in := make([]bool, n)
	for _, v := range bestSide {
		in[v] = true
	}

	return core.NewCut(g, in), nil
}

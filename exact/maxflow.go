package exact

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// MaxFlow computes the global minimum cut as min over t ≠ 0 of the maximum
// 0–t flow, each found by Edmonds–Karp on unit edge capacities (parallel edges
// add up). The shore of the best cut is the set reachable from 0 in the final
// residual network.
//
// The context is checked once per BFS; cancellation returns ctx.Err().
//
// Complexity: O(n · λ · n²) time, O(n²) space.
func MaxFlow(ctx context.Context, g *core.Graph) (core.Cut, error) {
	if err := check("MaxFlow", g); err != nil {
		return core.Cut{}, err
	}
	n := g.VertexCount()
	capacity := g.Multiplicities()

	best := -1
	var bestSide []bool
	residual := make([][]int, n)
	for i := range residual {
		residual[i] = make([]int, n)
	}
	for t := 1; t < n; t++ {
		for i := range residual {
			copy(residual[i], capacity[i])
		}
		flow, reach, err := edmondsKarp(ctx, residual, 0, t, best)
		if err != nil {
			return core.Cut{}, fmt.Errorf("MaxFlow: sink %d: %w", t, err)
		}
		if best < 0 || flow < best {
			best, bestSide = flow, reach
		}
		if best == 0 {
			break
		}
	}

	return core.NewCut(g, bestSide), nil
}

// edmondsKarp augments along BFS shortest paths until none remain, mutating
// residual in place. It returns the flow value and the source side of the
// resulting min s–t cut. When bound ≥ 0 and the flow reaches it, the search
// stops early and reach is nil, since the sink cannot beat the bound.
func edmondsKarp(ctx context.Context, residual [][]int, s, t, bound int) (int, []bool, error) {
	n := len(residual)
	parent := make([]int, n)
	queue := make([]int, 0, n)
	flow := 0

	for {
		if err := ctx.Err(); err != nil {
			return 0, nil, err
		}
		if bound >= 0 && flow >= bound {
			return flow, nil, nil
		}

		// BFS from s over positive residual capacity.
		for i := range parent {
			parent[i] = -1
		}
		parent[s] = s
		queue = append(queue[:0], s)
		for head := 0; head < len(queue) && parent[t] < 0; head++ {
			u := queue[head]
			for v := 0; v < n; v++ {
				if parent[v] < 0 && residual[u][v] > 0 {
					parent[v] = u
					queue = append(queue, v)
				}
			}
		}

		if parent[t] < 0 {
			reach := make([]bool, n)
			for _, v := range queue {
				reach[v] = true
			}

			return flow, reach, nil
		}

		// Bottleneck along the path, then augment.
		bottle := -1
		for v := t; v != s; v = parent[v] {
			if c := residual[parent[v]][v]; bottle < 0 || c < bottle {
				bottle = c
			}
		}
		for v := t; v != s; v = parent[v] {
			u := parent[v]
			residual[u][v] -= bottle
			residual[v][u] += bottle
		}
		flow += bottle
	}
}

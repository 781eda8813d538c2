package exact

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// pair is an adjacent vertex pair with its edge multiplicity.
type pair struct {
	u, v, w int
}

// Enumerate tries every bipartition of g and returns a minimum one. Among
// equal values the first mask in ascending order wins, so the result is
// deterministic.
func Enumerate(g *core.Graph) (core.Cut, error) {
	if err := check("Enumerate", g); err != nil {
		return core.Cut{}, err
	}
	n := g.VertexCount()
	if n > MaxEnumerateVertices {
		return core.Cut{}, fmt.Errorf("Enumerate: n=%d > %d: %w", n, MaxEnumerateVertices, ErrTooLarge)
	}

	mult := g.Multiplicities()
	pairs := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if mult[i][j] > 0 {
				pairs = append(pairs, pair{u: i, v: j, w: mult[i][j]})
			}
		}
	}

	// Vertex n-1 stays outside every mask (bit n-1 is never set).
	limit := uint32(1) << uint(n-1)
	best, bestMask := -1, uint32(0)
	for mask := uint32(1); mask < limit; mask++ {
		value := 0
		for _, p := range pairs {
			if (mask>>uint(p.u))&1 != (mask>>uint(p.v))&1 {
				value += p.w
			}
		}
		if best < 0 || value < best {
			best, bestMask = value, mask
			if best == 0 {
				break
			}
		}
	}

	in := make([]bool, n)
	for v := 0; v < n; v++ {
		in[v] = (bestMask>>uint(v))&1 == 1
	}

	return core.NewCut(g, in), nil
}

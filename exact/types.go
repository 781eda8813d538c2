package exact

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// MaxEnumerateVertices bounds Enumerate's exponential search.
const MaxEnumerateVertices = 20

// Sentinel errors. Each wraps core.ErrInvalidArgument.
var (
	// ErrTooFewVertices indicates n < 2, where no cut exists.
	ErrTooFewVertices = fmt.Errorf("exact: min cut needs at least two vertices: %w", core.ErrInvalidArgument)

	// ErrTooLarge indicates n > MaxEnumerateVertices for Enumerate.
	ErrTooLarge = fmt.Errorf("exact: graph too large for enumeration: %w", core.ErrInvalidArgument)

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = fmt.Errorf("exact: graph is nil: %w", core.ErrInvalidArgument)
)

// check validates the common preconditions.
func check(method string, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if g.VertexCount() < 2 {
		return fmt.Errorf("%s: n=%d: %w", method, g.VertexCount(), ErrTooFewVertices)
	}

	return nil
}

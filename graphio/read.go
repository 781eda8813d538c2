package graphio

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/mincut/core"
)

// Read parses one graph from r.
//
// Errors are *ParseError wrapping ErrMalformed, ErrEdgeCountMismatch,
// ErrVertexOutOfRange or ErrSelfLoop; I/O errors are returned as is.
//
// Complexity: O(input size).
func Read(r io.Reader) (*core.Graph, error) {
	tz := newTokenizer(r)

	n, line, err := tz.nextInt("vertex count", ErrMalformed)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, parseErr(line, ErrMalformed, "vertex count %d", n)
	}
	m, line, err := tz.nextInt("edge count", ErrMalformed)
	if err != nil {
		return nil, err
	}
	if m < 0 {
		return nil, parseErr(line, ErrMalformed, "edge count %d", m)
	}

	edges := make([]core.Edge, 0, min(m, 1<<20))
	for i := 0; i < m; i++ {
		what := fmt.Sprintf("edge %d of %d", i+1, m)
		u, line, err := tz.nextInt(what, ErrEdgeCountMismatch)
		if err != nil {
			return nil, err
		}
		v, vline, err := tz.nextInt(what, ErrEdgeCountMismatch)
		if err != nil {
			return nil, err
		}
		if vline != line {
			return nil, parseErr(line, ErrMalformed, "%s: endpoints split across lines", what)
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, parseErr(line, ErrVertexOutOfRange, "%s (%d,%d) with n=%d", what, u, v, n)
		}
		if u == v {
			return nil, parseErr(line, ErrSelfLoop, "%s (%d,%d)", what, u, v)
		}
		edges = append(edges, core.Edge{U: u, V: v})
	}

	tok, line, ok, err := tz.next()
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, parseErr(line, ErrEdgeCountMismatch, "unexpected %q after %d edges", tok, m)
	}

	return core.NewGraph(n, edges)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

package graphio

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by *ParseError.
var (
	// ErrMalformed indicates a token that is not a valid integer, or a
	// non-positive vertex count or negative edge count.
	ErrMalformed = errors.New("graphio: malformed input")

	// ErrEdgeCountMismatch indicates that the declared m disagrees with the
	// number of edge lines present.
	ErrEdgeCountMismatch = errors.New("graphio: edge count mismatch")

	// ErrVertexOutOfRange indicates an endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("graphio: vertex out of range")

	// ErrSelfLoop indicates an edge u u.
	ErrSelfLoop = errors.New("graphio: self-loop")

	// ErrBadRequest indicates an unparseable experiment request.
	ErrBadRequest = errors.New("graphio: malformed request")
)

// ParseError locates a failure in the input.
type ParseError struct {
	// Line is the 1-based line of the offending token, or of EOF.
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the sentinel cause.
func (e *ParseError) Unwrap() error { return e.Err }

func parseErr(line int, cause error, format string, args ...any) error {
	return &ParseError{Line: line, Err: fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), cause)}
}

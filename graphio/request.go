package graphio

import (
	"errors"
	"fmt"
	"io"
)

// Mode selects the experiment named by the first request token.
type Mode int

const (
	// ModeRuntime measures wall time against graph size.
	ModeRuntime Mode = 1

	// ModeSuccessRate measures success rate against trial budget.
	ModeSuccessRate Mode = 2
)

// doneToken ends the file list of a runtime request.
const doneToken = "done"

// Request is a parsed experiment request.
type Request struct {
	Mode Mode

	// Files lists the graphs of a runtime request, in order.
	Files []string

	// File, Known and Repeats describe a success-rate request: the graph, its
	// known minimum cut and how many runs are scored per budget.
	File    string
	Known   int
	Repeats int
}

// ReadRequest parses one request from r.
// Errors are *ParseError wrapping ErrBadRequest.
func ReadRequest(r io.Reader) (Request, error) {
	tz := newTokenizer(r)

	mode, line, err := tz.nextInt("mode", ErrBadRequest)
	if err != nil {
		return Request{}, asRequestErr(err)
	}
	req := Request{Mode: Mode(mode)}

	switch req.Mode {
	case ModeRuntime:
		for {
			tok, _, ok, err := tz.next()
			if err != nil {
				return Request{}, err
			}
			if !ok || tok == doneToken {
				break
			}
			req.Files = append(req.Files, tok)
		}

	case ModeSuccessRate:
		tok, line, ok, err := tz.next()
		if err != nil {
			return Request{}, err
		}
		if !ok {
			return Request{}, parseErr(line, ErrBadRequest, "missing graph file")
		}
		req.File = tok
		if req.Known, line, err = tz.nextInt("known min cut", ErrBadRequest); err != nil {
			return Request{}, asRequestErr(err)
		}
		if req.Known < 0 {
			return Request{}, parseErr(line, ErrBadRequest, "known min cut %d", req.Known)
		}
		if req.Repeats, line, err = tz.nextInt("repeat count", ErrBadRequest); err != nil {
			return Request{}, asRequestErr(err)
		}
		if req.Repeats < 1 {
			return Request{}, parseErr(line, ErrBadRequest, "repeat count %d", req.Repeats)
		}

	default:
		return Request{}, parseErr(line, ErrBadRequest, "mode %d", mode)
	}

	return req, nil
}

// asRequestErr re-labels a malformed integer as a bad request.
func asRequestErr(err error) error {
	var pe *ParseError
	if !errors.As(err, &pe) || errors.Is(pe.Err, ErrBadRequest) {
		return err
	}

	return &ParseError{Line: pe.Line, Err: fmt.Errorf("%w: %w", ErrBadRequest, pe.Err)}
}

package graphio

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// tokenizer yields whitespace-separated tokens with their line numbers.
type tokenizer struct {
	sc     *bufio.Scanner
	line   int
	fields []string
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	return &tokenizer{sc: sc}
}

// next returns the next token and its line; ok is false at EOF, where line is
// the last line read.
func (t *tokenizer) next() (tok string, line int, ok bool, err error) {
	for len(t.fields) == 0 {
		if !t.sc.Scan() {
			return "", t.line, false, t.sc.Err()
		}
		t.line++
		t.fields = strings.Fields(t.sc.Text())
	}
	tok, t.fields = t.fields[0], t.fields[1:]

	return tok, t.line, true, nil
}

// nextInt reads one integer token. A missing token reports missing at EOF.
func (t *tokenizer) nextInt(what string, missing error) (int, int, error) {
	tok, line, ok, err := t.next()
	if err != nil {
		return 0, line, err
	}
	if !ok {
		return 0, line, parseErr(line, missing, "missing %s", what)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, line, parseErr(line, ErrMalformed, "%s %q", what, tok)
	}

	return v, line, nil
}

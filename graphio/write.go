package graphio

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/mincut/core"
)

// Write renders g in the graph format, one edge per line in edge order.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)

	buf = strconv.AppendInt(buf[:0], int64(g.VertexCount()), 10)
	buf = append(buf, '\n')
	buf = strconv.AppendInt(buf, int64(g.EdgeCount()), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.Edge(i)
		buf = strconv.AppendInt(buf[:0], int64(e.U), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.V), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes g to it.
func WriteFile(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(f, g)
}

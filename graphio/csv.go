package graphio

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Table headers.
var (
	RuntimeHeader     = []string{"n", "time_ms"}
	SuccessRateHeader = []string{"Iterations", "SuccessRate"}
)

// RuntimeRow is one line of the runtime table.
type RuntimeRow struct {
	N      int
	TimeMS float64
}

// SuccessRow is one line of the success-rate table.
type SuccessRow struct {
	Iterations  int
	SuccessRate float64
}

// table writes flushed CSV records.
type table struct {
	cw *csv.Writer
}

func newTable(w io.Writer, header []string) (table, error) {
	t := table{cw: csv.NewWriter(w)}

	return t, t.write(header)
}

func (t table) write(record []string) error {
	if err := t.cw.Write(record); err != nil {
		return err
	}
	t.cw.Flush()

	return t.cw.Error()
}

// RuntimeWriter streams the runtime table.
type RuntimeWriter struct{ t table }

// NewRuntimeWriter writes the header and returns the writer.
func NewRuntimeWriter(w io.Writer) (*RuntimeWriter, error) {
	t, err := newTable(w, RuntimeHeader)
	if err != nil {
		return nil, err
	}

	return &RuntimeWriter{t: t}, nil
}

// Write emits one row.
func (w *RuntimeWriter) Write(row RuntimeRow) error {
	return w.t.write([]string{
		strconv.Itoa(row.N),
		strconv.FormatFloat(row.TimeMS, 'f', 3, 64),
	})
}

// SuccessWriter streams the success-rate table.
type SuccessWriter struct{ t table }

// NewSuccessWriter writes the header and returns the writer.
func NewSuccessWriter(w io.Writer) (*SuccessWriter, error) {
	t, err := newTable(w, SuccessRateHeader)
	if err != nil {
		return nil, err
	}

	return &SuccessWriter{t: t}, nil
}

// Write emits one row. Rates print in shortest form ("1", "0.35").
func (w *SuccessWriter) Write(row SuccessRow) error {
	return w.t.write([]string{
		strconv.Itoa(row.Iterations),
		strconv.FormatFloat(row.SuccessRate, 'g', -1, 64),
	})
}

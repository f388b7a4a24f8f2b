// Package dataset holds the tabular preprocessing used by the model
// trainers: CSV loading, one-hot encoding, standardization and the
// train/test split.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MrJamesThe3rd/finpilot/internal/encoding"
)

// Table is a headered CSV held column-addressable in memory.
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]string
}

// Open loads a CSV file, decoding it to UTF-8 first.
func Open(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r, err := encoding.NewUTF8Reader(f)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	return Read(r)
}

// Read parses a headered CSV stream.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("duplicate column %q", name)
		}

		index[name] = i
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	return &Table{cols: header, index: index, rows: rows}, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the header in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)

	return out
}

// Has reports whether the table carries the named column.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Strings returns the raw values of a column.
func (t *Table) Strings(name string) ([]string, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("no column %q", name)
	}

	out := make([]string, len(t.rows))
	for r, row := range t.rows {
		out[r] = row[i]
	}

	return out, nil
}

// Floats parses a column as float64 values.
func (t *Table) Floats(name string) ([]float64, error) {
	raw, err := t.Strings(name)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(raw))
	for r, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", name, r, err)
		}

		out[r] = v
	}

	return out, nil
}

// Package encode casts the categorical predictor columns into a fixed-domain
// representation shared by every model variant. Category domains are frozen
// once, from the full population, so a value seen at prediction time is
// either admissible or rejected explicitly.
package encode

import (
	"fmt"
	"sort"
)

// UnknownCategoryError reports a value outside the frozen domain of a
// column. It is recoverable per record; it never crashes the pipeline.
type UnknownCategoryError struct {
	Row    int
	Column string
	Value  string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("encode: row %d: value %q not in the domain of column %s", e.Row, e.Column, e.Value)
}

// Encoder holds the frozen category domains for the predictor columns.
type Encoder struct {
	cols   []string
	levels [][]string
	index  []map[string]int
}

// NewEncoder freezes one domain per column from the given population
// columns. values is column-major: values[c][r] is row r of column c.
func NewEncoder(cols []string, values [][]string) (*Encoder, error) {
	if len(cols) != len(values) {
		return nil, fmt.Errorf("encode: %d column names for %d columns", len(cols), len(values))
	}
	e := &Encoder{
		cols:   append([]string(nil), cols...),
		levels: make([][]string, len(cols)),
		index:  make([]map[string]int, len(cols)),
	}
	for c := range cols {
		seen := map[string]bool{}
		for _, v := range values[c] {
			seen[v] = true
		}
		levels := make([]string, 0, len(seen))
		for v := range seen {
			levels = append(levels, v)
		}
		sort.Strings(levels)
		idx := make(map[string]int, len(levels))
		for i, v := range levels {
			idx[v] = i
		}
		e.levels[c] = levels
		e.index[c] = idx
	}
	return e, nil
}

// Columns returns the encoded column names.
func (e *Encoder) Columns() []string { return e.cols }

// Levels returns the frozen, sorted domain of column c.
func (e *Encoder) Levels(c int) []string { return e.levels[c] }

// Encode maps column-major raw values and their aligned labels into a
// Dataset of level indices. A value outside a frozen domain yields an
// UnknownCategoryError naming the offending row and column.
func (e *Encoder) Encode(values [][]string, labels []int) (*Dataset, error) {
	if len(values) != len(e.cols) {
		return nil, fmt.Errorf("encode: got %d columns, want %d", len(values), len(e.cols))
	}
	n := len(labels)
	for c := range values {
		if len(values[c]) != n {
			return nil, fmt.Errorf("encode: column %s has %d rows, labels have %d", e.cols[c], len(values[c]), n)
		}
	}

	rows := make([][]int, n)
	for r := 0; r < n; r++ {
		row := make([]int, len(e.cols))
		for c := range e.cols {
			li, ok := e.index[c][values[c][r]]
			if !ok {
				return nil, &UnknownCategoryError{Row: r, Column: e.cols[c], Value: values[c][r]}
			}
			row[c] = li
		}
		rows[r] = row
	}
	return &Dataset{
		Cols:   e.cols,
		Levels: e.levels,
		Rows:   rows,
		Labels: append([]int(nil), labels...),
	}, nil
}

// Dataset is an encoded design matrix: one row of level indices per claim,
// with the binary label carried alongside. Levels shares the encoder's
// frozen domains.
type Dataset struct {
	Cols   []string
	Levels [][]string
	Rows   [][]int
	Labels []int
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Rows) }

// LevelCount returns the domain size of column c.
func (d *Dataset) LevelCount(c int) int { return len(d.Levels[c]) }

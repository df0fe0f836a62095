package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("dataset: missing column")
	// ErrMalformed is returned for unparsable cells or ragged tables.
	ErrMalformed = errors.New("dataset: malformed table")
	// ErrNonUnitQuaternion is returned when an attitude quaternion deviates
	// from unit norm by more than the configured tolerance.
	ErrNonUnitQuaternion = errors.New("dataset: non-unit quaternion")
)

// Table is a column-oriented view of a dataset.
type Table interface {
	// Len returns the number of rows.
	Len() int
	// Columns returns the column names in file order.
	Columns() []string
	// Has reports whether the named column exists.
	Has(name string) bool
	// Column returns the named column parsed as floats.
	Column(name string) ([]float64, error)
	// Strings returns the named column as raw text.
	Strings(name string) ([]string, error)
}

// Frame is an in-memory Table of text cells. It is filled either by ReadCSV
// or column by column with AddFloats and AddStrings, and written back with
// WriteCSV. The zero value is an empty frame.
type Frame struct {
	names []string
	index map[string]int
	cols  [][]string
	rows  int
}

var _ Table = (*Frame)(nil)

// Len returns the number of rows.
func (f *Frame) Len() int {
	return f.rows
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.names...)
}

// Has reports whether the named column exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Strings returns a copy of the named column.
func (f *Frame) Strings(name string) ([]string, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}

	return append([]string(nil), f.cols[i]...), nil
}

// Column parses the named column as floats. Surrounding whitespace is
// ignored; empty cells are errors.
func (f *Frame) Column(name string) ([]float64, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}

	out := make([]float64, f.rows)
	for r, cell := range f.cols[i] {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q row %d: %w", ErrMalformed, name, r+1, err)
		}
		out[r] = v
	}

	return out, nil
}

// AddStrings appends a text column. The first column fixes the row count.
func (f *Frame) AddStrings(name string, values []string) error {
	if f.Has(name) {
		return fmt.Errorf("%w: duplicate column %q", ErrMalformed, name)
	}

	if len(f.names) > 0 && len(values) != f.rows {
		return fmt.Errorf("%w: column %q has %d rows, want %d", ErrMalformed, name, len(values), f.rows)
	}

	if f.index == nil {
		f.index = make(map[string]int)
	}

	f.index[name] = len(f.names)
	f.names = append(f.names, name)
	f.cols = append(f.cols, append([]string(nil), values...))
	f.rows = len(values)

	return nil
}

// AddFloats appends a numeric column formatted with the shortest
// representation that round-trips.
func (f *Frame) AddFloats(name string, values []float64) error {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}

	return f.AddStrings(name, cells)
}

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadCSV reads a comma-separated table with a header row. A first column
// with an empty name is treated as a row index and dropped.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	skip := 0
	if len(header) > 0 && strings.TrimSpace(header[0]) == "" {
		skip = 1
	}

	names := make([]string, 0, len(header)-skip)
	for _, h := range header[skip:] {
		names = append(names, strings.TrimSpace(h))
	}

	cols := make([][]string, len(names))
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		for i, cell := range rec[skip:] {
			cols[i] = append(cols[i], cell)
		}
	}

	f := &Frame{}
	for i, name := range names {
		if cols[i] == nil {
			cols[i] = []string{}
		}
		if err := f.AddStrings(name, cols[i]); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// LoadCSV reads the table stored at path.
func LoadCSV(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer file.Close()

	f, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// WriteCSV writes f with a header row and no index column.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(f.names); err != nil {
		return fmt.Errorf("dataset: writing header: %w", err)
	}

	row := make([]string, len(f.names))
	for r := range f.rows {
		for c := range f.cols {
			row[c] = f.cols[c][r]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("dataset: writing row %d: %w", r+1, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// SaveCSV writes f to path, replacing any existing file.
func (f *Frame) SaveCSV(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("dataset: %w", cerr)
		}
	}()

	return f.WriteCSV(file)
}

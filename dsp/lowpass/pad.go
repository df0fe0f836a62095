package lowpass

import "fmt"

// Pad returns a copy of data with boundary copies of the first sample
// prepended and boundary copies of the last sample appended to every row.
// Rows are channels and columns are samples.
func Pad(data [][]float64, boundary int) ([][]float64, error) {
	if boundary < 0 {
		return nil, fmt.Errorf("%w: boundary must be >= 0, got %d", ErrInvalidConfig, boundary)
	}

	out := make([][]float64, len(data))
	for i, row := range data {
		if len(row) == 0 && boundary > 0 {
			return nil, fmt.Errorf("%w: cannot pad empty row %d", ErrInsufficientSamples, i)
		}
		out[i] = padRow(row, boundary)
	}

	return out, nil
}

// PadSeries is Pad for a single channel.
func PadSeries(x []float64, boundary int) ([]float64, error) {
	out, err := Pad([][]float64{x}, boundary)
	if err != nil {
		return nil, err
	}

	return out[0], nil
}

// Unpad returns a copy of data with the first and last boundary samples of
// every row removed. It inverts Pad index for index.
func Unpad(data [][]float64, boundary int) ([][]float64, error) {
	if boundary < 0 {
		return nil, fmt.Errorf("%w: boundary must be >= 0, got %d", ErrInvalidConfig, boundary)
	}

	out := make([][]float64, len(data))
	for i, row := range data {
		if len(row) < 2*boundary {
			return nil, fmt.Errorf("%w: row %d has %d samples, cannot remove 2x%d",
				ErrInsufficientSamples, i, len(row), boundary)
		}
		out[i] = append([]float64(nil), row[boundary:len(row)-boundary]...)
	}

	return out, nil
}

// UnpadSeries is Unpad for a single channel.
func UnpadSeries(x []float64, boundary int) ([]float64, error) {
	out, err := Unpad([][]float64{x}, boundary)
	if err != nil {
		return nil, err
	}

	return out[0], nil
}

func padRow(row []float64, boundary int) []float64 {
	out := make([]float64, 0, len(row)+2*boundary)
	if len(row) == 0 {
		return out
	}

	first, last := row[0], row[len(row)-1]
	for range boundary {
		out = append(out, first)
	}

	out = append(out, row...)

	for range boundary {
		out = append(out, last)
	}

	return out
}

package lowpass

import (
	"fmt"

	"github.com/cwbudde/algo-nav/dsp/filter/fir"
	"github.com/cwbudde/algo-nav/dsp/window"
)

// Axis selects the dimension of a channels×samples array that is filtered.
type Axis int

const (
	// AxisSamples filters every row along time. This is the usual choice.
	AxisSamples Axis = iota
	// AxisChannels filters every column across rows.
	AxisChannels
)

func (a Axis) String() string {
	switch a {
	case AxisSamples:
		return "samples"
	case AxisChannels:
		return "channels"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Design returns the taps of the filter described by cfg: a Hamming-windowed
// sinc with cfg.Order taps and unity DC gain.
func Design(cfg Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	taps, err := fir.LowPass(cfg.Order, cfg.Cutoff, cfg.SampleFrequency, window.TypeHamming)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return taps, nil
}

// Filter designs the filter described by cfg and runs it causally along axis
// of data (rows are channels, columns are samples). It returns a new array of
// the same shape and the group delay in seconds. Callers re-align filtered
// samples with t_filtered = t_raw - delay.
func Filter(data [][]float64, cfg Config, axis Axis) ([][]float64, float64, error) {
	taps, err := Design(cfg)
	if err != nil {
		return nil, 0, err
	}

	out, err := ApplyTaps(data, taps, axis)
	if err != nil {
		return nil, 0, err
	}

	return out, cfg.Delay(), nil
}

// FilterSeries filters a single channel along time.
func FilterSeries(x []float64, cfg Config) ([]float64, float64, error) {
	out, delay, err := Filter([][]float64{x}, cfg, AxisSamples)
	if err != nil {
		return nil, 0, err
	}

	return out[0], delay, nil
}

// ApplyTaps runs an already designed filter along axis of data with the same
// semantics as Filter.
func ApplyTaps(data [][]float64, taps []float64, axis Axis) ([][]float64, error) {
	switch axis {
	case AxisSamples:
		out := make([][]float64, len(data))
		for i, row := range data {
			if len(row) < len(taps) {
				return nil, fmt.Errorf("%w: row %d has %d samples for a %d-tap filter",
					ErrInsufficientSamples, i, len(row), len(taps))
			}
			out[i] = fir.Apply(taps, row)
		}
		return out, nil
	case AxisChannels:
		cols, err := transpose(data)
		if err != nil {
			return nil, err
		}
		filtered, err := ApplyTaps(cols, taps, AxisSamples)
		if err != nil {
			return nil, err
		}
		return transpose(filtered)
	default:
		return nil, fmt.Errorf("%w: unknown axis %v", ErrInvalidConfig, axis)
	}
}

func transpose(data [][]float64) ([][]float64, error) {
	if len(data) == 0 {
		return [][]float64{}, nil
	}

	width := len(data[0])
	out := make([][]float64, width)
	for j := range out {
		out[j] = make([]float64, len(data))
	}

	for i, row := range data {
		if len(row) != width {
			return nil, fmt.Errorf("%w: ragged array, row %d has %d samples, want %d",
				ErrInvalidConfig, i, len(row), width)
		}
		for j, v := range row {
			out[j][i] = v
		}
	}

	return out, nil
}

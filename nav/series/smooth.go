package series

import (
	"fmt"

	"github.com/cwbudde/algo-nav/dsp/lowpass"
)

// Smooth low-pass filters every channel of ts and compensates the filter
// delay. cfg.SampleFrequency is ignored and replaced by the rate estimated
// from ts. The data is padded with cfg.Boundary edge samples, filtered along
// time, unpadded, and the timestamps are shifted back by the group delay.
// The returned delay is in seconds.
func Smooth(ts TimeSeries, cfg lowpass.Config) (TimeSeries, float64, error) {
	if err := ts.Validate(); err != nil {
		return TimeSeries{}, 0, err
	}

	fs, err := ts.SampleFrequency()
	if err != nil {
		return TimeSeries{}, 0, err
	}

	cfg, err = cfg.WithSampleFrequency(fs)
	if err != nil {
		return TimeSeries{}, 0, err
	}

	return smoothWith(ts, cfg.Boundary, func(padded [][]float64) ([][]float64, float64, error) {
		return lowpass.Filter(padded, cfg, lowpass.AxisSamples)
	})
}

// SmoothKaiser is Smooth with a Kaiser-window design. spec.SampleFrequency is
// replaced by the estimated rate. boundary edge samples are added on each
// side before filtering and must cover the designed filter's transient.
func SmoothKaiser(ts TimeSeries, spec lowpass.KaiserSpec, boundary int) (TimeSeries, float64, error) {
	if err := ts.Validate(); err != nil {
		return TimeSeries{}, 0, err
	}

	fs, err := ts.SampleFrequency()
	if err != nil {
		return TimeSeries{}, 0, err
	}
	spec.SampleFrequency = fs

	taps, err := lowpass.DesignKaiser(spec)
	if err != nil {
		return TimeSeries{}, 0, err
	}
	if err := lowpass.CheckBoundary(boundary, len(taps)); err != nil {
		return TimeSeries{}, 0, err
	}

	return smoothWith(ts, boundary, func(padded [][]float64) ([][]float64, float64, error) {
		out, err := lowpass.ApplyTaps(padded, taps, lowpass.AxisSamples)
		return out, lowpass.GroupDelay(len(taps), fs), err
	})
}

func smoothWith(ts TimeSeries, boundary int, filter func([][]float64) ([][]float64, float64, error)) (TimeSeries, float64, error) {
	padded, err := lowpass.Pad(ts.Values, boundary)
	if err != nil {
		return TimeSeries{}, 0, err
	}

	filtered, delay, err := filter(padded)
	if err != nil {
		return TimeSeries{}, 0, fmt.Errorf("series: smoothing %d samples: %w", ts.Len(), err)
	}

	values, err := lowpass.Unpad(filtered, boundary)
	if err != nil {
		return TimeSeries{}, 0, err
	}

	out := ts.Shift(delay)
	out.Values = values

	return out, delay, nil
}

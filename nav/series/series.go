// Package series holds timestamped multi-channel samples and the time-axis
// operations the navigation pipelines need: sample-rate estimation, delay
// compensation and nearest-sample lookup.
package series

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrNotIncreasing is returned when timestamps are not strictly increasing.
	ErrNotIncreasing = errors.New("series: timestamps must be strictly increasing")
	// ErrLengthMismatch is returned when a channel length differs from the
	// number of timestamps.
	ErrLengthMismatch = errors.New("series: channel length does not match timestamps")
	// ErrTooShort is returned when fewer than two samples are available for
	// estimating a sample interval.
	ErrTooShort = errors.New("series: at least two samples required")
)

// TimeSeries is an ordered set of samples. Times are seconds (Unix epoch for
// survey data); Values holds one slice per channel, each len(Times) long.
type TimeSeries struct {
	Times  []float64
	Values [][]float64
}

// New validates and returns a TimeSeries. The slices are not copied.
func New(times []float64, values ...[]float64) (TimeSeries, error) {
	ts := TimeSeries{Times: times, Values: values}
	if err := ts.Validate(); err != nil {
		return TimeSeries{}, err
	}

	return ts, nil
}

// Validate checks that timestamps strictly increase and that every channel
// has one value per timestamp.
func (ts TimeSeries) Validate() error {
	for i := 1; i < len(ts.Times); i++ {
		if !(ts.Times[i] > ts.Times[i-1]) {
			return fmt.Errorf("%w: t[%d]=%v, t[%d]=%v", ErrNotIncreasing, i-1, ts.Times[i-1], i, ts.Times[i])
		}
	}

	for c, ch := range ts.Values {
		if len(ch) != len(ts.Times) {
			return fmt.Errorf("%w: channel %d has %d values for %d timestamps",
				ErrLengthMismatch, c, len(ch), len(ts.Times))
		}
	}

	return nil
}

// Len returns the number of samples.
func (ts TimeSeries) Len() int {
	return len(ts.Times)
}

// Channels returns the number of channels.
func (ts TimeSeries) Channels() int {
	return len(ts.Values)
}

// SampleFrequency returns 1/mean(Δt) in Hz.
func (ts TimeSeries) SampleFrequency() (float64, error) {
	return SampleFrequency(ts.Times)
}

// Shift returns a copy of ts with every timestamp moved by -delay seconds.
// Values are shared with ts.
func (ts TimeSeries) Shift(delay float64) TimeSeries {
	times := make([]float64, len(ts.Times))
	for i, t := range ts.Times {
		times[i] = t - delay
	}

	return TimeSeries{Times: times, Values: ts.Values}
}

// SampleFrequency returns the reciprocal of the mean sample interval of times.
func SampleFrequency(times []float64) (float64, error) {
	if len(times) < 2 {
		return 0, ErrTooShort
	}

	dt := make([]float64, len(times)-1)
	for i := range dt {
		dt[i] = times[i+1] - times[i]
	}

	mean := stat.Mean(dt, nil)
	if !(mean > 0) {
		return 0, fmt.Errorf("%w: mean interval %v", ErrNotIncreasing, mean)
	}

	return 1 / mean, nil
}

package lowpass

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned for filter settings that would produce a
	// degenerate filter.
	ErrInvalidConfig = errors.New("lowpass: invalid filter configuration")
	// ErrInsufficientSamples is returned when the data is too short for the
	// requested filter or padding.
	ErrInsufficientSamples = errors.New("lowpass: insufficient samples")
)

// Config describes a fixed-order low-pass FIR filter.
//
// Order is the number of taps, Cutoff and SampleFrequency are in Hz and
// Boundary is the number of edge samples added on each side before filtering.
// A Config is a value; the With* methods return modified copies.
type Config struct {
	Order           int
	Cutoff          float64
	Boundary        int
	SampleFrequency float64
}

// NewConfig returns a filter configuration without a sample frequency.
// The order and boundary are checked immediately; the cutoff is checked once
// a sample frequency is attached with WithSampleFrequency.
func NewConfig(order int, cutoff float64, boundary int) (Config, error) {
	cfg := Config{Order: order, Cutoff: cutoff, Boundary: boundary}
	if err := cfg.validateShape(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// WithSampleFrequency returns a copy of c sampled at fs Hz, validated in full.
func (c Config) WithSampleFrequency(fs float64) (Config, error) {
	c.SampleFrequency = fs
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Nyquist returns half the sample frequency.
func (c Config) Nyquist() float64 {
	return c.SampleFrequency / 2
}

// Delay returns the group delay of the filter in seconds,
// 0.5*(Order-1)/SampleFrequency.
func (c Config) Delay() float64 {
	return GroupDelay(c.Order, c.SampleFrequency)
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := c.validateShape(); err != nil {
		return err
	}

	if c.SampleFrequency <= 0 {
		return fmt.Errorf("%w: sample frequency must be > 0, got %g", ErrInvalidConfig, c.SampleFrequency)
	}

	if c.Cutoff >= c.Nyquist() {
		return fmt.Errorf("%w: cutoff %g Hz must be below nyquist %g Hz", ErrInvalidConfig, c.Cutoff, c.Nyquist())
	}

	return nil
}

func (c Config) validateShape() error {
	if c.Order <= 0 {
		return fmt.Errorf("%w: order must be > 0, got %d", ErrInvalidConfig, c.Order)
	}

	if c.Cutoff <= 0 {
		return fmt.Errorf("%w: cutoff must be > 0, got %g", ErrInvalidConfig, c.Cutoff)
	}

	return CheckBoundary(c.Boundary, c.Order)
}

// CheckBoundary reports whether boundary padding samples cover the start-up
// transient of a numTaps filter, which spans numTaps-1 samples.
func CheckBoundary(boundary, numTaps int) error {
	if boundary < 0 {
		return fmt.Errorf("%w: boundary must be >= 0, got %d", ErrInvalidConfig, boundary)
	}

	if boundary < numTaps-1 {
		return fmt.Errorf("%w: boundary %d shorter than filter transient of %d samples",
			ErrInvalidConfig, boundary, numTaps-1)
	}

	return nil
}

// GroupDelay returns the delay in seconds of a linear-phase FIR filter with
// numTaps taps sampled at fs Hz.
func GroupDelay(numTaps int, fs float64) float64 {
	return 0.5 * float64(numTaps-1) / fs
}

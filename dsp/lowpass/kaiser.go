package lowpass

import (
	"fmt"

	"github.com/cwbudde/algo-nav/dsp/filter/fir"
)

// KaiserSpec describes a low-pass filter by its tolerances instead of its
// order. Attenuation is the stop-band attenuation in dB; Transition and
// Cutoff are in Hz and are converted to fractions of Nyquist for the design.
type KaiserSpec struct {
	SampleFrequency float64
	Attenuation     float64
	Transition      float64
	Cutoff          float64
}

// DesignKaiser returns the taps for spec.
func DesignKaiser(spec KaiserSpec) ([]float64, error) {
	taps, err := fir.LowPassKaiser(spec.Attenuation, spec.Transition, spec.Cutoff, spec.SampleFrequency)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return taps, nil
}

// FilterKaiser designs a Kaiser-window filter from spec and applies it along
// axis with the same semantics as Filter. The returned delay follows from the
// designed tap count.
func FilterKaiser(data [][]float64, spec KaiserSpec, axis Axis) ([][]float64, float64, error) {
	taps, err := DesignKaiser(spec)
	if err != nil {
		return nil, 0, err
	}

	out, err := ApplyTaps(data, taps, axis)
	if err != nil {
		return nil, 0, err
	}

	return out, GroupDelay(len(taps), spec.SampleFrequency), nil
}

package fir

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-nav/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrInvalidTaps is returned when a design is requested with fewer than one tap.
	ErrInvalidTaps = errors.New("fir: number of taps must be > 0")
	// ErrInvalidCutoff is returned when the cutoff is outside (0, nyquist).
	ErrInvalidCutoff = errors.New("fir: cutoff must be in (0, nyquist)")
)

// LowPass designs a linear-phase low-pass filter by the windowed-sinc method.
//
// cutoff and sampleRate are in Hz. The ideal impulse response is centred on
// (numTaps-1)/2, multiplied by the symmetric window and scaled to unity gain
// at DC. With window.TypeHamming this reproduces the classic firwin design.
func LowPass(numTaps int, cutoff, sampleRate float64, win window.Type, opts ...window.Option) ([]float64, error) {
	if numTaps <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTaps, numTaps)
	}

	nyquist := sampleRate / 2
	if sampleRate <= 0 || cutoff <= 0 || cutoff >= nyquist {
		return nil, fmt.Errorf("%w: cutoff %g Hz, nyquist %g Hz", ErrInvalidCutoff, cutoff, nyquist)
	}

	// Normalised to Nyquist, so h[n] = c*sinc(c*m).
	c := cutoff / nyquist
	center := 0.5 * float64(numTaps-1)

	taps := make([]float64, numTaps)
	for n := range taps {
		taps[n] = c * sinc(c*(float64(n)-center))
	}

	window.Apply(win, taps, opts...)

	sum := vecmath.Sum(taps)
	if sum == 0 {
		return nil, errors.New("fir: designed zero-sum filter")
	}

	vecmath.ScaleBlockInPlace(taps, 1/sum)

	return taps, nil
}

// LowPassKaiser designs a low-pass filter from a stop-band attenuation (dB)
// and a transition width (Hz). The tap count and window beta follow from
// window.KaiserOrder.
func LowPassKaiser(attenuation, transition, cutoff, sampleRate float64) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %g", ErrInvalidCutoff, sampleRate)
	}

	numTaps, beta, err := window.KaiserOrder(attenuation, transition/(sampleRate/2))
	if err != nil {
		return nil, fmt.Errorf("fir: %w", err)
	}

	return LowPass(numTaps, cutoff, sampleRate, window.TypeKaiser, window.WithBeta(beta))
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

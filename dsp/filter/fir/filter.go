package fir

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// Filter implements a causal direct-form FIR filter.
//
// The delay line is stored twice back to back so that the most recent
// len(coeffs) samples are always contiguous and the output is a single dot
// product against the reversed coefficients.
type Filter struct {
	coeffs   []float64
	reversed []float64
	history  []float64
	pos      int
}

// New creates a FIR filter from the given coefficient slice.
// The coefficients are copied. The filter order is len(coeffs)-1.
func New(coeffs []float64) *Filter {
	n := len(coeffs)
	c := make([]float64, n)
	copy(c, coeffs)

	r := make([]float64, n)
	for i, v := range c {
		r[n-1-i] = v
	}

	return &Filter{
		coeffs:   c,
		reversed: r,
		history:  make([]float64, 2*n),
	}
}

// ProcessSample filters one input sample.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	n := len(f.coeffs)
	if n == 0 {
		return 0
	}

	f.history[f.pos] = x
	f.history[f.pos+n] = x

	f.pos++
	if f.pos == n {
		f.pos = 0
	}

	// history[pos:pos+n] runs oldest to newest.
	return vecmath.DotProduct(f.reversed, f.history[f.pos:f.pos+n])
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// GroupDelay returns the group delay in samples of a linear-phase filter
// with these coefficients.
func (f *Filter) GroupDelay() float64 {
	return 0.5 * float64(len(f.coeffs)-1)
}

// Apply filters x from zero initial state and returns a new slice of the
// same length. It is equivalent to feeding x through a fresh [Filter].
func Apply(coeffs, x []float64) []float64 {
	out := make([]float64, len(x))
	New(coeffs).ProcessBlockTo(out, x)
	return out
}

// Response computes the complex frequency response H(e^{jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range f.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

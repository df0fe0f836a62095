package fir

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// FrequencyResponse evaluates the response of coeffs on nfft/2+1 evenly
// spaced frequencies from DC to Nyquist using a zero-padded FFT.
// nfft must be a power of two not smaller than len(coeffs).
func FrequencyResponse(coeffs []float64, nfft int) ([]complex128, error) {
	if len(coeffs) == 0 {
		return nil, ErrInvalidTaps
	}

	if nfft < len(coeffs) || nfft&(nfft-1) != 0 {
		return nil, fmt.Errorf("fir: fft size %d must be a power of two >= %d", nfft, len(coeffs))
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("fir: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, nfft)
	for i, v := range coeffs {
		padded[i] = complex(v, 0)
	}

	spectrum := make([]complex128, nfft)
	if err := plan.Forward(spectrum, padded); err != nil {
		return nil, fmt.Errorf("fir: forward FFT failed: %w", err)
	}

	return spectrum[:nfft/2+1], nil
}

// MagnitudeResponseDB returns 20*log10|H| for each bin of a response
// computed by FrequencyResponse.
func MagnitudeResponseDB(response []complex128) []float64 {
	n := len(response)
	if n == 0 {
		return nil
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, h := range response {
		re[i] = real(h)
		im[i] = imag(h)
	}

	mag := make([]float64, n)
	vecmath.Magnitude(mag, re, im)

	for i, m := range mag {
		mag[i] = 20 * math.Log10(m)
	}

	return mag
}

// BinFrequency returns the frequency in Hz of bin k of an nfft-point response.
func BinFrequency(k, nfft int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(nfft)
}

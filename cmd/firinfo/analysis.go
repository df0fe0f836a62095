package main

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-nav/dsp/filter/fir"
	"github.com/cwbudde/algo-nav/dsp/lowpass"
	"github.com/cwbudde/algo-nav/internal/config"
)

type design struct {
	name   string
	cutoff float64
	taps   []float64
}

// surveyDesigns returns the configured filter, the Kaiser filter when one is
// configured, and a Hamming design for each extra tap count.
func surveyDesigns(survey *config.Survey, fs float64, extra []int) ([]design, error) {
	cfg, err := survey.LowPass()
	if err != nil {
		return nil, err
	}

	var out []design
	for _, order := range append([]int{cfg.Order}, extra...) {
		c := cfg
		c.Order = order
		// Analysis only; the boundary does not affect the design.
		c.Boundary = max(c.Boundary, order-1)
		c, err = c.WithSampleFrequency(fs)
		if err != nil {
			return nil, err
		}
		taps, err := lowpass.Design(c)
		if err != nil {
			return nil, err
		}
		out = append(out, design{name: fmt.Sprintf("hamming-%d", order), cutoff: c.Cutoff, taps: taps})
	}

	if spec, ok := survey.KaiserSpec(); ok {
		spec.SampleFrequency = fs
		taps, err := lowpass.DesignKaiser(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, design{name: fmt.Sprintf("kaiser-%gdB", spec.Attenuation), cutoff: spec.Cutoff, taps: taps})
	}

	return out, nil
}

type analysis struct {
	// GainAtCutoffDB is evaluated at the exact cutoff, off the FFT grid.
	GainAtCutoffDB float64
	// Bandwidth3dB is the first frequency where the gain falls below -3 dB.
	Bandwidth3dB float64
	// StopbandDB is the highest gain from twice the cutoff up to nyquist.
	StopbandDB float64
}

func analyze(taps []float64, fs, cutoff float64, nfft int) (analysis, error) {
	nfft = max(nfft, nextPow2(len(taps)))

	resp, err := fir.FrequencyResponse(taps, nfft)
	if err != nil {
		return analysis{}, err
	}
	db := fir.MagnitudeResponseDB(resp)

	bin := func(f float64) int {
		return min(int(math.Round(f*float64(nfft)/fs)), len(db)-1)
	}

	a := analysis{
		GainAtCutoffDB: fir.New(taps).MagnitudeDB(cutoff, fs),
		Bandwidth3dB:   fs / 2,
		StopbandDB:     math.Inf(-1),
	}

	for k, v := range db {
		if v < -3 {
			a.Bandwidth3dB = fir.BinFrequency(k, nfft, fs)
			break
		}
	}

	for _, v := range db[bin(2*cutoff):] {
		a.StopbandDB = max(a.StopbandDB, v)
	}

	return a, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

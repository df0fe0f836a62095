package fir

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestFrequencyResponse_MatchesDirectEvaluation(t *testing.T) {
	coeffs := []float64{0.1, 0.2, 0.4, 0.2, 0.1}
	nfft := 16
	fs := 8.0

	resp, err := FrequencyResponse(coeffs, nfft)
	if err != nil {
		t.Fatal(err)
	}
	if len(resp) != nfft/2+1 {
		t.Fatalf("len=%d, want %d", len(resp), nfft/2+1)
	}

	f := New(coeffs)
	for k, h := range resp {
		want := f.Response(BinFrequency(k, nfft, fs), fs)
		if cmplx.Abs(h-want) > 1e-12 {
			t.Errorf("bin %d: got %v, want %v", k, h, want)
		}
	}
}

func TestFrequencyResponse_Invalid(t *testing.T) {
	if _, err := FrequencyResponse(nil, 8); err == nil {
		t.Error("expected error for empty coefficients")
	}
	if _, err := FrequencyResponse([]float64{1, 2, 3}, 12); err == nil {
		t.Error("expected error for non power of two")
	}
	if _, err := FrequencyResponse([]float64{1, 2, 3}, 2); err == nil {
		t.Error("expected error for fft shorter than filter")
	}
}

func TestMagnitudeResponseDB(t *testing.T) {
	resp := []complex128{1, complex(0, 10), complex(0.1, 0)}
	got := MagnitudeResponseDB(resp)
	want := []float64{0, 20, -20}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("bin %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if MagnitudeResponseDB(nil) != nil {
		t.Error("expected nil for empty response")
	}
}

package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-nav/spatial"
)

// SampleTimes returns n timestamps starting at t0 spaced 1/fs apart.
func SampleTimes(t0, fs float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = t0 + float64(i)/fs
	}
	return out
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// RandomUnitQuats returns n reproducible random rotations.
func RandomUnitQuats(seed int64, n int) []spatial.Quat {
	rng := rand.New(rand.NewSource(seed))
	out := make([]spatial.Quat, n)
	for i := range out {
		axis := spatial.Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		out[i] = spatial.FromAxisAngle(axis, (rng.Float64()*2-1)*math.Pi)
	}
	return out
}

// RandomVecs returns n reproducible vectors with components in [-scale, scale].
func RandomVecs(seed int64, scale float64, n int) []spatial.Vec3 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]spatial.Vec3, n)
	for i := range out {
		for k := range out[i] {
			out[i][k] = (rng.Float64()*2 - 1) * scale
		}
	}
	return out
}

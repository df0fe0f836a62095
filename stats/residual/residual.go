package residual

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds summary statistics of a residual series.
type Stats struct {
	Count  int
	Mean   float64 // bias
	Std    float64 // population standard deviation
	RMS    float64
	Max    float64
	MaxPos int
	Min    float64
	MinPos int
	Peak   float64 // max(|max|, |min|)
}

// Calculate returns the statistics of residuals. An empty slice yields the
// zero Stats. Ties for the extremes resolve to the first position.
func Calculate(residuals []float64) Stats {
	n := len(residuals)
	if n == 0 {
		return Stats{}
	}

	shift := residuals[0]
	centred := make([]float64, n)
	for i, x := range residuals {
		centred[i] = x - shift
	}
	mean, std := stat.PopMeanStdDev(centred, nil)

	maxPos := floats.MaxIdx(residuals)
	minPos := floats.MinIdx(residuals)
	maxVal, minVal := residuals[maxPos], residuals[minPos]

	return Stats{
		Count:  n,
		Mean:   shift + mean,
		Std:    std,
		RMS:    RMS(residuals),
		Max:    maxVal,
		MaxPos: maxPos,
		Min:    minVal,
		MinPos: minPos,
		Peak:   math.Max(math.Abs(maxVal), math.Abs(minVal)),
	}
}

// RMS returns the root-mean-square of residuals, or 0 for an empty slice.
func RMS(residuals []float64) float64 {
	if len(residuals) == 0 {
		return 0
	}

	return math.Sqrt(vecmath.DotProduct(residuals, residuals) / float64(len(residuals)))
}

package trajectory

import (
	"fmt"

	"github.com/cwbudde/algo-nav/nav/series"
	"github.com/cwbudde/algo-nav/spatial"
	"github.com/cwbudde/algo-nav/stats/residual"
)

// Comparison holds residuals of measured fixes against an estimated track.
type Comparison struct {
	Times     []float64
	Residuals []spatial.Vec3 // measured - estimated
	Stats     residual.VectorStats
}

// Compare matches every fix inside the estimated time span to the nearest
// estimated sample and summarises the residuals. times must be strictly
// increasing and fix times non-decreasing.
func Compare(times []float64, estimated []spatial.Vec3, fixes []Fix) (Comparison, error) {
	if len(times) != len(estimated) {
		return Comparison{}, fmt.Errorf("%w: %d timestamps, %d positions", ErrDimensionMismatch, len(times), len(estimated))
	}

	if len(times) == 0 {
		return Comparison{}, ErrEmptyTrajectory
	}

	if err := (series.TimeSeries{Times: times}).Validate(); err != nil {
		return Comparison{}, err
	}

	if err := CheckFixOrder(fixes); err != nil {
		return Comparison{}, err
	}

	first, last := times[0], times[len(times)-1]

	var inside []Fix
	for _, f := range fixes {
		if f.Time >= first && f.Time <= last {
			inside = append(inside, f)
		}
	}

	if len(inside) == 0 {
		return Comparison{}, fmt.Errorf("%w: no fixes within [%v, %v]", ErrEmptyTrajectory, first, last)
	}

	queries := make([]float64, len(inside))
	for i, f := range inside {
		queries[i] = f.Time
	}

	nearest := series.NearestIndices(queries, times)

	out := Comparison{
		Times:     queries,
		Residuals: make([]spatial.Vec3, len(inside)),
	}
	for i, f := range inside {
		out.Residuals[i] = f.Position.Sub(estimated[nearest[i]])
	}
	out.Stats = residual.Vector(out.Residuals)

	return out, nil
}

package residual

import (
	"math"

	"github.com/cwbudde/algo-nav/spatial"
)

// VectorStats summarises 3-D position residuals per axis and as distances.
type VectorStats struct {
	Axes       [3]Stats
	Horizontal Stats // distance in the x/y plane
	Distance   Stats // full 3-D distance
}

// Vector returns statistics of 3-D residual vectors.
func Vector(residuals []spatial.Vec3) VectorStats {
	n := len(residuals)

	var axes [3][]float64
	for k := range axes {
		axes[k] = make([]float64, n)
	}
	horizontal := make([]float64, n)
	distance := make([]float64, n)

	for i, r := range residuals {
		for k := range axes {
			axes[k][i] = r[k]
		}
		horizontal[i] = math.Hypot(r[0], r[1])
		distance[i] = r.Norm()
	}

	var out VectorStats
	for k := range axes {
		out.Axes[k] = Calculate(axes[k])
	}
	out.Horizontal = Calculate(horizontal)
	out.Distance = Calculate(distance)

	return out
}

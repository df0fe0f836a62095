package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-nav/spatial"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireVecNearlyEqual fails t if any component of got and want differ by
// more than eps.
func RequireVecNearlyEqual(t *testing.T, got, want spatial.Vec3, eps float64) {
	t.Helper()
	if d := got.Sub(want); math.Abs(d[0]) > eps || math.Abs(d[1]) > eps || math.Abs(d[2]) > eps {
		t.Fatalf("got %v, want %v (eps %v)", got, want, eps)
	}
}

// RequireQuatNearlyEqual fails t if any component of got and want differ by
// more than eps. q and -q are treated as different.
func RequireQuatNearlyEqual(t *testing.T, got, want spatial.Quat, eps float64) {
	t.Helper()
	g, w := got.Array(), want.Array()
	for i := range g {
		if math.Abs(g[i]-w[i]) > eps {
			t.Fatalf("got %v, want %v (component %d, eps %v)", got, want, i, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

package series

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

func TestNearest(t *testing.T) {
	ref := []float64{1, 2, 4, 8}

	tests := []struct {
		name string
		t    float64
		want int
	}{
		{"before first", -5, 0},
		{"after last", 100, 3},
		{"exact first", 1, 0},
		{"exact middle", 4, 2},
		{"exact last", 8, 3},
		{"closer to lower", 2.9, 1},
		{"closer to upper", 3.1, 2},
		{"tie goes to earlier", 6, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nearest(tt.t, ref); got != tt.want {
				t.Fatalf("Nearest(%v)=%d, want %d", tt.t, got, tt.want)
			}
		})
	}

	if got := Nearest(1, nil); got != -1 {
		t.Fatalf("empty: got %d", got)
	}
}

func bruteNearest(t float64, ref []float64) int {
	best := 0
	for i := range ref {
		if math.Abs(ref[i]-t) < math.Abs(ref[best]-t) {
			best = i
		}
	}
	return best
}

func TestNearestIndicesMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	refs := make([]float64, 300)
	acc := 0.0
	for i := range refs {
		acc += 0.05 + rng.Float64()
		refs[i] = acc
	}

	queries := make([]float64, 500)
	for i := range queries {
		queries[i] = -10 + rng.Float64()*(acc+20)
	}
	sort.Float64s(queries)

	got := NearestIndices(queries, refs)
	for i, q := range queries {
		want := bruteNearest(q, refs)
		if got[i] != want {
			t.Fatalf("query %d (%v): got %d, want %d", i, q, got[i], want)
		}
		if n := Nearest(q, refs); n != want {
			t.Fatalf("Nearest(%v)=%d, want %d", q, n, want)
		}
	}
}

func TestNearestIndicesEmptyRefs(t *testing.T) {
	got := NearestIndices([]float64{1, 2}, nil)
	for i, v := range got {
		if v != -1 {
			t.Fatalf("got[%d]=%d, want -1", i, v)
		}
	}
}

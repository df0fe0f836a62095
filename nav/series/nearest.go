package series

import "math"

// Nearest returns the index of the element of sorted (ascending) closest to
// t. Ties resolve to the earlier sample. It returns -1 for an empty slice.
func Nearest(t float64, sorted []float64) int {
	if len(sorted) == 0 {
		return -1
	}

	lo, hi := 0, len(sorted)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if sorted[mid] < t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	// lo is the first element >= t, or the last element.
	if lo > 0 && math.Abs(t-sorted[lo-1]) <= math.Abs(sorted[lo]-t) {
		return lo - 1
	}

	return lo
}

// NearestIndices returns, for each query time, the index of the closest
// reference time. queries must be sorted ascending and refs strictly
// increasing; the search pointer
// only moves forward, so the cost is O(len(queries)+len(refs)).
// Ties resolve to the earlier reference sample, as in Nearest.
func NearestIndices(queries, refs []float64) []int {
	out := make([]int, len(queries))
	if len(refs) == 0 {
		for i := range out {
			out[i] = -1
		}
		return out
	}

	j := 0
	for i, t := range queries {
		for j+1 < len(refs) && math.Abs(refs[j+1]-t) < math.Abs(t-refs[j]) {
			j++
		}
		out[i] = j
	}

	return out
}

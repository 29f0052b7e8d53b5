package complexnum

import (
	"cmp"
	"math"
)

// Tolerance is the absolute tolerance used by Equal and by comparisons.
const Tolerance = 1e-5

// ApproxEqual reports whether a and b differ by at most tol.
// Identical values (including equal infinities) are always equal.
func ApproxEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tol
}

// compareFloat is a three-way comparison that treats values within tol as
// equal. NaN orders before every other value and equal to itself, as in
// cmp.Compare.
func compareFloat(a, b, tol float64) int {
	if math.IsNaN(a) || math.IsNaN(b) {
		return cmp.Compare(a, b)
	}
	if ApproxEqual(a, b, tol) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

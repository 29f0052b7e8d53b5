package complexnum

import (
	"cmp"
	"fmt"
	"sort"
	"strings"
)

// SortMode selects the scalar projection used to order complex numbers.
//
// Complex numbers have no natural total order, so every comparison in this
// package takes a SortMode explicitly. The zero value is ByMagnitude.
type SortMode int

const (
	ByMagnitude SortMode = iota // Compare R() (default)
	ByLength                    // Same as ByMagnitude
	ByReal                      // Compare Real()
	ByImaginary                 // Compare Imaginary()
	ByAngle                     // Compare PhiInRadian()
)

var sortModeNames = map[SortMode]string{
	ByMagnitude: "magnitude",
	ByLength:    "length",
	ByReal:      "real",
	ByImaginary: "imaginary",
	ByAngle:     "angle",
}

// SortModes returns every defined mode in declaration order.
func SortModes() []SortMode {
	return []SortMode{ByMagnitude, ByLength, ByReal, ByImaginary, ByAngle}
}

// ParseSortMode parses a mode name (case-insensitive). "phi" is accepted as
// an alias for "angle" and "abs" for "magnitude".
func ParseSortMode(s string) (SortMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "", "abs", "r":
		return ByMagnitude, nil
	case "phi":
		return ByAngle, nil
	}
	for mode, n := range sortModeNames {
		if n == name {
			return mode, nil
		}
	}
	return ByMagnitude, fmt.Errorf("unknown sort mode %q: %w", s, ErrInvalidArgument)
}

// String returns the mode name.
func (m SortMode) String() string {
	if n, ok := sortModeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("SortMode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m SortMode) MarshalText() ([]byte, error) {
	if _, ok := sortModeNames[m]; !ok {
		return nil, fmt.Errorf("marshal %s: %w", m, ErrInvalidArgument)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SortMode) UnmarshalText(text []byte) error {
	mode, err := ParseSortMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Key returns the scalar that m orders c by. Unknown modes fall back to
// the magnitude.
func (m SortMode) Key(c Complex) float64 {
	switch m {
	case ByReal:
		return c.re
	case ByImaginary:
		return c.im
	case ByAngle:
		return c.PhiInRadian()
	default:
		return c.R()
	}
}

// Compare returns -1, 0 or +1 depending on whether a orders before, equal
// to, or after b under m. Keys within Tolerance compare as 0; NaN keys order
// first.
//
// Tolerance makes "equal" non-transitive (0 ≈ 8e-6 ≈ 1.6e-5 but 0 < 1.6e-5),
// so m.Compare is not a valid sort comparator for near-ties. Sort with Sort
// or m.Order instead.
func (m SortMode) Compare(a, b Complex) int {
	return compareFloat(m.Key(a), m.Key(b), Tolerance)
}

// Order compares the raw keys of a and b under m, without tolerance.
// It is a strict weak ordering and fits slices.SortFunc.
func (m SortMode) Order(a, b Complex) int {
	return cmp.Compare(m.Key(a), m.Key(b))
}

// Compare is m.Compare(a, b).
func Compare(a, b Complex, m SortMode) int {
	return m.Compare(a, b)
}

// Compare returns the three-way comparison of c and o under m.
func (c Complex) Compare(o Complex, m SortMode) int {
	return m.Compare(c, o)
}

// Less reports whether c orders strictly before o under m.
func (c Complex) Less(o Complex, m SortMode) bool {
	return m.Compare(c, o) < 0
}

// Greater reports whether c orders strictly after o under m.
func (c Complex) Greater(o Complex, m SortMode) bool {
	return m.Compare(c, o) > 0
}

// Sort sorts xs in place by the raw key of m. Elements with identical keys
// keep their relative order; NaN keys sort first.
func Sort(xs []Complex, m SortMode) {
	sort.SliceStable(xs, func(i, j int) bool {
		return m.Order(xs[i], xs[j]) < 0
	})
}

// Min returns the element of xs that orders first under m.
// The second result is false when xs is empty.
func Min(xs []Complex, m SortMode) (Complex, bool) {
	if len(xs) == 0 {
		return Complex{}, false
	}
	best := xs[0]
	for _, x := range xs[1:] {
		if m.Compare(x, best) < 0 {
			best = x
		}
	}
	return best, true
}

// Max returns the element of xs that orders last under m.
// The second result is false when xs is empty.
func Max(xs []Complex, m SortMode) (Complex, bool) {
	if len(xs) == 0 {
		return Complex{}, false
	}
	best := xs[0]
	for _, x := range xs[1:] {
		if m.Compare(x, best) > 0 {
			best = x
		}
	}
	return best, true
}

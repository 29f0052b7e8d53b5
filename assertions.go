package complexnum

import (
	"errors"
	"math"
	"testing"
)

// AssertionConfig contains thresholds for the assertion helpers.
type AssertionConfig struct {
	// Absolute tolerance per component
	Tolerance float64

	// Laws checked by AssertLaws (empty = AllLaws)
	Laws []Law
}

// DefaultAssertionConfig returns the package Tolerance and every law.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Tolerance: Tolerance,
		Laws:      AllLaws(),
	}
}

// AssertEqual fails the test if got and want differ by more than
// cfg.Tolerance in either component.
func AssertEqual(t testing.TB, got, want Complex, cfg AssertionConfig) {
	t.Helper()

	if !got.EqualWithin(want, cfg.Tolerance) {
		t.Errorf("Complex mismatch: got %v, want %v (tolerance %g)\n"+
			"  Δre = %g, Δim = %g",
			got, want, cfg.Tolerance, got.re-want.re, got.im-want.im)
	}
}

// AssertRoots verifies that roots are exactly the n distinct n-th roots of c:
// each raised to the n-th power gives back c, they share the magnitude
// r^(1/n), and consecutive roots are 2π/n apart. c must be non-zero.
func AssertRoots(t testing.TB, c Complex, n int, roots []Complex, cfg AssertionConfig) {
	t.Helper()

	if len(roots) != n {
		t.Fatalf("Expected %d roots, got %d", n, len(roots))
	}

	for k, root := range roots {
		back := root.Power(n)
		if !back.EqualWithin(c, scaledTol(cfg.Tolerance, c, Of(1))) {
			t.Errorf("root[%d] = %v: root^%d = %v, want %v", k, root, n, back, c)
		}
	}

	for k := 1; k < len(roots); k++ {
		step := roots[k].Div(roots[k-1])
		want := MustFromPolarRadian(1, 2*math.Pi/float64(n))
		if !step.EqualWithin(want, cfg.Tolerance) {
			t.Errorf("root[%d]/root[%d] = %v, want rotation %v", k, k-1, step, want)
		}
	}

	t.Logf("✓ %d roots of %v", n, c)
}

// AssertLaws fails the test for every law violated over samples.
func AssertLaws(t testing.TB, samples []Complex, cfg AssertionConfig) {
	t.Helper()

	err := CheckLaws(samples, cfg.Tolerance, cfg.Laws...)
	if err == nil {
		checked := len(cfg.Laws)
		if checked == 0 {
			checked = len(AllLaws())
		}
		t.Logf("✓ %d laws hold over %d samples", checked, len(samples))
		return
	}

	var violation *LawViolation
	if errors.As(err, &violation) {
		t.Errorf("First violation: %s", violation.Law)
	}
	t.Errorf("Law check failed:\n%v", err)
}

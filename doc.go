// Package complexnum provides an immutable complex number value type.
//
// # Overview
//
// A Complex holds a real and an imaginary float64 component. Every operation
// returns a new value; nothing mutates its receiver, so values can be shared
// freely between goroutines.
//
// The package components:
//
//   - complex.go    - Construction, derived polar properties, equality, hashing
//   - arith.go      - Arithmetic with complex values and with real scalars
//   - polar.go      - Integer powers, n-th roots, rotation
//   - order.go      - Ordering under an explicit SortMode
//   - format.go     - Cartesian and polar text forms
//   - laws.go       - Algebraic law verification
//   - assertions.go - Test helpers
//
// # Quick Start
//
//	z := complexnum.FromCartesian(2.0, 3.4)
//
//	w, err := complexnum.FromPolarDegree(4.3, 82.6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(z.Add(w))           // ≈ (2.553821+7.664185i)
//	fmt.Println(z.R(), z.PhiInDegree())
//	fmt.Println(z.Power(2))         // ≈ (-7.56+13.6i)
//
// # Scalars
//
// Real scalars of any Go numeric width are lifted with Of (real axis) or
// J (imaginary axis). Mixed operators exist for both operand orders:
//
//	complexnum.AddScalar(z, int8(8))     // z + 8
//	complexnum.ScalarSub(5.4, z)         // 5.4 - z
//	complexnum.ScalarDiv(3, complexnum.J(-3)) // 3 / -3i = (0+1i)
//
// # Equality and Hashing
//
// Equal compares both components within Tolerance (1e-5). Hash is computed
// from the raw bit patterns of the components, so two values that are Equal
// may still hash differently:
//
//	a := complexnum.FromCartesian(2.0, 3.4)
//	b := complexnum.FromCartesian(20*0.1, 34*0.1)
//	a.Equal(b)            // true
//	a.Hash() == b.Hash()  // false
//
// Do not use Hash to bucket values that are meant to be deduplicated by Equal.
//
// # Ordering
//
// There is no global ordering. A SortMode selects the projection that drives
// comparisons and is passed explicitly:
//
//	complexnum.Compare(a, b, complexnum.ByReal)
//	slices.SortFunc(xs, complexnum.ByAngle.Order)
//
// The zero SortMode is ByMagnitude. Compare treats keys within Tolerance as
// equal, which is not transitive, so sorting uses Order (raw keys) instead.
//
// # Degenerate Inputs
//
// The polar constructors reject negative magnitudes with ErrInvalidArgument.
// Nothing else validates its inputs: dividing by a zero-magnitude value yields
// IEEE Inf/NaN components.
package complexnum

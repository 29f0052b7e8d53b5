package complexnum

import (
	"errors"
	"fmt"
)

// Law names an algebraic identity that Complex arithmetic should satisfy
// (within a floating-point tolerance).
type Law string

const (
	AdditiveCommutativity       Law = "AdditiveCommutativity"       // a+b = b+a
	MultiplicativeCommutativity Law = "MultiplicativeCommutativity" // a·b = b·a
	AdditiveAssociativity       Law = "AdditiveAssociativity"       // (a+b)+c = a+(b+c)
	AdditiveIdentity            Law = "AdditiveIdentity"            // a+0 = a
	AdditiveInverse             Law = "AdditiveInverse"             // a+(-a) = 0
	MultiplicativeIdentity      Law = "MultiplicativeIdentity"      // a·1 = a
	ConjugateInvolution         Law = "ConjugateInvolution"         // conj(conj(a)) = a
	ConjugateProduct            Law = "ConjugateProduct"            // a·conj(a) = |a|²
	DivisionInverse             Law = "DivisionInverse"             // (a·b)/b = a, b ≠ 0
	PolarRoundTrip              Law = "PolarRoundTrip"              // polar(|a|, φ(a)) = a
)

// AllLaws returns every defined law.
func AllLaws() []Law {
	return []Law{
		AdditiveCommutativity,
		MultiplicativeCommutativity,
		AdditiveAssociativity,
		AdditiveIdentity,
		AdditiveInverse,
		MultiplicativeIdentity,
		ConjugateInvolution,
		ConjugateProduct,
		DivisionInverse,
		PolarRoundTrip,
	}
}

// LawViolation describes one failed law instance.
type LawViolation struct {
	Law    Law
	Inputs []Complex
	Got    Complex
	Want   Complex
}

func (v *LawViolation) Error() string {
	return fmt.Sprintf("law %s violated for %v: got %v, want %v", v.Law, v.Inputs, v.Got, v.Want)
}

// CheckLaws evaluates each law over every combination of samples and
// returns all violations joined into one error, or nil.
//
// Laws over three operands use every ordered triple of samples, so keep the
// sample set small. An empty law list checks AllLaws.
func CheckLaws(samples []Complex, tol float64, laws ...Law) error {
	if len(laws) == 0 {
		laws = AllLaws()
	}

	var errs []error
	for _, law := range laws {
		check, ok := lawChecks[law]
		if !ok {
			errs = append(errs, fmt.Errorf("law %q: %w", law, ErrInvalidArgument))
			continue
		}
		for _, v := range check(samples, tol) {
			errs = append(errs, v)
		}
	}
	return errors.Join(errs...)
}

type lawCheck func(samples []Complex, tol float64) []*LawViolation

var lawChecks = map[Law]lawCheck{
	AdditiveCommutativity: pairwise(AdditiveCommutativity, func(a, b Complex) (Complex, Complex) {
		return a.Add(b), b.Add(a)
	}),
	MultiplicativeCommutativity: pairwise(MultiplicativeCommutativity, func(a, b Complex) (Complex, Complex) {
		return a.Mul(b), b.Mul(a)
	}),
	DivisionInverse: func(samples []Complex, tol float64) []*LawViolation {
		var out []*LawViolation
		for _, a := range samples {
			for _, b := range samples {
				if b.R() == 0 {
					continue
				}
				got := a.Mul(b).Div(b)
				if !got.EqualWithin(a, scaledTol(tol, a, b)) {
					out = append(out, &LawViolation{DivisionInverse, []Complex{a, b}, got, a})
				}
			}
		}
		return out
	},
	AdditiveAssociativity: func(samples []Complex, tol float64) []*LawViolation {
		var out []*LawViolation
		for _, a := range samples {
			for _, b := range samples {
				for _, c := range samples {
					got, want := a.Add(b).Add(c), a.Add(b.Add(c))
					if !got.EqualWithin(want, tol) {
						out = append(out, &LawViolation{AdditiveAssociativity, []Complex{a, b, c}, got, want})
					}
				}
			}
		}
		return out
	},
	AdditiveIdentity: unary(AdditiveIdentity, func(a Complex) (Complex, Complex) {
		return a.Add(Zero), a
	}),
	AdditiveInverse: unary(AdditiveInverse, func(a Complex) (Complex, Complex) {
		return a.Add(a.Neg()), Zero
	}),
	MultiplicativeIdentity: unary(MultiplicativeIdentity, func(a Complex) (Complex, Complex) {
		return a.Mul(Of(1)), a
	}),
	ConjugateInvolution: unary(ConjugateInvolution, func(a Complex) (Complex, Complex) {
		return a.Conjugate().Conjugate(), a
	}),
	ConjugateProduct: func(samples []Complex, tol float64) []*LawViolation {
		var out []*LawViolation
		for _, a := range samples {
			r := a.R()
			got, want := a.Mul(a.Conjugate()), Of(r*r)
			if !got.EqualWithin(want, scaledTol(tol, a, a)) {
				out = append(out, &LawViolation{ConjugateProduct, []Complex{a}, got, want})
			}
		}
		return out
	},
	PolarRoundTrip: unary(PolarRoundTrip, func(a Complex) (Complex, Complex) {
		return MustFromPolarRadian(a.R(), a.PhiInRadian()), a
	}),
}

func unary(law Law, f func(a Complex) (got, want Complex)) lawCheck {
	return func(samples []Complex, tol float64) []*LawViolation {
		var out []*LawViolation
		for _, a := range samples {
			got, want := f(a)
			if !got.EqualWithin(want, tol) {
				out = append(out, &LawViolation{law, []Complex{a}, got, want})
			}
		}
		return out
	}
}

func pairwise(law Law, f func(a, b Complex) (got, want Complex)) lawCheck {
	return func(samples []Complex, tol float64) []*LawViolation {
		var out []*LawViolation
		for _, a := range samples {
			for _, b := range samples {
				got, want := f(a, b)
				if !got.EqualWithin(want, tol) {
					out = append(out, &LawViolation{law, []Complex{a, b}, got, want})
				}
			}
		}
		return out
	}
}

// scaledTol widens tol for products, whose absolute rounding error grows
// with the operand magnitudes.
func scaledTol(tol float64, a, b Complex) float64 {
	scale := a.R() * b.R()
	if scale < 1 {
		return tol
	}
	return tol * scale
}

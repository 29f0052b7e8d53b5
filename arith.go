package complexnum

import "golang.org/x/exp/constraints"

// Integer is a constraint that permits any integer type.
type Integer interface {
	constraints.Integer
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	constraints.Float
}

// Number is a constraint that permits any real scalar type.
type Number interface {
	Integer | Float
}

// Of lifts a real scalar onto the real axis: x + 0i.
func Of[T Number](x T) Complex {
	return Complex{re: float64(x)}
}

// J lifts a real scalar onto the imaginary axis: 0 + x·i.
func J[T Number](x T) Complex {
	return Complex{im: float64(x)}
}

// Add returns c + o.
func (c Complex) Add(o Complex) Complex {
	return Complex{re: c.re + o.re, im: c.im + o.im}
}

// Sub returns c - o.
func (c Complex) Sub(o Complex) Complex {
	return Complex{re: c.re - o.re, im: c.im - o.im}
}

// Mul returns c × o.
//
//	(a+bi)(c+di) = (ac-bd) + (ad+bc)i
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		re: c.re*o.re - c.im*o.im,
		im: c.re*o.im + c.im*o.re,
	}
}

// Div returns c ÷ o.
//
//	(a+bi)/(c+di) = ((ac+bd) + (bc-ad)i) / (c²+d²)
//
// Dividing by a zero-magnitude value is not guarded: the result carries
// IEEE Inf or NaN components.
func (c Complex) Div(o Complex) Complex {
	den := o.re*o.re + o.im*o.im
	return Complex{
		re: (c.re*o.re + c.im*o.im) / den,
		im: (c.im*o.re - c.re*o.im) / den,
	}
}

// Pos returns c unchanged (unary plus).
func (c Complex) Pos() Complex {
	return c.Copy()
}

// Neg returns -c.
func (c Complex) Neg() Complex {
	return Complex{re: -c.re, im: -c.im}
}

// Inc returns c + 1. Only the real component changes.
func (c Complex) Inc() Complex {
	return Complex{re: c.re + 1, im: c.im}
}

// Dec returns c - 1. Only the real component changes.
func (c Complex) Dec() Complex {
	return Complex{re: c.re - 1, im: c.im}
}

// AddScalar returns c + x.
func AddScalar[T Number](c Complex, x T) Complex { return c.Add(Of(x)) }

// SubScalar returns c - x.
func SubScalar[T Number](c Complex, x T) Complex { return c.Sub(Of(x)) }

// MulScalar returns c × x.
func MulScalar[T Number](c Complex, x T) Complex { return c.Mul(Of(x)) }

// DivScalar returns c ÷ x.
func DivScalar[T Number](c Complex, x T) Complex { return c.Div(Of(x)) }

// ScalarAdd returns x + c.
func ScalarAdd[T Number](x T, c Complex) Complex { return Of(x).Add(c) }

// ScalarSub returns x - c.
func ScalarSub[T Number](x T, c Complex) Complex { return Of(x).Sub(c) }

// ScalarMul returns x × c.
func ScalarMul[T Number](x T, c Complex) Complex { return Of(x).Mul(c) }

// ScalarDiv returns x ÷ c.
func ScalarDiv[T Number](x T, c Complex) Complex { return Of(x).Div(c) }

// Sum returns the sum of xs. The sum of no values is Zero.
func Sum(xs ...Complex) Complex {
	var s Complex
	for _, x := range xs {
		s = s.Add(x)
	}
	return s
}

// Product returns the product of xs. The product of no values is 1+0i.
func Product(xs ...Complex) Complex {
	p := Complex{re: 1}
	for _, x := range xs {
		p = p.Mul(x)
	}
	return p
}

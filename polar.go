package complexnum

import (
	"math"
	"strconv"
)

// Direction selects the sense of a rotation.
type Direction int

const (
	Positive Direction = iota // Counterclockwise: the angle is added
	Negative                  // Clockwise: the angle is subtracted
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// sign maps the direction to ±1. Unknown values rotate counterclockwise.
func (d Direction) sign() float64 {
	if d == Negative {
		return -1
	}
	return 1
}

// Power returns c raised to the integer power n using De Moivre's formula:
//
//	c^n = r^n · (cos nφ + i·sin nφ)
//
// Negative n gives the reciprocal power. Power(0) is 1+0i.
func (c Complex) Power(n int) Complex {
	return Pow(c, n)
}

// Pow is Power for any integer width of exponent.
func Pow[T Integer](c Complex, n T) Complex {
	if n == 0 {
		return Complex{re: 1}
	}

	k := float64(n)
	mag := math.Pow(c.R(), k)
	sin, cos := math.Sincos(k * c.PhiInRadian())
	return Complex{re: mag * cos, im: mag * sin}
}

// Roots returns the n complex n-th roots of c in increasing k:
//
//	root_k = r^(1/n) · (cos((φ+2πk)/n) + i·sin((φ+2πk)/n)),  k = 0..n-1
//
// n ≤ 0 returns nil, and so does n > math.MaxInt.
func (c Complex) Roots(n int) []Complex {
	return NthRoots(c, n)
}

// NthRoots is Roots for any integer width of n. n ≤ 0 or n > math.MaxInt
// returns nil.
func NthRoots[T Integer](c Complex, n T) []Complex {
	if n <= 0 || uint64(n) > math.MaxInt {
		return nil
	}

	count := int(n)
	fn := float64(n)
	mag := math.Pow(c.R(), 1/fn)
	phi := c.PhiInRadian()

	roots := make([]Complex, 0, count)
	for k := 0; k < count; k++ {
		sin, cos := math.Sincos((phi + 2*math.Pi*float64(k)) / fn)
		roots = append(roots, Complex{re: mag * cos, im: mag * sin})
	}
	return roots
}

// RotateByRadian rotates c about the origin by angle radians in direction dir.
func (c Complex) RotateByRadian(angle float64, dir Direction) Complex {
	sin, cos := math.Sincos(dir.sign() * angle)
	return c.Mul(Complex{re: cos, im: sin})
}

// RotateByDegree rotates c about the origin by degrees in direction dir.
func (c Complex) RotateByDegree(degrees float64, dir Direction) Complex {
	return c.RotateByRadian(degreesToRadians(degrees), dir)
}

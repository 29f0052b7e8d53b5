package complexnum

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned (wrapped) when an input is outside the
// domain of an operation, e.g. a negative polar magnitude.
var ErrInvalidArgument = errors.New("complexnum: invalid argument")

// Complex is an immutable complex number re + im·i.
//
// The zero value is 0+0i. Values are compared with Equal, not ==: two values
// that went through different rounding paths are Equal within Tolerance but
// are usually not == to each other.
type Complex struct {
	re float64
	im float64
}

// Zero is 0+0i.
var Zero = Complex{}

// FromCartesian creates re + im·i. No validation is performed.
func FromCartesian(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// FromPolarRadian creates the complex number with the given magnitude and
// angle in radians. A negative magnitude returns ErrInvalidArgument.
// A zero magnitude yields exactly 0+0i regardless of angle.
func FromPolarRadian(magnitude, angle float64) (Complex, error) {
	if magnitude < 0 {
		return Complex{}, fmt.Errorf("polar magnitude %v is negative: %w", magnitude, ErrInvalidArgument)
	}
	if magnitude == 0 {
		return Complex{}, nil
	}

	sin, cos := math.Sincos(angle)
	return Complex{re: magnitude * cos, im: magnitude * sin}, nil
}

// FromPolarDegree is FromPolarRadian with the angle given in degrees.
func FromPolarDegree(magnitude, degrees float64) (Complex, error) {
	return FromPolarRadian(magnitude, degreesToRadians(degrees))
}

// MustFromPolarRadian is like FromPolarRadian but panics on error.
// Use with constant inputs known to be valid.
func MustFromPolarRadian(magnitude, angle float64) Complex {
	c, err := FromPolarRadian(magnitude, angle)
	if err != nil {
		panic(err)
	}
	return c
}

// MustFromPolarDegree is like FromPolarDegree but panics on error.
func MustFromPolarDegree(magnitude, degrees float64) Complex {
	c, err := FromPolarDegree(magnitude, degrees)
	if err != nil {
		panic(err)
	}
	return c
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(z complex128) Complex {
	return Complex{re: real(z), im: imag(z)}
}

// Complex128 converts c to the builtin complex128.
func (c Complex) Complex128() complex128 {
	return complex(c.re, c.im)
}

// Copy returns an independent value with identical components.
func (c Complex) Copy() Complex {
	return Complex{re: c.re, im: c.im}
}

// Real returns the real component.
func (c Complex) Real() float64 { return c.re }

// Imaginary returns the imaginary component.
func (c Complex) Imaginary() float64 { return c.im }

// Components returns the real and imaginary components, in that order.
//
//	re, im := z.Components()
func (c Complex) Components() (re, im float64) {
	return c.re, c.im
}

// R returns the magnitude |c|.
func (c Complex) R() float64 {
	return math.Hypot(c.re, c.im)
}

// Abs is an alias for R.
func (c Complex) Abs() float64 {
	return c.R()
}

// PhiInRadian returns the principal angle in [-π, π]. It is π on the
// negative real axis, except for a negative-zero imaginary part, which
// gives -π.
func (c Complex) PhiInRadian() float64 {
	return math.Atan2(c.im, c.re)
}

// PhiInDegree returns the principal angle in degrees.
func (c Complex) PhiInDegree() float64 {
	return radiansToDegrees(c.PhiInRadian())
}

// Conjugate returns re - im·i.
func (c Complex) Conjugate() Complex {
	return Complex{re: c.re, im: -c.im}
}

// Derivative returns half of the imaginary component.
func (c Complex) Derivative() float64 {
	return c.im / 2
}

// Integral returns the imaginary component unchanged.
func (c Complex) Integral() float64 {
	return c.im
}

// Equal reports whether both components of c and o are within Tolerance.
func (c Complex) Equal(o Complex) bool {
	return c.EqualWithin(o, Tolerance)
}

// EqualWithin reports whether both components differ by at most tol.
func (c Complex) EqualWithin(o Complex, tol float64) bool {
	return ApproxEqual(c.re, o.re, tol) && ApproxEqual(c.im, o.im, tol)
}

// IsNaN reports whether either component is NaN.
func (c Complex) IsNaN() bool {
	return math.IsNaN(c.re) || math.IsNaN(c.im)
}

// IsInf reports whether either component is infinite.
func (c Complex) IsInf() bool {
	return math.IsInf(c.re, 0) || math.IsInf(c.im, 0)
}

// Hash returns a hash of the raw component bits.
//
// Hash is NOT consistent with Equal: 2.0+3.4i and (20*0.1)+(34*0.1)i are
// Equal but hash differently because their bit patterns differ.
func (c Complex) Hash() uint64 {
	return 31*floatHash(c.re) + floatHash(c.im)
}

func floatHash(x float64) uint64 {
	bits := math.Float64bits(x)
	return bits ^ (bits >> 32)
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func radiansToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

package complexnum

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns c in Go's complex literal style, e.g. "(2+3.4i)".
func (c Complex) String() string {
	return "(" + c.Cartesian() + ")"
}

// Format implements fmt.Formatter.
//
// %v and %s print like String, %+v prints the named fields and %#v prints a Go
// expression. The float verbs %e %E %f %F %g %G apply width, precision and
// flags to each component.
func (c Complex) Format(fs fmt.State, verb rune) {
	prec, ok := fs.Precision()
	if !ok {
		prec = -1
	}
	width, ok := fs.Width()
	if !ok {
		width = -1
	}

	switch verb {
	case 's':
		fmt.Fprint(fs, c.String())
	case 'v':
		if fs.Flag('#') {
			fmt.Fprintf(fs, "complexnum.FromCartesian(%#v, %#v)", c.re, c.im)
			return
		}
		if fs.Flag('+') {
			fmt.Fprintf(fs, "{Real:%v, Imaginary:%v}", c.re, c.im)
			return
		}
		if prec < 0 && width < 0 {
			fmt.Fprint(fs, c.String())
			return
		}
		verb = 'g'
		fallthrough
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fre := verbString(fs, verb, prec, width, false)
		fim := verbString(fs, verb, prec, width, true)
		fmt.Fprintf(fs, "("+fre+fim+"i)", c.re, c.im)
	default:
		fmt.Fprintf(fs, "%%!%c(complexnum.Complex=%s)", verb, c.String())
	}
}

// verbString rebuilds a float verb carrying the caller's flags.
func verbString(fs fmt.State, verb rune, prec, width int, wantPlus bool) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, f := range "0+- " {
		if fs.Flag(int(f)) || (f == '+' && wantPlus) {
			b.WriteByte(byte(f))
		}
	}
	if width >= 0 {
		b.WriteString(strconv.Itoa(width))
	}
	if prec >= 0 {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(prec))
	}
	b.WriteRune(verb)
	return b.String()
}

// Cartesian returns c as "re±imi" without parentheses, e.g. "2+3.4i".
func (c Complex) Cartesian() string {
	return formatFloat(c.re) + signed(c.im) + "i"
}

// PolarDegree returns c as "r∠φ°" with φ in degrees.
func (c Complex) PolarDegree() string {
	return formatFloat(c.R()) + "∠" + formatFloat(c.PhiInDegree()) + "°"
}

// PolarRadian returns c as "r∠φ rad" with φ in radians.
func (c Complex) PolarRadian() string {
	return formatFloat(c.R()) + "∠" + formatFloat(c.PhiInRadian()) + " rad"
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func signed(x float64) string {
	s := formatFloat(x)
	if s[0] != '-' && s[0] != '+' {
		s = "+" + s
	}
	return s
}

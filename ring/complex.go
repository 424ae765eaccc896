package ring

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// ErrUnbalancedBracket reports a bracketed coefficient whose closing
// parenthesis is missing.
var ErrUnbalancedBracket = errors.New("unbalanced bracket")

// Complex is the complex128 coefficient domain.
type Complex struct{}

func (Complex) Zero() complex128 { return 0 }
func (Complex) One() complex128 { return 1 }
func (Complex) FromUint64(v uint64) complex128 { return complex(float64(v), 0) }

func (Complex) Add(a, b complex128) complex128 { return a + b }
func (Complex) Sub(a, b complex128) complex128 { return a - b }
func (Complex) Mul(a, b complex128) complex128 { return a * b }
func (Complex) Div(a, b complex128) complex128 { return a / b }
func (Complex) Neg(a complex128) complex128 { return -a }

func (Complex) Pow(base complex128, exp uint64) complex128 {
	return cmplx.Pow(base, complex(float64(exp), 0))
}

func (Complex) IsZero(a complex128) bool { return a == 0 }
func (Complex) Equal(a, b complex128) bool { return a == b }

// LiteralPattern accepts a parenthesized complex literal such as "(3+2i)",
// a bare real, or a bare imaginary like "2i". The closing parenthesis is
// optional in the pattern so that an unbalanced bracket reaches
// ParseLiteral and fails with a descriptive error.
func (Complex) LiteralPattern() string {
	return `\((?:[^()]*)\)?|\d+(?:\.\d*)?i?`
}

func (Complex) ParseLiteral(s string) (complex128, error) {
	if strings.HasPrefix(s, "(") {
		if !strings.HasSuffix(s, ")") {
			return 0, fmt.Errorf("%w: %q", ErrUnbalancedBracket, s)
		}

		s = s[1 : len(s)-1]
	}

	return strconv.ParseComplex(s, 128)
}

// FormatCoefficient collapses to a bare real or a bare imaginary form when
// one part is exactly zero; otherwise the full parenthesized form is used.
// A full complex value carries no sign of its own, so non-leading terms are
// always joined with " + ".
func (Complex) FormatCoefficient(b *strings.Builder, c complex128, leading, constant bool, format Format) {
	re, im := real(c), imag(c)

	switch {
	case im == 0:
		writeSign(b, re < 0, leading)

		abs := math.Abs(re)
		if abs != 1 || constant {
			b.WriteString(strconv.FormatFloat(abs, 'f', -1, 64))
		}
	case re == 0:
		writeSign(b, im < 0, leading)

		// The unit is kept ("1i", not "i") so the output stays a valid
		// literal for ParseLiteral.
		b.WriteString(strconv.FormatFloat(math.Abs(im), 'f', -1, 64))
		b.WriteString("i")
		if !constant {
			b.WriteString(mulMarker(format))
		}
	default:
		if !leading {
			b.WriteString(" + ")
		}

		b.WriteString(strconv.FormatComplex(c, 'f', -1, 128))
		if !constant {
			b.WriteString(mulMarker(format))
		}
	}
}

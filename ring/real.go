package ring

import (
	"math"
	"strconv"
	"strings"
)

// Real is the float64 coefficient domain.
type Real struct{}

func (Real) Zero() float64 { return 0 }
func (Real) One() float64 { return 1 }
func (Real) FromUint64(v uint64) float64 { return float64(v) }

func (Real) Add(a, b float64) float64 { return a + b }
func (Real) Sub(a, b float64) float64 { return a - b }
func (Real) Mul(a, b float64) float64 { return a * b }
func (Real) Div(a, b float64) float64 { return a / b }
func (Real) Neg(a float64) float64 { return -a }

func (Real) Pow(base float64, exp uint64) float64 {
	return math.Pow(base, float64(exp))
}

func (Real) IsZero(a float64) bool { return a == 0 }
func (Real) Equal(a, b float64) bool { return a == b }

func (Real) LiteralPattern() string { return `\d+(?:\.\d*)?` }

func (Real) ParseLiteral(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// FormatCoefficient renders signed decimals: the sign is split off and the
// magnitude is elided when it is exactly one, except on the constant term.
func (Real) FormatCoefficient(b *strings.Builder, c float64, leading, constant bool, _ Format) {
	writeSign(b, c < 0, leading)

	abs := math.Abs(c)
	if abs != 1 || constant {
		b.WriteString(strconv.FormatFloat(abs, 'f', -1, 64))
	}
}

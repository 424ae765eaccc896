package ring

import (
	"math/big"
	"strings"

	"github.com/ALTree/bigfloat"
)

// floatPrec is the mantissa precision used for parsed and derived values.
const floatPrec = 128

// BigFloat is the arbitrary-precision floating-point coefficient domain.
type BigFloat struct{}

func (BigFloat) Zero() *big.Float { return newFloat() }
func (BigFloat) One() *big.Float { return newFloat().SetInt64(1) }
func (BigFloat) FromUint64(v uint64) *big.Float { return newFloat().SetUint64(v) }

func newFloat() *big.Float { return new(big.Float).SetPrec(floatPrec) }

func (BigFloat) Add(a, b *big.Float) *big.Float { return newFloat().Add(a, b) }
func (BigFloat) Sub(a, b *big.Float) *big.Float { return newFloat().Sub(a, b) }
func (BigFloat) Mul(a, b *big.Float) *big.Float { return newFloat().Mul(a, b) }
func (BigFloat) Div(a, b *big.Float) *big.Float { return newFloat().Quo(a, b) }
func (BigFloat) Neg(a *big.Float) *big.Float { return newFloat().Neg(a) }

// Pow uses bigfloat.Pow for positive bases; bigfloat computes z**w as
// exp(w*log(z)) and therefore cannot take a negative base, for which the
// generic square-and-multiply is used instead.
func (r BigFloat) Pow(base *big.Float, exp uint64) *big.Float {
	if base.Sign() > 0 {
		return bigfloat.Pow(base, newFloat().SetUint64(exp))
	}

	return powUint[*big.Float](r, base, exp)
}

func (BigFloat) IsZero(a *big.Float) bool { return a.Sign() == 0 }
func (BigFloat) Equal(a, b *big.Float) bool { return a.Cmp(b) == 0 }

func (BigFloat) LiteralPattern() string { return `\d+(?:\.\d*)?` }

func (BigFloat) ParseLiteral(s string) (*big.Float, error) {
	v, _, err := big.ParseFloat(s, 10, floatPrec, big.ToNearestEven)
	return v, err
}

func (BigFloat) FormatCoefficient(b *strings.Builder, c *big.Float, leading, constant bool, _ Format) {
	writeSign(b, c.Sign() < 0, leading)

	abs := newFloat().Abs(c)
	if abs.Cmp(big.NewFloat(1)) != 0 || constant {
		b.WriteString(abs.Text('g', -1))
	}
}

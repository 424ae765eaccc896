package ring

import (
	"fmt"
	"math/big"
	"strings"
)

// Rat is the exact rational coefficient domain.
type Rat struct{}

func (Rat) Zero() *big.Rat { return new(big.Rat) }
func (Rat) One() *big.Rat { return big.NewRat(1, 1) }
func (Rat) FromUint64(v uint64) *big.Rat { return new(big.Rat).SetInt(new(big.Int).SetUint64(v)) }

func (Rat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (Rat) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, new(big.Rat).Inv(b)) }
func (Rat) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

func (r Rat) Pow(base *big.Rat, exp uint64) *big.Rat {
	return powUint[*big.Rat](r, base, exp)
}

func (Rat) IsZero(a *big.Rat) bool { return a.Sign() == 0 }
func (Rat) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

// LiteralPattern accepts "3", "3/4" and decimal forms like "0.75".
func (Rat) LiteralPattern() string { return `\d+(?:\.\d+)?(?:/\d+)?` }

func (Rat) ParseLiteral(s string) (*big.Rat, error) {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("not a rational literal: %q", s)
	}

	return v, nil
}

// FormatCoefficient renders p/q followed by a multiplication marker, or
// \frac{p}{q}\cdot in the Latex dialect. The marker is dropped on the
// constant term where no indeterminate follows.
func (Rat) FormatCoefficient(b *strings.Builder, c *big.Rat, leading, constant bool, format Format) {
	writeSign(b, c.Sign() < 0, leading)

	abs := new(big.Rat).Abs(c)
	if abs.Cmp(big.NewRat(1, 1)) == 0 && !constant {
		return
	}

	num, den := abs.Num(), abs.Denom()
	if format == Latex {
		fmt.Fprintf(b, `\frac{%s}{%s}`, num, den)
	} else {
		fmt.Fprintf(b, "%s/%s", num, den)
	}

	if !constant {
		b.WriteString(mulMarker(format))
	}
}

package ring

import (
	"fmt"
	"math/big"
	"strings"
)

// BigInt is the arbitrary-precision integer coefficient domain. Division is
// truncated integer division, as in math/big.
type BigInt struct{}

func (BigInt) Zero() *big.Int { return new(big.Int) }
func (BigInt) One() *big.Int { return big.NewInt(1) }
func (BigInt) FromUint64(v uint64) *big.Int { return new(big.Int).SetUint64(v) }

func (BigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (BigInt) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (BigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func (BigInt) Div(a, b *big.Int) *big.Int { return new(big.Int).Quo(a, b) }
func (BigInt) Neg(a *big.Int) *big.Int { return new(big.Int).Neg(a) }

func (BigInt) Pow(base *big.Int, exp uint64) *big.Int {
	return new(big.Int).Exp(base, new(big.Int).SetUint64(exp), nil)
}

func (BigInt) IsZero(a *big.Int) bool { return a.Sign() == 0 }
func (BigInt) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }

func (BigInt) LiteralPattern() string { return `\d+` }

func (BigInt) ParseLiteral(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("not an integer literal: %q", s)
	}

	return v, nil
}

func (BigInt) FormatCoefficient(b *strings.Builder, c *big.Int, leading, constant bool, _ Format) {
	writeSign(b, c.Sign() < 0, leading)

	abs := new(big.Int).Abs(c)
	if abs.Cmp(big.NewInt(1)) != 0 || constant {
		b.WriteString(abs.String())
	}
}

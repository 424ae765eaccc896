package ring

import (
	"fmt"
	"math/big"
	"strings"

	"lukechampine.com/uint128"
)

// Uint128 is the ring of unsigned 128-bit integers, Z/2^128. All
// operations wrap, so a + Neg(a) = 0 holds for every element.
type Uint128 struct{}

func (Uint128) Zero() uint128.Uint128 { return uint128.Zero }
func (Uint128) One() uint128.Uint128 { return uint128.From64(1) }
func (Uint128) FromUint64(v uint64) uint128.Uint128 { return uint128.From64(v) }

func (Uint128) Add(a, b uint128.Uint128) uint128.Uint128 { return a.AddWrap(b) }
func (Uint128) Sub(a, b uint128.Uint128) uint128.Uint128 { return a.SubWrap(b) }
func (Uint128) Mul(a, b uint128.Uint128) uint128.Uint128 { return a.MulWrap(b) }
func (Uint128) Div(a, b uint128.Uint128) uint128.Uint128 { return a.Div(b) }
func (Uint128) Neg(a uint128.Uint128) uint128.Uint128 { return uint128.Zero.SubWrap(a) }

func (r Uint128) Pow(base uint128.Uint128, exp uint64) uint128.Uint128 {
	return powUint[uint128.Uint128](r, base, exp)
}

func (Uint128) IsZero(a uint128.Uint128) bool { return a.IsZero() }
func (Uint128) Equal(a, b uint128.Uint128) bool { return a.Equals(b) }

func (Uint128) LiteralPattern() string { return `\d+` }

func (Uint128) ParseLiteral(s string) (uint128.Uint128, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 || v.BitLen() > 128 {
		return uint128.Zero, fmt.Errorf("not a 128-bit unsigned literal: %q", s)
	}

	return uint128.FromBig(v), nil
}

// FormatCoefficient uses the unsigned strategy: terms are always joined
// with " + " and a coefficient of one is elided outside the constant term.
func (Uint128) FormatCoefficient(b *strings.Builder, c uint128.Uint128, leading, constant bool, _ Format) {
	if !leading {
		b.WriteString(" + ")
	}

	if !c.Equals64(1) || constant {
		b.WriteString(c.String())
	}
}

package ring

import (
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Fr is the BN254 scalar-field coefficient domain.
type Fr struct{}

func (Fr) Zero() fr.Element { return fr.Element{} }

func (Fr) One() fr.Element {
	var e fr.Element
	e.SetOne()

	return e
}

func (Fr) FromUint64(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)

	return e
}

func (Fr) Add(a, b fr.Element) fr.Element {
	var c fr.Element
	c.Add(&a, &b)

	return c
}

func (Fr) Sub(a, b fr.Element) fr.Element {
	var c fr.Element
	c.Sub(&a, &b)

	return c
}

func (Fr) Mul(a, b fr.Element) fr.Element {
	var c fr.Element
	c.Mul(&a, &b)

	return c
}

func (Fr) Div(a, b fr.Element) fr.Element {
	var c fr.Element
	c.Div(&a, &b)

	return c
}

func (Fr) Neg(a fr.Element) fr.Element {
	var c fr.Element
	c.Neg(&a)

	return c
}

func (Fr) Pow(base fr.Element, exp uint64) fr.Element {
	var c fr.Element
	c.Exp(base, new(big.Int).SetUint64(exp))

	return c
}

func (Fr) IsZero(a fr.Element) bool { return a.IsZero() }
func (Fr) Equal(a, b fr.Element) bool { return a.Equal(&b) }

func (Fr) LiteralPattern() string { return `\d+` }

func (Fr) ParseLiteral(s string) (fr.Element, error) {
	var e fr.Element
	if _, err := e.SetString(s); err != nil {
		return fr.Element{}, err
	}

	return e, nil
}

func (Fr) FormatCoefficient(b *strings.Builder, c fr.Element, leading, constant bool, _ Format) {
	if !leading {
		b.WriteString(" + ")
	}

	if !c.IsOne() || constant {
		b.WriteString(c.String())
	}
}

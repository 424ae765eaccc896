// Package ring provides the coefficient domains a polynomial can be
// instantiated over: plain floats, arbitrary-precision integers, rationals,
// complex numbers, and a few finite fields.
package ring

import "strings"

// Format selects the dialect used when rendering a polynomial.
type Format int

const (
	// Standard writes powers with a caret, e.g. "x^2".
	Standard Format = iota
	// Latex writes powers with a caret and curly braces, e.g. "x^{2}".
	Latex
	// Concise omits the caret entirely, e.g. "x2".
	Concise
)

// Ring is the capability set a coefficient domain must provide. A domain is
// a stateless (or cheaply shared) value whose methods never mutate their
// operands; pointer-based domains must return fresh values.
type Ring[T any] interface {
	Zero() T
	One() T
	// FromUint64 injects a small natural into the domain. Modular domains
	// reduce it.
	FromUint64(v uint64) T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	// Div returns a/b. What happens for a zero b is the domain's business:
	// exact domains panic, floating-point domains produce infinities.
	Div(a, b T) T
	Neg(a T) T
	Pow(base T, exp uint64) T

	IsZero(a T) bool
	Equal(a, b T) bool
}

// Literal is the optional text-literal capability a domain supplies so that
// polynomials over it can be parsed from strings.
type Literal[T any] interface {
	// LiteralPattern returns the regexp fragment matching one unsigned
	// coefficient literal of this domain. It must not contain capturing
	// groups.
	LiteralPattern() string
	// ParseLiteral converts a substring matched by LiteralPattern.
	ParseLiteral(s string) (T, error)
}

// LiteralRing is satisfied by domains that support both arithmetic and
// literal parsing.
type LiteralRing[T any] interface {
	Ring[T]
	Literal[T]
}

// Formatter is the optional rendering capability of a domain. The strategy
// owns sign handling, elision of a coefficient equal to one, and any
// bracketing or multiplication marker the domain needs; the renderer only
// appends the indeterminate and the power afterwards.
type Formatter[T any] interface {
	// FormatCoefficient writes the coefficient c into b. leading reports
	// whether this is the first rendered (highest-power) term, constant
	// whether it is the power-zero term.
	FormatCoefficient(b *strings.Builder, c T, leading, constant bool, format Format)
}

// writeSign emits the leading minus or the separator between terms.
func writeSign(b *strings.Builder, negative, leading bool) {
	switch {
	case leading && negative:
		b.WriteString("- ")
	case !leading && negative:
		b.WriteString(" - ")
	case !leading:
		b.WriteString(" + ")
	}
}

// mulMarker is the marker between a composite coefficient and the
// indeterminate.
func mulMarker(format Format) string {
	if format == Latex {
		return `\cdot `
	}

	return "*"
}

// powUint is square-and-multiply exponentiation expressed over a domain's
// own operations.
// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func powUint[T any](r Ring[T], base T, exp uint64) T {
	x := r.One()
	for exp > 0 {
		if exp%2 == 1 {
			x = r.Mul(x, base)
		}

		base = r.Mul(base, base)
		exp /= 2
	}

	return x
}

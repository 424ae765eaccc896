// Package poly implements univariate polynomials over a generic coefficient
// domain: construction, coefficient access, Horner evaluation, derivatives,
// the four arithmetic operations including Euclidean long division, string
// parsing, and multi-dialect string rendering.
//
// Coefficients are stored sparsely: a term slice sorted by ascending power
// in which no coefficient is ever the domain's zero. Set is the sole
// mutation primitive and removes an entry instead of storing a zero, which
// keeps Degree and IsZero correct by simple inspection.
package poly

import (
	"sort"

	"github.com/jonathanmweiss/go-poly/ring"
)

type term[T any] struct {
	power uint
	coeff T
}

// Polynomial is a univariate polynomial with coefficients in the domain R.
// The zero value is not usable; construct with New or FromCoefficients.
type Polynomial[T any] struct {
	ring  ring.Ring[T]
	terms []term[T] // ascending power, no zero coefficients
}

// New returns the zero polynomial over the given domain.
func New[T any](r ring.Ring[T]) *Polynomial[T] {
	return &Polynomial[T]{ring: r}
}

// FromCoefficients builds a polynomial from a dense coefficient slice
// ordered from the highest power down to the constant term. Zero entries
// are dropped. (e.g. [1, 1, -2] is x^2 + x - 2)
func FromCoefficients[T any](r ring.Ring[T], coeffs []T) *Polynomial[T] {
	p := New(r)
	for i, c := range coeffs {
		p.Set(uint(len(coeffs)-1-i), c)
	}

	return p
}

// Ring returns the coefficient domain of p.
func (p *Polynomial[T]) Ring() ring.Ring[T] { return p.ring }

// index locates power in the term slice via binary search.
func (p *Polynomial[T]) index(power uint) (int, bool) {
	i := sort.Search(len(p.terms), func(j int) bool { return p.terms[j].power >= power })
	return i, i < len(p.terms) && p.terms[i].power == power
}

// Set stores the coefficient of x^power. A zero coefficient removes the
// term instead.
func (p *Polynomial[T]) Set(power uint, c T) {
	i, ok := p.index(power)

	if p.ring.IsZero(c) {
		if ok {
			p.terms = append(p.terms[:i], p.terms[i+1:]...)
		}

		return
	}

	if ok {
		p.terms[i].coeff = c
		return
	}

	p.terms = append(p.terms, term[T]{})
	copy(p.terms[i+1:], p.terms[i:])
	p.terms[i] = term[T]{power: power, coeff: c}
}

// Coefficient returns the coefficient of x^power, or the domain's zero when
// the term is absent. It never fails.
func (p *Polynomial[T]) Coefficient(power uint) T {
	if i, ok := p.index(power); ok {
		return p.terms[i].coeff
	}

	return p.ring.Zero()
}

// AddAt adds c to the coefficient of x^power.
func (p *Polynomial[T]) AddAt(power uint, c T) {
	p.Set(power, p.ring.Add(p.Coefficient(power), c))
}

// SubAt subtracts c from the coefficient of x^power.
func (p *Polynomial[T]) SubAt(power uint, c T) {
	p.Set(power, p.ring.Sub(p.Coefficient(power), c))
}

// MulAt multiplies the coefficient of x^power by c.
func (p *Polynomial[T]) MulAt(power uint, c T) {
	p.Set(power, p.ring.Mul(p.Coefficient(power), c))
}

// DivAt divides the coefficient of x^power by c. Division by the domain's
// zero behaves however the domain's division does.
func (p *Polynomial[T]) DivAt(power uint, c T) {
	p.Set(power, p.ring.Div(p.Coefficient(power), c))
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial[T]) IsZero() bool { return len(p.terms) == 0 }

// Degree returns the highest power with a nonzero coefficient. The second
// result is false for the zero polynomial, whose degree is undefined; a
// nonzero constant has degree 0.
func (p *Polynomial[T]) Degree() (uint, bool) {
	if len(p.terms) == 0 {
		return 0, false
	}

	return p.terms[len(p.terms)-1].power, true
}

// Len returns the number of stored terms.
func (p *Polynomial[T]) Len() int { return len(p.terms) }

// Clear removes every term, leaving the zero polynomial.
func (p *Polynomial[T]) Clear() { p.terms = p.terms[:0] }

// Clone returns a deep copy of p.
func (p *Polynomial[T]) Clone() *Polynomial[T] {
	q := &Polynomial[T]{ring: p.ring, terms: make([]term[T], len(p.terms))}
	copy(q.terms, p.terms)

	return q
}

// Equal reports whether p and q hold identical terms.
func (p *Polynomial[T]) Equal(q *Polynomial[T]) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}

	for i := range p.terms {
		if p.terms[i].power != q.terms[i].power {
			return false
		}

		if !p.ring.Equal(p.terms[i].coeff, q.terms[i].coeff) {
			return false
		}
	}

	return true
}

// Coefficients returns the dense coefficient slice, starting at the first
// nonzero term at or below the degree and running down to the constant
// term, with zeros re-inserted for skipped powers. The zero polynomial
// yields an empty slice, and FromCoefficients(r, p.Coefficients()) always
// reproduces p.
func (p *Polynomial[T]) Coefficients() []T {
	if len(p.terms) == 0 {
		return nil
	}

	degree := p.terms[len(p.terms)-1].power
	result := make([]T, 0, degree+1)

	last := degree + 1
	for i := len(p.terms) - 1; i >= 0; i-- {
		for gap := last - p.terms[i].power; gap > 1; gap-- {
			result = append(result, p.ring.Zero())
		}

		result = append(result, p.terms[i].coeff)
		last = p.terms[i].power
	}

	// Trailing zeros below the lowest stored term.
	for ; last > 0; last-- {
		result = append(result, p.ring.Zero())
	}

	return result
}

// Evaluate computes p(x) by Horner's method over the stored terms only,
// raising x to the gap between consecutive powers so that zero terms are
// never materialized.
func (p *Polynomial[T]) Evaluate(x T) T {
	result := p.ring.Zero()
	if len(p.terms) == 0 {
		return result
	}

	last := p.terms[len(p.terms)-1].power
	for i := len(p.terms) - 1; i >= 0; i-- {
		t := p.terms[i]
		if gap := last - t.power; gap > 0 {
			result = p.ring.Mul(result, p.ring.Pow(x, uint64(gap)))
		}

		result = p.ring.Add(result, t.coeff)
		last = t.power
	}

	// The accumulator still carries the lowest stored power.
	if last > 0 {
		result = p.ring.Mul(result, p.ring.Pow(x, uint64(last)))
	}

	return result
}

// Derivative returns dp/dx: every term c*x^n with n >= 1 contributes
// n*c*x^(n-1), and the constant term vanishes.
func (p *Polynomial[T]) Derivative() *Polynomial[T] {
	d := New(p.ring)
	for _, t := range p.terms {
		if t.power == 0 {
			continue
		}

		d.Set(t.power-1, p.ring.Mul(t.coeff, p.ring.FromUint64(uint64(t.power))))
	}

	return d
}

// compact re-establishes the no-zero-coefficients invariant after a bulk
// in-place mutation.
func (p *Polynomial[T]) compact() {
	kept := p.terms[:0]
	for _, t := range p.terms {
		if !p.ring.IsZero(t.coeff) {
			kept = append(kept, t)
		}
	}

	p.terms = kept
}

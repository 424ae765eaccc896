package poly

// DivisionResult bundles the quotient and remainder of a polynomial
// division, so that numerator = Quotient*divisor + Remainder.
type DivisionResult[T any] struct {
	Quotient  *Polynomial[T]
	Remainder *Polynomial[T]
}

// Div divides p by d using polynomial long division and returns the
// quotient and remainder. It panics when d is the zero polynomial; p is
// left untouched.
// https://en.wikipedia.org/wiki/Polynomial_long_division#Pseudocode
func (p *Polynomial[T]) Div(d *Polynomial[T]) DivisionResult[T] {
	rem := p.Clone()
	q := divideInPlace(rem, d)

	return DivisionResult[T]{Quotient: q, Remainder: rem}
}

// Rem returns the remainder of p divided by d. It panics when d is the zero
// polynomial.
func (p *Polynomial[T]) Rem(d *Polynomial[T]) *Polynomial[T] {
	rem := p.Clone()
	divideInPlace(rem, d)

	return rem
}

// divideInPlace reduces rem below the degree of d, returning the quotient.
// Each round cancels the leading term of rem, so the degree strictly
// decreases and the loop terminates.
func divideInPlace[T any](rem, d *Polynomial[T]) *Polynomial[T] {
	if d.IsZero() {
		panic("poly: cannot divide by the zero polynomial")
	}

	q := New(rem.ring)
	dd, _ := d.Degree()

	for !rem.IsZero() {
		rd, _ := rem.Degree()
		if rd < dd {
			break
		}

		// t = leadingTerm(rem) / leadingTerm(d)
		t := New(rem.ring)
		t.Set(rd-dd, rem.ring.Div(rem.Coefficient(rd), d.Coefficient(dd)))

		q.AddInPlace(t)
		rem.SubInPlace(t.Mul(d))

		// The leading term cancels by construction; enforce it so that
		// floating-point rounding cannot stall the loop.
		rem.Set(rd, rem.ring.Zero())
	}

	return q
}

// DivScalarInPlace divides every coefficient by s. It panics when s is the
// domain's zero.
func (p *Polynomial[T]) DivScalarInPlace(s T) {
	if p.ring.IsZero(s) {
		panic("poly: cannot divide by zero")
	}

	for i := range p.terms {
		p.terms[i].coeff = p.ring.Div(p.terms[i].coeff, s)
	}

	p.compact()
}

// DivScalar returns p with every coefficient divided by s. It panics when s
// is the domain's zero.
func (p *Polynomial[T]) DivScalar(s T) *Polynomial[T] {
	quot := p.Clone()
	quot.DivScalarInPlace(s)

	return quot
}

// GCD returns a greatest common divisor of p and q by the Euclidean
// remainder loop. The result is determined up to a scalar factor; GCD of
// the zero polynomial with q is q.
func (p *Polynomial[T]) GCD(q *Polynomial[T]) *Polynomial[T] {
	a, b := p.Clone(), q.Clone()
	for !b.IsZero() {
		a, b = b, a.Rem(b)
	}

	return a
}

package poly

// AddInPlace adds q into p term by term.
func (p *Polynomial[T]) AddInPlace(q *Polynomial[T]) {
	for _, t := range q.terms {
		p.AddAt(t.power, t.coeff)
	}
}

// Add returns p + q.
func (p *Polynomial[T]) Add(q *Polynomial[T]) *Polynomial[T] {
	sum := p.Clone()
	sum.AddInPlace(q)

	return sum
}

// SubInPlace subtracts q from p term by term.
func (p *Polynomial[T]) SubInPlace(q *Polynomial[T]) {
	for _, t := range q.terms {
		p.SubAt(t.power, t.coeff)
	}
}

// Sub returns p - q.
func (p *Polynomial[T]) Sub(q *Polynomial[T]) *Polynomial[T] {
	diff := p.Clone()
	diff.SubInPlace(q)

	return diff
}

// Mul returns p * q by schoolbook convolution: every pair of terms
// (n, a), (m, b) accumulates a*b at power n+m. O(len(p)*len(q)).
func (p *Polynomial[T]) Mul(q *Polynomial[T]) *Polynomial[T] {
	prod := New(p.ring)
	for _, pt := range p.terms {
		for _, qt := range q.terms {
			prod.AddAt(pt.power+qt.power, p.ring.Mul(pt.coeff, qt.coeff))
		}
	}

	return prod
}

// MulScalarInPlace multiplies every coefficient by s. A zero scalar
// short-circuits to the zero polynomial so that no zero-valued entries are
// left behind.
func (p *Polynomial[T]) MulScalarInPlace(s T) {
	if p.ring.IsZero(s) {
		p.Clear()
		return
	}

	for i := range p.terms {
		p.terms[i].coeff = p.ring.Mul(p.terms[i].coeff, s)
	}

	p.compact()
}

// MulScalar returns p * s.
func (p *Polynomial[T]) MulScalar(s T) *Polynomial[T] {
	prod := p.Clone()
	prod.MulScalarInPlace(s)

	return prod
}

// AddScalar returns p + s, affecting only the constant term.
func (p *Polynomial[T]) AddScalar(s T) *Polynomial[T] {
	sum := p.Clone()
	sum.AddAt(0, s)

	return sum
}

// SubScalar returns p - s, affecting only the constant term.
func (p *Polynomial[T]) SubScalar(s T) *Polynomial[T] {
	diff := p.Clone()
	diff.SubAt(0, s)

	return diff
}

// Neg returns -p.
func (p *Polynomial[T]) Neg() *Polynomial[T] {
	return p.MulScalar(p.ring.Neg(p.ring.One()))
}

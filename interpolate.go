package poly

import (
	"errors"

	"github.com/jonathanmweiss/go-poly/ring"
)

var (
	// ErrPointsSizeMismatch reports xs and ys of different lengths.
	ErrPointsSizeMismatch = errors.New("poly: points size mismatch")
	// ErrNonUniqueXs reports a repeated x value among the sample points.
	ErrNonUniqueXs = errors.New("poly: non-unique x values")
)

// Interpolate returns the unique polynomial of degree below len(xs) passing
// through every (xs[i], ys[i]), by Lagrange's method. The domain must
// support exact division. O(n^2) in the number of points.
// https://en.wikipedia.org/wiki/Lagrange_polynomial
func Interpolate[T any](r ring.Ring[T], xs, ys []T) (*Polynomial[T], error) {
	if err := validatePoints(r, xs, ys); err != nil {
		return nil, err
	}

	result := New(r)
	if len(xs) == 0 {
		return result, nil
	}

	// m(x) = prod_i (x - x_i)
	m := New(r)
	m.Set(0, r.One())

	for _, x := range xs {
		mi := linearFactor(r, x)
		m = m.Mul(mi)
	}

	for i, x := range xs {
		// q_i(x) = m(x) / (x - x_i), an exact division.
		qi := m.Div(linearFactor(r, x)).Quotient

		// l_i = q_i / q_i(x_i), then weighted by y_i.
		qi.DivScalarInPlace(qi.Evaluate(x))
		qi.MulScalarInPlace(ys[i])

		result.AddInPlace(qi)
	}

	return result, nil
}

// linearFactor builds (x - x0).
func linearFactor[T any](r ring.Ring[T], x0 T) *Polynomial[T] {
	f := New(r)
	f.Set(1, r.One())
	f.Set(0, r.Neg(x0))

	return f
}

func validatePoints[T any](r ring.Ring[T], xs, ys []T) error {
	if len(xs) != len(ys) {
		return ErrPointsSizeMismatch
	}

	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if r.Equal(xs[i], xs[j]) {
				return ErrNonUniqueXs
			}
		}
	}

	return nil
}

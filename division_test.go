package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathanmweiss/go-poly/ring"
)

func TestDiv(t *testing.T) {
	a := assert.New(t)

	t.Run("quotientAndRemainder", func(t *testing.T) {
		n := FromCoefficients(ring.Real{}, []float64{-4, 12, -21, 19, 0})
		d := FromCoefficients(ring.Real{}, []float64{2, -3, 5})

		res := n.Div(d)
		a.Equal([]float64{-2, 3, -1}, res.Quotient.Coefficients())
		a.Equal([]float64{1, 5}, res.Remainder.Coefficients())

		// The numerator is untouched.
		a.Equal([]float64{-4, 12, -21, 19, 0}, n.Coefficients())
	})

	t.Run("exact", func(t *testing.T) {
		n := FromCoefficients(ring.Real{}, []float64{1, 4, -1, -3})
		d := FromCoefficients(ring.Real{}, []float64{1, 2, -3})

		res := n.Div(d)
		a.Equal([]float64{1, 2}, res.Quotient.Coefficients())
		a.Equal([]float64{-2, 3}, res.Remainder.Coefficients())
	})

	t.Run("numeratorBelowDenominator", func(t *testing.T) {
		n := FromCoefficients(ring.Real{}, []float64{1, 1})
		d := FromCoefficients(ring.Real{}, []float64{1, 0, 0})

		res := n.Div(d)
		a.True(res.Quotient.IsZero())
		a.True(res.Remainder.Equal(n))
	})

	t.Run("invariant", func(t *testing.T) {
		// n == q*d + r and deg(r) < deg(d) for every division.
		n := FromCoefficients(ring.Real{}, []float64{3, 0, -7, 2, 1, -4})
		d := FromCoefficients(ring.Real{}, []float64{2, -1, 1})

		res := n.Div(d)
		back := res.Quotient.Mul(d).Add(res.Remainder)
		a.True(back.Equal(n))

		if !res.Remainder.IsZero() {
			rd, _ := res.Remainder.Degree()
			dd, _ := d.Degree()
			a.Less(rd, dd)
		}
	})

	t.Run("byZeroPolynomialPanics", func(t *testing.T) {
		n := FromCoefficients(ring.Real{}, []float64{1, 2, -3})

		a.PanicsWithValue("poly: cannot divide by the zero polynomial", func() {
			n.Div(New[float64](ring.Real{}))
		})
	})
}

func TestDivOverPrimeField(t *testing.T) {
	a := assert.New(t)

	f, err := ring.NewMod(157)
	a.NoError(err)

	n := FromCoefficients[uint64](f, []uint64{1, 0, 3, 4, 99})
	d := FromCoefficients[uint64](f, []uint64{5, 1, 17})

	res := n.Div(d)
	back := res.Quotient.Mul(d).Add(res.Remainder)
	a.True(back.Equal(n))
}

func TestRem(t *testing.T) {
	a := assert.New(t)

	n := FromCoefficients(ring.Real{}, []float64{1, 4, -1, -3})
	d := FromCoefficients(ring.Real{}, []float64{1, 2, -3})

	a.Equal([]float64{-2, 3}, n.Rem(d).Coefficients())
}

func TestDivScalar(t *testing.T) {
	a := assert.New(t)

	t.Run("halves", func(t *testing.T) {
		p := FromCoefficients(ring.Real{}, []float64{1, 2, -3})
		a.Equal([]float64{0.5, 1, -1.5}, p.DivScalar(2).Coefficients())
	})

	t.Run("inPlace", func(t *testing.T) {
		p := FromCoefficients(ring.Real{}, []float64{2, 0, -4})
		p.DivScalarInPlace(2)
		a.Equal([]float64{1, 0, -2}, p.Coefficients())
	})

	t.Run("byZeroPanics", func(t *testing.T) {
		p := FromCoefficients(ring.Real{}, []float64{1, 2, -3})

		a.PanicsWithValue("poly: cannot divide by zero", func() {
			p.DivScalar(0)
		})
	})
}

func TestGCD(t *testing.T) {
	a := assert.New(t)

	t.Run("commonFactor", func(t *testing.T) {
		// gcd(x^2 - 1, x - 1) = x - 1
		p := FromCoefficients(ring.Real{}, []float64{1, 0, -1})
		q := FromCoefficients(ring.Real{}, []float64{1, -1})

		a.True(p.GCD(q).Equal(q))
	})

	t.Run("withZero", func(t *testing.T) {
		p := FromCoefficients(ring.Real{}, []float64{1, 2})
		zero := New[float64](ring.Real{})

		a.True(p.GCD(zero).Equal(p))
		a.True(zero.GCD(p).Equal(p))
	})

	t.Run("dividesBoth", func(t *testing.T) {
		f, err := ring.NewMod(157)
		a.NoError(err)

		p := FromCoefficients[uint64](f, []uint64{1, 3, 2}) // (x+1)(x+2)
		q := FromCoefficients[uint64](f, []uint64{1, 4, 3}) // (x+1)(x+3)

		g := p.GCD(q)
		a.True(p.Rem(g).IsZero())
		a.True(q.Rem(g).IsZero())
	})
}

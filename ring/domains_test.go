package ring

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"lukechampine.com/uint128"
)

func TestRealDomain(t *testing.T) {
	a := assert.New(t)

	r := Real{}

	a.Equal(float64(8), r.Pow(2, 3))
	a.Equal(float64(1), r.Pow(5, 0))
	a.True(r.IsZero(r.Zero()))

	v, err := r.ParseLiteral("2.125")
	a.NoError(err)
	a.Equal(2.125, v)
}

func TestBigIntDomain(t *testing.T) {
	a := assert.New(t)

	r := BigInt{}

	a.Zero(big.NewInt(6).Cmp(r.Mul(big.NewInt(2), big.NewInt(3))))
	a.Zero(big.NewInt(-2).Cmp(r.Div(big.NewInt(-7), big.NewInt(3)))) // truncated
	a.Zero(big.NewInt(1024).Cmp(r.Pow(big.NewInt(2), 10)))

	// Operations never mutate their operands.
	x := big.NewInt(5)
	r.Add(x, big.NewInt(1))
	a.Zero(big.NewInt(5).Cmp(x))

	_, err := r.ParseLiteral("12a")
	a.Error(err)
}

func TestRatDomain(t *testing.T) {
	a := assert.New(t)

	r := Rat{}

	sum := r.Add(big.NewRat(1, 2), big.NewRat(1, 3))
	a.Zero(big.NewRat(5, 6).Cmp(sum))

	quot := r.Div(big.NewRat(1, 2), big.NewRat(3, 4))
	a.Zero(big.NewRat(2, 3).Cmp(quot))

	pow := r.Pow(big.NewRat(2, 3), 2)
	a.Zero(big.NewRat(4, 9).Cmp(pow))

	v, err := r.ParseLiteral("3/4")
	a.NoError(err)
	a.Zero(big.NewRat(3, 4).Cmp(v))

	v, err = r.ParseLiteral("0.75")
	a.NoError(err)
	a.Zero(big.NewRat(3, 4).Cmp(v))
}

func TestComplexDomain(t *testing.T) {
	a := assert.New(t)

	r := Complex{}

	a.Equal(complex(0, 2), r.Mul(complex(1, 1), complex(1, 1)))
	a.True(r.IsZero(r.Sub(complex(3, 2), complex(3, 2))))

	t.Run("literals", func(t *testing.T) {
		v, err := r.ParseLiteral("(3+2i)")
		a.NoError(err)
		a.Equal(complex(3, 2), v)

		v, err = r.ParseLiteral("2i")
		a.NoError(err)
		a.Equal(complex(0, 2), v)

		_, err = r.ParseLiteral("(3+2i")
		a.ErrorIs(err, ErrUnbalancedBracket)
	})
}

func TestBigFloatDomain(t *testing.T) {
	a := assert.New(t)

	r := BigFloat{}

	t.Run("powPositiveBase", func(t *testing.T) {
		got := r.Pow(big.NewFloat(2), 10)

		diff := new(big.Float).Sub(got, big.NewFloat(1024))
		a.Negative(diff.Abs(diff).Cmp(big.NewFloat(1e-30)))
	})

	t.Run("powNegativeBase", func(t *testing.T) {
		got := r.Pow(big.NewFloat(-2), 3)
		a.Zero(big.NewFloat(-8).Cmp(got))
	})

	v, err := r.ParseLiteral("2.5")
	a.NoError(err)
	a.Zero(big.NewFloat(2.5).Cmp(v))
}

func TestUint128Domain(t *testing.T) {
	a := assert.New(t)

	r := Uint128{}

	x := r.FromUint64(1 << 40)
	sq := r.Mul(x, x) // 2^80, beyond uint64
	a.Equal(uint128.New(0, 1<<16), sq)

	a.Equal(x, r.Div(sq, x))
	a.True(r.IsZero(r.Add(x, r.Neg(x))))

	max := r.Neg(r.One()) // 2^128 - 1
	a.True(r.IsZero(r.Add(max, r.One())))
	a.Equal(max, r.Sub(r.Zero(), r.One()))
	a.Equal(r.One(), r.Mul(max, max))

	v, err := r.ParseLiteral("1208925819614629174706176") // 2^80
	a.NoError(err)
	a.Equal(sq, v)
}

func TestFrDomain(t *testing.T) {
	a := assert.New(t)

	r := Fr{}

	x := r.FromUint64(12345)
	a.True(r.Equal(r.One(), r.Div(x, x)))
	a.True(r.IsZero(r.Add(x, r.Neg(x))))
	a.True(r.Equal(r.FromUint64(12345*12345), r.Pow(x, 2)))

	v, err := r.ParseLiteral("42")
	a.NoError(err)
	a.True(r.Equal(r.FromUint64(42), v))
}

func TestFormatterSignHandling(t *testing.T) {
	a := assert.New(t)

	render := func(c float64, leading, constant bool) string {
		var b strings.Builder
		Real{}.FormatCoefficient(&b, c, leading, constant, Standard)
		return b.String()
	}

	a.Equal("2", render(2, true, false))
	a.Equal("- 2", render(-2, true, false))
	a.Equal(" + 2", render(2, false, false))
	a.Equal(" - 2", render(-2, false, false))

	// One is elided except on the constant term.
	a.Equal("", render(1, true, false))
	a.Equal(" + 1", render(1, false, true))
}

package ring

import (
	"errors"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	latring "github.com/tuneinsight/lattigo/v6/ring"
)

var (
	errPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	errNotPrime      = errors.New("modulus must be prime")
)

const maxPrimeBits = 63

// Mod is the prime-field coefficient domain of integers mod p, p a prime of
// at most 63 bits. All values are kept reduced.
type Mod struct {
	prime     uint64
	generator uint64
	factors   []uint64
}

// NewMod constructs the field mod prime. The prime is checked with a single
// Miller-Rabin base, which is exact for 64-bit inputs, and a multiplicative
// generator is located alongside the factorization of prime-1.
func NewMod(prime uint64) (*Mod, error) {
	if prime > (1 << maxPrimeBits) {
		return nil, errPrimeTooLarge
	}

	if !new(big.Int).SetUint64(prime).ProbablyPrime(1) {
		return nil, errNotPrime
	}

	g, factors, err := latring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, err
	}

	return &Mod{prime: prime, generator: g, factors: factors}, nil
}

// Prime returns the field modulus.
func (m *Mod) Prime() uint64 { return m.prime }

// Generator returns a multiplicative generator of the field.
func (m *Mod) Generator() uint64 { return m.generator }

func (m *Mod) Zero() uint64 { return 0 }
func (m *Mod) One() uint64 { return 1 }
func (m *Mod) FromUint64(v uint64) uint64 { return v % m.prime }

func (m *Mod) Add(a, b uint64) uint64 {
	tmp := a + b // cannot overflow, both operands are below 2^63
	if tmp >= m.prime {
		tmp -= m.prime
	}

	return tmp
}

func (m *Mod) Sub(a, b uint64) uint64 {
	if a < b {
		return m.prime - (b - a)
	}

	return a - b
}

func (m *Mod) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return modMul(a, b, m.prime)
}

func modMul(a, b, mod uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, mod)

	return rem
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (m *Mod) Pow(base, exp uint64) uint64 {
	x := uint64(1)
	for exp > 0 {
		if exp%2 == 1 {
			x = modMul(x, base, m.prime)
		}

		base = modMul(base, base, m.prime)
		exp /= 2
	}

	return x
}

// Inverse computes a^-1 by Fermat's little theorem: a^(p-2) * a = 1 (mod p).
func (m *Mod) Inverse(a uint64) uint64 {
	if a%m.prime == 0 {
		panic("zero has no inverse")
	}

	return m.Pow(a, m.prime-2)
}

func (m *Mod) Div(a, b uint64) uint64 { return m.Mul(a, m.Inverse(b)) }

func (m *Mod) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}

	return m.prime - a
}

func (m *Mod) IsZero(a uint64) bool { return a%m.prime == 0 }
func (m *Mod) Equal(a, b uint64) bool { return a%m.prime == b%m.prime }

func (m *Mod) LiteralPattern() string { return `\d+` }

func (m *Mod) ParseLiteral(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}

	return v % m.prime, nil
}

func (m *Mod) FormatCoefficient(b *strings.Builder, c uint64, leading, constant bool, _ Format) {
	if !leading {
		b.WriteString(" + ")
	}

	if c != 1 || constant {
		b.WriteString(strconv.FormatUint(c, 10))
	}
}

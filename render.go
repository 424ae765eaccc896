package poly

import (
	"fmt"
	"strings"

	"github.com/jonathanmweiss/go-poly/ring"
)

// Format re-exports the rendering dialect for callers of Render.
type Format = ring.Format

const (
	Standard = ring.Standard
	Latex    = ring.Latex
	Concise  = ring.Concise
)

// Render returns the polynomial as a string in the given dialect. Terms are
// visited from the highest power down; the domain's formatting strategy
// writes each coefficient (sign handling, elision of one, bracketing) and
// Render appends the indeterminate and power. The zero polynomial renders
// as "0".
func (p *Polynomial[T]) Render(format Format) string {
	if p.IsZero() {
		return "0"
	}

	strategy, ok := p.ring.(ring.Formatter[T])
	if !ok {
		strategy = plainFormatter[T]{}
	}

	degree := p.terms[len(p.terms)-1].power

	var b strings.Builder
	for i := len(p.terms) - 1; i >= 0; i-- {
		t := p.terms[i]
		strategy.FormatCoefficient(&b, t.coeff, t.power == degree, t.power == 0, format)

		switch {
		case t.power == 0:
		case t.power == 1:
			b.WriteString("x")
		case format == Latex:
			fmt.Fprintf(&b, "x^{%d}", t.power)
		case format == Concise:
			fmt.Fprintf(&b, "x%d", t.power)
		default:
			fmt.Fprintf(&b, "x^%d", t.power)
		}
	}

	return b.String()
}

// String renders the polynomial in the Standard dialect.
func (p *Polynomial[T]) String() string { return p.Render(Standard) }

// plainFormatter is the fallback for domains without a formatting strategy:
// every coefficient is printed with %v and terms are joined with " + ".
type plainFormatter[T any] struct{}

func (plainFormatter[T]) FormatCoefficient(b *strings.Builder, c T, leading, _ bool, _ Format) {
	if !leading {
		b.WriteString(" + ")
	}

	fmt.Fprintf(b, "%v", c)
}

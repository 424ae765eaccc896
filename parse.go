package poly

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathanmweiss/go-poly/ring"
)

var (
	// ErrInvalidFormat reports input that is not a well-formed polynomial.
	ErrInvalidFormat = errors.New("poly: invalid polynomial format")
	// ErrInvalidCoefficient reports a coefficient literal the domain could
	// not parse.
	ErrInvalidCoefficient = errors.New("poly: invalid coefficient")
)

// termPattern builds the term regexp around the domain's coefficient
// literal: an explicit sign, an optional coefficient, an optional "*", the
// optional indeterminate "x", and an optional power with an optional caret.
func termPattern(coefficient string) string {
	return `(?P<sign>[+-])[ \n]*(?P<coefficient>` + coefficient + `)?[ \n]*\*?[ \n]*(?P<variable>x)?(?:\^?(?P<power>\d+))?`
}

// Parse converts a term-delimited string such as "2x^2 + 3x - 1" into a
// polynomial over the given domain. Terms may repeat a power, in which case
// they sum. Whitespace between tokens is ignored, a "*" may separate the
// coefficient from the indeterminate, and the caret before a power is
// optional. Only "x" may be used as the indeterminate. The empty string
// parses to the zero polynomial.
//
// After scanning, the matched substrings are reconstructed and compared
// (whitespace-insensitively) with the input; any leftover characters fail
// the whole parse, and no partial polynomial is ever returned.
func Parse[T any](r ring.LiteralRing[T], input string) (*Polynomial[T], error) {
	p := New[T](r)

	s := strings.TrimSpace(input)
	if s == "" {
		return p, nil
	}

	// Every term carries an explicit sign; give the first one a "+" when
	// the input starts unsigned.
	if s[0] != '+' && s[0] != '-' {
		s = "+ " + s
	}

	re, err := regexp.Compile(termPattern(r.LiteralPattern()))
	if err != nil {
		return nil, fmt.Errorf("%w: bad coefficient pattern: %v", ErrInvalidFormat, err)
	}

	var (
		signIdx  = re.SubexpIndex("sign")
		coeffIdx = re.SubexpIndex("coefficient")
		varIdx   = re.SubexpIndex("variable")
		powIdx   = re.SubexpIndex("power")
	)

	var matched strings.Builder

	for _, m := range re.FindAllStringSubmatch(s, -1) {
		matched.WriteString(m[0])

		coeffStr, variable, powStr := m[coeffIdx], m[varIdx], m[powIdx]

		if coeffStr == "" && variable == "" {
			return nil, fmt.Errorf("%w: term %q has neither a coefficient nor the indeterminate",
				ErrInvalidFormat, strings.TrimSpace(m[0]))
		}

		var power uint
		switch {
		case powStr != "":
			v, err := strconv.ParseUint(powStr, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: bad power %q", ErrInvalidFormat, powStr)
			}

			power = uint(v)
		case variable != "":
			power = 1
		}

		coeff := r.One()
		if coeffStr != "" {
			coeff, err = r.ParseLiteral(coeffStr)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %w", ErrInvalidCoefficient, coeffStr, err)
			}
		}

		if m[signIdx] == "-" {
			coeff = r.Neg(coeff)
		}

		// AddAt, not Set: repeated powers in the input sum together.
		p.AddAt(power, coeff)
	}

	if stripSpace(matched.String()) != stripSpace(s) {
		return nil, fmt.Errorf("%w: unmatched input in %q", ErrInvalidFormat, input)
	}

	return p, nil
}

func stripSpace(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "\n", "")
}

// SPDX-License-Identifier: MIT

// Package value - canonical text.
//
// Rules:
//   - integer coefficients print as digits, terminating decimals as exact
//     decimals ("2.5a"), other rationals in parentheses ("(1/3)a"); a lone
//     constant prints without parentheses ("1/3");
//   - coefficient 1 is omitted, -1 becomes a leading "-";
//   - exponents above 1 print as superscripts ("b²");
//   - single-letter factors are juxtaposed ("2ab"), any multi-letter name
//     switches the whole monomial to "·" joins ("x·rate");
//   - terms are joined with " + " / " - ".

package value

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

const factorSep = "·"

var superscripts = [...]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

func itoa(n int) string { return strconv.Itoa(n) }

// numberText renders r as digits or as an exact decimal; non-terminating
// values fall back to "p/q".
func numberText(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	if places, ok := decimalPlaces(r); ok {
		return r.FloatString(places)
	}

	return r.RatString()
}

// coeffText renders a non-negative coefficient placed in front of a monomial.
func coeffText(r *big.Rat) string {
	if r.IsInt() || terminating(r) {
		return numberText(r)
	}

	return "(" + r.RatString() + ")"
}

// superscript renders n with Unicode superscript digits.
func superscript(n int) string {
	var b strings.Builder
	for _, d := range strconv.Itoa(n) {
		b.WriteString(superscripts[d-'0'])
	}

	return b.String()
}

// String renders the monomial; the constant monomial renders as "1".
func (m Monomial) String() string {
	if len(m) == 0 {
		return "1"
	}
	sep := ""
	for _, f := range m {
		if utf8.RuneCountInString(f.Name) > 1 {
			sep = factorSep
			break
		}
	}
	parts := make([]string, len(m))
	for i, f := range m {
		parts[i] = f.Name
		if f.Exp > 1 {
			parts[i] += superscript(f.Exp)
		}
	}

	return strings.Join(parts, sep)
}

// termText renders |t| (sign handled by the caller). A raw zero term is "0".
func termText(abs *big.Rat, mono Monomial) string {
	if mono.IsConstant() || abs.Sign() == 0 {
		return numberText(abs)
	}
	if abs.Cmp(big.NewRat(1, 1)) == 0 {
		return mono.String()
	}
	c := coeffText(abs)
	if sep := mono.String(); strings.Contains(sep, factorSep) {
		return c + factorSep + sep
	}

	return c + mono.String()
}

// termsText joins terms with explicit signs.
func termsText(terms []Term) string {
	if len(terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range terms {
		c := t.coeff()
		abs := new(big.Rat).Abs(c)
		neg := c.Sign() < 0
		switch {
		case i == 0 && neg:
			b.WriteString("-")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		b.WriteString(termText(abs, t.Mono))
	}

	return b.String()
}

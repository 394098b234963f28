// SPDX-License-Identifier: MIT

// Package value - canonicalization (term collection) and canonical equality.
//
// Simplify contract:
//   - Number: returned unchanged (big.Rat is always in lowest terms).
//   - Rational: a terminating value (integral included) collapses to a
//     Number, so every numeric value has exactly one canonical variant.
//   - Symbol: returned unchanged.
//   - Expression: terms are grouped by monomial, coefficients summed, zero
//     terms dropped, survivors ordered (see Monomial.compare; constant last).
//     An empty sum is Number 0, a lone constant is numeric, a lone 1·x is
//     Symbol x.
//   - Idempotent: Simplify(Simplify(v)) == Simplify(v).

package value

import (
	"math/big"
	"slices"
)

// Simplify returns the canonical form of v.
func Simplify(v Value) Value {
	switch x := v.(type) {
	case nil:
		return Zero()
	case Number:
		return Number{r: x.Rat()}
	case Rational:
		r := x.Rat()
		return numeric(r, !terminating(r))
	case Symbol:
		return x
	case Expression:
		return collect(x.terms)
	default:
		return v
	}
}

// collect groups like terms and collapses degenerate sums.
func collect(terms []Term) Value {
	type group struct {
		mono  Monomial
		coeff *big.Rat
	}
	index := make(map[string]int, len(terms))
	groups := make([]group, 0, len(terms))
	for _, t := range terms {
		k := t.Mono.key()
		if i, ok := index[k]; ok {
			groups[i].coeff.Add(groups[i].coeff, t.coeff())
			continue
		}
		index[k] = len(groups)
		groups = append(groups, group{mono: slices.Clone(t.Mono), coeff: new(big.Rat).Set(t.coeff())})
	}

	out := make([]Term, 0, len(groups))
	for _, g := range groups {
		if g.coeff.Sign() == 0 {
			continue
		}
		out = append(out, Term{Coeff: g.coeff, Mono: g.mono})
	}
	slices.SortFunc(out, func(a, b Term) int {
		switch {
		case a.Mono.IsConstant() && b.Mono.IsConstant():
			return 0
		case a.Mono.IsConstant():
			return 1
		case b.Mono.IsConstant():
			return -1
		default:
			return a.Mono.compare(b.Mono)
		}
	})

	switch {
	case len(out) == 0:
		return Zero()
	case len(out) == 1 && out[0].Mono.IsConstant():
		c := out[0].Coeff
		return numeric(c, !terminating(c))
	case len(out) == 1 && isUnitSymbol(out[0]):
		return Symbol{name: out[0].Mono[0].Name}
	default:
		return Expression{terms: out}
	}
}

func isUnitSymbol(t Term) bool {
	return len(t.Mono) == 1 && t.Mono[0].Exp == 1 && t.coeff().Cmp(big.NewRat(1, 1)) == 0
}

// Equal reports whether a and b are equal under term collection. Numeric
// variants compare by value (Number 0.5 equals Rational 1/2).
func Equal(a, b Value) bool {
	sa, sb := Simplify(a), Simplify(b)
	if ra, ok := Rat(sa); ok {
		rb, ok := Rat(sb)
		return ok && ra.Cmp(rb) == 0
	}
	switch x := sa.(type) {
	case Symbol:
		y, ok := sb.(Symbol)
		return ok && x.name == y.name
	case Expression:
		y, ok := sb.(Expression)
		if !ok || len(x.terms) != len(y.terms) {
			return false
		}
		for i := range x.terms {
			if x.terms[i].coeff().Cmp(y.terms[i].coeff()) != 0 || !x.terms[i].Mono.equal(y.terms[i].Mono) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

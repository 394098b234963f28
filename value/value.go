// SPDX-License-Identifier: MIT

// Package value - the Value variants and their constructors.
//
// Purpose:
//   - Define the closed set of cell variants (Number, Rational, Symbol, Expression).
//   - Keep every variant immutable: constructors copy big.Rat inputs, accessors
//     return copies, so a Value can be shared freely between matrices and traces.
//
// Notes:
//   - The zero Number{} is a valid 0; the zero Expression{} is a valid empty sum.

package value

import (
	"math/big"
	"slices"
	"strconv"
	"strings"
)

// Kind tags a Value variant.
type Kind uint8

const (
	// KindNumber tags an integer or terminating decimal.
	KindNumber Kind = iota
	// KindRational tags a numerator/denominator pair.
	KindRational
	// KindSymbol tags a named unknown.
	KindSymbol
	// KindExpression tags a sum of terms.
	KindExpression
)

// String returns the lower-case variant name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindRational:
		return "rational"
	case KindSymbol:
		return "symbol"
	case KindExpression:
		return "expression"
	default:
		return "unknown"
	}
}

// Value is a matrix cell. The set of implementations is closed to this package.
type Value interface {
	// Kind reports the variant.
	Kind() Kind
	// String renders the value in its current (raw or canonical) textual form.
	String() string

	sealed()
}

// Compile-time conformance.
var (
	_ Value = Number{}
	_ Value = Rational{}
	_ Value = Symbol{}
	_ Value = Expression{}
)

// ---------- Number ----------

// Number is an exact integer or terminating decimal.
type Number struct{ r *big.Rat }

// NewInt returns the Number n.
func NewInt(n int64) Number { return Number{r: new(big.Rat).SetInt64(n)} }

// NewNumber returns a Number holding a copy of r. A nil r yields 0.
func NewNumber(r *big.Rat) Number {
	if r == nil {
		return Number{}
	}

	return Number{r: new(big.Rat).Set(r)}
}

// Zero returns the additive identity.
func Zero() Number { return Number{} }

// One returns the multiplicative identity.
func One() Number { return NewInt(1) }

func (n Number) rat() *big.Rat {
	if n.r == nil {
		return new(big.Rat)
	}

	return n.r
}

// Kind implements Value.
func (Number) Kind() Kind { return KindNumber }

// Rat returns a copy of the exact value.
func (n Number) Rat() *big.Rat { return new(big.Rat).Set(n.rat()) }

// IsInt reports whether n is integral.
func (n Number) IsInt() bool { return n.rat().IsInt() }

// IsZero reports whether n == 0.
func (n Number) IsZero() bool { return n.rat().Sign() == 0 }

// String renders integers as digits and other values as exact decimals.
func (n Number) String() string { return numberText(n.rat()) }

func (Number) sealed() {}

// ---------- Rational ----------

// Rational is a fraction p/q kept in lowest terms by math/big. In canonical
// form only non-terminating values (1/3, 2/7) are Rationals.
type Rational struct{ r *big.Rat }

// NewRational returns p/q. A zero q is an ArithmeticError.
func NewRational(p, q int64) (Rational, error) {
	if q == 0 {
		return Rational{}, &ArithmeticError{Op: "NewRational", Err: ErrDivisionByZero}
	}

	return Rational{r: big.NewRat(p, q)}, nil
}

// NewRationalRat returns a Rational holding a copy of r. A nil r yields 0.
func NewRationalRat(r *big.Rat) Rational {
	if r == nil {
		return Rational{}
	}

	return Rational{r: new(big.Rat).Set(r)}
}

func (q Rational) rat() *big.Rat {
	if q.r == nil {
		return new(big.Rat)
	}

	return q.r
}

// Kind implements Value.
func (Rational) Kind() Kind { return KindRational }

// Rat returns a copy of the exact value.
func (q Rational) Rat() *big.Rat { return new(big.Rat).Set(q.rat()) }

// String renders "p/q", or just "p" when the denominator is 1.
func (q Rational) String() string { return q.rat().RatString() }

func (Rational) sealed() {}

// ---------- Symbol ----------

// Symbol is an opaque named unknown.
type Symbol struct{ name string }

// NewSymbol returns the symbol called name.
func NewSymbol(name string) Symbol { return Symbol{name: name} }

// Kind implements Value.
func (Symbol) Kind() Kind { return KindSymbol }

// Name returns the symbol name.
func (s Symbol) Name() string { return s.name }

// String returns the symbol name.
func (s Symbol) String() string { return s.name }

func (Symbol) sealed() {}

// ---------- Monomial / Term / Expression ----------

// Factor is one symbol raised to a positive integer power.
type Factor struct {
	Name string
	Exp  int
}

// Monomial is a product of factors, sorted by Name with unique names.
// The empty Monomial is the constant 1.
type Monomial []Factor

// NewMonomial builds a monomial from factors in any order; equal names
// are merged by adding exponents and non-positive exponents are dropped.
func NewMonomial(factors ...Factor) Monomial {
	var m Monomial
	for _, f := range factors {
		if f.Exp <= 0 {
			continue
		}
		m = m.mul(Monomial{f})
	}

	return m
}

// IsConstant reports whether m is the empty product.
func (m Monomial) IsConstant() bool { return len(m) == 0 }

// Degree returns the total degree.
func (m Monomial) Degree() int {
	d := 0
	for _, f := range m {
		d += f.Exp
	}

	return d
}

// mul merges two sorted monomials, adding exponents of equal names.
func (m Monomial) mul(o Monomial) Monomial {
	out := make(Monomial, 0, len(m)+len(o))
	i, j := 0, 0
	for i < len(m) && j < len(o) {
		switch {
		case m[i].Name < o[j].Name:
			out = append(out, m[i])
			i++
		case m[i].Name > o[j].Name:
			out = append(out, o[j])
			j++
		default:
			out = append(out, Factor{Name: m[i].Name, Exp: m[i].Exp + o[j].Exp})
			i++
			j++
		}
	}
	out = append(out, m[i:]...)
	out = append(out, o[j:]...)
	if len(out) == 0 {
		return nil
	}

	return out
}

// key is a stable grouping key; distinct monomials never share a key.
// Names are quoted since fallback symbols may contain '*' or '^'.
func (m Monomial) key() string {
	var b strings.Builder
	for _, f := range m {
		b.WriteString(strconv.Quote(f.Name))
		b.WriteByte('^')
		b.WriteString(itoa(f.Exp))
	}

	return b.String()
}

// compare orders monomials for canonical output: factor by factor, name
// ascending, higher exponent first, a proper prefix first. Constants are
// handled by the caller (they always go last).
func (m Monomial) compare(o Monomial) int {
	for i := 0; i < len(m) && i < len(o); i++ {
		if m[i].Name != o[i].Name {
			return strings.Compare(m[i].Name, o[i].Name)
		}
		if m[i].Exp != o[i].Exp {
			if m[i].Exp > o[i].Exp {
				return -1
			}
			return 1
		}
	}

	return len(m) - len(o)
}

func (m Monomial) equal(o Monomial) bool {
	return slices.Equal(m, o)
}

// Term is Coeff·Mono.
type Term struct {
	Coeff *big.Rat
	Mono  Monomial
}

// NewTerm returns coeff·mono with a copied coefficient (nil coeff = 0).
func NewTerm(coeff *big.Rat, mono Monomial) Term {
	c := new(big.Rat)
	if coeff != nil {
		c.Set(coeff)
	}

	return Term{Coeff: c, Mono: slices.Clone(mono)}
}

func (t Term) coeff() *big.Rat {
	if t.Coeff == nil {
		return new(big.Rat)
	}

	return t.Coeff
}

// Expression is a sum of terms. Expressions produced by arithmetic are raw
// (duplicates and zero coefficients allowed); Simplify returns the
// canonical form.
type Expression struct{ terms []Term }

// NewExpression returns the raw sum of terms. Inputs are copied.
func NewExpression(terms ...Term) Expression {
	out := make([]Term, len(terms))
	for i, t := range terms {
		out[i] = NewTerm(t.coeff(), t.Mono)
	}

	return Expression{terms: out}
}

// Kind implements Value.
func (Expression) Kind() Kind { return KindExpression }

// Terms returns a copy of the terms in their current order.
func (e Expression) Terms() []Term {
	out := make([]Term, len(e.terms))
	for i, t := range e.terms {
		out[i] = NewTerm(t.coeff(), t.Mono)
	}

	return out
}

// Len returns the number of terms.
func (e Expression) Len() int { return len(e.terms) }

// String renders the terms in their current order.
func (e Expression) String() string { return termsText(e.terms) }

func (Expression) sealed() {}

// ---------- variant helpers ----------

// Rat returns a copy of the numeric value of v when v is a Number or a
// Rational. ok is false for symbolic variants.
func Rat(v Value) (r *big.Rat, ok bool) {
	switch x := v.(type) {
	case Number:
		return x.Rat(), true
	case Rational:
		return x.Rat(), true
	default:
		return nil, false
	}
}

// IsNumeric reports whether v is a Number or a Rational.
func IsNumeric(v Value) bool {
	_, ok := Rat(v)

	return ok
}

// IsZero reports whether v is canonically zero.
func IsZero(v Value) bool {
	r, ok := Rat(Simplify(v))

	return ok && r.Sign() == 0
}

// termsOf lifts any Value into a term list (fresh copies).
func termsOf(v Value) []Term {
	switch x := v.(type) {
	case Number:
		return []Term{NewTerm(x.rat(), nil)}
	case Rational:
		return []Term{NewTerm(x.rat(), nil)}
	case Symbol:
		return []Term{NewTerm(big.NewRat(1, 1), Monomial{{Name: x.name, Exp: 1}})}
	case Expression:
		return x.Terms()
	default:
		return nil
	}
}

// numeric wraps r as a Number unless asRational is set.
func numeric(r *big.Rat, asRational bool) Value {
	if asRational {
		return Rational{r: r}
	}

	return Number{r: r}
}

// terminating reports whether r has a finite decimal expansion.
func terminating(r *big.Rat) bool {
	_, ok := decimalPlaces(r)

	return ok
}

// decimalPlaces returns the number of fractional digits of the exact decimal
// expansion of r, if it terminates (denominator of the form 2^a·5^b).
func decimalPlaces(r *big.Rat) (int, bool) {
	d := new(big.Int).Set(r.Denom())
	two, five := big.NewInt(2), big.NewInt(5)
	var a, b int
	mod := new(big.Int)
	for {
		q, m := new(big.Int).QuoRem(d, two, mod)
		if m.Sign() != 0 {
			break
		}
		d, a = q, a+1
	}
	for {
		q, m := new(big.Int).QuoRem(d, five, mod)
		if m.Sign() != 0 {
			break
		}
		d, b = q, b+1
	}
	if d.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}

	return max(a, b), true
}

// SPDX-License-Identifier: MIT

// Package value - total arithmetic over the Value union.
//
// Contract:
//   - Add, Sub, Mul and Neg never fail and never collect like terms.
//   - Numeric ⊕ numeric stays numeric: Number op Number is a Number
//     (integers and terminating decimals are closed under +, -, ×); any
//     Rational operand makes the result a Rational.
//   - Any symbolic operand lifts both sides to term lists; Mul distributes
//     term by term in operand order and adds exponents of equal symbols.
//   - Quo and Pow may fail with *ArithmeticError.

package value

import "math/big"

const (
	opQuo = "Quo"
	opPow = "Pow"
)

// MaxTerms bounds the canonical term count of a single expanded power and
// of every intermediate value the parser builds.
const MaxTerms = 256

// Add returns the raw sum a + b.
func Add(a, b Value) Value {
	if ra, qa, ok := numParts(a); ok {
		if rb, qb, ok := numParts(b); ok {
			return numeric(new(big.Rat).Add(ra, rb), qa || qb)
		}
	}
	terms := termsOf(a)
	terms = append(terms, termsOf(b)...)

	return Expression{terms: terms}
}

// Sub returns the raw difference a - b.
func Sub(a, b Value) Value {
	return Add(a, Neg(b))
}

// Neg returns -v, preserving the variant where possible.
func Neg(v Value) Value {
	switch x := v.(type) {
	case Number:
		return Number{r: new(big.Rat).Neg(x.rat())}
	case Rational:
		return Rational{r: new(big.Rat).Neg(x.rat())}
	default:
		terms := termsOf(v)
		for i := range terms {
			terms[i].Coeff.Neg(terms[i].Coeff)
		}
		return Expression{terms: terms}
	}
}

// Mul returns the raw product a × b. For symbolic operands every term of a
// is multiplied by every term of b (a-major order).
func Mul(a, b Value) Value {
	if ra, qa, ok := numParts(a); ok {
		if rb, qb, ok := numParts(b); ok {
			return numeric(new(big.Rat).Mul(ra, rb), qa || qb)
		}
	}
	ta, tb := termsOf(a), termsOf(b)
	out := make([]Term, 0, len(ta)*len(tb))
	for _, x := range ta {
		for _, y := range tb {
			out = append(out, Term{
				Coeff: new(big.Rat).Mul(x.coeff(), y.coeff()),
				Mono:  x.Mono.mul(y.Mono),
			})
		}
	}

	return Expression{terms: out}
}

// Quo returns a / b. The divisor must simplify to a non-zero numeric value.
//
// Errors:
//   - *ArithmeticError wrapping ErrDivisionByZero when b == 0.
//   - *ArithmeticError wrapping ErrNotPolynomial when b is symbolic.
func Quo(a, b Value) (Value, error) {
	rb, ok := Rat(Simplify(b))
	if !ok {
		return nil, &ArithmeticError{Op: opQuo, Err: ErrNotPolynomial}
	}
	if rb.Sign() == 0 {
		return nil, &ArithmeticError{Op: opQuo, Err: ErrDivisionByZero}
	}
	inv := Rational{r: new(big.Rat).Inv(rb)}
	if ra, _, ok := numParts(a); ok {
		return Rational{r: new(big.Rat).Mul(ra, inv.r)}, nil
	}

	return Mul(a, inv), nil
}

// Pow returns base^n for an integer n. Intermediate powers are simplified
// so the term count stays bounded by the number of distinct monomials.
//
// Errors:
//   - *ArithmeticError wrapping ErrDivisionByZero for 0^n with n < 0.
//   - *ArithmeticError wrapping ErrNotPolynomial for symbolic bases with n < 0.
//   - *ArithmeticError wrapping ErrTooLarge when the expansion of a symbolic
//     base may exceed MaxTerms terms.
func Pow(base Value, n int) (Value, error) {
	if n < 0 {
		r, ok := Rat(Simplify(base))
		if !ok {
			return nil, &ArithmeticError{Op: opPow, Err: ErrNotPolynomial}
		}
		if r.Sign() == 0 {
			return nil, &ArithmeticError{Op: opPow, Err: ErrDivisionByZero}
		}
		return Pow(Rational{r: new(big.Rat).Inv(r)}, -n)
	}
	if !powBounded(Simplify(base), n) {
		return nil, &ArithmeticError{Op: opPow, Err: ErrTooLarge}
	}
	var acc Value = One()
	sq := base
	// square-and-multiply, simplifying to keep the raw term lists small
	for n > 0 {
		if n&1 == 1 {
			acc = Simplify(Mul(acc, sq))
		}
		n >>= 1
		if n > 0 {
			sq = Simplify(Mul(sq, sq))
		}
	}

	return acc, nil
}

// numParts returns the numeric value of v and whether it is a Rational.
func numParts(v Value) (r *big.Rat, isRational bool, ok bool) {
	switch x := v.(type) {
	case Number:
		return x.rat(), false, true
	case Rational:
		return x.rat(), true, true
	default:
		return nil, false, false
	}
}

// powBounded reports whether (t1 + ... + tk)^n stays within MaxTerms: the
// expansion has at most C(n+k-1, k-1) distinct monomials.
func powBounded(base Value, n int) bool {
	k := TermCount(base)
	if k <= 1 || n <= 1 {
		return true
	}
	bound := new(big.Int).Binomial(int64(n+k-1), int64(k-1))

	return bound.Cmp(big.NewInt(MaxTerms)) <= 0
}

// TermCount returns the number of terms v holds: 1 for numbers and symbols,
// len(Terms) for an Expression.
func TermCount(v Value) int {
	if e, ok := v.(Expression); ok {
		return len(e.terms)
	}

	return 1
}

// SPDX-License-Identifier: MIT

// Package value is the cell algebra of matcalc.
//
// A cell of a matrix is a Value, a closed tagged union over four variants:
//
//   - Number: an exact integer or terminating decimal (math/big.Rat backed).
//   - Rational: a numerator/denominator pair in lowest terms.
//   - Symbol: an opaque named unknown ("a", "b", "speed").
//   - Expression: a sum of coefficient·monomial terms.
//
// Arithmetic (Add, Sub, Mul, Neg, Quo, Pow) is total over the union and
// returns RAW results: terms are concatenated or distributed but never
// collected. Simplify is the single normalization pass that groups like
// terms, drops zero coefficients, orders terms deterministically and
// collapses degenerate expressions back to Number/Rational/Symbol.
//
// Parse turns a raw token into a canonical Value:
//
//	Parse("")      → Number 0
//	Parse("2.5")   → Number 2.5
//	Parse("1/3")   → Rational 1/3
//	Parse("2a+a")  → Expression 3a
//	Parse("x!")    → Symbol "x!" (fail-open; see WithStrict)
//
// Determinism:
//   - Canonical order and text never depend on map iteration or input order.
//   - Equal compares canonical forms, so "a + 2" equals "2 + a".
package value

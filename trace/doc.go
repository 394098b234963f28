// SPDX-License-Identifier: MIT

// Package trace renders the per-cell derivations produced by the matrix
// kernels as text.
//
// Every output cell has one line, ending in "= <result>":
//
//	Add:  a + b = r
//	Sub:  a - b = r
//	Mul:  a1*b1 + a2*b2 = p1 + p2 = r
//
// The Mul product list is omitted when the inner dimension is 1. Operands
// and partial products that are negative or have several terms are wrapped
// in parentheses so the line stays unambiguous.
//
// Values are rendered through a Formatter, so the same trace can be shown
// in any display mode without touching the underlying values.
package trace

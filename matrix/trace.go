// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/matcalc/value"

// Step is one sub-operation behind an output cell: Left op Right = Partial.
// Partial is the raw (unsimplified) result of that single step.
type Step struct {
	Left    value.Value
	Right   value.Value
	Partial value.Value
}

// TraceEntry justifies one output cell.
//
//   - Add/Sub: exactly one Step (A[i][j], B[i][j]).
//   - Mul: A.Cols Steps (A[i][k], B[k][j]) in ascending k.
//
// Sum is the raw accumulation of the partials (ascending order); Result is
// Simplify(Sum) and equals the cell of the result matrix.
type TraceEntry struct {
	Row    int
	Col    int
	Op     Operation
	Steps  []Step
	Sum    value.Value
	Result value.Value
}

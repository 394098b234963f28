// SPDX-License-Identifier: MIT

// Package matrix provides the arithmetic kernels over any Matrix
// implementation: element-wise addition and subtraction and the matrix
// product. All kernels perform strict fail-fast validation, allocate a fresh
// result, and return one TraceEntry per output cell in row-major order.
package matrix

import "github.com/katalvlaran/matcalc/value"

// Add returns a new Dense containing the element-wise sum of a and b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense and trace.
// Stage 3 (Execute): fixed i→j loop; one Step per cell.
// Stage 4 (Finalize): simplify each cell once; return result.
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (*Dense, []TraceEntry, error) {
	return elementwise(OpAdd, a, b, value.Add)
}

// Sub returns a new Dense containing the element-wise difference a - b.
// Same stages and complexity as Add.
func Sub(a, b Matrix) (*Dense, []TraceEntry, error) {
	return elementwise(OpSub, a, b, value.Sub)
}

// elementwise is the shared Add/Sub kernel.
func elementwise(op Operation, a, b Matrix, fn func(x, y value.Value) value.Value) (*Dense, []TraceEntry, error) {
	// Stage 1: Validate
	if err := Validate(a, b, op); err != nil {
		return nil, nil, err
	}

	// Stage 2: Allocate
	rows, cols := a.Rows(), a.Cols()
	res := &Dense{r: rows, c: cols, data: make([]value.Value, rows*cols)}
	trace := make([]TraceEntry, 0, rows*cols)

	// Stage 3: Execute in fixed i→j order
	var (
		i, j   int // loop iterators
		av, bv value.Value
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j) // safe: bounds ensured
			bv, _ = b.At(i, j) // safe: same shape
			raw := fn(av, bv)
			out := value.Simplify(raw)
			res.set(i, j, out)
			trace = append(trace, TraceEntry{
				Row:    i,
				Col:    j,
				Op:     op,
				Steps:  []Step{{Left: av, Right: bv, Partial: raw}},
				Sum:    raw,
				Result: out,
			})
		}
	}

	// Stage 4: Return result
	return res, trace, nil
}

// Mul performs standard matrix multiplication of a and b (a × b).
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate result Dense and trace.
// Stage 3 (Execute): i→j→k loop; the sum over k is accumulated in ascending
// k so the raw derivation is reproducible run to run.
// Stage 4 (Finalize): simplify each cell once; return result.
// Complexity: O(r*n*c) time and O(r*c) memory (plus O(r*n*c) trace steps).
func Mul(a, b Matrix) (*Dense, []TraceEntry, error) {
	// Stage 1: Validate inputs
	if err := Validate(a, b, OpMul); err != nil {
		return nil, nil, err
	}

	// Stage 2: Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := &Dense{r: aRows, c: bCols, data: make([]value.Value, aRows*bCols)}
	trace := make([]TraceEntry, 0, aRows*bCols)

	// Stage 3: generic interface triple-loop (i-j-k)
	var (
		i, j, k int // loop iterators
		av, bv  value.Value
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			steps := make([]Step, aCols)
			var sum value.Value
			for k = 0; k < aCols; k++ {
				av, _ = a.At(i, k) // safe: i < aRows, k < aCols
				bv, _ = b.At(k, j) // safe: k < bRows == aCols
				p := value.Mul(av, bv)
				steps[k] = Step{Left: av, Right: bv, Partial: p}
				if k == 0 {
					sum = p
				} else {
					sum = value.Add(sum, p)
				}
			}
			out := value.Simplify(sum)
			res.set(i, j, out)
			trace = append(trace, TraceEntry{Row: i, Col: j, Op: OpMul, Steps: steps, Sum: sum, Result: out})
		}
	}

	// Stage 4: Return result
	return res, trace, nil
}

// Compute dispatches to Add, Sub or Mul.
//
// Errors: those of the selected kernel; ErrUnknownOperation for invalid op.
func Compute(a, b Matrix, op Operation) (*Dense, []TraceEntry, error) {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSub:
		return Sub(a, b)
	case OpMul:
		return Mul(a, b)
	default:
		return nil, nil, matrixErrorf(opCompute, ErrUnknownOperation)
	}
}

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of value.Value with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Keep the grid immutable once built: writes happen only inside this package,
//     before a *Dense is handed out.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At: O(1); Row: O(c); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matcalc/value"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of values.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int           // row and column counts
	data []value.Value // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c matrix filled with Number 0.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrBadShape.
//   - Stage 2: allocate buffer and fill with the zero Number.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	buf := make([]value.Value, rows*cols)
	for i := range buf {
		buf[i] = value.Zero()
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// FromValues builds a Dense from a rectangular [][]value.Value. Cells are
// stored as given (no simplification); nil cells become Number 0.
//
// Errors:
//   - *ShapeError wrapping ErrBadShape for empty or ragged input.
//
// Complexity: O(r*c).
func FromValues(rows [][]value.Value) (*Dense, error) {
	if err := checkRect(opFromValues, len(rows), func(i int) int { return len(rows[i]) }); err != nil {
		return nil, err
	}
	m := &Dense{r: len(rows), c: len(rows[0]), data: make([]value.Value, 0, len(rows)*len(rows[0]))}
	for _, row := range rows {
		for _, v := range row {
			if v == nil {
				v = value.Zero()
			}
			m.data = append(m.data, v)
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols().
// Complexity: O(1).
func (m *Dense) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// indexOf computes the row-major offset or returns ErrOutOfRange.
//
// Notes:
//   - Keep unexported to avoid accidental panics at public surface.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//   - Values are immutable, so the stored value is returned directly.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (value.Value, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]value.Value, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]value.Value, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Values returns a copy of the grid as rows of values.
// Complexity: O(r*c).
func (m *Dense) Values() [][]value.Value {
	out := make([][]value.Value, m.r)
	for i := range out {
		out[i] = make([]value.Value, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// set writes v at a pre-validated offset. Package-internal: kernels fill a
// fresh Dense before returning it.
func (m *Dense) set(row, col int, v value.Value) { m.data[row*m.c+col] = v }

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write canonical value text with standard delimiters.
//
// Behavior highlights:
//   - Not for presentation; display modes live in the format package.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(m.data[i*m.c+j].String())
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

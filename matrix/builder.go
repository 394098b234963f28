// SPDX-License-Identifier: MIT

// Package matrix - grid → Dense builders.
//
// Contract:
//   - The grid is row-major and must be rectangular with rows ≥ 1, cols ≥ 1.
//   - Shape is checked before any cell is parsed.
//   - Each cell goes through value.Parse; there is no cross-cell validation.
//   - Parse errors propagate unchanged (*value.ParseError, *value.ArithmeticError).

package matrix

import "github.com/katalvlaran/matcalc/value"

// Build parses a rectangular grid of raw tokens into a Dense.
//
// Errors:
//   - *ShapeError wrapping ErrBadShape (no rows, empty first row, ragged rows).
//   - errors returned by value.Parse, unchanged.
//
// Complexity: O(r*c) parses.
func Build(grid [][]string, opts ...value.ParseOption) (*Dense, error) {
	return BuildShape(grid, Shape{}, opts...)
}

// BuildShape is Build with declared dimensions. A zero field in want means
// "infer"; a non-zero field must match the grid exactly.
func BuildShape(grid [][]string, want Shape, opts ...value.ParseOption) (*Dense, error) {
	if err := checkRect(opBuild, len(grid), func(i int) int { return len(grid[i]) }); err != nil {
		return nil, err
	}
	got := Shape{Rows: len(grid), Cols: len(grid[0])}
	if (want.Rows != 0 && want.Rows != got.Rows) || (want.Cols != 0 && want.Cols != got.Cols) {
		return nil, &ShapeError{Op: opBuild, Expected: want, Got: got, Row: -1, Err: ErrBadShape}
	}

	m := &Dense{r: got.Rows, c: got.Cols, data: make([]value.Value, got.Rows*got.Cols)}
	for i, row := range grid {
		for j, tok := range row {
			v, err := value.Parse(tok, opts...)
			if err != nil {
				return nil, err
			}
			m.set(i, j, v)
		}
	}

	return m, nil
}

// checkRect validates rows ≥ 1, a non-empty first row and equal widths.
// width(i) reports the length of row i.
func checkRect(op string, rows int, width func(i int) int) error {
	if rows == 0 {
		return &ShapeError{Op: op, Row: -1, Err: ErrBadShape}
	}
	cols := width(0)
	if cols == 0 {
		return &ShapeError{Op: op, Got: Shape{Rows: rows}, Row: -1, Err: ErrBadShape}
	}
	for i := 1; i < rows; i++ {
		if w := width(i); w != cols {
			return &ShapeError{
				Op:       op,
				Expected: Shape{Rows: rows, Cols: cols},
				Got:      Shape{Rows: rows, Cols: w},
				Row:      i,
				Err:      ErrBadShape,
			}
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, validators and kernels.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/matcalc/value"
)

// Shape is a (rows, cols) pair.
type Shape struct {
	Rows int
	Cols int
}

// String renders "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Matrix is a read-only rows×cols grid of values.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (value.Value, error)
}

// shapeOf reads the shape of m.
func shapeOf(m Matrix) Shape { return Shape{Rows: m.Rows(), Cols: m.Cols()} }

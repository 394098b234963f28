// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the structured ShapeError.
// All kernels MUST return these sentinels (possibly inside *ShapeError) and
// tests MUST check them via errors.Is / errors.As. No kernel panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// outer boundary; callers still match with errors.Is.

var (
	// ErrBadShape is returned when a grid cannot form a matrix: no rows, an
	// empty row, ragged rows, or dimensions that disagree with a declared shape.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrUnknownOperation is returned for an Operation outside Add/Sub/Mul.
	ErrUnknownOperation = errors.New("matrix: unknown operation")
)

// ShapeError carries the dimensions behind ErrBadShape / ErrDimensionMismatch.
//
// Populated fields by origin:
//   - Add/Sub: Expected = left shape, Got = right shape.
//   - Mul:     Need = left Cols, Have = right Rows (Expected/Got hold both shapes).
//   - Build:   Expected = declared or first-row shape, Got = observed shape,
//     Row = index of the first offending row (-1 when not row-specific).
type ShapeError struct {
	Op       string
	Expected Shape
	Got      Shape
	Need     int
	Have     int
	Row      int
	Err      error
}

// Error implements error.
func (e *ShapeError) Error() string {
	badShape := errors.Is(e.sentinel(), ErrBadShape)
	switch {
	case e.Op == opMul:
		return fmt.Sprintf("matrix: %s: %v: left has %d columns, right has %d rows",
			e.Op, e.sentinel(), e.Need, e.Have)
	case badShape && e.Row >= 0:
		return fmt.Sprintf("matrix: %s: %v: row %d has %d cells, expected %d",
			e.Op, e.sentinel(), e.Row, e.Got.Cols, e.Expected.Cols)
	case badShape && (e.Got.Rows == 0 || e.Got.Cols == 0):
		return fmt.Sprintf("matrix: %s: %v: got %s, need at least 1x1",
			e.Op, e.sentinel(), e.Got)
	default:
		return fmt.Sprintf("matrix: %s: %v: expected %s, got %s",
			e.Op, e.sentinel(), e.Expected, e.Got)
	}
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ShapeError) Unwrap() error { return e.sentinel() }

func (e *ShapeError) sentinel() error {
	if e.Err == nil {
		return ErrDimensionMismatch
	}

	return e.Err
}

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

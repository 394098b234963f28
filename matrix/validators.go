// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand validation.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return *ShapeError for shape violations so callers get the dimensions.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and O(1).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil(a) → NotNil(b) → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b are non-nil with equal dimensions.
//
// Return: nil, ErrNilMatrix or *ShapeError{Expected: a.Shape, Got: b.Shape}.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := notNilPair("ValidateSameShape", a, b); err != nil {
		return err
	}

	return sameShape("ValidateSameShape", a, b)
}

// ValidateMulShape – Ensures a and b are non-nil and a.Cols == b.Rows.
//
// Return: nil, ErrNilMatrix or *ShapeError{Need: a.Cols, Have: b.Rows}.
// Complexity: O(1).
func ValidateMulShape(a, b Matrix) error {
	if err := notNilPair("ValidateMulShape", a, b); err != nil {
		return err
	}

	return mulShape(a, b)
}

// Validate checks operand compatibility for op. It is the gate every kernel
// passes before allocating anything.
//
//   - OpAdd/OpSub: a.Shape == b.Shape.
//   - OpMul:       a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrUnknownOperation, *ShapeError (ErrDimensionMismatch).
// Complexity: O(1).
func Validate(a, b Matrix, op Operation) error {
	if err := notNilPair(opValidate, a, b); err != nil {
		return err
	}
	switch op {
	case OpAdd, OpSub:
		return sameShape(op.String(), a, b)
	case OpMul:
		return mulShape(a, b)
	default:
		return validatorErrorf(opValidate, fmt.Errorf("%v: %w", op, ErrUnknownOperation))
	}
}

func notNilPair(tag string, a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf(tag, err)
	}

	return nil
}

func sameShape(op string, a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return &ShapeError{Op: op, Expected: shapeOf(a), Got: shapeOf(b), Row: -1, Err: ErrDimensionMismatch}
	}

	return nil
}

func mulShape(a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return &ShapeError{
			Op:       opMul,
			Expected: shapeOf(a),
			Got:      shapeOf(b),
			Need:     a.Cols(),
			Have:     b.Rows(),
			Row:      -1,
			Err:      ErrDimensionMismatch,
		}
	}

	return nil
}

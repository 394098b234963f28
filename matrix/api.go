// SPDX-License-Identifier: MIT

// Package matrix - convenience constructors and comparisons.
//
// Thin wrappers over Dense and the kernels, kept separate so the kernel file
// stays focused on the per-cell derivation rules.

package matrix

import "github.com/katalvlaran/matcalc/value"

// Zeros returns a rows×cols matrix of Number 0 (alias of NewDense).
func Zeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// Identity returns the n×n matrix with 1 on the diagonal.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.set(i, i, value.One())
	}

	return m, nil
}

// Equal reports whether a and b have the same shape and canonically equal
// cells. Nil matrices are never equal.
// Complexity: O(r*c) simplifications.
func Equal(a, b Matrix) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, errX := a.At(i, j)
			y, errY := b.At(i, j)
			if errX != nil || errY != nil || !value.Equal(x, y) {
				return false
			}
		}
	}

	return true
}

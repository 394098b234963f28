// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for builders/kernels.
//   - Keep grids literal so every expected value can be read off the test.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/value"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Kernels must work on the Matrix interface alone; wrapping forces that path.
type hide struct{ matrix.Matrix }

// mustBuild parses grid or fails the test.
func mustBuild(t *testing.T, grid [][]string) *matrix.Dense {
	t.Helper()
	m, err := matrix.Build(grid)
	require.NoError(t, err)

	return m
}

// cells renders every cell of m with its canonical text.
func cells(t *testing.T, m matrix.Matrix) [][]string {
	t.Helper()
	out := make([][]string, m.Rows())
	for i := range out {
		out[i] = make([]string, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v.String()
		}
	}

	return out
}

// at reads one cell or fails the test.
func at(t *testing.T, m matrix.Matrix, i, j int) value.Value {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// SPDX-License-Identifier: MIT
// Package matrix_test checks the algebraic laws of the kernels on canonical form.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matcalc/internal/fixture"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

var lawFixtures = [][][]string{
	{{"1", "2"}, {"3", "4"}},
	{{"a", "2b"}, {"1/3", "a+b"}},
	{{"0.5", "x"}, {"-y", "(x+1)^2"}},
}

func TestLaw_AdditiveIdentity(t *testing.T) {
	t.Parallel()

	for _, g := range lawFixtures {
		a := mustBuild(t, g)
		z, err := matrix.ZerosLike(a)
		require.NoError(t, err)

		sum, _, err := matrix.Add(a, z)
		require.NoError(t, err)
		require.True(t, matrix.Equal(a, sum), "A + 0 = A for %v", g)
	}
}

func TestLaw_AdditiveInverse(t *testing.T) {
	t.Parallel()

	for _, g := range lawFixtures {
		a := mustBuild(t, g)
		z, err := matrix.Zeros(a.Rows(), a.Cols())
		require.NoError(t, err)

		diff, _, err := matrix.Sub(a, a)
		require.NoError(t, err)
		require.True(t, matrix.Equal(z, diff), "A - A = 0 for %v", g)
	}
}

func TestLaw_MulAssociative(t *testing.T) {
	t.Parallel()

	a := mustBuild(t, [][]string{{"a", "1", "2"}})
	b := mustBuild(t, [][]string{{"b", "0"}, {"1/2", "c"}, {"3", "a"}})
	c := mustBuild(t, [][]string{{"1", "c"}, {"a+b", "2"}})

	ab, _, err := matrix.Mul(a, b)
	require.NoError(t, err)
	left, _, err := matrix.Mul(ab, c)
	require.NoError(t, err)

	bc, _, err := matrix.Mul(b, c)
	require.NoError(t, err)
	right, _, err := matrix.Mul(a, bc)
	require.NoError(t, err)

	require.True(t, matrix.Equal(left, right), "left:\n%s\nright:\n%s", left, right)
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	a := mustBuild(t, [][]string{{"a", "2"}, {"b", "c+1"}})
	id, err := matrix.Identity(2)
	require.NoError(t, err)

	p, _, err := matrix.Mul(a, id)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, p))

	_, err = matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := mustBuild(t, [][]string{{"a+2", "0.5"}})
	b := mustBuild(t, [][]string{{"2+a", "1/2"}})
	c := mustBuild(t, [][]string{{"a+2"}, {"0.5"}})

	require.True(t, matrix.Equal(a, b))
	require.False(t, matrix.Equal(a, c))
	require.False(t, matrix.Equal(a, nil))
}

func TestLaw_RandomFixtures(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		opts := []fixture.Option{fixture.WithSeed(seed), fixture.WithFractions(), fixture.WithMaxInt(5)}
		ms, err := fixture.Chain([]int{2, 3, 2, 2}, opts...)
		require.NoError(t, err)
		a, b, c := ms[0], ms[1], ms[2]

		// (AB)C = A(BC)
		ab, _, err := matrix.Mul(a, b)
		require.NoError(t, err)
		left, _, err := matrix.Mul(ab, c)
		require.NoError(t, err)
		bc, _, err := matrix.Mul(b, c)
		require.NoError(t, err)
		right, _, err := matrix.Mul(a, bc)
		require.NoError(t, err)
		require.True(t, matrix.Equal(left, right), "seed %d", seed)

		// (A + B') - B' = A
		b2, err := fixture.Matrix(2, 3, fixture.WithSeed(seed+100))
		require.NoError(t, err)
		sum, _, err := matrix.Add(a, b2)
		require.NoError(t, err)
		back, _, err := matrix.Sub(sum, b2)
		require.NoError(t, err)
		require.True(t, matrix.Equal(a, back), "seed %d", seed)
	}
}

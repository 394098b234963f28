// SPDX-License-Identifier: MIT
package fixture_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcalc/internal/fixture"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/value"
	"github.com/stretchr/testify/require"
)

func TestGrid_Deterministic(t *testing.T) {
	t.Parallel()

	g1, err := fixture.Grid(3, 4, fixture.WithSeed(42), fixture.WithFractions())
	require.NoError(t, err)
	g2, err := fixture.Grid(3, 4, fixture.WithSeed(42), fixture.WithFractions())
	require.NoError(t, err)
	require.Equal(t, g1, g2)
	require.Len(t, g1, 3)
	for _, row := range g1 {
		require.Len(t, row, 4)
	}
}

func TestGrid_BadShape(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := fixture.Grid(dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrBadShape)
	}
	_, err := fixture.Chain([]int{3})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestGrid_TokensParseStrict(t *testing.T) {
	t.Parallel()

	g, err := fixture.Grid(6, 6, fixture.WithSeed(7), fixture.WithFractions(), fixture.WithSymbols("x", "y2"))
	require.NoError(t, err)
	for _, row := range g {
		for _, tok := range row {
			_, err := value.Parse(tok, value.WithStrict())
			require.NoError(t, err, "token %q", tok)
		}
	}
}

func TestGrid_SymbolRatioExtremes(t *testing.T) {
	t.Parallel()

	m, err := fixture.Matrix(4, 4, fixture.WithSymbolRatio(0))
	require.NoError(t, err)
	for _, row := range m.Values() {
		for _, v := range row {
			require.True(t, value.IsNumeric(v), "cell %v", v)
		}
	}

	g, err := fixture.Grid(4, 4, fixture.WithSymbolRatio(1), fixture.WithSymbols("q"))
	require.NoError(t, err)
	for _, row := range g {
		for _, tok := range row {
			require.Contains(t, tok, "q")
		}
	}
}

func TestChain_Shapes(t *testing.T) {
	t.Parallel()

	ms, err := fixture.Chain([]int{2, 3, 1, 4}, fixture.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)
	require.Len(t, ms, 3)
	require.Equal(t, matrix.Shape{Rows: 2, Cols: 3}, ms[0].Shape())
	require.Equal(t, matrix.Shape{Rows: 3, Cols: 1}, ms[1].Shape())
	require.Equal(t, matrix.Shape{Rows: 1, Cols: 4}, ms[2].Shape())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { fixture.WithRand(nil) })
	require.Panics(t, func() { fixture.WithSymbols() })
	require.Panics(t, func() { fixture.WithSymbols("") })
	require.Panics(t, func() { fixture.WithMaxInt(0) })
	require.Panics(t, func() { fixture.WithSymbolRatio(1.5) })
}

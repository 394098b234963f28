// SPDX-License-Identifier: MIT
package calc_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/matcalc/calc"
	"github.com/katalvlaran/matcalc/format"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/value"
)

func TestCompute_NumericAdd(t *testing.T) {
	t.Parallel()

	res, err := calc.Compute(calc.Request{
		Operation: matrix.OpAdd,
		Mode:      format.Decimal,
		A:         [][]string{{"1", "2"}, {"3", "4"}},
		B:         [][]string{{"5", "6"}, {"7", "8"}},
	})
	require.NoError(t, err)
	require.Equal(t, [][]string{{"6", "8"}, {"10", "12"}}, res.Cells())
	require.Equal(t, "1 + 5 = 6", res.Lines()[0])
	require.Len(t, res.Grid(), 2)
}

func TestCompute_SymbolicMultiply(t *testing.T) {
	t.Parallel()

	res, err := calc.Compute(calc.Request{
		Operation: matrix.OpMul,
		A:         [][]string{{"2b", "3b"}, {"4b", "5b"}},
		B:         [][]string{{"3b", "4b"}, {"1b", "2b"}},
	})
	require.NoError(t, err)
	want := [][]string{{"9b²", "14b²"}, {"17b²", "26b²"}}
	if diff := cmp.Diff(want, res.Cells()); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_Modes(t *testing.T) {
	t.Parallel()

	req := calc.Request{
		Operation: matrix.OpSub,
		A:         [][]string{{"3.5", "1"}},
		B:         [][]string{{"0.5", "2/3"}},
	}
	tests := []struct {
		mode  format.Mode
		cells []string
		line  string
	}{
		{format.Decimal, []string{"3", "0.3"}, "3.5 - 0.5 = 3"},
		{format.Fraction, []string{"3", "1/3"}, "7/2 - 1/2 = 3"},
		{format.Letters, []string{"D", "A"}, "D - A = D"},
	}
	for _, tc := range tests {
		req.Mode = tc.mode
		res, err := calc.Compute(req)
		require.NoError(t, err, tc.mode.String())
		require.Equal(t, tc.cells, res.Cells()[0], tc.mode.String())
		require.Equal(t, tc.line, res.Lines()[0], tc.mode.String())
	}
}

// TestCompute_ErrorsUnchanged checks that stage errors reach the caller as-is.
func TestCompute_ErrorsUnchanged(t *testing.T) {
	t.Parallel()

	_, err := calc.Compute(calc.Request{
		Operation: matrix.OpAdd,
		A:         [][]string{{"1", "2", "3"}, {"4", "5", "6"}},
		B:         [][]string{{"1", "2"}, {"3", "4"}},
	})
	var se *matrix.ShapeError
	require.True(t, errors.As(err, &se))
	require.Equal(t, matrix.Shape{Rows: 2, Cols: 3}, se.Expected)
	require.Equal(t, matrix.Shape{Rows: 2, Cols: 2}, se.Got)

	_, err = calc.Compute(calc.Request{
		Operation: matrix.OpMul,
		A:         [][]string{{"(a"}},
		B:         [][]string{{"1"}},
	})
	var pe *value.ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "(a", pe.Token)

	_, err = calc.Compute(calc.Request{
		Operation: matrix.OpAdd,
		A:         [][]string{{"1"}},
		B:         [][]string{{"2/(1-1)"}},
	})
	var ae *value.ArithmeticError
	require.True(t, errors.As(err, &ae))

	_, err = calc.Compute(calc.Request{Operation: matrix.Operation(5), A: [][]string{{"1"}}, B: [][]string{{"1"}}})
	require.ErrorIs(t, err, matrix.ErrUnknownOperation)
}

func TestCompute_DeclaredShape(t *testing.T) {
	t.Parallel()

	req := calc.Request{
		Operation: matrix.OpAdd,
		A:         [][]string{{"1", "2"}},
		B:         [][]string{{"3", "4"}},
		RowsA:     1, ColsA: 2,
		ColsB: 3,
	}
	_, err := calc.Compute(req)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	req.ColsB = 2
	_, err = calc.Compute(req)
	require.NoError(t, err)
}

func TestEngine_StrictParse(t *testing.T) {
	t.Parallel()

	req := calc.Request{Operation: matrix.OpAdd, A: [][]string{{"x!"}}, B: [][]string{{"1"}}}

	res, err := calc.New().Compute(req)
	require.NoError(t, err)
	require.Equal(t, "x! + 1", res.Cells()[0][0])

	_, err = calc.New(calc.WithStrictParse()).Compute(req)
	require.ErrorIs(t, err, value.ErrUnsupported)

	_, err = calc.New(calc.WithMaxExponent(2)).Compute(calc.Request{
		Operation: matrix.OpAdd, A: [][]string{{"a^3"}}, B: [][]string{{"0"}},
	})
	require.NoError(t, err, "an over-limit exponent falls back to a symbol")
}

func TestEngine_Logging(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	eng := calc.New(calc.WithLogger(zap.New(core)))

	res, err := eng.Compute(calc.Request{
		Operation: matrix.OpMul,
		A:         [][]string{{"1", "2"}},
		B:         [][]string{{"3"}, {"4"}},
	})
	require.NoError(t, err)

	done := logs.FilterMessage("computed").All()
	require.Len(t, done, 1)
	fields := done[0].ContextMap()
	require.Equal(t, res.ID.String(), fields["id"])
	require.Equal(t, "Mul", fields["op"])
	require.Equal(t, "1x1", fields["shape"])
	require.EqualValues(t, 2, fields["steps"])
	require.Equal(t, 2, logs.FilterMessage("built operand").Len())

	_, err = eng.Compute(calc.Request{Operation: matrix.OpAdd, A: [][]string{{"1"}}, B: [][]string{{"1", "2"}}})
	require.Error(t, err)
	require.Equal(t, 1, logs.FilterMessage("compute failed").Len())
}

func TestEngine_FreshIDs(t *testing.T) {
	t.Parallel()

	req := calc.Request{Operation: matrix.OpAdd, A: [][]string{{"1"}}, B: [][]string{{"1"}}}
	r1, err := calc.Compute(req)
	require.NoError(t, err)
	r2, err := calc.Compute(req)
	require.NoError(t, err)
	require.NotEqual(t, r1.ID, r2.ID)
}

func TestWithLogger_NilPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { calc.WithLogger(nil) })
}

// SPDX-License-Identifier: MIT
package value_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/matcalc/value"
	"github.com/stretchr/testify/require"
)

// samples is a mixed bag of raw and canonical values.
func samples(t *testing.T) []value.Value {
	t.Helper()
	half, err := value.NewRational(1, 2)
	require.NoError(t, err)
	two, err := value.NewRational(4, 2)
	require.NoError(t, err)

	a, b := value.NewSymbol("a"), value.NewSymbol("b")
	return []value.Value{
		value.Zero(),
		value.NewInt(-7),
		value.MustParse("2.25"),
		half,
		two,
		a,
		value.Add(a, a),
		value.Sub(a, a),
		value.Mul(value.Add(a, value.One()), value.Sub(a, value.One())),
		value.Add(value.NewInt(3), b),
		value.Mul(value.MustParse("2b"), value.MustParse("3b")),
		value.NewExpression(),
		value.NewExpression(value.NewTerm(big.NewRat(1, 3), nil)),
	}
}

// TestSimplify_Idempotent checks simplify(simplify(v)) == simplify(v), textually too.
func TestSimplify_Idempotent(t *testing.T) {
	t.Parallel()

	for _, v := range samples(t) {
		once := value.Simplify(v)
		twice := value.Simplify(once)
		require.True(t, value.Equal(once, twice), "%s", v)
		require.Equal(t, once.String(), twice.String())
		require.Equal(t, once.Kind(), twice.Kind())
	}
}

// TestSimplify_Collapse checks the degenerate forms.
func TestSimplify_Collapse(t *testing.T) {
	t.Parallel()

	two, err := value.NewRational(4, 2)
	require.NoError(t, err)
	require.Equal(t, value.KindNumber, value.Simplify(two).Kind())

	third, err := value.NewRational(1, 3)
	require.NoError(t, err)
	require.Equal(t, value.KindRational, value.Simplify(third).Kind())

	a := value.NewSymbol("a")
	require.Equal(t, value.KindNumber, value.Simplify(value.Sub(a, a)).Kind())
	require.Equal(t, value.KindSymbol, value.Simplify(value.Add(value.Mul(value.NewInt(2), a), value.Neg(a))).Kind())
	require.Equal(t, "0", value.Simplify(value.NewExpression()).String())
	require.Equal(t, "0", value.Simplify(nil).String())
}

// TestSimplify_TermCollection checks 2a + 2a = 4a and coefficient aggregation.
func TestSimplify_TermCollection(t *testing.T) {
	t.Parallel()

	sum := value.Simplify(value.Add(value.MustParse("2a"), value.MustParse("2a")))
	require.Equal(t, "4a", sum.String())

	prod := value.Simplify(value.Add(
		value.Mul(value.MustParse("2b"), value.MustParse("3b")),
		value.Mul(value.MustParse("3b"), value.MustParse("1b")),
	))
	require.Equal(t, "9b²", prod.String())

	mixed := value.Simplify(value.Add(value.MustParse("b + 1"), value.MustParse("a - 1")))
	require.Equal(t, "a + b", mixed.String())
}

// TestEqual_OrderIndependent checks the canonical equality invariant.
func TestEqual_OrderIndependent(t *testing.T) {
	t.Parallel()

	a, b := value.NewSymbol("a"), value.NewSymbol("b")
	x := value.Add(value.Add(a, value.NewInt(2)), b)
	y := value.Add(b, value.Add(value.NewInt(2), a))
	require.True(t, value.Equal(x, y))
	require.Equal(t, value.Simplify(x).String(), value.Simplify(y).String())

	half, err := value.NewRational(1, 2)
	require.NoError(t, err)
	require.True(t, value.Equal(value.MustParse("0.5"), half))

	require.False(t, value.Equal(a, b))
	require.False(t, value.Equal(a, value.NewInt(1)))
	require.False(t, value.Equal(value.MustParse("a+1"), value.MustParse("a+2")))
	require.True(t, value.IsZero(value.Sub(x, y)))
}

// TestSimplify_NumericVariant checks that equal numeric values share one
// canonical variant and text, whichever route produced them.
func TestSimplify_NumericVariant(t *testing.T) {
	t.Parallel()

	half, err := value.NewRational(1, 2)
	require.NoError(t, err)
	fromExpr := value.Simplify(value.NewExpression(value.NewTerm(big.NewRat(1, 2), nil)))
	fromRat := value.Simplify(half)

	require.Equal(t, value.KindNumber, fromRat.Kind())
	require.Equal(t, fromExpr.Kind(), fromRat.Kind())
	require.Equal(t, "0.5", fromRat.String())
	require.Equal(t, fromExpr.String(), fromRat.String())

	third, err := value.NewRational(2, 6)
	require.NoError(t, err)
	fromExpr = value.Simplify(value.NewExpression(value.NewTerm(big.NewRat(1, 3), nil)))
	require.Equal(t, value.KindRational, value.Simplify(third).Kind())
	require.Equal(t, fromExpr.String(), value.Simplify(third).String())
}

// TestSimplify_OperatorCharsInNames checks that symbols whose names contain
// '*' or '^' are never grouped with a product of other symbols.
func TestSimplify_OperatorCharsInNames(t *testing.T) {
	t.Parallel()

	one := big.NewRat(1, 1)
	product := value.NewMonomial(
		value.Factor{Name: "x", Exp: 1},
		value.Factor{Name: "y", Exp: 1},
		value.Factor{Name: "z?", Exp: 1},
	)
	single := value.NewMonomial(value.Factor{Name: "x^1*y^1*z?", Exp: 1})

	sum := value.Simplify(value.NewExpression(value.NewTerm(one, product), value.NewTerm(one, single)))
	require.Equal(t, value.KindExpression, sum.Kind())
	require.Equal(t, 2, sum.(value.Expression).Len(), "got %s", sum)
	for _, term := range sum.(value.Expression).Terms() {
		require.Zero(t, term.Coeff.Cmp(one), "got %s", sum)
	}

	// the same pair reached through fail-open parsing
	parsed := value.Simplify(value.Add(
		value.Mul(value.MustParse("x*y"), value.MustParse("z?")),
		value.Mul(value.MustParse("x^1*y^1*z?"), value.One()),
	))
	require.Equal(t, 2, value.TermCount(parsed), "got %s", parsed)
	require.True(t, value.Equal(sum, parsed))

	// a name containing a quote stays distinct from its neighbours
	q := value.Simplify(value.Add(value.NewSymbol(`a"^1"b`), value.Mul(value.NewSymbol("a"), value.NewSymbol("b"))))
	require.Equal(t, 2, value.TermCount(q), "got %s", q)
}

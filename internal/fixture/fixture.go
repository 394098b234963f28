// SPDX-License-Identifier: MIT

// Package fixture generates reproducible random cell grids and matrices for
// property tests and benchmarks. The same options and seed always yield the
// same grid.
package fixture

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/value"
)

// Grid draws a rows×cols grid of cell tokens.
//
// Numeric cells are integers in [-maxInt, maxInt] (or p/q with WithFractions).
// Symbolic cells are "k*s" or "s" for a drawn symbol s, optionally "+ m".
//
// Errors: matrix.ErrBadShape when rows or cols is not positive.
func Grid(rows, cols int, opts ...Option) ([][]string, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("fixture.Grid(%d,%d): %w", rows, cols, matrix.ErrBadShape)
	}
	cfg := newConfig(opts...)

	out := make([][]string, rows)
	for i := range out {
		out[i] = make([]string, cols)
		for j := range out[i] {
			out[i][j] = cfg.cell()
		}
	}

	return out, nil
}

// Matrix draws a grid and builds it. The tokens produced here always parse.
func Matrix(rows, cols int, opts ...Option) (*matrix.Dense, error) {
	g, err := Grid(rows, cols, opts...)
	if err != nil {
		return nil, err
	}

	return matrix.Build(g, value.WithStrict())
}

// Chain draws matrices whose shapes are compatible for a left-to-right
// product: dims {2,3,1} yields 2×3 and 3×1.
func Chain(dims []int, opts ...Option) ([]*matrix.Dense, error) {
	if len(dims) < 2 {
		return nil, fmt.Errorf("fixture.Chain: %w", matrix.ErrBadShape)
	}
	cfg := newConfig(opts...)
	all := append(append([]Option(nil), opts...), WithRand(cfg.rng))

	out := make([]*matrix.Dense, 0, len(dims)-1)
	for i := 0; i+1 < len(dims); i++ {
		m, err := Matrix(dims[i], dims[i+1], all...)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

func (c config) cell() string {
	if c.rng.Float64() < c.symbolRatio {
		return c.symbolic()
	}

	return c.numeric()
}

func (c config) integer() int {
	return c.rng.Intn(2*c.maxInt+1) - c.maxInt
}

func (c config) numeric() string {
	n := c.integer()
	if c.fractions && c.maxInt >= 2 && c.rng.Intn(2) == 0 {
		q := 2 + c.rng.Intn(c.maxInt-1)
		return strconv.Itoa(n) + "/" + strconv.Itoa(q)
	}

	return strconv.Itoa(n)
}

func (c config) symbolic() string {
	s := c.symbols[c.rng.Intn(len(c.symbols))]
	k := c.integer()
	var tok string
	switch k {
	case 0, 1:
		tok = s
	default:
		tok = strconv.Itoa(k) + "*" + s
	}
	if m := c.integer(); m > 0 {
		tok += " + " + strconv.Itoa(m)
	}

	return tok
}

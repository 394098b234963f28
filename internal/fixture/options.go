// SPDX-License-Identifier: MIT
// Package: matcalc/internal/fixture
//
// options.go - functional options for fixture generators.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   - Determinism is explicit: seed via WithSeed or pass WithRand.

package fixture

import "math/rand"

// Option customizes a generator by mutating its config before drawing.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fixture: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSymbols sets the variable names drawn for symbolic cells.
// Panics when called with no names or an empty name.
func WithSymbols(names ...string) Option {
	if len(names) == 0 {
		panic("fixture: WithSymbols()")
	}
	for _, n := range names {
		if n == "" {
			panic("fixture: WithSymbols(\"\")")
		}
	}
	cp := append([]string(nil), names...)
	return func(c *config) {
		c.symbols = cp
	}
}

// WithMaxInt bounds integer magnitudes to [-n, n]. Panics if n <= 0.
func WithMaxInt(n int) Option {
	if n <= 0 {
		panic("fixture: WithMaxInt(n<=0)")
	}
	return func(c *config) {
		c.maxInt = n
	}
}

// WithSymbolRatio sets the probability p that a cell is symbolic.
// Panics unless 0 <= p <= 1.
func WithSymbolRatio(p float64) Option {
	if p < 0 || p > 1 {
		panic("fixture: WithSymbolRatio(p outside [0,1])")
	}
	return func(c *config) {
		c.symbolRatio = p
	}
}

// WithFractions lets numeric cells be drawn as p/q with 2 <= q <= maxInt.
func WithFractions() Option {
	return func(c *config) {
		c.fractions = true
	}
}

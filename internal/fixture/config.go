// SPDX-License-Identifier: MIT
// Package: matcalc/internal/fixture
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - rng         = seeded with defaultSeed
//   - symbols     = a, b, c
//   - maxInt      = 9
//   - symbolRatio = 0.5
//   - fractions   = off

package fixture

import "math/rand"

const (
	defaultSeed        = int64(1)
	defaultMaxInt      = 9
	defaultSymbolRatio = 0.5
)

var defaultSymbols = []string{"a", "b", "c"}

// config aggregates every generator knob. Passed by value once resolved.
type config struct {
	rng         *rand.Rand
	symbols     []string
	maxInt      int
	symbolRatio float64
	fractions   bool
}

// newConfig applies opts in order over the defaults (later overrides earlier).
func newConfig(opts ...Option) config {
	cfg := config{
		symbols:     defaultSymbols,
		maxInt:      defaultMaxInt,
		symbolRatio: defaultSymbolRatio,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// SPDX-License-Identifier: MIT
// Package: terrainroute/terrain
//
// options.go: functional options for grid construction.
//
// Option constructors panic on meaningless values; constructors never do.

package terrain

import "math/rand"

// defaultSeed keeps grids reproducible when the caller supplies no RNG.
const defaultSeed = int64(1)

// gridConfig aggregates the knobs of NewGrid and NewGridFromRows.
type gridConfig struct {
	costs CostTable
	rng   *rand.Rand
}

// GridOption configures a Grid at construction.
type GridOption func(*gridConfig)

// WithCostTable sets the table used by IsPassable and by default searches.
// Panics if ct is the zero value.
func WithCostTable(ct CostTable) GridOption {
	if !ct.Valid() {
		panic("terrain: WithCostTable requires a table from DefaultCostTable or NewCostTable")
	}
	return func(cfg *gridConfig) {
		cfg.costs = ct
	}
}

// WithSeed draws initial labels from a fresh RNG seeded with seed.
func WithSeed(seed int64) GridOption {
	return func(cfg *gridConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws initial labels from rng. Panics if rng is nil.
func WithRand(rng *rand.Rand) GridOption {
	if rng == nil {
		panic("terrain: WithRand(nil)")
	}
	return func(cfg *gridConfig) {
		cfg.rng = rng
	}
}

func newGridConfig(opts ...GridOption) gridConfig {
	cfg := gridConfig{costs: DefaultCostTable()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng      = nil  (pure/deterministic unless seeded)
//   - radius   = 10   (circle layouts and random scatter extent)
//   - spacing  = 1    (path and grid step)
//   - unitCost = false (costs are Euclidean distances)

package builder

import (
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/vmath"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Radius of circle layouts; half-extent of RandomSparse scatter.
	radius float64
	// Distance between consecutive path/grid nodes.
	spacing float64
	// Every connection costs 1 instead of the endpoint distance.
	unitCost bool
}

const (
	defaultRadius  = 10.0
	defaultSpacing = 1.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		radius:  defaultRadius,
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// cost returns the connection cost between two positions under cfg.
func (cfg builderConfig) cost(a, b orb.Point) float64 {
	if cfg.unitCost {
		return 1
	}

	return vmath.Distance(a, b)
}

// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRadius sets the circle radius used by Cycle, Complete and Star, and
// the half-extent of the RandomSparse scatter square.
// Panics unless r is positive and finite.
func WithRadius(r float64) BuilderOption {
	if !(r > 0) || math.IsInf(r, 0) {
		panic("builder: WithRadius(r<=0)")
	}

	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithSpacing sets the distance between neighbouring Path and Grid nodes.
// Panics unless s is positive and finite.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithSpacing(s<=0)")
	}

	return func(c *builderConfig) {
		c.spacing = s
	}
}

// WithUnitCost gives every connection cost 1, turning cost into hop count.
func WithUnitCost() BuilderOption {
	return func(c *builderConfig) {
		c.unitCost = true
	}
}

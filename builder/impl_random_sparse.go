// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Nodes scattered uniformly in the square [-radius, radius]².
//   - Erdős–Rényi-like: each unordered pair {i,j}, i<j, is connected
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource): positions are random
//     even when p ∈ {0,1}.
//
// Determinism:
//   - All positions are drawn first (x then y per node), then pair trials in
//     (i asc, j asc) order, so a fixed seed yields a fixed graph.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random geometric
// fixture over n nodes with independent connection probability p.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Scatter nodes
		rng := cfg.rng
		pos := make([]orb.Point, n)
		for i := range pos {
			x := (rng.Float64()*2 - 1) * cfg.radius
			y := (rng.Float64()*2 - 1) * cfg.radius
			pos[i] = orb.Point{x, y}
		}
		ids := addNodes(g, pos)

		// 3) Bernoulli trial per unordered pair
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() >= p {
					continue
				}
				if err := connect(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first node, at the origin; n-1 leaves on a circle of cfg.radius.
//   - Spokes hub → leaf in leaf order.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star: one hub and n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := g.AddNode(orb.Point{})
		leaves := addNodes(g, circle(n-1, cfg.radius))
		for _, leaf := range leaves {
			if err := connect(g, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

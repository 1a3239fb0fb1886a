// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Nodes on a circle of cfg.radius, counter-clockwise from angle 0.
//   - Connections i → (i+1)%n for i=0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvnav/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids := addNodes(g, circle(n, cfg.radius))
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

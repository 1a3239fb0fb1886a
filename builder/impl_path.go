// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Nodes at (i*spacing, 0) for i=0..n-1.
//   - Connections i → i+1 in ascending i.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n along the x axis.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		pos := make([]orb.Point, n)
		for i := range pos {
			pos[i] = orb.Point{float64(i) * cfg.spacing, 0}
		}
		ids := addNodes(g, pos)

		for i := 0; i+1 < n; i++ {
			if err := connect(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

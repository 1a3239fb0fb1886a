// SPDX-License-Identifier: MIT
// Package: lvnav/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Nodes in row-major order at (c*spacing, r*spacing).
//   - For each (r,c) connect Right then Bottom neighbour where present.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		pos := make([]orb.Point, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pos = append(pos, orb.Point{float64(c) * cfg.spacing, float64(r) * cfg.spacing})
			}
		}
		ids := addNodes(g, pos)

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err := connect(g, cfg, methodGrid, u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, methodGrid, u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

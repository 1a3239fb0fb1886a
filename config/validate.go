package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnav/pkg/logger"
)

// Validate checks every present section. Errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, err := logger.ParseLogLevel(c.Logger.Level); err != nil {
		return fmt.Errorf("%w: logger: %v", ErrInvalidConfig, err)
	}
	if c.Graph != nil {
		if err := c.Graph.validate(); err != nil {
			return fmt.Errorf("%w: graph: %v", ErrInvalidConfig, err)
		}
	}
	if c.Navmesh != nil {
		if err := c.Navmesh.validate(); err != nil {
			return fmt.Errorf("%w: navmesh: %v", ErrInvalidConfig, err)
		}
	}
	if c.Grid != nil {
		if err := c.Grid.validate(); err != nil {
			return fmt.Errorf("%w: grid: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}

func (g *GraphConfig) validate() error {
	for i, n := range g.Nodes {
		if len(n) != 2 {
			return fmt.Errorf("node %d: want [x, y], got %d values", i, len(n))
		}
	}
	for i, c := range g.Connections {
		if len(c) != 2 && len(c) != 3 {
			return fmt.Errorf("connection %d: want [from, to] or [from, to, cost], got %d values", i, len(c))
		}
		for _, end := range c[:2] {
			if end != math.Trunc(end) || end < 0 || int(end) >= len(g.Nodes) {
				return fmt.Errorf("connection %d: node %v out of range [0, %d)", i, end, len(g.Nodes))
			}
		}
		if len(c) == 3 && (c[2] < 0 || math.IsNaN(c[2])) {
			return fmt.Errorf("connection %d: negative cost %v", i, c[2])
		}
	}

	return nil
}

func (n *NavmeshConfig) validate() error {
	explicit := len(n.Vertices) > 0 || len(n.Triangles) > 0
	switch {
	case n.Rect != nil && explicit:
		return fmt.Errorf("rect and vertices/triangles are mutually exclusive")
	case n.Rect != nil:
		r := n.Rect
		if r.Width <= 0 || r.Height <= 0 || r.Cols < 1 || r.Rows < 1 {
			return fmt.Errorf("rect %vx%v split %dx%d", r.Width, r.Height, r.Cols, r.Rows)
		}
	case !explicit:
		return fmt.Errorf("neither rect nor vertices/triangles given")
	}
	for i, v := range n.Vertices {
		if len(v) != 2 {
			return fmt.Errorf("vertex %d: want [x, y], got %d values", i, len(v))
		}
	}
	for i, t := range n.Triangles {
		if len(t) != 3 {
			return fmt.Errorf("triangle %d: want [a, b, c], got %d values", i, len(t))
		}
	}

	return nil
}

func (g *GridConfig) validate() error {
	if g.Cols < 1 || g.Rows < 1 {
		return fmt.Errorf("dimensions %dx%d", g.Cols, g.Rows)
	}
	if g.CellSize <= 0 || math.IsNaN(g.CellSize) {
		return fmt.Errorf("cell size %v", g.CellSize)
	}
	cells := g.Cols * g.Rows
	for _, id := range g.Walls {
		if id < 0 || id >= cells {
			return fmt.Errorf("wall %d out of range [0, %d)", id, cells)
		}
	}
	for _, id := range g.Mud {
		if id < 0 || id >= cells {
			return fmt.Errorf("mud %d out of range [0, %d)", id, cells)
		}
	}

	return nil
}

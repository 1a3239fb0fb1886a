package flowfield

import (
	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/gridgraph"
)

// Cache keeps computed fields per destination for one grid.
// Every entry is dropped as soon as the grid version moves on.
// A Cache is not safe for concurrent use.
type Cache struct {
	grid    *gridgraph.GridGraph
	opts    []Option
	version uint64
	fields  map[core.NodeID]*Field
}

// NewCache creates an empty cache over grid. opts are applied to every
// heatmap it builds.
func NewCache(grid *gridgraph.GridGraph, opts ...Option) *Cache {
	c := &Cache{
		grid:   grid,
		opts:   opts,
		fields: make(map[core.NodeID]*Field),
	}
	if grid != nil {
		c.version = grid.Version()
	}

	return c
}

// Get returns the field for dest, computing it when missing or stale.
// The second result reports a cache hit.
func (c *Cache) Get(dest core.NodeID) (*Field, bool, error) {
	if c.grid == nil {
		return nil, false, ErrNilGrid
	}
	if v := c.grid.Version(); v != c.version {
		c.Invalidate()
		c.version = v
	}
	if f, ok := c.fields[dest]; ok {
		return f, true, nil
	}

	f, err := Compute(c.grid, dest, c.opts...)
	if err != nil {
		return nil, false, err
	}
	c.fields[dest] = f

	return f, false, nil
}

// Invalidate drops every cached field.
func (c *Cache) Invalidate() {
	clear(c.fields)
}

// Len returns the number of cached fields.
func (c *Cache) Len() int {
	return len(c.fields)
}

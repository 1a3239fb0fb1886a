// Package gridgraph provides a terrain grid backed by a core.Graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Per-cell terrain (Ground, Mud) and walls
//   - Position ↔ cell lookups
//   - Walkable regions and minimum-wall breach paths
//   - A version counter bumped on every change, for cache keys
package gridgraph

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/vmath"
)

// NewGridGraph constructs an open cols×rows grid of Ground cells.
// Returns ErrEmptyGrid if cols or rows is not positive and ErrBadCellSize
// for an invalid CellSize. A zero CellSize means 1.
// Complexity: O(cols×rows×d) time and memory.
func NewGridGraph(cols, rows int, opts GridOptions) (*GridGraph, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrEmptyGrid, cols, rows)
	}
	if opts.CellSize == 0 {
		opts.CellSize = 1
	}
	if opts.CellSize < 0 || math.IsNaN(opts.CellSize) || math.IsInf(opts.CellSize, 0) {
		return nil, fmt.Errorf("%w: %g", ErrBadCellSize, opts.CellSize)
	}

	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	} else {
		offsets = [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	}

	n := cols * rows
	gg := &GridGraph{
		cols:     cols,
		rows:     rows,
		cellSize: opts.CellSize,
		conn:     opts.Conn,
		offsets:  offsets,
		terrain:  make([]TerrainType, n),
		walls:    make([]bool, n),
		graph:    core.NewGraph(),
	}
	for id := 0; id < n; id++ {
		gg.terrain[id] = Ground
		gg.graph.AddNode(gg.center(id))
	}
	// Each pair once, from its lower id; adjacency ends up in ascending id order.
	for id := 0; id < n; id++ {
		for _, nb := range gg.neighbors(id) {
			if nb > id {
				_ = gg.connect(id, nb)
			}
		}
	}

	return gg, nil
}

// FromRows builds a grid from terrain rows: values[r][c] is the terrain
// of cell (c, r). Blocked cells become walls.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrTerrainType.
func FromRows(values [][]TerrainType, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	gg, err := NewGridGraph(cols, len(values), opts)
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		for c, t := range row {
			id := core.NodeID(gg.index(c, r))
			if t == Blocked {
				err = gg.SetWall(id, true)
			} else {
				err = gg.SetTerrain(id, t)
			}
			if err != nil {
				return nil, err
			}
		}
	}
	gg.version = 0

	return gg, nil
}

// Graph returns the backing graph. Callers must mutate topology through
// the GridGraph (SetWall, ToggleWall) so the version stays accurate.
func (gg *GridGraph) Graph() *core.Graph { return gg.graph }

// Cols returns the number of columns.
func (gg *GridGraph) Cols() int { return gg.cols }

// Rows returns the number of rows.
func (gg *GridGraph) Rows() int { return gg.rows }

// CellSize returns the side length of a cell.
func (gg *GridGraph) CellSize() float64 { return gg.cellSize }

// Connectivity returns the neighbour pattern.
func (gg *GridGraph) Connectivity() Connectivity { return gg.conn }

// CellCount returns cols×rows.
func (gg *GridGraph) CellCount() int { return gg.cols * gg.rows }

// Version changes whenever a wall or terrain value changes.
func (gg *GridGraph) Version() uint64 { return gg.version }

// InBounds reports whether (col,row) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(col, row int) bool {
	return col >= 0 && col < gg.cols && row >= 0 && row < gg.rows
}

// Index maps (col,row) to a cell id, or core.InvalidNodeID when out of bounds.
// Complexity: O(1).
func (gg *GridGraph) Index(col, row int) core.NodeID {
	if !gg.InBounds(col, row) {
		return core.InvalidNodeID
	}

	return core.NodeID(gg.index(col, row))
}

// Coordinate converts a cell id back to (col,row).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(id core.NodeID) (col, row int) {
	return int(id) % gg.cols, int(id) / gg.cols
}

// Position returns the centre of cell id.
// Returns ErrCellIndex for ids outside the grid.
func (gg *GridGraph) Position(id core.NodeID) (orb.Point, error) {
	if err := gg.check(id); err != nil {
		return orb.Point{}, err
	}

	return gg.center(int(id)), nil
}

// NodeAt returns the cell containing pos, or core.InvalidNodeID when pos
// lies outside the grid. Cells own their lower and left borders.
// Complexity: O(1).
func (gg *GridGraph) NodeAt(pos orb.Point) core.NodeID {
	col := int(math.Floor(pos[0] / gg.cellSize))
	row := int(math.Floor(pos[1] / gg.cellSize))

	return gg.Index(col, row)
}

// Neighbors returns the in-bounds neighbour cells of id regardless of
// walls, in ascending id order.
func (gg *GridGraph) Neighbors(id core.NodeID) ([]core.NodeID, error) {
	if err := gg.check(id); err != nil {
		return nil, err
	}
	nbs := gg.neighbors(int(id))
	out := make([]core.NodeID, len(nbs))
	for i, nb := range nbs {
		out[i] = core.NodeID(nb)
	}

	return out, nil
}

// Internal helper methods:
////////////////////

// index maps (col,row) to a row-major index: row*cols + col.
func (gg *GridGraph) index(col, row int) int {
	return row*gg.cols + col
}

// center is the world position of the middle of cell id.
func (gg *GridGraph) center(id int) orb.Point {
	col, row := id%gg.cols, id/gg.cols

	return vmath.Scale(orb.Point{float64(col) + 0.5, float64(row) + 0.5}, gg.cellSize)
}

// neighbors lists in-bounds neighbour indices of id in offset order.
func (gg *GridGraph) neighbors(id int) []int {
	col, row := id%gg.cols, id/gg.cols
	out := make([]int, 0, len(gg.offsets))
	for _, d := range gg.offsets {
		c, r := col+d[0], row+d[1]
		if gg.InBounds(c, r) {
			out = append(out, gg.index(c, r))
		}
	}

	return out
}

// connect links two cells with cost equal to the centre distance.
func (gg *GridGraph) connect(a, b int) error {
	cost := vmath.Distance(gg.center(a), gg.center(b))

	return gg.graph.AddConnection(core.NodeID(a), core.NodeID(b), cost)
}

// check validates a cell id.
func (gg *GridGraph) check(id core.NodeID) error {
	if id < 0 || int(id) >= gg.CellCount() {
		return fmt.Errorf("%w: %d", ErrCellIndex, id)
	}

	return nil
}

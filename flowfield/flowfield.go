package flowfield

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/bfs"
	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/gridgraph"
	"github.com/katalvlaran/lvnav/vmath"
)

// BuildHeatmap computes the cost-to-destination of every cell.
//
// Steps:
//  1. Fill with Unreachable and set dest to 0.
//  2. Run one breadth-first search from dest over the grid graph. The grid
//     graph is undirected, so the depth of a cell is the hop count of its
//     shortest path to dest.
//  3. value = hops, plus DifficultPenalty when the cell is Mud.
//
// Walls have no connections and therefore stay Unreachable.
// Complexity: O(V + E).
func BuildHeatmap(grid *gridgraph.GridGraph, dest core.NodeID, opts ...Option) (Heatmap, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if dest < 0 || int(dest) >= grid.CellCount() {
		return nil, fmt.Errorf("%w: %d", ErrDestination, dest)
	}

	heat := make(Heatmap, grid.CellCount())
	for i := range heat {
		heat[i] = Unreachable
	}
	heat[dest] = 0

	res, err := bfs.BFS(grid.Graph(), dest)
	if err != nil {
		return nil, fmt.Errorf("flowfield: heatmap: %w", err)
	}
	for _, cell := range res.Order {
		if cell == dest {
			continue
		}
		v := res.Depth[cell]
		if t, _ := grid.Terrain(cell); t == gridgraph.Mud {
			v += o.DifficultPenalty
		}
		heat[cell] = v
	}

	return heat, nil
}

// BuildVectorField derives a steering vector for every cell from heat.
// Each reachable cell points at the connected neighbour with the strictly
// lowest reachable heatmap value; the first such neighbour in connection
// order wins ties. The destination, unreachable cells and cells without a
// reachable neighbour get the zero vector.
// Complexity: O(V + E).
func BuildVectorField(grid *gridgraph.GridGraph, heat Heatmap, dest core.NodeID) (VectorField, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if len(heat) != grid.CellCount() {
		return nil, fmt.Errorf("%w: %d values for %d cells", ErrHeatmapSize, len(heat), grid.CellCount())
	}
	if dest < 0 || int(dest) >= grid.CellCount() {
		return nil, fmt.Errorf("%w: %d", ErrDestination, dest)
	}

	g := grid.Graph()
	field := make(VectorField, len(heat))
	for i := range heat {
		cell := core.NodeID(i)
		if cell == dest || heat[i] == Unreachable {
			continue
		}
		next := lowestNeighbor(g, heat, cell)
		if next == core.InvalidNodeID {
			continue
		}

		from, _ := g.Position(cell)
		to, _ := g.Position(next)
		field[i] = vmath.Normalize(vmath.Sub(to, from))
	}

	return field, nil
}

// Compute builds the heatmap and vector field for dest in one call.
func Compute(grid *gridgraph.GridGraph, dest core.NodeID, opts ...Option) (*Field, error) {
	heat, err := BuildHeatmap(grid, dest, opts...)
	if err != nil {
		return nil, err
	}
	vectors, err := BuildVectorField(grid, heat, dest)
	if err != nil {
		return nil, err
	}

	return &Field{
		Destination: dest,
		Heatmap:     heat,
		Vectors:     vectors,
		grid:        grid,
	}, nil
}

// Descend follows the field greedily from cell, moving to the neighbour
// its vector points at, until it reaches the destination, a cell with a
// zero vector, or maxSteps moves. It returns the visited cells including
// cell itself.
func (f *Field) Descend(cell core.NodeID, maxSteps int) []core.NodeID {
	g := f.grid.Graph()
	path := []core.NodeID{cell}
	for step := 0; step < maxSteps && cell != f.Destination; step++ {
		if f.Direction(cell) == (orb.Point{}) {
			break
		}
		next := lowestNeighbor(g, f.Heatmap, cell)
		if next == core.InvalidNodeID {
			break
		}
		cell = next
		path = append(path, cell)
	}

	return path
}

// lowestNeighbor returns the first connected neighbour of cell with the
// strictly lowest reachable heat, or core.InvalidNodeID.
func lowestNeighbor(g *core.Graph, heat Heatmap, cell core.NodeID) core.NodeID {
	conns, err := g.ConnectionsFrom(cell)
	if err != nil {
		return core.InvalidNodeID
	}

	lowest := math.MaxInt
	next := core.InvalidNodeID
	for _, c := range conns {
		if int(c.To) >= len(heat) {
			continue
		}
		v := heat[c.To]
		if v == Unreachable || v >= lowest {
			continue
		}
		lowest, next = v, c.To
	}

	return next
}

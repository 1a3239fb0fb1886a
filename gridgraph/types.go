// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvnav.
package gridgraph

import (
	"github.com/katalvlaran/lvnav/core"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, W, E, S.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: NW, N, NE, W, E, SW, S, SE.
	Conn8
)

// TerrainType classifies how hard a cell is to cross.
type TerrainType int

const (
	// Blocked is accepted by FromRows only: the cell becomes a wall
	// with Ground terrain underneath.
	Blocked TerrainType = 0
	// Ground is normal terrain.
	Ground TerrainType = 1
	// Mud is difficult terrain; its value doubles as the default
	// flow-field penalty.
	Mud TerrainType = 2
)

// String implements fmt.Stringer.
func (t TerrainType) String() string {
	switch t {
	case Blocked:
		return "blocked"
	case Ground:
		return "ground"
	case Mud:
		return "mud"
	default:
		return "unknown"
	}
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// CellSize is the side length of a cell in world units.
	CellSize float64
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// CellSize=1, Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		CellSize: 1,
		Conn:     Conn4,
	}
}

// GridGraph is a cols×rows grid of square cells backed by an undirected
// core.Graph with one node per cell. Node id = row*cols + col; node
// position = cell centre. Neighbouring non-wall cells are connected with
// cost equal to the distance between their centres.
//
// Walls keep their node but lose every connection. Terrain does not
// affect the graph; it is read by the flow-field builder.
type GridGraph struct {
	cols, rows int
	cellSize   float64
	conn       Connectivity
	offsets    [][2]int // (dcol, drow) in ascending id order
	terrain    []TerrainType
	walls      []bool
	graph      *core.Graph
	version    uint64
}

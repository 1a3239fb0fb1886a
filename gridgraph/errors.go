package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCellSize indicates a non-positive or non-finite cell size.
	ErrBadCellSize = errors.New("gridgraph: cell size must be positive and finite")
	// ErrCellIndex indicates a cell id outside the grid.
	ErrCellIndex = errors.New("gridgraph: cell index out of range")
	// ErrTerrainType indicates an unknown terrain value.
	ErrTerrainType = errors.New("gridgraph: unknown terrain type")
	// ErrRegionIndex indicates a requested region index is out of range.
	ErrRegionIndex = errors.New("gridgraph: region index out of range")
)

// ErrNoPath indicates no breach path exists between two regions.
var ErrNoPath = errors.New("gridgraph: no path between regions")

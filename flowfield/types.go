// Package flowfield defines the heatmap, vector field and option types
// used to steer many agents toward one destination on a terrain grid.
package flowfield

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/gridgraph"
)

// Sentinel errors for flow-field generation.
var (
	// ErrNilGrid is returned when the grid pointer is nil.
	ErrNilGrid = errors.New("flowfield: grid is nil")

	// ErrDestination is returned when the destination is not a grid cell.
	ErrDestination = errors.New("flowfield: destination outside grid")

	// ErrHeatmapSize is returned when a heatmap does not have one value per cell.
	ErrHeatmapSize = errors.New("flowfield: heatmap size does not match grid")

	// ErrOptionViolation is returned when an option receives an invalid value.
	ErrOptionViolation = errors.New("flowfield: invalid option")
)

// Unreachable marks a heatmap cell with no path to the destination.
const Unreachable = -1

// Heatmap holds one integral cost-to-destination per cell, indexed by
// cell id. The destination is 0; Unreachable marks cut-off cells.
type Heatmap []int

// VectorField holds one direction per cell, indexed by cell id: a unit
// vector toward the next cell on the way down the heatmap, or the zero
// vector for the destination and for unreachable cells.
type VectorField []orb.Point

// Option configures heatmap generation.
type Option func(*Options)

// Options holds heatmap parameters.
type Options struct {
	// DifficultPenalty is added to the hop count of every Mud cell.
	DifficultPenalty int

	err error
}

// DefaultOptions returns Options with DifficultPenalty = int(gridgraph.Mud).
func DefaultOptions() Options {
	return Options{DifficultPenalty: int(gridgraph.Mud)}
}

// WithDifficultPenalty sets the extra cost of a Mud cell. Negative values
// are rejected with ErrOptionViolation.
func WithDifficultPenalty(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: difficult penalty %d", ErrOptionViolation, n)

			return
		}
		o.DifficultPenalty = n
	}
}

// Field bundles the heatmap and vector field computed for one destination.
type Field struct {
	Destination core.NodeID
	Heatmap     Heatmap
	Vectors     VectorField

	grid *gridgraph.GridGraph
}

// Cost returns the heatmap value of cell, or Unreachable for ids outside the field.
func (f *Field) Cost(cell core.NodeID) int {
	if cell < 0 || int(cell) >= len(f.Heatmap) {
		return Unreachable
	}

	return f.Heatmap[cell]
}

// Direction returns the steering vector of cell, or the zero vector for
// ids outside the field.
func (f *Field) Direction(cell core.NodeID) orb.Point {
	if cell < 0 || int(cell) >= len(f.Vectors) {
		return orb.Point{}
	}

	return f.Vectors[cell]
}

// DirectionAt returns the steering vector of the cell containing pos.
// The second result is false when pos lies outside the grid.
func (f *Field) DirectionAt(pos orb.Point) (orb.Point, bool) {
	cell := f.grid.NodeAt(pos)
	if cell == core.InvalidNodeID {
		return orb.Point{}, false
	}

	return f.Direction(cell), true
}

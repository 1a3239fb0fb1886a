// Package flowfield turns a terrain grid into a shared navigation field:
// one heatmap and one vector field per destination, so any number of
// agents can read a movement direction in O(1) per step.
//
// What:
//
//   - BuildHeatmap: hop count to the destination for every cell, plus a
//     penalty on Mud cells; walls and cut-off cells are Unreachable.
//   - BuildVectorField: per cell, a unit vector toward the connected
//     neighbour with the lowest heat.
//   - Compute / Field: both at once, with Cost, Direction, DirectionAt and
//     Descend lookups.
//   - Cache: fields keyed by destination, dropped when the grid version
//     changes.
//
// Complexity:
//
//   - BuildHeatmap:     O(V + E).
//   - BuildVectorField: O(V + E).
//
// Errors:
//
//   - ErrNilGrid: grid pointer is nil.
//   - ErrDestination: destination is not a cell of the grid.
//   - ErrHeatmapSize: heatmap length differs from the cell count.
//   - ErrOptionViolation: invalid option value.
package flowfield

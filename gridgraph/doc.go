// Package gridgraph models a terrain grid as a navigation graph, the
// substrate for flow fields.
//
// What:
//
//   - GridGraph owns a cols×rows core.Graph: one node per cell, positioned
//     at the cell centre, row-major ids (id = row*cols + col).
//   - Neighbouring cells are connected with cost equal to centre distance,
//     under Conn4 (N, W, E, S) or Conn8 (diagonals too).
//   - Cells carry a TerrainType (Ground or Mud) and a wall flag. A wall keeps
//     its node but loses every connection; clearing it reconnects it to its
//     open neighbours.
//   - Regions lists contiguous open areas; BreachPath finds the fewest
//     walls to clear to join two of them (0-1 BFS).
//   - Version increments on every wall or terrain change so derived data
//     (flow fields) can be cached.
//
// Complexity:
//
//   - NewGridGraph: O(cols×rows×d), Memory: O(cols×rows×d).
//   - SetWall:      O(d²).
//   - Regions:      O(cols×rows×d).
//   - BreachPath:   O(cols×rows×d).
//
// Errors:
//
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrNonRectangular: FromRows rows have differing lengths.
//   - ErrBadCellSize: CellSize is negative, NaN or infinite.
//   - ErrCellIndex: cell id outside the grid.
//   - ErrTerrainType: terrain other than Ground or Mud.
//   - ErrRegionIndex: region index out of range.
//   - ErrNoPath: no breach path exists.
package gridgraph

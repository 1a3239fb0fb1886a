// Package navmesh answers point-to-point queries over a triangulated
// walkable surface.
//
// What:
//
//   - Mesh: vertices, unique lines, triangles and an R-tree
//     (github.com/dhconnelly/rtreego) over triangle bounds for TriangleAt.
//   - Graph: one node at the midpoint of each line shared by two triangles;
//     nodes on a common triangle are connected at Euclidean cost.
//   - FindPath: injects the query points into a clone of the graph, runs
//     A* (Chebyshev by default) and smooths the node path with the simple
//     stupid funnel algorithm.
//
// Polygon triangulation is not part of this package: callers supply
// triangles, or use NewRectMesh for an open rectangle.
//
// Complexity:
//
//   - NewMesh:    O(T log T).
//   - NewGraph:   O(L + T).
//   - TriangleAt: O(log T) expected.
//   - FindPath:   O(V + E) for the clone plus A*.
//
// Errors:
//
//   - ErrTooFewVertices, ErrBadTriangle, ErrBadDimensions: mesh construction.
//   - ErrLineIndex, ErrTriangleIndex: accessor indices out of range.
//   - ErrNilMesh: NewGraph received nil.
package navmesh

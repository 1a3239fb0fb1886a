// Package dfs implements depth-first search traversal on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every component
//   - Components: groups nodes of an undirected graph into connected
//     components.
//
// Why:
//   - Connectivity checks before Eulerian path construction
//   - Detecting navmesh islands that no query can cross
//
// Complexity:
//
//   - DFS:        Time O(V+E), Memory O(V)
//   - Components: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start node not in graph
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs

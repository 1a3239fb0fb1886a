// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → hops from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Hooks: OnEnqueue and OnVisit (the latter may abort with an error).
//   - Filtering of individual neighbor connections via WithFilterNeighbor.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - FindPath: fewest-hop path between two nodes, used by the flow-field
//     heatmap.
//
// Determinism
//
//	Neighbors are enqueued in connection insertion order, so the visit
//	sequence and the chosen shortest path are fully reproducible.
//
// Complexity (V = |Nodes|, E = |Connections|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start, bfs.WithMaxDepth(3))
//	path, err := res.PathTo(target)
//
//	path, err := bfs.FindPath(g, start, goal) // empty when unreachable
package bfs

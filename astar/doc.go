// Package astar finds the cheapest route between two nodes of a
// core.Graph with the A* algorithm.
//
// What
//
//   - FindPath(g, start, goal, opts...) returns the node sequence
//     start → goal, or an empty slice when the goal is unreachable.
//   - The heuristic receives the absolute x/y deltas between a node's
//     position and the goal's position. Provided: Manhattan, Euclidean,
//     SqrtEuclidean (inadmissible), Octile, Chebyshev (default), Zero.
//   - HeuristicByName resolves them from configuration strings.
//
// Determinism
//
//	Open records with equal estimates are expanded in the order they were
//	encountered. A record replaced by a cheaper one counts as newly
//	encountered. Connections are expanded in insertion order.
//
// Complexity
//
//   - Time:   O((V + E) log V) with a consistent heuristic; reopening can
//     add more work for inconsistent ones.
//   - Memory: O(V)
//
// Errors
//
//   - ErrNilGraph          g is nil
//   - ErrNodeNotFound      start or goal is not a live node
//   - ErrNilHeuristic      WithHeuristic(nil)
//   - ErrUnknownHeuristic  HeuristicByName got an unknown name
package astar

// Package dijkstra provides Dijkstra's shortest-path algorithm on
// core.Graph instances with non-negative connection costs.
//
// Overview:
//
//   - Computes the minimum-cost path from a single source node to all
//     reachable nodes in O((V + E) log V) time.
//   - Relies on a min-heap to always expand the next-closest node.
//   - Supports optional path reconstruction, distance caps, and
//     "impassable" connection thresholds.
//
// When to use:
//
//   - As the exact baseline that heuristic searches (package astar) are
//     checked against.
//   - For one-to-many queries, where a single run answers every
//     destination at once.
//
// Usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
//	path, err := dijkstra.PathTo(prev, 0, target)
package dijkstra

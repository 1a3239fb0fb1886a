// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for configuration flags and catalog sizes.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// Directed reports whether connections are one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	return g.directed
}

// Looped reports whether self-connections are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// NodeCount returns the number of live nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return g.nodeCount
}

// ConnectionCount returns the number of logical connections: a mirrored
// undirected pair counts once.
// Complexity: O(1).
func (g *Graph) ConnectionCount() int {
	return g.connectionCount
}

// Capacity returns one past the highest id ever handed out. Slices indexed
// by NodeID (heatmaps, visited flags) can be sized with it.
// Complexity: O(1).
func (g *Graph) Capacity() int {
	return len(g.nodes)
}

// GraphStats is a snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Directed        bool
	Looped          bool
	NodeCount       int
	ConnectionCount int
	StoredCount     int // directed connections actually stored (mirrors included)
}

// Stats produces a snapshot of flags and counts.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	stored := 0
	for _, conns := range g.adjacency {
		stored += len(conns)
	}

	return GraphStats{
		Directed:        g.directed,
		Looped:          g.allowLoops,
		NodeCount:       g.nodeCount,
		ConnectionCount: g.connectionCount,
		StoredCount:     stored,
	}
}

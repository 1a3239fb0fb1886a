// Package core: whole-graph queries and bulk mutation.

package core

import (
	"fmt"

	"github.com/paulmach/orb/planar"
)

// Degree returns the number of outgoing connections of id. On undirected
// graphs this equals the classical vertex degree (a self-loop counts once).
// Returns ErrNodeNotFound if id is not live.
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) (int, error) {
	if !g.HasNode(id) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return len(g.adjacency[id]), nil
}

// SetAllCostsToDistance recomputes every connection cost as the Euclidean
// distance between the positions of its endpoints.
// Complexity: O(E).
func (g *Graph) SetAllCostsToDistance() {
	for _, conns := range g.adjacency {
		for _, c := range conns {
			c.Cost = planar.Distance(g.nodes[c.From].Position, g.nodes[c.To].Position)
		}
	}
}

// PathCost sums the connection costs along path. A path of zero or one
// node costs 0.
// Returns ErrConnectionNotFound (wrapped with the failing hop) if two
// consecutive nodes are not connected.
// Complexity: O(Σ deg(path[i])).
func (g *Graph) PathCost(path []NodeID) (float64, error) {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		c, err := g.Connection(path[i], path[i+1])
		if err != nil {
			return 0, fmt.Errorf("core: path hop %d: %w", i, err)
		}
		total += c.Cost
	}

	return total, nil
}

// Clear removes all nodes and connections but preserves flags.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.nodes = nil
	g.adjacency = nil
	g.nodeCount = 0
	g.connectionCount = 0
}

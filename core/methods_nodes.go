// Package core: node lifecycle and lookup.
//
// Nodes live in an arena slice indexed by NodeID. Removal leaves a nil slot
// so that ids are never recycled.

package core

import (
	"fmt"

	"github.com/paulmach/orb"
)

// AddNode appends a node at pos and returns its id.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(pos orb.Point) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, &Node{ID: id, Position: pos})
	g.adjacency = append(g.adjacency, nil)
	g.nodeCount++

	return id
}

// HasNode reports whether id refers to a live node.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes) && g.nodes[id] != nil
}

// Node returns a copy of the node with the given id.
// Returns ErrNodeNotFound if id is not live.
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (Node, error) {
	if !g.HasNode(id) {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return *g.nodes[id], nil
}

// Position returns the position of node id.
// Returns ErrNodeNotFound if id is not live.
// Complexity: O(1).
func (g *Graph) Position(id NodeID) (orb.Point, error) {
	if !g.HasNode(id) {
		return orb.Point{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return g.nodes[id].Position, nil
}

// SetPosition moves node id to pos. Connection costs are not touched;
// call SetAllCostsToDistance afterwards if costs track geometry.
// Complexity: O(1).
func (g *Graph) SetPosition(id NodeID, pos orb.Point) error {
	if !g.HasNode(id) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	g.nodes[id].Position = pos

	return nil
}

// Nodes returns copies of all live nodes in ascending id order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, g.nodeCount)
	for _, n := range g.nodes {
		if n != nil {
			out = append(out, *n)
		}
	}

	return out
}

// NodeIDs returns the ids of all live nodes in ascending order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []NodeID {
	out := make([]NodeID, 0, g.nodeCount)
	for _, n := range g.nodes {
		if n != nil {
			out = append(out, n.ID)
		}
	}

	return out
}

// RemoveNode deletes node id together with every connection that starts or
// ends at it. The id is retired and never handed out again.
// Returns ErrNodeNotFound if id is not live.
// Complexity: O(V + E).
func (g *Graph) RemoveNode(id NodeID) error {
	if err := g.RemoveConnectionsWithNode(id); err != nil {
		return err
	}
	g.nodes[id] = nil
	g.adjacency[id] = nil
	g.nodeCount--

	return nil
}

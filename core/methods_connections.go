// Package core: connection lifecycle and queries.
//
// Adjacency is stored as adjacency[from] = []*Connection in insertion order.
// Undirected graphs mirror every non-loop connection in adjacency[to].

package core

import (
	"fmt"
	"math"
)

// AddConnection links from → to with the given cost. On undirected graphs
// the mirror to → from is stored as well.
//
// Returns ErrNodeNotFound, ErrLoopNotAllowed, ErrNegativeCost or
// ErrConnectionExists.
// Complexity: O(deg(from)).
func (g *Graph) AddConnection(from, to NodeID, cost float64) error {
	// 1) Both endpoints must be live
	if !g.HasNode(from) {
		return fmt.Errorf("%w: from=%d", ErrNodeNotFound, from)
	}
	if !g.HasNode(to) {
		return fmt.Errorf("%w: to=%d", ErrNodeNotFound, to)
	}
	// 2) Loop constraint
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}
	// 3) Cost constraint
	if cost < 0 || math.IsNaN(cost) {
		return fmt.Errorf("%w: %d→%d cost=%g", ErrNegativeCost, from, to, cost)
	}
	// 4) No parallel connections
	if g.indexOf(from, to) >= 0 {
		return fmt.Errorf("%w: %d→%d", ErrConnectionExists, from, to)
	}

	// 5) Store, mirroring when undirected
	g.adjacency[from] = append(g.adjacency[from], &Connection{From: from, To: to, Cost: cost})
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], &Connection{From: to, To: from, Cost: cost})
	}
	g.connectionCount++

	return nil
}

// RemoveConnection deletes from → to, and its mirror on undirected graphs.
// Returns ErrNodeNotFound or ErrConnectionNotFound.
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) RemoveConnection(from, to NodeID) error {
	if !g.HasNode(from) || !g.HasNode(to) {
		return fmt.Errorf("%w: %d→%d", ErrNodeNotFound, from, to)
	}
	if !g.unlink(from, to) {
		return fmt.Errorf("%w: %d→%d", ErrConnectionNotFound, from, to)
	}
	if !g.directed && from != to {
		g.unlink(to, from)
	}
	g.connectionCount--

	return nil
}

// RemoveConnectionsWithNode deletes every connection touching id, in both
// directions. The node itself stays.
// Returns ErrNodeNotFound if id is not live.
// Complexity: O(V + E).
func (g *Graph) RemoveConnectionsWithNode(id NodeID) error {
	if !g.HasNode(id) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	// Outgoing side: on undirected graphs each one also drops its mirror.
	for _, c := range g.adjacency[id] {
		if !g.directed && c.To != id {
			g.unlink(c.To, id)
		}
		g.connectionCount--
	}
	g.adjacency[id] = nil

	// Incoming side only exists separately on directed graphs.
	if g.directed {
		for from := range g.adjacency {
			if g.unlink(NodeID(from), id) {
				g.connectionCount--
			}
		}
	}

	return nil
}

// HasConnection reports whether from → to exists.
// Complexity: O(deg(from)).
func (g *Graph) HasConnection(from, to NodeID) bool {
	if !g.HasNode(from) {
		return false
	}

	return g.indexOf(from, to) >= 0
}

// Connection returns a copy of from → to.
// Returns ErrNodeNotFound or ErrConnectionNotFound.
// Complexity: O(deg(from)).
func (g *Graph) Connection(from, to NodeID) (Connection, error) {
	if !g.HasNode(from) {
		return Connection{}, fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	i := g.indexOf(from, to)
	if i < 0 {
		return Connection{}, fmt.Errorf("%w: %d→%d", ErrConnectionNotFound, from, to)
	}

	return *g.adjacency[from][i], nil
}

// ConnectionsFrom returns copies of the outgoing connections of id in
// insertion order. On undirected graphs this is the full neighbourhood.
// Returns ErrNodeNotFound if id is not live.
// Complexity: O(deg(id)).
func (g *Graph) ConnectionsFrom(id NodeID) ([]Connection, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	out := make([]Connection, len(g.adjacency[id]))
	for i, c := range g.adjacency[id] {
		out[i] = *c
	}

	return out, nil
}

// Connections returns copies of every stored connection, grouped by
// ascending From and insertion order within a node. Undirected graphs
// report both halves of each mirrored pair.
// Complexity: O(V + E).
func (g *Graph) Connections() []Connection {
	out := make([]Connection, 0, g.connectionCount*2)
	for _, conns := range g.adjacency {
		for _, c := range conns {
			out = append(out, *c)
		}
	}

	return out
}

// SetConnectionCost updates the cost of from → to (and its mirror).
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) SetConnectionCost(from, to NodeID, cost float64) error {
	if cost < 0 || math.IsNaN(cost) {
		return fmt.Errorf("%w: %d→%d cost=%g", ErrNegativeCost, from, to, cost)
	}
	if !g.HasNode(from) || !g.HasNode(to) {
		return fmt.Errorf("%w: %d→%d", ErrNodeNotFound, from, to)
	}
	i := g.indexOf(from, to)
	if i < 0 {
		return fmt.Errorf("%w: %d→%d", ErrConnectionNotFound, from, to)
	}
	g.adjacency[from][i].Cost = cost
	if !g.directed && from != to {
		if j := g.indexOf(to, from); j >= 0 {
			g.adjacency[to][j].Cost = cost
		}
	}

	return nil
}

// Internal helper methods:
////////////////////

// indexOf returns the position of from → to in adjacency[from], or -1.
func (g *Graph) indexOf(from, to NodeID) int {
	for i, c := range g.adjacency[from] {
		if c.To == to {
			return i
		}
	}

	return -1
}

// unlink removes from → to from adjacency[from] preserving order.
// Reports whether a connection was removed.
func (g *Graph) unlink(from, to NodeID) bool {
	i := g.indexOf(from, to)
	if i < 0 {
		return false
	}
	conns := g.adjacency[from]
	copy(conns[i:], conns[i+1:])
	conns[len(conns)-1] = nil
	g.adjacency[from] = conns[:len(conns)-1]

	return true
}

// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves ids, removed slots, and per-node connection order, so
//     the next AddNode on the clone returns the same id it would on the source.

package core

// CloneEmpty returns a new Graph with identical configuration and nodes,
// but no connections.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	clone := NewGraph(WithDirected(g.directed))
	clone.allowLoops = g.allowLoops
	clone.nodes = make([]*Node, len(g.nodes))
	clone.adjacency = make([][]*Connection, len(g.adjacency))
	for i, n := range g.nodes {
		if n != nil {
			cp := *n
			clone.nodes[i] = &cp
		}
	}
	clone.nodeCount = g.nodeCount

	return clone
}

// Clone returns a deep copy of the Graph: configuration, nodes, and
// connections. Mutating the clone never affects the source.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for i, conns := range g.adjacency {
		if len(conns) == 0 {
			continue
		}
		cp := make([]*Connection, len(conns))
		for j, c := range conns {
			dup := *c
			cp[j] = &dup
		}
		clone.adjacency[i] = cp
	}
	clone.connectionCount = g.connectionCount

	return clone
}

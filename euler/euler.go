// Package euler classifies undirected graphs by Eulerianity and builds
// Euler trails and circuits with Hierholzer's algorithm.
//
// Complexity:
//
//   - IsEulerian: O(V + E)
//   - FindPath:   O(V + E·d) where d is the maximum degree, since every
//     removed connection is located by a scan of its endpoint's adjacency.
package euler

import (
	"fmt"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/dfs"
)

// IsEulerian classifies g without mutating it.
//
// The graph must be connected: a DFS from the first node (ascending id)
// with at least one connection must reach every node, isolated nodes
// included. A graph with no connections is NotEulerian. A connected graph
// is then Eulerian with no odd-degree nodes, SemiEulerian with exactly
// two, and NotEulerian otherwise.
func IsEulerian(g *core.Graph) (Eulerianity, error) {
	if g == nil {
		return NotEulerian, ErrNilGraph
	}
	if g.Directed() {
		return NotEulerian, ErrDirectedGraph
	}

	// 1) Connectivity
	connected, err := isConnected(g)
	if err != nil {
		return NotEulerian, err
	}
	if !connected {
		return NotEulerian, nil
	}

	// 2) Degree parity
	odd := len(oddNodes(g))
	switch odd {
	case 0:
		return Eulerian, nil
	case 2:
		return SemiEulerian, nil
	default:
		return NotEulerian, nil
	}
}

// FindPath classifies g and, when it admits a trail, returns one that
// uses every connection exactly once. Eulerian graphs yield a circuit
// starting and ending at the lowest node id; SemiEulerian graphs start at
// the lowest odd-degree node and end at the other. NotEulerian graphs
// yield an empty path. g itself is never modified.
func FindPath(g *core.Graph) ([]core.NodeID, Eulerianity, error) {
	kind, err := IsEulerian(g)
	if err != nil {
		return nil, kind, err
	}

	// 1) Work on a private copy: the walk consumes connections
	work := g.Clone()

	// 2) Pick the start
	var start core.NodeID
	switch kind {
	case Eulerian:
		start = work.NodeIDs()[0]
	case SemiEulerian:
		start = oddNodes(work)[0]
	default:
		return []core.NodeID{}, kind, nil
	}

	// 3) Hierholzer: follow unused connections, back out when stuck
	var (
		path  = make([]core.NodeID, 0, g.ConnectionCount()+1)
		stack []core.NodeID
		cur   = start
	)
	for {
		conns, err := work.ConnectionsFrom(cur)
		if err != nil {
			return nil, kind, fmt.Errorf("euler: walk at %d: %w", cur, err)
		}
		if len(conns) > 0 {
			stack = append(stack, cur)
			next := conns[0].To
			if err = work.RemoveConnection(cur, next); err != nil {
				return nil, kind, fmt.Errorf("euler: consume %d→%d: %w", cur, next, err)
			}
			cur = next
			continue
		}
		if len(stack) == 0 {
			break
		}
		path = append(path, cur)
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
	path = append(path, cur)

	// 4) Nodes were collected end-first
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, kind, nil
}

// isConnected reports whether a DFS from the first node with a
// connection reaches every node.
func isConnected(g *core.Graph) (bool, error) {
	root := core.InvalidNodeID
	for _, id := range g.NodeIDs() {
		if d, _ := g.Degree(id); d > 0 {
			root = id
			break
		}
	}
	if root == core.InvalidNodeID {
		return false, nil
	}
	res, err := dfs.DFS(g, root)
	if err != nil {
		return false, fmt.Errorf("euler: connectivity: %w", err)
	}

	return len(res.Visited) == g.NodeCount(), nil
}

// oddNodes lists nodes of odd degree in ascending id order.
func oddNodes(g *core.Graph) []core.NodeID {
	var out []core.NodeID
	for _, id := range g.NodeIDs() {
		if d, _ := g.Degree(id); d%2 == 1 {
			out = append(out, id)
		}
	}

	return out
}

// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - Connection costs are validated non-negative by core.Graph on insertion,
//     so no upfront scan is needed.
//   - Any connection with cost ≥ InfEdgeThreshold is an impassable wall.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - A lazy decrease-key strategy pushes duplicates into the heap and ignores stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvnav/core"
)

// Dijkstra computes shortest distances from Options.Source to all other
// nodes of g.
//
// Returns:
//
//   - dist: map from node id to minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u;
//     unreachable nodes and the source map to core.InvalidNodeID.
//   - err:  error if inputs are invalid.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[core.NodeID]float64, map[core.NodeID]core.NodeID, error) {
	// 1) Build Options
	cfg := DefaultOptions(core.InvalidNodeID)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided
	if cfg.Source == core.InvalidNodeID {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 5) Prepare runner state
	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[core.NodeID]float64, n),
		prev:    make(map[core.NodeID]core.NodeID, n),
		visited: make(map[core.NodeID]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 6) Initialize algorithm state and run main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds source → dest from a predecessor map returned by
// Dijkstra with WithReturnPath.
// Returns ErrNoPath if dest was not reached.
// Complexity: O(path length).
func PathTo(prev map[core.NodeID]core.NodeID, source, dest core.NodeID) ([]core.NodeID, error) {
	if dest == source {
		return []core.NodeID{source}, nil
	}
	if p, ok := prev[dest]; !ok || p == core.InvalidNodeID {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, source, dest)
	}
	var path []core.NodeID
	for cur := dest; cur != core.InvalidNodeID; cur = prev[cur] {
		path = append(path, cur)
		if cur == source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph                 // The input graph; read-only within Dijkstra.
	options Options                     // Configuration options.
	dist    map[core.NodeID]float64     // Node → current best distance from Source.
	prev    map[core.NodeID]core.NodeID // Node → predecessor on the shortest path.
	visited map[core.NodeID]bool        // Tracks if a node's distance is finalized.
	pq      nodePQ                      // Min-heap of *nodeItem for lazy priority queue.
}

// init sets up initial distances and predecessors, and pushes Source=0 into the heap.
func (r *runner) init() {
	for _, v := range r.g.NodeIDs() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = core.InvalidNodeID
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the node with the minimum distance and
// relaxes its outgoing connections.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Skip stale heap entries.
		if r.visited[item.id] {
			continue
		}

		// 3) Past MaxDistance nothing else can be closer.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize and relax.
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve distances to every neighbor of u.
func (r *runner) relax(u core.NodeID) error {
	conns, err := r.g.ConnectionsFrom(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get connections of %d: %w", u, err)
	}

	for _, c := range conns {
		if c.Cost >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + c.Cost
		if newDist > r.options.MaxDistance || newDist >= r.dist[c.To] {
			continue
		}
		r.dist[c.To] = newDist
		r.prev[c.To] = u
		heap.Push(&r.pq, &nodeItem{id: c.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a node and its current distance from the source.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem, ordered by nodeItem.dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

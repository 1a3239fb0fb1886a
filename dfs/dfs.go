// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - Components: connected components of an undirected graph
//
// Complexity:
//
//   - Time:   O(V + E), plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvnav/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from start.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, start core.NodeID, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 4. Initialize result with capacity hint
	ids := g.NodeIDs()
	res := &DFSResult{
		Order:   make([]core.NodeID, 0, len(ids)),
		Depth:   make(map[core.NodeID]int, len(ids)),
		Parent:  make(map[core.NodeID]core.NodeID, len(ids)),
		Visited: make(map[core.NodeID]bool, len(ids)),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range ids {
			if !res.Visited[v] {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := walker.traverse(start, 0); err != nil {
		return res, err
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// Components returns the connected components of g, each listing its
// nodes in discovery order. Components are ordered by their lowest id.
// On directed graphs the result is reachability from each unvisited root,
// not strong connectivity.
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var (
		out     [][]core.NodeID
		visited = make(map[core.NodeID]bool, g.NodeCount())
	)
	for _, root := range g.NodeIDs() {
		if visited[root] {
			continue
		}
		var comp []core.NodeID
		_, err := DFS(g, root,
			WithFilterNeighbor(func(id core.NodeID) bool { return !visited[id] }),
			WithOnVisit(func(id core.NodeID) error {
				visited[id] = true
				comp = append(comp, id)

				return nil
			}),
		)
		if err != nil {
			return nil, err
		}
		out = append(out, comp)
	}

	return out, nil
}

// traverse visits node id at given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id core.NodeID, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 5. Fetch connections once
	conns, err := w.graph.ConnectionsFrom(id)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: ConnectionsFrom(%d): %w", id, err)
	}

	// 6. Explore each neighbor
	for _, c := range conns {
		nid := c.To
		if nid == id {
			continue
		}

		// Neighbor filtering
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}

		// Recurse on unvisited
		if !w.res.Visited[nid] {
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 7. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	// 8. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}

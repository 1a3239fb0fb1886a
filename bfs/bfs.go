// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// BFS explores nodes in increasing hop distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
// Connection costs are ignored.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnav/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// errStop ends the main loop early without surfacing an error.
var errStop = errors.New("bfs: stop")

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start node
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// Prepare walker
	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, g.Capacity()),
		res: &BFSResult{
			Start:  start,
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, core.InvalidNodeID)
	if err := w.loop(); err != nil && !errors.Is(err, errStop) {
		return w.res, err
	}

	return w.res, nil
}

// FindPath returns the fewest-hop path start → goal, both endpoints
// included. An unreachable goal yields an empty path and no error.
// Complexity: O(V + E).
func FindPath(g *core.Graph, start, goal core.NodeID) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(goal) {
		return nil, fmt.Errorf("%w: %d", ErrGoalVertexNotFound, goal)
	}
	res, err := BFS(g, start, WithStopAt(goal))
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(goal)
	if errors.Is(err, ErrNoPath) {
		return []core.NodeID{}, nil
	}

	return path, err
}

// enqueue marks id visited at depth d, records its parent,
// calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != core.InvalidNodeID {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if item.id == w.opts.StopAt {
			return errStop
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors walks outgoing connections, applies filtering and
// MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	conns, err := w.graph.ConnectionsFrom(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, c := range conns {
		if w.visited[c.To] || !w.opts.FilterNeighbor(item.id, c.To) {
			continue
		}
		w.enqueue(c.To, nextDepth, item.id)
	}

	return nil
}

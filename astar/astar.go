// Package astar implements A* search over a core.Graph using node
// positions for the heuristic.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
)

// record is the search state of one node.
type record struct {
	node     core.NodeID
	parent   *core.Connection // nil for the start record
	cost     float64          // cost so far
	estimate float64          // cost so far + heuristic
	seq      uint64           // encounter order, breaks estimate ties
	index    int              // heap position; -1 once popped
}

// runner holds the mutable state of a single FindPath call.
type runner struct {
	g      *core.Graph
	h      Heuristic
	goal   core.NodeID
	target orb.Point
	open   openSet
	inOpen map[core.NodeID]*record
	closed map[core.NodeID]*record
	seq    uint64
}

// FindPath returns the cheapest node sequence from start to goal, both
// included. An unreachable goal yields an empty slice and a nil error;
// start == goal yields [start].
//
// Open records are ordered by estimated total cost, ties going to the
// record encountered first. A closed node is reopened when a cheaper way
// to reach it turns up, so inconsistent heuristics still return valid
// (if not always optimal) paths.
//
// Complexity: O((V + E) log V) with a consistent heuristic.
func FindPath(g *core.Graph, start, goal core.NodeID, opts ...Option) ([]core.NodeID, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start=%d", ErrNodeNotFound, start)
	}
	target, err := g.Position(goal)
	if err != nil {
		return nil, fmt.Errorf("%w: goal=%d", ErrNodeNotFound, goal)
	}

	// 2) Seed the open set with the start record
	r := &runner{
		g:      g,
		h:      o.Heuristic,
		goal:   goal,
		target: target,
		inOpen: make(map[core.NodeID]*record),
		closed: make(map[core.NodeID]*record),
	}
	pos, _ := g.Position(start)
	r.push(&record{node: start, estimate: r.estimate(pos)})

	// 3) Main loop
	for r.open.Len() > 0 {
		current := heap.Pop(&r.open).(*record)
		delete(r.inOpen, current.node)
		if current.node == goal {
			return r.reconstruct(current, start), nil
		}
		r.closed[current.node] = current
		r.expand(current)
	}

	return []core.NodeID{}, nil
}

// expand relaxes every outgoing connection of current.
func (r *runner) expand(current *record) {
	conns, err := r.g.ConnectionsFrom(current.node)
	if err != nil {
		return
	}
	for i := range conns {
		c := conns[i]
		pos, err := r.g.Position(c.To)
		if err != nil {
			continue
		}
		cost := current.cost + c.Cost

		// 1) Closed: keep the cheaper one, reopen otherwise
		if rec, ok := r.closed[c.To]; ok {
			if rec.cost <= cost {
				continue
			}
			delete(r.closed, c.To)
		} else if rec, ok := r.inOpen[c.To]; ok {
			// 2) Open: replace only with a strictly cheaper record
			if rec.cost <= cost {
				continue
			}
			heap.Remove(&r.open, rec.index)
			delete(r.inOpen, c.To)
		}

		// 3) Push the new record
		r.push(&record{
			node:     c.To,
			parent:   &c,
			cost:     cost,
			estimate: cost + r.estimate(pos),
		})
	}
}

// push stamps rec with the next sequence number and adds it to the open set.
func (r *runner) push(rec *record) {
	rec.seq = r.seq
	r.seq++
	heap.Push(&r.open, rec)
	r.inOpen[rec.node] = rec
}

// estimate applies the heuristic to the absolute deltas from p to the goal.
func (r *runner) estimate(p orb.Point) float64 {
	return r.h(math.Abs(r.target[0]-p[0]), math.Abs(r.target[1]-p[1]))
}

// reconstruct walks parent connections back through the closed set.
// A record without a parent, or a parent missing from the closed set,
// ends the walk; start is then appended.
func (r *runner) reconstruct(goal *record, start core.NodeID) []core.NodeID {
	var path []core.NodeID
	for cur := goal; cur.parent != nil; {
		path = append(path, cur.node)
		prev, ok := r.closed[cur.parent.From]
		if !ok {
			break
		}
		cur = prev
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// openSet is an indexed min-heap on (estimate, seq).
type openSet []*record

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].estimate != s[j].estimate {
		return s[i].estimate < s[j].estimate
	}

	return s[i].seq < s[j].seq
}

func (s openSet) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].index = i
	s[j].index = j
}

func (s *openSet) Push(x interface{}) {
	rec := x.(*record)
	rec.index = len(*s)
	*s = append(*s, rec)
}

func (s *openSet) Pop() interface{} {
	old := *s
	n := len(old)
	rec := old[n-1]
	old[n-1] = nil
	rec.index = -1
	*s = old[:n-1]

	return rec
}

package navmesh

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/astar"
	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/funnel"
	"github.com/katalvlaran/lvnav/vmath"
)

// FindPath returns a smoothed path from start to end across the mesh.
//
// Steps:
//  1. Locate the start and end triangles; off-mesh points give an empty Result.
//  2. Same triangle: the path is just [end].
//  3. On a clone of the graph add a start node linked to the nodes on the
//     start triangle's lines and an end node linked from the nodes on the
//     end triangle's lines, at Euclidean cost.
//  4. Run A* (Chebyshev unless opts override it).
//  5. Turn the node path into portals and run the funnel over them.
//
// The receiver is not modified.
func (ng *Graph) FindPath(start, end orb.Point, opts ...astar.Option) (*Result, error) {
	// 1) Locate
	st, ok := ng.mesh.TriangleAt(start)
	if !ok {
		return &Result{}, nil
	}
	et, ok := ng.mesh.TriangleAt(end)
	if !ok {
		return &Result{}, nil
	}

	// 2) Direct
	if st.Index == et.Index {
		return &Result{Path: []orb.Point{end}}, nil
	}

	// 3) Inject endpoints
	g := ng.graph.Clone()
	startID := g.AddNode(start)
	if err := ng.link(g, st, startID, start, true); err != nil {
		return nil, err
	}
	endID := g.AddNode(end)
	if err := ng.link(g, et, endID, end, false); err != nil {
		return nil, err
	}

	// 4) Search
	nodePath, err := astar.FindPath(g, startID, endID, opts...)
	if err != nil {
		return nil, fmt.Errorf("navmesh: %w", err)
	}
	if len(nodePath) == 0 {
		return &Result{}, nil
	}

	// 5) Smooth
	positions := make([]orb.Point, len(nodePath))
	steps := make([]funnel.Step, len(nodePath))
	for i, id := range nodePath {
		pos, _ := g.Position(id)
		positions[i] = pos
		steps[i].Position = pos
		if li := ng.LineIndex(id); li != NoLine {
			steps[i].Edge = ng.mesh.lines[li].Segment()
		}
	}
	portals := funnel.FindPortals(steps)

	return &Result{
		Path:          funnel.OptimizePortals(portals),
		NodePath:      nodePath,
		NodePositions: positions,
		Portals:       portals,
	}, nil
}

// link connects the synthetic node id at pos with every line node of t.
// outgoing selects id → node; otherwise node → id.
func (ng *Graph) link(g *core.Graph, t Triangle, id core.NodeID, pos orb.Point, outgoing bool) error {
	for _, li := range t.Lines {
		nid := ng.NodeIDFromLine(li)
		if nid == core.InvalidNodeID {
			continue
		}
		np, _ := g.Position(nid)
		from, to := id, nid
		if !outgoing {
			from, to = nid, id
		}
		if err := g.AddConnection(from, to, vmath.Distance(pos, np)); err != nil {
			return fmt.Errorf("navmesh: link triangle %d: %w", t.Index, err)
		}
	}

	return nil
}

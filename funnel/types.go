package funnel

import "github.com/paulmach/orb"

// Segment is an undirected line segment, typically a navmesh edge.
type Segment struct {
	P1, P2 orb.Point
}

// Step is one waypoint of a node path: its position, and for interior
// waypoints the mesh edge it sits on. The edge of the first and last
// step is ignored.
type Step struct {
	Position orb.Point
	Edge     Segment
}

// Portal is an edge crossed by the path, oriented relative to travel.
// Right == Left marks a degenerate portal (path start or end).
type Portal struct {
	Right, Left orb.Point
}

// Degenerate reports whether the portal collapses to a point.
func (p Portal) Degenerate() bool {
	return p.Right.Equal(p.Left)
}

// Package navmesh defines the mesh geometry, navigation graph and query
// result types of github.com/katalvlaran/lvnav.
package navmesh

import (
	"errors"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/funnel"
)

// Sentinel errors for mesh construction and lookups.
var (
	// ErrTooFewVertices is returned when a mesh has fewer than three vertices.
	ErrTooFewVertices = errors.New("navmesh: need at least 3 vertices")

	// ErrBadTriangle is returned for out-of-range, repeated or collinear triangle corners.
	ErrBadTriangle = errors.New("navmesh: invalid triangle")

	// ErrBadDimensions is returned by NewRectMesh for non-positive sizes or counts.
	ErrBadDimensions = errors.New("navmesh: invalid rectangle dimensions")

	// ErrLineIndex is returned when a line index is out of range.
	ErrLineIndex = errors.New("navmesh: line index out of range")

	// ErrTriangleIndex is returned when a triangle index is out of range.
	ErrTriangleIndex = errors.New("navmesh: triangle index out of range")

	// ErrNilMesh is returned when NewGraph receives a nil mesh.
	ErrNilMesh = errors.New("navmesh: mesh is nil")
)

// NoLine marks a graph node that was not generated from a mesh line.
const NoLine = -1

// Line is a unique mesh edge. Edges shared by two triangles appear once.
type Line struct {
	Index  int
	P1, P2 orb.Point
}

// Segment returns the line as a funnel segment.
func (l Line) Segment() funnel.Segment {
	return funnel.Segment{P1: l.P1, P2: l.P2}
}

// Triangle is one mesh face. Lines[k] is the index of the edge from
// Points[k] to Points[(k+1)%3].
type Triangle struct {
	Index  int
	Points [3]orb.Point
	Lines  [3]int
}

// Ring returns the closed outline of the triangle.
func (t Triangle) Ring() orb.Ring {
	return orb.Ring{t.Points[0], t.Points[1], t.Points[2], t.Points[0]}
}

// Result is the outcome of a navmesh query. An empty Result (nil Path)
// means no path: a query point is off the mesh or the goal is cut off.
type Result struct {
	// Path is the smoothed polyline from start to end.
	Path []orb.Point
	// NodePath is the raw A* route through the query graph.
	NodePath []core.NodeID
	// NodePositions holds the position of each NodePath entry.
	NodePositions []orb.Point
	// Portals are the oriented edges the funnel ran over.
	Portals []funnel.Portal
}

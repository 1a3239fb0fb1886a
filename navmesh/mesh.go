package navmesh

import (
	"fmt"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// pointTolerance is the half-size of the query box used for point lookups.
const pointTolerance = 1e-9

// Mesh is an immutable triangle mesh: unique lines, triangles with their
// line indices, line → triangles adjacency and an R-tree over triangle
// bounding boxes.
type Mesh struct {
	vertices  []orb.Point
	lines     []Line
	triangles []Triangle
	lineTris  [][]int
	tree      *rtreego.Rtree
}

// triangleEntry stores a triangle index in the R-tree.
type triangleEntry struct {
	index int
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *triangleEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// NewMesh builds a mesh from vertex positions and triangles given as
// vertex index triples. Lines are numbered in order of first appearance,
// walking each triangle's edges (a,b), (b,c), (c,a).
//
// Returns ErrTooFewVertices, or ErrBadTriangle for out-of-range, repeated
// or collinear corners.
// Complexity: O(T log T).
func NewMesh(vertices []orb.Point, triangles [][3]int) (*Mesh, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(vertices))
	}

	m := &Mesh{
		vertices:  append([]orb.Point(nil), vertices...),
		triangles: make([]Triangle, 0, len(triangles)),
		tree:      rtreego.NewTree(2, 25, 50),
	}
	lineByPair := make(map[[2]int]int, len(triangles)*2)

	for ti, tri := range triangles {
		// 1) Validate corners
		for _, v := range tri {
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("%w: triangle %d vertex %d out of range", ErrBadTriangle, ti, v)
			}
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[0] == tri[2] {
			return nil, fmt.Errorf("%w: triangle %d repeats a vertex", ErrBadTriangle, ti)
		}
		t := Triangle{Index: ti}
		for k, v := range tri {
			t.Points[k] = vertices[v]
		}
		if area(t.Points) == 0 {
			return nil, fmt.Errorf("%w: triangle %d is degenerate", ErrBadTriangle, ti)
		}

		// 2) Register edges
		for k := 0; k < 3; k++ {
			a, b := tri[k], tri[(k+1)%3]
			key := [2]int{min(a, b), max(a, b)}
			li, ok := lineByPair[key]
			if !ok {
				li = len(m.lines)
				lineByPair[key] = li
				m.lines = append(m.lines, Line{Index: li, P1: vertices[a], P2: vertices[b]})
				m.lineTris = append(m.lineTris, nil)
			}
			t.Lines[k] = li
			m.lineTris[li] = append(m.lineTris[li], ti)
		}
		m.triangles = append(m.triangles, t)

		// 3) Index bounding box
		bbox, err := triangleRect(t)
		if err != nil {
			return nil, fmt.Errorf("%w: triangle %d: %v", ErrBadTriangle, ti, err)
		}
		m.tree.Insert(&triangleEntry{index: ti, bbox: bbox})
	}

	return m, nil
}

// Vertices returns a copy of the vertex positions.
func (m *Mesh) Vertices() []orb.Point {
	return append([]orb.Point(nil), m.vertices...)
}

// Lines returns a copy of all unique lines in index order.
func (m *Mesh) Lines() []Line {
	return append([]Line(nil), m.lines...)
}

// Line returns line i.
func (m *Mesh) Line(i int) (Line, error) {
	if i < 0 || i >= len(m.lines) {
		return Line{}, fmt.Errorf("%w: %d", ErrLineIndex, i)
	}

	return m.lines[i], nil
}

// Triangles returns a copy of all triangles in index order.
func (m *Mesh) Triangles() []Triangle {
	return append([]Triangle(nil), m.triangles...)
}

// Triangle returns triangle i.
func (m *Mesh) Triangle(i int) (Triangle, error) {
	if i < 0 || i >= len(m.triangles) {
		return Triangle{}, fmt.Errorf("%w: %d", ErrTriangleIndex, i)
	}

	return m.triangles[i], nil
}

// TrianglesFromLine returns the indices of the triangles that use line i:
// one for a border line, two for an interior one.
func (m *Mesh) TrianglesFromLine(i int) ([]int, error) {
	if i < 0 || i >= len(m.lines) {
		return nil, fmt.Errorf("%w: %d", ErrLineIndex, i)
	}

	return append([]int(nil), m.lineTris[i]...), nil
}

// TriangleAt returns the triangle containing p. Points on a shared edge
// belong to the triangle with the lowest index.
// Complexity: O(log T + k).
func (m *Mesh) TriangleAt(p orb.Point) (Triangle, bool) {
	q, err := rtreego.NewRect(
		rtreego.Point{p[0] - pointTolerance, p[1] - pointTolerance},
		[]float64{2 * pointTolerance, 2 * pointTolerance},
	)
	if err != nil {
		return Triangle{}, false
	}

	hits := m.tree.SearchIntersect(q)
	candidates := make([]int, 0, len(hits))
	for _, h := range hits {
		candidates = append(candidates, h.(*triangleEntry).index)
	}
	sort.Ints(candidates)

	for _, ti := range candidates {
		t := m.triangles[ti]
		if planar.RingContains(t.Ring(), p) {
			return t, true
		}
	}

	return Triangle{}, false
}

// Bound returns the bounding box of all vertices.
func (m *Mesh) Bound() orb.Bound {
	return orb.MultiPoint(m.vertices).Bound()
}

// Internal helpers:
////////////////////

// area returns twice the signed area of a triangle.
func area(p [3]orb.Point) float64 {
	return (p[1][0]-p[0][0])*(p[2][1]-p[0][1]) - (p[1][1]-p[0][1])*(p[2][0]-p[0][0])
}

// triangleRect converts a triangle's bounding box to an R-tree rectangle.
func triangleRect(t Triangle) (rtreego.Rect, error) {
	b := orb.MultiPoint(t.Points[:]).Bound()
	w := math.Max(b.Max[0]-b.Min[0], pointTolerance)
	h := math.Max(b.Max[1]-b.Min[1], pointTolerance)

	return rtreego.NewRect(rtreego.Point{b.Min[0], b.Min[1]}, []float64{w, h})
}

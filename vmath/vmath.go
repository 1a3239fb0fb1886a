// Package vmath provides the small set of 2D vector operations the
// navigation packages share. Positions are orb.Point values ([2]float64,
// X then Y) so geometry can be handed to orb/planar without conversion.
package vmath

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Zero is the zero vector.
var Zero = orb.Point{0, 0}

// Add returns a + b.
func Add(a, b orb.Point) orb.Point {
	return orb.Point{a[0] + b[0], a[1] + b[1]}
}

// Sub returns a - b.
func Sub(a, b orb.Point) orb.Point {
	return orb.Point{a[0] - b[0], a[1] - b[1]}
}

// Scale returns v * s.
func Scale(v orb.Point, s float64) orb.Point {
	return orb.Point{v[0] * s, v[1] * s}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b orb.Point) orb.Point {
	return orb.Point{(a[0] + b[0]) * 0.5, (a[1] + b[1]) * 0.5}
}

// Cross returns the z component of the 3D cross product of a and b.
// Positive when b lies counter-clockwise of a (y-up convention).
func Cross(a, b orb.Point) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// Length returns the Euclidean norm of v.
func Length(v orb.Point) float64 {
	return math.Hypot(v[0], v[1])
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// Normalize returns v scaled to unit length, or Zero if v has no length.
func Normalize(v orb.Point) orb.Point {
	l := Length(v)
	if l == 0 {
		return Zero
	}

	return orb.Point{v[0] / l, v[1] / l}
}

// AbsDelta returns |b.x - a.x| and |b.y - a.y|.
func AbsDelta(a, b orb.Point) (dx, dy float64) {
	return math.Abs(b[0] - a[0]), math.Abs(b[1] - a[1])
}

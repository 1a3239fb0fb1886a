package vmath_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvnav/vmath"
)

func TestArithmetic(t *testing.T) {
	a := orb.Point{1, 2}
	b := orb.Point{4, 6}

	assert.Equal(t, orb.Point{5, 8}, vmath.Add(a, b))
	assert.Equal(t, orb.Point{3, 4}, vmath.Sub(b, a))
	assert.Equal(t, orb.Point{2, 4}, vmath.Scale(a, 2))
	assert.Equal(t, orb.Point{2.5, 4}, vmath.Midpoint(a, b))
	assert.InDelta(t, 5.0, vmath.Distance(a, b), 1e-12)
	assert.InDelta(t, 5.0, vmath.Length(vmath.Sub(b, a)), 1e-12)
}

func TestCross_Orientation(t *testing.T) {
	x := orb.Point{1, 0}
	y := orb.Point{0, 1}

	assert.Equal(t, 1.0, vmath.Cross(x, y), "y is counter-clockwise of x")
	assert.Equal(t, -1.0, vmath.Cross(y, x), "x is clockwise of y")
	assert.Equal(t, 0.0, vmath.Cross(x, vmath.Scale(x, 3)), "collinear vectors")
}

func TestNormalize(t *testing.T) {
	n := vmath.Normalize(orb.Point{3, 4})
	assert.InDelta(t, 0.6, n[0], 1e-12)
	assert.InDelta(t, 0.8, n[1], 1e-12)
	assert.InDelta(t, 1.0, vmath.Length(n), 1e-12)

	assert.Equal(t, vmath.Zero, vmath.Normalize(vmath.Zero))
}

func TestAbsDelta(t *testing.T) {
	dx, dy := vmath.AbsDelta(orb.Point{5, -1}, orb.Point{2, 3})
	assert.Equal(t, 3.0, dx)
	assert.Equal(t, 4.0, dy)
	assert.False(t, math.Signbit(dx))
}

// SPDX-License-Identifier: MIT
//
// File: funnel.go
// Role: Portal extraction and simple stupid funnel optimisation.
// Determinism:
//   - Pure functions of their input slices; no allocation beyond results.

package funnel

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/vmath"
)

// FindPortals turns a node path into the portals the agent must pass.
//
// The first and last portals are degenerate at the first and last step
// positions. Every interior step contributes its edge, oriented so that
// Right is on the right-hand side when arriving from the previous step:
// with cp = cross(mid(edge) − prev, P1 − prev), cp > 0 gives
// {Right: P2, Left: P1}, otherwise {Right: P1, Left: P2}.
//
// Fewer than two steps yield nil.
// Complexity: O(n).
func FindPortals(steps []Step) []Portal {
	if len(steps) < 2 {
		return nil
	}
	out := make([]Portal, 0, len(steps))

	first := steps[0].Position
	out = append(out, Portal{Right: first, Left: first})

	for i := 1; i < len(steps)-1; i++ {
		edge := steps[i].Edge
		prev := steps[i-1].Position
		mid := vmath.Midpoint(edge.P1, edge.P2)
		cp := vmath.Cross(vmath.Sub(mid, prev), vmath.Sub(edge.P1, prev))
		if cp > 0 {
			out = append(out, Portal{Right: edge.P2, Left: edge.P1})
		} else {
			out = append(out, Portal{Right: edge.P1, Left: edge.P2})
		}
	}

	last := steps[len(steps)-1].Position
	out = append(out, Portal{Right: last, Left: last})

	return out
}

// OptimizePortals runs the simple stupid funnel algorithm over portals
// and returns the shortened polyline, starting at portals[0] and ending
// at the last portal.
//
// The funnel is an apex plus a right and a left leg. Each portal tries to
// tighten the right leg (cross(newRight, right) <= 0) and then the left
// leg (cross(newLeft, left) >= 0). When tightening one leg would cross
// the other, the apex advances along the crossed leg, that point is
// emitted, and the funnel restarts from the portal after the leg's one.
// The scan then resumes one portal further on.
//
// Zero portals yield nil; one portal yields its Right point.
// Complexity: O(n²) worst case, O(n) typical.
func OptimizePortals(portals []Portal) []orb.Point {
	n := len(portals)
	switch n {
	case 0:
		return nil
	case 1:
		return []orb.Point{portals[0].Right}
	}

	apex := portals[0].Right
	leftIndex, rightIndex := 1, 1
	rightLeg := vmath.Sub(portals[1].Right, apex)
	leftLeg := vmath.Sub(portals[1].Left, apex)
	path := []orb.Point{apex}

	// restart emits the new apex and rebuilds both legs from portal index.
	// It reports false when no portal is left to rebuild from.
	restart := func(index int) bool {
		leftIndex, rightIndex = index, index
		path = append(path, apex)
		if index >= n {
			return false
		}
		rightLeg = vmath.Sub(portals[index].Right, apex)
		leftLeg = vmath.Sub(portals[index].Left, apex)

		return true
	}

	for i := 1; i < n; i++ {
		portal := portals[i]

		// 1) Right side
		newRight := vmath.Sub(portal.Right, apex)
		if vmath.Cross(newRight, rightLeg) <= 0 {
			if vmath.Cross(newRight, leftLeg) < 0 {
				apex = vmath.Add(apex, leftLeg)
				i = leftIndex + 1
				if !restart(i) {
					break
				}
				continue
			}
			rightLeg = newRight
			rightIndex = i
		}

		// 2) Left side
		newLeft := vmath.Sub(portal.Left, apex)
		if vmath.Cross(newLeft, leftLeg) >= 0 {
			if vmath.Cross(newLeft, rightLeg) > 0 {
				apex = vmath.Add(apex, rightLeg)
				i = rightIndex + 1
				if !restart(i) {
					break
				}
				continue
			}
			leftLeg = newLeft
			leftIndex = i
		}
	}

	return append(path, portals[n-1].Right)
}

// Package funnel smooths a node path over a navigation mesh into a short
// polyline that hugs corners, using the simple stupid funnel algorithm.
//
//	portals := funnel.FindPortals(steps)        // one portal per crossed edge
//	points  := funnel.OptimizePortals(portals)  // start, corner apexes, end
//
// Orientation convention: a Portal's Right point is on the right of an
// agent walking the path, measured with the 2D cross product
// cross(a, b) = a.x·b.y − a.y·b.x. Positive cross means b is
// counter-clockwise of a.
package funnel

package navmesh

import (
	"fmt"

	"github.com/paulmach/orb"
)

// NewRectMesh builds a width×height rectangle centred on the origin and
// split into cols×rows quads of two triangles each.
//
// Vertices are row-major from the bottom-left corner. Quad (c, r) with
// corners v00 (bottom-left), v10, v11, v01 yields triangles
// (v00, v10, v11) and (v00, v11, v01).
//
// Returns ErrBadDimensions for non-positive sizes or counts.
func NewRectMesh(width, height float64, cols, rows int) (*Mesh, error) {
	if !(width > 0) || !(height > 0) || cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: %gx%g split %dx%d", ErrBadDimensions, width, height, cols, rows)
	}

	stride := cols + 1
	vertices := make([]orb.Point, 0, stride*(rows+1))
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			vertices = append(vertices, orb.Point{
				-width/2 + float64(c)*width/float64(cols),
				-height/2 + float64(r)*height/float64(rows),
			})
		}
	}

	triangles := make([][3]int, 0, 2*cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v00 := r*stride + c
			v10 := v00 + 1
			v01 := v00 + stride
			v11 := v01 + 1
			triangles = append(triangles, [3]int{v00, v10, v11}, [3]int{v00, v11, v01})
		}
	}

	return NewMesh(vertices, triangles)
}

package navmesh_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/navmesh"
)

// ExampleGraph_FindPath crosses a 4×2 rectangle split into four triangles.
// The funnel removes every intermediate edge midpoint.
func ExampleGraph_FindPath() {
	mesh, _ := navmesh.NewRectMesh(4, 2, 2, 1)
	ng, _ := navmesh.NewGraph(mesh)

	res, _ := ng.FindPath(orb.Point{-1.5, 0.5}, orb.Point{1.5, -0.5})
	fmt.Println("nodes:", res.NodePath)
	for _, p := range res.Path {
		fmt.Println(p.X(), p.Y())
	}

	// Output:
	// nodes: [3 1 0 2 4]
	// -1.5 0.5
	// 1.5 -0.5
}

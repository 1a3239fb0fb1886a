package astar_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/astar"
	"github.com/katalvlaran/lvnav/core"
)

// ExampleFindPath routes across a 3-node triangle where the direct
// connection is more expensive than the detour.
func ExampleFindPath() {
	g := core.NewGraph()
	a := g.AddNode(orb.Point{0, 0})
	b := g.AddNode(orb.Point{1, 1})
	c := g.AddNode(orb.Point{2, 0})
	_ = g.AddConnection(a, b, 1)
	_ = g.AddConnection(b, c, 1)
	_ = g.AddConnection(a, c, 5)

	path, err := astar.FindPath(g, a, c, astar.WithHeuristic(astar.Euclidean))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cost, _ := g.PathCost(path)
	fmt.Println(path, cost)
	// Output:
	// [0 1 2] 2
}

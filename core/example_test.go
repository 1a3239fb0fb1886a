package core_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
)

// ExampleGraph demonstrates basic creation, mutation, and cloning.
func ExampleGraph() {
	// 1) Create an undirected graph with three positioned nodes:
	g := core.NewGraph()
	a := g.AddNode(orb.Point{0, 0})
	b := g.AddNode(orb.Point{3, 0})
	c := g.AddNode(orb.Point{3, 4})

	// 2) Connect them and derive costs from geometry:
	_ = g.AddConnection(a, b, 0)
	_ = g.AddConnection(b, c, 0)
	g.SetAllCostsToDistance()

	// 3) Work on a clone so the original stays intact:
	clone := g.Clone()
	_ = clone.RemoveConnection(b, c)

	cost, _ := g.PathCost([]core.NodeID{a, b, c})
	fmt.Println("cost a→b→c:", cost)
	fmt.Println("original b-c:", g.HasConnection(c, b))
	fmt.Println("clone b-c:", clone.HasConnection(c, b))

	// Output:
	// cost a→b→c: 7
	// original b-c: true
	// clone b-c: false
}

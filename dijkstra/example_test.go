package dijkstra_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/dijkstra"
)

// ExampleDijkstra computes distances on a small "house" graph: a square
// 0–1–2–3 with a roof node 4 above the top edge.
func ExampleDijkstra() {
	g := core.NewGraph()
	for _, p := range []orb.Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {1, 3}} {
		g.AddNode(p)
	}
	_ = g.AddConnection(0, 1, 2)
	_ = g.AddConnection(1, 2, 2)
	_ = g.AddConnection(2, 3, 2)
	_ = g.AddConnection(3, 0, 2)
	_ = g.AddConnection(2, 4, 1)
	_ = g.AddConnection(3, 4, 1)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := dijkstra.PathTo(prev, 0, 4)
	fmt.Println(dist[4], path)
	// Output:
	// 3 [0 3 4]
}

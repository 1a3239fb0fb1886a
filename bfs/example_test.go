package bfs_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/bfs"
	"github.com/katalvlaran/lvnav/core"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid of nodes, with ids
// assigned row by row.
func ExampleBFS() {
	g := core.NewGraph()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g.AddNode(orb.Point{float64(c), float64(r)})
		}
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			id := core.NodeID(r*3 + c)
			if c+1 < 3 {
				_ = g.AddConnection(id, id+1, 1)
			}
			if r+1 < 3 {
				_ = g.AddConnection(id, id+3, 1)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
}

// ExampleFindPath finds the fewest-hop route in a network with two
// competing routes of length 4 and 3.
func ExampleFindPath() {
	g := core.NewGraph()
	for i := 0; i < 7; i++ {
		g.AddNode(orb.Point{float64(i), 0})
	}
	// Route 1: 0–1–2–3–6
	_ = g.AddConnection(0, 1, 1)
	_ = g.AddConnection(1, 2, 1)
	_ = g.AddConnection(2, 3, 1)
	_ = g.AddConnection(3, 6, 1)
	// Route 2: 0–4–5–6
	_ = g.AddConnection(0, 4, 1)
	_ = g.AddConnection(4, 5, 1)
	_ = g.AddConnection(5, 6, 1)

	path, _ := bfs.FindPath(g, 0, 6)
	fmt.Println(path)
	// Output:
	// [0 4 5 6]
}

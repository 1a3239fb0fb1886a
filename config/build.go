package config

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/gridgraph"
	"github.com/katalvlaran/lvnav/navmesh"
)

// Build creates the graph. Connections without a cost get the distance
// between their endpoints.
func (g *GraphConfig) Build() (*core.Graph, error) {
	graph := core.NewGraph(core.WithDirected(g.Directed))
	for _, n := range g.Nodes {
		graph.AddNode(orb.Point{n[0], n[1]})
	}
	for i, c := range g.Connections {
		from, to := core.NodeID(c[0]), core.NodeID(c[1])
		var cost float64
		if len(c) == 3 {
			cost = c[2]
		} else {
			a, _ := graph.Position(from)
			b, _ := graph.Position(to)
			cost = planar.Distance(a, b)
		}
		if err := graph.AddConnection(from, to, cost); err != nil {
			return nil, fmt.Errorf("config: connection %d: %w", i, err)
		}
	}

	return graph, nil
}

// Build creates the mesh and its navigation graph.
func (n *NavmeshConfig) Build() (*navmesh.Graph, error) {
	var (
		mesh *navmesh.Mesh
		err  error
	)
	if n.Rect != nil {
		mesh, err = navmesh.NewRectMesh(n.Rect.Width, n.Rect.Height, n.Rect.Cols, n.Rect.Rows)
	} else {
		vertices := make([]orb.Point, len(n.Vertices))
		for i, v := range n.Vertices {
			vertices[i] = orb.Point{v[0], v[1]}
		}
		triangles := make([][3]int, len(n.Triangles))
		for i, t := range n.Triangles {
			triangles[i] = [3]int{t[0], t[1], t[2]}
		}
		mesh, err = navmesh.NewMesh(vertices, triangles)
	}
	if err != nil {
		return nil, fmt.Errorf("config: navmesh: %w", err)
	}

	return navmesh.NewGraph(mesh)
}

// Build creates the grid and applies walls, then mud.
func (g *GridConfig) Build() (*gridgraph.GridGraph, error) {
	opts := gridgraph.GridOptions{CellSize: g.CellSize, Conn: gridgraph.Conn4}
	if g.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	grid, err := gridgraph.NewGridGraph(g.Cols, g.Rows, opts)
	if err != nil {
		return nil, fmt.Errorf("config: grid: %w", err)
	}
	for _, id := range g.Walls {
		if err = grid.SetWall(core.NodeID(id), true); err != nil {
			return nil, fmt.Errorf("config: wall %d: %w", id, err)
		}
	}
	for _, id := range g.Mud {
		if err = grid.SetTerrain(core.NodeID(id), gridgraph.Mud); err != nil {
			return nil, fmt.Errorf("config: mud %d: %w", id, err)
		}
	}

	return grid, nil
}

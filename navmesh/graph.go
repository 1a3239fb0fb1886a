// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Navigation graph over mesh lines.
// Determinism:
//   - Node ids follow line order; connections follow triangle order.

package navmesh

import (
	"fmt"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/vmath"
)

// Graph is the navigation graph of a Mesh: one node at the midpoint of
// every line shared by exactly two triangles, with nodes on the same
// triangle connected at Euclidean cost.
type Graph struct {
	mesh   *Mesh
	graph  *core.Graph
	lineOf []int               // indexed by NodeID; NoLine for synthetic nodes
	nodeOf map[int]core.NodeID // line index → node
}

// NewGraph builds the navigation graph of mesh.
//
// Steps:
//  1. Add a node at the midpoint of each interior line.
//  2. For each triangle gather the nodes of its lines: two nodes get one
//     connection, three nodes get connected pairwise.
//  3. Set every cost to the distance between endpoints.
//
// Complexity: O(L + T).
func NewGraph(mesh *Mesh) (*Graph, error) {
	if mesh == nil {
		return nil, ErrNilMesh
	}
	ng := &Graph{
		mesh:   mesh,
		graph:  core.NewGraph(),
		nodeOf: make(map[int]core.NodeID),
	}

	// 1) Nodes on interior lines
	for _, l := range mesh.lines {
		if len(mesh.lineTris[l.Index]) != 2 {
			continue
		}
		id := ng.graph.AddNode(vmath.Midpoint(l.P1, l.P2))
		ng.lineOf = append(ng.lineOf, l.Index)
		ng.nodeOf[l.Index] = id
	}

	// 2) Connect nodes sharing a triangle
	for _, t := range mesh.triangles {
		var ids []core.NodeID
		for _, li := range t.Lines {
			if id, ok := ng.nodeOf[li]; ok {
				ids = append(ids, id)
			}
		}
		var pairs [][2]core.NodeID
		switch len(ids) {
		case 2:
			pairs = [][2]core.NodeID{{ids[0], ids[1]}}
		case 3:
			pairs = [][2]core.NodeID{{ids[0], ids[1]}, {ids[1], ids[2]}, {ids[2], ids[0]}}
		}
		for _, p := range pairs {
			if ng.graph.HasConnection(p[0], p[1]) {
				continue
			}
			if err := ng.graph.AddConnection(p[0], p[1], 0); err != nil {
				return nil, fmt.Errorf("navmesh: triangle %d: %w", t.Index, err)
			}
		}
	}

	// 3) Costs
	ng.graph.SetAllCostsToDistance()

	return ng, nil
}

// Graph returns the underlying graph. It must not be mutated; use Clone.
func (ng *Graph) Graph() *core.Graph { return ng.graph }

// Mesh returns the mesh the graph was built from.
func (ng *Graph) Mesh() *Mesh { return ng.mesh }

// NodeIDFromLine returns the node generated from line i, or
// core.InvalidNodeID when the line is a border line or out of range.
func (ng *Graph) NodeIDFromLine(i int) core.NodeID {
	if id, ok := ng.nodeOf[i]; ok {
		return id
	}

	return core.InvalidNodeID
}

// LineIndex returns the line node id was generated from, or NoLine.
func (ng *Graph) LineIndex(id core.NodeID) int {
	if id < 0 || int(id) >= len(ng.lineOf) {
		return NoLine
	}

	return ng.lineOf[id]
}

// Clone returns a graph with independent connection storage over the same mesh.
func (ng *Graph) Clone() *Graph {
	nodeOf := make(map[int]core.NodeID, len(ng.nodeOf))
	for k, v := range ng.nodeOf {
		nodeOf[k] = v
	}

	return &Graph{
		mesh:   ng.mesh,
		graph:  ng.graph.Clone(),
		lineOf: append([]int(nil), ng.lineOf...),
		nodeOf: nodeOf,
	}
}

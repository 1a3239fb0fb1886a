package core_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnav/core"
)

func TestGraph_Options(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.Directed(), "default graph is undirected")
	assert.False(t, g.Looped(), "default graph rejects loops")

	dg := core.NewGraph(core.WithDirected(true), core.WithLoops())
	assert.True(t, dg.Directed())
	assert.True(t, dg.Looped())
}

func TestGraph_NodeLifecycle(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(orb.Point{1, 2})
	b := g.AddNode(orb.Point{3, 4})

	assert.Equal(t, core.NodeID(0), a)
	assert.Equal(t, core.NodeID(1), b)
	assert.Equal(t, 2, g.NodeCount())
	assert.True(t, g.HasNode(a))
	assert.False(t, g.HasNode(core.InvalidNodeID))
	assert.False(t, g.HasNode(7))

	n, err := g.Node(b)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{3, 4}, n.Position)

	require.NoError(t, g.RemoveNode(a))
	assert.False(t, g.HasNode(a))
	assert.Equal(t, 1, g.NodeCount())
	assert.ErrorIs(t, g.RemoveNode(a), core.ErrNodeNotFound)

	// Retired ids are never reused.
	c := g.AddNode(orb.Point{})
	assert.Equal(t, core.NodeID(2), c)
	assert.Equal(t, []core.NodeID{1, 2}, g.NodeIDs())
	assert.Equal(t, 3, g.Capacity())

	_, err = g.Position(a)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_AddConnection_Errors(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(orb.Point{})
	b := g.AddNode(orb.Point{1, 0})

	cases := []struct {
		name     string
		from, to core.NodeID
		cost     float64
		err      error
	}{
		{"MissingFrom", 9, b, 1, core.ErrNodeNotFound},
		{"MissingTo", a, 9, 1, core.ErrNodeNotFound},
		{"Loop", a, a, 1, core.ErrLoopNotAllowed},
		{"NegativeCost", a, b, -1, core.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddConnection(tc.from, tc.to, tc.cost), tc.err)
		})
	}

	require.NoError(t, g.AddConnection(a, b, 1))
	assert.ErrorIs(t, g.AddConnection(a, b, 2), core.ErrConnectionExists)
	// The mirror already exists on an undirected graph.
	assert.ErrorIs(t, g.AddConnection(b, a, 2), core.ErrConnectionExists)
}

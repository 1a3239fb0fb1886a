package navmesh_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnav/astar"
	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/navmesh"
)

func rectGraph(t *testing.T) *navmesh.Graph {
	t.Helper()
	m, err := navmesh.NewRectMesh(4, 2, 2, 1)
	require.NoError(t, err)
	ng, err := navmesh.NewGraph(m)
	require.NoError(t, err)

	return ng
}

// lCorridor is three unit squares forming an L: (0,0), (1,0) and (1,1).
func lCorridor(t *testing.T) *navmesh.Graph {
	t.Helper()
	m, err := navmesh.NewMesh(
		[]orb.Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}, {2, 2}},
		[][3]int{{0, 1, 4}, {0, 4, 3}, {1, 2, 5}, {1, 5, 4}, {4, 5, 7}, {4, 7, 6}},
	)
	require.NoError(t, err)
	ng, err := navmesh.NewGraph(m)
	require.NoError(t, err)

	return ng
}

// TestNewGraph checks node placement, line mapping and connections.
func TestNewGraph(t *testing.T) {
	ng := rectGraph(t)
	g := ng.Graph()

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.ConnectionCount())
	assert.Equal(t, core.NodeID(0), ng.NodeIDFromLine(1))
	assert.Equal(t, core.NodeID(1), ng.NodeIDFromLine(2))
	assert.Equal(t, core.NodeID(2), ng.NodeIDFromLine(7))
	assert.Equal(t, core.InvalidNodeID, ng.NodeIDFromLine(0))
	assert.Equal(t, 7, ng.LineIndex(2))
	assert.Equal(t, navmesh.NoLine, ng.LineIndex(5))

	pos, err := g.Position(1)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{-1, 0}, pos)

	c, err := g.Connection(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.Cost, 1e-12)
	assert.True(t, g.HasConnection(2, 0))
	assert.False(t, g.HasConnection(1, 2))

	_, err = navmesh.NewGraph(nil)
	assert.ErrorIs(t, err, navmesh.ErrNilMesh)
}

// TestFindPath_Straight checks a query whose funnel collapses to a straight line.
func TestFindPath_Straight(t *testing.T) {
	ng := rectGraph(t)
	before := ng.Graph().NodeCount()

	res, err := ng.FindPath(orb.Point{-1.5, 0.5}, orb.Point{1.5, -0.5})
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{3, 1, 0, 2, 4}, res.NodePath)
	assert.Equal(t, []orb.Point{{-1.5, 0.5}, {-1, 0}, {0, 0}, {1, 0}, {1.5, -0.5}}, res.NodePositions)
	assert.Len(t, res.Portals, 5)
	assert.True(t, res.Portals[0].Degenerate())
	assert.True(t, res.Portals[4].Degenerate())
	assert.Equal(t, []orb.Point{{-1.5, 0.5}, {1.5, -0.5}}, res.Path)

	// The query works on a private copy.
	assert.Equal(t, before, ng.Graph().NodeCount())
}

// TestFindPath_Corner checks that an L-shaped corridor bends at its inner corner.
func TestFindPath_Corner(t *testing.T) {
	ng := lCorridor(t)
	start, end := orb.Point{0.25, 0.5}, orb.Point{1.5, 1.75}

	res, err := ng.FindPath(start, end)
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{5, 1, 0, 3, 4, 6}, res.NodePath)
	assert.Equal(t, []orb.Point{start, {1, 1}, end}, res.Path)

	// Any admissible heuristic finds the same route.
	res2, err := ng.FindPath(start, end, astar.WithHeuristic(astar.Euclidean))
	require.NoError(t, err)
	assert.Equal(t, res.Path, res2.Path)
}

// TestFindPath_ShortCircuits covers same-triangle and off-mesh queries.
func TestFindPath_ShortCircuits(t *testing.T) {
	ng := rectGraph(t)

	res, err := ng.FindPath(orb.Point{-1.5, 0.5}, orb.Point{-1.2, 0.7})
	require.NoError(t, err)
	assert.Equal(t, []orb.Point{{-1.2, 0.7}}, res.Path)
	assert.Empty(t, res.NodePath)

	res, err = ng.FindPath(orb.Point{-1.5, 0.5}, orb.Point{5, 5})
	require.NoError(t, err)
	assert.Empty(t, res.Path)

	res, err = ng.FindPath(orb.Point{-5, 0}, orb.Point{1.5, -0.5})
	require.NoError(t, err)
	assert.Empty(t, res.Path)

	_, err = ng.FindPath(orb.Point{-1.5, 0.5}, orb.Point{1.5, -0.5}, astar.WithHeuristic(nil))
	assert.ErrorIs(t, err, astar.ErrNilHeuristic)
}

// TestFindPath_Disconnected checks that separate islands yield an empty result.
func TestFindPath_Disconnected(t *testing.T) {
	m, err := navmesh.NewMesh(
		[]orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {5, 0}, {6, 0}, {6, 1}, {5, 1}},
		[][3]int{{0, 1, 2}, {0, 2, 3}, {4, 5, 6}, {4, 6, 7}},
	)
	require.NoError(t, err)
	ng, err := navmesh.NewGraph(m)
	require.NoError(t, err)

	res, err := ng.FindPath(orb.Point{0.8, 0.2}, orb.Point{5.2, 0.8})
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.Empty(t, res.NodePath)
}

// TestClone checks that a clone's graph is independent.
func TestClone(t *testing.T) {
	ng := rectGraph(t)
	cl := ng.Clone()
	require.NoError(t, cl.Graph().RemoveConnection(0, 1))

	assert.True(t, ng.Graph().HasConnection(0, 1))
	assert.Equal(t, ng.NodeIDFromLine(7), cl.NodeIDFromLine(7))
	assert.Same(t, ng.Mesh(), cl.Mesh())
}

package astar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnav/astar"
	"github.com/katalvlaran/lvnav/builder"
	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/dijkstra"
)

// square builds the unit square 0(0,0) 1(1,0) 2(1,1) 3(0,1) with the
// cycle 0–1–2–3–0 at unit cost.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
		g.AddNode(p)
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddConnection(core.NodeID(i), core.NodeID((i+1)%4), 1))
	}

	return g
}

// randomGraph scatters n nodes over a 100×100 square and links each pair
// with probability p at Euclidean cost. Costs are scaled by a random
// factor >= 1 when stretch is set, which keeps Euclidean admissible.
func randomGraph(t *testing.T, rng *rand.Rand, n int, p float64, stretch bool) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithRand(rng), builder.WithRadius(50)},
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)
	if stretch {
		for _, c := range g.Connections() {
			if c.From < c.To {
				require.NoError(t, g.SetConnectionCost(c.From, c.To, c.Cost*(1+rng.Float64())))
			}
		}
	}

	return g
}

func TestFindPath_Errors(t *testing.T) {
	_, err := astar.FindPath(nil, 0, 1)
	assert.ErrorIs(t, err, astar.ErrNilGraph)

	g := square(t)
	_, err = astar.FindPath(g, 9, 1)
	assert.ErrorIs(t, err, astar.ErrNodeNotFound)
	_, err = astar.FindPath(g, 0, -1)
	assert.ErrorIs(t, err, astar.ErrNodeNotFound)
	_, err = astar.FindPath(g, 0, 1, astar.WithHeuristic(nil))
	assert.ErrorIs(t, err, astar.ErrNilHeuristic)
}

func TestFindPath_StartIsGoal(t *testing.T) {
	g := square(t)
	path, err := astar.FindPath(g, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{2}, path)
}

func TestFindPath_Unreachable(t *testing.T) {
	g := square(t)
	island := g.AddNode(orb.Point{5, 5})
	path, err := astar.FindPath(g, 0, island)
	require.NoError(t, err)
	assert.Empty(t, path)

	d := core.NewGraph(core.WithDirected(true))
	a := d.AddNode(orb.Point{0, 0})
	b := d.AddNode(orb.Point{1, 0})
	require.NoError(t, d.AddConnection(a, b, 1))
	path, err = astar.FindPath(d, b, a)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestFindPath_SquareZeroHeuristic(t *testing.T) {
	g := square(t)
	path, err := astar.FindPath(g, 0, 2, astar.WithHeuristic(astar.Zero))
	require.NoError(t, err)
	cost, err := g.PathCost(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cost)
	// Ties go to the first-encountered record.
	assert.Equal(t, []core.NodeID{0, 1, 2}, path)
}

func TestFindPath_PrefersCheaperDetour(t *testing.T) {
	g := square(t)
	require.NoError(t, g.AddConnection(0, 2, 5))
	path, err := astar.FindPath(g, 0, 2)
	require.NoError(t, err)
	assert.Len(t, path, 3)
	assert.Equal(t, core.NodeID(0), path[0])
	assert.Equal(t, core.NodeID(2), path[2])
}

func TestFindPath_MatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	admissible := map[string]astar.Heuristic{
		"zero":      astar.Zero,
		"euclidean": astar.Euclidean,
	}
	for round := 0; round < 20; round++ {
		g := randomGraph(t, rng, 25, 0.15, round%2 == 1)
		src := core.NodeID(rng.Intn(25))
		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		require.NoError(t, err)

		for name, h := range admissible {
			for _, dst := range g.NodeIDs() {
				path, err := astar.FindPath(g, src, dst, astar.WithHeuristic(h))
				require.NoError(t, err)
				if math.IsInf(dist[dst], 1) {
					assert.Empty(t, path, "%s: %d→%d should be unreachable", name, src, dst)
					continue
				}
				require.NotEmpty(t, path, "%s: %d→%d", name, src, dst)
				assert.Equal(t, src, path[0])
				assert.Equal(t, dst, path[len(path)-1])
				cost, err := g.PathCost(path)
				require.NoError(t, err)
				assert.InDelta(t, dist[dst], cost, 1e-9, "%s: %d→%d", name, src, dst)
			}
		}
	}
}

func TestFindPath_InadmissibleStillValid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := randomGraph(t, rng, 30, 0.2, true)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	for _, dst := range g.NodeIDs() {
		path, err := astar.FindPath(g, 0, dst, astar.WithHeuristic(astar.SqrtEuclidean))
		require.NoError(t, err)
		if math.IsInf(dist[dst], 1) {
			assert.Empty(t, path)
			continue
		}
		cost, err := g.PathCost(path)
		require.NoError(t, err, "every hop must be a real connection")
		assert.GreaterOrEqual(t, cost+1e-9, dist[dst])
	}
}

func TestFindPath_ReopensClosedNode(t *testing.T) {
	// The heuristic pulls the search through the expensive 0–1 branch, so
	// 2 is closed at cost 11 before 4 is expanded. The cheaper 0–4–2
	// route must reopen 2 and re-point 3.
	//
	//	0 ─10─ 1 ─1─ 2 ─100─ 3
	//	 \           |
	//	  1─ 4 ─1────┘
	g := core.NewGraph()
	for _, p := range []orb.Point{{1, 0}, {0, 0}, {0, 0}, {0, 0}, {5, 0}} {
		g.AddNode(p)
	}
	require.NoError(t, g.AddConnection(0, 1, 10))
	require.NoError(t, g.AddConnection(1, 2, 1))
	require.NoError(t, g.AddConnection(2, 3, 100))
	require.NoError(t, g.AddConnection(0, 4, 1))
	require.NoError(t, g.AddConnection(4, 2, 1))

	h := func(dx, dy float64) float64 { return (dx + dy) * 10 }
	path, err := astar.FindPath(g, 0, 3, astar.WithHeuristic(h))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 4, 2, 3}, path)
	cost, err := g.PathCost(path)
	require.NoError(t, err)
	assert.Equal(t, 102.0, cost)
}

func TestHeuristics(t *testing.T) {
	cases := []struct {
		name string
		h    astar.Heuristic
		want float64
	}{
		{"manhattan", astar.Manhattan, 7},
		{"euclidean", astar.Euclidean, 5},
		{"sqrteuclidean", astar.SqrtEuclidean, 25},
		{"octile", astar.Octile, 4 + (math.Sqrt2-1)*3},
		{"chebyshev", astar.Chebyshev, 4},
		{"zero", astar.Zero, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.h(3, 4), 1e-12)
			byName, err := astar.HeuristicByName(tc.name)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, byName(3, 4), 1e-12)
		})
	}
	assert.InDelta(t, astar.Octile(4, 3), astar.Octile(3, 4), 1e-12)

	_, err := astar.HeuristicByName("nope")
	assert.ErrorIs(t, err, astar.ErrUnknownHeuristic)
	assert.Len(t, astar.HeuristicNames(), 6)
}

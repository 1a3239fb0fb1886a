package builder_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnav/builder"
	"github.com/katalvlaran/lvnav/core"
)

// TestConstructors_Counts checks node and connection counts for every shape.
func TestConstructors_Counts(t *testing.T) {
	cases := []struct {
		name         string
		con          builder.Constructor
		nodes, conns int
	}{
		{"Path", builder.Path(5), 5, 4},
		{"Cycle", builder.Cycle(6), 6, 6},
		{"Complete", builder.Complete(5), 5, 10},
		{"Star", builder.Star(5), 5, 4},
		{"Grid", builder.Grid(3, 4), 12, 17},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, g.NodeCount())
			assert.Equal(t, tc.conns, g.ConnectionCount())
		})
	}
}

// TestConstructors_Errors checks parameter validation sentinels.
func TestConstructors_Errors(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		opts []builder.BuilderOption
		err  error
	}{
		{"PathTooShort", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"CycleTooShort", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"CompleteEmpty", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"StarTooShort", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"GridEmpty", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"SparseBadP", builder.RandomSparse(3, 1.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"SparseNoRNG", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"NilConstructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.opts, tc.con)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestCosts checks distance costs, spacing and unit costs.
func TestCosts(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSpacing(2.5)}, builder.Path(3))
	require.NoError(t, err)
	pos, _ := g.Position(2)
	assert.Equal(t, orb.Point{5, 0}, pos)
	cost, err := g.PathCost([]core.NodeID{0, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, cost, 1e-12)

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithRadius(3), builder.WithUnitCost()}, builder.Star(4))
	require.NoError(t, err)
	c, err := g.Connection(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Cost)
	leaf, _ := g.Position(1)
	assert.InDelta(t, 3.0, math.Hypot(leaf[0], leaf[1]), 1e-12)
}

// TestComposition checks that ids continue across constructors.
func TestComposition(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(2), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.True(t, g.HasConnection(0, 1))
	assert.True(t, g.HasConnection(2, 4))
	assert.False(t, g.HasConnection(1, 2))
}

// TestDirected checks that directed fixtures are traversable both ways.
func TestDirected(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Cycle(3))
	require.NoError(t, err)
	assert.True(t, g.HasConnection(0, 1))
	assert.True(t, g.HasConnection(1, 0))
	assert.Equal(t, 6, g.ConnectionCount())
}

// TestRandomSparse_Deterministic checks seed reproducibility and the p extremes.
func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64, p float64) *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(12, p))
		require.NoError(t, err)
		return g
	}
	a, b := build(9, 0.3), build(9, 0.3)
	assert.Equal(t, a.Nodes(), b.Nodes())
	assert.Equal(t, a.Connections(), b.Connections())

	assert.Zero(t, build(1, 0).ConnectionCount())
	assert.Equal(t, 66, build(1, 1).ConnectionCount())

	for _, n := range a.Nodes() {
		assert.LessOrEqual(t, math.Abs(n.Position[0]), 10.0)
		assert.LessOrEqual(t, math.Abs(n.Position[1]), 10.0)
	}
}

// TestOptions_Panics checks that meaningless option values panic.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRadius(0) })
	assert.Panics(t, func() { builder.WithSpacing(-1) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

package core_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnav/core"
)

// square builds the 4-cycle 0-1-2-3-0 on the unit square with unit costs.
//
//	3───2
//	│   │
//	0───1
func square(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	pts := []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, p := range pts {
		g.AddNode(p)
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddConnection(core.NodeID(i), core.NodeID((i+1)%4), 1))
	}

	return g
}

// targets lists the To ids of conns in order.
func targets(conns []core.Connection) []core.NodeID {
	out := make([]core.NodeID, len(conns))
	for i, c := range conns {
		out[i] = c.To
	}

	return out
}

package builder

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
)

// addNodes inserts one node per position and returns their ids in order.
// Complexity: O(len(pos)).
func addNodes(g *core.Graph, pos []orb.Point) []core.NodeID {
	ids := make([]core.NodeID, len(pos))
	for i, p := range pos {
		ids[i] = g.AddNode(p)
	}

	return ids
}

// connect adds u→v (mirrored by core on undirected graphs). On directed
// graphs the reverse arc is added as well so every fixture is traversable
// both ways.
func connect(g *core.Graph, cfg builderConfig, method string, u, v core.NodeID) error {
	pu, _ := g.Position(u)
	pv, _ := g.Position(v)
	w := cfg.cost(pu, pv)
	if err := g.AddConnection(u, v, w); err != nil {
		return fmt.Errorf("%s: AddConnection(%d→%d, w=%g): %w", method, u, v, w, err)
	}
	if g.Directed() {
		if err := g.AddConnection(v, u, w); err != nil {
			return fmt.Errorf("%s: AddConnection(%d→%d, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}

// circle lays n points counter-clockwise on a circle of the given radius,
// starting at angle 0.
func circle(n int, radius float64) []orb.Point {
	pos := make([]orb.Point, n)
	for i := range pos {
		a := 2 * math.Pi * float64(i) / float64(n)
		pos[i] = orb.Point{radius * math.Cos(a), radius * math.Sin(a)}
	}

	return pos
}

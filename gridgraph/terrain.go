package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvnav/core"
)

// Terrain returns the terrain of cell id.
func (gg *GridGraph) Terrain(id core.NodeID) (TerrainType, error) {
	if err := gg.check(id); err != nil {
		return 0, err
	}

	return gg.terrain[id], nil
}

// SetTerrain sets the terrain of cell id to Ground or Mud.
// Returns ErrCellIndex or ErrTerrainType.
func (gg *GridGraph) SetTerrain(id core.NodeID, t TerrainType) error {
	if err := gg.check(id); err != nil {
		return err
	}
	if t != Ground && t != Mud {
		return fmt.Errorf("%w: %d", ErrTerrainType, t)
	}
	if gg.terrain[id] != t {
		gg.terrain[id] = t
		gg.version++
	}

	return nil
}

// ToggleTerrain flips cell id between Ground and Mud and returns the new value.
func (gg *GridGraph) ToggleTerrain(id core.NodeID) (TerrainType, error) {
	if err := gg.check(id); err != nil {
		return 0, err
	}
	next := Mud
	if gg.terrain[id] == Mud {
		next = Ground
	}

	return next, gg.SetTerrain(id, next)
}

// IsWall reports whether cell id is a wall. Out-of-range ids are not walls.
func (gg *GridGraph) IsWall(id core.NodeID) bool {
	return gg.check(id) == nil && gg.walls[id]
}

// SetWall makes cell id a wall (removing every connection touching it)
// or clears it (reconnecting it to every adjacent non-wall cell).
// Setting the current state again is a no-op.
func (gg *GridGraph) SetWall(id core.NodeID, wall bool) error {
	if err := gg.check(id); err != nil {
		return err
	}
	if gg.walls[id] == wall {
		return nil
	}

	if wall {
		if err := gg.graph.RemoveConnectionsWithNode(id); err != nil {
			return fmt.Errorf("gridgraph: wall %d: %w", id, err)
		}
	} else {
		for _, nb := range gg.neighbors(int(id)) {
			if gg.walls[nb] {
				continue
			}
			if err := gg.connect(int(id), nb); err != nil {
				return fmt.Errorf("gridgraph: unwall %d: %w", id, err)
			}
		}
	}
	gg.walls[id] = wall
	gg.version++

	return nil
}

// ToggleWall flips the wall state of cell id and returns the new state.
func (gg *GridGraph) ToggleWall(id core.NodeID) (bool, error) {
	if err := gg.check(id); err != nil {
		return false, err
	}
	next := !gg.walls[id]

	return next, gg.SetWall(id, next)
}

// Walls returns the ids of all wall cells in ascending order.
func (gg *GridGraph) Walls() []core.NodeID {
	var out []core.NodeID
	for id, w := range gg.walls {
		if w {
			out = append(out, core.NodeID(id))
		}
	}

	return out
}

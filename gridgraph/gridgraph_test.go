package gridgraph_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that constructors reject empty, ragged or invalid inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	if _, err := gridgraph.NewGridGraph(0, 3, gridgraph.DefaultGridOptions()); !errors.Is(err, gridgraph.ErrEmptyGrid) {
		t.Errorf("NewGridGraph(0,3) error = %v; want ErrEmptyGrid", err)
	}
	opts := gridgraph.DefaultGridOptions()
	opts.CellSize = -1
	if _, err := gridgraph.NewGridGraph(2, 2, opts); !errors.Is(err, gridgraph.ErrBadCellSize) {
		t.Errorf("NewGridGraph(CellSize=-1) error = %v; want ErrBadCellSize", err)
	}

	cases := []struct {
		name string
		rows [][]gridgraph.TerrainType
		err  error
	}{
		{"EmptyRows", [][]gridgraph.TerrainType{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]gridgraph.TerrainType{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]gridgraph.TerrainType{{1, 1}, {1}}, gridgraph.ErrNonRectangular},
		{"UnknownTerrain", [][]gridgraph.TerrainType{{1, 7}}, gridgraph.ErrTerrainType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.FromRows(tc.rows, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("FromRows(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestConnectivity checks connection counts and neighbour order under Conn4 and Conn8.
func TestConnectivity(t *testing.T) {
	gg4, err := gridgraph.NewGridGraph(3, 3, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	if got := gg4.Graph().ConnectionCount(); got != 12 {
		t.Errorf("Conn4 ConnectionCount = %d; want 12", got)
	}
	conns, _ := gg4.Graph().ConnectionsFrom(4)
	var to []core.NodeID
	for _, c := range conns {
		to = append(to, c.To)
		if c.Cost != 1 {
			t.Errorf("Conn4 cost 4→%d = %g; want 1", c.To, c.Cost)
		}
	}
	if want := []core.NodeID{1, 3, 5, 7}; !reflect.DeepEqual(to, want) {
		t.Errorf("Conn4 neighbours of 4 = %v; want %v", to, want)
	}

	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg8, err := gridgraph.NewGridGraph(3, 3, opts)
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	if got := gg8.Graph().ConnectionCount(); got != 20 {
		t.Errorf("Conn8 ConnectionCount = %d; want 20", got)
	}
	if d, _ := gg8.Graph().Degree(4); d != 8 {
		t.Errorf("Conn8 Degree(4) = %d; want 8", d)
	}
	c, err := gg8.Graph().Connection(0, 4)
	if err != nil {
		t.Fatalf("Connection(0,4) error: %v", err)
	}
	if math.Abs(c.Cost-math.Sqrt2) > 1e-12 {
		t.Errorf("diagonal cost = %g; want √2", c.Cost)
	}
}

// TestCoordinates covers Index, Coordinate, Position and NodeAt with a non-unit cell size.
func TestCoordinates(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.CellSize = 2
	gg, err := gridgraph.NewGridGraph(3, 2, opts)
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	if id := gg.Index(2, 1); id != 5 {
		t.Errorf("Index(2,1) = %d; want 5", id)
	}
	if id := gg.Index(3, 0); id != core.InvalidNodeID {
		t.Errorf("Index(3,0) = %d; want InvalidNodeID", id)
	}
	if c, r := gg.Coordinate(4); c != 1 || r != 1 {
		t.Errorf("Coordinate(4) = (%d,%d); want (1,1)", c, r)
	}
	p, err := gg.Position(4)
	if err != nil || p != (orb.Point{3, 3}) {
		t.Errorf("Position(4) = %v, %v; want (3,3)", p, err)
	}
	if _, err := gg.Position(6); !errors.Is(err, gridgraph.ErrCellIndex) {
		t.Errorf("Position(6) error = %v; want ErrCellIndex", err)
	}

	lookups := []struct {
		pos  orb.Point
		want core.NodeID
	}{
		{orb.Point{2.5, 0.1}, 1},
		{orb.Point{0, 0}, 0},
		{orb.Point{5.99, 3.99}, 5},
		{orb.Point{-0.1, 0}, core.InvalidNodeID},
		{orb.Point{6, 0}, core.InvalidNodeID},
	}
	for _, l := range lookups {
		if got := gg.NodeAt(l.pos); got != l.want {
			t.Errorf("NodeAt(%v) = %d; want %d", l.pos, got, l.want)
		}
	}
}

//----------------------------------------------------------------------------//
// Mutation Tests
//----------------------------------------------------------------------------//

// TestWalls checks that walls drop and restore connections and bump the version.
func TestWalls(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph(3, 3, gridgraph.DefaultGridOptions())
	g := gg.Graph()

	if err := gg.SetWall(4, true); err != nil {
		t.Fatalf("SetWall error: %v", err)
	}
	if d, _ := g.Degree(4); d != 0 {
		t.Errorf("Degree(4) after wall = %d; want 0", d)
	}
	if g.ConnectionCount() != 8 || !gg.IsWall(4) || gg.Version() != 1 {
		t.Errorf("after wall: count=%d wall=%v version=%d; want 8 true 1",
			g.ConnectionCount(), gg.IsWall(4), gg.Version())
	}
	_ = gg.SetWall(4, true)
	if gg.Version() != 1 {
		t.Errorf("repeated SetWall bumped version to %d", gg.Version())
	}

	wall, err := gg.ToggleWall(4)
	if err != nil || wall {
		t.Fatalf("ToggleWall = %v, %v; want false, nil", wall, err)
	}
	if d, _ := g.Degree(4); d != 4 || g.ConnectionCount() != 12 || gg.Version() != 2 {
		t.Errorf("after clear: degree=%d count=%d version=%d; want 4 12 2", d, g.ConnectionCount(), gg.Version())
	}

	// Clearing a cell next to a wall must not connect to the wall.
	_ = gg.SetWall(1, true)
	_ = gg.SetWall(0, true)
	_ = gg.SetWall(0, false)
	if g.HasConnection(0, 1) {
		t.Error("cleared cell 0 connected to wall 1")
	}
	if !g.HasConnection(0, 3) {
		t.Error("cleared cell 0 not reconnected to 3")
	}
	if got := gg.Walls(); !reflect.DeepEqual(got, []core.NodeID{1}) {
		t.Errorf("Walls() = %v; want [1]", got)
	}
	if _, err := gg.ToggleWall(9); !errors.Is(err, gridgraph.ErrCellIndex) {
		t.Errorf("ToggleWall(9) error = %v; want ErrCellIndex", err)
	}
}

// TestTerrain checks terrain toggling and validation.
func TestTerrain(t *testing.T) {
	gg, _ := gridgraph.FromRows([][]gridgraph.TerrainType{{1, 2, 0}}, gridgraph.DefaultGridOptions())
	if gg.Version() != 0 {
		t.Errorf("FromRows version = %d; want 0", gg.Version())
	}
	if tt, _ := gg.Terrain(1); tt != gridgraph.Mud {
		t.Errorf("Terrain(1) = %v; want mud", tt)
	}
	if !gg.IsWall(2) {
		t.Error("Blocked cell 2 is not a wall")
	}
	if tt, _ := gg.Terrain(2); tt != gridgraph.Ground {
		t.Errorf("Terrain(2) = %v; want ground", tt)
	}

	next, err := gg.ToggleTerrain(0)
	if err != nil || next != gridgraph.Mud || gg.Version() != 1 {
		t.Errorf("ToggleTerrain(0) = %v, %v (version %d); want mud, nil, 1", next, err, gg.Version())
	}
	next, _ = gg.ToggleTerrain(0)
	if next != gridgraph.Ground {
		t.Errorf("second ToggleTerrain(0) = %v; want ground", next)
	}
	if err := gg.SetTerrain(0, gridgraph.Blocked); !errors.Is(err, gridgraph.ErrTerrainType) {
		t.Errorf("SetTerrain(Blocked) error = %v; want ErrTerrainType", err)
	}
	if gridgraph.Mud.String() != "mud" || gridgraph.TerrainType(9).String() != "unknown" {
		t.Error("TerrainType.String mismatch")
	}
}

//----------------------------------------------------------------------------//
// Region Tests
//----------------------------------------------------------------------------//

func regionGrid(t *testing.T) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.FromRows([][]gridgraph.TerrainType{
		{1, 1, 0, 1},
		{1, 1, 0, 1},
		{0, 0, 0, 1},
	}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}

	return gg
}

// TestRegions verifies region discovery and lookup.
func TestRegions(t *testing.T) {
	gg := regionGrid(t)
	want := [][]core.NodeID{{0, 1, 4, 5}, {3, 7, 11}}
	if got := gg.Regions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Regions() = %v; want %v", got, want)
	}
	if r := gg.RegionOf(7); r != 1 {
		t.Errorf("RegionOf(7) = %d; want 1", r)
	}
	if r := gg.RegionOf(2); r != -1 {
		t.Errorf("RegionOf(wall) = %d; want -1", r)
	}
}

// TestBreachPath verifies the minimum-wall path between regions.
func TestBreachPath(t *testing.T) {
	gg := regionGrid(t)
	path, walls, err := gg.BreachPath(0, 1)
	if err != nil {
		t.Fatalf("BreachPath error: %v", err)
	}
	if want := []core.NodeID{1, 2, 3}; !reflect.DeepEqual(path, want) || walls != 1 {
		t.Errorf("BreachPath = %v, %d; want %v, 1", path, walls, want)
	}

	// Clearing the breached walls merges the regions.
	for _, id := range path {
		_ = gg.SetWall(id, false)
	}
	if n := len(gg.Regions()); n != 1 {
		t.Errorf("regions after breach = %d; want 1", n)
	}

	if _, _, err := gg.BreachPath(0, 5); !errors.Is(err, gridgraph.ErrRegionIndex) {
		t.Errorf("BreachPath(0,5) error = %v; want ErrRegionIndex", err)
	}
}

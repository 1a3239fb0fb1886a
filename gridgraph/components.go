package gridgraph

import "github.com/katalvlaran/lvnav/core"

// Regions finds all contiguous groups of non-wall cells under the grid's
// connectivity. Regions are ordered by their lowest cell id; cells inside
// a region are in BFS order from that cell.
//
// Adjacency is read from the grid geometry and wall flags rather than
// from the backing graph, so it matches the graph exactly as long as
// topology is changed only through SetWall.
//
// Time:   O(cols·rows·d), where d = 4 or 8.
// Memory: O(cols·rows) for visited flags and output.
func (gg *GridGraph) Regions() [][]core.NodeID {
	total := gg.CellCount()
	seen := make([]bool, total)
	var regions [][]core.NodeID

	for i0 := 0; i0 < total; i0++ {
		if gg.walls[i0] || seen[i0] {
			continue
		}
		// BFS to collect region
		queue := []int{i0}
		seen[i0] = true
		var region []core.NodeID

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			region = append(region, core.NodeID(u))
			for _, v := range gg.neighbors(u) {
				if gg.walls[v] || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, region)
	}

	return regions
}

// RegionOf returns the index into Regions() of the region holding id,
// or -1 for walls and out-of-range ids.
// Complexity: O(cols·rows·d).
func (gg *GridGraph) RegionOf(id core.NodeID) int {
	if gg.check(id) != nil || gg.walls[id] {
		return -1
	}
	for ri, region := range gg.Regions() {
		for _, c := range region {
			if c == id {
				return ri
			}
		}
	}

	return -1
}

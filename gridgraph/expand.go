package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/lvnav/core"
)

// BreachPath finds a path crossing the fewest walls that links any cell of
// region srcRegion to any cell of region dstRegion, as indexed by Regions().
// Entering a wall cell costs 1, entering an open cell costs 0.
// Returns the cell sequence (first and last cells are open) and the
// number of walls crossed. Clearing those walls merges the two regions.
//
// Behavior:
//  1. Validate region indices.
//  2. Multi-source 0-1 BFS from all srcRegion cells.
//  3. Stop when any dstRegion cell is dequeued.
//  4. Reconstruct path via predecessor slice.
//
// Complexity: O(cols·rows·d).
// Memory:     O(cols·rows) for distance and prev.
func (gg *GridGraph) BreachPath(srcRegion, dstRegion int) (path []core.NodeID, walls int, err error) {
	regions := gg.Regions()
	if srcRegion < 0 || srcRegion >= len(regions) || dstRegion < 0 || dstRegion >= len(regions) {
		return nil, 0, fmt.Errorf("%w: %d, %d of %d", ErrRegionIndex, srcRegion, dstRegion, len(regions))
	}
	dstSet := make(map[int]struct{}, len(regions[dstRegion]))
	for _, id := range regions[dstRegion] {
		dstSet[int(id)] = struct{}{}
	}

	n := gg.CellCount()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, id := range regions[srcRegion] {
		dist[id] = 0
		dq.PushBack(int(id))
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		for _, v := range gg.neighbors(u) {
			step := 0
			if gg.walls[v] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	// Reconstruct path
	for at := target; at >= 0; at = prev[at] {
		path = append(path, core.NodeID(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

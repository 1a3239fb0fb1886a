// Package lvnav is a toolkit for moving agents through 2D space: weighted
// graphs, A* routes over them, smoothed paths across triangle meshes, and
// flow fields that send many agents toward one destination.
//
// What is inside?
//
//	core/       — Graph arena: positioned nodes, weighted connections, Clone
//	builder/    — deterministic fixture graphs (Path, Cycle, Grid, RandomSparse…)
//	bfs/ dfs/   — traversals with hooks, depth limits and filters
//	dijkstra/   — single-source shortest paths
//	astar/      — A* search + Manhattan/Euclidean/Octile/Chebyshev heuristics
//	euler/      — Eulerian classification and Hierholzer trails
//	funnel/     — portal extraction and the simple stupid funnel algorithm
//	navmesh/    — triangle mesh, R-tree point location, nav graph, FindPath
//	gridgraph/  — terrain grid: walls, mud, regions, breach paths, versioning
//	flowfield/  — heatmap, vector field and a destination-keyed cache
//	vmath/      — small vector helpers over orb.Point
//	config/     — HJSON scenario files
//	pkg/logger/ — levelled asynchronous console logger
//	cmd/lvnav/  — command line front-end for all of the above
//
// Quick ASCII example (a 2×1 navmesh, four triangles):
//
//	(-2,1)───(0,1)───(2,1)
//	  │ B   ╱ │ D   ╱ │
//	  │   ╱   │   ╱   │
//	  │ ╱   A │ ╱   C │
//	(-2,-1)──(0,-1)──(2,-1)
//
// A query from B to C crosses three shared lines, then the funnel pulls
// the route tight into a single straight segment.
//
// Every position is a github.com/paulmach/orb Point. Algorithms are
// single-threaded and never share state; clone a graph to query it from
// several goroutines.
//
//	go get github.com/katalvlaran/lvnav
package lvnav

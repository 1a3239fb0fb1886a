// Package euler answers whether an undirected core.Graph has a trail
// that uses every connection exactly once, and builds one.
//
//	kind, err := euler.IsEulerian(g)        // NotEulerian, SemiEulerian, Eulerian
//	path, kind, err := euler.FindPath(g)    // empty path when NotEulerian
//
// Connectivity is checked with package dfs; construction follows
// Hierholzer's stack-based walk on a clone, always leaving through the
// earliest remaining connection, so results are deterministic.
package euler

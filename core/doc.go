// Package core provides the in-memory navigation Graph: an arena of
// positioned nodes addressed by stable integer ids, plus per-node lists of
// cost-weighted outgoing connections.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected connections (WithDirected).
//     Undirected graphs store every connection as two mirrored directed
//     connections, so ConnectionsFrom(v) is the full neighbourhood of v.
//   - Self-connections (WithLoops); rejected with ErrLoopNotAllowed otherwise.
//   - Stable ids: NodeID values are arena indices, handed out monotonically
//     and never reused after RemoveNode, so ids held by callers never alias
//     a different node.
//   - Cheap Clone: node positions and connection costs are copied into fresh
//     storage; no pointer fix-up is needed because connections reference ids.
//   - SetAllCostsToDistance: bulk recomputation of every cost as the
//     Euclidean distance between endpoint positions.
//
// Why clone?
//
//	Algorithms that mutate topology (Eulerian extraction removes connections,
//	navmesh queries inject start/end nodes) always work on a Clone, so the
//	caller's graph is never corrupted.
//
// Determinism:
//
//	Nodes() is ordered by ascending id and ConnectionsFrom(v) by insertion
//	order, so every algorithm built on top of core is reproducible.
//
// Concurrency:
//
//	Graph has no internal locking. Share a Graph across goroutines only for
//	reads, or give each goroutine its own Clone.
//
// Errors:
//
//	ErrNodeNotFound       - id does not refer to a live node.
//	ErrConnectionNotFound - no connection between the given endpoints.
//	ErrConnectionExists   - a connection between the endpoints already exists.
//	ErrLoopNotAllowed     - from == to on a graph built without WithLoops.
//	ErrNegativeCost       - cost is negative or NaN.
//
// Complexity (V = live nodes, E = stored connections, d = degree):
//
//	AddNode O(1) amortized, AddConnection O(d), RemoveConnection O(d),
//	RemoveNode O(V+E), Clone O(V+E), SetAllCostsToDistance O(E).
package core

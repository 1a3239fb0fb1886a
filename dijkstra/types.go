// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes in a graph with non-negative connection costs.
// The algorithm maintains a priority queue of nodes to explore and
// relaxes connections in increasing order of distance from the source.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |nodes|, E = |connections|
//	– Space: O(V + E)
//	   • O(V) to store distance and predecessor maps.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– Source:           id of the starting node (must be present in the graph).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; nodes beyond this are skipped.
//	– InfEdgeThreshold: connections with cost >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if no source node was provided.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source node does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//	– ErrNoPath          from PathTo when the destination was not reached.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvnav/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source node was provided.
	ErrEmptySource = errors.New("dijkstra: source node is not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source node does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all connections as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the requested destination is unreachable.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node id (must be present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore (nodes beyond are skipped).
// InfEdgeThreshold – treat connections with cost ≥ this threshold as impassable obstacles.
type Options struct {
	Source           core.NodeID // The id of the source node
	ReturnPath       bool        // Whether to return the predecessor map
	MaxDistance      float64     // Maximum distance to explore
	InfEdgeThreshold float64     // Cost threshold above which connections are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node. Must be called.
func Source(id core.NodeID) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold above which connections are
// considered non-traversable.
// Zero, negative or NaN values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source node.
//
// Defaults:
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (no connection treated as impassable).
func DefaultOptions(source core.NodeID) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

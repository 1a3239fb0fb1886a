// Package core declares Node, Connection, Graph, GraphOption, the sentinel
// errors, and the NewGraph constructor.
package core

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a removed or unknown node id.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrConnectionNotFound indicates an operation referenced a missing connection.
	ErrConnectionNotFound = errors.New("core: connection not found")

	// ErrConnectionExists indicates the endpoints are already connected.
	ErrConnectionExists = errors.New("core: connection already exists")

	// ErrLoopNotAllowed indicates a self-connection was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeCost indicates a negative or NaN connection cost.
	ErrNegativeCost = errors.New("core: connection cost must be non-negative")
)

// NodeID identifies a node within one Graph.
type NodeID int

// InvalidNodeID is the "no node" sentinel. It is never handed out by AddNode.
const InvalidNodeID NodeID = -1

// Node is a positioned graph node.
type Node struct {
	// ID is the arena index of this node; stable for the node's lifetime.
	ID NodeID

	// Position is the node's location in world space.
	Position orb.Point
}

// Connection is a directed, cost-weighted link between two nodes.
type Connection struct {
	From NodeID
	To   NodeID
	Cost float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether connections are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-connections (from == to).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core navigation graph.
//
// nodes is an arena indexed by NodeID; a nil slot is a removed node.
// adjacency[id] holds the outgoing connections of id in insertion order.
// For undirected graphs every logical connection u-v is stored twice
// (u→v in adjacency[u], v→u in adjacency[v]) except self-loops, stored once.
type Graph struct {
	// Configuration flags
	directed   bool
	allowLoops bool

	// Storage
	nodes     []*Node
	adjacency [][]*Connection

	// Counters of live nodes and logical connections.
	nodeCount       int
	connectionCount int
}

// NewGraph creates an empty Graph. By default it is undirected without loops.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

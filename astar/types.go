// Package astar defines options, heuristics and error definitions for
// A* search over a core.Graph.
package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors for A* execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNodeNotFound is returned when start or goal is not a live node.
	ErrNodeNotFound = errors.New("astar: node not found")

	// ErrNilHeuristic is returned when WithHeuristic receives nil.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrUnknownHeuristic is returned by HeuristicByName for unknown names.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")
)

// Heuristic estimates the remaining cost from the absolute coordinate
// deltas between a node and the goal. Both arguments are >= 0.
type Heuristic func(dx, dy float64) float64

// Option configures FindPath via functional arguments.
type Option func(*Options)

// Options holds A* parameters.
type Options struct {
	// Heuristic scores the remaining distance. Default Chebyshev.
	Heuristic Heuristic

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the Chebyshev heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: Chebyshev}
}

// WithHeuristic replaces the heuristic. A nil h surfaces as ErrNilHeuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: WithHeuristic(nil)", ErrNilHeuristic)
			return
		}
		o.Heuristic = h
	}
}

package astar

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// octileF is √2 − 1: the extra cost of a diagonal step over a straight one.
var octileF = math.Sqrt2 - 1

// Manhattan is dx + dy. Admissible on 4-connected grids with unit steps.
func Manhattan(dx, dy float64) float64 {
	return dx + dy
}

// Euclidean is the straight-line distance.
func Euclidean(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// SqrtEuclidean is the squared straight-line distance. It overestimates
// and is therefore inadmissible: paths come out faster but may be
// suboptimal.
func SqrtEuclidean(dx, dy float64) float64 {
	return dx*dx + dy*dy
}

// Octile is the exact cost on an 8-connected grid with √2 diagonals.
func Octile(dx, dy float64) float64 {
	if dx < dy {
		return octileF*dx + dy
	}

	return octileF*dy + dx
}

// Chebyshev is max(dx, dy).
func Chebyshev(dx, dy float64) float64 {
	return math.Max(dx, dy)
}

// Zero turns A* into Dijkstra's algorithm.
func Zero(_, _ float64) float64 {
	return 0
}

// heuristics maps the lower-case names accepted by HeuristicByName.
var heuristics = map[string]Heuristic{
	"manhattan":     Manhattan,
	"euclidean":     Euclidean,
	"sqrteuclidean": SqrtEuclidean,
	"octile":        Octile,
	"chebyshev":     Chebyshev,
	"zero":          Zero,
}

// HeuristicByName resolves a heuristic by case-insensitive name.
func HeuristicByName(name string) (Heuristic, error) {
	h, ok := heuristics[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownHeuristic, name, strings.Join(HeuristicNames(), ", "))
	}

	return h, nil
}

// HeuristicNames lists the names accepted by HeuristicByName, sorted.
func HeuristicNames() []string {
	out := make([]string, 0, len(heuristics))
	for name := range heuristics {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

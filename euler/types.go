package euler

import "errors"

// Sentinel errors for Eulerian analysis.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("euler: graph is nil")

	// ErrDirectedGraph is returned for directed graphs; degree parity
	// classification only holds for undirected ones.
	ErrDirectedGraph = errors.New("euler: directed graphs not supported")
)

// Eulerianity classifies a graph by the Euler trails it admits.
type Eulerianity int

const (
	// NotEulerian graphs have no trail using every connection once.
	NotEulerian Eulerianity = iota
	// SemiEulerian graphs have an open trail between their two odd nodes.
	SemiEulerian
	// Eulerian graphs have a closed circuit.
	Eulerian
)

// String implements fmt.Stringer.
func (e Eulerianity) String() string {
	switch e {
	case NotEulerian:
		return "not eulerian"
	case SemiEulerian:
		return "semi-eulerian"
	case Eulerian:
		return "eulerian"
	default:
		return "unknown"
	}
}

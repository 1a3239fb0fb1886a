// Package builder provides deterministic fixture constructors for
// positioned navigation graphs.
//
// Each Constructor adds nodes with positions and connects them with a
// cost equal to the Euclidean distance between endpoints (or 1 with
// WithUnitCost). BuildGraph creates a core.Graph and applies constructors
// in order; node ids continue from one constructor to the next, so
// several shapes can be composed into one disconnected fixture.
//
// Constructors:
//
//   - Path(n):            n nodes on the x axis, spaced by WithSpacing.
//   - Cycle(n):           n nodes on a circle of WithRadius, ring connected.
//   - Complete(n):        K_n on a circle.
//   - Star(n):            hub at the origin plus n-1 leaves on a circle.
//   - Grid(rows, cols):   row-major lattice, right and bottom neighbours.
//   - RandomSparse(n, p): uniform scatter, each pair connected with probability p.
//
// Options:
//
//   - WithSeed / WithRand: RNG for RandomSparse (required).
//   - WithRadius, WithSpacing: layout scale; panic on non-positive values.
//   - WithUnitCost: every connection costs 1.
//
// On directed graphs every connection is emitted in both directions.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, plus wrapped core errors.
package builder

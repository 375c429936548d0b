package tsp

import "errors"

// Sentinel errors shared by every solver in this package. Hot paths
// return these directly; no fmt.Errorf wrapping, so callers can rely on
// errors.Is against exactly this set.
var (
	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNonZeroDiagonal is returned when some dist[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("tsp: distance matrix diagonal must be zero")

	// ErrNegativeWeight is returned when a distance is negative or NaN.
	ErrNegativeWeight = errors.New("tsp: negative or NaN distance")

	// ErrAsymmetry is returned when dist[i][j] != dist[j][i] beyond tolerance.
	ErrAsymmetry = errors.New("tsp: distance matrix is asymmetric")

	// ErrDimensionMismatch is returned for shape violations: empty inputs,
	// tours that are not permutations of {0..n-1}, mismatched lengths.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange is returned when a start vertex is outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrExactInfeasible signals that n exceeds MaxExactVertices; exact
	// solvers refuse the instance without attempting any computation and
	// callers must fall back to a heuristic.
	ErrExactInfeasible = errors.New("tsp: instance too large for exact solving")

	// ErrBrokenChain is returned when greedy-edge reconstruction dead-ends
	// before visiting every vertex. It indicates an edge-selection bug and
	// is never silently truncated away.
	ErrBrokenChain = errors.New("tsp: greedy edge chain is broken")
)

// TourResult is a realized tour together with its total length,
// including the implicit wrap-around edge.
type TourResult struct {
	// Tour is an open permutation of {0..n-1}; the edge from the last
	// element back to the first is implicit.
	Tour []int

	// Length is the total cycle length, stabilized to 1e-9.
	Length float64
}

// Package tsp - validation helpers shared by all exported solvers.
//
// Design principles:
//   - Deterministic, side-effect free checks.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst case over the matrix; no hidden allocations.
package tsp

import "math"

// symTol is the structural tolerance for symmetry and diagonal checks.
// Independent from Options.Eps, which governs local-search acceptance.
const symTol = 1e-12

// validateDistMatrix verifies the structural preconditions every solver
// borrows from the distance model:
//   - non-empty and square,
//   - diagonal ≈ 0 within symTol,
//   - no negative or NaN entries,
//   - symmetric within symTol.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist [][]float64) (int, error) {
	n := len(dist)
	if n == 0 {
		return 0, ErrDimensionMismatch
	}

	// Stage 1: shape.
	var i, j int
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
	}

	// Stage 2: diagonal, negativity, NaN.
	var w float64
	for i = 0; i < n; i++ {
		w = dist[i][i]
		if math.IsNaN(w) || math.Abs(w) > symTol {
			return 0, ErrNonZeroDiagonal
		}
		for j = 0; j < n; j++ {
			w = dist[i][j]
			if math.IsNaN(w) || w < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	// Stage 3: symmetry on the upper triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(dist[i][j]-dist[j][i]) > symTol {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}

// validateStartVertex verifies start ∈ [0..n-1].
//
// Complexity: O(1).
func validateStartVertex(n, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}

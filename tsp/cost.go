// Package tsp - cost utilities shared by exact and heuristic solvers.
//
// Design:
//   - Side-effect free; the matrix is read-only.
//   - Stable summation: results rounded to 1e-9 to avoid cross-platform
//     FP noise in comparisons and tests.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourLength sums the cycle length of an open tour over dist, including
// the implicit wrap edge from the last vertex back to the first.
//
// Contract:
//   - tour indices must be within [0..len(dist)-1]; the caller is
//     expected to hold a validated permutation. Degenerate tours
//     (n < 3) still sum; a two-vertex cycle walks its edge twice.
//
// Complexity: O(n).
func TourLength(tour []int, dist [][]float64) float64 {
	n := len(tour)
	if n == 0 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += dist[tour[i]][tour[(i+1)%n]]
	}

	return round1e9(sum)
}

// Efficiency scores a solution against a reference length as
// reference/solution × 100. A solution matching the reference scores
// 100; longer tours score below 100. Defined as 0 for any
// solutionLength <= 0 so degenerate solutions never rank.
//
// Complexity: O(1).
func Efficiency(solutionLength, referenceLength float64) float64 {
	if solutionLength <= 0 {
		return 0
	}

	return referenceLength / solutionLength * 100
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Package tsp - tour utilities operating purely on index sequences,
// independent of any distance matrix.
package tsp

// ValidatePermutation checks that tour is a permutation of {0..n-1} of
// length n: every id in range, no duplicates, no omissions.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour []int, n int) error {
	if n <= 0 || len(tour) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n).
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// reverseSegmentInPlace reverses tour[i..k] inclusive. This is the
// primitive move shared by 2-opt and simulated annealing.
//
// Contract: 0 <= i <= k < len(tour).
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegmentInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// RotateTour returns a fresh copy of the open tour cyclically shifted
// left by k positions. Tour length is invariant under this operation.
//
// Complexity: O(n) time, O(n) space.
func RotateTour(tour []int, k int) []int {
	n := len(tour)
	if n == 0 {
		return nil
	}
	k = ((k % n) + n) % n

	out := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = tour[(i+k)%n]
	}

	return out
}

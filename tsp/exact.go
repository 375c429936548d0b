// Package tsp - exact solvers: exhaustive permutation search and the
// FindOptimal dispatcher with its feasibility ceiling. The Held–Karp
// dynamic program lives in heldkarp.go.
package tsp

// Feasibility ceilings for exact solving. Beyond MaxBruteForceVertices
// the factorial search is impractical; beyond MaxExactVertices even the
// O(n²·2ⁿ) dynamic program exhausts time/memory and FindOptimal refuses
// the instance outright.
const (
	MaxBruteForceVertices = 10
	MaxExactVertices      = 20
)

// BruteForce finds the optimal tour by exploring all (n-1)! orderings
// with vertex 0 fixed as the origin - valid because cyclic rotation does
// not change tour length. Deterministic; no randomness.
//
// Correct for any n, practical only up to n≈10-12.
//
// Complexity: O(n!) time, O(n) extra space.
func BruteForce(dist [][]float64) (TourResult, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return TourResult{}, err
	}

	// Identity tour as the initial incumbent.
	cities := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		cities[i] = i
	}
	best := CopyTour(cities)
	bestLength := TourLength(cities, dist)

	// Swap-based permutation of positions [1..n-1]; position 0 stays 0.
	var permute func(start int)
	permute = func(start int) {
		if start == n-1 {
			length := TourLength(cities, dist)
			if length < bestLength {
				bestLength = length
				copy(best, cities)
			}

			return
		}
		var k int
		for k = start; k < n; k++ {
			cities[start], cities[k] = cities[k], cities[start]
			permute(start + 1)
			cities[start], cities[k] = cities[k], cities[start]
		}
	}
	permute(1)

	return TourResult{Tour: best, Length: round1e9(bestLength)}, nil
}

// FindOptimal routes to the cheapest exact solver able to handle the
// instance:
//
//	n <= 10 → BruteForce
//	n <= 20 → HeldKarp
//	n >  20 → ErrExactInfeasible, with no computation attempted.
//
// Callers receiving ErrExactInfeasible must fall back to a heuristic.
func FindOptimal(dist [][]float64) (TourResult, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return TourResult{}, err
	}
	if n > MaxExactVertices {
		return TourResult{}, ErrExactInfeasible
	}
	if n <= MaxBruteForceVertices {
		return BruteForce(dist)
	}

	return HeldKarp(dist)
}

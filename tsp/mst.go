package tsp

import "math"

// MSTLowerBound computes the weight of a minimum spanning tree over the
// complete graph implied by dist, using Prim's algorithm.
//
// Any Hamiltonian cycle minus one edge is a spanning tree, so the MST
// weight is an admissible lower bound on every TSP tour. It is a
// quality metric for harnesses scoring heuristics on instances too
// large for exact solving - no solver in this package consults it as a
// search bound.
//
// Complexity: O(n²) time, O(n) space.
func MSTLowerBound(dist [][]float64) (float64, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return 0, err
	}
	if n == 1 {
		return 0, nil
	}

	var (
		inTree   = make([]bool, n)
		bestCost = make([]float64, n)
		weight   float64
	)

	// Grow from vertex 0; bestCost[v] tracks the cheapest edge linking v
	// to the tree built so far.
	var v int
	for v = 0; v < n; v++ {
		bestCost[v] = math.Inf(1)
	}
	bestCost[0] = 0

	var (
		it   int
		u    int
		minW float64
	)
	for it = 0; it < n; it++ {
		// Cheapest vertex outside the tree.
		u = -1
		minW = math.Inf(1)
		for v = 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				minW = bestCost[v]
				u = v
			}
		}
		if u < 0 {
			// Unreachable for a validated finite matrix.
			return 0, ErrDimensionMismatch
		}

		inTree[u] = true
		weight += minW

		// Relax the frontier through u.
		for v = 0; v < n; v++ {
			if !inTree[v] && dist[u][v] < bestCost[v] {
				bestCost[v] = dist[u][v]
			}
		}
	}

	return round1e9(weight), nil
}

package tsp

import "math"

// NearestNeighbor builds a tour by starting at the given vertex and
// repeatedly appending the closest unvisited vertex. Greedy, no
// backtracking; quality depends heavily on the start vertex and degrades
// on clustered inputs, but the result is always a complete permutation.
//
// Ties break towards the smallest index, keeping the output
// deterministic.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(dist [][]float64, start int) ([]int, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return nil, err
	}
	if err = validateStartVertex(n, start); err != nil {
		return nil, err
	}

	visited := make([]bool, n)
	tour := make([]int, 0, n)

	current := start
	tour = append(tour, current)
	visited[current] = true

	var (
		i           int
		nearest     int
		nearestDist float64
	)
	for len(tour) < n {
		nearest = -1
		nearestDist = math.Inf(1)
		for i = 0; i < n; i++ {
			if !visited[i] && dist[current][i] < nearestDist {
				nearest = i
				nearestDist = dist[current][i]
			}
		}

		// A finite validated matrix always yields a candidate.
		tour = append(tour, nearest)
		visited[nearest] = true
		current = nearest
	}

	return tour, nil
}

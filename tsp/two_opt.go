// Package tsp - 2-opt local search on open tours.
//
// TwoOpt performs deterministic first-improvement 2-opt: for a candidate
// pair (i, j), i < j, it compares the two current edges
//
//	(tour[i], tour[i+1]) and (tour[j], tour[(j+1) mod n])
//
// against the reconnection
//
//	(tour[i], tour[j]) and (tour[i+1], tour[(j+1) mod n])
//
// and, when the reconnection is strictly shorter (beyond Eps), reverses
// the segment [i+1..j] in place and restarts the sweep over the mutated
// tour. The pair (i=0, j=n-1) is skipped: reversing the whole interior
// is a no-op on the cycle.
//
// Termination: a full sweep with no improving move, or the sweep cap.
// The returned tour is never longer than the input (monotonic
// non-worsening).
package tsp

// TwoOpt improves an existing tour by first-improvement edge exchange.
//
// maxIterations caps the number of restarted sweeps; 0 means "run to the
// local optimum". opts supplies only Eps here.
//
// Contract: tour must be a permutation of {0..n-1} over dist's order.
// The input slice is not mutated.
//
// Complexity: O(n²) per sweep; O(n) extra space for the working copy.
func TwoOpt(dist [][]float64, tour []int, maxIterations int, opts Options) ([]int, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return nil, err
	}
	if err = ValidatePermutation(tour, n); err != nil {
		return nil, err
	}

	eps := opts.Eps
	if eps < 0 {
		eps = 0
	}

	cur := CopyTour(tour)
	if n < 4 {
		// No 2-opt move can change a cycle of fewer than 4 vertices.
		return cur, nil
	}

	var (
		sweeps   int
		improved = true
		i, j     int
		a, b     int // edge 1 endpoints: tour[i], tour[i+1]
		c, d     int // edge 2 endpoints: tour[j], tour[(j+1)%n]
		delta    float64
	)
	for improved {
		if maxIterations > 0 && sweeps >= maxIterations {
			break
		}
		sweeps++
		improved = false

	scan:
		for i = 0; i < n-1; i++ {
			for j = i + 2; j < n; j++ {
				// Reversing [1..n-1] relative to vertex 0 maps the cycle
				// onto itself; skip the no-op pair.
				if i == 0 && j == n-1 {
					continue
				}

				a = cur[i]
				b = cur[i+1]
				c = cur[j]
				d = cur[(j+1)%n]

				delta = (dist[a][c] + dist[b][d]) - (dist[a][b] + dist[c][d])
				if delta < -eps {
					reverseSegmentInPlace(cur, i+1, j)
					improved = true

					// First-improvement policy: restart from the top of
					// the mutated tour.
					break scan
				}
			}
		}
	}

	return cur, nil
}

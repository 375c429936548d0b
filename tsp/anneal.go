// Package tsp - simulated annealing over segment-reversal moves.
package tsp

import "math"

// SimulatedAnnealing improves an initial tour by randomized segment
// reversal with Metropolis acceptance.
//
// Each iteration:
//  1. Draw two distinct random positions, normalized to (minIdx, maxIdx).
//  2. Estimate the length delta of reversing [minIdx..maxIdx] from the
//     two boundary edges only - the same delta 2-opt uses. When minIdx
//     is 0 the "previous" position wraps to n-1, which can sit inside
//     the reversed segment; the delta is then an estimate, which is
//     acceptable because the exact length is recomputed on acceptance.
//  3. Accept when delta < 0, or with probability exp(-delta/T) - worse
//     moves are taken deliberately to escape local minima.
//  4. Decay the temperature geometrically (T *= coolingRate), regardless
//     of acceptance.
//
// The best tour seen across all iterations is returned, not the final
// current tour: degrading moves are accepted by design, so the walk may
// end somewhere worse than it has been. The budget is fixed; there is no
// early convergence stop.
//
// Configuration comes from opts: SAIterations, SAInitialTemp,
// SACoolingRate and Seed (seed 0 ⇒ fixed default stream, fully
// reproducible runs).
//
// Complexity: O(iterations · n) time, O(n) space.
func SimulatedAnnealing(dist [][]float64, initial []int, opts Options) ([]int, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return nil, err
	}
	if err = ValidatePermutation(initial, n); err != nil {
		return nil, err
	}
	if n < 3 {
		return CopyTour(initial), nil
	}

	iterations := opts.SAIterations
	if iterations <= 0 {
		iterations = DefaultSAIterations
	}
	temperature := opts.SAInitialTemp
	if temperature <= 0 {
		temperature = DefaultSAInitialTemp
	}
	coolingRate := opts.SACoolingRate
	if coolingRate <= 0 || coolingRate >= 1 {
		coolingRate = DefaultSACoolingRate
	}

	rng := rngFromSeed(opts.Seed)

	current := CopyTour(initial)
	currentLength := TourLength(current, dist)
	best := CopyTour(current)
	bestLength := currentLength

	var (
		it               int
		i, j             int
		minIdx, maxIdx   int
		prev, nextMax    int
		oldDist, newDist float64
		delta            float64
	)
	for it = 0; it < iterations; it++ {
		// Two distinct positions in [0, n-1).
		i = rng.Intn(n - 1)
		j = rng.Intn(n - 1)
		if j >= i {
			j++
		}
		if i < j {
			minIdx, maxIdx = i, j
		} else {
			minIdx, maxIdx = j, i
		}

		// Boundary-edge delta of reversing [minIdx..maxIdx].
		prev = (minIdx + n - 1) % n
		nextMax = (maxIdx + 1) % n
		oldDist = dist[current[prev]][current[minIdx]] + dist[current[maxIdx]][current[nextMax]]
		newDist = dist[current[prev]][current[maxIdx]] + dist[current[minIdx]][current[nextMax]]
		delta = newDist - oldDist

		// Metropolis criterion.
		if delta < 0 || rng.Float64() < math.Exp(-delta/temperature) {
			reverseSegmentInPlace(current, minIdx, maxIdx)
			currentLength = TourLength(current, dist)

			if currentLength < bestLength {
				copy(best, current)
				bestLength = currentLength
			}
		}

		temperature *= coolingRate
	}

	return best, nil
}

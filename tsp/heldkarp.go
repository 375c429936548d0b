package tsp

import "math"

// HeldKarp solves the TSP exactly with the Held–Karp dynamic program.
//
// State space: (S, j) where S is a bitmask over vertices {1..n-1} and
// j ∈ S is the last vertex visited before returning to the fixed start 0.
// Encoding: bit j-1 of the mask represents vertex j, so masks range over
// [0, 2^(n-1)) and the tables stay half the size of a naive encoding
// that carries vertex 0.
//
// Recurrence:
//
//	cost({j}, j)  = dist[0][j]
//	cost(S, j)    = min over k ∈ S\{j} of cost(S\{j}, k) + dist[k][j]
//	answer        = min over j of cost(Full, j) + dist[j][0]
//
// The tables are flat arrays indexed mask*(n-1)+(j-1), with +Inf marking
// unreachable states and -1 marking "no predecessor" - no hashmaps, no
// string keys, no per-state allocation. Masks are filled in increasing
// numeric order, which resolves dependencies because S\{j} < S.
//
// Tour reconstruction walks the predecessor table backwards from the
// optimal final state.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) space - practical up to n≈20, the
// MaxExactVertices ceiling enforced by FindOptimal.
func HeldKarp(dist [][]float64) (TourResult, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return TourResult{}, err
	}
	if n == 1 {
		return TourResult{Tour: []int{0}, Length: 0}, nil
	}

	// m counts the free vertices 1..n-1; fullMask has all their bits set.
	m := n - 1
	fullMask := (1 << m) - 1
	size := (fullMask + 1) * m

	// Stage 1: allocate flat DP and predecessor tables.
	dp := make([]float64, size)
	parent := make([]int32, size)
	var i int
	for i = 0; i < size; i++ {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}

	// Stage 2: base cases - direct hop 0→j for every free vertex j.
	var j int
	for j = 1; j <= m; j++ {
		dp[(1<<(j-1))*m+(j-1)] = dist[0][j]
	}

	// Stage 3: fill masks in increasing order.
	var (
		mask, prevMask int
		k              int
		bitJ           int
		cand, cur      float64
		base           int
	)
	for mask = 1; mask <= fullMask; mask++ {
		// Singleton masks are base cases; nothing to relax.
		if mask&(mask-1) == 0 {
			continue
		}
		base = mask * m
		for j = 1; j <= m; j++ {
			bitJ = 1 << (j - 1)
			if mask&bitJ == 0 {
				continue
			}
			prevMask = mask ^ bitJ
			cur = math.Inf(1)
			for k = 1; k <= m; k++ {
				if prevMask&(1<<(k-1)) == 0 {
					continue
				}
				cand = dp[prevMask*m+(k-1)] + dist[k][j]
				if cand < cur {
					cur = cand
					parent[base+(j-1)] = int32(k)
				}
			}
			dp[base+(j-1)] = cur
		}
	}

	// Stage 4: close the cycle back to vertex 0.
	var (
		bestLength = math.Inf(1)
		last       = -1
		total      float64
	)
	for j = 1; j <= m; j++ {
		total = dp[fullMask*m+(j-1)] + dist[j][0]
		if total < bestLength {
			bestLength = total
			last = j
		}
	}
	if last < 0 || math.IsInf(bestLength, 1) {
		// Unreachable for a validated finite matrix; kept as a guard.
		return TourResult{}, ErrDimensionMismatch
	}

	// Stage 5: reconstruct the tour by walking predecessors backwards.
	tour := make([]int, n)
	tour[0] = 0
	mask = fullMask
	j = last
	for i = n - 1; i >= 1; i-- {
		tour[i] = j
		k = int(parent[mask*m+(j-1)])
		mask ^= 1 << (j - 1)
		j = k
	}

	return TourResult{Tour: tour, Length: round1e9(bestLength)}, nil
}

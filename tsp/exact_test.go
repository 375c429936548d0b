package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vbelous/tsplab/tsp"
)

// TestBruteForce_UnitSquare: the optimal tour of the unit square is its
// perimeter, length 4.
func TestBruteForce_UnitSquare(t *testing.T) {
	res, err := tsp.BruteForce(unitSquareDist())
	require.NoError(t, err)

	mustBePermutation(t, res.Tour, 4)
	require.InDelta(t, 4.0, res.Length, lenTol)
	require.Equal(t, 0, res.Tour[0], "vertex 0 is the fixed origin")
}

// TestHeldKarp_UnitSquare mirrors the brute-force fixture.
func TestHeldKarp_UnitSquare(t *testing.T) {
	res, err := tsp.HeldKarp(unitSquareDist())
	require.NoError(t, err)

	mustBePermutation(t, res.Tour, 4)
	require.InDelta(t, 4.0, res.Length, lenTol)
	require.Equal(t, 0, res.Tour[0])
}

// TestExact_BruteForceAgreesWithHeldKarp: both exact solvers are
// globally optimal, so their costs must match on every instance small
// enough for the factorial search.
func TestExact_BruteForceAgreesWithHeldKarp(t *testing.T) {
	for _, n := range []int{4, 5, 6, 7, 8, 9, 10} {
		_, dist := generatedInstance(t, n)

		bf, err := tsp.BruteForce(dist)
		require.NoError(t, err, "n=%d", n)
		hk, err := tsp.HeldKarp(dist)
		require.NoError(t, err, "n=%d", n)

		require.InDelta(t, bf.Length, hk.Length, lenTol, "n=%d", n)

		// Reported lengths must match their tours.
		require.InDelta(t, bf.Length, tsp.TourLength(bf.Tour, dist), lenTol)
		require.InDelta(t, hk.Length, tsp.TourLength(hk.Tour, dist), lenTol)
		mustBePermutation(t, bf.Tour, n)
		mustBePermutation(t, hk.Tour, n)
	}
}

// TestHeldKarp_Circle12: on a regular polygon the optimal tour is the
// boundary; Held-Karp must find it at a size brute force cannot touch.
func TestHeldKarp_Circle12(t *testing.T) {
	const n = 12
	dist := circleDist(n)

	res, err := tsp.HeldKarp(dist)
	require.NoError(t, err)
	mustBePermutation(t, res.Tour, n)

	boundary := make([]int, n)
	for i := range boundary {
		boundary[i] = i
	}
	require.InDelta(t, tsp.TourLength(boundary, dist), res.Length, lenTol)
}

// TestFindOptimal_Routing checks the dispatcher's size thresholds.
func TestFindOptimal_Routing(t *testing.T) {
	// Small: routed to brute force territory.
	res, err := tsp.FindOptimal(unitSquareDist())
	require.NoError(t, err)
	require.InDelta(t, 4.0, res.Length, lenTol)

	// Medium: brute force would take hours; Held-Karp handles it.
	_, dist := generatedInstance(t, 12)
	res, err = tsp.FindOptimal(dist)
	require.NoError(t, err)
	mustBePermutation(t, res.Tour, 12)
}

// TestFindOptimal_InfeasibleCeiling: n beyond MaxExactVertices must be
// refused with the sentinel, never attempted.
func TestFindOptimal_InfeasibleCeiling(t *testing.T) {
	_, dist := generatedInstance(t, 25)

	_, err := tsp.FindOptimal(dist)
	require.ErrorIs(t, err, tsp.ErrExactInfeasible)
}

// TestExact_BadInput covers the shared matrix validation surface.
func TestExact_BadInput(t *testing.T) {
	// Empty matrix.
	_, err := tsp.BruteForce(nil)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	// Ragged matrix.
	_, err = tsp.HeldKarp([][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, tsp.ErrNonSquare)

	// Non-zero diagonal.
	_, err = tsp.BruteForce([][]float64{{1, 1}, {1, 0}})
	require.ErrorIs(t, err, tsp.ErrNonZeroDiagonal)

	// Negative weight.
	_, err = tsp.BruteForce([][]float64{{0, -1}, {-1, 0}})
	require.ErrorIs(t, err, tsp.ErrNegativeWeight)

	// Asymmetric matrix.
	_, err = tsp.FindOptimal([][]float64{
		{0, 1, 2},
		{2, 0, 1},
		{2, 1, 0},
	})
	require.ErrorIs(t, err, tsp.ErrAsymmetry)
}

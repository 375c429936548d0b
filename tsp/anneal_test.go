package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vbelous/tsplab/tsp"
)

// saOpts returns annealing options pinned to the deterministic seed so
// every run of a test draws the same random stream.
func saOpts() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Seed = seedDet

	return opts
}

// TestSimulatedAnnealing_NeverWorseThanInitial: the best-seen tour is
// seeded with the initial tour, so the result cannot be longer.
func TestSimulatedAnnealing_NeverWorseThanInitial(t *testing.T) {
	for _, n := range []int{5, 10, 30} {
		_, dist := generatedInstance(t, n)

		initial := make([]int, n)
		for i := range initial {
			initial[i] = i
		}
		before := tsp.TourLength(initial, dist)

		tour, err := tsp.SimulatedAnnealing(dist, initial, saOpts())
		require.NoError(t, err, "n=%d", n)
		mustBePermutation(t, tour, n)
		require.LessOrEqual(t, tsp.TourLength(tour, dist), before+lenTol, "n=%d", n)
	}
}

// TestSimulatedAnnealing_Deterministic: a fixed seed fixes the whole
// random walk, so repeated runs agree exactly.
func TestSimulatedAnnealing_Deterministic(t *testing.T) {
	_, dist := generatedInstance(t, 12)
	initial, err := tsp.NearestNeighbor(dist, 0)
	require.NoError(t, err)

	first, err := tsp.SimulatedAnnealing(dist, initial, saOpts())
	require.NoError(t, err)
	for run := 0; run < 3; run++ {
		again, err := tsp.SimulatedAnnealing(dist, initial, saOpts())
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

// TestSimulatedAnnealing_ZeroSeedIsFixedStream: seed 0 selects the
// default stream rather than time-based randomness, so it is just as
// reproducible as any explicit seed.
func TestSimulatedAnnealing_ZeroSeedIsFixedStream(t *testing.T) {
	_, dist := generatedInstance(t, 10)
	initial, err := tsp.NearestNeighbor(dist, 0)
	require.NoError(t, err)

	opts := tsp.DefaultOptions()
	first, err := tsp.SimulatedAnnealing(dist, initial, opts)
	require.NoError(t, err)
	again, err := tsp.SimulatedAnnealing(dist, initial, opts)
	require.NoError(t, err)
	require.Equal(t, first, again)
}

// TestSimulatedAnnealing_NeverBeatsOptimum: on exactly solvable sizes
// the annealer cannot report a tour shorter than the optimum.
func TestSimulatedAnnealing_NeverBeatsOptimum(t *testing.T) {
	_, dist := generatedInstance(t, 8)

	opt, err := tsp.FindOptimal(dist)
	require.NoError(t, err)

	initial := make([]int, 8)
	for i := range initial {
		initial[i] = i
	}
	tour, err := tsp.SimulatedAnnealing(dist, initial, saOpts())
	require.NoError(t, err)
	require.GreaterOrEqual(t, tsp.TourLength(tour, dist), opt.Length-lenTol)
}

// TestSimulatedAnnealing_TinyTours: fewer than 3 vertices leave no
// reversal move; the initial tour comes back as a copy.
func TestSimulatedAnnealing_TinyTours(t *testing.T) {
	dist := [][]float64{{0, 2}, {2, 0}}

	tour, err := tsp.SimulatedAnnealing(dist, []int{1, 0}, saOpts())
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, tour)
}

// TestSimulatedAnnealing_InputNotMutated: reversal happens on a working
// copy only.
func TestSimulatedAnnealing_InputNotMutated(t *testing.T) {
	_, dist := generatedInstance(t, 9)
	initial := []int{0, 4, 2, 7, 1, 8, 3, 6, 5}
	keep := tsp.CopyTour(initial)

	_, err := tsp.SimulatedAnnealing(dist, initial, saOpts())
	require.NoError(t, err)
	require.Equal(t, keep, initial)
}

// TestSimulatedAnnealing_BadInput mirrors the shared validation surface.
func TestSimulatedAnnealing_BadInput(t *testing.T) {
	_, dist := generatedInstance(t, 5)

	_, err := tsp.SimulatedAnnealing(dist, []int{0, 1, 2}, saOpts())
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.SimulatedAnnealing(nil, nil, saOpts())
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

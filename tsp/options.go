package tsp

// Default knobs shared by the solvers. Starting points, not tuned
// per-instance values.
const (
	// DefaultEps is the minimum improvement a local-search move must
	// deliver to be accepted; guards against FP-noise oscillation.
	DefaultEps = 1e-12

	// DefaultTwoOptMaxIters caps restarted 2-opt sweeps. 0 means
	// "until local optimum".
	DefaultTwoOptMaxIters = 100

	// DefaultSAIterations is the simulated-annealing iteration budget.
	DefaultSAIterations = 5000

	// DefaultSAInitialTemp is the starting Metropolis temperature.
	DefaultSAInitialTemp = 1.0

	// DefaultSACoolingRate is the geometric decay applied each iteration.
	DefaultSACoolingRate = 0.9995

	// DefaultGAPopulation is the genetic-algorithm population size.
	DefaultGAPopulation = 50

	// DefaultGAGenerations is the number of generations evolved.
	DefaultGAGenerations = 100

	// DefaultGAMutationRate is the per-child swap-mutation probability.
	DefaultGAMutationRate = 0.1

	// DefaultSonarGridSize yields 4×gridSize angular buckets for the
	// sonar sweep heuristic.
	DefaultSonarGridSize = 40
)

// Options carries the configuration shared by the stochastic and
// iterative solvers. Zero-value fields are replaced by the defaults
// above where noted on the consuming solver.
type Options struct {
	// StartVertex is the tour origin for NearestNeighbor.
	StartVertex int

	// Eps is the acceptance tolerance for local-search improvements.
	// Negative values are rejected.
	Eps float64

	// TwoOptMaxIters caps restarted 2-opt sweeps; 0 means unlimited.
	TwoOptMaxIters int

	// Seed drives every random draw. Seed 0 selects a fixed default
	// stream; there is no time-based randomness anywhere.
	Seed int64

	// SAIterations, SAInitialTemp, SACoolingRate configure simulated
	// annealing. Iterations <= 0 falls back to DefaultSAIterations.
	SAIterations  int
	SAInitialTemp float64
	SACoolingRate float64

	// GAPopulation, GAGenerations, GAMutationRate configure the genetic
	// algorithm. Non-positive population/generations fall back to the
	// defaults.
	GAPopulation   int
	GAGenerations  int
	GAMutationRate float64

	// SonarGridSize controls the angular resolution of SonarVisit.
	SonarGridSize int
}

// DefaultOptions returns the canonical configuration used across tests
// and the benchmark harness.
func DefaultOptions() Options {
	return Options{
		StartVertex:    0,
		Eps:            DefaultEps,
		TwoOptMaxIters: DefaultTwoOptMaxIters,
		Seed:           0,
		SAIterations:   DefaultSAIterations,
		SAInitialTemp:  DefaultSAInitialTemp,
		SACoolingRate:  DefaultSACoolingRate,
		GAPopulation:   DefaultGAPopulation,
		GAGenerations:  DefaultGAGenerations,
		GAMutationRate: DefaultGAMutationRate,
		SonarGridSize:  DefaultSonarGridSize,
	}
}

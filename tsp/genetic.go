// Package tsp - genetic algorithm with permutation-preserving crossover.
package tsp

import "math/rand"

// Genetic evolves a fixed-size population of random tours and returns
// the best tour found in the final generation.
//
// Per generation:
//   - Fitness: 1 / TourLength for every individual.
//   - Elitism: the single best individual is copied unchanged into the
//     next generation.
//   - Selection: roulette wheel - a cumulative draw proportional to
//     fitness picks each parent.
//   - Crossover: order crossover (OX) - a contiguous random segment of
//     parent 1 is copied into the child at the same positions, then the
//     remaining slots are filled with the missing cities in parent 2's
//     relative order. The child is always a valid permutation.
//   - Mutation: with probability GAMutationRate, swap two random
//     positions of the child.
//
// The returned tour is the true minimum of the final population, not the
// carried-forward elite: crossover or mutation in the last generation
// may have produced something better than the elite line.
//
// Population is replaced wholesale each generation; parents and children
// never alias (each child is built into fresh storage).
//
// Configuration comes from opts: GAPopulation, GAGenerations,
// GAMutationRate and Seed.
//
// Complexity: O(population · generations · n) time, O(population · n)
// space.
func Genetic(dist [][]float64, opts Options) ([]int, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		// A single city has zero length; 1/length fitness is undefined.
		return []int{0}, nil
	}

	populationSize := opts.GAPopulation
	if populationSize <= 0 {
		populationSize = DefaultGAPopulation
	}
	generations := opts.GAGenerations
	if generations <= 0 {
		generations = DefaultGAGenerations
	}
	mutationRate := opts.GAMutationRate
	if mutationRate < 0 {
		mutationRate = 0
	}

	rng := rngFromSeed(opts.Seed)

	// Initial population: independent random permutations.
	population := make([][]int, populationSize)
	var p int
	for p = 0; p < populationSize; p++ {
		population[p] = permRange(n, rng)
	}

	fitness := make([]float64, populationSize)

	var (
		gen          int
		totalFitness float64
		bestIdx      int
		child        []int
	)
	for gen = 0; gen < generations; gen++ {
		// Fitness pass: shorter tours score higher.
		totalFitness = 0
		bestIdx = 0
		for p = 0; p < populationSize; p++ {
			fitness[p] = 1 / TourLength(population[p], dist)
			totalFitness += fitness[p]
			if fitness[p] > fitness[bestIdx] {
				bestIdx = p
			}
		}

		next := make([][]int, 0, populationSize)

		// Elitism: the best individual survives unchanged.
		next = append(next, CopyTour(population[bestIdx]))

		// Fill the remainder by selection, crossover, mutation.
		for len(next) < populationSize {
			parent1 := rouletteSelect(population, fitness, totalFitness, rng)
			parent2 := rouletteSelect(population, fitness, totalFitness, rng)
			child = orderCrossover(parent1, parent2, rng)
			if rng.Float64() < mutationRate {
				swapMutate(child, rng)
			}
			next = append(next, child)
		}

		population = next
	}

	// Scan the final population for the true minimum.
	best := population[0]
	bestLength := TourLength(best, dist)
	var length float64
	for p = 1; p < populationSize; p++ {
		length = TourLength(population[p], dist)
		if length < bestLength {
			best = population[p]
			bestLength = length
		}
	}

	return CopyTour(best), nil
}

// rouletteSelect draws one parent with probability proportional to its
// fitness. The final individual backstops FP remainder so the draw
// always lands.
//
// Complexity: O(population).
func rouletteSelect(population [][]int, fitness []float64, totalFitness float64, rng *rand.Rand) []int {
	r := rng.Float64() * totalFitness

	var i int
	for i = 0; i < len(population); i++ {
		r -= fitness[i]
		if r <= 0 {
			return population[i]
		}
	}

	return population[len(population)-1]
}

// orderCrossover builds a child from a contiguous segment of parent1
// placed at the same positions, with the remaining slots filled in
// parent2's relative order starting just past the segment. Both parents
// are read-only; the child is fresh storage.
//
// Complexity: O(n) time, O(n) space.
func orderCrossover(parent1, parent2 []int, rng *rand.Rand) []int {
	n := len(parent1)
	start := rng.Intn(n)
	end := start + rng.Intn(n-start) // end < n, segment is [start..end]

	child := make([]int, n)
	used := make([]bool, n)

	var i int
	for i = range child {
		child[i] = -1
	}
	for i = start; i <= end; i++ {
		child[i] = parent1[i]
		used[parent1[i]] = true
	}

	// Walk parent2 from just past the segment, wrapping, and drop its
	// cities into the open slots in encounter order.
	var (
		idx  = (end + 1) % n
		city int
	)
	for i = 0; i < n; i++ {
		city = parent2[(end+1+i)%n]
		if used[city] {
			continue
		}
		child[idx] = city
		used[city] = true
		idx = (idx + 1) % n
	}

	return child
}

// swapMutate exchanges two random positions in place.
//
// Complexity: O(1).
func swapMutate(tour []int, rng *rand.Rand) {
	n := len(tour)
	i := rng.Intn(n)
	j := rng.Intn(n)
	tour[i], tour[j] = tour[j], tour[i]
}

package main

import (
	"github.com/vbelous/tsplab/geom"
	"github.com/vbelous/tsplab/tsp"
)

// instance bundles one generated problem with the solver options every
// variant shares. The matrix is read-only, so variants may run on it
// concurrently.
type instance struct {
	points []geom.Point
	dist   [][]float64
	opts   tsp.Options
}

// algorithm is one named variant in the comparison: a constructor,
// optionally chained with an improver.
type algorithm struct {
	name  string
	solve func(inst instance) ([]int, error)
}

// algorithms returns every variant in a fixed display order.
// Construction-only variants come first, then the improved chains, then
// the metaheuristics.
func algorithms() []algorithm {
	return []algorithm{
		{name: "nearest", solve: func(in instance) ([]int, error) {
			return tsp.NearestNeighbor(in.dist, in.opts.StartVertex)
		}},
		{name: "nearest+2opt", solve: func(in instance) ([]int, error) {
			tour, err := tsp.NearestNeighbor(in.dist, in.opts.StartVertex)
			if err != nil {
				return nil, err
			}
			return tsp.TwoOpt(in.dist, tour, in.opts.TwoOptMaxIters, in.opts)
		}},
		{name: "greedy", solve: func(in instance) ([]int, error) {
			return tsp.GreedyEdge(in.dist)
		}},
		{name: "greedy+2opt", solve: func(in instance) ([]int, error) {
			tour, err := tsp.GreedyEdge(in.dist)
			if err != nil {
				return nil, err
			}
			return tsp.TwoOpt(in.dist, tour, in.opts.TwoOptMaxIters, in.opts)
		}},
		{name: "angular", solve: func(in instance) ([]int, error) {
			return tsp.AngularSort(in.points), nil
		}},
		{name: "angular+zigzag", solve: func(in instance) ([]int, error) {
			return tsp.Zigzag(tsp.AngularSort(in.points), in.points), nil
		}},
		{name: "sonar", solve: func(in instance) ([]int, error) {
			return tsp.SonarVisit(in.points, in.opts.SonarGridSize), nil
		}},
		{name: "sonar+2opt", solve: func(in instance) ([]int, error) {
			tour := tsp.SonarVisit(in.points, in.opts.SonarGridSize)
			return tsp.TwoOpt(in.dist, tour, in.opts.TwoOptMaxIters, in.opts)
		}},
		{name: "anneal", solve: func(in instance) ([]int, error) {
			initial, err := tsp.NearestNeighbor(in.dist, in.opts.StartVertex)
			if err != nil {
				return nil, err
			}
			return tsp.SimulatedAnnealing(in.dist, initial, in.opts)
		}},
		{name: "genetic", solve: func(in instance) ([]int, error) {
			return tsp.Genetic(in.dist, in.opts)
		}},
	}
}

// algorithmNames lists the valid names for config validation.
func algorithmNames() []string {
	algs := algorithms()
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.name
	}

	return names
}

// solverOptions maps the config tuning block onto engine options,
// keeping the engine defaults wherever the YAML left a knob unset.
func solverOptions(cfg Config) tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Seed = cfg.SolverSeed

	t := cfg.Tuning
	if t.TwoOptMaxIters > 0 {
		opts.TwoOptMaxIters = t.TwoOptMaxIters
	}
	if t.SAIterations > 0 {
		opts.SAIterations = t.SAIterations
	}
	if t.SAInitialTemp > 0 {
		opts.SAInitialTemp = t.SAInitialTemp
	}
	if t.SACoolingRate > 0 {
		opts.SACoolingRate = t.SACoolingRate
	}
	if t.GAPopulation > 0 {
		opts.GAPopulation = t.GAPopulation
	}
	if t.GAGenerations > 0 {
		opts.GAGenerations = t.GAGenerations
	}
	if t.GAMutationRate > 0 {
		opts.GAMutationRate = t.GAMutationRate
	}
	if t.SonarGridSize > 0 {
		opts.SonarGridSize = t.SonarGridSize
	}

	return opts
}

package main

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config drives a benchmark run: which instances to generate and which
// algorithm variants to race on them. Zero values fall back to the
// defaults below, so a partial YAML file is fine.
type Config struct {
	// Sizes lists the instance sizes (city counts) to benchmark.
	Sizes []int `yaml:"sizes"`

	// GridSize is the snapping grid of the point generator.
	GridSize int `yaml:"grid_size"`

	// PointSeed seeds the instance generator.
	PointSeed uint64 `yaml:"point_seed"`

	// SolverSeed seeds the stochastic solvers (annealing, genetic).
	SolverSeed int64 `yaml:"solver_seed"`

	// Algorithms selects the variants to run; empty means all.
	Algorithms []string `yaml:"algorithms"`

	// TimeoutSeconds bounds the whole run; 0 means no timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	Tuning Tuning `yaml:"tuning"`
}

// Tuning carries the per-algorithm knobs passed through to the engine.
type Tuning struct {
	TwoOptMaxIters int     `yaml:"two_opt_max_iters"`
	SAIterations   int     `yaml:"sa_iterations"`
	SAInitialTemp  float64 `yaml:"sa_initial_temp"`
	SACoolingRate  float64 `yaml:"sa_cooling_rate"`
	GAPopulation   int     `yaml:"ga_population"`
	GAGenerations  int     `yaml:"ga_generations"`
	GAMutationRate float64 `yaml:"ga_mutation_rate"`
	SonarGridSize  int     `yaml:"sonar_grid_size"`
}

// defaultConfig mirrors the engine defaults plus a representative size
// ladder: two exactly solvable sizes and two heuristic-only ones.
func defaultConfig() Config {
	return Config{
		Sizes:     []int{10, 20, 50, 100},
		GridSize:  40,
		PointSeed: 12345,
	}
}

// loadConfig reads path and overlays it on the defaults. A missing
// file is an error; an empty file yields the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err = cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("sizes must not be empty")
	}
	for _, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("size %d out of range", n)
		}
	}
	if c.GridSize < 1 {
		return fmt.Errorf("grid_size %d out of range", c.GridSize)
	}
	for _, name := range c.Algorithms {
		if !slices.Contains(algorithmNames(), name) {
			return fmt.Errorf("unknown algorithm %q (known: %v)", name, algorithmNames())
		}
	}

	return nil
}

// wantAlgorithm reports whether the variant is selected by the config.
func (c Config) wantAlgorithm(name string) bool {
	return len(c.Algorithms) == 0 || slices.Contains(c.Algorithms, name)
}

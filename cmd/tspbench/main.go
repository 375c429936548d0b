// Command tspbench races the solver variants against each other on
// generated instances and prints a per-size comparison table.
//
// Usage:
//
//	tspbench [-config bench.yaml] [-sizes 10,50,200] [-seed 42]
//
// Flags override the config file. Each variant reports its tour length,
// wall-clock time and efficiency against the reference: the exact
// optimum where the instance is small enough, the MST lower bound
// otherwise.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vbelous/tsplab/geom"
	"github.com/vbelous/tsplab/tsp"
)

// result is one variant's outcome on one instance.
type result struct {
	name    string
	length  float64
	eff     float64
	elapsed time.Duration
	err     error
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		sizesFlag  = flag.String("sizes", "", "comma-separated instance sizes, overrides config")
		seedFlag   = flag.Int64("seed", -1, "solver seed, overrides config (-1 keeps config value)")
		timeout    = flag.Int("timeout", -1, "run timeout in seconds, overrides config (-1 keeps config value)")
	)
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			log.Fatalf("tspbench: %v", err)
		}
	}
	if *sizesFlag != "" {
		sizes, err := parseSizes(*sizesFlag)
		if err != nil {
			log.Fatalf("tspbench: -sizes: %v", err)
		}
		cfg.Sizes = sizes
	}
	if *seedFlag >= 0 {
		cfg.SolverSeed = *seedFlag
	}
	if *timeout >= 0 {
		cfg.TimeoutSeconds = *timeout
	}

	ctx := context.Background()
	if cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	for _, n := range cfg.Sizes {
		if err := runSize(ctx, os.Stdout, cfg, n); err != nil {
			log.Fatalf("tspbench: n=%d: %v", n, err)
		}
	}
}

// runSize generates one instance, fans the selected variants out in
// parallel, and writes the comparison table for it.
func runSize(ctx context.Context, out *os.File, cfg Config, n int) error {
	points := geom.GenerateNormalizedPoints(n, cfg.GridSize, cfg.PointSeed)
	if len(points) < n {
		return fmt.Errorf("grid %d holds only %d points", cfg.GridSize, len(points))
	}
	in := instance{
		points: points,
		dist:   geom.NewDistanceMatrix(points),
		opts:   solverOptions(cfg),
	}

	reference, refLabel, err := referenceLength(in.dist, n)
	if err != nil {
		return err
	}

	var selected []algorithm
	for _, alg := range algorithms() {
		if cfg.wantAlgorithm(alg.name) {
			selected = append(selected, alg)
		}
	}

	// Fan out across variants; the matrix is shared read-only. The
	// engine stays single-threaded, parallelism lives here only.
	results := make([]result, len(selected))
	g, ctx := errgroup.WithContext(ctx)
	for i, alg := range selected {
		i, alg := i, alg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			started := time.Now()
			tour, err := alg.solve(in)
			r := result{name: alg.name, elapsed: time.Since(started), err: err}
			if err == nil {
				r.length = tsp.TourLength(tour, in.dist)
				r.eff = tsp.Efficiency(r.length, reference)
			}
			results[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Best tour first; failures sink to the bottom.
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].err == nil) != (results[j].err == nil) {
			return results[i].err == nil
		}
		return results[i].length < results[j].length
	})

	fmt.Fprintf(out, "\nn=%d  %s=%.6f\n", n, refLabel, reference)
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tLENGTH\tEFF%\tTIME")
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t%s\n", r.name, r.err, r.elapsed.Round(time.Microsecond))
			continue
		}
		fmt.Fprintf(w, "%s\t%.6f\t%.2f\t%s\n", r.name, r.length, r.eff, r.elapsed.Round(time.Microsecond))
	}

	return w.Flush()
}

// referenceLength picks the scoring baseline: the exact optimum while
// feasible, the MST lower bound beyond it.
func referenceLength(dist [][]float64, n int) (float64, string, error) {
	if n <= tsp.MaxExactVertices {
		res, err := tsp.FindOptimal(dist)
		if err != nil {
			return 0, "", err
		}
		return res.Length, "optimal", nil
	}

	bound, err := tsp.MSTLowerBound(dist)
	if err != nil {
		return 0, "", err
	}
	return bound, "mst-bound", nil
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad size %q", p)
		}
		sizes = append(sizes, n)
	}

	return sizes, nil
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := writeTempConfig(t, `
sizes: [5, 15]
solver_seed: 99
algorithms: [nearest, genetic]
tuning:
  ga_population: 80
  sa_cooling_rate: 0.999
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, []int{5, 15}, cfg.Sizes)
	require.Equal(t, int64(99), cfg.SolverSeed)
	require.Equal(t, 80, cfg.Tuning.GAPopulation)
	require.InDelta(t, 0.999, cfg.Tuning.SACoolingRate, 1e-12)

	// Untouched keys keep their defaults.
	require.Equal(t, defaultConfig().GridSize, cfg.GridSize)
	require.Equal(t, defaultConfig().PointSeed, cfg.PointSeed)
}

func TestLoadConfig_EmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := loadConfig(writeTempConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_Rejections(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = loadConfig(writeTempConfig(t, "sizes: []\n"))
	require.Error(t, err)

	_, err = loadConfig(writeTempConfig(t, "sizes: [0]\n"))
	require.Error(t, err)

	_, err = loadConfig(writeTempConfig(t, "algorithms: [warp-drive]\n"))
	require.ErrorContains(t, err, "unknown algorithm")

	_, err = loadConfig(writeTempConfig(t, "grid_size: -3\n"))
	require.Error(t, err)
}

func TestWantAlgorithm(t *testing.T) {
	all := Config{}
	require.True(t, all.wantAlgorithm("nearest"))
	require.True(t, all.wantAlgorithm("genetic"))

	some := Config{Algorithms: []string{"greedy"}}
	require.True(t, some.wantAlgorithm("greedy"))
	require.False(t, some.wantAlgorithm("nearest"))
}

func TestSolverOptions_Mapping(t *testing.T) {
	cfg := defaultConfig()
	cfg.SolverSeed = 7
	cfg.Tuning.SAIterations = 1234
	cfg.Tuning.GAMutationRate = 0.25

	opts := solverOptions(cfg)
	require.Equal(t, int64(7), opts.Seed)
	require.Equal(t, 1234, opts.SAIterations)
	require.InDelta(t, 0.25, opts.GAMutationRate, 1e-12)

	// Unset knobs stay at the engine defaults.
	def := solverOptions(defaultConfig())
	require.Equal(t, def.GAPopulation, opts.GAPopulation)
	require.Equal(t, def.SACoolingRate, opts.SACoolingRate)
}

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes("10, 50,200")
	require.NoError(t, err)
	require.Equal(t, []int{10, 50, 200}, sizes)

	_, err = parseSizes("10,x")
	require.Error(t, err)
	_, err = parseSizes("0")
	require.Error(t, err)
}

// Package tsp_test provides shared fixtures and helpers for the solver
// tests. Helpers stay minimal; anything algorithm-specific lives in the
// focused test files.
package tsp_test

import (
	"math"
	"testing"

	"github.com/vbelous/tsplab/geom"
	"github.com/vbelous/tsplab/tsp"
)

const (
	// lenTol is the absolute tolerance for tour-length comparisons.
	lenTol = 1e-9

	// seedDet is the deterministic seed shared by stochastic tests.
	seedDet = int64(42)
)

// unitSquarePoints is the canonical 4-point fixture: the unit square
// with perimeter (and optimal tour length) 4. Angles are measured from
// the square's center (0.5, 0.5).
func unitSquarePoints() []geom.Point {
	return []geom.Point{
		{ID: 0, X: 0, Y: 0, Angle: normAngle(math.Atan2(-0.5, -0.5))},
		{ID: 1, X: 1, Y: 0, Angle: normAngle(math.Atan2(-0.5, 0.5))},
		{ID: 2, X: 1, Y: 1, Angle: normAngle(math.Atan2(0.5, 0.5))},
		{ID: 3, X: 0, Y: 1, Angle: normAngle(math.Atan2(0.5, -0.5))},
	}
}

// unitSquareDist is the distance matrix of unitSquarePoints.
func unitSquareDist() [][]float64 {
	return geom.NewDistanceMatrix(unitSquarePoints())
}

// normAngle maps a signed angle into [0, 2π).
func normAngle(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}

	return a
}

// circleDist builds the distance matrix of n points evenly spaced on the
// unit circle; the optimal tour is the polygon boundary 0,1,…,n-1.
func circleDist(n int) [][]float64 {
	points := make([]geom.Point, n)
	var (
		i     int
		theta float64
	)
	for i = 0; i < n; i++ {
		theta = 2 * math.Pi * float64(i) / float64(n)
		points[i] = geom.Point{ID: i, X: math.Cos(theta), Y: math.Sin(theta), Angle: theta}
	}

	return geom.NewDistanceMatrix(points)
}

// generatedInstance builds a reproducible instance of n points plus its
// matrix, using the deterministic generator.
func generatedInstance(t *testing.T, n int) ([]geom.Point, [][]float64) {
	t.Helper()
	points := geom.GenerateNormalizedPoints(n, 20, 12345)
	if len(points) != n {
		t.Fatalf("generator returned %d points, want %d", len(points), n)
	}

	return points, geom.NewDistanceMatrix(points)
}

// mustBePermutation fails the test unless tour is a permutation of
// {0..n-1}: correct length, no duplicates, no omissions.
func mustBePermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	if err := tsp.ValidatePermutation(tour, n); err != nil {
		t.Fatalf("tour %v is not a permutation of 0..%d: %v", tour, n-1, err)
	}
}

package tsp

import (
	"math"
	"sort"

	"github.com/vbelous/tsplab/geom"
)

// sonarCenter is the sweep origin; instances are generated in the
// normalized unit square around (0.5, 0.5).
const sonarCenter = 0.5

// SonarVisit builds a tour with a 360° sweep: the full 2π circle is
// split into 4×gridSize fixed-width angular buckets, each point lands in
// bucket floor(angle/bucketWidth) (angles normalized to [0, 2π)), and
// within a bucket points are ordered by distance from the center,
// ascending. The tour concatenates buckets in increasing angular order.
//
// gridSize <= 0 falls back to DefaultSonarGridSize. Because the bucket
// count is a configuration constant rather than a function of n, the
// per-bucket sorts run over O(n / buckets) points on average and the
// sweep behaves like O(n log k) for small average occupancy k.
//
// Complexity: O(n log k) time, O(n + buckets) space.
func SonarVisit(points []geom.Point, gridSize int) []int {
	if gridSize <= 0 {
		gridSize = DefaultSonarGridSize
	}

	angleSteps := 4 * gridSize
	angleStep := 2 * math.Pi / float64(angleSteps)

	// Stage 1: assign every point to its angular bucket.
	buckets := make([][]geom.Point, angleSteps)

	var (
		angle  float64
		bucket int
	)
	for _, p := range points {
		angle = p.Angle
		if angle < 0 {
			angle += 2 * math.Pi
		}
		bucket = int(angle / angleStep)
		if bucket >= angleSteps {
			// angle == 2π after normalization rounds onto the boundary.
			bucket = angleSteps - 1
		}
		buckets[bucket] = append(buckets[bucket], p)
	}

	// Stage 2: order each bucket radially, nearest to the center first.
	var radial = func(p geom.Point) float64 {
		return geom.DistanceCoords(p.X, p.Y, sonarCenter, sonarCenter)
	}
	for _, b := range buckets {
		if len(b) < 2 {
			continue
		}
		sort.SliceStable(b, func(i, j int) bool {
			return radial(b[i]) < radial(b[j])
		})
	}

	// Stage 3: concatenate buckets in sweep order.
	tour := make([]int, 0, len(points))
	for _, b := range buckets {
		for _, p := range b {
			tour = append(tour, p.ID)
		}
	}

	return tour
}

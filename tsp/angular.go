package tsp

import (
	"sort"

	"github.com/vbelous/tsplab/geom"
)

// AngularSort builds a tour by sorting points on their precomputed
// angle from the layout center, ascending, and connecting them in that
// order. It relies on Point.Angle being populated by the generator.
//
// This is the only constructor with no distance-matrix dependency at
// all; quality is whatever the radial geometry gives, but the cost is a
// single sort.
//
// Complexity: O(n log n) time, O(n) space.
func AngularSort(points []geom.Point) []int {
	sorted := make([]geom.Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Angle < sorted[j].Angle
	})

	tour := make([]int, len(sorted))
	var i int
	for i = range sorted {
		tour[i] = sorted[i].ID
	}

	return tour
}

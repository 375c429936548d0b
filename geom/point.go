package geom

import "math"

// Point is a planar site with a stable identity.
//
// ID is a dense small integer (0..n-1) that doubles as the row/column
// index into the distance matrix. Angle is the angle (radians, in
// [0, 2π)) from the layout center, populated by the generator; only the
// angular heuristics read it.
type Point struct {
	ID    int
	X, Y  float64
	Angle float64
}

// Distance returns the Euclidean distance between two points.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// DistanceCoords returns the Euclidean distance between two raw
// coordinate pairs, without requiring Point values.
//
// Complexity: O(1).
func DistanceCoords(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

package geom

// NewDistanceMatrix builds a dense symmetric distance matrix over the
// given points, indexed by Point.ID. The diagonal is exactly zero.
//
// Contract:
//   - IDs must be dense in [0..n-1]; the matrix is indexed by ID, not by
//     slice position.
//
// Complexity: O(n²) time and space.
func NewDistanceMatrix(points []Point) [][]float64 {
	n := len(points)
	dist := make([][]float64, n)

	var i int
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
	}

	// Fill the upper triangle once and mirror it; keeps the matrix
	// bit-exactly symmetric regardless of FP evaluation order.
	var (
		j int
		d float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(points[i], points[j])
			dist[points[i].ID][points[j].ID] = d
			dist[points[j].ID][points[i].ID] = d
		}
	}

	return dist
}

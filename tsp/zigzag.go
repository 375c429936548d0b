// Package tsp - zigzag crossing repair.
//
// Zigzag walks the tour once with a sliding 4-point window. At interior
// position i it compares the two "straight" edges (p1,p2)+(p3,p4)
// against the two "crossed" edges (p1,p3)+(p2,p4) for the window
// {i-1, i, i+1, i+2}; when crossing strictly improves, the middle pair
// is emitted swapped and the window advances by 3, otherwise the points
// are emitted in original order and the window advances by 1.
//
// The overlapping emission can produce repeated ids; those are filtered
// inline, keeping first occurrences in emission order, so the output may
// be shorter than the input. Callers must not assume the lengths match.
package tsp

import "github.com/vbelous/tsplab/geom"

// Zigzag repairs local edge crossings in a single O(n) pass.
//
// It is the one improver that consults geometry directly rather than
// the distance matrix: the swap test measures the four window points.
//
// Contract: points must be indexed by ID (points[k].ID == k), as
// produced by geom.GenerateNormalizedPoints; tour is a permutation over
// those ids. The input slice is not mutated.
//
// Complexity: O(n) time, O(n) space.
func Zigzag(tour []int, points []geom.Point) []int {
	n := len(tour)
	if n == 0 {
		return nil
	}

	// Window test on tour positions; the caller-side guard keeps every
	// index in range, no wrap-around needed.
	shouldZigzag := func(i int) bool {
		p1 := points[tour[i-1]]
		p2 := points[tour[i]]
		p3 := points[tour[i+1]]
		p4 := points[tour[i+2]]

		straight := geom.Distance(p1, p2) + geom.Distance(p3, p4)
		crossed := geom.Distance(p1, p3) + geom.Distance(p2, p4)

		return crossed < straight
	}

	var (
		out  = make([]int, 0, n)
		seen = make([]bool, n)
		emit = func(id int) {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
		i = 1
	)
	for i < n {
		if n-i > 2 && shouldZigzag(i) {
			// Emit the window with the middle pair swapped, then jump
			// past it.
			emit(tour[i-1])
			emit(tour[i+1])
			emit(tour[i])
			emit(tour[i+2])
			i += 3
		} else {
			emit(tour[i-1])
			emit(tour[i])
			i++
		}
	}

	return out
}

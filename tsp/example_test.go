package tsp_test

import (
	"fmt"

	"github.com/vbelous/tsplab/geom"
	"github.com/vbelous/tsplab/tsp"
)

// squareMatrix is the unit-square fixture shared by the examples: four
// corners, optimal tour length 4.
func squareMatrix() [][]float64 {
	points := []geom.Point{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 1, Y: 0},
		{ID: 2, X: 1, Y: 1},
		{ID: 3, X: 0, Y: 1},
	}

	return geom.NewDistanceMatrix(points)
}

func ExampleFindOptimal() {
	res, err := tsp.FindOptimal(squareMatrix())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("optimal length: %.0f\n", res.Length)
	// Output:
	// optimal length: 4
}

func ExampleNearestNeighbor() {
	tour, err := tsp.NearestNeighbor(squareMatrix(), 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tour)
	// Output:
	// [0 1 2 3]
}

func ExampleTwoOpt() {
	dist := squareMatrix()

	// A deliberately crossed tour: both diagonals are in the cycle.
	crossed := []int{0, 2, 1, 3}
	tour, err := tsp.TwoOpt(dist, crossed, 100, tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tour)
	fmt.Printf("length: %.0f\n", tsp.TourLength(tour, dist))
	// Output:
	// [0 1 2 3]
	// length: 4
}

func ExampleEfficiency() {
	// A tour of length 5 against an optimum of 4 scores 80.
	fmt.Printf("%.0f\n", tsp.Efficiency(5, 4))
	// Output:
	// 80
}

func ExampleMSTLowerBound() {
	mst, err := tsp.MSTLowerBound(squareMatrix())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("lower bound: %.0f\n", mst)
	// Output:
	// lower bound: 3
}

// Package tsplab is a comparison lab for Travelling Salesman Problem
// solvers on small-to-medium planar instances.
//
// 🚀 What is tsplab?
//
//	A collection of independent TSP solvers sharing one tour and
//	distance-matrix representation, so their cost and solution quality
//	can be compared head-to-head:
//		• Exact: brute-force permutation search, Held–Karp bitmask DP
//		• Construction: nearest neighbor, greedy edge, angular sort, sonar sweep
//		• Local search: 2-opt, zigzag crossing repair
//		• Metaheuristics: simulated annealing, genetic algorithm
//		• Quality: MST lower bound (Prim), efficiency ratio
//
// ✨ Why tsplab?
//
//   - Deterministic – every stochastic component takes an explicit seed
//   - Strict sentinels – no panics on user input, errors.Is-friendly
//   - Pure functions – solvers borrow the matrix read-only; parallel
//     invocations across instances are safe
//
// Packages:
//
//	geom/         — points, Euclidean distances, seeded instance generation
//	tsp/          — the solvers and quality utilities
//	cmd/tspbench/ — benchmark harness comparing all solvers on one instance
//
// Quick ASCII example (unit square, optimal cost 4):
//
//	    3───2
//	    │   │
//	    0───1
//
//	go get github.com/vbelous/tsplab
package tsplab

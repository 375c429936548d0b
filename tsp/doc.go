// Package tsp provides Travelling Salesman Problem solvers over a shared
// tour and distance-matrix representation, built for head-to-head
// comparison of solution quality and cost.
//
// Solver families:
//
//   - Exact: BruteForce — O(n!) permutation search, practical to n≈10;
//     HeldKarp — O(n²·2ⁿ) bitmask dynamic programming, practical to n≈20;
//     FindOptimal routes between them and refuses larger instances with
//     ErrExactInfeasible.
//
//   - Construction: NearestNeighbor (O(n²)), GreedyEdge (O(n² log n),
//     union-find cycle guard), AngularSort (O(n log n)), SonarVisit
//     (angle-bucket sweep, bucket count fixed by configuration).
//
//   - Local search: TwoOpt (first-improvement edge exchange, never
//     worsens), Zigzag (single-pass 4-point crossing repair).
//
//   - Metaheuristics: SimulatedAnnealing (Metropolis acceptance,
//     geometric cooling), Genetic (order crossover, elitism, roulette
//     selection).
//
// Quality utilities: MSTLowerBound (Prim) and Efficiency, used by
// harnesses to score heuristic output against the optimum or the bound.
//
// Conventions:
//   - A tour is an open permutation of {0..n-1}; the closing edge from
//     the last vertex back to the first is implicit. TourLength includes it.
//   - Distance matrices are symmetric with a zero diagonal; exported
//     solvers fail fast on malformed matrices with sentinel errors.
//   - The matrix is borrowed read-only; concurrent solver invocations
//     over one matrix are safe. Each call is a pure function of its
//     inputs and the seed carried in Options.
package tsp

// Package geom provides the planar building blocks consumed by the tsp
// solvers: points with stable integer IDs, Euclidean distances, dense
// symmetric distance matrices, and deterministic instance generation.
//
// Design principles:
//   - Points are value types, immutable once generated.
//   - The distance matrix is built once and borrowed read-only by every
//     solver; nothing in this package mutates it afterwards.
//   - All randomness flows through an explicitly seeded generator, so a
//     (seed, parameters) pair always reproduces the same instance.
package geom

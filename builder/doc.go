// SPDX-License-Identifier: MIT
// Package: gROM/builder
//
// Package builder generates small, deterministic vascular networks with
// per-point data, for tests, examples and pipeline smoke runs.
//
// Every constructor returns a *Sample: a network.Network whose edge list is
// an out-tree rooted at point 0, a bifurcation-id array, and a
// fields.PointData populated with the arrays a real centerline mesh
// carries ("BifurcationId", "area", "pressure_<t>", "flow_<t>").
//
// Point numbering follows a depth-first walk of the tree, the same order
// centerline extraction produces, so junction regions are contiguous runs
// of the bifurcation-id sequence.
//
// Determinism:
//   - Geometry is fully determined by the parameters unless WithJitter is
//     set; jitter draws from the configured RNG (WithSeed / WithRand).
//
// Constructors:
//   - Line(n)                       straight path, no junctions
//   - Y(trunk, junction, a, b)      one junction splitting into two branches
//   - Tree(levels, segment, junc)   recursive binary tree of junctions
package builder

// SPDX-License-Identifier: MIT

// Package partition splits a vessel network into overlapping-at-the-root
// sub-networks that are small enough to train on.
//
// Overview:
//
//   - Roots picks point 0, then one random point on the branch after every
//     junction exit, then up to MaxStraight extra branch points.
//   - Split grows every root breadth-first along the directed edges. A
//     point that is itself a root is added as a leaf and not expanded, so
//     partitions overlap only at root points.
//   - Each partition is renumbered densely (local i is original
//     Sampling[i]) and carries its slice of the bifurcation ids and the
//     point data. Partitions with fewer than two edges are dropped.
//
// Randomness:
//
// More than one partition needs a random source: WithSeed for reproducible
// runs or WithRand to share one. WithContext lets a long traversal stop
// early on cancellation.
//
// Example:
//
//	parts, err := partition.Split(net, bif, data, 4, partition.WithSeed(1))
//	if err != nil {
//	    return err
//	}
//	for _, p := range parts {
//	    _ = p.Network // local numbering; p.Root is an original index
//	}
package partition

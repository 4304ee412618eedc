// SPDX-License-Identifier: MIT

// Package network defines the point/edge arena shared by every stage of
// vascular graph construction.
//
// A Network is an ordered point cloud plus a directed edge list whose
// endpoints are dense indices into the point cloud. Every stage of the
// pipeline (resampling, partitioning, assembly) consumes a Network and
// produces a fresh one: arrays are never shared across stage boundaries,
// so an index is only meaningful together with the Network it came from.
//
// Before feature synthesis the edge list is an out-tree rooted at point 0
// (the inlet). FindBoundaries recovers the inlet and the outlets (leaves)
// from the edge list alone:
//
//	0 ── 1 ── 2 ── 3        inlet   = [0]
//	          └─── 4        outlets = [3, 4]
//
// Complexity of the helpers in this package is linear in points + edges
// unless stated otherwise. Nothing here is safe for concurrent mutation;
// the pipeline gives each goroutine exclusive ownership of its networks.
package network

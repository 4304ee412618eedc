// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths over a
// network.Network, using the Euclidean length of each directed edge as its
// weight.
//
// Overview:
//
//   - Distances start at +Inf everywhere except the source (0).
//   - A min-heap always expands the closest unsettled point; ties are broken
//     by the lower point index, so results are fully deterministic.
//   - Only directed out-edges are relaxed. Callers that need undirected
//     reachability pass network.Network.Bidirected().
//
// Boundary and junction edge synthesis run this engine once per boundary
// point and once per junction inlet, so an Engine precomputes adjacency and
// edge lengths once and can be queried from many sources.
//
// Postcondition:
//
//   - If any point is still at +Inf when the heap drains, the call fails
//     with *UnreachableNodeError (errors.Is(err, ErrUnreachableNode)). The
//     resampler's caller treats this as a signal to retry with a less
//     aggressive keep fraction. WithAllowUnreachable disables the check.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per source.
//   - Space: O(V + E).
//
// Example:
//
//	dist, prev, err := dijkstra.ShortestPaths(net.Bidirected(), 0)
//	if errors.Is(err, dijkstra.ErrUnreachableNode) {
//	    // back off resampling
//	}
//	_ = prev[len(prev)-1] // predecessor of the last point, -1 for the source
//
// Thread safety:
//
//   - An Engine is read-only after construction and may be shared by
//     goroutines; each call allocates its own distance/predecessor arrays.
package dijkstra

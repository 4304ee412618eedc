// SPDX-License-Identifier: MIT

// Package features synthesizes the edge and point attributes of a vessel
// graph.
//
// Edge families:
//
//   - Spatial: every centerline edge in both directions (type 0).
//   - Boundary: one edge per point from its closest boundary point in graph
//     distance (type 1 from the inlet, type 2 from an outlet).
//   - Junction: from the point feeding a junction to every point leaving it,
//     mirrored (type 3).
//
// Point attributes are the four-class point type, the continuity mask and
// the junction masks. Distances are graph distances from package dijkstra,
// measured over the bidirected centerline.
package features

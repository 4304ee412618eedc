// SPDX-License-Identifier: MIT

package features

import "github.com/Chaztikov/gROM/network"

// Spatial returns the centerline edges followed by their reverses, with unit
// relative positions and Euclidean lengths. Zero-length edges get a zero
// relative position.
func Spatial(net *network.Network) EdgeSet {
	bi := net.Bidirected()
	var s EdgeSet
	for _, e := range bi.Edges {
		rel, length := net.Points[e.To].Sub(net.Points[e.From]).Unit()
		s.add(e, rel, length, EdgeSpatial)
	}
	return s
}

// PointTypes classifies every point: junction points are PointJunction,
// others PointBranch; the inlet and outlets override both.
func PointTypes(bif []int, ix network.Indices) []int {
	types := make([]int, len(bif))
	for i, id := range bif {
		switch {
		case ix.IsInlet(i):
			types[i] = PointInlet
		case ix.IsOutlet(i):
			types[i] = PointOutlet
		case id != NoJunction:
			types[i] = PointJunction
		default:
			types[i] = PointBranch
		}
	}
	return types
}

// ContinuityMask flags interior points whose order neighbours and
// themselves all lie outside junctions. The first and last points are
// never flagged.
func ContinuityMask(bif []int) []bool {
	mask := make([]bool, len(bif))
	for i := 1; i+1 < len(bif); i++ {
		mask[i] = bif[i-1] == NoJunction && bif[i] == NoJunction && bif[i+1] == NoJunction
	}
	return mask
}

// SPDX-License-Identifier: MIT

package features

import (
	"fmt"

	"github.com/Chaztikov/gROM/dijkstra"
	"github.com/Chaztikov/gROM/network"
)

// Boundary connects every point to its closest boundary point.
//
// One shortest-path search runs from each boundary point over the
// bidirected centerline. A point keeps only the edge from the boundary
// point at minimum graph distance, ties going to the lowest boundary point
// index; when that distance is below 1e-12 (the point is itself a boundary
// point) no edge is emitted. Edges run boundary → point and are ordered by
// boundary point in ix.Boundary() order, then by point index.
func Boundary(net *network.Network, ix network.Indices) (EdgeSet, error) {
	boundary := ix.Boundary()
	eng, err := dijkstra.NewEngine(net.Bidirected())
	if err != nil {
		return EdgeSet{}, fmt.Errorf("features: boundary edges: %w", err)
	}

	n := net.Len()
	dists := make([][]float64, len(boundary))
	for k, b := range boundary {
		d, _, err := eng.From(b)
		if err != nil {
			return EdgeSet{}, fmt.Errorf("features: boundary edges from %d: %w", b, err)
		}
		dists[k] = d
	}

	// closest[p] is the position in boundary of p's chosen source, or -1.
	closest := make([]int, n)
	for p := 0; p < n; p++ {
		best := -1
		for k, b := range boundary {
			if best < 0 || dists[k][p] < dists[best][p] ||
				(dists[k][p] == dists[best][p] && b < boundary[best]) {
				best = k
			}
		}
		if best >= 0 && dists[best][p] < minBoundaryDistance {
			best = -1
		}
		closest[p] = best
	}

	var s EdgeSet
	for k, b := range boundary {
		typ := EdgeOutletBoundary
		if ix.IsInlet(b) {
			typ = EdgeInletBoundary
		}
		for p := 0; p < n; p++ {
			if closest[p] != k {
				continue
			}
			rel, _ := net.Points[p].Sub(net.Points[b]).Unit()
			s.add(network.Edge{From: b, To: p}, rel, dists[k][p], typ)
		}
	}
	return s, nil
}

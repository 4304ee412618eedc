// SPDX-License-Identifier: MIT
// Package: gROM/builder
//
// impl_line.go: straight vessel without junctions.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewPoints).
//   - Points (i·spacing, 0, 0); edges (i-1) → i; every bifurcation id is -1.

package builder

import "github.com/Chaztikov/gROM/network"

const (
	methodLine    = "Line"
	minLinePoints = 2
)

// Line builds a straight n-point vessel.
func Line(n int, opts ...Option) (*Sample, error) {
	if err := validateMin(methodLine, "n", n, minLinePoints); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	pts := make([]network.Vec3, n)
	bif := make([]int, n)
	edges := make([]network.Edge, 0, n-1)
	for i := 0; i < n; i++ {
		pts[i] = network.Vec3{float64(i) * cfg.spacing, 0, 0}
		bif[i] = -1
		if i > 0 {
			edges = append(edges, network.Edge{From: i - 1, To: i})
		}
	}
	return finish(methodLine, cfg, pts, edges, bif)
}

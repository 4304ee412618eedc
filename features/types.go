// SPDX-License-Identifier: MIT

package features

import (
	"errors"
	"fmt"

	"github.com/Chaztikov/gROM/network"
)

// Edge type classes.
const (
	EdgeSpatial = iota
	EdgeInletBoundary
	EdgeOutletBoundary
	EdgeJunction

	EdgeClasses
)

// Point type classes.
const (
	PointBranch = iota
	PointJunction
	PointInlet
	PointOutlet

	PointClasses
)

// NoJunction is the bifurcation id of an ordinary branch point.
const NoJunction = -1

// minBoundaryDistance boundary edges shorter than this are dropped.
const minBoundaryDistance = 1e-12

// ErrLengthMismatch indicates that a per-point array does not match the
// number of points.
var ErrLengthMismatch = errors.New("features: per-point array length mismatch")

// EdgeSet is a list of attributed edges stored as parallel slices.
type EdgeSet struct {
	Edges []network.Edge
	Rel   []network.Vec3
	Dist  []float64
	Types []int
}

// Len returns the number of edges.
func (s *EdgeSet) Len() int { return len(s.Edges) }

// add appends one edge.
func (s *EdgeSet) add(e network.Edge, rel network.Vec3, dist float64, typ int) {
	s.Edges = append(s.Edges, e)
	s.Rel = append(s.Rel, rel)
	s.Dist = append(s.Dist, dist)
	s.Types = append(s.Types, typ)
}

// Append appends every edge of o to s.
func (s *EdgeSet) Append(o EdgeSet) {
	s.Edges = append(s.Edges, o.Edges...)
	s.Rel = append(s.Rel, o.Rel...)
	s.Dist = append(s.Dist, o.Dist...)
	s.Types = append(s.Types, o.Types...)
}

// JunctionMasks flags junction inlets and every point involved in a junction.
type JunctionMasks struct {
	Inlets []bool
	All    []bool
}

func checkLen(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s has %d entries for %d points", ErrLengthMismatch, name, got, want)
	}
	return nil
}

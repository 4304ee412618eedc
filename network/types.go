// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
	"math"
)

// ZeroTol is the length below which a vector or a distance is treated as zero.
const ZeroTol = 1e-12

// Sentinel errors for network construction and validation.
var (
	// ErrEdgeOutOfRange indicates an edge endpoint outside [0, N).
	ErrEdgeOutOfRange = errors.New("network: edge endpoint out of range")

	// ErrNoInlet indicates an indices record without an inlet.
	ErrNoInlet = errors.New("network: no inlet")

	// ErrNoOutlets indicates an indices record without outlets.
	ErrNoOutlets = errors.New("network: no outlets")

	// ErrIndexOutOfRange indicates a selection index outside [0, N).
	ErrIndexOutOfRange = errors.New("network: index out of range")
)

// Vec3 is a point or a displacement in 3D space.
type Vec3 [3]float64

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }

// Scale returns s·a.
func (a Vec3) Scale(s float64) Vec3 { return Vec3{s * a[0], s * a[1], s * a[2]} }

// Neg returns -a.
func (a Vec3) Neg() Vec3 { return Vec3{-a[0], -a[1], -a[2]} }

// Norm returns the Euclidean length of a.
func (a Vec3) Norm() float64 { return math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2]) }

// Dist returns the Euclidean distance between a and b.
func (a Vec3) Dist(b Vec3) float64 { return a.Sub(b).Norm() }

// Unit returns a scaled to unit length together with its original length.
// Vectors shorter than ZeroTol are returned unchanged.
func (a Vec3) Unit() (Vec3, float64) {
	n := a.Norm()
	if n <= ZeroTol {
		return a, n
	}
	return a.Scale(1 / n), n
}

// Edge is a directed edge From → To between two point indices.
type Edge struct {
	From int
	To   int
}

// Reversed returns the edge To → From.
func (e Edge) Reversed() Edge { return Edge{From: e.To, To: e.From} }

// Network is an ordered point cloud with a directed edge list over it.
//
// Invariant: every edge endpoint is a valid index into Points.
type Network struct {
	// Points holds coordinates; the slice index is the point identity.
	Points []Vec3

	// Edges holds directed edges between point indices.
	Edges []Edge
}

// Indices records the boundary points of a network.
type Indices struct {
	// Inlet holds the single root index.
	Inlet []int `json:"inlet" yaml:"inlet"`

	// Outlets holds the leaf indices in order of first appearance.
	Outlets []int `json:"outlets" yaml:"outlets"`
}

// Boundary returns the inlet followed by the outlets in a fresh slice.
func (ix Indices) Boundary() []int {
	out := make([]int, 0, len(ix.Inlet)+len(ix.Outlets))
	out = append(out, ix.Inlet...)
	return append(out, ix.Outlets...)
}

// IsInlet reports whether i is an inlet.
func (ix Indices) IsInlet(i int) bool { return contains(ix.Inlet, i) }

// IsOutlet reports whether i is an outlet.
func (ix Indices) IsOutlet(i int) bool { return contains(ix.Outlets, i) }

// Clone returns a deep copy of ix.
func (ix Indices) Clone() Indices {
	return Indices{
		Inlet:   append([]int(nil), ix.Inlet...),
		Outlets: append([]int(nil), ix.Outlets...),
	}
}

// Validate checks that ix has exactly one inlet and at least one outlet.
func (ix Indices) Validate() error {
	if len(ix.Inlet) != 1 {
		return fmt.Errorf("%w: got %d inlets", ErrNoInlet, len(ix.Inlet))
	}
	if len(ix.Outlets) == 0 {
		return ErrNoOutlets
	}
	return nil
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

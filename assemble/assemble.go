// SPDX-License-Identifier: MIT

package assemble

import (
	"fmt"

	"github.com/Chaztikov/gROM/features"
	"github.com/Chaztikov/gROM/fields"
	"github.com/Chaztikov/gROM/network"
	"github.com/Chaztikov/gROM/tensor"
)

// Options selects the edge families added on top of the spatial edges.
type Options struct {
	BoundaryEdges bool
	JunctionEdges bool
}

// Option represents a functional option for Assemble.
type Option func(*Options)

// WithBoundaryEdges toggles boundary edge synthesis.
func WithBoundaryEdges(on bool) Option {
	return func(o *Options) { o.BoundaryEdges = on }
}

// WithJunctionEdges toggles junction edge synthesis.
func WithJunctionEdges(on bool) Option {
	return func(o *Options) { o.JunctionEdges = on }
}

// DefaultOptions enables both boundary and junction edges.
func DefaultOptions() Options {
	return Options{BoundaryEdges: true, JunctionEdges: true}
}

// Assemble builds the attributed graph of net.
//
// Boundaries are recomputed from net's edge list, so net must be an
// out-tree rooted at point 0. Edges are, in order: the bidirected spatial
// edges, the boundary edges, then (when any junction exists) the junction
// edges. Junction masks are all false when junction edges are off or the
// network has no junction.
func Assemble(net *network.Network, bif []int, area []float64, opts ...Option) (*Graph, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := net.Len()
	if len(bif) != n {
		return nil, fmt.Errorf("%w: %d bifurcation ids for %d points", ErrLengthMismatch, len(bif), n)
	}
	if len(area) != n {
		return nil, fmt.Errorf("%w: %d areas for %d points", ErrLengthMismatch, len(area), n)
	}
	ix := network.FindBoundaries(net.Edges)
	if err := ix.Validate(); err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	edges := features.Spatial(net)
	if o.BoundaryEdges {
		b, err := features.Boundary(net, ix)
		if err != nil {
			return nil, fmt.Errorf("assemble: %w", err)
		}
		edges.Append(b)
	}
	masks := features.JunctionMasks{Inlets: make([]bool, n), All: make([]bool, n)}
	if o.JunctionEdges && hasJunction(bif) {
		j, m, err := features.Junction(net, bif)
		if err != nil {
			return nil, fmt.Errorf("assemble: %w", err)
		}
		edges.Append(j)
		masks = m
	}

	g := &Graph{
		Edges:             edges.Edges,
		Indices:           ix,
		ContinuityMask:    features.ContinuityMask(bif),
		JunctionInletMask: masks.Inlets,
		JunctionMask:      masks.All,
	}

	var err error
	if g.X, err = vecTable(net.Points); err != nil {
		return nil, err
	}
	if g.Area, err = tensor.Column(area); err != nil {
		return nil, fmt.Errorf("assemble: area: %w", err)
	}
	types := features.PointTypes(bif, ix)
	if g.PointType, err = tensor.OneHot(types, features.PointClasses); err != nil {
		return nil, fmt.Errorf("assemble: point types: %w", err)
	}
	g.InletMask = make([]bool, n)
	g.OutletMask = make([]bool, n)
	for i, t := range types {
		g.InletMask[i] = t == features.PointInlet
		g.OutletMask[i] = t == features.PointOutlet
	}

	if g.RelPosition, err = vecTable(edges.Rel); err != nil {
		return nil, err
	}
	if g.Distance, err = tensor.Column(edges.Dist); err != nil {
		return nil, fmt.Errorf("assemble: distance: %w", err)
	}
	if g.EdgeType, err = tensor.OneHot(edges.Types, features.EdgeClasses); err != nil {
		return nil, fmt.Errorf("assemble: edge types: %w", err)
	}
	return g, nil
}

// AttachSeries stores the pressure and flow rate series, keeping every
// subsample-th timestep. Both series must cover the graph's points and
// yield the same number of timesteps; dt comes from the pressure series.
func (g *Graph) AttachSeries(pressure, flowrate fields.Series, subsample int) error {
	p, dt, err := pressure.Tensor(subsample)
	if err != nil {
		return fmt.Errorf("assemble: pressure: %w", err)
	}
	q, _, err := flowrate.Tensor(subsample)
	if err != nil {
		return fmt.Errorf("assemble: flowrate: %w", err)
	}
	n := g.NumPoints()
	if p.Rows() != n || q.Rows() != n || p.Cols() != q.Cols() {
		return fmt.Errorf("%w: pressure %d×%d, flowrate %d×%d, %d points",
			ErrSeriesShape, p.Rows(), p.Cols(), q.Rows(), q.Cols(), n)
	}
	g.Pressure, g.Flowrate = p, q
	g.Dt = make([]float64, n)
	for i := range g.Dt {
		g.Dt[i] = dt
	}
	return nil
}

func hasJunction(bif []int) bool {
	for _, id := range bif {
		if id != features.NoJunction {
			return true
		}
	}
	return false
}

// SPDX-License-Identifier: MIT

package resample

import (
	"fmt"
	"math"
	"sort"

	"github.com/Chaztikov/gROM/network"
)

// Resample decimates net. The input is never modified.
//
// Errors: ErrNilNetwork, network.ErrNoInlet/ErrNoOutlets from ix,
// ErrCapOutOfRange, ErrNothingToCollapse.
//
// Complexity: O(K·E) for K collapse iterations.
func Resample(net *network.Network, ix network.Indices, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if err := net.Validate(); err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}
	if err := ix.Validate(); err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}
	o := buildOptions(opts)

	d := &decimator{
		points:  net.Points,
		edges:   append([]network.Edge(nil), net.Edges...),
		deleted: make([]bool, net.Len()),
	}
	if err := d.removeCaps(ix, o.CapRemoval); err != nil {
		return nil, err
	}

	n := net.Len()
	iterations := n - int(math.Floor(float64(n)*o.KeepFraction))
	for k := 0; k < iterations; k++ {
		if !d.collapseShortest() {
			return nil, fmt.Errorf("%w: iteration %d of %d", ErrNothingToCollapse, k+1, iterations)
		}
	}

	res := d.resolve()
	res.KeepFraction = o.KeepFraction
	return res, nil
}

// decimator holds the working state of one run. edges is rewritten in
// place as points merge; points is read-only.
type decimator struct {
	points    []network.Vec3
	edges     []network.Edge
	deleted   []bool
	protected map[int]struct{}
	inlet     int
	lengths   []float64
}

// merge replaces every occurrence of del by keep and marks del deleted.
func (d *decimator) merge(del, keep int) {
	for i := range d.edges {
		if d.edges[i].From == del {
			d.edges[i].From = keep
		}
		if d.edges[i].To == del {
			d.edges[i].To = keep
		}
	}
	d.deleted[del] = true
}

// removeCaps merges the c points after the inlet into inlet+c and the c
// points before each outlet into outlet-c.
func (d *decimator) removeCaps(ix network.Indices, c int) error {
	n := len(d.points)
	inRange := func(i int) bool { return i >= 0 && i < n }

	d.inlet = ix.Inlet[0] + c
	if !inRange(d.inlet) {
		return fmt.Errorf("%w: inlet %d + %d (len %d)", ErrCapOutOfRange, ix.Inlet[0], c, n)
	}
	d.protected = make(map[int]struct{}, len(ix.Outlets))
	for _, out := range ix.Outlets {
		if !inRange(out - c) {
			return fmt.Errorf("%w: outlet %d - %d (len %d)", ErrCapOutOfRange, out, c, n)
		}
		d.protected[out-c] = struct{}{}
	}

	for ip := 0; ip < c; ip++ {
		for _, in := range ix.Inlet {
			d.merge(in+ip, in+c)
		}
		for _, out := range ix.Outlets {
			d.merge(out-ip, out-c)
		}
	}
	return nil
}

// collapseShortest merges the endpoints of the shortest positive edge.
// It reports false when no such edge exists.
func (d *decimator) collapseShortest() bool {
	if len(d.lengths) != len(d.edges) {
		d.lengths = make([]float64, len(d.edges))
	}
	lengths := d.lengths
	minLen := math.Inf(1)
	for i, e := range d.edges {
		l := d.points[e.From].Dist(d.points[e.To])
		if l < minEdgeLength {
			l = math.Inf(1)
		}
		lengths[i] = l
		minLen = math.Min(minLen, l)
	}
	if math.IsInf(minLen, 1) {
		return false
	}
	best := 0
	for i, l := range lengths {
		if math.Abs(l-minLen) < tieTolerance {
			best = i
			break
		}
	}

	e := d.edges[best]
	if _, ok := d.protected[e.To]; ok {
		d.merge(e.From, e.To)
		if e.From == d.inlet {
			d.inlet = e.To
		}
	} else {
		d.merge(e.To, e.From)
	}
	return true
}

// resolve drops self-loops and renumbers the survivors densely.
func (d *decimator) resolve() *Result {
	newID := make([]int, len(d.points))
	kept := make([]int, 0, len(d.points))
	for i, del := range d.deleted {
		newID[i] = -1
		if !del {
			newID[i] = len(kept)
			kept = append(kept, i)
		}
	}

	points := make([]network.Vec3, len(kept))
	for i, old := range kept {
		points[i] = d.points[old]
	}
	edges := make([]network.Edge, 0, len(d.edges))
	for _, e := range d.edges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, network.Edge{From: newID[e.From], To: newID[e.To]})
	}

	outlets := make([]int, 0, len(d.protected))
	for old := range d.protected {
		if id := newID[old]; id >= 0 {
			outlets = append(outlets, id)
		}
	}
	sort.Ints(outlets)
	inlet := []int{}
	if id := newID[d.inlet]; id >= 0 {
		inlet = append(inlet, id)
	}

	return &Result{
		Kept:    kept,
		Network: &network.Network{Points: points, Edges: edges},
		Indices: network.Indices{Inlet: inlet, Outlets: outlets},
	}
}

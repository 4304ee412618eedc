// SPDX-License-Identifier: MIT

package features

import (
	"fmt"

	"github.com/Chaztikov/gROM/dijkstra"
	"github.com/Chaztikov/gROM/network"
)

// junctionState is the position of a point relative to the junctions in
// point order.
type junctionState int

const (
	// stateOutside: the point and its successor in order are branch points.
	stateOutside junctionState = iota
	// stateEntering: a branch point immediately followed by a junction point.
	stateEntering
	// stateInside: the point belongs to a junction.
	stateInside
)

func (s junctionState) String() string {
	switch s {
	case stateOutside:
		return "outside"
	case stateEntering:
		return "entering"
	case stateInside:
		return "inside"
	default:
		return fmt.Sprintf("junctionState(%d)", int(s))
	}
}

func stateAt(bif []int, i int) junctionState {
	switch {
	case bif[i] != NoJunction:
		return stateInside
	case i+1 < len(bif) && bif[i+1] != NoJunction:
		return stateEntering
	default:
		return stateOutside
	}
}

// junctionInlets maps junction id to the point feeding it, and remembers the
// order in which ids were first recorded.
type junctionInlets struct {
	inlet map[int]int
	order []int
}

func (j *junctionInlets) record(id, point int) bool {
	if _, ok := j.inlet[id]; ok {
		return false
	}
	j.inlet[id] = point
	j.order = append(j.order, id)
	return true
}

// scanInlets walks the points in order and records one inlet per junction:
// the branch point right before a junction is entered, point 0 when the
// network starts inside a junction, and, on a direct junction-to-junction
// step, the inlet of the junction being left. The first recorded inlet of a
// junction is never replaced.
func scanInlets(bif []int) (*junctionInlets, []bool) {
	j := &junctionInlets{inlet: make(map[int]int)}
	isInlet := make([]bool, len(bif))
	prev := stateOutside
	for i := range bif {
		cur := stateAt(bif, i)
		switch cur {
		case stateEntering:
			if j.record(bif[i+1], i) {
				isInlet[i] = true
			}
		case stateInside:
			switch {
			case i == 0:
				if j.record(bif[0], 0) {
					isInlet[0] = true
				}
			case prev == stateInside && bif[i-1] != bif[i]:
				if from, ok := j.inlet[bif[i-1]]; ok {
					j.record(bif[i], from)
				}
			}
		}
		prev = cur
	}
	return j, isInlet
}

// Junction connects every junction inlet to the points leaving the
// junction.
//
// Inlets come from a scan over point order (see the junction states). Exit
// points are found on the topology: every branch point that is an
// out-neighbour of a junction point. Each inlet → exit edge carries the
// unit relative position and the graph distance over the bidirected
// centerline, and is followed, after all forward edges, by its mirror with
// the relative position negated.
//
// Masks: Inlets flags recorded inlets; All flags junction points and
// recorded inlets.
func Junction(net *network.Network, bif []int) (EdgeSet, JunctionMasks, error) {
	n := net.Len()
	if err := checkLen("bifurcation ids", len(bif), n); err != nil {
		return EdgeSet{}, JunctionMasks{}, err
	}

	inlets, isInlet := scanInlets(bif)
	masks := JunctionMasks{Inlets: isInlet, All: make([]bool, n)}
	for i, id := range bif {
		masks.All[i] = id != NoJunction || isInlet[i]
	}

	// exits in point order of the junction point, then edge order
	type pair struct{ from, to int }
	var pairs []pair
	seen := make(map[pair]struct{})
	succ := net.Successors()
	for a, id := range bif {
		if id == NoJunction {
			continue
		}
		from, ok := inlets.inlet[id]
		if !ok {
			continue
		}
		for _, k := range succ[a] {
			if bif[k] != NoJunction {
				continue
			}
			p := pair{from: from, to: k}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			pairs = append(pairs, p)
		}
	}
	if len(pairs) == 0 {
		return EdgeSet{}, masks, nil
	}

	eng, err := dijkstra.NewEngine(net.Bidirected())
	if err != nil {
		return EdgeSet{}, JunctionMasks{}, fmt.Errorf("features: junction edges: %w", err)
	}
	dists := make(map[int][]float64, len(inlets.order))
	for _, id := range inlets.order {
		src := inlets.inlet[id]
		if _, done := dists[src]; done {
			continue
		}
		d, _, err := eng.From(src)
		if err != nil {
			return EdgeSet{}, JunctionMasks{}, fmt.Errorf("features: junction edges from %d: %w", src, err)
		}
		dists[src] = d
	}

	var fwd EdgeSet
	for _, p := range pairs {
		rel, _ := net.Points[p.to].Sub(net.Points[p.from]).Unit()
		fwd.add(network.Edge{From: p.from, To: p.to}, rel, dists[p.from][p.to], EdgeJunction)
	}
	out := EdgeSet{}
	out.Append(fwd)
	for i, e := range fwd.Edges {
		out.add(e.Reversed(), fwd.Rel[i].Neg(), fwd.Dist[i], EdgeJunction)
	}
	return out, masks, nil
}

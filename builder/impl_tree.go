// SPDX-License-Identifier: MIT
// Package: gROM/builder
//
// impl_tree.go: Y-shaped and recursive binary vessel trees.
//
// Numbering is depth-first: a parent segment, its junction run, the whole
// first child subtree, then the whole second child subtree. Junction runs
// get consecutive ids 0, 1, 2, … in the order they are created.

package builder

import (
	"math"

	"github.com/Chaztikov/gROM/network"
)

const (
	methodY    = "Y"
	methodTree = "Tree"

	branchAngle = math.Pi / 4
)

// grower accumulates points and edges while walking the tree.
type grower struct {
	spacing float64
	pts     []network.Vec3
	bif     []int
	edges   []network.Edge
	nextJun int
}

// run appends count points along dir, chained from parent (-1 for none),
// and returns the index and position of the last one.
func (g *grower) run(parent int, from network.Vec3, dir network.Vec3, count, id int) (int, network.Vec3) {
	last, pos := parent, from
	for k := 0; k < count; k++ {
		pos = pos.Add(dir.Scale(g.spacing))
		idx := len(g.pts)
		g.pts = append(g.pts, pos)
		g.bif = append(g.bif, id)
		if last >= 0 {
			g.edges = append(g.edges, network.Edge{From: last, To: idx})
		}
		last = idx
	}
	return last, pos
}

// rotate turns a vector in the xy plane by angle.
func rotate(v network.Vec3, angle float64) network.Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return network.Vec3{c*v[0] - s*v[1], s*v[0] + c*v[1], v[2]}
}

// Y builds one junction: a trunk, a junction run, then two branches.
//
// With Y(2, 2, 2, 1) the points are
//
//	0 → 1 → [2 → 3] → 4 → 5
//	              └──→ 6
//
// and the bifurcation ids are [-1, -1, 0, 0, -1, -1, -1].
func Y(trunk, junction, a, b int, opts ...Option) (*Sample, error) {
	if err := validateAll(
		validateMin(methodY, "trunk", trunk, 1),
		validateMin(methodY, "junction", junction, 1),
		validateMin(methodY, "a", a, 1),
		validateMin(methodY, "b", b, 1),
	); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	g := &grower{spacing: cfg.spacing}

	x := network.Vec3{1, 0, 0}
	// the first trunk point sits at the origin
	g.pts = append(g.pts, network.Vec3{})
	g.bif = append(g.bif, -1)
	last, pos := g.run(0, network.Vec3{}, x, trunk-1, -1)
	jEnd, jPos := g.run(last, pos, x, junction, 0)
	_, _ = g.run(jEnd, jPos, rotate(x, branchAngle), a, -1)
	_, _ = g.run(jEnd, jPos, rotate(x, -branchAngle), b, -1)

	return finish(methodY, cfg, g.pts, g.edges, g.bif)
}

// Tree builds a binary tree with the given number of junction levels.
// Every vessel segment has `segment` branch points and every junction
// `junction` points; levels = 0 yields a single segment.
func Tree(levels, segment, junction int, opts ...Option) (*Sample, error) {
	if err := validateAll(
		validateMin(methodTree, "levels", levels, 0),
		validateMin(methodTree, "segment", segment, 2),
		validateMin(methodTree, "junction", junction, 1),
	); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	g := &grower{spacing: cfg.spacing}

	g.pts = append(g.pts, network.Vec3{})
	g.bif = append(g.bif, -1)
	g.grow(0, network.Vec3{}, network.Vec3{1, 0, 0}, levels, segment-1, junction, branchAngle)

	return finish(methodTree, cfg, g.pts, g.edges, g.bif)
}

func (g *grower) grow(parent int, from, dir network.Vec3, level, segment, junction int, angle float64) {
	last, pos := g.run(parent, from, dir, segment, -1)
	if level == 0 {
		return
	}
	id := g.nextJun
	g.nextJun++
	jEnd, jPos := g.run(last, pos, dir, junction, id)
	g.grow(jEnd, jPos, rotate(dir, angle), level-1, segment+1, junction, angle/2)
	g.grow(jEnd, jPos, rotate(dir, -angle), level-1, segment+1, junction, angle/2)
}

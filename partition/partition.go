// SPDX-License-Identifier: MIT

package partition

import (
	"context"
	"fmt"

	"github.com/Chaztikov/gROM/fields"
	"github.com/Chaztikov/gROM/network"
)

// minEdges partitions with fewer local edges are discarded.
const minEdges = 2

// Split partitions net into at most max sub-networks.
//
// With max ≤ 1 the whole network is returned as one partition. Otherwise
// roots are chosen by Roots and every root is grown breadth-first along
// the directed edges, in edge order. Another root is added as a leaf but
// not expanded, so partitions share only root points. Partitions with
// fewer than two edges are dropped. data is sliced by each sampling list.
func Split(net *network.Network, bif []int, data fields.PointData, max int, opts ...Option) ([]Partition, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if len(bif) != net.Len() {
		return nil, fmt.Errorf("%w: %d ids for %d points", ErrLengthMismatch, len(bif), net.Len())
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if max <= 1 {
		all := make([]int, net.Len())
		for i := range all {
			all[i] = i
		}
		p, err := build(net.Clone(), bif, data, 0, all)
		if err != nil {
			return nil, err
		}
		return []Partition{p}, nil
	}

	roots, err := Roots(net, bif, max, opts...)
	if err != nil {
		return nil, err
	}

	isRoot := make(map[int]struct{}, len(roots))
	for _, r := range roots {
		isRoot[r] = struct{}{}
	}
	g := &grower{
		ctx:    o.Ctx,
		net:    net,
		out:    net.OutEdges(),
		isRoot: isRoot,
	}

	parts := make([]Partition, 0, len(roots))
	for _, root := range roots {
		sampling, edges, err := g.grow(root)
		if err != nil {
			return nil, err
		}
		if len(edges) < minEdges {
			continue
		}
		points, err := net.Select(sampling)
		if err != nil {
			return nil, err
		}
		p, err := build(&network.Network{Points: points, Edges: edges}, bif, data, root, sampling)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, nil
}

// build slices the per-point data of a grown partition.
func build(local *network.Network, bif []int, data fields.PointData, root int, sampling []int) (Partition, error) {
	pbif := make([]int, len(sampling))
	for i, s := range sampling {
		pbif[i] = bif[s]
	}
	pdata, err := data.Select(sampling)
	if err != nil {
		return Partition{}, fmt.Errorf("partition: slicing point data: %w", err)
	}
	return Partition{
		Root:     root,
		Sampling: sampling,
		Network:  local,
		BifID:    pbif,
		Data:     pdata,
	}, nil
}

// grower encapsulates the breadth-first traversal state.
type grower struct {
	ctx    context.Context
	net    *network.Network
	out    [][]int
	isRoot map[int]struct{}
}

// grow runs the traversal from root. Points are numbered in visit order.
func (g *grower) grow(root int) ([]int, []network.Edge, error) {
	local := map[int]int{root: 0}
	sampling := []int{root}
	queue := []int{root}
	var edges []network.Edge

	for len(queue) > 0 {
		select {
		case <-g.ctx.Done():
			return nil, nil, g.ctx.Err()
		default:
		}

		j := queue[0]
		queue = queue[1:]
		for _, ei := range g.out[j] {
			next := g.net.Edges[ei].To
			if _, seen := local[next]; seen {
				continue
			}
			local[next] = len(sampling)
			sampling = append(sampling, next)
			edges = append(edges, network.Edge{From: local[j], To: local[next]})
			if _, stop := g.isRoot[next]; !stop {
				queue = append(queue, next)
			}
		}
	}
	return sampling, edges, nil
}

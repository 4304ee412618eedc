// SPDX-License-Identifier: MIT

package network

import "fmt"

// New builds a Network from copies of points and edges.
// It fails with ErrEdgeOutOfRange if an edge references a missing point.
func New(points []Vec3, edges []Edge) (*Network, error) {
	n := &Network{
		Points: append([]Vec3(nil), points...),
		Edges:  append([]Edge(nil), edges...),
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// FromParallel builds a Network from parallel source/destination slices.
func FromParallel(points []Vec3, edges1, edges2 []int) (*Network, error) {
	if len(edges1) != len(edges2) {
		return nil, fmt.Errorf("network: edge arrays differ in length (%d != %d)", len(edges1), len(edges2))
	}
	edges := make([]Edge, len(edges1))
	for i := range edges1 {
		edges[i] = Edge{From: edges1[i], To: edges2[i]}
	}
	return New(points, edges)
}

// Len returns the number of points.
func (n *Network) Len() int { return len(n.Points) }

// Validate checks that every edge endpoint is in range.
func (n *Network) Validate() error {
	np := len(n.Points)
	for i, e := range n.Edges {
		if e.From < 0 || e.From >= np || e.To < 0 || e.To >= np {
			return fmt.Errorf("%w: edge %d (%d→%d) with %d points", ErrEdgeOutOfRange, i, e.From, e.To, np)
		}
	}
	return nil
}

// Clone returns a deep copy of n.
func (n *Network) Clone() *Network {
	return &Network{
		Points: append([]Vec3(nil), n.Points...),
		Edges:  append([]Edge(nil), n.Edges...),
	}
}

// Length returns the Euclidean length of e.
func (n *Network) Length(e Edge) float64 {
	return n.Points[e.From].Dist(n.Points[e.To])
}

// Parallel returns the edge list as two parallel index slices.
func (n *Network) Parallel() (edges1, edges2 []int) {
	edges1 = make([]int, len(n.Edges))
	edges2 = make([]int, len(n.Edges))
	for i, e := range n.Edges {
		edges1[i], edges2[i] = e.From, e.To
	}
	return edges1, edges2
}

// OutEdges returns, for every point, the indices of the edges leaving it
// in edge-list order.
func (n *Network) OutEdges() [][]int {
	out := make([][]int, len(n.Points))
	for i, e := range n.Edges {
		out[e.From] = append(out[e.From], i)
	}
	return out
}

// Successors returns, for every point, the destinations of its out-edges
// in edge-list order.
func (n *Network) Successors() [][]int {
	out := make([][]int, len(n.Points))
	for _, e := range n.Edges {
		out[e.From] = append(out[e.From], e.To)
	}
	return out
}

// Bidirected returns a new Network with every edge followed by the full
// list of reversed edges: [e0 … ek, rev(e0) … rev(ek)].
func (n *Network) Bidirected() *Network {
	edges := make([]Edge, 0, 2*len(n.Edges))
	edges = append(edges, n.Edges...)
	for _, e := range n.Edges {
		edges = append(edges, e.Reversed())
	}
	return &Network{
		Points: append([]Vec3(nil), n.Points...),
		Edges:  edges,
	}
}

// Select returns the points at the given indices, in order.
func (n *Network) Select(idx []int) ([]Vec3, error) {
	out := make([]Vec3, len(idx))
	for k, i := range idx {
		if i < 0 || i >= len(n.Points) {
			return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(n.Points))
		}
		out[k] = n.Points[i]
	}
	return out, nil
}

// SPDX-License-Identifier: MIT

package network_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Chaztikov/gROM/network"
)

func line(n int) []network.Vec3 {
	pts := make([]network.Vec3, n)
	for i := range pts {
		pts[i] = network.Vec3{float64(i), 0, 0}
	}
	return pts
}

func TestFindBoundaries_Path(t *testing.T) {
	edges := []network.Edge{{0, 1}, {1, 2}, {2, 3}}
	ix := network.FindBoundaries(edges)
	require.Equal(t, []int{0}, ix.Inlet)
	require.Equal(t, []int{3}, ix.Outlets)
	require.NoError(t, ix.Validate())
}

func TestFindBoundaries_Tree(t *testing.T) {
	// 0 → 1 → 2 → 3
	//          └→ 4 → 5
	edges := []network.Edge{{0, 1}, {1, 2}, {2, 3}, {2, 4}, {4, 5}}
	ix := network.FindBoundaries(edges)
	require.Equal(t, []int{0}, ix.Inlet)
	require.Equal(t, []int{3, 5}, ix.Outlets)
	require.Equal(t, []int{0, 3, 5}, ix.Boundary())
	require.True(t, ix.IsOutlet(5))
	require.False(t, ix.IsOutlet(2))
	require.True(t, ix.IsInlet(0))
}

func TestIndices_ValidateEmpty(t *testing.T) {
	ix := network.FindBoundaries(nil)
	require.ErrorIs(t, ix.Validate(), network.ErrNoOutlets)

	err := network.Indices{Outlets: []int{1}}.Validate()
	require.True(t, errors.Is(err, network.ErrNoInlet))
}

func TestNew_RejectsOutOfRange(t *testing.T) {
	_, err := network.New(line(2), []network.Edge{{0, 2}})
	require.ErrorIs(t, err, network.ErrEdgeOutOfRange)

	_, err = network.FromParallel(line(3), []int{0, 1}, []int{1})
	require.Error(t, err)
}

func TestNew_CopiesInputs(t *testing.T) {
	pts := line(3)
	edges := []network.Edge{{0, 1}, {1, 2}}
	n, err := network.New(pts, edges)
	require.NoError(t, err)

	pts[0] = network.Vec3{9, 9, 9}
	edges[0] = network.Edge{2, 2}
	require.Equal(t, network.Vec3{0, 0, 0}, n.Points[0])
	require.Equal(t, network.Edge{0, 1}, n.Edges[0])
}

func TestBidirected(t *testing.T) {
	n, err := network.New(line(3), []network.Edge{{0, 1}, {1, 2}})
	require.NoError(t, err)
	b := n.Bidirected()
	require.Equal(t, []network.Edge{{0, 1}, {1, 2}, {1, 0}, {2, 1}}, b.Edges)
	require.Len(t, n.Edges, 2, "source network untouched")

	e1, e2 := b.Parallel()
	require.Equal(t, []int{0, 1, 1, 2}, e1)
	require.Equal(t, []int{1, 2, 0, 1}, e2)
}

func TestAdjacency(t *testing.T) {
	n, err := network.New(line(4), []network.Edge{{0, 1}, {1, 2}, {1, 3}})
	require.NoError(t, err)
	require.Equal(t, [][]int{{1}, {2, 3}, nil, nil}, n.Successors())
	require.Equal(t, [][]int{{0}, {1, 2}, nil, nil}, n.OutEdges())
	require.InDelta(t, 2.0, n.Length(network.Edge{1, 3}), 1e-15)
}

func TestVec3_Unit(t *testing.T) {
	u, l := network.Vec3{3, 4, 0}.Unit()
	require.InDelta(t, 5.0, l, 1e-15)
	require.InDelta(t, 1.0, u.Norm(), 1e-15)

	z, l := network.Vec3{}.Unit()
	require.Equal(t, network.Vec3{}, z)
	require.Zero(t, l)
}

func TestSelect(t *testing.T) {
	n, err := network.New(line(4), nil)
	require.NoError(t, err)
	pts, err := n.Select([]int{3, 1})
	require.NoError(t, err)
	require.Equal(t, []network.Vec3{{3, 0, 0}, {1, 0, 0}}, pts)

	_, err = n.Select([]int{4})
	require.ErrorIs(t, err, network.ErrIndexOutOfRange)
}

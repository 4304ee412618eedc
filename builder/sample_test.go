// SPDX-License-Identifier: MIT

// Package builder_test covers the synthetic vessel constructors.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chaztikov/gROM/builder"
	"github.com/Chaztikov/gROM/network"
)

func TestConstructors_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		build     func() (*builder.Sample, error)
		wantN     int
		wantE     int
		wantJun   int
		wantBifID []int
	}{
		{
			name:      "Line(4)",
			build:     func() (*builder.Sample, error) { return builder.Line(4) },
			wantN:     4,
			wantE:     3,
			wantBifID: []int{-1, -1, -1, -1},
		},
		{
			name:      "Y(2,2,2,1)",
			build:     func() (*builder.Sample, error) { return builder.Y(2, 2, 2, 1) },
			wantN:     7,
			wantE:     6,
			wantJun:   1,
			wantBifID: []int{-1, -1, 0, 0, -1, -1, -1},
		},
		{
			name:    "Tree(2,3,2)",
			build:   func() (*builder.Sample, error) { return builder.Tree(2, 3, 2) },
			wantN:   31,
			wantE:   30,
			wantJun: 3,
		},
		{
			name:  "Tree(0,5,1)",
			build: func() (*builder.Sample, error) { return builder.Tree(0, 5, 1) },
			wantN: 5,
			wantE: 4,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := tc.build()
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, s.Network.Len())
			assert.Len(t, s.Network.Edges, tc.wantE)
			assert.Equal(t, tc.wantJun, s.Junctions())
			assert.Len(t, s.BifID, tc.wantN)
			if tc.wantBifID != nil {
				assert.Equal(t, tc.wantBifID, s.BifID)
			}
			// every point but the root has exactly one parent
			in := make([]int, tc.wantN)
			for _, e := range s.Network.Edges {
				in[e.To]++
			}
			assert.Equal(t, 0, in[0])
			for i := 1; i < tc.wantN; i++ {
				assert.Equal(t, 1, in[i], "in-degree of %d", i)
			}
		})
	}
}

func TestY_EdgeLayout(t *testing.T) {
	t.Parallel()

	s, err := builder.Y(2, 2, 2, 1)
	require.NoError(t, err)
	want := []network.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}, {From: 4, To: 5}, {From: 3, To: 6}}
	assert.Equal(t, want, s.Network.Edges)
	assert.Equal(t, network.Indices{Inlet: []int{0}, Outlets: []int{5, 6}},
		network.FindBoundaries(s.Network.Edges))
}

func TestLine_SpacingAndData(t *testing.T) {
	t.Parallel()

	s, err := builder.Line(3, builder.WithSpacing(0.5), builder.WithTimesteps(4, 0.25))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.Network.Points[2][0], 1e-12)

	for _, key := range []string{"BifurcationId", "area", "pressure_0", "pressure_0.75", "flow_0.5"} {
		a, ok := s.Data[key]
		require.True(t, ok, key)
		assert.Equal(t, 3, a.Tuples(), key)
	}
	_, ok := s.Data["pressure_1"]
	assert.False(t, ok)

	ids, err := s.Data.Ints(builder.ArrayBifurcationID)
	require.NoError(t, err)
	assert.Equal(t, s.BifID, ids)
}

func TestConstructors_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.Line(1)
	assert.ErrorIs(t, err, builder.ErrTooFewPoints)
	_, err = builder.Y(0, 1, 1, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewPoints)
	_, err = builder.Tree(-1, 3, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewPoints)
	_, err = builder.Line(5, builder.WithJitter(0.1))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestJitter_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.Tree(1, 4, 2, builder.WithSeed(7), builder.WithJitter(0.05))
	require.NoError(t, err)
	b, err := builder.Tree(1, 4, 2, builder.WithRand(rand.New(rand.NewSource(7))), builder.WithJitter(0.05))
	require.NoError(t, err)
	assert.Equal(t, a.Network.Points, b.Network.Points)

	plain, err := builder.Tree(1, 4, 2)
	require.NoError(t, err)
	moved := 0.0
	for i := range plain.Network.Points {
		moved = math.Max(moved, plain.Network.Points[i].Dist(a.Network.Points[i]))
	}
	assert.Greater(t, moved, 0.0)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.WithJitter(-1) })
	assert.Panics(t, func() { builder.WithTimesteps(2, 0) })
	assert.Panics(t, func() { builder.WithTimesteps(-1, 1) })
}

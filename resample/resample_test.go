// SPDX-License-Identifier: MIT

package resample_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chaztikov/gROM/builder"
	"github.com/Chaztikov/gROM/dijkstra"
	"github.com/Chaztikov/gROM/network"
	"github.com/Chaztikov/gROM/resample"
)

func line(t *testing.T, n int) (*network.Network, network.Indices) {
	t.Helper()
	s, err := builder.Line(n)
	require.NoError(t, err)
	return s.Network, network.FindBoundaries(s.Network.Edges)
}

func TestResample_ElevenPointLine(t *testing.T) {
	net, ix := line(t, 11)

	res, err := resample.Resample(net, ix, resample.WithKeepFraction(0.5), resample.WithCapRemoval(0))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 4, 6, 8, 10}, res.Kept)
	assert.Equal(t, []network.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}}, res.Network.Edges)
	assert.Equal(t, network.Indices{Inlet: []int{0}, Outlets: []int{4}}, res.Indices)
	assert.Equal(t, network.Vec3{4, 0, 0}, res.Network.Points[1])
	assert.InDelta(t, 0.5, res.KeepFraction, 0)

	// input untouched
	assert.Equal(t, 11, net.Len())
	assert.Equal(t, network.Edge{From: 0, To: 1}, net.Edges[0])
}

func TestResample_CapRemoval(t *testing.T) {
	net, ix := line(t, 11)

	res, err := resample.Resample(net, ix, resample.WithKeepFraction(1), resample.WithCapRemoval(2))
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8}, res.Kept)
	assert.Len(t, res.Network.Edges, 6)
	assert.Equal(t, network.Indices{Inlet: []int{0}, Outlets: []int{6}}, res.Indices)
}

func TestResample_ProtectedOutletKeepsPosition(t *testing.T) {
	pts := []network.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {2.1, 0, 0}}
	net, err := network.New(pts, []network.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}})
	require.NoError(t, err)

	// N=4, keep 0.75 → a single collapse of the short outlet edge
	res, err := resample.Resample(net, network.FindBoundaries(net.Edges),
		resample.WithKeepFraction(0.75), resample.WithCapRemoval(0))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3}, res.Kept)
	assert.Equal(t, network.Vec3{2.1, 0, 0}, res.Network.Points[2])
	assert.Equal(t, []int{2}, res.Indices.Outlets)
}

func TestResample_IdentityOnY(t *testing.T) {
	s, err := builder.Y(2, 2, 2, 1)
	require.NoError(t, err)

	res, err := resample.Resample(s.Network, network.FindBoundaries(s.Network.Edges),
		resample.WithKeepFraction(1), resample.WithCapRemoval(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, res.Kept)
	assert.Equal(t, s.Network.Edges, res.Network.Edges)
	assert.Equal(t, []int{5, 6}, res.Indices.Outlets)
}

func TestResample_Errors(t *testing.T) {
	_, err := resample.Resample(nil, network.Indices{})
	assert.ErrorIs(t, err, resample.ErrNilNetwork)

	net, ix := line(t, 3)
	_, err = resample.Resample(net, network.Indices{Inlet: []int{0}})
	assert.ErrorIs(t, err, network.ErrNoOutlets)

	_, err = resample.Resample(net, ix, resample.WithCapRemoval(3))
	assert.ErrorIs(t, err, resample.ErrCapOutOfRange)

	_, err = resample.Resample(net, ix, resample.WithKeepFraction(0.01), resample.WithCapRemoval(0))
	assert.ErrorIs(t, err, resample.ErrNothingToCollapse)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { resample.WithKeepFraction(0) })
	assert.Panics(t, func() { resample.WithKeepFraction(1.5) })
	assert.Panics(t, func() { resample.WithCapRemoval(-1) })
}

func TestAdaptive_DoublesKeepFraction(t *testing.T) {
	net, ix := line(t, 3)

	var (
		tried  []float64
		causes []error
	)
	res, err := resample.Adaptive(net, ix,
		resample.WithKeepFraction(0.01),
		resample.WithCapRemoval(0),
		resample.WithOnRetry(func(keep float64, err error) {
			tried = append(tried, keep)
			causes = append(causes, err)
		}))
	require.NoError(t, err)

	// 0.01 through 0.32 leave nothing to collapse; 0.64 folds the line
	// into a single point with no outlet.
	require.Len(t, tried, 7)
	assert.InDelta(t, 0.01, tried[0], 1e-15)
	assert.InDelta(t, 0.64, tried[6], 1e-15)
	for i, cause := range causes[:6] {
		assert.ErrorIs(t, cause, resample.ErrNothingToCollapse, "retry %d", i)
	}
	assert.ErrorIs(t, causes[6], resample.ErrLostOutlets)
	assert.InDelta(t, 1, res.KeepFraction, 0)
	assert.Equal(t, 3, res.Network.Len())
}

func TestAdaptive_LostOutletsRetry(t *testing.T) {
	net, ix := line(t, 3)

	var tried []float64
	res, err := resample.Adaptive(net, ix,
		resample.WithKeepFraction(0.34),
		resample.WithCapRemoval(0),
		resample.WithOnRetry(func(keep float64, err error) {
			assert.ErrorIs(t, err, resample.ErrLostOutlets)
			tried = append(tried, keep)
		}))
	require.NoError(t, err)

	assert.Equal(t, []float64{0.34}, tried)
	assert.InDelta(t, 0.68, res.KeepFraction, 1e-15)
	assert.Equal(t, []int{0, 2}, res.Kept)
	assert.Equal(t, []network.Edge{{From: 0, To: 1}}, res.Network.Edges)
	assert.Equal(t, network.Indices{Inlet: []int{0}, Outlets: []int{1}}, res.Indices)
}

func TestAdaptive_UnreachableRetries(t *testing.T) {
	// a chain 0→…→7 and a stray point 8 no edge touches
	pts := make([]network.Vec3, 9)
	var edges []network.Edge
	for i := range pts {
		pts[i] = network.Vec3{float64(i), 0, 0}
		if i > 0 && i < 8 {
			edges = append(edges, network.Edge{From: i - 1, To: i})
		}
	}
	pts[8] = network.Vec3{100, 100, 0}
	net, err := network.New(pts, edges)
	require.NoError(t, err)
	ix := network.FindBoundaries(net.Edges)
	require.Equal(t, []int{7}, ix.Outlets)

	var tried []float64
	_, err = resample.Adaptive(net, ix,
		resample.WithKeepFraction(0.25),
		resample.WithCapRemoval(0),
		resample.WithOnRetry(func(keep float64, err error) {
			assert.ErrorIs(t, err, dijkstra.ErrUnreachableNode)
			tried = append(tried, keep)
		}))
	require.Error(t, err)

	assert.Equal(t, []float64{0.25, 0.5}, tried)
	assert.ErrorIs(t, err, resample.ErrGaveUp)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachableNode)
}

func TestAdaptive_GivesUpAtFullResolution(t *testing.T) {
	net, ix := line(t, 3)

	retries := 0
	_, err := resample.Adaptive(net, ix,
		resample.WithKeepFraction(0.25),
		resample.WithCapRemoval(5),
		resample.WithOnRetry(func(float64, error) { retries++ }))
	require.Error(t, err)
	assert.ErrorIs(t, err, resample.ErrGaveUp)
	assert.ErrorIs(t, err, resample.ErrCapOutOfRange)
	assert.Equal(t, 2, retries) // 0.25, 0.5, then 1 fails for good
}

func TestAdaptive_FatalErrorsAreNotRetried(t *testing.T) {
	net, _ := line(t, 3)

	retries := 0
	_, err := resample.Adaptive(net, network.Indices{},
		resample.WithOnRetry(func(float64, error) { retries++ }))
	assert.True(t, errors.Is(err, network.ErrNoInlet))
	assert.Zero(t, retries)
}

// SPDX-License-Identifier: MIT
// Package: gROM/builder
//
// sample.go: the Sample type and the per-point data every constructor attaches.

package builder

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Chaztikov/gROM/fields"
	"github.com/Chaztikov/gROM/network"
)

// Array names written by the builders; they match real centerline meshes.
const (
	ArrayBifurcationID = "BifurcationId"
	ArrayArea          = "area"
	FieldPressure      = "pressure"
	FieldFlow          = "flow"
)

// Sample is a generated network with its per-point data.
type Sample struct {
	Network *network.Network
	BifID   []int
	Data    fields.PointData
}

// Junctions returns the number of distinct non-negative bifurcation ids.
func (s *Sample) Junctions() int {
	seen := make(map[int]struct{})
	for _, id := range s.BifID {
		if id >= 0 {
			seen[id] = struct{}{}
		}
	}
	return len(seen)
}

// finish jitters the geometry if requested and attaches point data.
func finish(method string, cfg config, pts []network.Vec3, edges []network.Edge, bif []int) (*Sample, error) {
	if cfg.jitter > 0 {
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
		}
		for i := range pts {
			for k := 0; k < 3; k++ {
				pts[i][k] += cfg.rng.NormFloat64() * cfg.jitter
			}
		}
	}

	net, err := network.New(pts, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	n := len(pts)
	bifVals := make([]float64, n)
	area := make([]float64, n)
	for i := 0; i < n; i++ {
		bifVals[i] = float64(bif[i])
		area[i] = 1.0 / (1.0 + 0.01*float64(i))
	}
	data := fields.PointData{
		ArrayBifurcationID: fields.Scalar(bifVals),
		ArrayArea:          fields.Scalar(area),
	}

	// pressure decays along the index and oscillates in time; flow is positive.
	for k := 0; k < cfg.timesteps; k++ {
		t := float64(k) * cfg.dt
		phase := 2 * math.Pi * float64(k) / float64(max(cfg.timesteps, 1))
		p := make([]float64, n)
		q := make([]float64, n)
		for i := 0; i < n; i++ {
			p[i] = fields.MmHg * (100 - 0.1*float64(i) + 5*math.Sin(phase))
			q[i] = 1 + 0.5*math.Cos(phase) + 0.001*float64(i)
		}
		suffix := strconv.FormatFloat(t, 'f', -1, 64)
		data[FieldPressure+"_"+suffix] = fields.Scalar(p)
		data[FieldFlow+"_"+suffix] = fields.Scalar(q)
	}

	return &Sample{Network: net, BifID: bif, Data: data}, nil
}

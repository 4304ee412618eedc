// SPDX-License-Identifier: MIT

package fields

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Chaztikov/gROM/tensor"
)

// Series maps a numeric timestep to per-point values.
type Series map[float64][]float64

// Gather collects the arrays named "<field>_<timestep>" into a Series.
// When no suffixed array exists, a bare "<field>" array is returned as the
// single timestep 0. Multi-component arrays contribute their first
// component. An empty Series means the field is absent.
func Gather(pd PointData, field string) Series {
	prefix := field + "_"
	out := make(Series)
	for name, a := range pd {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		t, err := strconv.ParseFloat(strings.TrimPrefix(name, prefix), 64)
		if err != nil {
			continue
		}
		out[t] = a.Component(0)
	}
	if len(out) == 0 {
		if a, ok := pd[field]; ok {
			out[0] = a.Component(0)
		}
	}
	return out
}

// Times returns the timestep keys in ascending order.
func (s Series) Times() []float64 {
	ts := make([]float64, 0, len(s))
	for t := range s {
		ts = append(ts, t)
	}
	sort.Float64s(ts)
	return ts
}

// Scale returns a new Series with every value divided by div.
func (s Series) Scale(div float64) Series {
	out := make(Series, len(s))
	for t, v := range s {
		nv := make([]float64, len(v))
		for i, x := range v {
			nv[i] = x / div
		}
		out[t] = nv
	}
	return out
}

// RescaleTime returns a new Series whose keys are multiplied by step.
func (s Series) RescaleTime(step float64) Series {
	out := make(Series, len(s))
	for t, v := range s {
		out[t*step] = append([]float64(nil), v...)
	}
	return out
}

// Select re-indexes every timestep by idx.
func (s Series) Select(idx []int) (Series, error) {
	out := make(Series, len(s))
	for t, v := range s {
		nv := make([]float64, len(idx))
		for k, i := range idx {
			if i < 0 || i >= len(v) {
				return nil, fmt.Errorf("%w: %d (len %d) at t=%g", ErrIndexOutOfRange, i, len(v), t)
			}
			nv[k] = v[i]
		}
		out[t] = nv
	}
	return out, nil
}

// Tensor stacks the series into an N×T matrix whose columns follow the
// ascending timestep order, keeping every subsample-th column. It also
// returns dt = (t1 - t0) · subsample.
func (s Series) Tensor(subsample int) (*tensor.Dense, float64, error) {
	if subsample <= 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrBadSubsample, subsample)
	}
	if len(s) == 0 {
		return nil, 0, ErrEmptySeries
	}
	ts := s.Times()
	if len(ts) < 2 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrTooFewTimesteps, len(ts))
	}
	n := len(s[ts[0]])
	full, err := tensor.NewDense(n, len(ts))
	if err != nil {
		return nil, 0, err
	}
	for j, t := range ts {
		v := s[t]
		if len(v) != n {
			return nil, 0, fmt.Errorf("%w: t=%g has %d values, want %d", ErrLengthMismatch, t, len(v), n)
		}
		for i, x := range v {
			if err := full.Set(i, j, x); err != nil {
				return nil, 0, fmt.Errorf("fields: t=%g point %d: %w", t, i, err)
			}
		}
	}
	dt := (ts[1] - ts[0]) * float64(subsample)
	if subsample == 1 {
		return full, dt, nil
	}
	out, err := full.StrideCols(subsample)
	if err != nil {
		return nil, 0, err
	}
	return out, dt, nil
}

// SPDX-License-Identifier: MIT

package fields

import (
	"errors"
	"fmt"
)

// MmHg is the factor converting dyn/cm² pressure values to mmHg.
const MmHg = 1333.2

// Sentinel errors for field handling.
var (
	// ErrMissingArray indicates a required named array is absent.
	ErrMissingArray = errors.New("fields: missing array")

	// ErrBadComponents indicates values whose length is not a multiple of
	// the component count.
	ErrBadComponents = errors.New("fields: bad component count")

	// ErrIndexOutOfRange indicates a selection index outside the array.
	ErrIndexOutOfRange = errors.New("fields: index out of range")

	// ErrEmptySeries indicates a series without timesteps.
	ErrEmptySeries = errors.New("fields: empty series")

	// ErrTooFewTimesteps indicates fewer than two timesteps, so no dt exists.
	ErrTooFewTimesteps = errors.New("fields: need at least two timesteps")

	// ErrLengthMismatch indicates timesteps with different point counts.
	ErrLengthMismatch = errors.New("fields: per-timestep lengths differ")

	// ErrBadSubsample indicates a non-positive time subsampling factor.
	ErrBadSubsample = errors.New("fields: subsample must be positive")
)

// Array is a named per-point array with one or more components per point.
type Array struct {
	Components int
	Values     []float64
}

// NewArray validates that len(values) is a multiple of components.
func NewArray(components int, values []float64) (Array, error) {
	if components <= 0 || len(values)%components != 0 {
		return Array{}, fmt.Errorf("%w: %d values, %d components", ErrBadComponents, len(values), components)
	}
	return Array{Components: components, Values: values}, nil
}

// Scalar wraps a one-component array.
func Scalar(values []float64) Array {
	return Array{Components: 1, Values: values}
}

// Tuples returns the number of points the array covers.
func (a Array) Tuples() int {
	if a.Components <= 0 {
		return 0
	}
	return len(a.Values) / a.Components
}

// Component returns a copy of component c for every point.
func (a Array) Component(c int) []float64 {
	n := a.Tuples()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a.Values[i*a.Components+c]
	}
	return out
}

// Select returns the tuples at idx, in order.
func (a Array) Select(idx []int) (Array, error) {
	n := a.Tuples()
	out := make([]float64, 0, len(idx)*a.Components)
	for _, i := range idx {
		if i < 0 || i >= n {
			return Array{}, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, n)
		}
		out = append(out, a.Values[i*a.Components:(i+1)*a.Components]...)
	}
	return Array{Components: a.Components, Values: out}, nil
}

// PointData maps array names to arrays.
type PointData map[string]Array

// Select re-indexes every array by idx into a fresh PointData.
func (pd PointData) Select(idx []int) (PointData, error) {
	out := make(PointData, len(pd))
	for name, a := range pd {
		s, err := a.Select(idx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = s
	}
	return out, nil
}

// Scalars returns the first component of the named array.
func (pd PointData) Scalars(name string) ([]float64, error) {
	a, ok := pd[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingArray, name)
	}
	return a.Component(0), nil
}

// Ints returns the first component of the named array rounded to int.
func (pd PointData) Ints(name string) ([]int, error) {
	vals, err := pd.Scalars(name)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(vals))
	for i, v := range vals {
		if v < 0 {
			out[i] = int(v - 0.5)
		} else {
			out[i] = int(v + 0.5)
		}
	}
	return out, nil
}

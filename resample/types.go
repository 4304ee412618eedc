// SPDX-License-Identifier: MIT

package resample

import (
	"errors"
	"math"

	"github.com/Chaztikov/gROM/network"
)

// Sentinel errors returned by the resampler.
var (
	// ErrNilNetwork indicates that a nil *network.Network was passed.
	ErrNilNetwork = errors.New("resample: network is nil")

	// ErrCapOutOfRange indicates that a cap offset fell outside [0, N).
	ErrCapOutOfRange = errors.New("resample: cap removal reaches outside the network")

	// ErrNothingToCollapse indicates that collapse iterations remained but
	// no edge with positive length was left.
	ErrNothingToCollapse = errors.New("resample: no positive-length edge left to collapse")

	// ErrLostOutlets indicates that merges left the resampled network with
	// fewer outlets than the input had.
	ErrLostOutlets = errors.New("resample: resampled network lost outlets")

	// ErrGaveUp indicates that Adaptive failed even at keep fraction 1.
	ErrGaveUp = errors.New("resample: no usable network at full resolution")
)

const (
	// DefaultKeepFraction is the starting fraction of points to keep.
	DefaultKeepFraction = 0.08

	// DefaultCapRemoval is the number of points trimmed at every boundary.
	DefaultCapRemoval = 3

	// minEdgeLength edges at or below this length are ignored by the collapse.
	minEdgeLength = 1e-13

	// tieTolerance edges this close to the minimum are considered equal.
	tieTolerance = 1e-12
)

// Result is a resampled network.
//
// Kept lists, in ascending order, the original index of every surviving
// point: new point i is old point Kept[i]. Indices is expressed in the new
// numbering.
type Result struct {
	Kept         []int
	Network      *network.Network
	Indices      network.Indices
	KeepFraction float64
}

// Options configures a resampling run.
//
// KeepFraction – fraction of points kept by the collapse step, in (0, 1].
// CapRemoval   – points trimmed after the inlet and before each outlet.
// OnRetry      – Adaptive calls it before every retry with the failed
//
//	fraction and the reason.
type Options struct {
	KeepFraction float64
	CapRemoval   int
	OnRetry      func(keep float64, err error)
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithKeepFraction sets the fraction of points to keep. Panics unless
// 0 < f ≤ 1.
func WithKeepFraction(f float64) Option {
	if !(f > 0 && f <= 1) || math.IsNaN(f) {
		panic("resample: WithKeepFraction(f) requires 0 < f <= 1")
	}
	return func(o *Options) {
		o.KeepFraction = f
	}
}

// WithCapRemoval sets the cap removal count. Panics on negative c.
func WithCapRemoval(c int) Option {
	if c < 0 {
		panic("resample: WithCapRemoval(c<0)")
	}
	return func(o *Options) {
		o.CapRemoval = c
	}
}

// WithOnRetry installs a retry hook for Adaptive.
func WithOnRetry(fn func(keep float64, err error)) Option {
	return func(o *Options) {
		o.OnRetry = fn
	}
}

// DefaultOptions returns keep 0.08 and cap removal 3.
func DefaultOptions() Options {
	return Options{
		KeepFraction: DefaultKeepFraction,
		CapRemoval:   DefaultCapRemoval,
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

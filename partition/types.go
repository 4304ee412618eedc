// SPDX-License-Identifier: MIT

package partition

import (
	"context"
	"errors"
	"math/rand"

	"github.com/Chaztikov/gROM/fields"
	"github.com/Chaztikov/gROM/network"
)

// Sentinel errors for partitioning.
var (
	// ErrNilNetwork is returned if a nil network pointer is passed.
	ErrNilNetwork = errors.New("partition: network is nil")

	// ErrLengthMismatch is returned when the bifurcation ids do not match
	// the number of points.
	ErrLengthMismatch = errors.New("partition: bifurcation ids do not match points")

	// ErrNeedRandSource is returned when a random root must be drawn and no
	// random source was configured (WithSeed/WithRand).
	ErrNeedRandSource = errors.New("partition: rng is required")
)

// DefaultMaxStraight is the number of extra roots drawn among branch points.
const DefaultMaxStraight = 2

// Partition is one sub-network in local numbering: local point i is
// original point Sampling[i].
type Partition struct {
	Root     int
	Sampling []int
	Network  *network.Network
	BifID    []int
	Data     fields.PointData
}

// Option configures partitioning via functional arguments.
type Option func(*Options)

// Options holds the random source and the cancellation context.
type Options struct {
	// Ctx allows cancellation between traversal steps.
	Ctx context.Context

	// Rand draws the random roots. Required when more than one partition
	// is requested.
	Rand *rand.Rand

	// MaxStraight caps the roots drawn among ordinary branch points.
	MaxStraight int
}

// DefaultOptions returns a background context, no random source and
// MaxStraight = 2.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxStraight: DefaultMaxStraight,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("partition: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithMaxStraight sets how many roots may be drawn among branch points.
// Panics on negative k.
func WithMaxStraight(k int) Option {
	if k < 0 {
		panic("partition: WithMaxStraight(k<0)")
	}
	return func(o *Options) {
		o.MaxStraight = k
	}
}

// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNilNetwork indicates that a nil *network.Network was passed.
	ErrNilNetwork = errors.New("dijkstra: network is nil")

	// ErrSourceOutOfRange indicates a source index outside [0, N).
	ErrSourceOutOfRange = errors.New("dijkstra: source index out of range")

	// ErrUnreachableNode indicates that at least one point kept an infinite
	// distance after the search finished.
	ErrUnreachableNode = errors.New("dijkstra: unreachable node")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// UnreachableNodeError reports the points left at infinite distance from
// Source. It matches ErrUnreachableNode under errors.Is.
type UnreachableNodeError struct {
	Source int
	Nodes  []int
}

// Error implements error.
func (e *UnreachableNodeError) Error() string {
	const maxListed = 8
	if len(e.Nodes) > maxListed {
		return fmt.Sprintf("dijkstra: %d points unreachable from %d (first %v)", len(e.Nodes), e.Source, e.Nodes[:maxListed])
	}
	return fmt.Sprintf("dijkstra: %d points unreachable from %d %v", len(e.Nodes), e.Source, e.Nodes)
}

// Is reports whether target is ErrUnreachableNode.
func (e *UnreachableNodeError) Is(target error) bool { return target == ErrUnreachableNode }

// NoPredecessor marks the source and unreachable points in the predecessor array.
const NoPredecessor = -1

// Options configures a shortest-path query.
//
// AllowUnreachable – if true, infinite distances are returned without error.
// MaxDistance      – points farther than this are left at +Inf. Setting it
//
//	implies AllowUnreachable. Default is +Inf (no cap).
type Options struct {
	AllowUnreachable bool
	MaxDistance      float64
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithAllowUnreachable disables the unreachable-point postcondition.
func WithAllowUnreachable() Option {
	return func(o *Options) {
		o.AllowUnreachable = true
	}
}

// WithMaxDistance stops exploration beyond max. Panics if max is negative
// or NaN, since such a cap is a programming error.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
		o.AllowUnreachable = true
	}
}

// DefaultOptions returns the defaults: strict reachability, no distance cap.
func DefaultOptions() Options {
	return Options{
		AllowUnreachable: false,
		MaxDistance:      math.Inf(1),
	}
}

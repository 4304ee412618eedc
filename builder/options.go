// SPDX-License-Identifier: MIT
// Package: gROM/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes a constructor by mutating its config before building.
type Option func(*config)

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSpacing sets the distance between consecutive points (>0).
func WithSpacing(s float64) Option {
	if s <= 0 {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *config) {
		c.spacing = s
	}
}

// WithJitter perturbs every coordinate with Gaussian noise of the given
// standard deviation (>=0). Requires an RNG.
func WithJitter(sigma float64) Option {
	if sigma < 0 {
		panic("builder: WithJitter(sigma<0)")
	}
	return func(c *config) {
		c.jitter = sigma
	}
}

// WithTimesteps sets how many timesteps of pressure/flow are generated and
// the step between their keys (count>=0, dt>0).
func WithTimesteps(count int, dt float64) Option {
	if count < 0 || dt <= 0 {
		panic("builder: WithTimesteps(count<0 or dt<=0)")
	}
	return func(c *config) {
		c.timesteps = count
		c.dt = dt
	}
}

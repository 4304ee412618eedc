// SPDX-License-Identifier: MIT
// Package: gROM/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil   (no randomness unless seeded)
//   • spacing   = 1.0
//   • jitter    = 0.0
//   • timesteps = 3, dt = 0.01

package builder

import "math/rand"

const (
	defaultSpacing   = 1.0
	defaultTimesteps = 3
	defaultDt        = 0.01
)

// config aggregates all knobs used by constructors.
type config struct {
	rng       *rand.Rand
	spacing   float64
	jitter    float64
	timesteps int
	dt        float64
}

// newConfig applies opts over the defaults, last option wins.
func newConfig(opts ...Option) config {
	cfg := config{
		spacing:   defaultSpacing,
		timesteps: defaultTimesteps,
		dt:        defaultDt,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// SPDX-License-Identifier: MIT

// Package builder contains unit tests for the configuration primitives
// (config and Option) to ensure correct application and override behavior.
package builder

import (
	"errors"
	"math/rand"
	"testing"
)

// TestNewConfigDefaults verifies the deterministic defaults.
func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.spacing != defaultSpacing || cfg.jitter != 0 {
		t.Errorf("default geometry: spacing=%v jitter=%v", cfg.spacing, cfg.jitter)
	}
	if cfg.timesteps != defaultTimesteps || cfg.dt != defaultDt {
		t.Errorf("default series: timesteps=%d dt=%v", cfg.timesteps, cfg.dt)
	}
}

// TestOptionsLastWins verifies that options are applied in order.
func TestOptionsLastWins(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(9))
	cfg := newConfig(WithSpacing(2), WithSeed(1), WithRand(r), WithSpacing(0.5), WithTimesteps(4, 0.2))
	if cfg.rng != r {
		t.Errorf("WithRand should override WithSeed")
	}
	if cfg.spacing != 0.5 {
		t.Errorf("spacing: expected 0.5, got %v", cfg.spacing)
	}
	if cfg.timesteps != 4 || cfg.dt != 0.2 {
		t.Errorf("timesteps: expected (4, 0.2), got (%d, %v)", cfg.timesteps, cfg.dt)
	}
}

// TestValidateMin checks the error contract of the shared validator.
func TestValidateMin(t *testing.T) {
	t.Parallel()

	if err := validateMin(methodLine, "n", 2, 2); err != nil {
		t.Fatalf("n=2: unexpected error %v", err)
	}
	err := validateMin(methodLine, "n", 1, 2)
	if !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("n=1: expected ErrTooFewPoints, got %v", err)
	}
	if got, want := err.Error(), "Line: n=1 < min=2: builder: parameter too small"; got != want {
		t.Errorf("message: got %q, want %q", got, want)
	}
	if validateAll(nil, err, errors.New("later")) != err {
		t.Errorf("validateAll should return the first failure")
	}
}

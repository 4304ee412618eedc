// SPDX-License-Identifier: MIT
// Package: gROM/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; context is attached with %w.
//   • Constructors never panic; option constructors panic on nonsense input.

package builder

import "errors"

// ErrTooFewPoints indicates that a size parameter is below its minimum.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that jitter was requested without an RNG
// (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Chaztikov/gROM/fields"
	"github.com/Chaztikov/gROM/metrics"
)

// Array and field names read from the input meshes.
const (
	ArrayBifurcationID = "BifurcationId"
	FieldArea          = "area"
	FieldPressure      = "pressure"
	FieldFlow          = "flow"
	FieldVelocity      = "velocity"
)

// MeshExtension is the suffix of the input files Run picks up.
const MeshExtension = ".vtp"

// ErrMissingArray is returned when a required point array is absent.
var ErrMissingArray = errors.New("pipeline: missing required array")

// FileResult describes one processed input file.
type FileResult struct {
	Path         string
	Points       int // after resampling
	KeepFraction float64
	Partitions   int
	Written      []string
	Failed       int
}

// Summary aggregates a whole run.
type Summary struct {
	RunID            uuid.UUID
	Files            int
	FilesFailed      int
	Partitions       int
	PartitionsFailed int
}

// Option configures a Runner.
type Option func(*Runner)

// WithMetrics records into reg instead of a private registry.
func WithMetrics(reg *metrics.Registry) Option {
	if reg == nil {
		panic("pipeline: WithMetrics(nil)")
	}
	return func(r *Runner) { r.metrics = reg }
}

// WithTimeTable rescales timestep keys of the files listed in tt.
func WithTimeTable(tt fields.TimeTable) Option {
	return func(r *Runner) { r.times = tt }
}

// WithRunID fixes the run identifier stamped into artifacts.
func WithRunID(id uuid.UUID) Option {
	return func(r *Runner) { r.runID = id }
}

// WithClock overrides the artifact creation time source.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("pipeline: WithClock(nil)")
	}
	return func(r *Runner) { r.now = now }
}

// SPDX-License-Identifier: MIT

// Package metrics exposes the Prometheus counters and histograms of a
// graph-building run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status label values.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Registry holds all metrics for a run
type Registry struct {
	FilesTotal           *prometheus.CounterVec
	PartitionsTotal      *prometheus.CounterVec
	ResampleRetriesTotal prometheus.Counter
	StageDuration        *prometheus.HistogramVec
	GraphPoints          prometheus.Histogram
	GraphEdges           prometheus.Histogram

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.FilesTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vascgraph_files_total",
			Help: "Input files processed, by status",
		},
		[]string{"status"},
	)
	r.PartitionsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vascgraph_partitions_total",
			Help: "Partitions assembled, by status",
		},
		[]string{"status"},
	)
	r.ResampleRetriesTotal = f.NewCounter(
		prometheus.CounterOpts{
			Name: "vascgraph_resample_retries_total",
			Help: "Resampling attempts retried with a larger keep fraction",
		},
	)
	r.StageDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vascgraph_stage_duration_seconds",
			Help:    "Duration of pipeline stages in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120},
		},
		[]string{"stage"},
	)
	r.GraphPoints = f.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vascgraph_graph_points",
			Help:    "Points per written graph",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000},
		},
	)
	r.GraphEdges = f.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vascgraph_graph_edges",
			Help:    "Edges per written graph",
			Buckets: []float64{10, 100, 1000, 10000, 50000},
		},
	)
	return r
}

// RecordFile counts a processed file.
func (r *Registry) RecordFile(status string) { r.FilesTotal.WithLabelValues(status).Inc() }

// RecordPartition counts an assembled partition.
func (r *Registry) RecordPartition(status string) { r.PartitionsTotal.WithLabelValues(status).Inc() }

// RecordRetry counts a resampling retry.
func (r *Registry) RecordRetry() { r.ResampleRetriesTotal.Inc() }

// ObserveStage records how long a stage took.
func (r *Registry) ObserveStage(stage string, d time.Duration) {
	r.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// ObserveGraph records the size of a written graph.
func (r *Registry) ObserveGraph(points, edges int) {
	r.GraphPoints.Observe(float64(points))
	r.GraphEdges.Observe(float64(edges))
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile dumps every metric in the text exposition format, for the
// node_exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

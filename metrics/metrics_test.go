// SPDX-License-Identifier: MIT

package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r.FilesTotal)
	require.NotNil(t, r.StageDuration)
	require.NotNil(t, r.registry)
}

func TestRecorders(t *testing.T) {
	r := NewRegistry()
	r.RecordFile(StatusOK)
	r.RecordFile(StatusOK)
	r.RecordFile(StatusFailed)
	r.RecordPartition(StatusOK)
	r.RecordPartition(StatusFailed)
	r.RecordRetry()
	r.ObserveStage("resample", 20*time.Millisecond)
	r.ObserveGraph(120, 900)

	families, err := r.GetPrometheusRegistry().Gather()
	require.NoError(t, err)
	counters := map[string]float64{}
	samples := map[string]uint64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range m.GetLabel() {
				name += "/" + lp.GetValue()
			}
			if c := m.GetCounter(); c != nil {
				counters[name] = c.GetValue()
			}
			if h := m.GetHistogram(); h != nil {
				samples[name] = h.GetSampleCount()
			}
		}
	}

	assert.Equal(t, 2.0, counters["vascgraph_files_total/ok"])
	assert.Equal(t, 1.0, counters["vascgraph_files_total/failed"])
	assert.Equal(t, 1.0, counters["vascgraph_partitions_total/ok"])
	assert.Equal(t, 1.0, counters["vascgraph_partitions_total/failed"])
	assert.Equal(t, 1.0, counters["vascgraph_resample_retries_total"])
	assert.Equal(t, uint64(1), samples["vascgraph_stage_duration_seconds/resample"])
	assert.Equal(t, uint64(1), samples["vascgraph_graph_edges"])
	assert.Equal(t, uint64(1), samples["vascgraph_graph_points"])

	// graph sizes are histograms only; ok partitions are already counted
	for name := range counters {
		assert.False(t, strings.HasPrefix(name, "vascgraph_graph"), name)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.RecordFile(StatusOK)
	path := filepath.Join(t.TempDir(), "vascgraph.prom")

	require.NoError(t, r.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `vascgraph_files_total{status="ok"} 1`))
}

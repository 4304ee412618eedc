// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chaztikov/gROM/config"
)

func TestParse_OverDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
input_dir: /data/vtps
output: s3://graphs/run1
keep_fraction: 0.16
workers: 8
junction_edges: false
log:
  format: json
`))
	require.NoError(t, err)

	assert.Equal(t, "/data/vtps", cfg.InputDir)
	assert.Equal(t, 0.16, cfg.KeepFraction)
	assert.Equal(t, 8, cfg.Workers)
	assert.False(t, cfg.JunctionEdges)
	assert.True(t, cfg.BoundaryEdges)
	assert.Equal(t, 3, cfg.CapRemoval)
	assert.Equal(t, 2, cfg.MaxPartitions)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 1333.2, cfg.PressureScale)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, filepath.Join("/data/vtps", "timesteps.json"), cfg.TimestepsPath())
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("input_dir: x\nkeep: 0.5\n"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestValidate(t *testing.T) {
	base := config.Default()
	base.InputDir, base.Output = "in", "out"
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"missing input", func(c *config.Config) { c.InputDir = "" }},
		{"keep zero", func(c *config.Config) { c.KeepFraction = 0 }},
		{"keep above one", func(c *config.Config) { c.KeepFraction = 1.5 }},
		{"no workers", func(c *config.Config) { c.Workers = 0 }},
		{"bad subsample", func(c *config.Config) { c.Subsample = 0 }},
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *config.Config) { c.Log.Format = "xml" }},
		{"half credentials", func(c *config.Config) { c.S3.AccessKey = "AKIA" }},
		{"bad endpoint", func(c *config.Config) { c.S3.Endpoint = "not a url" }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_dir: a\noutput: b\ntimesteps_file: /t.json\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/t.json", cfg.TimestepsPath())

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

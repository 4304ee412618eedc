// SPDX-License-Identifier: MIT

// Package config loads and validates the settings of a graph-building run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Chaztikov/gROM/fields"
	"github.com/Chaztikov/gROM/partition"
	"github.com/Chaztikov/gROM/resample"
)

// DefaultTimestepsFile is looked up in the input directory when no
// timestep table is configured.
const DefaultTimestepsFile = "timesteps.json"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New()

// Config is the full run configuration.
type Config struct {
	InputDir      string `yaml:"input_dir" validate:"required"`
	Output        string `yaml:"output" validate:"required"`
	TimestepsFile string `yaml:"timesteps_file"`

	KeepFraction  float64 `yaml:"keep_fraction" validate:"gt=0,lte=1"`
	CapRemoval    int     `yaml:"cap_removal" validate:"gte=0"`
	MaxPartitions int     `yaml:"max_partitions" validate:"gte=0"`
	MaxStraight   int     `yaml:"max_straight" validate:"gte=0"`
	Seed          int64   `yaml:"seed"`
	Workers       int     `yaml:"workers" validate:"gte=1,lte=256"`

	BoundaryEdges bool    `yaml:"boundary_edges"`
	JunctionEdges bool    `yaml:"junction_edges"`
	Subsample     int     `yaml:"subsample" validate:"gte=1"`
	PressureScale float64 `yaml:"pressure_scale" validate:"gt=0"`

	Log         LogConfig `yaml:"log"`
	MetricsFile string    `yaml:"metrics_file"`
	S3          S3Config  `yaml:"s3"`
}

// LogConfig selects the log level and handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// S3Config overrides the AWS defaults for s3:// outputs.
type S3Config struct {
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint" validate:"omitempty,url"`
	AccessKey string `yaml:"access_key" validate:"required_with=SecretKey"`
	SecretKey string `yaml:"secret_key" validate:"required_with=AccessKey"`
}

// Default returns the batch defaults: keep 0.08, cap removal 3, two partitions.
func Default() Config {
	return Config{
		KeepFraction:  resample.DefaultKeepFraction,
		CapRemoval:    resample.DefaultCapRemoval,
		MaxPartitions: 2,
		MaxStraight:   partition.DefaultMaxStraight,
		Seed:          1,
		Workers:       4,
		BoundaryEdges: true,
		JunctionEdges: true,
		Subsample:     1,
		PressureScale: fields.MmHg,
		Log:           LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
// The result is not validated; call Validate after applying overrides.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// TimestepsPath returns the configured timestep table, or the default file
// in the input directory.
func (c Config) TimestepsPath() string {
	if c.TimestepsFile != "" {
		return c.TimestepsFile
	}
	return filepath.Join(c.InputDir, DefaultTimestepsFile)
}

// Validate checks c against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for _, e := range verrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required", "required_with":
			return fmt.Errorf("%w: %s is required", ErrInvalid, field)
		case "gt", "gte":
			return fmt.Errorf("%w: %s must be %s %s", ErrInvalid, field, e.Tag(), e.Param())
		case "lte":
			return fmt.Errorf("%w: %s must not exceed %s", ErrInvalid, field, e.Param())
		case "oneof":
			return fmt.Errorf("%w: %s must be one of [%s]", ErrInvalid, field, e.Param())
		default:
			return fmt.Errorf("%w: %s failed %s", ErrInvalid, field, e.Tag())
		}
	}
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}

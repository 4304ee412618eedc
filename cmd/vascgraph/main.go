// SPDX-License-Identifier: MIT

// Command vascgraph converts a directory of vascular centerline meshes into
// attributed graph artifacts.
//
//	vascgraph -config run.yaml
//	vascgraph -in ./meshes -out s3://bucket/graphs -keep 0.1 -partitions 4
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Chaztikov/gROM/config"
	"github.com/Chaztikov/gROM/logging"
	"github.com/Chaztikov/gROM/pipeline"
	"github.com/Chaztikov/gROM/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Stderr, os.Args[1:]); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "vascgraph:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("vascgraph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configFile    = fs.String("config", "", "YAML configuration file")
		inputDir      = fs.String("in", "", "Directory of .vtp meshes")
		output        = fs.String("out", "", "Output directory or s3://bucket/prefix")
		keep          = fs.Float64("keep", 0, "Initial resampling keep fraction")
		caps          = fs.Int("caps", 0, "Points removed next to every boundary")
		partitions    = fs.Int("partitions", 0, "Maximum partitions per network")
		seed          = fs.Int64("seed", 0, "Partition root seed")
		workers       = fs.Int("workers", 0, "Files processed in parallel")
		subsample     = fs.Int("subsample", 0, "Keep every n-th timestep")
		boundaryEdges = fs.Bool("boundary-edges", true, "Synthesize boundary edges")
		junctionEdges = fs.Bool("junction-edges", true, "Synthesize junction edges")
		logLevel      = fs.String("log-level", "", "debug, info, warn or error")
		logFormat     = fs.String("log-format", "", "text or json")
		metricsFile   = fs.String("metrics", "", "Write Prometheus metrics to this file")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return err
		}
	}
	// flags given on the command line override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.InputDir = *inputDir
		case "out":
			cfg.Output = *output
		case "keep":
			cfg.KeepFraction = *keep
		case "caps":
			cfg.CapRemoval = *caps
		case "partitions":
			cfg.MaxPartitions = *partitions
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		case "subsample":
			cfg.Subsample = *subsample
		case "boundary-edges":
			cfg.BoundaryEdges = *boundaryEdges
		case "junction-edges":
			cfg.JunctionEdges = *junctionEdges
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		case "metrics":
			cfg.MetricsFile = *metricsFile
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	ctx = logging.WithLogger(ctx, log)

	st, err := store.Open(ctx, cfg.Output, store.S3Config{
		Region:    cfg.S3.Region,
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
	})
	if err != nil {
		return err
	}
	times, err := pipeline.LoadTimeTable(cfg.TimestepsPath())
	if err != nil {
		return err
	}

	sum, err := pipeline.New(cfg, st, pipeline.WithTimeTable(times)).Run(ctx)
	if err != nil {
		return err
	}
	if sum.FilesFailed > 0 {
		return fmt.Errorf("%d of %d files failed", sum.FilesFailed, sum.Files)
	}
	return nil
}

// SPDX-License-Identifier: MIT

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Chaztikov/gROM/artifact"
	"github.com/Chaztikov/gROM/assemble"
	"github.com/Chaztikov/gROM/config"
	"github.com/Chaztikov/gROM/fields"
	"github.com/Chaztikov/gROM/logging"
	"github.com/Chaztikov/gROM/metrics"
	"github.com/Chaztikov/gROM/network"
	"github.com/Chaztikov/gROM/partition"
	"github.com/Chaztikov/gROM/resample"
	"github.com/Chaztikov/gROM/store"
	"github.com/Chaztikov/gROM/vtp"
)

// Runner processes mesh files with one configuration and one output store.
// A Runner is safe for concurrent ProcessFile calls.
type Runner struct {
	cfg     config.Config
	store   store.Store
	times   fields.TimeTable
	metrics *metrics.Registry
	runID   uuid.UUID
	now     func() time.Time
}

// New returns a Runner writing into st. cfg is expected to be validated.
func New(cfg config.Config, st store.Store, opts ...Option) *Runner {
	if st == nil {
		panic("pipeline: nil store")
	}
	r := &Runner{
		cfg:   cfg,
		store: st,
		runID: uuid.New(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.metrics == nil {
		r.metrics = metrics.NewRegistry()
	}
	return r
}

// RunID identifies the run in logs and artifacts.
func (r *Runner) RunID() uuid.UUID { return r.runID }

// Metrics returns the registry the runner records into.
func (r *Runner) Metrics() *metrics.Registry { return r.metrics }

// Run processes every mesh in the configured input directory with at most
// cfg.Workers files in flight. File failures are logged and counted; only
// context cancellation stops the run early.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	sum := Summary{RunID: r.runID}
	files, err := ListMeshes(r.cfg.InputDir)
	if err != nil {
		return sum, err
	}
	log := logging.FromContext(ctx).With(logging.RunID(r.runID.String()))
	log.Info("run started", slog.Int("files", len(files)), slog.String("input", r.cfg.InputDir))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.cfg.Workers, 1))
	for _, path := range files {
		g.Go(func() error {
			res, err := r.ProcessFile(gctx, path)
			mu.Lock()
			defer mu.Unlock()
			sum.Files++
			sum.Partitions += len(res.Written)
			sum.PartitionsFailed += res.Failed
			if err != nil {
				sum.FilesFailed++
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
			}
			return nil
		})
	}
	err = g.Wait()

	if r.cfg.MetricsFile != "" {
		if werr := r.metrics.WriteTextfile(r.cfg.MetricsFile); werr != nil {
			log.Error("metrics not written", logging.Err(werr))
		}
	}
	log.Info("run finished",
		slog.Int("files", sum.Files),
		slog.Int("files_failed", sum.FilesFailed),
		slog.Int("partitions", sum.Partitions),
		slog.Int("partitions_failed", sum.PartitionsFailed),
	)
	return sum, err
}

// ProcessFile converts one mesh into partition artifacts. The returned
// error is non-nil when the file as a whole could not be processed;
// partition failures only show up in FileResult.Failed.
func (r *Runner) ProcessFile(ctx context.Context, path string) (FileResult, error) {
	res := FileResult{Path: path}
	base := filepath.Base(path)
	log := logging.FromContext(ctx).With(logging.File(base), logging.RunID(r.runID.String()))

	err := r.processFile(logging.WithLogger(ctx, log), path, &res)
	if err != nil {
		r.metrics.RecordFile(metrics.StatusFailed)
		log.Error("file skipped", logging.Err(err))
		return res, err
	}
	r.metrics.RecordFile(metrics.StatusOK)
	log.Info("file done",
		logging.Points(res.Points),
		logging.KeepFraction(res.KeepFraction),
		slog.Int("written", len(res.Written)),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}

func (r *Runner) processFile(ctx context.Context, path string, res *FileResult) error {
	log := logging.FromContext(ctx)
	base := filepath.Base(path)

	start := time.Now()
	mesh, err := vtp.Load(path)
	if err != nil {
		return err
	}
	if _, ok := mesh.Data[ArrayBifurcationID]; !ok {
		return fmt.Errorf("%w: %s", ErrMissingArray, ArrayBifurcationID)
	}
	r.observe(ctx, "load", start)

	ix := network.FindBoundaries(mesh.Network.Edges)
	if err := ix.Validate(); err != nil {
		return err
	}

	start = time.Now()
	rs, err := resample.Adaptive(mesh.Network, ix,
		resample.WithKeepFraction(r.cfg.KeepFraction),
		resample.WithCapRemoval(r.cfg.CapRemoval),
		resample.WithOnRetry(func(keep float64, err error) {
			r.metrics.RecordRetry()
			log.Warn("resampling retried", logging.KeepFraction(keep), logging.Err(err))
		}),
	)
	if err != nil {
		return err
	}
	r.observe(ctx, "resample", start)
	res.Points = rs.Network.Len()
	res.KeepFraction = rs.KeepFraction

	data, err := mesh.Data.Select(rs.Kept)
	if err != nil {
		return err
	}
	bif, err := data.Ints(ArrayBifurcationID)
	if err != nil {
		return err
	}

	start = time.Now()
	parts, err := partition.Split(rs.Network, bif, data, r.cfg.MaxPartitions,
		partition.WithContext(ctx),
		partition.WithSeed(r.cfg.Seed),
		partition.WithMaxStraight(r.cfg.MaxStraight),
	)
	if err != nil {
		return err
	}
	r.observe(ctx, "partition", start)
	res.Partitions = len(parts)

	for i, p := range parts {
		if err := ctx.Err(); err != nil {
			return err
		}
		name, err := r.writePartition(ctx, base, i, p)
		if err != nil {
			res.Failed++
			r.metrics.RecordPartition(metrics.StatusFailed)
			log.Error("partition skipped", logging.Partition(i), logging.Err(err))
			continue
		}
		r.metrics.RecordPartition(metrics.StatusOK)
		res.Written = append(res.Written, name)
	}
	return nil
}

// writePartition assembles, encodes and stores partition i. Nothing is
// stored unless every step succeeds.
func (r *Runner) writePartition(ctx context.Context, base string, i int, p partition.Partition) (string, error) {
	start := time.Now()
	area, err := firstStep(p.Data, FieldArea)
	if err != nil {
		return "", err
	}
	g, err := assemble.Assemble(p.Network, p.BifID, area,
		assemble.WithBoundaryEdges(r.cfg.BoundaryEdges),
		assemble.WithJunctionEdges(r.cfg.JunctionEdges),
	)
	if err != nil {
		return "", err
	}
	pressure, flow, err := r.series(base, p.Data)
	if err != nil {
		return "", err
	}
	if err := g.AttachSeries(pressure, flow, r.cfg.Subsample); err != nil {
		return "", err
	}
	r.observe(ctx, "assemble", start)

	var buf bytes.Buffer
	meta := artifact.Meta{RunID: r.runID, Source: base, Partition: i, Created: r.now().UTC()}
	if err := artifact.Encode(&buf, g, meta); err != nil {
		return "", err
	}
	name := artifact.Name(base, i)
	start = time.Now()
	if err := r.store.Put(ctx, name, buf.Bytes()); err != nil {
		return "", err
	}
	r.observe(ctx, "store", start)
	r.metrics.ObserveGraph(g.NumPoints(), g.NumEdges())
	logging.FromContext(ctx).Debug("partition written",
		logging.Partition(i),
		logging.Points(g.NumPoints()),
		logging.Edges(g.NumEdges()),
		logging.Location(r.store.Location(name)),
	)
	return name, nil
}

// observe records the duration of a finished stage and logs it.
func (r *Runner) observe(ctx context.Context, stage string, start time.Time) {
	d := time.Since(start)
	r.metrics.ObserveStage(stage, d)
	logging.FromContext(ctx).Debug("stage done", logging.Stage(stage), logging.Latency(d))
}

// series gathers pressure and flow for pd. Flow falls back to velocity.
// Pressure is divided by the configured scale and both series get their
// timestep keys rescaled when the time table lists the file.
func (r *Runner) series(base string, pd fields.PointData) (fields.Series, fields.Series, error) {
	pressure := fields.Gather(pd, FieldPressure)
	if len(pressure) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrMissingArray, FieldPressure)
	}
	flow := fields.Gather(pd, FieldFlow)
	if len(flow) == 0 {
		flow = fields.Gather(pd, FieldVelocity)
	}
	if len(flow) == 0 {
		return nil, nil, fmt.Errorf("%w: %s or %s", ErrMissingArray, FieldFlow, FieldVelocity)
	}
	pressure = pressure.Scale(r.cfg.PressureScale)
	if step, ok := r.timeStep(base); ok {
		pressure = pressure.RescaleTime(step)
		flow = flow.RescaleTime(step)
	}
	return pressure, flow, nil
}

// timeStep looks base up with and without its extension.
func (r *Runner) timeStep(base string) (float64, bool) {
	if r.times == nil {
		return 0, false
	}
	if step, ok := r.times.Step(strings.TrimSuffix(base, filepath.Ext(base))); ok {
		return step, true
	}
	return r.times.Step(base)
}

// firstStep returns the earliest timestep of a field, or its bare array.
func firstStep(pd fields.PointData, field string) ([]float64, error) {
	s := fields.Gather(pd, field)
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingArray, field)
	}
	return s[s.Times()[0]], nil
}

// ListMeshes returns the mesh files of dir in name order.
func ListMeshes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), MeshExtension) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

// LoadTimeTable reads the timestep table at path. A missing file yields a
// nil table.
func LoadTimeTable(path string) (fields.TimeTable, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	defer f.Close()
	tt, err := fields.LoadTimeTable(f)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", path, err)
	}
	return tt, nil
}

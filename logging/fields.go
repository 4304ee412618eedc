// SPDX-License-Identifier: MIT

package logging

import (
	"log/slog"
	"time"
)

// Common attribute constructors
func RunID(id string) slog.Attr { return slog.String("run_id", id) }

func File(name string) slog.Attr { return slog.String("file", name) }

func Partition(i int) slog.Attr { return slog.Int("partition", i) }

func Stage(name string) slog.Attr { return slog.String("stage", name) }

func Points(n int) slog.Attr { return slog.Int("points", n) }

func Edges(n int) slog.Attr { return slog.Int("edges", n) }

func KeepFraction(f float64) slog.Attr { return slog.Float64("keep_fraction", f) }

func Location(loc string) slog.Attr { return slog.String("location", loc) }

func Latency(d time.Duration) slog.Attr { return slog.Duration("latency", d) }

func Err(err error) slog.Attr {
	if err == nil {
		return slog.Any("error", nil)
	}
	return slog.String("error", err.Error())
}

// SPDX-License-Identifier: MIT

// Package grom builds compact attributed graphs out of 1D vascular
// centerline meshes, ready to train reduced-order surrogates that predict
// pressure and flow along a network.
//
// What is in the box?
//
//	• Arena network model: points, directed edges, inlet/outlet detection
//	• Resampling: boundary cap removal + shortest-edge collapse, with an
//	  adaptive keep-fraction back-off when a pass breaks reachability
//	• Shortest paths: an index-based Dijkstra engine over edge lengths
//	• Edge synthesis: bidirected spatial edges, boundary edges from every
//	  point to its closest inlet/outlet, junction edges driven by a small
//	  outside/entering/inside state machine
//	• Partitioning: seeded root selection and breadth-first sub-networks
//	• Assembly: one-hot point and edge types, masks, and per-point
//	  pressure/flow time series with their timestep size
//	• Artifacts: snappy-compressed, checksummed graph files on disk or S3
//
// The subpackages, bottom-up:
//
//	network/     Vec3, Edge, Network, Indices, boundary identification
//	dijkstra/    single-source shortest paths, UnreachableNodeError
//	resample/    Resample and the retrying Adaptive driver
//	features/    spatial, boundary and junction edge sets, point types
//	partition/   Roots and Split
//	tensor/      dense row-major matrices
//	fields/      named point arrays, time series, timestep tables
//	assemble/    Graph, Assemble, AttachSeries
//	artifact/    Encode/Decode of finished graphs
//	store/       filesystem and S3 artifact stores
//	vtp/         VTK XML PolyData reader/writer (ASCII)
//	pipeline/    per-file processing and the parallel directory run
//	builder/     synthetic Line, Y and Tree networks for tests
//	config/, logging/, metrics/   YAML config, slog, Prometheus
//
// A Y-shaped network (builder.Y(2, 2, 2, 1)): trunk 0→1, junction 2→3,
// daughters 4→5 and 6:
//
//	0──1──[2──3]──4──5
//	           └──6
//
// Run the whole pipeline from the command line:
//
//	go run ./cmd/vascgraph -in ./meshes -out ./graphs -partitions 4
package grom

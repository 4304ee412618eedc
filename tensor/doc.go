// SPDX-License-Identifier: MIT

// Package tensor provides the row-major dense storage behind every
// per-point and per-edge attribute of an assembled graph.
//
// A Dense is an r×c float64 matrix in a flat buffer (offset = i*c + j).
// Attribute layouts used by the assembler:
//
//	positions      N × 3
//	area, dt       N × 1
//	one-hot types  N × 4   (points)   E × 4 (edges)
//	rel. position  E × 3
//	time series    N × T   (stored with a unit middle axis: N × 1 × T)
//
// Public accessors return errors instead of panicking and Set rejects NaN
// and ±Inf, so an assembled graph can never carry a non-finite value.
package tensor

// SPDX-License-Identifier: MIT

// Package fields holds the per-point data carried by a vascular mesh and
// turns time-dependent arrays into fixed-length series tensors.
//
// A mesh stores one named Array per quantity and timestep, e.g.
//
//	BifurcationId, area, pressure_0.00, pressure_0.01, flow_0.00, flow_0.01
//
// Gather collects the "<field>_<timestep>" arrays of one field into a
// Series keyed by the numeric timestep. A Series is re-indexed together
// with the point cloud (Select) whenever points are resampled or
// partitioned, and finally stacked into an N×T tensor by Tensor.
package fields

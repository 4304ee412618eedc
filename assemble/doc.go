// SPDX-License-Identifier: MIT

// Package assemble builds the attributed graph stored for one partition:
// bidirected spatial edges merged with boundary and junction edges, the
// point and edge attribute tables, the masks, and the pressure and flow
// rate time series.
//
// Tables are tensor.Dense matrices with one row per point or per edge.
// Time series are N×T with columns in ascending time order.
package assemble

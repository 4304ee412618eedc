// SPDX-License-Identifier: MIT

// Package resample decimates a dense centerline network while keeping its
// topology.
//
// A run has three steps:
//
//  1. Cap removal. The first c points after the inlet and the last c points
//     before every outlet are merged into the point c steps away; outlets
//     move to outlet-c.
//  2. Edge collapse. N - ⌊N·keep⌋ times, the shortest edge with positive
//     length is collapsed. Its destination is merged into its source
//     unless the destination is a protected outlet, in which case the
//     source is merged into the destination. The first minimum in edge
//     order wins.
//  3. Resolution. Self-loops are dropped and surviving points renumbered
//     densely in their original order.
//
// Adaptive wraps Resample with the reachability check and keep-fraction
// back-off used by the graph pipeline.
package resample

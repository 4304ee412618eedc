// SPDX-License-Identifier: MIT

// Package pipeline turns a directory of vascular meshes into graph
// artifacts.
//
// Each file is processed on its own: load, adaptive resampling, partition,
// then for every partition assemble, attach series, encode and store.
// A failed partition is logged and skipped; a failed file is logged and
// the run moves on to the next one.
package pipeline

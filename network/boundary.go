// SPDX-License-Identifier: MIT

package network

// FindBoundaries returns the inlet and outlets of an out-tree edge list
// rooted at point 0.
//
// The inlet is always [0]. Outlets are the points that appear as an edge
// destination but never as a source, in order of first appearance in the
// edge list. The result is only meaningful for out-trees; callers check
// Indices.Validate before relying on it.
//
// Complexity: O(E) time, O(E) space.
func FindBoundaries(edges []Edge) Indices {
	sources := make(map[int]struct{}, len(edges))
	for _, e := range edges {
		sources[e.From] = struct{}{}
	}

	seen := make(map[int]struct{})
	outlets := make([]int, 0)
	for _, e := range edges {
		if _, ok := sources[e.To]; ok {
			continue
		}
		if _, ok := seen[e.To]; ok {
			continue
		}
		seen[e.To] = struct{}{}
		outlets = append(outlets, e.To)
	}

	return Indices{Inlet: []int{0}, Outlets: outlets}
}

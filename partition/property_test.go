// SPDX-License-Identifier: MIT

package partition_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Chaztikov/gROM/builder"
	"github.com/Chaztikov/gROM/partition"
)

// TestSplit_Properties checks local bounds and that expanded points belong
// to exactly one partition.
func TestSplit_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60
	properties := gopter.NewProperties(parameters)

	properties.Property("partitions are bounded and disjoint off the roots", prop.ForAll(
		func(levels, segment, max int, seed int64) bool {
			s, err := builder.Tree(levels, segment, 2)
			if err != nil {
				return false
			}
			parts, err := partition.Split(s.Network, s.BifID, s.Data, max, partition.WithSeed(seed))
			if err != nil {
				return false
			}
			roots := make(map[int]bool)
			for _, p := range parts {
				roots[p.Root] = true
			}
			owner := make(map[int]int)
			for k, p := range parts {
				m := len(p.Sampling)
				for _, e := range p.Network.Edges {
					if e.From < 0 || e.To < 0 || e.From >= m || e.To >= m {
						return false
					}
				}
				for _, orig := range p.Sampling {
					if orig < 0 || orig >= s.Network.Len() {
						return false
					}
					if roots[orig] {
						continue
					}
					if prev, ok := owner[orig]; ok && prev != k {
						return false
					}
					owner[orig] = k
				}
			}
			return true
		},
		gen.IntRange(0, 3),
		gen.IntRange(3, 6),
		gen.IntRange(1, 6),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

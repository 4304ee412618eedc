// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/Chaztikov/gROM/network"
)

// Roots picks up to max partition roots.
//
// Point 0 is always first. Then, for every junction exit in point order
// (a junction point followed by a branch point), the first out-edges are
// followed until the next junction; one point strictly between the exit
// and that junction is drawn at random. Walks that end at a leaf add
// nothing. If fewer than max roots were found, up to MaxStraight more are
// drawn among the remaining branch points.
func Roots(net *network.Network, bif []int, max int, opts ...Option) ([]int, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	n := net.Len()
	if len(bif) != n {
		return nil, fmt.Errorf("%w: %d ids for %d points", ErrLengthMismatch, len(bif), n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if n == 0 {
		return nil, nil
	}

	roots := []int{0}
	taken := map[int]struct{}{0: {}}
	add := func(r int) {
		roots = append(roots, r)
		taken[r] = struct{}{}
	}

	succ := net.Successors()
	for i := 0; i+1 < n && len(roots) < max; i++ {
		if bif[i] == -1 || bif[i+1] != -1 {
			continue
		}
		between := walkToJunction(succ, bif, i)
		if len(between) == 0 {
			continue
		}
		if o.Rand == nil {
			return nil, ErrNeedRandSource
		}
		r := between[o.Rand.Intn(len(between))]
		if _, dup := taken[r]; !dup {
			add(r)
		}
	}

	want := max - len(roots)
	if want > o.MaxStraight {
		want = o.MaxStraight
	}
	if want <= 0 {
		return roots, nil
	}
	var available []int
	for i, id := range bif {
		if _, dup := taken[i]; id == -1 && !dup {
			available = append(available, i)
		}
	}
	if want > len(available) {
		want = len(available)
	}
	if want == 0 {
		return roots, nil
	}
	if o.Rand == nil {
		return nil, ErrNeedRandSource
	}
	// partial Fisher-Yates
	for k := 0; k < want; k++ {
		j := k + o.Rand.Intn(len(available)-k)
		available[k], available[j] = available[j], available[k]
		add(available[k])
	}
	return roots, nil
}

// walkToJunction follows first out-edges from the junction point start and
// returns the points visited before the next junction point, or nil when
// the walk ends at a leaf.
func walkToJunction(succ [][]int, bif []int, start int) []int {
	var path []int
	for j, steps := start, 0; steps < len(bif); steps++ {
		if len(succ[j]) == 0 {
			return nil
		}
		j = succ[j][0]
		if bif[j] != -1 {
			return path
		}
		path = append(path, j)
	}
	return nil
}

// SPDX-License-Identifier: MIT

package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/Chaztikov/gROM/dijkstra"
	"github.com/Chaztikov/gROM/network"
)

// Adaptive resamples net and checks that every surviving point is
// reachable from the inlet over the bidirected network and that the result
// still has as many outlets as ix. On a recoverable
// failure the keep fraction is doubled (capped at 1) and the run restarts
// from the untouched input. Failing at keep fraction 1 returns ErrGaveUp
// wrapping the last cause.
//
// Recoverable causes: dijkstra.ErrUnreachableNode, ErrLostOutlets,
// ErrNothingToCollapse, ErrCapOutOfRange.
func Adaptive(net *network.Network, ix network.Indices, opts ...Option) (*Result, error) {
	o := buildOptions(opts)
	keep := o.KeepFraction

	for {
		res, err := Resample(net, ix, WithKeepFraction(keep), WithCapRemoval(o.CapRemoval))
		if err == nil {
			err = check(res, ix)
		}
		if err == nil {
			return res, nil
		}
		if !recoverable(err) {
			return nil, err
		}
		if keep >= 1 {
			return nil, fmt.Errorf("%w: %w", ErrGaveUp, err)
		}
		if o.OnRetry != nil {
			o.OnRetry(keep, err)
		}
		keep = math.Min(2*keep, 1)
	}
}

// check rejects a result with unreachable points, then one whose edges
// no longer end in len(ix.Outlets) distinct outlets. The outlet count is
// taken from the topology, the way assembly will see it.
func check(res *Result, ix network.Indices) error {
	source := 0
	if len(res.Indices.Inlet) > 0 {
		source = res.Indices.Inlet[0]
	}
	if _, _, err := dijkstra.ShortestPaths(res.Network.Bidirected(), source); err != nil {
		return err
	}
	if got := len(network.FindBoundaries(res.Network.Edges).Outlets); got < len(ix.Outlets) {
		return fmt.Errorf("%w: %d of %d", ErrLostOutlets, got, len(ix.Outlets))
	}
	return nil
}

func recoverable(err error) bool {
	return errors.Is(err, dijkstra.ErrUnreachableNode) ||
		errors.Is(err, ErrLostOutlets) ||
		errors.Is(err, ErrNothingToCollapse) ||
		errors.Is(err, ErrCapOutOfRange)
}

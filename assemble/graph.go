// SPDX-License-Identifier: MIT

package assemble

import (
	"errors"
	"fmt"

	"github.com/Chaztikov/gROM/network"
	"github.com/Chaztikov/gROM/tensor"
)

// Sentinel errors for graph assembly.
var (
	// ErrNilNetwork indicates that a nil network was passed.
	ErrNilNetwork = errors.New("assemble: network is nil")

	// ErrLengthMismatch indicates a per-point input of the wrong length.
	ErrLengthMismatch = errors.New("assemble: per-point input length mismatch")

	// ErrSeriesShape indicates time series that do not match the graph or
	// each other.
	ErrSeriesShape = errors.New("assemble: time series shape mismatch")
)

// Graph is an attributed vessel graph. It is complete once AttachSeries
// succeeds and is not modified after it is persisted.
type Graph struct {
	Edges   []network.Edge
	Indices network.Indices

	X         *tensor.Dense // N×3 positions
	Area      *tensor.Dense // N×1
	PointType *tensor.Dense // N×4 one-hot

	InletMask         []bool
	OutletMask        []bool
	ContinuityMask    []bool
	JunctionInletMask []bool
	JunctionMask      []bool

	RelPosition *tensor.Dense // E×3
	Distance    *tensor.Dense // E×1
	EdgeType    *tensor.Dense // E×4 one-hot

	Pressure *tensor.Dense // N×T, mmHg
	Flowrate *tensor.Dense // N×T
	Dt       []float64     // per point
}

// NumPoints returns the number of points.
func (g *Graph) NumPoints() int { return g.X.Rows() }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return len(g.Edges) }

// Timesteps returns the number of series columns, or 0 before AttachSeries.
func (g *Graph) Timesteps() int {
	if g.Pressure == nil {
		return 0
	}
	return g.Pressure.Cols()
}

// EdgeTypeCounts returns how many edges fall in each edge class.
func (g *Graph) EdgeTypeCounts() []int {
	counts := make([]int, g.EdgeType.Cols())
	for i := 0; i < g.EdgeType.Rows(); i++ {
		row, _ := g.EdgeType.Row(i)
		for k, v := range row {
			if v == 1 {
				counts[k]++
			}
		}
	}
	return counts
}

func vecTable(vs []network.Vec3) (*tensor.Dense, error) {
	m, err := tensor.NewDense(len(vs), 3)
	if err != nil {
		return nil, err
	}
	for i, v := range vs {
		for k := 0; k < 3; k++ {
			if err := m.Set(i, k, v[k]); err != nil {
				return nil, fmt.Errorf("assemble: row %d: %w", i, err)
			}
		}
	}
	return m, nil
}

// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major r×c matrix.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c zero matrix. Rows may be zero (an empty
// attribute table); columns must be positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrInvalidDimensions, rows, cols)
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromData wraps a copy of a row-major buffer of length rows·cols.
func FromData(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for %d×%d", ErrInvalidDimensions, len(data), rows, cols)
	}
	copy(m.data, data)
	return m, nil
}

// Column builds an n×1 matrix from v.
func Column(v []float64) (*Dense, error) {
	m, err := NewDense(len(v), 1)
	if err != nil {
		return nil, err
	}
	for i, x := range v {
		if err := m.Set(i, 0, x); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return m.r, m.c }

func (m *Dense) indexOf(row, col int) (int, bool) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, false
	}
	return row*m.c + col, true
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	off, ok := m.indexOf(row, col)
	if !ok {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}
	return m.data[off], nil
}

// Set stores v at (row, col). NaN and ±Inf are rejected.
func (m *Dense) Set(row, col int, v float64) error {
	off, ok := m.indexOf(row, col)
	if !ok {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v
	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxAt, i, 0, ErrOutOfRange)
	}
	return append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...), nil
}

// Data returns a copy of the row-major buffer.
func (m *Dense) Data() []float64 { return append([]float64(nil), m.data...) }

// StrideCols keeps every step-th column starting at column 0.
func (m *Dense) StrideCols(step int) (*Dense, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: stride %d", ErrInvalidDimensions, step)
	}
	cols := (m.c + step - 1) / step
	out := &Dense{r: m.r, c: cols, data: make([]float64, m.r*cols)}
	for i := 0; i < m.r; i++ {
		for k := 0; k < cols; k++ {
			out.data[i*cols+k] = m.data[i*m.c+k*step]
		}
	}
	return out, nil
}

// OneHot encodes classes as an len(classes)×k indicator matrix.
func OneHot(classes []int, k int) (*Dense, error) {
	m, err := NewDense(len(classes), k)
	if err != nil {
		return nil, err
	}
	for i, c := range classes {
		if c < 0 || c >= k {
			return nil, fmt.Errorf("%w: row %d class %d (k=%d)", ErrBadClass, i, c, k)
		}
		m.data[i*k+c] = 1
	}
	return m, nil
}

// String renders the matrix row by row.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

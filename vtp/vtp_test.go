// SPDX-License-Identifier: MIT

package vtp_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chaztikov/gROM/builder"
	"github.com/Chaztikov/gROM/network"
	"github.com/Chaztikov/gROM/vtp"
)

const polyline = `<?xml version="1.0"?>
<VTKFile type="PolyData" version="0.1" byte_order="LittleEndian">
  <PolyData>
    <Piece NumberOfPoints="4" NumberOfLines="1">
      <PointData>
        <DataArray type="Int32" Name="BifurcationId" format="ascii">-1 -1 -1 -1</DataArray>
        <DataArray type="Float32" Name="velocity_0.5" NumberOfComponents="3" format="ascii">
          1 0 0  2 0 0  3 0 0  4 0 0
        </DataArray>
      </PointData>
      <Points>
        <DataArray type="Float32" NumberOfComponents="3" format="ascii">
          0 0 0 1 0 0 2 0 0 3 0 0
        </DataArray>
      </Points>
      <Lines>
        <DataArray type="Int64" Name="connectivity" format="ascii">0 1 2 3</DataArray>
        <DataArray type="Int64" Name="offsets" format="ascii">4</DataArray>
      </Lines>
    </Piece>
  </PolyData>
</VTKFile>`

func TestRead_Polyline(t *testing.T) {
	m, err := vtp.Read(strings.NewReader(polyline))
	require.NoError(t, err)

	assert.Equal(t, 4, m.Network.Len())
	assert.Equal(t, []network.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}, m.Network.Edges)

	ids, err := m.Data.Ints("BifurcationId")
	require.NoError(t, err)
	assert.Equal(t, []int{-1, -1, -1, -1}, ids)

	v := m.Data["velocity_0.5"]
	assert.Equal(t, 3, v.Components)
	assert.Equal(t, []float64{1, 2, 3, 4}, v.Component(0))
}

func TestRead_Rejections(t *testing.T) {
	binary := strings.Replace(polyline, `Name="connectivity" format="ascii"`, `Name="connectivity" format="binary"`, 1)
	_, err := vtp.Read(strings.NewReader(binary))
	assert.ErrorIs(t, err, vtp.ErrUnsupportedEncoding)

	grid := strings.Replace(polyline, `type="PolyData"`, `type="UnstructuredGrid"`, 1)
	_, err = vtp.Read(strings.NewReader(grid))
	assert.ErrorIs(t, err, vtp.ErrNotPolyData)

	short := strings.Replace(polyline, `-1 -1 -1 -1`, `-1 -1`, 1)
	_, err = vtp.Read(strings.NewReader(short))
	assert.ErrorIs(t, err, vtp.ErrMalformed)

	badEdge := strings.Replace(polyline, `0 1 2 3</DataArray>`, `0 1 2 9</DataArray>`, 1)
	_, err = vtp.Read(strings.NewReader(badEdge))
	assert.ErrorIs(t, err, vtp.ErrMalformed)

	_, err = vtp.Read(strings.NewReader("not xml"))
	assert.ErrorIs(t, err, vtp.ErrMalformed)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	s, err := builder.Tree(2, 3, 2, builder.WithSeed(1), builder.WithJitter(0.01))
	require.NoError(t, err)
	in := &vtp.Mesh{Network: s.Network, Data: s.Data}

	var buf bytes.Buffer
	require.NoError(t, vtp.Write(&buf, in))
	out, err := vtp.Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, in.Network.Points, out.Network.Points)
	assert.Equal(t, in.Network.Edges, out.Network.Edges)
	assert.Equal(t, in.Data, out.Data)
}

func TestSaveLoad(t *testing.T) {
	s, err := builder.Line(5)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "line.vtp")

	require.NoError(t, vtp.Save(path, &vtp.Mesh{Network: s.Network, Data: s.Data}))
	m, err := vtp.Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.Network.Edges, m.Network.Edges)

	_, err = vtp.Load(filepath.Join(t.TempDir(), "missing.vtp"))
	assert.Error(t, err)
}

// SPDX-License-Identifier: MIT

package vtp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/Chaztikov/gROM/network"
)

// Write encodes m as ASCII PolyData with one two-point line per edge.
// Arrays are written in name order.
func Write(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	net := m.Network
	fmt.Fprintln(bw, `<?xml version="1.0"?>`)
	fmt.Fprintln(bw, `<VTKFile type="PolyData" version="0.1" byte_order="LittleEndian">`)
	fmt.Fprintln(bw, `<PolyData>`)
	fmt.Fprintf(bw, "<Piece NumberOfPoints=\"%d\" NumberOfLines=\"%d\">\n", net.Len(), len(net.Edges))

	names := make([]string, 0, len(m.Data))
	for name := range m.Data {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(bw, `<PointData>`)
	for _, name := range names {
		a := m.Data[name]
		fmt.Fprintf(bw, "<DataArray type=\"Float64\" Name=%q NumberOfComponents=\"%d\" format=\"ascii\">", name, a.Components)
		writeFloats(bw, a.Values)
		fmt.Fprintln(bw, `</DataArray>`)
	}
	fmt.Fprintln(bw, `</PointData>`)

	fmt.Fprintln(bw, `<Points>`)
	fmt.Fprint(bw, `<DataArray type="Float64" NumberOfComponents="3" format="ascii">`)
	coords := make([]float64, 0, 3*net.Len())
	for _, p := range net.Points {
		coords = append(coords, p[0], p[1], p[2])
	}
	writeFloats(bw, coords)
	fmt.Fprintln(bw, `</DataArray>`)
	fmt.Fprintln(bw, `</Points>`)

	fmt.Fprintln(bw, `<Lines>`)
	fmt.Fprint(bw, `<DataArray type="Int64" Name="connectivity" format="ascii">`)
	writeEdges(bw, net.Edges)
	fmt.Fprintln(bw, `</DataArray>`)
	fmt.Fprint(bw, `<DataArray type="Int64" Name="offsets" format="ascii">`)
	for i := range net.Edges {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(2 * (i + 1)))
	}
	fmt.Fprintln(bw, `</DataArray>`)
	fmt.Fprintln(bw, `</Lines>`)

	fmt.Fprintln(bw, `</Piece>`)
	fmt.Fprintln(bw, `</PolyData>`)
	fmt.Fprintln(bw, `</VTKFile>`)
	return bw.Flush()
}

// Save writes m to path.
func Save(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeFloats(bw *bufio.Writer, vs []float64) {
	for i, v := range vs {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
}

func writeEdges(bw *bufio.Writer, edges []network.Edge) {
	for i, e := range edges {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(e.From))
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(e.To))
	}
}

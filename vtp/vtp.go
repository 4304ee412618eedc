// SPDX-License-Identifier: MIT

// Package vtp reads and writes centerline meshes stored as VTK XML
// PolyData with ASCII data arrays.
//
// Points become network points, every polyline in Lines becomes the
// directed edges between its consecutive points, and every PointData array
// is kept under its name with all of its components.
package vtp

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Chaztikov/gROM/fields"
	"github.com/Chaztikov/gROM/network"
)

var (
	// ErrNotPolyData indicates a VTK file of another dataset type.
	ErrNotPolyData = errors.New("vtp: not a PolyData file")

	// ErrUnsupportedEncoding indicates binary or appended data arrays.
	ErrUnsupportedEncoding = errors.New("vtp: only ascii data arrays are supported")

	// ErrMalformed indicates inconsistent sizes or unparsable values.
	ErrMalformed = errors.New("vtp: malformed file")
)

// Mesh is a loaded centerline.
type Mesh struct {
	Network *network.Network
	Data    fields.PointData
}

type xmlFile struct {
	XMLName  xml.Name `xml:"VTKFile"`
	Type     string   `xml:"type,attr"`
	PolyData struct {
		Pieces []xmlPiece `xml:"Piece"`
	} `xml:"PolyData"`
}

type xmlPiece struct {
	NumberOfPoints int            `xml:"NumberOfPoints,attr"`
	NumberOfLines  int            `xml:"NumberOfLines,attr"`
	PointData      []xmlDataArray `xml:"PointData>DataArray"`
	Points         []xmlDataArray `xml:"Points>DataArray"`
	Lines          []xmlDataArray `xml:"Lines>DataArray"`
}

type xmlDataArray struct {
	Type       string `xml:"type,attr"`
	Name       string `xml:"Name,attr"`
	Components int    `xml:"NumberOfComponents,attr"`
	Format     string `xml:"format,attr"`
	Text       string `xml:",chardata"`
}

// Load reads the file at path.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Read decodes a PolyData document with a single piece.
func Read(r io.Reader) (*Mesh, error) {
	var doc xmlFile
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Type != "PolyData" {
		return nil, fmt.Errorf("%w: type %q", ErrNotPolyData, doc.Type)
	}
	if len(doc.PolyData.Pieces) != 1 {
		return nil, fmt.Errorf("%w: %d pieces, want 1", ErrMalformed, len(doc.PolyData.Pieces))
	}
	piece := doc.PolyData.Pieces[0]
	n := piece.NumberOfPoints

	points, err := readPoints(piece, n)
	if err != nil {
		return nil, err
	}
	edges, err := readLines(piece)
	if err != nil {
		return nil, err
	}
	net, err := network.New(points, edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	data := make(fields.PointData, len(piece.PointData))
	for _, da := range piece.PointData {
		vals, err := parseArray(da)
		if err != nil {
			return nil, err
		}
		arr, err := fields.NewArray(components(da), vals)
		if err != nil {
			return nil, fmt.Errorf("%w: array %q: %v", ErrMalformed, da.Name, err)
		}
		if arr.Tuples() != n {
			return nil, fmt.Errorf("%w: array %q has %d tuples for %d points", ErrMalformed, da.Name, arr.Tuples(), n)
		}
		data[da.Name] = arr
	}
	return &Mesh{Network: net, Data: data}, nil
}

func components(da xmlDataArray) int {
	if da.Components <= 0 {
		return 1
	}
	return da.Components
}

func parseArray(da xmlDataArray) ([]float64, error) {
	if da.Format != "" && da.Format != "ascii" {
		return nil, fmt.Errorf("%w: array %q is %s", ErrUnsupportedEncoding, da.Name, da.Format)
	}
	tokens := strings.Fields(da.Text)
	out := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: array %q value %d: %v", ErrMalformed, da.Name, i, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseInts(da xmlDataArray) ([]int, error) {
	vals, err := parseArray(da)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = int(v)
		if float64(out[i]) != v {
			return nil, fmt.Errorf("%w: array %q value %d is not an integer", ErrMalformed, da.Name, i)
		}
	}
	return out, nil
}

func readPoints(piece xmlPiece, n int) ([]network.Vec3, error) {
	if len(piece.Points) != 1 {
		return nil, fmt.Errorf("%w: %d point arrays", ErrMalformed, len(piece.Points))
	}
	vals, err := parseArray(piece.Points[0])
	if err != nil {
		return nil, err
	}
	if len(vals) != 3*n {
		return nil, fmt.Errorf("%w: %d coordinates for %d points", ErrMalformed, len(vals), n)
	}
	pts := make([]network.Vec3, n)
	for i := range pts {
		pts[i] = network.Vec3{vals[3*i], vals[3*i+1], vals[3*i+2]}
	}
	return pts, nil
}

// readLines expands every polyline into edges between consecutive points.
func readLines(piece xmlPiece) ([]network.Edge, error) {
	var conn, offsets []int
	for _, da := range piece.Lines {
		var err error
		switch da.Name {
		case "connectivity":
			conn, err = parseInts(da)
		case "offsets":
			offsets, err = parseInts(da)
		}
		if err != nil {
			return nil, err
		}
	}
	if len(offsets) != piece.NumberOfLines {
		return nil, fmt.Errorf("%w: %d offsets for %d lines", ErrMalformed, len(offsets), piece.NumberOfLines)
	}
	var edges []network.Edge
	start := 0
	for _, end := range offsets {
		if end < start || end > len(conn) {
			return nil, fmt.Errorf("%w: offset %d outside [%d, %d]", ErrMalformed, end, start, len(conn))
		}
		for k := start + 1; k < end; k++ {
			edges = append(edges, network.Edge{From: conn[k-1], To: conn[k]})
		}
		start = end
	}
	return edges, nil
}

// SPDX-License-Identifier: MIT

package artifact

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/Chaztikov/gROM/assemble"
	"github.com/Chaztikov/gROM/network"
	"github.com/Chaztikov/gROM/tensor"
)

// maxCount bounds decoded lengths so corrupt input cannot force huge
// allocations.
const maxCount = 1 << 28

// encoder writes big-endian values and keeps the first error.
type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) put(v any) {
	if e.err == nil {
		e.err = binary.Write(e.w, binary.BigEndian, v)
	}
}

func (e *encoder) ints(xs []int) {
	e.put(uint32(len(xs)))
	for _, x := range xs {
		e.put(int32(x))
	}
}

func (e *encoder) bools(bs []bool) {
	e.put(uint32(len(bs)))
	for _, b := range bs {
		e.put(b)
	}
}

func (e *encoder) dense(m *tensor.Dense) {
	e.put(uint32(m.Rows()))
	e.put(uint32(m.Cols()))
	e.put(m.Data())
}

func (e *encoder) meta(m Meta) {
	if len(m.Source) > 0xFFFF && e.err == nil {
		e.err = fmt.Errorf("source name of %d bytes is too long", len(m.Source))
	}
	e.put([16]byte(m.RunID))
	e.put(uint16(len(m.Source)))
	e.put([]byte(m.Source))
	e.put(int32(m.Partition))
	e.put(m.Created.Unix())
}

func (e *encoder) graph(g *assemble.Graph) {
	e.ints(g.Indices.Inlet)
	e.ints(g.Indices.Outlets)
	e.put(uint32(len(g.Edges)))
	for _, ed := range g.Edges {
		e.put(int32(ed.From))
		e.put(int32(ed.To))
	}
	for _, m := range []*tensor.Dense{g.X, g.Area, g.PointType, g.RelPosition, g.Distance, g.EdgeType, g.Pressure, g.Flowrate} {
		e.dense(m)
	}
	for _, b := range [][]bool{g.InletMask, g.OutletMask, g.ContinuityMask, g.JunctionInletMask, g.JunctionMask} {
		e.bools(b)
	}
	e.put(uint32(len(g.Dt)))
	e.put(g.Dt)
}

// decoder mirrors encoder.
type decoder struct {
	r   io.Reader
	err error
}

func (d *decoder) get(v any) {
	if d.err == nil {
		d.err = binary.Read(d.r, binary.BigEndian, v)
	}
}

func (d *decoder) count() int {
	var n uint32
	d.get(&n)
	if d.err == nil && n > maxCount {
		d.err = fmt.Errorf("length %d exceeds limit", n)
	}
	if d.err != nil {
		return 0
	}
	return int(n)
}

func (d *decoder) ints() []int {
	n := d.count()
	out := make([]int, n)
	for i := range out {
		var x int32
		d.get(&x)
		out[i] = int(x)
	}
	return out
}

func (d *decoder) bools() []bool {
	out := make([]bool, d.count())
	d.get(out)
	return out
}

func (d *decoder) dense() *tensor.Dense {
	r, c := d.count(), d.count()
	if d.err == nil && r*c > maxCount {
		d.err = fmt.Errorf("table %d×%d exceeds limit", r, c)
	}
	if d.err != nil {
		return nil
	}
	data := make([]float64, r*c)
	d.get(data)
	if d.err != nil {
		return nil
	}
	m, err := tensor.FromData(r, c, data)
	if err != nil {
		d.err = err
	}
	return m
}

func (d *decoder) meta() Meta {
	var m Meta
	var id [16]byte
	d.get(&id)
	m.RunID = uuid.UUID(id)
	var n uint16
	d.get(&n)
	src := make([]byte, n)
	d.get(src)
	m.Source = string(src)
	var part int32
	d.get(&part)
	m.Partition = int(part)
	var created int64
	d.get(&created)
	m.Created = time.Unix(created, 0).UTC()
	return m
}

func (d *decoder) graph() *assemble.Graph {
	g := &assemble.Graph{}
	g.Indices = network.Indices{Inlet: d.ints(), Outlets: d.ints()}
	g.Edges = make([]network.Edge, d.count())
	for i := range g.Edges {
		var from, to int32
		d.get(&from)
		d.get(&to)
		g.Edges[i] = network.Edge{From: int(from), To: int(to)}
	}
	for _, m := range []**tensor.Dense{&g.X, &g.Area, &g.PointType, &g.RelPosition, &g.Distance, &g.EdgeType, &g.Pressure, &g.Flowrate} {
		*m = d.dense()
	}
	for _, b := range []*[]bool{&g.InletMask, &g.OutletMask, &g.ContinuityMask, &g.JunctionInletMask, &g.JunctionMask} {
		*b = d.bools()
	}
	g.Dt = make([]float64, d.count())
	d.get(g.Dt)
	return g
}

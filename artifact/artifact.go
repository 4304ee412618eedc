// SPDX-License-Identifier: MIT

// Package artifact persists assembled graphs as ".grph" files.
//
// Format: [Magic:4][Version:2][PayloadLen:4][Payload:N][Checksum:4], all
// integers big-endian. Payload is snappy-compressed and Checksum is the
// IEEE CRC-32 of the compressed payload. The uncompressed payload holds
// the metadata followed by the graph tables.
package artifact

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/golang/snappy"
	"github.com/google/uuid"

	"github.com/Chaztikov/gROM/assemble"
)

// Extension is the artifact file suffix.
const Extension = ".grph"

// Version is the current format version.
const Version uint16 = 1

var magic = [4]byte{'G', 'R', 'P', 'H'}

var (
	// ErrBadMagic indicates input that is not an artifact.
	ErrBadMagic = errors.New("artifact: bad magic")

	// ErrVersion indicates an unsupported format version.
	ErrVersion = errors.New("artifact: unsupported version")

	// ErrChecksum indicates a corrupted payload.
	ErrChecksum = errors.New("artifact: checksum mismatch")

	// ErrIncomplete indicates a graph without time series.
	ErrIncomplete = errors.New("artifact: graph has no time series")
)

// Meta identifies the run and input a graph came from.
type Meta struct {
	RunID     uuid.UUID
	Source    string
	Partition int
	Created   time.Time
}

// Name returns the artifact name for partition i of the input named base:
// "aorta.vtp" → "aorta.<i>.grph".
func Name(base string, i int) string {
	if dot := strings.LastIndex(base, "."); dot > 0 {
		base = base[:dot]
	}
	return base + "." + strconv.Itoa(i) + Extension
}

// Encode writes g and meta to w.
func Encode(w io.Writer, g *assemble.Graph, meta Meta) error {
	if g.Pressure == nil || g.Flowrate == nil {
		return ErrIncomplete
	}
	var raw bytes.Buffer
	enc := &encoder{w: &raw}
	enc.meta(meta)
	enc.graph(g)
	if enc.err != nil {
		return fmt.Errorf("artifact: encode: %w", enc.err)
	}

	compressed := snappy.Encode(nil, raw.Bytes())
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, Version); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(compressed))); err != nil {
		return err
	}
	if _, err := w.Write(compressed); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, crc32.ChecksumIEEE(compressed))
}

// Decode reads an artifact written by Encode.
func Decode(r io.Reader) (*assemble.Graph, Meta, error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, Meta{}, fmt.Errorf("artifact: %w", err)
	}
	if head != magic {
		return nil, Meta{}, ErrBadMagic
	}
	var version uint16
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return nil, Meta{}, fmt.Errorf("artifact: %w", err)
	}
	if version != Version {
		return nil, Meta{}, fmt.Errorf("%w: %d", ErrVersion, version)
	}
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, Meta{}, fmt.Errorf("artifact: %w", err)
	}
	compressed := make([]byte, n)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, Meta{}, fmt.Errorf("artifact: payload: %w", err)
	}
	var sum uint32
	if err := binary.Read(r, binary.BigEndian, &sum); err != nil {
		return nil, Meta{}, fmt.Errorf("artifact: %w", err)
	}
	if crc32.ChecksumIEEE(compressed) != sum {
		return nil, Meta{}, ErrChecksum
	}
	raw, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("artifact: decompress: %w", err)
	}

	dec := &decoder{r: bytes.NewReader(raw)}
	meta := dec.meta()
	g := dec.graph()
	if dec.err != nil {
		return nil, Meta{}, fmt.Errorf("artifact: decode: %w", dec.err)
	}
	return g, meta, nil
}

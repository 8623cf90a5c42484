// vertex/decoder.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package vertex

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported vertex format")
	ErrShortVertexBuffer = errors.New("vertex buffer too short for index range")
)

// Decoder converts the raw vertex buffer for one vertex Type into the dense
// canonical layout that Reader consumes: present channels only, each stored
// as little-endian float32s in the order UV, color0, color1, normal,
// position.
//
// Decoders are cheap but not free to construct (the per-channel offsets are
// derived from the Type), and submissions reuse a handful of vertex types
// heavily, so callers cache them; see NewCache.
type Decoder struct {
	vt     Type
	stride int
	// Byte offset of each channel within a decoded vertex, -1 if absent.
	uvOff, col0Off, col1Off, nrmOff, posOff int
}

// NewDecoder builds a Decoder for the given vertex type. Non-float channel
// encodings belong to the full decoder for heterogeneous formats and are
// reported as ErrUnsupportedFormat here.
func NewDecoder(vt Type) (*Decoder, error) {
	d := &Decoder{vt: vt, uvOff: -1, col0Off: -1, col1Off: -1, nrmOff: -1, posOff: -1}

	channel := func(fmtbits uint32, floatval uint32, n int, name string) (int, error) {
		switch fmtbits {
		case 0:
			return -1, nil
		case floatval:
			off := d.stride
			d.stride += 4 * n
			return off, nil
		default:
			return -1, fmt.Errorf("%s encoding %d: %w", name, fmtbits, ErrUnsupportedFormat)
		}
	}

	var err error
	if d.uvOff, err = channel(vt.tc(), 3, 2, "texcoord"); err != nil {
		return nil, err
	}
	if d.col0Off, err = channel(vt.color0(), 7, 4, "color0"); err != nil {
		return nil, err
	}
	if d.col1Off, err = channel(vt.color1(), 3, 3, "color1"); err != nil {
		return nil, err
	}
	if d.nrmOff, err = channel(vt.normal(), 3, 3, "normal"); err != nil {
		return nil, err
	}
	if d.posOff, err = channel(vt.pos(), 3, 3, "position"); err != nil {
		return nil, err
	}
	if d.posOff == -1 {
		return nil, fmt.Errorf("position channel is required: %w", ErrUnsupportedFormat)
	}

	return d, nil
}

// DecodedSize returns the size in bytes of one decoded vertex.
func (d *Decoder) DecodedSize() int { return d.stride }

// Decode fills dst with the canonical form of vertices [lower, upper] from
// the raw buffer src. dst must have capacity for (upper-lower+1) decoded
// vertices; the caller sizes it from DecodedSize and the index bounds.
func (d *Decoder) Decode(dst, src []byte, lower, upper int) error {
	if upper < lower {
		return fmt.Errorf("index bounds [%d, %d] are inverted", lower, upper)
	}
	lo, hi := lower*d.stride, (upper+1)*d.stride
	if hi > len(src) {
		return fmt.Errorf("need %d bytes, have %d: %w", hi, len(src), ErrShortVertexBuffer)
	}
	if n := hi - lo; n > len(dst) {
		return fmt.Errorf("decode of %d bytes into %d byte buffer", n, len(dst))
	}

	// The float encodings already use the canonical layout, so decoding
	// the range is a bounded copy.
	copy(dst, src[lo:hi])
	return nil
}

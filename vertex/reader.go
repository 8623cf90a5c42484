// vertex/reader.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package vertex

import (
	"encoding/binary"
	gomath "math"
)

// Reader is a cursor over a decoded vertex buffer. Goto positions it at a
// vertex by its original (pre-decode) index; the presence-tested Read
// methods then return that vertex's attributes as raw floats.
//
// A Reader is not safe for concurrent use; concurrent vertex loops give
// each worker its own.
type Reader struct {
	d     *Decoder
	buf   []byte
	lower int // decoded buffer starts at this original index
	cur   []byte
}

// NewReader returns a Reader over buf, which holds vertices decoded from
// index lower upward.
func NewReader(d *Decoder, buf []byte, lower int) *Reader {
	r := &Reader{d: d, buf: buf, lower: lower}
	r.Goto(lower)
	return r
}

// Goto positions the cursor at the vertex with the given original index.
func (r *Reader) Goto(i int) {
	r.cur = r.buf[(i-r.lower)*r.d.stride:]
}

func (r *Reader) HasUV() bool     { return r.d.uvOff >= 0 }
func (r *Reader) HasColor0() bool { return r.d.col0Off >= 0 }
func (r *Reader) HasColor1() bool { return r.d.col1Off >= 0 }
func (r *Reader) HasNormal() bool { return r.d.nrmOff >= 0 }

func (r *Reader) float(off, i int) float32 {
	return gomath.Float32frombits(binary.LittleEndian.Uint32(r.cur[off+4*i:]))
}

func (r *Reader) ReadPos() [3]float32 {
	off := r.d.posOff
	return [3]float32{r.float(off, 0), r.float(off, 1), r.float(off, 2)}
}

func (r *Reader) ReadUV() [2]float32 {
	off := r.d.uvOff
	return [2]float32{r.float(off, 0), r.float(off, 1)}
}

func (r *Reader) ReadNormal() [3]float32 {
	off := r.d.nrmOff
	return [3]float32{r.float(off, 0), r.float(off, 1), r.float(off, 2)}
}

func (r *Reader) ReadColor0() [4]float32 {
	off := r.d.col0Off
	return [4]float32{r.float(off, 0), r.float(off, 1), r.float(off, 2), r.float(off, 3)}
}

func (r *Reader) ReadColor1() [3]float32 {
	off := r.d.col1Off
	return [3]float32{r.float(off, 0), r.float(off, 1), r.float(off, 2)}
}

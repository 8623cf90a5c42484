// vertex/vertex_test.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package vertex

import (
	"encoding/binary"
	gomath "math"
	"testing"
)

func appendFloats(b []byte, f ...float32) []byte {
	for _, v := range f {
		b = binary.LittleEndian.AppendUint32(b, gomath.Float32bits(v))
	}
	return b
}

func TestIndexBounds(t *testing.T) {
	// 8-bit indices {5, 2, 9, 2} must give exactly (2, 9).
	lo, hi := IndexBounds([]byte{5, 2, 9, 2}, 4, PosFloat|Index8Bit)
	if lo != 2 || hi != 9 {
		t.Errorf("8-bit: got (%d, %d), expected (2, 9)", lo, hi)
	}

	// Same values, 16-bit little-endian.
	var idx []byte
	for _, v := range []uint16{5, 2, 9, 2} {
		idx = binary.LittleEndian.AppendUint16(idx, v)
	}
	lo, hi = IndexBounds(idx, 4, PosFloat|Index16Bit)
	if lo != 2 || hi != 9 {
		t.Errorf("16-bit: got (%d, %d), expected (2, 9)", lo, hi)
	}

	// Non-indexed: bounds come from the vertex count.
	lo, hi = IndexBounds(nil, 7, PosFloat)
	if lo != 0 || hi != 6 {
		t.Errorf("non-indexed: got (%d, %d), expected (0, 6)", lo, hi)
	}
}

func TestDecoderLayout(t *testing.T) {
	for _, test := range []struct {
		vt     Type
		stride int
	}{
		{PosFloat, 12},
		{PosFloat | TCFloat, 20},
		{PosFloat | NormalFloat, 24},
		{PosFloat | TCFloat | Color0Float | Color1Float | NormalFloat, 60},
	} {
		d, err := NewDecoder(test.vt)
		if err != nil {
			t.Fatalf("%#x: %v", uint32(test.vt), err)
		}
		if d.DecodedSize() != test.stride {
			t.Errorf("%#x: decoded size %d, expected %d", uint32(test.vt), d.DecodedSize(), test.stride)
		}
	}

	// Missing position or a non-float encoding is not this decoder's job.
	if _, err := NewDecoder(TCFloat); err == nil {
		t.Errorf("expected error for format without position")
	}
	if _, err := NewDecoder(PosFloat | 1<<tcShift); err == nil {
		t.Errorf("expected error for non-float texcoord encoding")
	}
}

func TestDecodeAndRead(t *testing.T) {
	vt := PosFloat | TCFloat | NormalFloat
	d, err := NewDecoder(vt)
	if err != nil {
		t.Fatal(err)
	}

	// Three vertices; canonical channel order is UV, normal, position.
	var src []byte
	for i := 0; i < 3; i++ {
		f := float32(i)
		src = appendFloats(src, f, f+0.5)       // uv
		src = appendFloats(src, 0, 0, 1)        // normal
		src = appendFloats(src, f*10, f*20, -f) // position
	}

	// Decode only vertices 1..2 and address them by original index.
	buf := make([]byte, 2*d.DecodedSize())
	if err := d.Decode(buf, src, 1, 2); err != nil {
		t.Fatal(err)
	}
	r := NewReader(d, buf, 1)

	r.Goto(2)
	if p := r.ReadPos(); p != [3]float32{20, 40, -2} {
		t.Errorf("vertex 2 pos: got %v", p)
	}
	r.Goto(1)
	if p := r.ReadPos(); p != [3]float32{10, 20, -1} {
		t.Errorf("vertex 1 pos: got %v", p)
	}
	if uv := r.ReadUV(); uv != [2]float32{1, 1.5} {
		t.Errorf("vertex 1 uv: got %v", uv)
	}
	if !r.HasNormal() || r.HasColor0() || r.HasColor1() {
		t.Errorf("presence flags wrong: normal %v color0 %v color1 %v",
			r.HasNormal(), r.HasColor0(), r.HasColor1())
	}

	// A short source buffer is a reported error, not an out-of-bounds read.
	if err := d.Decode(buf, src[:20], 1, 2); err == nil {
		t.Errorf("expected ErrShortVertexBuffer for truncated source")
	}
}

func TestDecoderCache(t *testing.T) {
	c := NewCache(4)
	vt := PosFloat | Color0Float

	d1, err := c.Get(vt)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := c.Get(vt)
	if err != nil {
		t.Fatal(err)
	}
	if d1 != d2 {
		t.Errorf("cache miss for repeated vertex type")
	}

	if _, err := c.Get(PosFloat | 2<<nrmShift); err == nil {
		t.Errorf("expected unsupported format error through cache")
	}
}

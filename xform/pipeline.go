// xform/pipeline.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package xform

// AttrReader is the per-vertex cursor the assembler reads attributes
// through; vertex.Reader implements it. Readers present attributes as raw
// floats and report which optional channels the vertex format carries.
type AttrReader interface {
	Goto(i int)
	ReadPos() [3]float32
	HasUV() bool
	ReadUV() [2]float32
	HasNormal() bool
	ReadNormal() [3]float32
	HasColor0() bool
	ReadColor0() [4]float32
	HasColor1() bool
	ReadColor1() [3]float32
}

// Lighter evaluates the lighting equation for one assembled vertex,
// rewriting its Color0/Color1 in place from the world position, world
// normal, and base colors. It is never invoked in through mode.
//
// Implementations must be safe for concurrent calls if the parallel submit
// path is used.
type Lighter interface {
	Light(*VertexData)
}

// LighterFunc adapts a function to the Lighter interface.
type LighterFunc func(*VertexData)

func (f LighterFunc) Light(v *VertexData) { f(v) }

// NopLighter leaves vertex colors untouched.
var NopLighter = LighterFunc(func(*VertexData) {})

// Clipper is the downstream clip/raster stage. It owns clipping, rectangle
// expansion, and rasterization; the calls are fire and forget. Triangles
// and rectangles have distinct entry points; the hardware gives points and
// lines no downstream path in this rasterizer.
type Clipper interface {
	ProcessTriangle(*[3]VertexData)
	ProcessQuad(*[2]VertexData)
}

// NopClipper discards all primitives; useful for trace replay and timing.
type NopClipper struct{}

func (NopClipper) ProcessTriangle(*[3]VertexData) {}
func (NopClipper) ProcessQuad(*[2]VertexData)     {}

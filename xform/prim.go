// xform/prim.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package xform

import "fmt"

// Prim is the primitive topology code of a submission, using the hardware
// command encoding.
type Prim uint8

const (
	Points Prim = iota
	Lines
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
	Rectangles
)

// VerticesPerPrimitive returns how many vertex slots one primitive of this
// topology consumes, or 0 if the topology is unsupported. Rectangles are
// submitted as two opposite corners; the clip/raster stage expands them.
func (p Prim) VerticesPerPrimitive() int {
	switch p {
	case Points:
		return 1
	case Lines:
		return 2
	case Triangles:
		return 3
	case Rectangles:
		return 2
	default:
		return 0
	}
}

func (p Prim) String() string {
	switch p {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case LineStrip:
		return "line_strip"
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle_strip"
	case TriangleFan:
		return "triangle_fan"
	case Rectangles:
		return "rectangles"
	default:
		return fmt.Sprintf("prim(%d)", uint8(p))
	}
}

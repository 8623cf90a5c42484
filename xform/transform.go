// xform/transform.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package xform

import (
	"github.com/sgpu/sge/gstate"
)

// The five stages of the coordinate transform chain. Each is a pure
// function of its input and the state snapshot; each consumes only the
// previous stage's output.

func ModelToWorld(s *gstate.State, p ModelCoords) WorldCoords {
	return WorldCoords(s.World.TransformPoint(p))
}

func WorldToView(s *gstate.State, p WorldCoords) ViewCoords {
	return ViewCoords(s.View.TransformPoint(p))
}

func ViewToClip(s *gstate.State, p ViewCoords) ClipCoords {
	return ClipCoords(s.Proj.TransformVec4([4]float32{p[0], p[1], p[2], 1}))
}

// ClipToScreen performs the perspective divide and maps the result through
// the viewport scale/offset into 1/16 pixel fixed-point screen units.
//
// A clip-space w of zero is not guarded: the divide propagates Inf/NaN into
// the screen coordinates, matching the hardware's (and the original
// rasterizer's) native float behavior. See TestClipToScreenDegenerateW.
func ClipToScreen(s *gstate.State, p ClipCoords) ScreenCoords {
	return ScreenCoords{
		(p[0]*s.ViewportX1()/p[3] + s.ViewportX2()) * 16,
		(p[1]*s.ViewportY1()/p[3] + s.ViewportY2()) * 16,
		(p[2]*s.ViewportZ1()/p[3] + s.ViewportZ2()) * 16,
	}
}

// ScreenToDrawing subtracts the drawing-area offset, drops the 1/16
// fixed-point scale, and masks to the 10-bit tile range. The subtraction is
// done on unsigned values, so coordinates left of the offset wrap into the
// high end of the tile rather than clamping; the hardware does the same and
// the rasterizer depends on it.
func ScreenToDrawing(s *gstate.State, p ScreenCoords) DrawingCoords {
	x := (uint32(int32(p[0])) - uint32(s.OffsetX)) / 16 & 0x3ff
	y := (uint32(int32(p[1])) - uint32(s.OffsetY)) / 16 & 0x3ff
	return DrawingCoords{int32(x), int32(y)}
}

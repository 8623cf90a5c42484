// xform/transform_test.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package xform

import (
	gomath "math"
	"testing"

	"github.com/sgpu/sge/gstate"
	"github.com/sgpu/sge/math"
)

func TestTransformChainRoundTrip(t *testing.T) {
	// Identity transforms, unit viewport scale, viewport centered at 2048
	// and the drawing-area offset placed so that model x,y map back to
	// pixel coordinates x+240, y+136.
	s := gstate.NewState()
	s.VpX2 = math.Float32ToFloat24(2048)
	s.VpY2 = math.Float32ToFloat24(2048)
	s.OffsetX = (2048 - 240) * 16
	s.OffsetY = (2048 - 136) * 16

	p := ModelCoords{10, 30, 0.5}
	world := ModelToWorld(s, p)
	view := WorldToView(s, world)
	clip := ViewToClip(s, view)
	if clip != (ClipCoords{10, 30, 0.5, 1}) {
		t.Fatalf("identity chain to clip: got %v", clip)
	}

	screen := ClipToScreen(s, clip)
	if screen[0] != (10+2048)*16 || screen[1] != (30+2048)*16 || screen[2] != 0.5*16 {
		t.Fatalf("screen: got %v", screen)
	}

	draw := ScreenToDrawing(s, screen)
	if draw != (DrawingCoords{250, 166}) {
		t.Errorf("drawing: got %v, expected [250 166]", draw)
	}
}

func TestTransformChainWithMatrices(t *testing.T) {
	s := gstate.NewState()
	s.World[9], s.World[10], s.World[11] = 1, 2, 3
	s.View = math.MakeRotationZ34(float32(gomath.Pi)) // 180 degrees
	s.View[9] = 100

	world := ModelToWorld(s, ModelCoords{1, 1, 1})
	if world != (WorldCoords{2, 3, 4}) {
		t.Fatalf("world: got %v", world)
	}

	view := WorldToView(s, world)
	if math.Abs(view[0]-98) > 1e-4 || math.Abs(view[1]+3) > 1e-4 || view[2] != 4 {
		t.Errorf("view: got %v, expected about [98 -3 4]", view)
	}
}

func TestClipToScreenPerspectiveDivide(t *testing.T) {
	s := gstate.NewState()
	s.VpX1 = math.Float32ToFloat24(960)
	s.VpX2 = math.Float32ToFloat24(2048)

	// w = 2 halves the scaled x.
	sc := ClipToScreen(s, ClipCoords{1, 0, 0, 2})
	if sc[0] != (960/2+2048)*16 {
		t.Errorf("got x %g, expected %g", sc[0], float32((960/2+2048)*16))
	}
}

// A clip w of zero is deliberately unguarded: the divide produces Inf/NaN
// which propagate downstream, as on the hardware.
func TestClipToScreenDegenerateW(t *testing.T) {
	s := gstate.NewState()
	sc := ClipToScreen(s, ClipCoords{5, -5, 0, 0})
	if !gomath.IsInf(float64(sc[0]), 1) {
		t.Errorf("x: got %g, expected +Inf", sc[0])
	}
	if !gomath.IsInf(float64(sc[1]), -1) {
		t.Errorf("y: got %g, expected -Inf", sc[1])
	}
	// 0/0 is NaN before the viewport offset is added.
	if !gomath.IsNaN(float64(sc[2])) {
		t.Errorf("z: got %g, expected NaN", sc[2])
	}
}

// Drawing coordinates left of the drawing-area offset wrap into the high
// end of the 10-bit tile; they are not clamped.
func TestScreenToDrawingWraparound(t *testing.T) {
	s := gstate.NewState()
	s.OffsetX = 16 * 80

	d := ScreenToDrawing(s, ScreenCoords{0, 0, 0})
	if d[0] != 1024-80 {
		t.Errorf("x: got %d, expected %d", d[0], 1024-80)
	}
	if d[1] != 0 {
		t.Errorf("y: got %d, expected 0", d[1])
	}

	// And anything past 1023 pixels wraps around the tile.
	d = ScreenToDrawing(s, ScreenCoords{16 * 1030, 0, 0})
	if d[0] != 1030-1024 {
		t.Errorf("wrap high: got %d, expected 6", d[0])
	}
}

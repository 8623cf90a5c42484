// gstate/state.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package gstate

import (
	"github.com/brunoga/deep"
	"github.com/sgpu/sge/math"
)

// State is the bank of transform/material/viewport state that the geometry
// stage reads while processing a primitive submission. It mirrors the
// hardware register file: the viewport registers hold raw 24-bit floats and
// the material diffuse color is a packed 0x00BBGGRR word.
//
// State must be fully determined before a submission begins and must not
// change until it completes; the transform stage takes a Snapshot at the
// start of each submission and never re-reads live state mid-loop.
type State struct {
	World math.Matrix34
	View  math.Matrix34
	Proj  math.Matrix4

	// Raw 24-bit float viewport registers: x1/y1/z1 are the per-axis
	// scales, x2/y2/z2 the offsets.
	VpX1, VpX2 uint32
	VpY1, VpY2 uint32
	VpZ1, VpZ2 uint32

	// Drawing-area offset, in 1/16 pixel fixed point.
	OffsetX uint16
	OffsetY uint16

	MaterialDiffuse uint32 // packed 0x00BBGGRR
	MaterialAlpha   uint32 // low 8 bits

	ClearMode     bool
	ThroughMode   bool
	TextureEnable bool
}

// NewState returns a State with identity transforms and a centered viewport;
// everything else is zero.
func NewState() *State {
	return &State{
		World: math.Identity34(),
		View:  math.Identity34(),
		Proj:  math.Identity4(),
		VpX1:  math.Float32ToFloat24(1),
		VpY1:  math.Float32ToFloat24(1),
		VpZ1:  math.Float32ToFloat24(1),
	}
}

// Snapshot returns a deep copy of the state. A primitive submission operates
// entirely on its snapshot, which makes the transform functions auditable
// for thread safety and keeps concurrent submitters from observing writes to
// the live register bank.
func (s *State) Snapshot() *State {
	snap := deep.MustCopy(*s)
	return &snap
}

// Decoded viewport parameters.

func (s *State) ViewportX1() float32 { return math.Float24ToFloat32(s.VpX1) }
func (s *State) ViewportX2() float32 { return math.Float24ToFloat32(s.VpX2) }
func (s *State) ViewportY1() float32 { return math.Float24ToFloat32(s.VpY1) }
func (s *State) ViewportY2() float32 { return math.Float24ToFloat32(s.VpY2) }
func (s *State) ViewportZ1() float32 { return math.Float24ToFloat32(s.VpZ1) }
func (s *State) ViewportZ2() float32 { return math.Float24ToFloat32(s.VpZ2) }

// MaterialRGBA unpacks the material diffuse color and alpha into 0-255
// channels; these are the fallback for vertices without a color0 channel.
func (s *State) MaterialRGBA() (r, g, b, a int32) {
	return int32(s.MaterialDiffuse & 0xFF),
		int32((s.MaterialDiffuse >> 8) & 0xFF),
		int32((s.MaterialDiffuse >> 16) & 0xFF),
		int32(s.MaterialAlpha & 0xFF)
}

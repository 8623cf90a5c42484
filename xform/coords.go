// xform/coords.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package xform

// Each coordinate space a vertex passes through on its way to the rasterizer
// gets its own type so that the stages can't be mixed up or reordered by
// accident; the transform chain is the only way to move between them.

// ModelCoords is a position as decoded from the vertex buffer.
type ModelCoords [3]float32

// WorldCoords is a position after the world matrix.
type WorldCoords [3]float32

// ViewCoords is a position after the view matrix.
type ViewCoords [3]float32

// ClipCoords is a homogeneous position after the projection matrix.
type ClipCoords [4]float32

// ScreenCoords is a post-divide position in 1/16 pixel fixed-point screen
// units (the screen is addressed at 16x the nominal pixel grid).
type ScreenCoords [3]float32

// DrawingCoords is the final integer position on the 1024x1024 drawing
// tile, as consumed by the rasterizer.
type DrawingCoords [2]int32

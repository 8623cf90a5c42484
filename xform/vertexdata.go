// xform/vertexdata.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package xform

// VertexData is one fully assembled vertex: every coordinate form populated
// for it, its normal in model and world space, and its colors and texture
// coordinates. One is built per vertex slot during primitive assembly,
// handed to lighting and then to the clip/raster stage, and not kept.
//
// In through mode only Draw is populated, directly from the decoded x,y.
type VertexData struct {
	Model  ModelCoords
	World  WorldCoords
	View   ViewCoords
	Clip   ClipCoords
	Screen ScreenCoords
	Draw   DrawingCoords

	Normal      [3]float32 // model space, as decoded
	WorldNormal [3]float32 // unit length
	HasNormal   bool

	Color0 [4]int32 // RGBA, 0-255
	Color1 [3]int32 // RGB, 0-255

	UV    [2]float32
	HasUV bool
}

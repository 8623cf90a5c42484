// xform/unit.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package xform

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/sgpu/sge/gstate"
	"github.com/sgpu/sge/log"
	"github.com/sgpu/sge/math"
	"github.com/sgpu/sge/vertex"
)

var (
	ErrScratchCapacity  = errors.New("submission exceeds scratch buffer capacity")
	ErrShortIndexBuffer = errors.New("index buffer too short for vertex count")
)

// DefaultMaxScratch bounds the decode scratch buffer: 64k vertices at the
// largest decoded vertex size.
const DefaultMaxScratch = 65536 * 60

var _ AttrReader = (*vertex.Reader)(nil)

// Unit is the geometry stage: it decodes a submitted vertex stream, runs
// each vertex through the coordinate transform chain and lighting, groups
// vertices into primitives, and hands them to the clip/raster stage.
//
// The Unit reads the register bank it was given but never writes it; each
// submission works from a snapshot taken at its start.
type Unit struct {
	state   *gstate.State
	clipper Clipper
	lighter Lighter
	lg      *log.Logger

	// MaxScratch caps how large the decode scratch buffer may grow, in
	// bytes. A submission whose index range needs more is rejected with
	// ErrScratchCapacity.
	MaxScratch int

	scratch  []byte
	decoders *vertex.Cache
	stats    Stats
}

func New(state *gstate.State, clipper Clipper, lighter Lighter, lg *log.Logger) *Unit {
	if clipper == nil {
		clipper = NopClipper{}
	}
	if lighter == nil {
		lighter = NopLighter
	}
	return &Unit{
		state:      state,
		clipper:    clipper,
		lighter:    lighter,
		lg:         lg,
		MaxScratch: DefaultMaxScratch,
		decoders:   vertex.NewCache(32),
	}
}

// Stats returns the totals accumulated over all submissions.
func (u *Unit) Stats() Stats { return u.stats }

// submission carries the per-call decoded buffer and index resolution.
type submission struct {
	st      *gstate.State
	dec     *vertex.Decoder
	buf     []byte
	lower   int
	indices []byte
	idxSize int
	perPrim int
	count   int
}

// index resolves vertex slot i of the stream to an original vertex index.
func (sub *submission) index(i int) int {
	switch sub.idxSize {
	case 1:
		return int(sub.indices[i])
	case 2:
		return int(binary.LittleEndian.Uint16(sub.indices[2*i:]))
	default:
		return i
	}
}

// prepare snapshots the state, computes index bounds, and decodes the
// referenced vertex range into the scratch buffer.
func (u *Unit) prepare(verts, indices []byte, prim Prim, count int, vt vertex.Type) (*submission, error) {
	perPrim := prim.VerticesPerPrimitive()
	if perPrim == 0 {
		u.lg.Warnf("unsupported primitive topology %s; dropping submission", prim)
		return nil, nil
	}

	dec, err := u.decoders.Get(vt)
	if err != nil {
		return nil, err
	}

	sub := &submission{
		st:      u.state.Snapshot(),
		dec:     dec,
		perPrim: perPrim,
		count:   count,
	}

	if indices != nil && vt.IndexSize() > 0 {
		sub.idxSize = vt.IndexSize()
		if len(indices) < count*sub.idxSize {
			return nil, fmt.Errorf("%d indices of %d bytes in %d byte buffer: %w",
				count, sub.idxSize, len(indices), ErrShortIndexBuffer)
		}
		sub.indices = indices
	}

	lower, upper := vertex.IndexBounds(sub.indices, count, vt)
	sub.lower = int(lower)

	need := (int(upper) - int(lower) + 1) * dec.DecodedSize()
	if need > u.MaxScratch {
		return nil, fmt.Errorf("vertex range [%d, %d] needs %d bytes (max %d): %w",
			lower, upper, need, u.MaxScratch, ErrScratchCapacity)
	}
	if need > len(u.scratch) {
		u.scratch = make([]byte, need)
	}
	sub.buf = u.scratch[:need]

	return sub, dec.Decode(sub.buf, verts, int(lower), int(upper))
}

// SubmitPrimitive assembles the given vertex stream into primitives and
// dispatches them to the clip/raster stage. verts holds the raw vertex
// data; indices may be nil for a non-indexed submission. count is the
// number of vertex slots consumed; if it is not a multiple of the
// topology's per-primitive count, the trailing vertices are dropped.
func (u *Unit) SubmitPrimitive(verts, indices []byte, prim Prim, count int, vt vertex.Type) (Stats, error) {
	if count <= 0 {
		return Stats{}, nil
	}
	sub, err := u.prepare(verts, indices, prim, count, vt)
	if sub == nil || err != nil {
		return Stats{}, err
	}

	var stats Stats
	stats.VerticesDecoded = len(sub.buf) / sub.dec.DecodedSize()

	vr := vertex.NewReader(sub.dec, sub.buf, sub.lower)
	data := make([]VertexData, sub.perPrim)

	for vtx := 0; vtx+sub.perPrim <= count; vtx += sub.perPrim {
		for i := 0; i < sub.perPrim; i++ {
			vr.Goto(sub.index(vtx + i))
			u.assembleVertex(sub.st, vr, &data[i])
		}
		u.dispatch(prim, data)
		stats.countPrim(prim, 1)
	}

	u.stats.Merge(stats)
	return stats, nil
}

// assembleVertex extracts one vertex's attributes and routes it through the
// transform chain (or the through-mode bypass) and lighting.
func (u *Unit) assembleVertex(st *gstate.State, vr AttrReader, v *VertexData) {
	*v = VertexData{}

	pos := vr.ReadPos()

	// No texture coordinate is synthesized when the channel is absent or
	// texturing doesn't apply; the field stays unset.
	if st.TextureEnable && !st.ClearMode && vr.HasUV() {
		v.UV = vr.ReadUV()
		v.HasUV = true
	}

	if vr.HasNormal() {
		v.Normal = vr.ReadNormal()
		v.HasNormal = true
	}

	if vr.HasColor0() {
		c := vr.ReadColor0()
		v.Color0 = [4]int32{int32(c[0] * 255), int32(c[1] * 255), int32(c[2] * 255), int32(c[3] * 255)}
	} else {
		r, g, b, a := st.MaterialRGBA()
		v.Color0 = [4]int32{r, g, b, a}
	}

	if vr.HasColor1() {
		c := vr.ReadColor1()
		v.Color1 = [3]int32{int32(c[0] * 255), int32(c[1] * 255), int32(c[2] * 255)}
	} else {
		v.Color1 = [3]int32{0, 0, 0}
	}

	if st.ThroughMode {
		// Positions are already final 2D drawing coordinates; no
		// transforms, no lighting.
		v.Draw = DrawingCoords{int32(pos[0]), int32(pos[1])}
		return
	}

	v.Model = ModelCoords(pos)
	v.World = ModelToWorld(st, v.Model)
	v.View = WorldToView(st, v.World)
	v.Clip = ViewToClip(st, v.View)
	v.Screen = ClipToScreen(st, v.Clip)
	v.Draw = ScreenToDrawing(st, v.Screen)

	if v.HasNormal {
		// Normals get the rotation/scale but not the translation, then
		// renormalize to unit length.
		v.WorldNormal = math.Normalize3f(st.World.TransformVector(v.Normal))
	}

	u.lighter.Light(v)
}

// dispatch hands one completed primitive to the clip/raster stage. Points
// and lines assemble but have no downstream entry point here.
func (u *Unit) dispatch(prim Prim, data []VertexData) {
	switch prim {
	case Triangles:
		u.clipper.ProcessTriangle((*[3]VertexData)(data))
	case Rectangles:
		u.clipper.ProcessQuad((*[2]VertexData)(data))
	}
}

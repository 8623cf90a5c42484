// xform/parallel.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package xform

import (
	"runtime"

	"github.com/sgpu/sge/vertex"
	"golang.org/x/sync/errgroup"
)

// Primitives per worker task; small enough to balance, large enough that
// goroutine overhead doesn't swamp the per-vertex work.
const parallelChunk = 256

// SubmitPrimitiveParallel is SubmitPrimitive with the per-vertex transform
// and lighting fanned out across goroutines. Vertex transforms are
// independent of each other so they can run in any order, but the
// rasterizer is order-sensitive for overlapping draws, so dispatch happens
// afterward, sequentially, in original primitive order.
//
// The state snapshot is taken once up front and shared read-only by all
// workers. The Lighter must tolerate concurrent calls.
func (u *Unit) SubmitPrimitiveParallel(verts, indices []byte, prim Prim, count int, vt vertex.Type) (Stats, error) {
	if count <= 0 {
		return Stats{}, nil
	}
	sub, err := u.prepare(verts, indices, prim, count, vt)
	if sub == nil || err != nil {
		return Stats{}, err
	}

	var stats Stats
	stats.VerticesDecoded = len(sub.buf) / sub.dec.DecodedSize()

	nPrims := count / sub.perPrim
	data := make([]VertexData, nPrims*sub.perPrim)

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < nPrims; start += parallelChunk {
		start := start
		end := min(start+parallelChunk, nPrims)
		eg.Go(func() error {
			// Readers hold cursor state, so each task gets its own.
			vr := vertex.NewReader(sub.dec, sub.buf, sub.lower)
			for slot := start * sub.perPrim; slot < end*sub.perPrim; slot++ {
				vr.Goto(sub.index(slot))
				u.assembleVertex(sub.st, vr, &data[slot])
			}
			return nil
		})
	}
	// Workers don't fail; Wait is just the phase barrier before ordered
	// dispatch.
	_ = eg.Wait()

	for p := 0; p < nPrims; p++ {
		u.dispatch(prim, data[p*sub.perPrim:(p+1)*sub.perPrim])
		stats.countPrim(prim, 1)
	}

	u.stats.Merge(stats)
	return stats, nil
}

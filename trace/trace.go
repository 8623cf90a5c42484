// trace/trace.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package trace records and replays primitive submissions. A trace captures
// the register state plus every draw call of a frame so that geometry-stage
// behavior can be reproduced offline, regression-tested, and timed.
package trace

import (
	"fmt"
	"io"

	"github.com/sgpu/sge/gstate"
	"github.com/sgpu/sge/log"
	"github.com/sgpu/sge/util"
	"github.com/sgpu/sge/vertex"
	"github.com/sgpu/sge/xform"
)

// DrawCall is one recorded primitive submission.
type DrawCall struct {
	Prim       xform.Prim
	VertexType vertex.Type
	Count      int
	Vertices   []byte
	Indices    []byte // nil for non-indexed submissions
}

// Trace is the register state and draw calls of one capture.
type Trace struct {
	State gstate.State
	Calls []DrawCall
}

// Write stores the trace to w as zstd-compressed msgpack.
func Write(w io.Writer, t *Trace) error {
	return util.StoreObject(w, t)
}

// Read loads a trace written by Write.
func Read(r io.Reader) (*Trace, error) {
	var t Trace
	if err := util.RetrieveObject(r, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Record appends a draw call to the trace, copying the buffers so the
// caller may reuse them.
func (t *Trace) Record(verts, indices []byte, prim xform.Prim, count int, vt vertex.Type) {
	call := DrawCall{
		Prim:       prim,
		VertexType: vt,
		Count:      count,
		Vertices:   util.DuplicateSlice(verts),
	}
	if indices != nil {
		call.Indices = util.DuplicateSlice(indices)
	}
	t.Calls = append(t.Calls, call)
}

// Replay runs every recorded draw call through a fresh transform unit and
// returns the combined statistics. With parallel set, the concurrent
// transform path is used; the dispatch order seen by the clipper is the
// recorded order either way.
func Replay(t *Trace, clipper xform.Clipper, lighter xform.Lighter, lg *log.Logger, parallel bool) (xform.Stats, error) {
	u := xform.New(&t.State, clipper, lighter, lg)

	for i, c := range t.Calls {
		var err error
		if parallel {
			_, err = u.SubmitPrimitiveParallel(c.Vertices, c.Indices, c.Prim, c.Count, c.VertexType)
		} else {
			_, err = u.SubmitPrimitive(c.Vertices, c.Indices, c.Prim, c.Count, c.VertexType)
		}
		if err != nil {
			return u.Stats(), fmt.Errorf("draw call %d (%s, %d vertices): %w", i, c.Prim, c.Count, err)
		}
	}
	return u.Stats(), nil
}

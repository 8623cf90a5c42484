// vertex/bounds.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package vertex

import "encoding/binary"

// IndexBounds scans an index buffer once and returns the inclusive range
// [lower, upper] of vertex indices it references. Only that range of the
// source vertex buffer needs to be decoded; the raw vertex count bounds
// nothing when indices are in play.
//
// For a non-indexed type (or a nil index buffer) the bounds are simply
// [0, count-1]. 16-bit indices are little-endian.
func IndexBounds(indices []byte, count int, vt Type) (lower, upper uint16) {
	if count <= 0 {
		return 0, 0
	}

	isize := vt.IndexSize()
	if indices == nil || isize == 0 {
		return 0, uint16(count - 1)
	}

	lower = 0xffff
	for i := 0; i < count; i++ {
		var v uint16
		if isize == 1 {
			v = uint16(indices[i])
		} else {
			v = binary.LittleEndian.Uint16(indices[2*i:])
		}
		lower = min(lower, v)
		upper = max(upper, v)
	}
	return
}

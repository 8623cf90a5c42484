// vertex/format.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package vertex

// Type is the bit-packed vertex format descriptor that accompanies a
// primitive submission. It records which attribute channels are present in
// the raw vertex data, the encoding of each, and the index buffer width.
// The field layout follows the hardware register:
//
//	bits  0-1   texture coordinates (0 none, 3 float)
//	bits  2-4   color0              (0 none, 7 float RGBA)
//	bits  5-6   normal              (0 none, 3 float)
//	bits  7-8   position            (3 float; always present)
//	bits  9-10  color1              (0 none, 3 float RGB)
//	bits 11-12  index width         (0 none, 1 8-bit, 2 16-bit)
//
// Decoding the compressed integer encodings into canonical floats is the
// business of a full vertex decoder; this package implements the float
// encodings, which share the canonical layout.
type Type uint32

const (
	tcShift   = 0
	tcMask    = 0x3
	col0Shift = 2
	col0Mask  = 0x7
	nrmShift  = 5
	nrmMask   = 0x3
	posShift  = 7
	posMask   = 0x3
	col1Shift = 9
	col1Mask  = 0x3
	idxShift  = 11
	idxMask   = 0x3
)

const (
	TCNone  Type = 0 << tcShift
	TCFloat Type = 3 << tcShift

	Color0None  Type = 0 << col0Shift
	Color0Float Type = 7 << col0Shift

	NormalNone  Type = 0 << nrmShift
	NormalFloat Type = 3 << nrmShift

	PosFloat Type = 3 << posShift

	Color1None  Type = 0 << col1Shift
	Color1Float Type = 3 << col1Shift

	IndexNone  Type = 0 << idxShift
	Index8Bit  Type = 1 << idxShift
	Index16Bit Type = 2 << idxShift
)

func (t Type) tc() uint32     { return uint32(t>>tcShift) & tcMask }
func (t Type) color0() uint32 { return uint32(t>>col0Shift) & col0Mask }
func (t Type) normal() uint32 { return uint32(t>>nrmShift) & nrmMask }
func (t Type) pos() uint32    { return uint32(t>>posShift) & posMask }
func (t Type) color1() uint32 { return uint32(t>>col1Shift) & col1Mask }

func (t Type) HasUV() bool     { return t.tc() != 0 }
func (t Type) HasColor0() bool { return t.color0() != 0 }
func (t Type) HasNormal() bool { return t.normal() != 0 }
func (t Type) HasColor1() bool { return t.color1() != 0 }

// IndexSize returns the size in bytes of one index, or 0 for non-indexed
// submissions.
func (t Type) IndexSize() int {
	switch (t >> idxShift) & idxMask {
	case 1:
		return 1
	case 2:
		return 2
	default:
		return 0
	}
}

// math/float24.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import gomath "math"

// The viewport scale/offset registers hold 24-bit floats: the upper 24 bits
// of an IEEE 754 float32, i.e. the sign, the exponent, and the top 15 bits
// of the mantissa.

// Float24ToFloat32 decodes a 24-bit float register value.
func Float24ToFloat32(bits uint32) float32 {
	return gomath.Float32frombits((bits & 0xFFFFFF) << 8)
}

// Float32ToFloat24 encodes a float32 into the 24-bit register encoding,
// discarding the low 8 mantissa bits.
func Float32ToFloat24(f float32) uint32 {
	return gomath.Float32bits(f) >> 8
}

// math/vecmat.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

///////////////////////////////////////////////////////////////////////////
// vector 3f

// Various useful functions for arithmetic with 3D points/vectors.
// Names are brief in order to avoid clutter when they're used.

// a+b
func Add3f(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// a-b
func Sub3f(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// a*s
func Scale3f(a [3]float32, s float32) [3]float32 {
	return [3]float32{s * a[0], s * a[1], s * a[2]}
}

func Dot3f(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Length of v
func Length3f(v [3]float32) float32 {
	return Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalizes the given vector.
func Normalize3f(a [3]float32) [3]float32 {
	l := Length3f(a)
	if l == 0 {
		return [3]float32{0, 0, 0}
	}
	return Scale3f(a, 1/l)
}

///////////////////////////////////////////////////////////////////////////
// 3x4 matrix

// Matrix34 is a 3x4 matrix in the packed column-major register layout used
// by the hardware world and view matrices: elements 0-8 hold the 3x3
// rotation/scale columns and elements 9-11 hold the translation.
type Matrix34 [12]float32

func Identity34() Matrix34 {
	var m Matrix34
	m[0] = 1
	m[4] = 1
	m[8] = 1
	return m
}

// MakeRotationZ34 returns a 3x4 matrix that rotates by the given angle
// (in radians) around the z axis, with no translation.
func MakeRotationZ34(ang float32) Matrix34 {
	s, c := Sin(ang), Cos(ang)
	var m Matrix34
	m[0], m[1] = c, s
	m[3], m[4] = -s, c
	m[8] = 1
	return m
}

// Translation returns the translation term packed in elements 9-11.
func (m Matrix34) Translation() [3]float32 {
	return [3]float32{m[9], m[10], m[11]}
}

// TransformPoint applies the full matrix to p: rotation/scale followed by
// translation.
func (m Matrix34) TransformPoint(p [3]float32) [3]float32 {
	return Add3f(m.TransformVector(p), m.Translation())
}

// TransformVector applies only the 3x3 rotation/scale submatrix to v,
// omitting the translation term; this is the correct transform for
// direction vectors such as normals.
func (m Matrix34) TransformVector(v [3]float32) [3]float32 {
	return [3]float32{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}

///////////////////////////////////////////////////////////////////////////
// 4x4 matrix

// Matrix4 is a column-major 4x4 matrix, as used by the hardware projection
// matrix.
type Matrix4 [16]float32

func Identity4() Matrix4 {
	var m Matrix4
	m[0] = 1
	m[5] = 1
	m[10] = 1
	m[15] = 1
	return m
}

// TransformVec4 applies the matrix to the given homogeneous 4-vector.
func (m Matrix4) TransformVec4(v [4]float32) [4]float32 {
	var r [4]float32
	for i := 0; i < 4; i++ {
		r[i] = m[i]*v[0] + m[i+4]*v[1] + m[i+8]*v[2] + m[i+12]*v[3]
	}
	return r
}

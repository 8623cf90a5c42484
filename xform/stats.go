// xform/stats.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package xform

import "fmt"

// Stats encapsulates assorted statistics from primitive assembly.
type Stats struct {
	VerticesDecoded int
	Points          int
	Lines           int
	Triangles       int
	Quads           int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d vertices decoded: %d points, %d lines, %d tris, %d quads",
		s.VerticesDecoded, s.Points, s.Lines, s.Triangles, s.Quads)
}

func (s *Stats) Merge(o Stats) {
	s.VerticesDecoded += o.VerticesDecoded
	s.Points += o.Points
	s.Lines += o.Lines
	s.Triangles += o.Triangles
	s.Quads += o.Quads
}

func (s *Stats) countPrim(p Prim, n int) {
	switch p {
	case Points:
		s.Points += n
	case Lines:
		s.Lines += n
	case Triangles:
		s.Triangles += n
	case Rectangles:
		s.Quads += n
	}
}

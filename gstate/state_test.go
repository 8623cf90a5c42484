// gstate/state_test.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package gstate

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/sgpu/sge/math"
)

func TestSnapshotIsolation(t *testing.T) {
	s := NewState()
	s.MaterialDiffuse = 0x102030
	s.OffsetX = 2048

	snap := s.Snapshot()

	// Later writes to the live state must not show up in the snapshot.
	s.MaterialDiffuse = 0xffffff
	s.World[9] = 5

	if snap.MaterialDiffuse != 0x102030 {
		t.Errorf("snapshot saw MaterialDiffuse change: %#x", snap.MaterialDiffuse)
	}
	if snap.World[9] != 0 {
		t.Errorf("snapshot saw world matrix change: %g", snap.World[9])
	}
}

func TestViewportDecode(t *testing.T) {
	s := NewState()
	s.VpX1 = math.Float32ToFloat24(960)
	s.VpX2 = math.Float32ToFloat24(2048)

	if got := s.ViewportX1(); got != 960 {
		t.Errorf("ViewportX1: got %g, expected 960", got)
	}
	if got := s.ViewportX2(); got != 2048 {
		t.Errorf("ViewportX2: got %g, expected 2048", got)
	}
	// NewState defaults scales to 1.
	if got := s.ViewportY1(); got != 1 {
		t.Errorf("default ViewportY1: got %g, expected 1", got)
	}
}

func TestMaterialRGBA(t *testing.T) {
	s := NewState()
	s.MaterialDiffuse = 0xccbbaa // packed 0x00BBGGRR
	s.MaterialAlpha = 0x7f

	r, g, b, a := s.MaterialRGBA()
	if r != 0xaa || g != 0xbb || b != 0xcc || a != 0x7f {
		t.Errorf("got (%d %d %d %d), expected (170 187 204 127)", r, g, b, a)
	}
}

func TestSaveLoad(t *testing.T) {
	s := NewState()
	s.World[9], s.World[10], s.World[11] = 1, 2, 3
	s.VpX1 = math.Float32ToFloat24(960)
	s.OffsetX, s.OffsetY = 2048, 1024
	s.MaterialDiffuse = 0x123456
	s.ThroughMode = true
	s.TextureEnable = true

	var buf bytes.Buffer
	if err := s.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(s, loaded) {
		t.Errorf("savestate round trip mismatch:\nsaved  %+v\nloaded %+v", s, loaded)
	}
}

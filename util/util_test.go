// util/util_test.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"reflect"
	"testing"
)

func TestStoreRetrieveObject(t *testing.T) {
	type record struct {
		Name   string
		Values []float32
		Flags  map[string]bool
	}
	in := record{
		Name:   "viewport",
		Values: []float32{1, -2048, 16},
		Flags:  map[string]bool{"through": true, "clear": false},
	}

	var buf bytes.Buffer
	if err := StoreObject(&buf, in); err != nil {
		t.Fatalf("StoreObject: %v", err)
	}

	var out record
	if err := RetrieveObject(&buf, &out); err != nil {
		t.Fatalf("RetrieveObject: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch: stored %+v, retrieved %+v", in, out)
	}
}

func TestSelect(t *testing.T) {
	if Select(true, 1, 2) != 1 || Select(false, 1, 2) != 2 {
		t.Errorf("Select is confused")
	}
}

func TestMapSlice(t *testing.T) {
	double := func(v int) int { return 2 * v }
	if got := MapSlice([]int{1, 2, 3}, double); !reflect.DeepEqual(got, []int{2, 4, 6}) {
		t.Errorf("MapSlice: got %v", got)
	}
}

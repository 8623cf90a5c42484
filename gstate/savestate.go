// gstate/savestate.go
// Copyright(c) 2026 sge contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package gstate

import (
	"io"

	"github.com/sgpu/sge/util"
)

// Save writes the state to w as zstd-compressed msgpack, the encoding used
// for emulator savestates.
func (s *State) Save(w io.Writer) error {
	return util.StoreObject(w, s)
}

// Load reads a state previously written with Save.
func Load(r io.Reader) (*State, error) {
	var s State
	if err := util.RetrieveObject(r, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

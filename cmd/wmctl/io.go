// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quadrant/wm"
	"github.com/quadrant/wm/wmio"
)

func loadGrid(path string) (wm.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return wm.Grid{}, fmt.Errorf("reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return wmio.DecodeYAML(data)
	case ".json":
		return wmio.DecodeJSON(data)
	default:
		return wm.Grid{}, fmt.Errorf("loading %s: unrecognized extension, want .json, .yaml, or .yml", path)
	}
}

func printGrid(g wm.Grid) {
	box := g.GetBox()
	fmt.Printf("box: %+v\n", box.AsCorners())
	for _, t := range g.Tiles() {
		fmt.Printf("  handle=%d %+v\n", t.Handle(), t.AsSpan())
	}
}

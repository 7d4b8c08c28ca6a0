// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wmio serializes [wm.Grid] values to and from JSON and YAML,
// for hosts that want to save and restore a layout across process
// restarts. It sits outside the core algorithms entirely: wm never
// imports this package.
package wmio

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/quadrant/wm"
)

// tileDoc is the wire shape for a single tile: its span encoding
// (cell, span) plus handle, the most compact of the three equivalent
// rectangle views.
type tileDoc struct {
	Cell   cellDoc `json:"cell" yaml:"cell"`
	Span   cellDoc `json:"span" yaml:"span"`
	Handle int64   `json:"handle" yaml:"handle"`
}

type cellDoc struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

type gridDoc struct {
	Tiles []tileDoc `json:"tiles" yaml:"tiles"`
}

func toDoc(g wm.Grid) gridDoc {
	tiles := g.Tiles()
	doc := gridDoc{Tiles: make([]tileDoc, len(tiles))}
	for i, t := range tiles {
		span := t.AsSpan()
		doc.Tiles[i] = tileDoc{
			Cell:   cellDoc{X: span.Cell.X, Y: span.Cell.Y},
			Span:   cellDoc{X: span.Span.X, Y: span.Span.Y},
			Handle: int64(t.Handle()),
		}
	}
	return doc
}

func fromDoc(doc gridDoc) (wm.Grid, error) {
	if len(doc.Tiles) == 0 {
		return wm.Grid{}, fmt.Errorf("wmio: document has no tiles")
	}
	tiles := make([]wm.Tile, len(doc.Tiles))
	for i, td := range doc.Tiles {
		tiles[i] = wm.NewTile(wm.TileAsSpan{
			Cell: wm.Cell{X: td.Cell.X, Y: td.Cell.Y},
			Span: wm.Cell{X: td.Span.X, Y: td.Span.Y},
		}, wm.Handle(td.Handle))
	}
	grid := wm.NewGrid(tiles...)
	if err := grid.AssertInvariants(); err != nil {
		return wm.Grid{}, fmt.Errorf("wmio: decoded grid violates invariants: %w", err)
	}
	return grid, nil
}

// EncodeJSON renders g as JSON, one object per tile in its span
// encoding.
func EncodeJSON(g wm.Grid) ([]byte, error) {
	return json.MarshalIndent(toDoc(g), "", "  ")
}

// DecodeJSON parses JSON produced by [EncodeJSON] (or any document of
// the same shape) and asserts the result's invariants before
// returning it.
func DecodeJSON(data []byte) (wm.Grid, error) {
	var doc gridDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return wm.Grid{}, fmt.Errorf("wmio: decoding JSON: %w", err)
	}
	return fromDoc(doc)
}

// EncodeYAML renders g as YAML, one object per tile in its span
// encoding.
func EncodeYAML(g wm.Grid) ([]byte, error) {
	return yaml.Marshal(toDoc(g))
}

// DecodeYAML parses YAML produced by [EncodeYAML] (or any document of
// the same shape) and asserts the result's invariants before
// returning it.
func DecodeYAML(data []byte) (wm.Grid, error) {
	var doc gridDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return wm.Grid{}, fmt.Errorf("wmio: decoding YAML: %w", err)
	}
	return fromDoc(doc)
}

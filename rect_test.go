// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineFullyContains(t *testing.T) {
	degenerate := NewTile(TileAsCorners{C0: Cell{X: 0, Y: 3}, C3: Cell{X: 5, Y: 3}}, Handle(1))
	wide := NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 5, Y: 5}}, Handle(2))

	line := Line{Coordinate: 3, Orientation: Horizontal}
	assert.True(t, line.FullyContains(degenerate))
	assert.False(t, line.FullyContains(wide))
}

func TestLineIntersectsAndTouches(t *testing.T) {
	tile := NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 9, Y: 9}}, Handle(1))

	inside := Line{Coordinate: 5, Orientation: Vertical}
	assert.True(t, inside.Intersects(tile))
	assert.False(t, inside.Touches(tile))

	edge := Line{Coordinate: 0, Orientation: Vertical}
	assert.True(t, edge.Intersects(tile))
	assert.True(t, edge.Touches(tile))

	outside := Line{Coordinate: 20, Orientation: Vertical}
	assert.False(t, outside.Intersects(tile))
}

func TestLineOnPositiveAndNegativeSide(t *testing.T) {
	tile := NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 9, Y: 9}}, Handle(1))

	assert.True(t, (Line{Coordinate: 10, Orientation: Vertical}).OnPositiveSide(tile))
	assert.False(t, (Line{Coordinate: 10, Orientation: Vertical}).OnNegativeSide(tile))

	assert.True(t, (Line{Coordinate: -1, Orientation: Vertical}).OnNegativeSide(tile))
	assert.False(t, (Line{Coordinate: -1, Orientation: Vertical}).OnPositiveSide(tile))
}

func TestLineRotateClockwiseFourTimesIsIdentity(t *testing.T) {
	line := Line{Coordinate: 4, Orientation: Vertical}
	got := line
	for range 4 {
		got = got.RotateClockwise()
	}
	assert.Equal(t, line, got)
}

func TestOrientationInvert(t *testing.T) {
	assert.Equal(t, Vertical, Horizontal.Invert())
	assert.Equal(t, Horizontal, Vertical.Invert())
}

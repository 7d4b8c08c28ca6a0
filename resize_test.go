// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sideBySide() Grid {
	return NewGrid(
		NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 4, Y: 9}}, Handle(1)),
		NewTile(TileAsCorners{C0: Cell{X: 5, Y: 0}, C3: Cell{X: 9, Y: 9}}, Handle(2)),
	)
}

func TestResizeAlongXScalePreservesProportion(t *testing.T) {
	g := sideBySide()
	got, err := g.ResizeAlongX(20, ResizeScale)
	require.NoError(t, err)
	require.NoError(t, got.AssertInvariants())

	box := got.GetBox()
	assert.Equal(t, 20, box.AsCorners().C3.X-box.AsCorners().C0.X+1)
}

func TestResizeAlongXBalanceGivesEachTileAShare(t *testing.T) {
	g := sideBySide()
	got, err := g.ResizeAlongX(20, ResizeBalance)
	require.NoError(t, err)
	require.NoError(t, got.AssertInvariants())

	box := got.GetBox()
	assert.Equal(t, 20, box.AsCorners().C3.X-box.AsCorners().C0.X+1)
}

func TestResizeAlongXRejectsInvalidGrid(t *testing.T) {
	g := NewGrid(
		NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 5, Y: 5}}, Handle(1)),
		NewTile(TileAsCorners{C0: Cell{X: 3, Y: 3}, C3: Cell{X: 9, Y: 9}}, Handle(2)),
	)
	_, err := g.ResizeAlongX(20, ResizeScale)
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestResizeComposesBothAxes(t *testing.T) {
	g := fourQuadrants()
	got, err := g.Resize(Cell{X: 20, Y: 30}, ResizeScale)
	require.NoError(t, err)
	require.NoError(t, got.AssertInvariants())

	box := got.GetBox()
	assert.Equal(t, 20, box.AsCorners().C3.X-box.AsCorners().C0.X+1)
	assert.Equal(t, 30, box.AsCorners().C3.Y-box.AsCorners().C0.Y+1)
}

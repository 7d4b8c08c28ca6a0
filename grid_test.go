// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourQuadrants is a 10x10 box split into four equal quadrants, a
// minimal tight-covering, non-overlapping grid fixture reused across
// several tests.
func fourQuadrants() Grid {
	return NewGrid(
		NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 4, Y: 4}}, Handle(1)),
		NewTile(TileAsCorners{C0: Cell{X: 5, Y: 0}, C3: Cell{X: 9, Y: 4}}, Handle(2)),
		NewTile(TileAsCorners{C0: Cell{X: 0, Y: 5}, C3: Cell{X: 4, Y: 9}}, Handle(3)),
		NewTile(TileAsCorners{C0: Cell{X: 5, Y: 5}, C3: Cell{X: 9, Y: 9}}, Handle(4)),
	)
}

func TestGridAssertInvariantsPassesForTightCover(t *testing.T) {
	g := fourQuadrants()
	assert.NoError(t, g.AssertInvariants())
	assert.False(t, g.GetInvariantErrors().HasErrors())
}

func TestGridDetectsDuplicateHandles(t *testing.T) {
	g := NewGrid(
		NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 4, Y: 4}}, Handle(1)),
		NewTile(TileAsCorners{C0: Cell{X: 5, Y: 0}, C3: Cell{X: 9, Y: 4}}, Handle(1)),
	)
	errs := g.GetInvariantErrors()
	assert.True(t, errs.HasErrors())
	assert.Equal(t, 2, errs.DuplicateHandles[Handle(1)])

	var invErr *InvariantErrors
	err := g.AssertInvariants()
	require.Error(t, err)
	assert.True(t, errors.As(err, &invErr))
}

func TestGridDetectsOverlappingPairs(t *testing.T) {
	g := NewGrid(
		NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 5, Y: 5}}, Handle(1)),
		NewTile(TileAsCorners{C0: Cell{X: 3, Y: 3}, C3: Cell{X: 9, Y: 9}}, Handle(2)),
	)
	errs := g.GetInvariantErrors()
	assert.True(t, errs.HasErrors())
	assert.Len(t, errs.OverlappingPairs, 1)
}

func TestGridDetectsGapAsPositiveAreaMismatch(t *testing.T) {
	g := NewGrid(
		NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 3, Y: 3}}, Handle(1)),
		NewTile(TileAsCorners{C0: Cell{X: 6, Y: 6}, C3: Cell{X: 9, Y: 9}}, Handle(2)),
	)
	errs := g.GetInvariantErrors()
	assert.True(t, errs.HasErrors())
	assert.Greater(t, errs.AreaMismatch, 0)
}

// Overlap alone drives AreaMismatch negative; HasErrors must not key
// off that sign on its own since OverlappingPairs already flags it.
func TestGridNegativeAreaMismatchAloneIsNotDoubleCounted(t *testing.T) {
	g := NewGrid(
		NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 9, Y: 9}}, Handle(1)),
		NewTile(TileAsCorners{C0: Cell{X: 3, Y: 3}, C3: Cell{X: 9, Y: 9}}, Handle(2)),
	)
	errs := g.GetInvariantErrors()
	assert.Less(t, errs.AreaMismatch, 0)
	require.Len(t, errs.OverlappingPairs, 1)
}

func TestGridGetTileByHandle(t *testing.T) {
	g := fourQuadrants()

	tile, err := g.GetTileByHandle(Handle(2))
	require.NoError(t, err)
	assert.Equal(t, Handle(2), tile.Handle())

	_, err = g.GetTileByHandle(Handle(99))
	assert.ErrorIs(t, err, ErrNotFound)

	_, ok := g.TryGetTileByHandle(Handle(99))
	assert.False(t, ok)
}

func TestGridTryGetTileByCell(t *testing.T) {
	g := fourQuadrants()

	tile, ok := g.TryGetTileByCell(Cell{X: 7, Y: 7})
	require.True(t, ok)
	assert.Equal(t, Handle(4), tile.Handle())

	_, ok = g.TryGetTileByCell(Cell{X: 100, Y: 100})
	assert.False(t, ok)
}

func TestGridRotateClockwiseFourTimesIsIdentity(t *testing.T) {
	g := fourQuadrants()
	got := g
	for range 4 {
		got = got.RotateClockwise()
	}
	assert.ElementsMatch(t, g.Tiles(), got.Tiles())
	assert.NoError(t, got.AssertInvariants())
}

func TestGridMirrorHorizontallyTwiceIsIdentity(t *testing.T) {
	g := fourQuadrants()
	got := g.MirrorHorizontally().MirrorHorizontally()
	assert.ElementsMatch(t, g.Tiles(), got.Tiles())
}

func TestGridTranslatePreservesShape(t *testing.T) {
	g := fourQuadrants()
	got := g.Translate(Cell{X: 100, Y: -50})
	assert.NoError(t, got.AssertInvariants())
	box := got.GetBox()
	assert.Equal(t, Cell{X: 100, Y: -50}, box.AsCorners().C0)
}

func TestGridDeleteByHandleRemovesTile(t *testing.T) {
	g := fourQuadrants()
	got := g.DeleteByHandle(Handle(2))
	assert.Len(t, got.Tiles(), 3)
	_, ok := got.TryGetTileByHandle(Handle(2))
	assert.False(t, ok)
}

func TestGridDeleteByHandleOfOriginIsNoOp(t *testing.T) {
	g := fourQuadrants()
	origin := g.Tiles()[0].Handle()
	got := g.DeleteByHandle(origin)
	assert.Len(t, got.Tiles(), len(g.Tiles()))
}

func TestGridCompactRemovesSlackColumn(t *testing.T) {
	// A grid with an empty column (x=5) between the two tiles should
	// compact to remove the slack while preserving relative layout.
	g := NewGrid(
		NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 4, Y: 4}}, Handle(1)),
		NewTile(TileAsCorners{C0: Cell{X: 6, Y: 0}, C3: Cell{X: 10, Y: 4}}, Handle(2)),
	)
	got := g.Compact()
	assert.NoError(t, got.AssertInvariants())
	box := got.GetBox()
	assert.Less(t, box.AsCorners().C3.X, g.GetBox().AsCorners().C3.X)
}

func TestGridExpandKeepsTightGridValid(t *testing.T) {
	g := NewGrid(
		NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 4, Y: 9}}, Handle(1)),
		NewTile(TileAsCorners{C0: Cell{X: 5, Y: 0}, C3: Cell{X: 9, Y: 4}}, Handle(2)),
		NewTile(TileAsCorners{C0: Cell{X: 5, Y: 5}, C3: Cell{X: 9, Y: 9}}, Handle(3)),
	)
	got := g.Expand()
	assert.NoError(t, got.AssertInvariants())
}

func TestGridInsertToRightShiftsAndAppends(t *testing.T) {
	g := NewGrid(
		NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 4, Y: 9}}, Handle(1)),
		NewTile(TileAsCorners{C0: Cell{X: 5, Y: 0}, C3: Cell{X: 9, Y: 9}}, Handle(2)),
	)
	got := g.Insert(Handle(1), Right, Handle(3))
	require.NoError(t, got.AssertInvariants())
	_, ok := got.TryGetTileByHandle(Handle(3))
	assert.True(t, ok)
	assert.Len(t, got.Tiles(), 3)
}

func TestGridInsertUnknownAnchorIsNoOp(t *testing.T) {
	g := fourQuadrants()
	got := g.Insert(Handle(999), Right, Handle(5))
	assert.ElementsMatch(t, g.Tiles(), got.Tiles())
}

func TestGridSplitTileToRightHalvesWidth(t *testing.T) {
	g := NewGrid(NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 9, Y: 9}}, Handle(1)))
	got := g.SplitTile(Handle(1), Right, Handle(2))
	require.NoError(t, got.AssertInvariants())
	assert.Len(t, got.Tiles(), 2)
}

func TestGridSplitTileTooNarrowIsNoOp(t *testing.T) {
	g := NewGrid(NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 0, Y: 9}}, Handle(1)))
	got := g.SplitTile(Handle(1), Right, Handle(2))
	assert.Len(t, got.Tiles(), 1)
}

func TestGridSplitTileUnknownHandleIsNoOp(t *testing.T) {
	g := fourQuadrants()
	got := g.SplitTile(Handle(999), Right, Handle(5))
	assert.ElementsMatch(t, g.Tiles(), got.Tiles())
}

func TestGetGridSectionExhaustive(t *testing.T) {
	origin := NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 9, Y: 9}}, Handle(1))

	cases := []struct {
		cell Cell
		want GridSection
	}{
		{Cell{X: 5, Y: 5}, SectionOrigin},
		{Cell{X: 5, Y: -1}, SectionTop},
		{Cell{X: 5, Y: 10}, SectionBottom},
		{Cell{X: -1, Y: 5}, SectionLeft},
		{Cell{X: 10, Y: 5}, SectionRight},
		{Cell{X: -1, Y: -1}, SectionTopLeft},
		{Cell{X: 10, Y: -1}, SectionTopRight},
		{Cell{X: -1, Y: 10}, SectionBottomLeft},
		{Cell{X: 10, Y: 10}, SectionBottomRight},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, GetGridSection(c.cell, origin), "cell %+v", c.cell)
	}
}

func TestInverseGridSection(t *testing.T) {
	inv, ok := InverseGridSection(SectionTop)
	require.True(t, ok)
	assert.Equal(t, SectionBottom, inv)

	inv, ok = InverseGridSection(SectionTopLeft)
	require.True(t, ok)
	assert.Equal(t, SectionBottomRight, inv)

	_, ok = InverseGridSection(SectionOrigin)
	assert.False(t, ok)
}

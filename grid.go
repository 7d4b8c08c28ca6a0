// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import "sort"

// Grid is an immutable, ordered collection of non-overlapping tiles
// that tightly covers their bounding box. The first tile is the
// origin tile and is never removed by [Grid.DeleteByHandle].
//
// Every method returns a new Grid (or other value); none mutates the
// receiver.
type Grid struct {
	tiles []Tile
}

// NewGrid builds a Grid from tiles, in order. tiles must be
// non-empty; the invariants (unique handles, no overlaps, tight
// coverage) are not checked here — call [Grid.AssertInvariants] when
// that matters.
func NewGrid(tiles ...Tile) Grid {
	cp := make([]Tile, len(tiles))
	copy(cp, tiles)
	return Grid{tiles: cp}
}

// Tiles returns the grid's tiles, in order. The returned slice is a
// copy; mutating it does not affect the grid.
func (g Grid) Tiles() []Tile {
	cp := make([]Tile, len(g.tiles))
	copy(cp, g.tiles)
	return cp
}

func (g Grid) from(tiles []Tile) Grid {
	return Grid{tiles: tiles}
}

// GetBox returns the bounding box of every tile in the grid, tagged
// with the first tile's handle.
func (g Grid) GetBox() Tile {
	return GetBox(g.tiles)
}

// CentralizeOrigin translates the grid so the first tile's top-left
// corner sits at the origin.
func (g Grid) CentralizeOrigin() Grid {
	delta := Cell{}.Sub(g.tiles[0].AsCorners().C0)
	return g.Translate(delta)
}

// TryGetTileByHandle returns the tile carrying handle, or (Tile{},
// false) if none does.
func (g Grid) TryGetTileByHandle(handle Handle) (Tile, bool) {
	for _, t := range g.tiles {
		if t.Handle() == handle {
			return t, true
		}
	}
	return Tile{}, false
}

// GetTileByHandle returns the tile carrying handle, or [ErrNotFound]
// if none does.
func (g Grid) GetTileByHandle(handle Handle) (Tile, error) {
	t, ok := g.TryGetTileByHandle(handle)
	if !ok {
		return Tile{}, notFoundf("handle %d", handle)
	}
	return t, nil
}

// TryGetTileByCell returns the tile containing cell, or (Tile{},
// false) if none does.
func (g Grid) TryGetTileByCell(cell Cell) (Tile, bool) {
	for _, t := range g.tiles {
		if t.ContainsCell(cell) {
			return t, true
		}
	}
	return Tile{}, false
}

// ReplaceTiles returns a grid where every tile in new_ replaces the
// grid's existing tile with the same handle; tiles whose handle does
// not appear in new_ are kept unchanged. Order is preserved.
func (g Grid) ReplaceTiles(new_ []Tile) Grid {
	byHandle := make(map[Handle]Tile, len(new_))
	for _, t := range new_ {
		byHandle[t.Handle()] = t
	}
	out := make([]Tile, len(g.tiles))
	for i, t := range g.tiles {
		if r, ok := byHandle[t.Handle()]; ok {
			out[i] = r
		} else {
			out[i] = t
		}
	}
	return g.from(out)
}

// CountHandles returns, for every handle present, how many tiles
// carry it.
func (g Grid) CountHandles() map[Handle]int {
	counts := make(map[Handle]int, len(g.tiles))
	for _, t := range g.tiles {
		counts[t.Handle()]++
	}
	return counts
}

// GetHandleErrors returns the subset of [Grid.CountHandles] whose
// count is not exactly one.
func (g Grid) GetHandleErrors() map[Handle]int {
	out := map[Handle]int{}
	for h, c := range g.CountHandles() {
		if c != 1 {
			out[h] = c
		}
	}
	return out
}

// GetOverlappingTilePairs returns every pair of tiles that intersect.
func (g Grid) GetOverlappingTilePairs() [][2]Tile {
	var out [][2]Tile
	for i := 0; i < len(g.tiles); i++ {
		for j := i + 1; j < len(g.tiles); j++ {
			if g.tiles[i].IntersectsWith(g.tiles[j]) {
				out = append(out, [2]Tile{g.tiles[i], g.tiles[j]})
			}
		}
	}
	return out
}

// GetAreaMismatch returns the bounding box's area minus the sum of
// every tile's area.
func (g Grid) GetAreaMismatch() int {
	total := 0
	for _, t := range g.tiles {
		total += t.Area()
	}
	return g.GetBox().Area() - total
}

// GetInvariantErrors computes every invariant violation present in
// the grid, without raising an error.
func (g Grid) GetInvariantErrors() InvariantErrors {
	return InvariantErrors{
		DuplicateHandles: g.GetHandleErrors(),
		OverlappingPairs: g.GetOverlappingTilePairs(),
		AreaMismatch:     g.GetAreaMismatch(),
	}
}

// AssertInvariants returns an error wrapping [ErrInvariantViolation]
// (as *InvariantErrors) if the grid violates any invariant, else nil.
func (g Grid) AssertInvariants() error {
	errs := g.GetInvariantErrors()
	if !errs.HasErrors() {
		return nil
	}
	return wrap(&errs)
}

// RotateClockwise rotates every tile 90 degrees clockwise about the
// origin.
func (g Grid) RotateClockwise() Grid {
	out := make([]Tile, len(g.tiles))
	for i, t := range g.tiles {
		out[i] = t.RotateClockwise()
	}
	return g.from(out)
}

// RotateCounterclockwise rotates every tile 90 degrees
// counterclockwise about the origin.
func (g Grid) RotateCounterclockwise() Grid {
	out := make([]Tile, len(g.tiles))
	for i, t := range g.tiles {
		out[i] = t.RotateCounterclockwise()
	}
	return g.from(out)
}

// Rotate rotates every tile as [Cell.Rotate] would.
func (g Grid) Rotate(from, to CardinalDirection) Grid {
	out := make([]Tile, len(g.tiles))
	for i, t := range g.tiles {
		out[i] = t.Rotate(from, to)
	}
	return g.from(out)
}

// MirrorHorizontally mirrors every tile across the Y axis.
func (g Grid) MirrorHorizontally() Grid {
	out := make([]Tile, len(g.tiles))
	for i, t := range g.tiles {
		out[i] = t.MirrorHorizontally()
	}
	return g.from(out)
}

// MirrorVertically mirrors every tile across the X axis.
func (g Grid) MirrorVertically() Grid {
	out := make([]Tile, len(g.tiles))
	for i, t := range g.tiles {
		out[i] = t.MirrorVertically()
	}
	return g.from(out)
}

// Translate shifts every tile by delta.
func (g Grid) Translate(delta Cell) Grid {
	out := make([]Tile, len(g.tiles))
	for i, t := range g.tiles {
		out[i] = t.Translate(delta)
	}
	return g.from(out)
}

// DeleteByHandle removes the tile carrying handle. Deleting the
// origin tile (the grid's first tile) is a no-op, since every grid
// must retain an origin.
func (g Grid) DeleteByHandle(handle Handle) Grid {
	if g.tiles[0].Handle() == handle {
		return g
	}
	out := make([]Tile, 0, len(g.tiles))
	for _, t := range g.tiles {
		if t.Handle() != handle {
			out = append(out, t)
		}
	}
	return g.from(out)
}

// GetYs returns the set of every Y coordinate appearing as a top or
// bottom edge among the grid's tiles.
func (g Grid) GetYs() map[int]struct{} {
	out := map[int]struct{}{}
	for _, t := range g.tiles {
		c := t.AsCorners()
		out[c.C0.Y] = struct{}{}
		out[c.C3.Y] = struct{}{}
	}
	return out
}

// Compact removes slack by visiting every row of the original
// bounding box and then every column, each in decreasing coordinate
// order, and collapsing the grid across that line: tiles the line
// runs through shrink by one on their far edge, tiles entirely past
// it shift back by one, and tiles entirely before it are untouched.
// If any tile is only one cell thick and lies on the line, the line
// is left alone (removing it would make that tile vanish) and
// compaction continues with the next line.
func (g Grid) Compact() Grid {
	current := g
	box := current.GetBox()

	var lines []Line
	hs := box.ShredHorizontally()
	for i := len(hs) - 1; i >= 0; i-- {
		lines = append(lines, hs[i])
	}
	vs := box.ShredVertically()
	for i := len(vs) - 1; i >= 0; i-- {
		lines = append(lines, vs[i])
	}

	for _, line := range lines {
		delta := Cell{X: 0, Y: -1}
		if line.Orientation == Vertical {
			delta = Cell{X: -1, Y: 0}
		}

		newTiles := make([]Tile, 0, len(current.tiles))
		cut := false
		for _, tile := range current.tiles {
			if line.FullyContains(tile) {
				cut = true
				break
			}
			if !line.Intersects(tile) {
				c := tile.AsCorners()
				if line.OnPositiveSide(tile) {
					newTiles = append(newTiles, tile)
				} else if line.OnNegativeSide(tile) {
					newTiles = append(newTiles, tile.WithRect(TileAsCorners{C0: c.C0.Add(delta), C3: c.C3.Add(delta)}))
				}
			} else {
				c := tile.AsCorners()
				newTiles = append(newTiles, tile.WithRect(TileAsCorners{C0: c.C0, C3: c.C3.Add(delta)}))
			}
		}

		if !cut {
			current = current.from(newTiles)
		}
	}

	return current
}

// Expand grows every tile by one cell, preferring right, then down,
// then left, then up, choosing the first direction that stays inside
// the bounding box and does not overlap any other tile; a tile with
// no legal direction is left unchanged. Tiles are processed in grid
// order, so each is checked against the already-grown state of the
// tiles before it and the original state of the tiles after it.
func (g Grid) Expand() Grid {
	box := g.GetBox()
	newTiles := make([]Tile, len(g.tiles))
	copy(newTiles, g.tiles)

	for i, tile := range g.tiles {
		others := make([]Tile, 0, len(newTiles)-1)
		others = append(others, newTiles[:i]...)
		others = append(others, newTiles[i+1:]...)

		c := tile.AsCorners()
		candidates := []Tile{
			tile.WithRect(TileAsCorners{C0: c.C0, C3: c.C3.Add(Cell{X: 1, Y: 0})}),
			tile.WithRect(TileAsCorners{C0: c.C0, C3: c.C3.Add(Cell{X: 0, Y: 1})}),
			tile.WithRect(TileAsCorners{C0: c.C0.Add(Cell{X: -1, Y: 0}), C3: c.C3}),
			tile.WithRect(TileAsCorners{C0: c.C0.Add(Cell{X: 0, Y: -1}), C3: c.C3}),
		}

		chosen := tile
		for _, cand := range candidates {
			if !box.ContainsTile(cand) {
				continue
			}
			overlap := false
			for _, o := range others {
				if o.IntersectsWith(cand) {
					overlap = true
					break
				}
			}
			if !overlap {
				chosen = cand
				break
			}
		}
		newTiles[i] = chosen
	}

	return g.from(newTiles)
}

// Insert creates a new tile, carrying newHandle, immediately in
// direction from the anchor tile: tiles crossing the anchor's far
// edge line are widened by one and tiles beyond it are shifted by
// one, so the grid grows by one row or column. Inserting relative to
// an unknown handle is a no-op.
func (g Grid) Insert(anchorHandle Handle, direction CardinalDirection, newHandle Handle) Grid {
	rotated := g.Rotate(direction, Right).insertToRight(anchorHandle, newHandle)
	return rotated.Rotate(Right, direction)
}

// insertToRight implements [Grid.Insert] for direction == Right.
func (g Grid) insertToRight(anchorHandle, newHandle Handle) Grid {
	anchor, ok := g.TryGetTileByHandle(anchorHandle)
	if !ok {
		logNoOp("Insert", anchorHandle)
		return g
	}

	line := Line{Coordinate: anchor.AsCorners().C3.X, Orientation: Vertical}

	newTiles := make([]Tile, 0, len(g.tiles)+1)
	for _, tile := range g.tiles {
		switch {
		case tile.Handle() == anchorHandle:
			newTiles = append(newTiles, tile)
		case !line.Intersects(tile) && line.OnPositiveSide(tile):
			newTiles = append(newTiles, tile)
		case line.Intersects(tile):
			c := tile.AsCorners()
			newTiles = append(newTiles, tile.WithRect(TileAsCorners{C0: c.C0, C3: c.C3.Add(Cell{X: 1, Y: 0})}))
		case !line.Intersects(tile) && line.OnNegativeSide(tile):
			c := tile.AsCorners()
			newTiles = append(newTiles, tile.WithRect(TileAsCorners{
				C0: c.C0.Add(Cell{X: 1, Y: 0}),
				C3: c.C3.Add(Cell{X: 1, Y: 0}),
			}))
		}
	}

	anchorStep := anchor.AsStep()
	newTile := NewTile(TileAsStep{
		Cell: anchor.AsCorners().C3.Add(Cell{X: 1, Y: 0}),
		Step: Cell{X: 0, Y: -anchorStep.Step.Y},
	}, newHandle)
	newTiles = append(newTiles, newTile)

	return g.from(newTiles)
}

// SplitTile halves tileHandle's tile perpendicular to direction,
// giving the new half (toward direction) a tile carrying newHandle.
// A tile narrower than 3 cells along the split axis (its corner-to-
// corner step is below 2), or an unknown handle, leaves the grid
// unchanged.
func (g Grid) SplitTile(tileHandle Handle, direction CardinalDirection, newHandle Handle) Grid {
	rotated := g.Rotate(direction, Right).splitTileToRight(tileHandle, newHandle)
	return rotated.Rotate(Right, direction)
}

// splitTileToRight implements [Grid.SplitTile] for direction ==
// Right.
func (g Grid) splitTileToRight(tileHandle, newHandle Handle) Grid {
	if _, ok := g.TryGetTileByHandle(tileHandle); !ok {
		logNoOp("SplitTile", tileHandle)
		return g
	}

	newTiles := make([]Tile, 0, len(g.tiles)+1)
	for _, tile := range g.tiles {
		corners := tile.AsCorners()
		width := corners.C3.X - corners.C0.X

		if tile.Handle() != tileHandle || width < 2 {
			newTiles = append(newTiles, tile)
			continue
		}

		c2 := Cell{X: corners.C0.X + width/2, Y: corners.C3.Y}
		c1 := Cell{X: c2.X + 1, Y: corners.C0.Y}

		newTiles = append(newTiles,
			tile.WithRect(TileAsCorners{C0: corners.C0, C3: c2}),
			NewTile(TileAsCorners{C0: c1, C3: corners.C3}, newHandle),
		)
	}

	return g.from(newTiles)
}

// UnOccupy removes area's overlap from every tile. It returns
// (Grid{}, false) if any tile's remainder would not be a rectangle.
func (g Grid) UnOccupy(area Tile, prefer Orientation) (Grid, bool) {
	out := make([]Tile, len(g.tiles))
	for i, tile := range g.tiles {
		r, ok := tile.UnOccupy(area, prefer)
		if !ok {
			return Grid{}, false
		}
		out[i] = r
	}
	return g.from(out), true
}

// GridSection names the eight compass regions plus the origin region
// relative to a reference tile, as returned by [GetGridSection].
type GridSection int

const (
	SectionOrigin GridSection = iota
	SectionTop
	SectionBottom
	SectionLeft
	SectionRight
	SectionTopLeft
	SectionTopRight
	SectionBottomLeft
	SectionBottomRight
)

func (s GridSection) String() string {
	switch s {
	case SectionOrigin:
		return "ORIGIN"
	case SectionTop:
		return "TOP"
	case SectionBottom:
		return "BOTTOM"
	case SectionLeft:
		return "LEFT"
	case SectionRight:
		return "RIGHT"
	case SectionTopLeft:
		return "TOP_LEFT"
	case SectionTopRight:
		return "TOP_RIGHT"
	case SectionBottomLeft:
		return "BOTTOM_LEFT"
	case SectionBottomRight:
		return "BOTTOM_RIGHT"
	default:
		return "GridSection(?)"
	}
}

// gridSectionInverse maps each non-origin section to the section on
// the opposite side of the reference tile.
var gridSectionInverse = map[GridSection]GridSection{
	SectionTop:         SectionBottom,
	SectionBottom:      SectionTop,
	SectionLeft:        SectionRight,
	SectionRight:       SectionLeft,
	SectionTopLeft:     SectionBottomRight,
	SectionTopRight:    SectionBottomLeft,
	SectionBottomLeft:  SectionTopRight,
	SectionBottomRight: SectionTopLeft,
}

// InverseGridSection returns the section opposite s across the
// reference tile; s must not be [SectionOrigin].
func InverseGridSection(s GridSection) (GridSection, bool) {
	inv, ok := gridSectionInverse[s]
	return inv, ok
}

// GetGridSection classifies cell's position relative to originTile
// into one of the nine [GridSection] regions.
func GetGridSection(cell Cell, originTile Tile) GridSection {
	if originTile.ContainsCell(cell) {
		return SectionOrigin
	}

	c := originTile.AsCorners()

	switch {
	case cell.X >= c.C0.X && cell.X <= c.C3.X && cell.Y < c.C0.Y:
		return SectionTop
	case cell.X >= c.C0.X && cell.X <= c.C3.X && cell.Y > c.C3.Y:
		return SectionBottom
	case cell.Y >= c.C0.Y && cell.Y <= c.C3.Y && cell.X < c.C0.X:
		return SectionLeft
	case cell.Y >= c.C0.Y && cell.Y <= c.C3.Y && cell.X > c.C3.X:
		return SectionRight
	case cell.X < c.C0.X && cell.Y < c.C0.Y:
		return SectionTopLeft
	case cell.X > c.C3.X && cell.Y < c.C0.Y:
		return SectionTopRight
	case cell.X < c.C0.X && cell.Y > c.C3.Y:
		return SectionBottomLeft
	case cell.X > c.C3.X && cell.Y > c.C3.Y:
		return SectionBottomRight
	default:
		panic(unreachablef("GetGridSection: cell %v classified into no region relative to tile %v", cell, originTile))
	}
}

// sortedByC0X returns tiles sorted by ascending top-left X, stable on
// ties.
func sortedByC0X(tiles []Tile) []Tile {
	out := make([]Tile, len(tiles))
	copy(out, tiles)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AsCorners().C0.X < out[j].AsCorners().C0.X
	})
	return out
}

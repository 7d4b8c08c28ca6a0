// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

// Tile is an immutable axis-aligned integer rectangle carrying an
// opaque [Handle] identity. The zero value is a degenerate
// zero-handle tile at the origin; use [NewTile] to build one.
type Tile struct {
	rect   TileAsCorners
	handle Handle
}

// NewTile builds a Tile from any of the three rectangle encodings,
// normalising corner input as needed.
func NewTile(rect interface{ AsCorners() TileAsCorners }, handle Handle) Tile {
	return Tile{rect: rect.AsCorners(), handle: handle}
}

// NewTileFromCorners builds a Tile directly from a (possibly
// un-normalised) corner pair.
func NewTileFromCorners(c0, c3 Cell, handle Handle) Tile {
	return Tile{rect: TileAsCorners{C0: c0, C3: c3}.Normalize(), handle: handle}
}

// Handle returns the tile's identity.
func (t Tile) Handle() Handle { return t.handle }

// WithRect returns a copy of t with a new rectangle, keeping its
// handle.
func (t Tile) WithRect(rect interface{ AsCorners() TileAsCorners }) Tile {
	return Tile{rect: rect.AsCorners(), handle: t.handle}
}

// WithHandle returns a copy of t with a new handle, keeping its
// rectangle.
func (t Tile) WithHandle(handle Handle) Tile {
	return Tile{rect: t.rect, handle: handle}
}

// AsCorners returns the tile's normalised corner encoding.
func (t Tile) AsCorners() TileAsCorners { return t.rect }

// AsStep returns the tile's (cell, step) encoding.
func (t Tile) AsStep() TileAsStep { return t.rect.AsStep() }

// AsSpan returns the tile's (cell, span) encoding.
func (t Tile) AsSpan() TileAsSpan { return t.rect.AsSpan() }

// Area returns the number of cells the tile covers.
func (t Tile) Area() int {
	s := t.AsSpan()
	return s.Span.X * s.Span.Y
}

// CornerCells returns the tile's four corners in the fixed order
// top-left, top-right, bottom-left, bottom-right:
//
//	0--1
//	|  |
//	2--3
func (t Tile) CornerCells() [4]Cell {
	s := t.AsStep()
	return [4]Cell{
		s.Cell,
		s.Cell.Add(Cell{X: s.Step.X, Y: 0}),
		s.Cell.Add(Cell{X: 0, Y: s.Step.Y}),
		s.Cell.Add(s.Step),
	}
}

// ContainsCell reports whether cell lies within the tile, inclusive
// of its edges.
func (t Tile) ContainsCell(cell Cell) bool {
	c := t.rect
	return c.C0.X <= cell.X && cell.X <= c.C3.X && c.C0.Y <= cell.Y && cell.Y <= c.C3.Y
}

// Intersection returns the rectangle common to t and other, with t's
// handle, or (Tile{}, false) if they do not overlap. It handles three
// cases: a corner of one lies inside the other; a "plus" cross where
// each tile's extent on one axis lies entirely inside the other's
// extent on that axis without either containing a corner of the
// other; and disjoint tiles. Degenerate (line or point) overlaps
// count as an intersection.
func (t Tile) Intersection(other Tile) (Tile, bool) {
	var cells []Cell
	for _, c := range t.CornerCells() {
		if other.ContainsCell(c) {
			cells = append(cells, c)
		}
	}
	for _, c := range other.CornerCells() {
		if t.ContainsCell(c) {
			cells = append(cells, c)
		}
	}
	tc, oc := t.AsCorners(), other.AsCorners()
	box := TileAsCorners{
		C0: Cell{X: max(tc.C0.X, oc.C0.X), Y: max(tc.C0.Y, oc.C0.Y)},
		C3: Cell{X: min(tc.C3.X, oc.C3.X), Y: min(tc.C3.Y, oc.C3.Y)},
	}
	if len(cells) > 0 {
		// A contributed corner proves the overlap; the common rectangle
		// is the clip of both extents (the corners alone can cover only
		// part of it when one tile's edge pokes into the other).
		return Tile{rect: box, handle: t.handle}, true
	}

	// Neither tile has a corner inside the other, which a pure corner
	// check would read as "no overlap" — but a plus/cross shape (one
	// tile's full extent on an axis nested inside the other's, on both
	// axes, in opposite order) overlaps in its central rectangle
	// without either tile contributing a corner to it.
	crossing := (tc.C0.X >= oc.C0.X && tc.C3.X <= oc.C3.X && oc.C0.Y >= tc.C0.Y && oc.C3.Y <= tc.C3.Y) ||
		(oc.C0.X >= tc.C0.X && oc.C3.X <= tc.C3.X && tc.C0.Y >= oc.C0.Y && tc.C3.Y <= oc.C3.Y)
	if !crossing {
		return Tile{}, false
	}
	return Tile{rect: box, handle: t.handle}, true
}

// tileFromCells returns the bounding rectangle of cells, tagged with
// handle. cells must be non-empty.
func tileFromCells(cells []Cell, handle Handle) Tile {
	box := TileAsCorners{C0: cells[0], C3: cells[0]}
	for _, c := range cells[1:] {
		box.C0.X = min(box.C0.X, c.X)
		box.C0.Y = min(box.C0.Y, c.Y)
		box.C3.X = max(box.C3.X, c.X)
		box.C3.Y = max(box.C3.Y, c.Y)
	}
	return Tile{rect: box, handle: handle}
}

// IntersectsWith reports whether t and other overlap at all.
func (t Tile) IntersectsWith(other Tile) bool {
	_, ok := t.Intersection(other)
	return ok
}

// ContainsTile reports whether t fully contains other.
func (t Tile) ContainsTile(other Tile) bool {
	inter, ok := t.Intersection(other)
	return ok && inter.rect == other.rect
}

// MinMax returns the smallest rectangle containing both t and other,
// keeping t's handle.
func (t Tile) MinMax(other Tile) Tile {
	a, b := t.rect, other.rect
	return Tile{
		rect: TileAsCorners{
			C0: Cell{X: min(a.C0.X, a.C3.X, b.C0.X, b.C3.X), Y: min(a.C0.Y, a.C3.Y, b.C0.Y, b.C3.Y)},
			C3: Cell{X: max(a.C0.X, a.C3.X, b.C0.X, b.C3.X), Y: max(a.C0.Y, a.C3.Y, b.C0.Y, b.C3.Y)},
		},
		handle: t.handle,
	}
}

// GetBox returns the bounding box of tiles, tagged with the first
// tile's handle. tiles must be non-empty.
func GetBox(tiles []Tile) Tile {
	box := tiles[0]
	for _, t := range tiles[1:] {
		box = box.MinMax(t)
	}
	return box
}

// ShredHorizontally returns one Horizontal [Line] for every integer Y
// the tile spans.
func (t Tile) ShredHorizontally() []Line {
	c := t.rect
	lines := make([]Line, 0, c.C3.Y-c.C0.Y+1)
	for y := c.C0.Y; y <= c.C3.Y; y++ {
		lines = append(lines, Line{Coordinate: y, Orientation: Horizontal})
	}
	return lines
}

// ShredVertically returns one Vertical [Line] for every integer X the
// tile spans.
func (t Tile) ShredVertically() []Line {
	c := t.rect
	lines := make([]Line, 0, c.C3.X-c.C0.X+1)
	for x := c.C0.X; x <= c.C3.X; x++ {
		lines = append(lines, Line{Coordinate: x, Orientation: Vertical})
	}
	return lines
}

// RotateClockwise rotates both corners 90 degrees clockwise about the
// origin and re-normalises, keeping the handle.
func (t Tile) RotateClockwise() Tile {
	return t.WithRect(TileAsCorners{C0: t.rect.C0.RotateClockwise(), C3: t.rect.C3.RotateClockwise()})
}

// RotateCounterclockwise rotates both corners 90 degrees
// counterclockwise about the origin and re-normalises, keeping the
// handle.
func (t Tile) RotateCounterclockwise() Tile {
	return t.WithRect(TileAsCorners{C0: t.rect.C0.RotateCounterclockwise(), C3: t.rect.C3.RotateCounterclockwise()})
}

// Rotate rotates the tile as [Cell.Rotate] would, applied to both
// corners.
func (t Tile) Rotate(from, to CardinalDirection) Tile {
	return t.WithRect(TileAsCorners{
		C0: t.rect.C0.Rotate(from, to),
		C3: t.rect.C3.Rotate(from, to),
	})
}

// MirrorHorizontally mirrors both corners across the Y axis.
func (t Tile) MirrorHorizontally() Tile {
	return t.WithRect(TileAsCorners{C0: t.rect.C0.MirrorHorizontally(), C3: t.rect.C3.MirrorHorizontally()})
}

// MirrorVertically mirrors both corners across the X axis.
func (t Tile) MirrorVertically() Tile {
	return t.WithRect(TileAsCorners{C0: t.rect.C0.MirrorVertically(), C3: t.rect.C3.MirrorVertically()})
}

// Mirror mirrors the tile across the axis perpendicular to
// orientation: Horizontal mirrors left-right, Vertical mirrors
// top-bottom.
func (t Tile) Mirror(orientation Orientation) Tile {
	if orientation == Horizontal {
		return t.MirrorHorizontally()
	}
	return t.MirrorVertically()
}

// Translate shifts both corners by delta.
func (t Tile) Translate(delta Cell) Tile {
	return t.WithRect(TileAsCorners{C0: t.rect.C0.Add(delta), C3: t.rect.C3.Add(delta)})
}

// CornersC0Add returns a copy of t with delta added to C0 only.
func (t Tile) CornersC0Add(delta Cell) Tile {
	return t.WithRect(TileAsCorners{C0: t.rect.C0.Add(delta), C3: t.rect.C3})
}

// CornersC3Add returns a copy of t with delta added to C3 only.
func (t Tile) CornersC3Add(delta Cell) Tile {
	return t.WithRect(TileAsCorners{C0: t.rect.C0, C3: t.rect.C3.Add(delta)})
}

// UnOccupy removes the overlap with area from t, returning a smaller
// rectangle when the remainder is still a rectangle, or (Tile{},
// false) when it is not (the cut would leave an L-shape). When prefer
// is Vertical the cut is performed in a frame rotated 90 degrees so
// it can be chosen along the X axis either way.
func (t Tile) UnOccupy(area Tile, prefer Orientation) (Tile, bool) {
	cur := t
	a := area
	rotate := prefer == Vertical
	if rotate {
		cur = cur.Rotate(Up, Right)
		a = a.Rotate(Up, Right)
	}

	cur, ok := cur.unOccupyHorizontal(a)
	if !ok {
		return Tile{}, false
	}

	if rotate {
		cur = cur.Rotate(Right, Up)
	}
	return cur, true
}

// unOccupyHorizontal implements [Tile.UnOccupy] for prefer ==
// Horizontal, per spec §4.1: count corners of self that coincide with
// corners of the intersection (0 -> L-shape, refuse; 1 or 2 ->
// proceed; 3 is unreachable for a corner-aligned rectangle cut); then
// cut self's far edge at the freed area's boundary, mirroring first
// if the freed area is flush against self's top.
func (t Tile) unOccupyHorizontal(area Tile) (Tile, bool) {
	cur := t

	inter, ok := cur.Intersection(area)
	if !ok {
		return cur, true
	}

	curCorners := cur.CornerCells()
	interCorners := inter.CornerCells()
	matching := 0
	for _, a := range curCorners {
		for _, b := range interCorners {
			if a == b {
				matching++
			}
		}
	}

	switch {
	case matching == 1 || matching == 2:
		// proceed
	case matching == 3:
		panic(unreachablef("Tile.unOccupyHorizontal: 3 matching corners on a corner-aligned rectangle cut"))
	default:
		return Tile{}, false
	}

	areaToFree := NewTileFromCorners(
		Cell{X: cur.rect.C0.X, Y: inter.rect.C0.Y},
		Cell{X: cur.rect.C3.X, Y: inter.rect.C3.Y},
		NoHandle,
	)

	mirror := areaToFree.rect.C0 == cur.rect.C0
	if mirror {
		cur = cur.MirrorVertically()
		areaToFree = areaToFree.MirrorVertically()
	}

	cur = cur.WithRect(TileAsCorners{
		C0: cur.rect.C0,
		C3: areaToFree.CornerCells()[1].Sub(Cell{X: 0, Y: 1}),
	})

	if mirror {
		cur = cur.MirrorVertically()
	}

	return cur, true
}

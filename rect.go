// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

// Orientation is the axis a [Line] runs along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "HORIZONTAL"
	}
	return "VERTICAL"
}

// Invert returns the other orientation.
func (o Orientation) Invert() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// TileAsCorners is a rectangle expressed as its normalised corners:
// C0 is the top-left cell (minimum X and Y), C3 the bottom-right cell
// (maximum X and Y). The zero value is a single degenerate cell at
// the origin.
type TileAsCorners struct {
	C0, C3 Cell
}

// Normalize swaps coordinates as needed so C0 is top-left and C3 is
// bottom-right. It is idempotent: Normalize(Normalize(r)) == Normalize(r).
func (r TileAsCorners) Normalize() TileAsCorners {
	return TileAsCorners{
		C0: Cell{X: min(r.C0.X, r.C3.X), Y: min(r.C0.Y, r.C3.Y)},
		C3: Cell{X: max(r.C0.X, r.C3.X), Y: max(r.C0.Y, r.C3.Y)},
	}
}

// AsCorners returns r normalised, so a corner pair can be passed
// wherever any of the three encodings is accepted.
func (r TileAsCorners) AsCorners() TileAsCorners {
	return r.Normalize()
}

// AsStep converts a normalised corner rectangle to the (cell, step)
// encoding.
func (r TileAsCorners) AsStep() TileAsStep {
	return TileAsStep{Cell: r.C0, Step: r.C3.Sub(r.C0)}
}

// AsSpan converts a normalised corner rectangle to the (cell, span)
// encoding.
func (r TileAsCorners) AsSpan() TileAsSpan {
	return TileAsSpan{Cell: r.C0, Span: r.C3.Sub(r.C0).Add(Cell{X: 1, Y: 1})}
}

// TileAsStep is a rectangle expressed as its top-left cell and the
// step (non-negative delta) to the bottom-right cell.
type TileAsStep struct {
	Cell Cell
	Step Cell
}

// AsCorners converts to the normalised corner encoding.
func (r TileAsStep) AsCorners() TileAsCorners {
	return TileAsCorners{C0: r.Cell, C3: r.Cell.Add(r.Step)}.Normalize()
}

// TileAsSpan is a rectangle expressed as its top-left cell and its
// span (width, height) in cells; Span.X >= 1 and Span.Y >= 1 for any
// normalised rectangle.
type TileAsSpan struct {
	Cell Cell
	Span Cell
}

// AsCorners converts to the normalised corner encoding.
func (r TileAsSpan) AsCorners() TileAsCorners {
	return TileAsCorners{
		C0: r.Cell,
		C3: r.Cell.Add(r.Span).Add(Cell{X: -1, Y: -1}),
	}.Normalize()
}

// Line is an infinite axis-aligned line: all cells with X == Coordinate
// (Vertical) or Y == Coordinate (Horizontal).
type Line struct {
	Coordinate  int
	Orientation Orientation
}

// FullyContains reports whether t is degenerate along the line's axis
// and lies exactly on the line.
func (l Line) FullyContains(t Tile) bool {
	s := t.AsStep()
	switch l.Orientation {
	case Horizontal:
		return s.Step.Y == 0 && s.Cell.Y == l.Coordinate
	default:
		return s.Step.X == 0 && s.Cell.X == l.Coordinate
	}
}

// Intersects reports whether the line crosses t's extent on the
// relevant axis, inclusive of the boundary.
func (l Line) Intersects(t Tile) bool {
	c := t.AsCorners()
	switch l.Orientation {
	case Horizontal:
		return c.C0.Y <= l.Coordinate && l.Coordinate <= c.C3.Y
	default:
		return c.C0.X <= l.Coordinate && l.Coordinate <= c.C3.X
	}
}

// Touches reports whether the line runs exactly along one of t's two
// edges on the relevant axis.
func (l Line) Touches(t Tile) bool {
	c := t.AsCorners()
	switch l.Orientation {
	case Horizontal:
		return l.Coordinate == c.C0.Y || l.Coordinate == c.C3.Y
	default:
		return l.Coordinate == c.C0.X || l.Coordinate == c.C3.X
	}
}

// OnPositiveSide reports whether the line's coordinate is at or past
// t's maximum on the relevant axis.
func (l Line) OnPositiveSide(t Tile) bool {
	c := t.AsCorners()
	switch l.Orientation {
	case Horizontal:
		return l.Coordinate >= c.C3.Y
	default:
		return l.Coordinate >= c.C3.X
	}
}

// OnNegativeSide reports whether the line's coordinate is at or
// before t's minimum on the relevant axis.
func (l Line) OnNegativeSide(t Tile) bool {
	c := t.AsCorners()
	switch l.Orientation {
	case Horizontal:
		return l.Coordinate <= c.C0.Y
	default:
		return l.Coordinate <= c.C0.X
	}
}

// RotateClockwise returns the line as it appears after rotating the
// whole plane 90 degrees clockwise about the origin.
func (l Line) RotateClockwise() Line {
	coord := l.Coordinate
	if l.Orientation == Horizontal {
		coord = -coord
	}
	return Line{Coordinate: coord, Orientation: l.Orientation.Invert()}
}

// RotateCounterclockwise returns the line as it appears after
// rotating the whole plane 90 degrees counterclockwise about the
// origin.
func (l Line) RotateCounterclockwise() Line {
	coord := l.Coordinate
	if l.Orientation == Vertical {
		coord = -coord
	}
	return Line{Coordinate: coord, Orientation: l.Orientation.Invert()}
}

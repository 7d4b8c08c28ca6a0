// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import "sort"

// GetCrossCell returns the single cell the border's sides meet at: for
// a four-way border (both axes populated) the corner shared by the
// vertical and horizontal center tiles; for a two-way border (only
// one axis populated) the defining corner of that axis's bounding
// box. With strict set, only a genuine four-way cross counts.
func (sb SharedBorders) GetCrossCell(strict bool) (Cell, bool) {
	vertical, horizontal, vOK, hOK := sb.AsTiles()

	switch {
	case vOK && hOK:
		vc := vertical.AsCorners()
		vertical = vertical.WithRect(TileAsCorners{C0: vc.C0, C3: vc.C3.Add(Cell{X: 0, Y: 1})})
		hc := horizontal.AsCorners()
		horizontal = horizontal.WithRect(TileAsCorners{C0: hc.C0, C3: hc.C3.Add(Cell{X: 1, Y: 0})})
		inter, ok := vertical.Intersection(horizontal)
		if !ok {
			return Cell{}, false
		}
		return inter.AsCorners().C0, true
	case strict:
		return Cell{}, false
	case vOK:
		return vertical.AsCorners().C0, true
	case hOK:
		return horizontal.AsCorners().C0, true
	default:
		return Cell{}, false
	}
}

// minSpanX returns the minimum X span among tiles, or 1 if empty.
func minSpanX(tiles map[Handle]Tile) int {
	min_ := -1
	for _, t := range tiles {
		s := t.AsSpan().Span.X
		if min_ == -1 || s < min_ {
			min_ = s
		}
	}
	if min_ == -1 {
		return 1
	}
	return min_
}

// minSpanY returns the minimum Y span among tiles, or 1 if empty.
func minSpanY(tiles map[Handle]Tile) int {
	min_ := -1
	for _, t := range tiles {
		s := t.AsSpan().Span.Y
		if min_ == -1 || s < min_ {
			min_ = s
		}
	}
	if min_ == -1 {
		return 1
	}
	return min_
}

// BorderDragCache precomputes, from a single [SharedBorders] grab
// point, everything an interactive drag needs to repeatedly query
// without recomputing border analysis on every mouse-move: per-axis
// clamp bounds and snap candidates.
type BorderDragCache struct {
	borders SharedBorders
	grid    Grid
	cursor  Cell

	maxDeltaLeft, maxDeltaRight   int
	maxDeltaTop, maxDeltaBottom   int
	snapX, snapY                  []int
}

// BuildBorderDragCache precomputes a drag cache for borders grabbed
// from grid at cursor.
func BuildBorderDragCache(borders SharedBorders, grid Grid, cursor Cell) BorderDragCache {
	c := BorderDragCache{borders: borders, grid: grid, cursor: cursor}

	c.maxDeltaLeft = minSpanX(borders.Left) - 1
	c.maxDeltaRight = minSpanX(borders.Right) - 1
	c.maxDeltaTop = minSpanY(borders.Top) - 1
	c.maxDeltaBottom = minSpanY(borders.Bottom) - 1

	vertical, horizontal, vOK, hOK := borders.AsTiles()
	if vOK {
		c.snapX = clampInts(potentialLeftEdgeSnapPoints(grid, vertical), -c.maxDeltaLeft+vertical.AsCorners().C0.X, c.maxDeltaRight+vertical.AsCorners().C0.X)
	}
	if hOK {
		c.snapY = clampInts(potentialLeftEdgeSnapPoints(grid.RotateCounterclockwise(), horizontal.RotateCounterclockwise()), -c.maxDeltaTop+horizontal.AsCorners().C0.Y, c.maxDeltaBottom+horizontal.AsCorners().C0.Y)
	}

	return c
}

// potentialLeftEdgeSnapPoints finds the left-edge X coordinates of
// tiles sitting just above or just below box that would, if the
// border snapped to them, produce a visually aligned edge. It checks
// directly above by scanning once, and directly below by repeating
// the same above-scan against a vertically mirrored grid and box.
func potentialLeftEdgeSnapPoints(grid Grid, box Tile) []int {
	above := potentialTopSnapPoints(grid, box)

	mirroredGrid := grid.MirrorVertically()
	mirroredBox := box.MirrorVertically()
	below := potentialTopSnapPoints(mirroredGrid, mirroredBox)

	return append(above, below...)
}

// potentialTopSnapPoints detects tiles directly above box (their
// bottom edge one row above box's top edge) and records each one's
// left-edge X coordinate.
func potentialTopSnapPoints(grid Grid, box Tile) []int {
	bc := box.AsCorners()
	var xs []int
	for _, t := range grid.tiles {
		tc := t.AsCorners()
		if tc.C3.Y == bc.C0.Y-1 && tc.C3.X >= bc.C0.X && tc.C0.X <= bc.C3.X {
			xs = append(xs, tc.C0.X)
		}
	}
	return xs
}

func clampInts(xs []int, lo, hi int) []int {
	out := xs[:0]
	for _, x := range xs {
		if x >= lo && x <= hi {
			out = append(out, x)
		}
	}
	return out
}

// Drag moves the border by delta (clamped per-axis to the
// precomputed max deltas, then snapped to the nearest candidate
// within snapProximity on each axis) and returns the resulting grid
// along with the borders refreshed against it. Dragging twice with
// the same target cell produces the same result both times (applying
// a delta of zero is a no-op once already at that position).
func (c BorderDragCache) Drag(delta Cell, snapProximity int) (Grid, SharedBorders) {
	dx := clamp(delta.X, -c.maxDeltaLeft, c.maxDeltaRight)
	dy := clamp(delta.Y, -c.maxDeltaTop, c.maxDeltaBottom)

	if len(c.snapX) > 0 {
		dx += nearestSnapAdjustment(c.cursor.X+dx, c.snapX, snapProximity)
	}
	if len(c.snapY) > 0 {
		dy += nearestSnapAdjustment(c.cursor.Y+dy, c.snapY, snapProximity)
	}

	var replacements []Tile
	for _, t := range c.borders.Left {
		cc := t.AsCorners()
		replacements = append(replacements, t.WithRect(TileAsCorners{C0: cc.C0, C3: cc.C3.Add(Cell{X: dx, Y: 0})}))
	}
	for _, t := range c.borders.Right {
		cc := t.AsCorners()
		replacements = append(replacements, t.WithRect(TileAsCorners{C0: cc.C0.Add(Cell{X: dx, Y: 0}), C3: cc.C3}))
	}
	for _, t := range c.borders.Top {
		cc := t.AsCorners()
		replacements = append(replacements, t.WithRect(TileAsCorners{C0: cc.C0, C3: cc.C3.Add(Cell{X: 0, Y: dy})}))
	}
	for _, t := range c.borders.Bottom {
		cc := t.AsCorners()
		replacements = append(replacements, t.WithRect(TileAsCorners{C0: cc.C0.Add(Cell{X: 0, Y: dy}), C3: cc.C3}))
	}

	newGrid := c.grid.ReplaceTiles(replacements)
	newBorders := c.borders.PullCoords(newGrid)
	return newGrid, newBorders
}

// DragTo is Drag computed from an absolute target cell rather than a
// relative delta.
func (c BorderDragCache) DragTo(to Cell, snapProximity int) (Grid, SharedBorders) {
	return c.Drag(to.Sub(c.cursor), snapProximity)
}

// clamp bounds v to [-lo, hi]; lo and hi are both given as
// non-negative magnitudes.
func clamp(v, lo, hi int) int {
	if v < -lo {
		v = -lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// nearestSnapAdjustment returns the smallest-magnitude delta that
// moves value to the nearest candidate within proximity, or 0 if none
// qualifies. When a candidate below value and one above it are
// equally close, the lower one wins (candidates are scanned in
// ascending order and only a strictly smaller adjustment replaces
// the current best).
func nearestSnapAdjustment(value int, candidates []int, proximity int) int {
	sorted := append([]int(nil), candidates...)
	sort.Ints(sorted)

	best := 0
	found := false
	for _, c := range sorted {
		adj := c - value
		if abs(adj) > proximity {
			continue
		}
		if !found || abs(adj) < abs(best) {
			best = adj
			found = true
		}
	}
	return best
}

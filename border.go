// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

// BorderMode selects how far a shared border is traced outward from
// its starting tile.
type BorderMode int

const (
	// BorderShortest stops as soon as the tiles on each side of the
	// border stop lining up exactly.
	BorderShortest BorderMode = iota
	// BorderLongest keeps extending the border through any tile whose
	// edge touches the current border's extremes, even if that widens
	// or narrows the aligned run.
	BorderLongest
)

// SharedBorders describes the tiles immediately on each side of a
// border, keyed by which side of the border they sit on. The
// vertical-axis sides (Left, Right) and horizontal-axis sides (Top,
// Bottom) are filled independently, so one tile can appear in a set
// of each axis, as in [Grid.GetSharedBordersNear]'s results; most
// other calls populate only the axis they were asked about
// (left/right, or top/bottom via a 90-degree detour).
type SharedBorders struct {
	Left, Right, Top, Bottom map[Handle]Tile
}

// EmptySharedBorders returns a SharedBorders with all four sides
// empty.
func EmptySharedBorders() SharedBorders {
	return SharedBorders{
		Left:   map[Handle]Tile{},
		Right:  map[Handle]Tile{},
		Top:    map[Handle]Tile{},
		Bottom: map[Handle]Tile{},
	}
}

func setOf(tiles ...Tile) map[Handle]Tile {
	m := make(map[Handle]Tile, len(tiles))
	for _, t := range tiles {
		m[t.Handle()] = t
	}
	return m
}

// PullCoords refreshes every tile in sb by looking its handle back up
// in grid, discarding any tile whose handle no longer exists there.
// Use this after an edit to re-anchor a SharedBorders computed
// against an older grid.
func (sb SharedBorders) PullCoords(grid Grid) SharedBorders {
	pull := func(m map[Handle]Tile) map[Handle]Tile {
		out := map[Handle]Tile{}
		for h := range m {
			if t, ok := grid.TryGetTileByHandle(h); ok {
				out[h] = t
			}
		}
		return out
	}
	return SharedBorders{
		Left:   pull(sb.Left),
		Right:  pull(sb.Right),
		Top:    pull(sb.Top),
		Bottom: pull(sb.Bottom),
	}
}

// AsTiles collapses the border's sides into at most two bounding
// rectangles: a vertical one spanning the right-side tiles' left
// edges and a horizontal one spanning the bottom-side tiles' top
// edges. Either return is (Tile{}, false) if the corresponding side
// is empty.
func (sb SharedBorders) AsTiles() (vertical, horizontal Tile, verticalOK, horizontalOK bool) {
	if len(sb.Right) > 0 {
		var cells []Cell
		for _, t := range sb.Right {
			cc := t.CornerCells()
			cells = append(cells, cc[0], cc[2])
		}
		vertical = tileFromCells(cells, NoHandle)
		verticalOK = true
	}
	if len(sb.Bottom) > 0 {
		var cells []Cell
		for _, t := range sb.Bottom {
			cc := t.CornerCells()
			cells = append(cells, cc[0], cc[1])
		}
		horizontal = tileFromCells(cells, NoHandle)
		horizontalOK = true
	}
	return
}

// Union merges sb with other, side by side.
func (sb SharedBorders) Union(other SharedBorders) SharedBorders {
	merge := func(a, b map[Handle]Tile) map[Handle]Tile {
		out := make(map[Handle]Tile, len(a)+len(b))
		for h, t := range a {
			out[h] = t
		}
		for h, t := range b {
			out[h] = t
		}
		return out
	}
	return SharedBorders{
		Left:   merge(sb.Left, other.Left),
		Right:  merge(sb.Right, other.Right),
		Top:    merge(sb.Top, other.Top),
		Bottom: merge(sb.Bottom, other.Bottom),
	}
}

func rotateSet(m map[Handle]Tile) map[Handle]Tile {
	out := make(map[Handle]Tile, len(m))
	for h, t := range m {
		r := t.RotateClockwise()
		out[h] = r
	}
	return out
}

// RotateClockwise returns sb as it would appear after rotating the
// whole grid 90 degrees clockwise: each side's tiles rotate, and the
// sides themselves cycle bottom->left, top->right, left->top,
// right->bottom.
func (sb SharedBorders) RotateClockwise() SharedBorders {
	return SharedBorders{
		Left:   rotateSet(sb.Bottom),
		Right:  rotateSet(sb.Top),
		Top:    rotateSet(sb.Left),
		Bottom: rotateSet(sb.Right),
	}
}

// RotateCounterclockwise returns sb as it would appear after rotating
// the whole grid 90 degrees counterclockwise.
func (sb SharedBorders) RotateCounterclockwise() SharedBorders {
	return sb.RotateClockwise().RotateClockwise().RotateClockwise()
}

// Rotate returns sb rotated as a grid rotation from `from` to `to`
// would leave it.
func (sb SharedBorders) Rotate(from, to CardinalDirection) SharedBorders {
	switch mod4(int(to) - int(from)) {
	case 0:
		return sb
	case 1:
		return sb.RotateClockwise()
	case 2:
		return sb.RotateClockwise().RotateClockwise()
	case 3:
		return sb.RotateCounterclockwise()
	default:
		panic(unreachablef("SharedBorders.Rotate: mod4 produced a value outside 0..3"))
	}
}

// GetLeftBorder returns the tiles immediately left and right of
// handle's tile's left edge, per mode.
func (g Grid) GetLeftBorder(handle Handle, mode BorderMode) (SharedBorders, error) {
	switch mode {
	case BorderShortest:
		return g.GetShortestLeftBorder(handle)
	case BorderLongest:
		return g.GetLongestLeftBorder(handle)
	default:
		return SharedBorders{}, unsupportedf("GetLeftBorder: unknown mode %d", mode)
	}
}

// GetShortestLeftBorder traces the run of tiles whose edges line up
// exactly with handle's tile's left edge, widening the window and
// swapping sides until the set of tiles facing it from across the
// border stops changing. The returned Left set holds tiles on the far
// (geometrically left) side of the border; Right holds tiles on the
// near side, including handle's own tile.
func (g Grid) GetShortestLeftBorder(handle Handle) (SharedBorders, error) {
	tile, err := g.GetTileByHandle(handle)
	if err != nil {
		return SharedBorders{}, err
	}
	tc := tile.AsCorners()

	var possibleLeft, possibleRight []Tile
	for _, t := range g.tiles {
		c := t.AsCorners()
		if c.C3.X == tc.C0.X-1 {
			possibleLeft = append(possibleLeft, t)
		}
		if c.C0.X == tc.C0.X {
			possibleRight = append(possibleRight, t)
		}
	}

	if len(possibleLeft) == 0 {
		return SharedBorders{Left: map[Handle]Tile{}, Right: setOf(possibleRight...), Top: map[Handle]Tile{}, Bottom: map[Handle]Tile{}}, nil
	}

	yMin, yMax := tc.C0.Y, tc.C3.Y
	swapped := false
	tilesRight := map[Handle]Tile{tile.Handle(): tile}
	tilesLeft := map[Handle]Tile{}

	for {
		detector := NewTileFromCorners(Cell{X: tc.C0.X - 1, Y: yMin}, Cell{X: tc.C0.X, Y: yMax}, NoHandle)
		for _, tl := range possibleLeft {
			if tl.IntersectsWith(detector) {
				tilesLeft[tl.Handle()] = tl
			}
		}

		newYMin, newYMax := yMin, yMax
		first := true
		for _, t := range tilesLeft {
			c := t.AsCorners()
			if first {
				newYMin, newYMax = c.C0.Y, c.C3.Y
				first = false
				continue
			}
			newYMin = min(newYMin, c.C0.Y)
			newYMax = max(newYMax, c.C3.Y)
		}

		if newYMin == yMin && newYMax == yMax {
			break
		}
		yMin, yMax = newYMin, newYMax

		tilesLeft, tilesRight = tilesRight, tilesLeft
		possibleLeft, possibleRight = possibleRight, possibleLeft
		swapped = !swapped
	}

	if swapped {
		tilesLeft, tilesRight = tilesRight, tilesLeft
	}

	return SharedBorders{Left: tilesLeft, Right: tilesRight, Top: map[Handle]Tile{}, Bottom: map[Handle]Tile{}}, nil
}

// GetLongestLeftBorder extends [Grid.GetShortestLeftBorder] outward:
// as long as some tile sits directly above or below the topmost or
// bottommost tile of the border's right (near) set, that tile's own
// shortest left border is folded in, and the search repeats from the
// new extremes.
func (g Grid) GetLongestLeftBorder(handle Handle) (SharedBorders, error) {
	sb, err := g.GetShortestLeftBorder(handle)
	if err != nil {
		return SharedBorders{}, err
	}

	for {
		var a, b Tile
		first := true
		for _, t := range sb.Right {
			c := t.AsCorners()
			if first || c.C0.Y < a.AsCorners().C0.Y {
				a = t
			}
			if first || c.C3.Y > b.AsCorners().C3.Y {
				b = t
			}
			first = false
		}

		extended := false
		for _, t := range g.tiles {
			cc := t.CornerCells()
			aCC := a.CornerCells()
			bCC := b.CornerCells()
			if cc[2] == aCC[0].Add(Cell{X: 0, Y: -1}) || cc[0] == bCC[2].Add(Cell{X: 0, Y: 1}) {
				extended = true
				more, err := g.GetShortestLeftBorder(t.Handle())
				if err != nil {
					return SharedBorders{}, err
				}
				sb = SharedBorders{
					Left:   mergeHandleSets(sb.Left, more.Left),
					Right:  mergeHandleSets(sb.Right, more.Right),
					Top:    map[Handle]Tile{},
					Bottom: map[Handle]Tile{},
				}
			}
		}

		if !extended {
			break
		}
	}

	return sb, nil
}

func mergeHandleSets(a, b map[Handle]Tile) map[Handle]Tile {
	out := make(map[Handle]Tile, len(a)+len(b))
	for h, t := range a {
		out[h] = t
	}
	for h, t := range b {
		out[h] = t
	}
	return out
}

// closest returns the element of candidates nearest to target, or
// (0, false) if its distance exceeds proximity.
func closest(target int, candidates []int, proximity int) (int, bool) {
	best, bestDist := candidates[0], abs(candidates[0]-target)
	for _, c := range candidates[1:] {
		if d := abs(c - target); d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist > proximity {
		return 0, false
	}
	return best, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// GetSharedBordersNear locates the border nearest cell, expanding to
// the full plus-shaped cross of up to four tiles when cell sits close
// to a corner where a vertical and horizontal border meet. Both axes
// are always searched; the plus-shaped refinement runs only in
// [BorderShortest] mode and is skipped when ignorePlus is set, which
// [Grid.GetSharedBordersNear]'s own recursive refinement does to
// avoid expanding forever. A negative proximity returns an error
// wrapping [ErrUnsupported].
func (g Grid) GetSharedBordersNear(cell Cell, proximity int, mode BorderMode, ignorePlus bool) (SharedBorders, error) {
	if proximity < 0 {
		return SharedBorders{}, unsupportedf("GetSharedBordersNear: negative proximity %d", proximity)
	}
	tile, ok := g.TryGetTileByCell(cell)
	if !ok {
		return EmptySharedBorders(), nil
	}

	verticalBorders, err := g.borderAxisNear(cell, tile, proximity, mode)
	if err != nil {
		return SharedBorders{}, err
	}

	rCell := cell.RotateCounterclockwise()
	rTile := tile.RotateCounterclockwise()
	rGrid := g.RotateCounterclockwise()

	horizontalBorders, err := rGrid.borderAxisNear(rCell, rTile, proximity, mode)
	if err != nil {
		return SharedBorders{}, err
	}

	sb := SharedBorders{
		Left:   verticalBorders.Left,
		Right:  verticalBorders.Right,
		Top:    horizontalBorders.Left,
		Bottom: horizontalBorders.Right,
	}.PullCoords(g)

	if ignorePlus || mode == BorderLongest {
		return sb, nil
	}

	vertical, horizontal, vOK, hOK := sb.AsTiles()
	if !vOK || !hOK {
		return sb, nil
	}

	vc := vertical.AsCorners()
	vertical = vertical.WithRect(TileAsCorners{C0: vc.C0, C3: vc.C3.Add(Cell{X: 0, Y: 1})})
	hc := horizontal.AsCorners()
	horizontal = horizontal.WithRect(TileAsCorners{C0: hc.C0, C3: hc.C3.Add(Cell{X: 1, Y: 0})})

	vcc := vertical.CornerCells()
	v1, v2 := vcc[0], vcc[2]
	hcc := horizontal.CornerCells()
	h1, h2 := hcc[0], hcc[1]

	if !(v1 == h1 || v1 == h2 || v2 == h1 || v2 == h2) {
		return sb, nil
	}

	delta := Cell{X: -1, Y: -1}
	if h1 != v1 && h1 != v2 {
		delta.X = 1
	}
	if v1 != h1 && v1 != h2 {
		delta.Y = 1
	}

	intersection, ok := vertical.Intersection(horizontal)
	if !ok {
		panic(unreachablef("GetSharedBordersNear: vertical and horizontal plus-candidates failed to intersect after matching corners"))
	}

	newBaseCell := intersection.AsCorners().C0.Add(delta)

	refined, err := g.GetSharedBordersNear(newBaseCell, proximity, BorderShortest, true)
	if err != nil {
		return SharedBorders{}, err
	}
	return refined.Union(sb), nil
}

// borderAxisNear implements the repeated "which edge of T is the
// cursor closest to" logic [Grid.GetSharedBordersNear] performs once
// per axis (the second time after a 90 degree rotation): near T's own
// left edge, the border of interest is T's own left border; near T's
// right edge, it is the right neighbor's left border (the same
// border, pivoted from the other side).
func (g Grid) borderAxisNear(cell Cell, tile Tile, proximity int, mode BorderMode) (SharedBorders, error) {
	cc := tile.CornerCells()
	leftEdge, rightEdge := cc[0].X, cc[1].X+1
	edge, ok := closest(cell.X, []int{leftEdge, rightEdge}, proximity)
	if !ok {
		return EmptySharedBorders(), nil
	}
	if edge == leftEdge {
		return g.GetLeftBorder(tile.Handle(), mode)
	}
	newTile, ok := g.TryGetTileByCell(Cell{X: rightEdge, Y: cell.Y})
	if !ok {
		return EmptySharedBorders(), nil
	}
	return g.GetLeftBorder(newTile.Handle(), mode)
}

// AlignBorders nudges near-aligned tile edges into exact alignment,
// running one pass per (mirror x axis) combination so every
// orientation of border is visited.
func (g Grid) AlignBorders(proximity int) Grid {
	cur := g
	cur = cur.alignLeftBordersToLeft(proximity)
	cur = cur.MirrorHorizontally()
	cur = cur.alignLeftBordersToLeft(proximity)
	cur = cur.MirrorVertically()
	cur = cur.alignLeftBordersToLeft(proximity)
	cur = cur.MirrorHorizontally()
	cur = cur.alignLeftBordersToLeft(proximity)
	cur = cur.MirrorVertically()
	cur = cur.RotateClockwise()
	cur = cur.alignLeftBordersToLeft(proximity)
	cur = cur.MirrorHorizontally()
	cur = cur.alignLeftBordersToLeft(proximity)
	cur = cur.MirrorVertically()
	cur = cur.alignLeftBordersToLeft(proximity)
	cur = cur.MirrorHorizontally()
	cur = cur.alignLeftBordersToLeft(proximity)
	cur = cur.MirrorVertically()
	cur = cur.RotateCounterclockwise()
	return cur
}

func (g Grid) alignLeftBordersToLeft(proximity int) Grid {
	cur := g
	for _, tile := range g.tiles {
		cur = cur.AlignBelowTileLeftBorderToLeft(tile.Handle(), proximity)
	}
	return cur
}

// AlignBelowTileLeftBorderToLeft nudges the left border of the tile
// directly below handle's tile — the one whose top-left x lies
// closest to handle's own left edge, within proximity cells — so the
// two borders coincide, sliding everything on the matched longest
// shared border along with it.
func (g Grid) AlignBelowTileLeftBorderToLeft(handle Handle, proximity int) Grid {
	tile, err := g.GetTileByHandle(handle)
	if err != nil {
		return g
	}
	tc := tile.AsCorners()

	var below Tile
	haveBelow := false
	minX := 0
	for _, t2 := range g.tiles {
		c2 := t2.AsCorners()
		if c2.C0.Y == tc.C3.Y+1 && c2.C0.X >= tc.C0.X && c2.C0.X <= tc.C3.X && abs(c2.C0.X-tc.C0.X) <= proximity {
			if !haveBelow || c2.C0.X < minX {
				minX = c2.C0.X
				below = t2
				haveBelow = true
			}
		}
	}
	if !haveBelow {
		return g
	}

	deltaX := tc.C0.X - below.AsCorners().C0.X
	sb, err := g.GetLongestLeftBorder(below.Handle())
	if err != nil {
		return g
	}

	var replacements []Tile
	for _, t := range sb.Left {
		c := t.AsCorners()
		replacements = append(replacements, t.WithRect(TileAsCorners{C0: c.C0, C3: c.C3.Add(Cell{X: deltaX, Y: 0})}))
	}
	for _, t := range sb.Right {
		c := t.AsCorners()
		replacements = append(replacements, t.WithRect(TileAsCorners{C0: c.C0.Add(Cell{X: deltaX, Y: 0}), C3: c.C3}))
	}

	return g.ReplaceTiles(replacements)
}

// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"sort"

	"github.com/quadrant/wm/internal/constraint"
)

// ResizeMode selects how [Grid.ResizeAlongX] distributes slack among
// tiles whose row does not need to change span at all.
type ResizeMode int

const (
	// ResizeScale grows or shrinks every tile's span proportionally
	// to its current share of the axis.
	ResizeScale ResizeMode = iota
	// ResizeBalance gives every tile in a row at least an equal share
	// of the new length, regardless of its old span.
	ResizeBalance
)

// ResizeAlongX changes the grid's total width to newXLength,
// redistributing every tile's X span and position. It first asserts
// the grid's invariants, returning that error unchanged if violated.
// Every row of tiles sharing a Y coordinate must sum to newXLength;
// within that constraint, mode picks how the row's slack is shared.
// If the resulting system is infeasible (a row could not be made to
// sum to newXLength within every tile's bounds) ResizeAlongX returns
// an error wrapping [ErrUnsupported]; the request is not obviously
// harmful, it just has no solution with the restricted per-tile
// bounds this solver enforces.
func (g Grid) ResizeAlongX(newXLength int, mode ResizeMode) (Grid, error) {
	if err := g.AssertInvariants(); err != nil {
		return Grid{}, err
	}

	tilesSorted := sortedByC0X(g.tiles)

	type tileVar struct {
		cellX, spanX *constraint.Var
		cellY, spanY int
		handle       Handle
	}

	boxSpanX := g.GetBox().AsSpan().Span.X
	maxTilesInRow := 0
	groups := map[int][]Handle{}
	for y := range g.GetYs() {
		line := Line{Coordinate: y, Orientation: Horizontal}
		for _, tile := range tilesSorted {
			if line.Intersects(tile) {
				groups[y] = append(groups[y], tile.Handle())
			}
		}
		if n := len(groups[y]); n > maxTilesInRow {
			maxTilesInRow = n
		}
	}

	vars := make(map[Handle]*tileVar, len(tilesSorted))
	for _, tile := range tilesSorted {
		span := tile.AsSpan()
		vars[tile.Handle()] = &tileVar{
			cellX:  &constraint.Var{Min: 0, Max: newXLength},
			spanX:  &constraint.Var{Min: 1, Max: newXLength},
			cellY:  span.Cell.Y,
			spanY:  span.Span.Y,
			handle: tile.Handle(),
		}
	}

	for _, tile := range tilesSorted {
		tv := vars[tile.Handle()]
		switch mode {
		case ResizeScale:
			oldSpan := tile.AsSpan().Span.X
			tv.spanX.Min = max(1, (oldSpan*newXLength)/boxSpanX)
		case ResizeBalance:
			if maxTilesInRow > 0 {
				tv.spanX.Min = max(1, newXLength/maxTilesInRow)
			}
		}
		if tv.spanX.Min > tv.spanX.Max {
			tv.spanX.Min = tv.spanX.Max
		}
	}

	solver := constraint.NewSolver()

	var ys []int
	for y := range groups {
		ys = append(ys, y)
	}
	sort.Ints(ys)

	for _, y := range ys {
		handles := groups[y]
		rowVars := make([]*constraint.Var, len(handles))
		for i, h := range handles {
			rowVars[i] = vars[h].spanX
		}
		solver.AddRow(newXLength, rowVars...)
	}

	if !solver.Solve() {
		return Grid{}, unsupportedf("ResizeAlongX: no feasible span assignment for new X length %d", newXLength)
	}

	// Position constraints: within each row, cellX accumulates left
	// to right in sorted order, starting at 0.
	for _, y := range ys {
		handles := groups[y]
		cellX := 0
		for _, h := range handles {
			vars[h].cellX.Fix(cellX)
			cellX += vars[h].spanX.Value()
		}
	}

	newTiles := make([]Tile, len(g.tiles))
	for i, tile := range g.tiles {
		tv := vars[tile.Handle()]
		newTiles[i] = NewTile(TileAsSpan{
			Cell: Cell{X: tv.cellX.Value(), Y: tv.cellY},
			Span: Cell{X: tv.spanX.Value(), Y: tv.spanY},
		}, tile.Handle())
	}

	return g.from(newTiles), nil
}

// Resize changes the grid's total size to newBoundary, resizing along
// X and then, via a clockwise/counterclockwise rotation pair, along
// Y.
func (g Grid) Resize(newBoundary Cell, mode ResizeMode) (Grid, error) {
	afterX, err := g.ResizeAlongX(newBoundary.X, mode)
	if err != nil {
		return Grid{}, err
	}
	rotated, err := afterX.RotateClockwise().ResizeAlongX(newBoundary.Y, mode)
	if err != nil {
		return Grid{}, err
	}
	return rotated.RotateCounterclockwise(), nil
}

// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wm implements the computational core of a 2D tiling-window
// layout engine: a pure, deterministic geometry-and-constraints
// library over axis-aligned integer rectangles ("tiles") arranged in
// a non-overlapping, tightly-covering collection (a "grid").
//
// Every operation is a pure function from inputs to outputs. Grids
// are immutable values; edits return a new Grid rather than mutating
// one in place. The package has no rendering, input handling, or
// persistence concerns — those belong to the host.
package wm

// CardinalDirection is one of the four axis-aligned directions, used
// to drive rotations and to pick the side of a structural edit.
type CardinalDirection int

// The four cardinal directions, in the stable order UP, RIGHT, DOWN,
// LEFT. Arithmetic on CardinalDirection (as used by [Cell.Rotate]) is
// done mod 4 in this order.
const (
	Up CardinalDirection = iota
	Right
	Down
	Left
)

func (d CardinalDirection) String() string {
	switch d {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	default:
		return "CardinalDirection(?)"
	}
}

// Cell is an integer point on the 2D lattice. X grows rightward, Y
// grows downward.
type Cell struct {
	X, Y int
}

// Add returns c + other.
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns c - other.
func (c Cell) Sub(other Cell) Cell {
	return Cell{X: c.X - other.X, Y: c.Y - other.Y}
}

// RotateClockwise returns c rotated 90 degrees clockwise about the
// origin: (x, y) -> (-y, x).
func (c Cell) RotateClockwise() Cell {
	return Cell{X: -c.Y, Y: c.X}
}

// RotateCounterclockwise returns c rotated 90 degrees counterclockwise
// about the origin: (x, y) -> (y, -x).
func (c Cell) RotateCounterclockwise() Cell {
	return Cell{X: c.Y, Y: -c.X}
}

// Rotate returns c as it would appear if the side currently facing
// `from` were rotated to face `to`. The rotation applied is
// (to - from) mod 4 quarter turns clockwise.
func (c Cell) Rotate(from, to CardinalDirection) Cell {
	switch mod4(int(to) - int(from)) {
	case 0:
		return c
	case 1:
		return c.RotateClockwise()
	case 2:
		return c.RotateClockwise().RotateClockwise()
	case 3:
		return c.RotateCounterclockwise()
	default:
		panic(unreachablef("Cell.Rotate: mod4 produced a value outside 0..3"))
	}
}

// MirrorHorizontally negates X, reflecting across the Y axis.
func (c Cell) MirrorHorizontally() Cell {
	return Cell{X: -c.X, Y: c.Y}
}

// MirrorVertically negates Y, reflecting across the X axis.
func (c Cell) MirrorVertically() Cell {
	return Cell{X: c.X, Y: -c.Y}
}

// mod4 returns n mod 4 in the range [0, 3], matching Python's modulo
// semantics for negative n (Go's % can return a negative result).
func mod4(n int) int {
	m := n % 4
	if m < 0 {
		m += 4
	}
	return m
}

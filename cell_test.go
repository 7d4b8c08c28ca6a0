// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellAddSub(t *testing.T) {
	a := Cell{X: 3, Y: 5}
	b := Cell{X: 1, Y: 2}
	assert.Equal(t, Cell{X: 4, Y: 7}, a.Add(b))
	assert.Equal(t, Cell{X: 2, Y: 3}, a.Sub(b))
}

func TestCellRotateClockwiseFourTimesIsIdentity(t *testing.T) {
	c := Cell{X: 3, Y: -2}
	got := c
	for range 4 {
		got = got.RotateClockwise()
	}
	assert.Equal(t, c, got)
}

func TestCellRotateMatchesDirectCalls(t *testing.T) {
	c := Cell{X: 3, Y: -2}
	assert.Equal(t, c, c.Rotate(Up, Up))
	assert.Equal(t, c.RotateClockwise(), c.Rotate(Up, Right))
	assert.Equal(t, c.RotateClockwise().RotateClockwise(), c.Rotate(Up, Down))
	assert.Equal(t, c.RotateCounterclockwise(), c.Rotate(Up, Left))
}

func TestCellMirrorTwiceIsIdentity(t *testing.T) {
	c := Cell{X: 3, Y: -2}
	assert.Equal(t, c, c.MirrorHorizontally().MirrorHorizontally())
	assert.Equal(t, c, c.MirrorVertically().MirrorVertically())
}

func TestCardinalDirectionString(t *testing.T) {
	assert.Equal(t, "UP", Up.String())
	assert.Equal(t, "RIGHT", Right.String())
	assert.Equal(t, "DOWN", Down.String())
	assert.Equal(t, "LEFT", Left.String())
}

func TestHandleSourceNeverRepeats(t *testing.T) {
	src := NewHandleSource()
	seen := map[Handle]bool{}
	for range 100 {
		h := src.Next()
		assert.False(t, seen[h], "handle %d issued twice", h)
		seen[h] = true
	}
}

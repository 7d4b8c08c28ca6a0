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

func TestErrorUnwrapReachesSentinel(t *testing.T) {
	_, err := NewGrid().GetTileByHandle(Handle(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDebugTogglesStackInErrorString(t *testing.T) {
	old := Debug
	defer func() { Debug = old }()

	Debug = false
	_, errNoStack := NewGrid().GetTileByHandle(Handle(1))
	require.Error(t, errNoStack)

	Debug = true
	_, errWithStack := NewGrid().GetTileByHandle(Handle(1))
	require.Error(t, errWithStack)

	assert.NotContains(t, errNoStack.Error(), "{stack:")
	assert.Contains(t, errWithStack.Error(), "{stack:")
}

func TestInvariantErrorsAsRecoversDetail(t *testing.T) {
	g := NewGrid(
		NewTile(TileAsCorners{C0: Cell{X: 0, Y: 0}, C3: Cell{X: 5, Y: 5}}, Handle(1)),
		NewTile(TileAsCorners{C0: Cell{X: 5, Y: 5}, C3: Cell{X: 5, Y: 5}}, Handle(1)),
	)
	err := g.AssertInvariants()
	require.Error(t, err)

	var invErr *InvariantErrors
	require.True(t, errors.As(err, &invErr))
	assert.Equal(t, 2, invErr.DuplicateHandles[Handle(1)])
}

// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quadrant/wm"
)

var applyCmd = &cobra.Command{
	Use:   "apply <file> <op> [args...]",
	Short: "Apply one edit operation to a grid fixture and print the result",
	Long: `Supported ops: split <handle> <direction> <new-handle>, delete <handle>,
compact, expand, rotate-cw, rotate-ccw, mirror-h, mirror-v, align-borders <proximity>.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, err := loadGrid(args[0])
		if err != nil {
			return err
		}

		op := args[1]
		rest := args[2:]

		result, err := applyOp(grid, op, rest)
		if err != nil {
			return err
		}

		printGrid(result)
		return nil
	},
}

func applyOp(grid wm.Grid, op string, args []string) (wm.Grid, error) {
	switch op {
	case "split":
		if len(args) != 3 {
			return wm.Grid{}, fmt.Errorf("split wants <handle> <direction> <new-handle>")
		}
		handle, err := parseHandle(args[0])
		if err != nil {
			return wm.Grid{}, err
		}
		dir, err := parseDirection(args[1])
		if err != nil {
			return wm.Grid{}, err
		}
		newHandle, err := parseHandle(args[2])
		if err != nil {
			return wm.Grid{}, err
		}
		return grid.SplitTile(handle, dir, newHandle), nil

	case "delete":
		if len(args) != 1 {
			return wm.Grid{}, fmt.Errorf("delete wants <handle>")
		}
		handle, err := parseHandle(args[0])
		if err != nil {
			return wm.Grid{}, err
		}
		return grid.DeleteByHandle(handle), nil

	case "compact":
		return grid.Compact(), nil

	case "expand":
		return grid.Expand(), nil

	case "rotate-cw":
		return grid.RotateClockwise(), nil

	case "rotate-ccw":
		return grid.RotateCounterclockwise(), nil

	case "mirror-h":
		return grid.MirrorHorizontally(), nil

	case "mirror-v":
		return grid.MirrorVertically(), nil

	case "align-borders":
		proximity := 1
		if len(args) == 1 {
			p, err := strconv.Atoi(args[0])
			if err != nil {
				return wm.Grid{}, fmt.Errorf("align-borders: invalid proximity %q", args[0])
			}
			proximity = p
		}
		return grid.AlignBorders(proximity), nil

	default:
		return wm.Grid{}, fmt.Errorf("unknown op %q", op)
	}
}

func parseHandle(s string) (wm.Handle, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid handle %q: %w", s, err)
	}
	return wm.Handle(n), nil
}

func parseDirection(s string) (wm.CardinalDirection, error) {
	switch s {
	case "up", "UP":
		return wm.Up, nil
	case "right", "RIGHT":
		return wm.Right, nil
	case "down", "DOWN":
		return wm.Down, nil
	case "left", "LEFT":
		return wm.Left, nil
	default:
		return 0, fmt.Errorf("invalid direction %q, want up/right/down/left", s)
	}
}

// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Decode a grid fixture and print its tiles and bounding box",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, err := loadGrid(args[0])
		if err != nil {
			return err
		}
		printGrid(grid)
		return nil
	},
}

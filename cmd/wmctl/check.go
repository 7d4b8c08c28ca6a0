// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Report whether a grid fixture satisfies every invariant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, err := loadGrid(args[0])
		if err != nil {
			return err
		}

		errs := grid.GetInvariantErrors()
		if !errs.HasErrors() {
			fmt.Println("PASS")
			return nil
		}

		fmt.Println("FAIL")
		if len(errs.DuplicateHandles) > 0 {
			fmt.Printf("  duplicate handles: %v\n", errs.DuplicateHandles)
		}
		if len(errs.OverlappingPairs) > 0 {
			fmt.Printf("  overlapping pairs: %d\n", len(errs.OverlappingPairs))
		}
		if errs.AreaMismatch > 0 {
			fmt.Printf("  area mismatch (uncovered cells): %d\n", errs.AreaMismatch)
		}
		return nil
	},
}

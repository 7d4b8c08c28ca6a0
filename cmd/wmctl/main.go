// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command wmctl is a debugging and demonstration harness around the
// wm library. It is not part of the library's programmatic contract;
// it exists to let a developer load a grid fixture, inspect it, and
// try an edit from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

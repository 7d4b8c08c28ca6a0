// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"io"
	"log/slog"
)

// logger receives diagnostic records for no-op edits (an edit
// addressed to an unknown handle, which the core accepts silently per
// its no-op contract). It never affects control flow; by default it
// discards everything.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger installs l as the destination for diagnostic records
// about no-op edits. Passing nil restores the discarding default.
// This is purely observational: it never changes what an edit
// returns.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	logger = l
}

func logNoOp(op string, handle Handle) {
	logger.Debug("edit addressed to unknown handle, returning grid unchanged", "op", op, "handle", handle)
}

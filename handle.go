// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

// Handle is an opaque identity assigned by the host to a [Tile]. The
// core never interprets a handle beyond equality; it is a bare key.
type Handle int64

// NoHandle is -1. It is not reserved by the core, but hosts commonly
// treat it as "no tile" since a freshly constructed [HandleSource]
// never issues it.
const NoHandle Handle = -1

// HandleSource is a monotonic handle counter a host may use to
// generate fresh handles. The core never recycles a handle; a
// HandleSource never repeats one either.
type HandleSource struct {
	next Handle
}

// NewHandleSource returns a HandleSource whose first call to Next
// returns 0.
func NewHandleSource() *HandleSource {
	return &HandleSource{next: 0}
}

// Next returns a fresh handle and advances the counter.
func (h *HandleSource) Next() Handle {
	n := h.next
	h.next++
	return n
}

// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Debug controls whether errors returned by this package carry a
// rendered stack trace in their Error string. It is off by default;
// hosts doing interactive debugging of edit sequences may set it.
var Debug = false

// Sentinel base errors identifying the error kinds from the core's
// error-handling contract. Test with [errors.Is].
var (
	// ErrInvariantViolation is returned by [Grid.AssertInvariants] and
	// by [Grid.ResizeAlongX] (which must check before doing any work)
	// when duplicate handles, overlapping tiles, or an area mismatch
	// are detected. Use [errors.As] with *InvariantErrors to recover
	// the offending detail.
	ErrInvariantViolation = errors.New("grid invariant violation")

	// ErrUnreachable marks an internal logic guard: reaching it
	// indicates a bug in this package, not a caller error.
	ErrUnreachable = errors.New("unreachable")

	// ErrNotFound is returned by [Grid.GetTileByHandle] when no tile
	// carries the given handle. The Try variant returns (Tile, false)
	// instead of this error.
	ErrNotFound = errors.New("tile not found")

	// ErrUnsupported marks a precondition failure, such as a negative
	// proximity or an infeasible resize request.
	ErrUnsupported = errors.New("unsupported")
)

// Error wraps a base error with an optional captured stack trace,
// shown only when [Debug] is true.
type Error struct {
	Base  error
	Stack []runtime.Frame
}

// wrap captures the current stack (if [Debug] is set) and returns an
// *Error around base. It returns nil if base is nil.
func wrap(base error) error {
	if base == nil {
		return nil
	}
	if e, ok := base.(*Error); ok {
		return e
	}
	e := &Error{Base: base}
	if Debug {
		e.Stack = callers()
	}
	return e
}

func callers() []runtime.Frame {
	pc := make([]uintptr, 32)
	n := runtime.Callers(3, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make([]runtime.Frame, 0, n)
	for {
		f, more := frames.Next()
		out = append(out, f)
		if !more {
			break
		}
	}
	return out
}

// Error implements the error interface.
func (e *Error) Error() string {
	if !Debug || len(e.Stack) == 0 {
		return e.Base.Error()
	}
	var b strings.Builder
	b.WriteString(e.Base.Error())
	b.WriteString(" {stack: ")
	for i, f := range e.Stack {
		if i > 0 {
			b.WriteByte(' ')
		}
		name := f.Function
		if li := strings.LastIndex(name, "/"); li != -1 {
			name = name[li+1:]
		}
		b.WriteString(name)
	}
	b.WriteByte('}')
	return b.String()
}

// Unwrap returns the wrapped base error, so errors.Is/As see through
// to the sentinel.
func (e *Error) Unwrap() error { return e.Base }

// InvariantErrors describes the invariant failures found by
// [Grid.GetInvariantErrors]. A handle count other than 1 in DuplicateHandles is
// always an error (0 never appears via the counting map in practice;
// the check is defensive, mirroring the original implementation).
type InvariantErrors struct {
	// DuplicateHandles maps each offending handle to how many tiles
	// carry it. A handle appearing exactly once is never listed.
	DuplicateHandles map[Handle]int
	// OverlappingPairs lists every pair of tiles whose rectangles
	// intersect.
	OverlappingPairs [][2]Tile
	// AreaMismatch is box-area minus the sum of tile areas. Zero means
	// tight coverage; nonzero means gaps (positive) or overlap-derived
	// double counting (negative, implies OverlappingPairs is nonempty).
	AreaMismatch int
}

// HasErrors reports whether any invariant is violated. A negative
// AreaMismatch (double-counted area from overlaps) is not counted on
// its own: it is always accompanied by a nonempty OverlappingPairs,
// which already flags the violation.
func (e InvariantErrors) HasErrors() bool {
	return len(e.DuplicateHandles) > 0 || len(e.OverlappingPairs) > 0 || e.AreaMismatch > 0
}

func (e *InvariantErrors) Error() string {
	return fmt.Sprintf(
		"grid invariants violated: %d duplicate handle(s), %d overlapping pair(s), area mismatch %d",
		len(e.DuplicateHandles), len(e.OverlappingPairs), e.AreaMismatch,
	)
}

func (e *InvariantErrors) Unwrap() error { return ErrInvariantViolation }

// notFoundf builds a handle-scoped ErrNotFound.
func notFoundf(format string, a ...any) error {
	return wrap(fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, a...)...))
}

// unsupportedf builds a precondition-scoped ErrUnsupported.
func unsupportedf(format string, a ...any) error {
	return wrap(fmt.Errorf("%w: "+format, append([]any{ErrUnsupported}, a...)...))
}

// unreachablef builds an ErrUnreachable for an internal guard
// condition. Every current call site panics with it (the mod-4
// switch defaults, the grid-section fallback, the plus-refinement
// intersection check and the three-corner case of un-occupying),
// since returning a spurious error from every caller up the stack for
// dead code only obscures the real ones.
func unreachablef(format string, a ...any) error {
	return wrap(fmt.Errorf("%w: "+format, append([]any{ErrUnreachable}, a...)...))
}

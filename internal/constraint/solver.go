// Copyright (c) 2026, The WM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constraint implements a small relaxation solver for the
// restricted linear system that drives [wm.Grid.ResizeAlongX]: a set
// of positive variables, each bounded below and above, grouped into
// rows that must each sum to a fixed row target. No general-purpose
// linear constraint solver in the style of Cassowary appears anywhere
// in the library's dependency surface, and the problem's shape is
// narrow enough that a specialized pass is both simpler and a better
// fit than vendoring one.
package constraint

import "sort"

// Var is a single unknown: a span that must stay within [Min, Max]
// and contributes to the sum of every row it is added to via
// [Solver.AddRow].
type Var struct {
	Min, Max int
	value    int
}

// Value returns the variable's solved value. Before [Solver.Solve]
// runs (or [Var.Fix] is called) it is zero; Solve starts every
// variable it touches from its Min.
func (v *Var) Value() int { return v.value }

// Fix pins the variable to value directly, bypassing [Solver.Solve].
// Used for quantities derived from other variables' solved values,
// such as a tile's cell position computed from the spans that precede
// it in its row.
func (v *Var) Fix(value int) { v.value = value }

type row struct {
	vars   []*Var
	target int
}

// Solver accumulates variables and row-sum constraints, then computes
// a feasible (or best-effort) assignment via [Solver.Solve].
type Solver struct {
	rows []row
}

// NewSolver returns an empty Solver.
func NewSolver() *Solver {
	return &Solver{}
}

// AddRow registers a constraint that the sum of vars must equal
// target. A variable may appear in more than one row (as a tile
// spanning multiple row-groups does); its final value still must
// satisfy every row it participates in.
func (s *Solver) AddRow(target int, vars ...*Var) {
	s.rows = append(s.rows, row{vars: vars, target: target})
}

// maxPasses bounds the redistribution loop; rows that are still short
// or over after this many passes are reported as infeasible.
const maxPasses = 64

// Solve assigns every registered variable a value within its bounds,
// attempting to make every row sum to its target by redistributing
// each row's deficiency across the variables in that row that still
// have headroom (for a shortfall) or slack (for an excess), largest
// first. It returns false if, after redistribution converges, any
// row's sum still does not match its target — the result still holds
// the best-effort assignment computed so far.
func (s *Solver) Solve() bool {
	seen := map[*Var]bool{}
	for _, r := range s.rows {
		for _, v := range r.vars {
			if !seen[v] {
				v.value = v.Min
				seen[v] = true
			}
		}
	}

	for pass := 0; pass < maxPasses; pass++ {
		progressed := false
		for _, r := range s.rows {
			sum := 0
			for _, v := range r.vars {
				sum += v.value
			}
			deficiency := r.target - sum
			if deficiency == 0 {
				continue
			}
			if redistribute(r.vars, deficiency) {
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	ok := true
	for _, r := range s.rows {
		sum := 0
		for _, v := range r.vars {
			sum += v.value
		}
		if sum != r.target {
			ok = false
		}
	}
	return ok
}

// candidate is a variable with remaining room to absorb a
// redistribution step.
type candidate struct {
	v    *Var
	room int
}

// redistribute spreads deficiency (positive: row needs more; negative:
// row needs less) across vars that have room to move, largest-room
// variable first, and reports whether it moved anything.
func redistribute(vars []*Var, deficiency int) bool {
	var candidates []candidate
	for _, v := range vars {
		var room int
		if deficiency > 0 {
			room = v.Max - v.value
		} else {
			room = v.value - v.Min
		}
		if room > 0 {
			candidates = append(candidates, candidate{v: v, room: room})
		}
	}
	if len(candidates) == 0 {
		return false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].room > candidates[j].room
	})

	remaining := deficiency
	if remaining < 0 {
		remaining = -remaining
	}
	moved := false
	for remaining > 0 {
		progressedThisRound := false
		share := remaining / len(candidates)
		if share == 0 {
			share = 1
		}
		for _, c := range candidates {
			if remaining == 0 {
				break
			}
			step := min(share, c.room, remaining)
			if step <= 0 {
				continue
			}
			if deficiency > 0 {
				c.v.value += step
			} else {
				c.v.value -= step
			}
			c.room -= step
			remaining -= step
			moved = true
			progressedThisRound = true
		}
		if !progressedThisRound {
			break
		}
		candidates = filterRoom(candidates)
		if len(candidates) == 0 {
			break
		}
	}
	return moved
}

func filterRoom(candidates []candidate) []candidate {
	out := candidates[:0]
	for _, c := range candidates {
		if c.room > 0 {
			out = append(out, c)
		}
	}
	return out
}

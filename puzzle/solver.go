// kaidoku.go - a Sudoku constraint-satisfaction solver and service.
// Copyright (C) 2024-2025 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package puzzle

import (
	"fmt"
	"time"
)

/*

Sudoku grid solver

The solver is a depth-first backtracking search over the empty
cells of a grid, augmented with forward checking.  Each step of
the search does, in order:

1. Give up if the wall-clock deadline has passed.  A timeout
unwinds the whole recursion immediately: no sibling branch is
tried on the way out.

2. Succeed if no empty cell remains.

3. Otherwise pick an empty cell.  The selection heuristic is
minimum-remaining-values: the cell whose domain is smallest.
Ties go to the cell with the largest degree (the one sharing its
row and column with the most other empty cells), and any cells
still tied resolve to the first in reading order.  The whole
chain is deterministic, so identical grids always search
identically.

4. Try each candidate digit from the chosen cell's domain in
ascending order.  A candidate is first validated directly
against the grid's assigned values (row, column, then box scan);
a valid candidate is committed by writing it into the grid and
forward-checking it through the cell's peers.  If no peer domain
was emptied by the propagation, recurse.  If the placement led
nowhere - a wiped-out peer, or a recursive failure - the
propagation is undone from its removal log and the cell is
cleared before the next candidate is tried.

5. Fail back to the caller once every candidate is exhausted.

*/

// A status is the internal verdict of one search step.
type status int

const (
	statusExhausted status = iota // every candidate here failed
	statusSolved                  // grid completed
	statusTimeout                 // deadline passed; abort everything
)

// Solve searches for a completion of the given grid within the
// given wall-clock budget.  A negative budget (see NoDeadline)
// means search without a time limit; a zero budget times out
// immediately.
//
// The only error Solve returns is a malformed input grid (an
// entry outside [0,9]).  A grid whose givens already contradict
// each other is not an error: the search just exhausts and the
// Result reports Unsolvable.
func Solve(g Grid, budget time.Duration) (Result, error) {
	return SolveObserved(g, budget, nil)
}

// SolveObserved is Solve with an Observer attached: the first
// few search decisions are reported to obs as they happen, in
// addition to being recorded in the Result.  A nil obs is
// allowed and makes this identical to Solve.
func SolveObserved(g Grid, budget time.Duration, obs Observer) (Result, error) {
	if err := g.Check(); err != nil {
		return Result{}, err
	}
	start := time.Now()
	s := newState(g, budget, obs)
	res := Result{Values: g}
	switch s.search() {
	case statusSolved:
		res.Outcome = Solved
		res.Values = s.grid
	case statusTimeout:
		res.Outcome = TimedOut
	default:
		res.Outcome = Unsolvable
	}
	res.Assignments = s.recorded
	res.Nodes = s.nodes
	res.Elapsed = time.Since(start)
	return res, nil
}

// search runs one step of the backtracking described in the
// package comment above, recursing for the next step.  The
// recursion depth is bounded by the number of cells, so there's
// no need for an explicit stack.
func (s *state) search() status {
	if s.expired() {
		return statusTimeout
	}
	if s.complete() {
		return statusSolved
	}
	row, col := s.selectCell()
	saved := s.domains[row][col]
	degree := s.degree(row, col)
	for _, value := range saved.values() {
		if !s.consistent(row, col, value) {
			continue
		}
		s.nodes++
		s.grid[row][col] = value
		s.domains[row][col] = singleton(value)
		log := s.propagate(row, col, value)
		s.record(Assignment{
			Row:        row,
			Col:        col,
			DomainSize: saved.size(),
			Degree:     degree,
			Value:      value,
		})
		if !s.wipeout() {
			switch st := s.search(); st {
			case statusSolved, statusTimeout:
				return st
			}
		}
		s.undo(log)
		s.grid[row][col] = 0
		s.domains[row][col] = saved
	}
	return statusExhausted
}

// selectCell picks the next empty cell to fill.  The first pass
// collects the cells with the minimum remaining values, scanning
// in reading order; the second pass keeps the first of those
// with the largest degree.  Callers check completeness first, so
// being called with no empty cell is a logic error and panics.
func (s *state) selectCell() (int, int) {
	minSize := SideLen + 1
	var candidates []coord
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if s.grid[r][c] != 0 {
				continue
			}
			size := s.domains[r][c].size()
			if size < minSize {
				minSize = size
				candidates = candidates[:0]
			}
			if size == minSize {
				candidates = append(candidates, coord{r, c})
			}
		}
	}
	if len(candidates) == 0 {
		panic(fmt.Errorf("selectCell called on a complete grid"))
	}
	best, bestDegree := candidates[0], -1
	for _, cand := range candidates {
		if d := s.degree(cand.row, cand.col); d > bestDegree {
			best, bestDegree = cand, d
		}
	}
	return best.row, best.col
}

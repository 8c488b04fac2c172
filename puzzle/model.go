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
	"math/bits"
	"time"
)

/*

Candidate sets

*/

// A vset is a set of candidate digits 1-9, kept in the low nine
// bits of a uint16 (bit 0 unused, so digit d is bit d).  Using a
// bitmask makes membership, removal, and re-insertion O(1), and
// makes undo trivially exact: restoring membership restores the
// set, since a set has no ordering to get wrong.
type vset uint16

// fullVset is the domain of a cell nothing is known about.
const fullVset vset = 0x3FE // bits 1..9

func singleton(d int) vset { return 1 << uint(d) }

func (v vset) has(d int) bool { return v&(1<<uint(d)) != 0 }

func (v vset) remove(d int) vset { return v &^ (1 << uint(d)) }

func (v vset) insert(d int) vset { return v | (1 << uint(d)) }

func (v vset) size() int { return bits.OnesCount16(uint16(v)) }

// values returns the digits in the set in ascending order.  The
// ascending enumeration is a contract, not a convenience: it
// fixes the order candidates are tried in, and therefore which
// solution a multi-solution grid produces.
func (v vset) values() []int {
	ds := make([]int, 0, v.size())
	for d := 1; d <= SideLen; d++ {
		if v.has(d) {
			ds = append(ds, d)
		}
	}
	return ds
}

/*

Search state

*/

// A removal records one domain pruning: digit value was removed
// from the domain of cell (row, col).  A slice of removals is
// the log of one placement's propagation, and is consumed by the
// undo that reverses that placement.
type removal struct {
	row, col, value int
}

// A state is everything one solve owns: the grid being filled
// in, the domain of every cell, the deadline, and the search
// statistics.  States are never shared: each Solve call builds
// its own, and the recursion threads it down the call stack with
// commit/undo pairs forming a strict stack discipline.
type state struct {
	grid     Grid
	domains  [SideLen][SideLen]vset
	deadline time.Time
	timed    bool
	nodes    int
	recorded []Assignment
	observer Observer
}

// newState builds the search state for a grid.  Domains start as
// the full digit set for empty cells and the given's singleton
// for filled cells; the givens are deliberately not propagated
// into their peers' domains up front.  Pruning happens only as
// the search commits placements, and the validity check always
// re-scans the grid itself, so a lagging domain can cost time
// but never correctness.
func newState(g Grid, budget time.Duration, obs Observer) *state {
	s := &state{grid: g, observer: obs}
	if budget >= 0 {
		s.deadline = time.Now().Add(budget)
		s.timed = true
	}
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if g[r][c] == 0 {
				s.domains[r][c] = fullVset
			} else {
				s.domains[r][c] = singleton(g[r][c])
			}
		}
	}
	return s
}

// expired reports whether the deadline has passed.
func (s *state) expired() bool {
	return s.timed && !time.Now().Before(s.deadline)
}

// complete reports whether every cell is assigned.
func (s *state) complete() bool {
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if s.grid[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// degree returns the count of empty cells sharing cell (row,
// col)'s row or column, for a cell that is itself empty.  The -2
// compensates for the cell being counted once by each sweep.
func (s *state) degree(row, col int) int {
	n := 0
	for r := 0; r < SideLen; r++ {
		if s.grid[r][col] == 0 {
			n++
		}
	}
	for c := 0; c < SideLen; c++ {
		if s.grid[row][c] == 0 {
			n++
		}
	}
	return n - 2
}

// consistent reports whether placing value at (row, col) leaves
// the grid free of row, column, and box conflicts.  This checks
// the grid's assigned values directly, not the domains: domains
// are only as pruned as propagation has made them, so the grid
// scan is the authoritative check before every placement.
func (s *state) consistent(row, col, value int) bool {
	for c := 0; c < SideLen; c++ {
		if s.grid[row][c] == value {
			return false
		}
	}
	for r := 0; r < SideLen; r++ {
		if s.grid[r][col] == value {
			return false
		}
	}
	br, bc := boxOrigin(row, col)
	for r := br; r < br+TileLen; r++ {
		for c := bc; c < bc+TileLen; c++ {
			if s.grid[r][c] == value {
				return false
			}
		}
	}
	return true
}

// propagate forward-checks a placement of value at (row, col):
// it removes value from the domain of every peer that still has
// it, and returns the log of removals for the matching undo.
// The peer table visits each affected cell exactly once, so no
// peer can be pruned (or logged) twice for one placement.
func (s *state) propagate(row, col, value int) []removal {
	var log []removal
	for _, p := range peerTable[row][col] {
		if s.domains[p.row][p.col].has(value) {
			s.domains[p.row][p.col] = s.domains[p.row][p.col].remove(value)
			log = append(log, removal{p.row, p.col, value})
		}
	}
	return log
}

// undo reverses one propagate call by re-inserting every logged
// removal.  Because domains are sets, insertion order doesn't
// matter; each cell's domain ends set-equal to what it was
// before the propagate.
func (s *state) undo(log []removal) {
	for _, rm := range log {
		s.domains[rm.row][rm.col] = s.domains[rm.row][rm.col].insert(rm.value)
	}
}

// wipeout reports whether any still-empty cell has run out of
// candidates.  A wipeout after a propagation means the placement
// just made can't lead to a solution, so the search can skip
// recursing and go straight to its undo.
func (s *state) wipeout() bool {
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if s.grid[r][c] == 0 && s.domains[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// record captures a search decision for the Result and hands it
// to the attached observer, if any.  Only the first
// MaxRecordedAssignments decisions are kept; the rest of the
// search runs unobserved.
func (s *state) record(a Assignment) {
	if len(s.recorded) >= MaxRecordedAssignments {
		return
	}
	s.recorded = append(s.recorded, a)
	if s.observer != nil {
		s.observer.Observe(a)
	}
}

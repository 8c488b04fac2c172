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

// Package puzzle provides a model for classic 9x9 Sudoku grids
// and a constraint-satisfaction solver over them.
//
// In this package, a grid is made of cells which are either
// empty (represented with a 0 value) or hold a digit between 1
// and 9 (inclusive).  Cells are designated by their row and
// column coordinates, both counted from 0, top-to-bottom and
// left-to-right.
//
// For each empty cell, the solver maintains a set of candidate
// digits the cell can still be assigned, called the cell's
// domain.  Solving is a depth-first backtracking search: the
// solver repeatedly picks the empty cell with the fewest
// remaining candidates (breaking ties toward the cell
// constraining the most other empty cells), tries its candidates
// in ascending order, and propagates each placement forward by
// removing the placed digit from the domains of every peer cell
// sharing the row, column, or 3x3 box.  Every propagation is
// recorded in a removal log so a failing placement can be undone
// exactly, without recomputing any domain.
//
// Both the cell-selection order and the candidate-value order
// are deterministic, so repeated solves of the same grid always
// produce the same solution, the same assignment trace, and the
// same node count.
//
// A solve runs under a wall-clock budget.  The deadline is
// checked at every step of the search, so even a pathological
// grid gives up within roughly one placement attempt of its
// budget expiring.
package puzzle

import (
	"encoding/json"
	"time"
)

// A Grid is a 9x9 Sudoku grid.  Entries must be in [0,9], with 0
// meaning the cell is empty.  Grid is a value type: assignment
// copies it, so callers keep their input regardless of what the
// solver does internally.
type Grid [SideLen][SideLen]int

// NoDeadline is the solve budget meaning "search without a time
// limit".  Any negative budget behaves the same way.  Note that
// a zero budget is not unlimited: it is a deadline that has
// already passed, so the solve times out immediately.
const NoDeadline time.Duration = -1

// The Outcome of a solve tells the caller how the search ended.
// Callers that don't care why a grid went unsolved can just
// compare against Solved.
type Outcome int

const (
	UnknownOutcome Outcome = iota
	Solved                 // a complete, valid grid was found
	Unsolvable             // every branch of the search was exhausted
	TimedOut               // the budget expired before the search concluded
	MaxOutcome
)

var outcomeNames = map[Outcome]string{
	Solved:     "solved",
	Unsolvable: "unsolvable",
	TimedOut:   "timeout",
}

// Outcomes implement Stringer.
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON encodes an Outcome as its name, which is what web
// clients want to see.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes an Outcome from its name.  An unknown
// name decodes as UnknownOutcome rather than failing, so old
// clients survive new outcomes.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*o = UnknownOutcome
	for outcome, n := range outcomeNames {
		if n == name {
			*o = outcome
			break
		}
	}
	return nil
}

// An Assignment records one search decision: the cell that was
// picked, the size of its domain and its degree at the time it
// was picked, and the digit that was placed in it.  The degree
// of a cell is the count of other empty cells in its row and
// column.
type Assignment struct {
	Row        int `json:"row"`
	Col        int `json:"col"`
	DomainSize int `json:"domainSize"`
	Degree     int `json:"degree"`
	Value      int `json:"value"`
}

// An Observer receives search decisions as they are made.  It is
// purely observational: the solver behaves identically whether
// or not one is attached.  Observers must not retain the
// Assignment beyond the call.
type Observer interface {
	Observe(Assignment)
}

// MaxRecordedAssignments is how many leading search decisions a
// Result retains.  An attached Observer sees the same decisions
// and no others.
const MaxRecordedAssignments = 4

// A Result is everything a solve produces.  On a Solved outcome
// Values holds the completed grid; on any other outcome it holds
// the input grid unchanged.  Assignments holds the first few
// search decisions (see MaxRecordedAssignments), Nodes counts
// every placement the search committed, and Elapsed is the
// wall-clock time the search took.
type Result struct {
	Outcome     Outcome       `json:"outcome"`
	Values      Grid          `json:"values"`
	Assignments []Assignment  `json:"assignments,omitempty"`
	Nodes       int           `json:"nodes"`
	Elapsed     time.Duration `json:"elapsed"`
}

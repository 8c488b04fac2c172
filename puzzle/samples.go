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

/*

Built-in grids

These are the grids the CLI solves when given no input of its
own, and the grids the service advertises for clients that just
want something to try.  The reference grids are the solver's
original acceptance batch; the starred grids are graded
newspaper puzzles.

*/

// A Sample is a named, built-in grid.
type Sample struct {
	Name string `json:"name"`
	Grid Grid   `json:"grid"`
}

// Samples holds the built-in grids, in the order the CLI solves
// them.
var Samples = []Sample{
	{"reference-1", mustGrid([]int{
		0, 0, 1, 0, 0, 2, 0, 0, 0,
		0, 0, 5, 0, 0, 6, 0, 3, 0,
		4, 6, 0, 0, 0, 5, 0, 0, 0,
		0, 0, 0, 1, 0, 4, 0, 0, 0,
		6, 0, 0, 8, 0, 0, 1, 4, 3,
		0, 0, 0, 0, 9, 0, 5, 0, 8,
		8, 0, 0, 0, 4, 9, 0, 5, 0,
		1, 0, 0, 3, 2, 0, 0, 0, 0,
		0, 0, 9, 0, 0, 0, 3, 0, 0,
	})},
	{"reference-2", mustGrid([]int{
		0, 0, 5, 0, 1, 0, 0, 0, 0,
		0, 0, 2, 0, 0, 4, 0, 3, 0,
		1, 0, 9, 0, 0, 0, 2, 0, 6,
		2, 0, 0, 0, 3, 0, 0, 0, 0,
		0, 4, 0, 0, 0, 0, 7, 0, 0,
		5, 0, 0, 0, 0, 7, 0, 0, 1,
		0, 0, 0, 6, 0, 3, 0, 0, 0,
		0, 6, 0, 1, 0, 0, 0, 0, 0,
		3, 8, 0, 0, 0, 0, 5, 6, 0,
	})},
	{"reference-3", mustGrid([]int{
		0, 0, 0, 0, 0, 0, 8, 1, 0,
		0, 5, 0, 0, 0, 0, 0, 0, 0,
		6, 0, 3, 0, 0, 0, 0, 5, 9,
		0, 0, 0, 7, 8, 0, 0, 0, 0,
		3, 0, 0, 9, 0, 0, 0, 0, 0,
		0, 0, 6, 0, 0, 0, 7, 0, 0,
		0, 0, 0, 0, 6, 0, 0, 0, 3,
		0, 0, 0, 0, 0, 2, 0, 0, 0,
		0, 0, 5, 4, 0, 0, 0, 0, 0,
	})},
	{"one-star", mustGrid([]int{
		4, 0, 0, 0, 0, 3, 5, 0, 2,
		0, 0, 9, 5, 0, 6, 3, 4, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 8,
		0, 0, 0, 0, 3, 4, 8, 6, 0,
		0, 0, 4, 6, 0, 5, 2, 0, 0,
		0, 2, 8, 7, 9, 0, 0, 0, 0,
		9, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 8, 7, 3, 0, 2, 9, 0, 0,
		5, 0, 2, 9, 0, 0, 0, 0, 6,
	})},
	{"five-star", mustGrid([]int{
		2, 0, 0, 8, 0, 0, 0, 5, 0,
		0, 8, 5, 0, 0, 0, 0, 0, 0,
		0, 3, 6, 7, 5, 0, 0, 0, 1,
		0, 0, 3, 0, 4, 0, 0, 9, 8,
		0, 0, 0, 3, 0, 5, 0, 0, 0,
		4, 1, 0, 0, 6, 0, 7, 0, 0,
		5, 0, 0, 0, 0, 7, 1, 2, 0,
		0, 0, 0, 0, 0, 0, 5, 6, 0,
		0, 2, 0, 0, 0, 0, 0, 0, 4,
	})},
}

// SampleByName finds a built-in grid by name.  The boolean
// return tells you whether the name is known, similar to a map
// lookup.
func SampleByName(name string) (Sample, bool) {
	for _, s := range Samples {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

// mustGrid builds a Grid from 81 literal values, panicking on a
// bad literal.  The literals above are package constants in all
// but the formal sense, so a panic here is a build mistake, not
// a runtime condition.
func mustGrid(values []int) Grid {
	g, err := GridFromValues(values)
	if err != nil {
		panic(err)
	}
	return g
}

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
	"unicode"
)

/*

Reading grids

*/

// Check validates a grid's entries: every cell must be in [0,9].
// The grid's shape is fixed by its type, so this is the whole of
// well-formedness.  Check does not look for contradictory
// givens; those are discovered (as Unsolvable) by the search.
func (g Grid) Check() error {
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if v := g[r][c]; v < 0 || v > SideLen {
				return Error{
					Scope:     CellScope,
					Condition: OutOfRangeCondition,
					Attribute: ValueAttribute,
					Values:    ErrorData{fmt.Sprintf("(%d, %d)", r, c), v, 0, SideLen},
				}
			}
		}
	}
	return nil
}

// GridFromValues builds a Grid from a flat slice of 81 cell
// values in reading order.  This is the form web clients post
// and the form the built-in samples are written in.
func GridFromValues(values []int) (Grid, error) {
	var g Grid
	if len(values) != CellCount {
		return g, Error{
			Scope:     ArgumentScope,
			Condition: WrongCountCondition,
			Attribute: LengthAttribute,
			Values:    ErrorData{len(values), CellCount},
		}
	}
	for i, v := range values {
		g[i/SideLen][i%SideLen] = v
	}
	return g, g.Check()
}

// ParseGrid reads a Grid from a string of 81 cell runes in
// reading order: the digits 1-9 for givens, and either '0' or
// '.' for an empty cell.  Whitespace is ignored wherever it
// appears, so one-line, nine-line, and space-separated forms all
// parse.
func ParseGrid(text string) (Grid, error) {
	var g Grid
	count := 0
	for _, ch := range text {
		if unicode.IsSpace(ch) {
			continue
		}
		if count >= CellCount {
			count++
			continue
		}
		var v int
		switch {
		case ch == '.' || ch == '0':
			v = 0
		case ch >= '1' && ch <= '9':
			v = int(ch - '0')
		default:
			return g, Error{
				Scope:     ArgumentScope,
				Condition: NotADigitCondition,
				Attribute: RuneAttribute,
				Values:    ErrorData{string(ch)},
			}
		}
		g[count/SideLen][count%SideLen] = v
		count++
	}
	if count != CellCount {
		return g, Error{
			Scope:     ArgumentScope,
			Condition: WrongCountCondition,
			Attribute: LengthAttribute,
			Values:    ErrorData{count, CellCount},
		}
	}
	return g, nil
}

/*

Writing grids

*/

// Values returns the grid's cells as a flat slice of 81 values
// in reading order, the inverse of GridFromValues.
func (g Grid) Values() []int {
	values := make([]int, 0, CellCount)
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			values = append(values, g[r][c])
		}
	}
	return values
}

// String gives a pretty-printed view of a grid, with rules
// between the boxes and underscores for empty cells, suitable
// for console reporting and debugging.
func (g Grid) String() (result string) {
	rule := " +-------+-------+-------+\n"
	for r := 0; r < SideLen; r++ {
		if r%TileLen == 0 {
			result += rule
		}
		for c := 0; c < SideLen; c++ {
			if c%TileLen == 0 {
				result += " |"
			}
			if g[r][c] == 0 {
				result += " _"
			} else {
				result += fmt.Sprintf(" %d", g[r][c])
			}
		}
		result += " |\n"
	}
	result += rule
	return
}

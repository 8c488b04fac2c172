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

Grid geometry

This module solves only the classic Sudoku geometry: a 9x9 grid
whose constraint groups are the nine rows, the nine columns, and
the nine non-overlapping 3x3 boxes.  Fixing the geometry lets us
precompute every cell's peer set once, at package load, instead
of deriving group membership during the search.

*/

// Geometry constants for the classic grid.
const (
	SideLen   = 9                 // cells per row, column, and box
	TileLen   = 3                 // side length of one box
	CellCount = SideLen * SideLen // total cells in a grid
)

// A coord designates one cell by row and column, both 0-based.
type coord struct {
	row, col int
}

// boxOrigin returns the coordinates of the top-left cell of the
// box containing (row, col).
func boxOrigin(row, col int) (int, int) {
	return TileLen * (row / TileLen), TileLen * (col / TileLen)
}

// peerTable[r][c] lists the cells that share a row, column, or
// box with (r, c), excluding (r, c) itself.  Each peer appears
// exactly once even though box interiors overlap both the row
// and the column, so a propagation sweep over the list never
// touches the same cell twice.  Every cell has 20 peers: 8 in
// its row, 8 in its column, and the 4 box cells outside both.
var peerTable [SideLen][SideLen][]coord

func init() {
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			peerTable[r][c] = computePeers(r, c)
		}
	}
}

// computePeers builds the peer list for one cell: the union of
// its row, column, and box, minus the cell itself.  The list is
// ordered row peers first, then column peers, then the remaining
// box peers, each sweep in ascending order; the order doesn't
// matter for correctness but a fixed order keeps propagation
// logs reproducible.
func computePeers(row, col int) []coord {
	peers := make([]coord, 0, 2*(SideLen-1)+(TileLen-1)*(TileLen-1))
	for c := 0; c < SideLen; c++ {
		if c != col {
			peers = append(peers, coord{row, c})
		}
	}
	for r := 0; r < SideLen; r++ {
		if r != row {
			peers = append(peers, coord{r, col})
		}
	}
	br, bc := boxOrigin(row, col)
	for r := br; r < br+TileLen; r++ {
		for c := bc; c < bc+TileLen; c++ {
			if r != row && c != col {
				peers = append(peers, coord{r, c})
			}
		}
	}
	return peers
}

// seehuhn.de/go/fumengif - render Tetris board sequences as animated GIFs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import "seehuhn.de/go/fumengif/board"

var pieceCases = []TestCase{
	{
		Name: "t_spawn",
		Pages: []board.Page{
			{Piece: piece(board.KindT, board.North, 4, 0)},
		},
	},
	{
		Name: "i_vertical",
		Pages: []board.Page{
			{
				Field: field("XXXXXXXXX_", "XXXXXXXXX_"),
				Piece: piece(board.KindI, board.East, 9, 2),
			},
		},
	},
	{
		// the piece overlaps filled cells and must hide them
		Name: "overlap",
		Pages: []board.Page{
			{
				Field: field("XXXXXXXXXX"),
				Piece: piece(board.KindO, board.North, 4, 0),
			},
		},
	},
	{
		Name: "all_rotations",
		Pages: []board.Page{
			{Piece: piece(board.KindJ, board.North, 4, 1)},
			{Piece: piece(board.KindJ, board.East, 4, 1)},
			{Piece: piece(board.KindJ, board.South, 4, 1)},
			{Piece: piece(board.KindJ, board.West, 4, 1)},
		},
	},
	{
		Name: "piece_in_garbage_row",
		Pages: []board.Page{
			{
				Garbage: row("XXXX_XXXXX"),
				Piece:   piece(board.KindI, board.East, 4, 1),
			},
		},
	},
}

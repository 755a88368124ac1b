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

var analysisCases = []TestCase{
	{
		Name: "clear_two_lines",
		Pages: board.Sequence(
			board.Page{Field: field("XXXXXXXX__", "XXXXXXXX__")},
			[]board.Placement{
				{Kind: board.KindO, Rotation: board.North, X: 8, Y: 0},
				{Kind: board.KindT, Rotation: board.North, X: 4, Y: 0},
			},
		),
	},
	{
		Name: "stack_with_garbage",
		Pages: board.Sequence(
			board.Page{
				Field:   field("XXX_XXXXXX"),
				Garbage: row("XXXXX_XXXX"),
			},
			[]board.Placement{
				{Kind: board.KindI, Rotation: board.East, X: 3, Y: 2},
				{Kind: board.KindL, Rotation: board.North, X: 1, Y: 0},
				{Kind: board.KindJ, Rotation: board.North, X: 7, Y: 0},
				{Kind: board.KindS, Rotation: board.North, X: 4, Y: 0},
			},
		),
	},
}

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

var garbageCases = []TestCase{
	{
		Name: "garbage_only",
		Pages: []board.Page{
			{Garbage: row("XXXXXXXX_X")},
		},
	},
	{
		Name: "garbage_under_field",
		Pages: []board.Page{
			{
				Field:   field("___TTT____", "XXXX_XXXXX"),
				Garbage: row("XXXXXXX_XX"),
			},
		},
	},
	{
		// only the second page has garbage; both frames get the strip
		Name: "garbage_second_page",
		Pages: []board.Page{
			{Field: field("LLL_______", "L_________")},
			{Field: field("LLL_______", "L_________"), Garbage: row("_XXXXXXXXX")},
		},
	},
	{
		Name: "coloured_garbage",
		Pages: []board.Page{
			{Garbage: row("ILOZTJS___")},
		},
	},
}

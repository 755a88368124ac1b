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

var staticCases = []TestCase{
	{
		Name:  "empty",
		Pages: []board.Page{{}},
	},
	{
		Name: "single_row",
		Pages: []board.Page{
			{Field: field("IIIILLLOO_")},
		},
	},
	{
		Name: "all_colours",
		Pages: []board.Page{
			{Field: field(
				"I_________",
				"L_________",
				"O_________",
				"Z_________",
				"T_________",
				"J_________",
				"S_________",
				"X_________",
			)},
		},
	},
	{
		Name: "opener",
		Pages: []board.Page{
			{
				Field: field(
					"ZZ______OO",
					"IZZ_____OO",
					"I____JLLLJ",
					"ISS__JJJLJ",
					"SSTTT__JJJ",
				),
				Comment: "opener",
			},
		},
	},
	{
		Name: "tall_stack",
		Pages: []board.Page{
			{Field: field(
				"_T________",
				"TT________",
				"_T________",
				"__________",
				"__________",
				"__________",
				"__________",
				"__________",
				"__________",
				"__________",
				"XXXX_XXXXX",
				"XXXX_XXXXX",
			)},
		},
	},
}

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

// two alternating pages, played at different speeds
var blink = []board.Page{
	{Field: field("ZZ________", "_ZZ_______")},
	{Field: field("_SS_______", "SS________")},
}

var speedCases = []TestCase{
	{Name: "speed_default", Pages: blink},
	{Name: "speed_double", Pages: blink, Options: "speed=2.0"},
	{Name: "speed_half", Pages: blink, Options: "speed=0.5"},
	{Name: "speed_invalid", Pages: blink, Options: "speed=foo"},
	{Name: "speed_with_other_keys", Pages: blink, Options: "mode=fast, speed=4; color=off"},
}

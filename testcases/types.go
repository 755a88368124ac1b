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

// Package testcases contains board sequences used to test the renderer
// and to generate reference images.
package testcases

import (
	"seehuhn.de/go/fumengif/board"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name    string       // lowercase a-z and _ only
	Pages   []board.Page // the frames of the animation
	Options string       // option string passed to the renderer
}

// field builds a board field from rows given top to bottom.
// It panics on malformed rows.
func field(top ...string) []board.Row {
	rows := make([]board.Row, len(top))
	for i, s := range top {
		row, err := board.ParseRow(s)
		if err != nil {
			panic(err)
		}
		rows[len(top)-1-i] = row
	}
	return rows
}

// row parses a single row, for use as a garbage row.
func row(s string) board.Row {
	return field(s)[0]
}

// piece is a helper to create a placement.
func piece(k board.Kind, r board.Rotation, x, y int) *board.Placement {
	return &board.Placement{Kind: k, Rotation: r, X: x, Y: y}
}

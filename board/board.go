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

// Package board describes Tetris playfield states as they are handed to the
// renderer: a stack of 10-cell rows stored bottom-up, an optional garbage
// row below the field, and an optional active piece.
package board

import (
	"fmt"
	"strings"
)

const (
	// Width is the number of columns of every board.
	Width = 10

	// MaxHeight is the maximal number of rows a field may hold.
	MaxHeight = 40
)

// Color is the content of a single board cell.
// The numeric value doubles as the index into the render palette.
type Color uint8

// The cell colours, in palette order.
const (
	Empty Color = iota
	I
	L
	O
	Z
	T
	J
	S
	Grey
)

var colorLetters = [...]byte{'_', 'I', 'L', 'O', 'Z', 'T', 'J', 'S', 'X'}

func (c Color) String() string {
	if int(c) < len(colorLetters) {
		return string(colorLetters[c])
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// ParseColor converts a single letter into a cell colour.
// '_' and '.' denote empty cells, 'X' or 'G' garbage cells.
func ParseColor(r rune) (Color, error) {
	switch r {
	case '_', '.':
		return Empty, nil
	case 'X', 'G':
		return Grey, nil
	}
	for i, l := range colorLetters {
		if rune(l) == r {
			return Color(i), nil
		}
	}
	return Empty, fmt.Errorf("invalid cell %q", r)
}

// Row is one horizontal line of the board, indexed by column.
type Row [Width]Color

// IsEmpty reports whether no cell of the row is filled.
func (r Row) IsEmpty() bool {
	return r == Row{}
}

// IsFull reports whether every cell of the row is filled.
func (r Row) IsFull() bool {
	for _, c := range r {
		if c == Empty {
			return false
		}
	}
	return true
}

func (r Row) String() string {
	var b strings.Builder
	for _, c := range r {
		b.WriteString(c.String())
	}
	return b.String()
}

// ParseRow reads a row written as 10 letters, for example "IIII__SS_X".
func ParseRow(s string) (Row, error) {
	var row Row
	s = strings.TrimSpace(s)
	if n := len([]rune(s)); n != Width {
		return row, fmt.Errorf("row %q: expected %d cells, got %d", s, Width, n)
	}
	for i, r := range []rune(s) {
		c, err := ParseColor(r)
		if err != nil {
			return row, fmt.Errorf("row %q: %w", s, err)
		}
		row[i] = c
	}
	return row, nil
}

// Page is one board state.
//
// Field[0] is the bottom row. Rows beyond len(Field) are empty.
// The renderer treats pages as read-only values.
type Page struct {
	Field   []Row
	Garbage Row
	Piece   *Placement

	// Comment is free text attached by the caller.
	// It is not rendered.
	Comment string
}

// Cell returns the colour of the cell in column x, row y.
// Row -1 is the garbage row.  Cells outside the board are empty.
func (p *Page) Cell(x, y int) Color {
	if x < 0 || x >= Width {
		return Empty
	}
	switch {
	case y == -1:
		return p.Garbage[x]
	case y < 0 || y >= len(p.Field):
		return Empty
	}
	return p.Field[y][x]
}

// Extent returns the index of the highest row which is not entirely empty,
// taking the cells of the active piece into account.  An empty page has
// extent 0, i.e. it is displayed as a one-row board.
func Extent(p *Page) int {
	extent := 0
	for y := len(p.Field) - 1; y > 0; y-- {
		if !p.Field[y].IsEmpty() {
			extent = y
			break
		}
	}
	if p.Piece != nil {
		for _, c := range p.Piece.Cells() {
			extent = max(extent, c.Y)
		}
	}
	return extent
}

// HasGarbage reports whether any page of the sequence carries a non-empty
// garbage row.  If so, every frame of the sequence reserves room for the
// garbage strip.
func HasGarbage(pages []Page) bool {
	for i := range pages {
		if !pages[i].Garbage.IsEmpty() {
			return true
		}
	}
	return false
}

// BoardHeight returns the number of rows needed to show every page of the
// sequence, not counting the garbage row.
func BoardHeight(pages []Page) int {
	extent := 0
	for i := range pages {
		extent = max(extent, Extent(&pages[i]))
	}
	return extent + 1
}

// Next returns the page which follows p once the active piece has locked:
// the piece cells are written into the field and full rows are cleared.
// The garbage row is kept, the piece and the comment are dropped.
// p itself is not modified.
func (p *Page) Next() Page {
	field := make([]Row, len(p.Field), max(len(p.Field), MaxHeight))
	copy(field, p.Field)

	if p.Piece != nil {
		color := p.Piece.Color()
		for _, c := range p.Piece.Cells() {
			if c.X < 0 || c.X >= Width || c.Y < 0 || c.Y >= MaxHeight {
				continue
			}
			for len(field) <= c.Y {
				field = append(field, Row{})
			}
			field[c.Y][c.X] = color
		}
	}

	kept := field[:0]
	for _, row := range field {
		if !row.IsFull() {
			kept = append(kept, row)
		}
	}
	for len(kept) > 0 && kept[len(kept)-1].IsEmpty() {
		kept = kept[:len(kept)-1]
	}

	return Page{
		Field:   kept,
		Garbage: p.Garbage,
	}
}

// Sequence builds the pages of an analysis playback.  The first page shows
// start with the first placement, every following page shows the result of
// locking the previous piece with the next placement active.  The returned
// slice has one page per placement.  If there are no placements, the result
// is the start page alone.
func Sequence(start Page, placements []Placement) []Page {
	if len(placements) == 0 {
		return []Page{start}
	}
	pages := make([]Page, 0, len(placements))
	cur := start
	for i := range placements {
		if i > 0 {
			cur = cur.Next()
		}
		pl := placements[i]
		cur.Piece = &pl
		pages = append(pages, cur)
	}
	return pages
}

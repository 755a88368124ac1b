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

package fumengif

import (
	"fmt"
	"image"
	"image/draw"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/fumengif/board"
	"seehuhn.de/go/fumengif/testcases"
)

// BenchmarkRenderAll measures the time to render every test case.
func BenchmarkRenderAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	b.ReportAllocs()
	for b.Loop() {
		for _, tc := range cases {
			if _, err := Render(tc.Pages, tc.Options); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// tallPages returns n pages of a 20-row board, one filled row more on
// each page.
func tallPages(n int) []board.Page {
	pages := make([]board.Page, n)
	field := make([]board.Row, 20)
	for y := range field {
		for x := range board.Width {
			if x != y%board.Width {
				field[y][x] = board.Color(1 + (x+y)%8)
			}
		}
	}
	for i := range pages {
		pages[i].Field = field[:min(i+1, len(field))]
		pages[i].Garbage = board.Row{board.Grey, board.Grey}
	}
	return pages
}

// BenchmarkFillTiles compares FillTile with image/draw for painting
// the tiles of a full board.
func BenchmarkFillTiles(b *testing.B) {
	pages := tallPages(20)
	for _, bs := range []int{4, 16, 64} {
		c := NewCanvas(pages, bs)

		b.Run(fmt.Sprintf("FillTile/%d", bs), func(b *testing.B) {
			buf := c.NewBuffer()
			for b.Loop() {
				drawPage(buf, c, &pages[len(pages)-1])
			}
		})

		b.Run(fmt.Sprintf("draw/%d", bs), func(b *testing.B) {
			dst := image.NewPaletted(image.Rect(0, 0, c.Width(), c.Height()), DefaultPalette)
			p := &pages[len(pages)-1]
			for b.Loop() {
				for y := range c.Rows {
					for x := range board.Width {
						src := image.NewUniform(DefaultPalette[p.Cell(x, y)])
						draw.Draw(dst, c.Tile(x, y), src, image.Point{}, draw.Src)
					}
				}
			}
		})
	}
}

// BenchmarkRenderFrames measures the effect of the number of frames.
func BenchmarkRenderFrames(b *testing.B) {
	for _, n := range []int{1, 10, 100} {
		pages := tallPages(n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			for b.Loop() {
				if _, err := Render(pages, ""); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

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
	"image"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/fumengif/board"
)

// Canvas describes the pixel geometry shared by all frames of one
// animation.
//
// Board rows are stored bottom-up but drawn top-down: board row y occupies
// tile row Rows-y-1.  If HasGarbage is set, the garbage row (board row -1)
// is drawn below the board as a MarkerHeight pixel marker band followed by
// a full tile of the garbage cell colour.
type Canvas struct {
	BlockSize  int  // edge length of one tile, in pixels
	Rows       int  // number of board rows, not counting the garbage row
	HasGarbage bool // whether the garbage strip is present
}

// NewCanvas computes the canvas for a sequence of pages.
// The geometry is derived from all pages together, so that every frame
// of the animation has the same size.
func NewCanvas(pages []board.Page, blockSize int) Canvas {
	return Canvas{
		BlockSize:  blockSize,
		Rows:       board.BoardHeight(pages),
		HasGarbage: board.HasGarbage(pages),
	}
}

// Width returns the canvas width in pixels.
func (c Canvas) Width() int {
	return board.Width * c.BlockSize
}

// Height returns the canvas height in pixels.
func (c Canvas) Height() int {
	h := c.Rows * c.BlockSize
	if c.HasGarbage {
		h += c.BlockSize + MarkerHeight
	}
	return h
}

// Bounds returns the canvas rectangle in pixel coordinates,
// with the y-axis pointing down.
func (c Canvas) Bounds() rect.Rect {
	return rect.Rect{
		URx: float64(c.Width()),
		URy: float64(c.Height()),
	}
}

// Tile returns the pixel rectangle of the board cell (x, y).
// Row -1 is the garbage row; its rectangle includes the marker band.
// The rectangle may lie outside the canvas.
func (c Canvas) Tile(x, y int) image.Rectangle {
	bs := c.BlockSize
	top := (c.Rows - y - 1) * bs
	h := bs
	if y == -1 && c.HasGarbage {
		h += MarkerHeight
	}
	return image.Rect(x*bs, top, (x+1)*bs, top+h)
}

// NewBuffer allocates a pixel buffer for one frame.  Every pixel is set to
// palette index 0, the background.
func (c Canvas) NewBuffer() []byte {
	return make([]byte, c.Width()*c.Height())
}

// FillTile paints the board cell (x, y) into buf, which must hold one frame
// for canvas c in row-major order.
//
// If c has a garbage strip, row -1 is painted in the garbage style: the top
// MarkerHeight pixel rows of the tile get MarkerIndex, and a full tile of
// the given colour is placed MarkerHeight pixels further down.  All other
// rows are painted as solid tiles.  Cells outside the canvas are ignored.
func FillTile(buf []byte, c Canvas, x, y int, color board.Color) {
	if x < 0 || x >= board.Width || y >= c.Rows {
		return
	}
	garbage := y == -1 && c.HasGarbage
	if y < 0 && !garbage {
		return
	}

	tile := c.Tile(x, y)
	x0, y0 := tile.Min.X, tile.Min.Y
	stride := c.Width()
	bs := c.BlockSize
	idx := byte(color)

	if garbage {
		for iy := range min(MarkerHeight, bs) {
			row := buf[(y0+iy)*stride+x0:]
			for ix := range bs {
				row[ix] = MarkerIndex
			}
		}
		y0 += MarkerHeight
	}
	for iy := range bs {
		row := buf[(y0+iy)*stride+x0:]
		for ix := range bs {
			row[ix] = idx
		}
	}
}

// drawPage paints a complete board page into buf.
// The buffer must be cleared by the caller.
func drawPage(buf []byte, c Canvas, p *board.Page) {
	for y := range c.Rows {
		if y >= len(p.Field) {
			break
		}
		row := &p.Field[y]
		for x, col := range row {
			if col != board.Empty {
				FillTile(buf, c, x, y, col)
			}
		}
	}

	if c.HasGarbage {
		for x, col := range p.Garbage {
			FillTile(buf, c, x, -1, col)
		}
	}

	// The active piece is drawn last, so that it hides board cells at the
	// same position.
	if p.Piece != nil {
		col := p.Piece.Color()
		for _, cell := range p.Piece.Cells() {
			FillTile(buf, c, cell.X, cell.Y, col)
		}
	}
}

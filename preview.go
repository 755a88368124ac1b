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

	"golang.org/x/image/draw"

	"seehuhn.de/go/fumengif/board"
)

// Still returns frame number index of the animation for pages.
// The frame has the canvas size of the whole sequence, so stills taken
// from the same sequence line up.
func (c *Config) Still(pages []board.Page, index int) (*image.Paletted, error) {
	if index < 0 || index >= len(pages) {
		return nil, fmt.Errorf("page %d out of range [0, %d)", index, len(pages))
	}
	canvas, err := c.canvas(pages)
	if err != nil {
		return nil, err
	}
	buf := canvas.NewBuffer()
	drawPage(buf, canvas, &pages[index])
	return &image.Paletted{
		Pix:     buf,
		Stride:  canvas.Width(),
		Rect:    image.Rect(0, 0, canvas.Width(), canvas.Height()),
		Palette: c.Palette,
	}, nil
}

// Thumbnail scales img to the given width, keeping the aspect ratio.
// Nearest-neighbour sampling is used, so that cell edges stay sharp.
func Thumbnail(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	if width < 1 || b.Dx() < 1 {
		return image.NewRGBA(image.Rectangle{})
	}
	height := max(1, (b.Dy()*width+b.Dx()/2)/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

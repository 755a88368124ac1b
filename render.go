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

// Package fumengif renders sequences of Tetris board states as animated
// GIF images.
//
// Every page of the sequence becomes one frame.  All frames share one
// canvas, which is tall enough for the highest page of the sequence.
// Rendering is deterministic and does not use any shared state, so
// different sequences can be rendered concurrently.
package fumengif

//go:generate go run ./testcases/export

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"seehuhn.de/go/fumengif/board"
)

var (
	// ErrNoPages is returned when asked to render an empty page sequence.
	ErrNoPages = errors.New("no pages to render")

	// ErrEncoding matches every [EncodingError] via errors.Is.
	ErrEncoding = errors.New("render failed")

	// ErrCanvasSize is returned when the pages need a canvas taller than
	// a GIF image can be.
	ErrCanvasSize = errors.New("canvas too large")
)

// EncodingError reports a failure of the animation encoder.  Such errors
// are deterministic for a given input and are not retried.
type EncodingError struct {
	Frame int // index of the frame being written, or -1
	Err   error
}

func (e *EncodingError) Error() string {
	if e.Frame < 0 {
		return fmt.Sprintf("%s: %v", ErrEncoding, e.Err)
	}
	return fmt.Sprintf("%s: frame %d: %v", ErrEncoding, e.Frame, e.Err)
}

func (e *EncodingError) Unwrap() []error {
	return []error{ErrEncoding, e.Err}
}

// Render renders pages as an animated GIF using [DefaultConfig].
// See [Config.Render] for details.
func Render(pages []board.Page, options string) ([]byte, error) {
	cfg := DefaultConfig()
	return cfg.Render(pages, options)
}

// Render renders pages as an animated GIF.
//
// The option string is parsed using [ParseOptions].  The animation loops
// forever.  On success the complete GIF file is returned.  On failure no
// data is returned; encoder failures are reported as [*EncodingError].
// Pages which need a canvas taller than a GIF allows give [ErrCanvasSize].
func (c *Config) Render(pages []board.Page, options string) ([]byte, error) {
	canvas, err := c.canvas(pages)
	if err != nil {
		return nil, err
	}
	delay := ParseOptions(options).Delay(c.BaseDelay)

	out := &bytes.Buffer{}
	enc, err := NewEncoder(out, canvas.Width(), canvas.Height(), c.Palette)
	if err != nil {
		return nil, &EncodingError{Frame: -1, Err: err}
	}
	enc.SetRepeat(RepeatInfinite)

	buf := canvas.NewBuffer()
	for i := range pages {
		if i > 0 {
			clear(buf)
		}
		drawPage(buf, canvas, &pages[i])
		if err := enc.WriteFrame(buf, delay); err != nil {
			return nil, &EncodingError{Frame: i, Err: err}
		}
	}

	if err := enc.Close(); err != nil {
		return nil, &EncodingError{Frame: -1, Err: err}
	}
	return out.Bytes(), nil
}

// Frames rasterizes pages without encoding them.  All returned images
// have the same bounds and use the palette of c.
func (c *Config) Frames(pages []board.Page) ([]*image.Paletted, error) {
	canvas, err := c.canvas(pages)
	if err != nil {
		return nil, err
	}

	frames := make([]*image.Paletted, len(pages))
	for i := range pages {
		buf := canvas.NewBuffer()
		drawPage(buf, canvas, &pages[i])
		frames[i] = &image.Paletted{
			Pix:     buf,
			Stride:  canvas.Width(),
			Rect:    image.Rect(0, 0, canvas.Width(), canvas.Height()),
			Palette: c.Palette,
		}
	}
	return frames, nil
}

// canvas validates c and computes the canvas shared by all frames of pages.
func (c *Config) canvas(pages []board.Page) (Canvas, error) {
	if err := c.Validate(); err != nil {
		return Canvas{}, err
	}
	if len(pages) == 0 {
		return Canvas{}, ErrNoPages
	}

	canvas := NewCanvas(pages, c.BlockSize)
	// Rows is checked first, since Height may overflow
	if canvas.Rows < 1 || canvas.Rows > maxDimension || canvas.Height() > maxDimension {
		return Canvas{}, fmt.Errorf("%w: %d rows of %d pixels",
			ErrCanvasSize, canvas.Rows, c.BlockSize)
	}
	return canvas, nil
}

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
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
)

// RepeatInfinite makes the animation loop forever.
// Positive values passed to [Encoder.SetRepeat] give the number of
// additional plays, -1 plays the animation once.
const RepeatInfinite = 0

var (
	// ErrFrameSize is returned by [Encoder.WriteFrame] if the pixel buffer
	// does not match the canvas dimensions.
	ErrFrameSize = errors.New("frame size does not match canvas")

	// ErrClosed is returned when writing to a closed encoder.
	ErrClosed = errors.New("encoder closed")

	errNoFrames = errors.New("animation has no frames")
)

// GIF block markers
const (
	gifExtension  = 0x21
	gifAppLabel   = 0xFF
	gifCtrlLabel  = 0xF9
	gifTrailer    = 0x3B
	gifHeaderSize = 13 // signature and logical screen descriptor
)

// Encoder writes a sequence of indexed-colour frames as an animated GIF.
// All frames share the canvas size and the global palette given to
// [NewEncoder].
//
// The file header, including the loop count, is written together with the
// first frame, and every frame is written to the underlying writer as soon
// as it is passed to [Encoder.WriteFrame].  Close writes the trailer.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	w       io.Writer
	width   int
	height  int
	palette color.Palette
	loop    int

	// transparent is the first palette index with zero alpha, or -1.
	transparent int

	// scratch receives the single-frame GIF produced by image/gif, from
	// which the image block is copied.
	scratch bytes.Buffer

	frames int
	closed bool
	err    error
}

// NewEncoder creates an encoder for frames of the given size.
// The palette becomes the global colour table of the GIF; it must have
// between 1 and 256 entries.
func NewEncoder(w io.Writer, width, height int, pal color.Palette) (*Encoder, error) {
	if width < 1 || width > maxDimension || height < 1 || height > maxDimension {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	if len(pal) == 0 || len(pal) > 256 {
		return nil, fmt.Errorf("invalid palette size %d", len(pal))
	}

	e := &Encoder{
		w:           w,
		width:       width,
		height:      height,
		palette:     pal,
		loop:        -1,
		transparent: -1,
	}
	for i, c := range pal {
		if c == nil {
			return nil, fmt.Errorf("palette entry %d missing", i)
		}
		if _, _, _, a := c.RGBA(); a == 0 && e.transparent < 0 {
			e.transparent = i
		}
	}
	return e, nil
}

// SetRepeat sets the loop count of the animation, see [RepeatInfinite].
// Values above 65535 cannot be stored in a GIF file.
// SetRepeat has no effect once the first frame has been written.
func (e *Encoder) SetRepeat(n int) {
	e.loop = n
}

// WriteFrame appends a frame to the animation.  Pix holds one palette index
// per pixel, in row-major order.  Delay is given in hundredths of a second.
// The encoder does not keep a reference to pix.
//
// After a write error, all further calls fail with the same error.
func (e *Encoder) WriteFrame(pix []byte, delay int) error {
	if e.closed {
		return ErrClosed
	}
	if e.err != nil {
		return e.err
	}
	if len(pix) != e.width*e.height {
		return fmt.Errorf("%w: got %d pixels, want %dx%d",
			ErrFrameSize, len(pix), e.width, e.height)
	}
	for _, c := range pix {
		if int(c) >= len(e.palette) {
			return fmt.Errorf("palette index %d out of range", c)
		}
	}
	if delay < 0 || delay > maxDimension {
		return fmt.Errorf("invalid delay %d", delay)
	}

	// Encode the frame on its own, with the global palette and without a
	// graphic control block, then copy the header (first frame only) and
	// the image block.
	frame := &image.Paletted{
		Pix:     pix,
		Stride:  e.width,
		Rect:    image.Rect(0, 0, e.width, e.height),
		Palette: e.palette,
	}
	e.scratch.Reset()
	err := gif.EncodeAll(&e.scratch, &gif.GIF{
		Image: []*image.Paletted{frame},
		Delay: []int{0},
		Config: image.Config{
			ColorModel: e.palette,
			Width:      e.width,
			Height:     e.height,
		},
	})
	if err != nil {
		return err
	}
	data := e.scratch.Bytes()
	hdr := gifHeaderSize + globalTableSize(data)
	if len(data) < hdr+2 || data[len(data)-1] != gifTrailer {
		return errors.New("unexpected image/gif output")
	}
	start := hdr
	if data[start] == gifExtension && data[start+1] == gifCtrlLabel {
		// a transparent palette entry makes image/gif add its own block
		start += 8
	}

	if e.frames == 0 {
		e.write(data[:hdr])
		if e.loop >= 0 {
			e.writeLoop()
		}
	}
	e.writeControl(delay)
	e.write(data[start : len(data)-1])
	if e.err != nil {
		return e.err
	}
	e.frames++
	return nil
}

// Close writes the GIF trailer.  An animation without frames cannot be
// written.  Close does not close the underlying writer.
func (e *Encoder) Close() error {
	if e.closed {
		return ErrClosed
	}
	e.closed = true
	if e.err != nil {
		return e.err
	}
	if e.frames == 0 {
		return errNoFrames
	}
	e.write([]byte{gifTrailer})
	return e.err
}

// writeLoop writes the NETSCAPE2.0 application extension.
func (e *Encoder) writeLoop() {
	ext := []byte{
		gifExtension, gifAppLabel, 0x0B,
		'N', 'E', 'T', 'S', 'C', 'A', 'P', 'E', '2', '.', '0',
		0x03, 0x01, byte(e.loop), byte(e.loop >> 8), 0x00,
	}
	e.write(ext)
}

// writeControl writes the graphic control extension of a frame.
func (e *Encoder) writeControl(delay int) {
	var flags, index byte
	if e.transparent >= 0 {
		flags = 0x01
		index = byte(e.transparent)
	}
	e.write([]byte{
		gifExtension, gifCtrlLabel, 0x04,
		flags, byte(delay), byte(delay >> 8), index,
		0x00,
	})
}

func (e *Encoder) write(p []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(p)
}

// globalTableSize returns the length in bytes of the global colour table
// of the GIF file in data.
func globalTableSize(data []byte) int {
	if len(data) < gifHeaderSize {
		return 0
	}
	flags := data[10]
	if flags&0x80 == 0 {
		return 0
	}
	return 3 << (flags&0x07 + 1)
}

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
	"image/color"

	"seehuhn.de/go/fumengif/board"
)

const (
	// PaletteSize is the number of colours in the render palette.
	PaletteSize = 10

	// MarkerIndex is the palette index of the marker band drawn above the
	// garbage row.
	MarkerIndex = 9

	// MarkerHeight is the height of the garbage marker band in pixels.
	// It does not scale with the block size.
	MarkerHeight = 2

	// DefaultBlockSize is the edge length of a board cell in pixels.
	DefaultBlockSize = 16

	// DefaultBaseDelay is the frame delay at speed 1, in hundredths of a
	// second.
	DefaultBaseDelay = 50

	// maxDimension is the largest image dimension a GIF can describe.
	maxDimension = 1<<16 - 1
)

// DefaultPalette is the palette used by [DefaultConfig].
// Index 0 is the background, indices 1-7 are the pieces in the order
// I, L, O, Z, T, J, S, index 8 is used for grey garbage cells and
// index 9 for the garbage marker.
//
// S pieces share the colour of I pieces.  A configuration file can give
// them a colour of their own, see package config.
var DefaultPalette = color.Palette{
	board.Empty: color.RGBA{0x40, 0x40, 0x40, 0xFF},
	board.I:     color.RGBA{0x00, 0xFF, 0xFF, 0xFF},
	board.L:     color.RGBA{0xFF, 0x80, 0x00, 0xFF},
	board.O:     color.RGBA{0xFF, 0xFF, 0x00, 0xFF},
	board.Z:     color.RGBA{0xFF, 0x00, 0x00, 0xFF},
	board.T:     color.RGBA{0x80, 0x00, 0xFF, 0xFF},
	board.J:     color.RGBA{0x00, 0x20, 0xFF, 0xFF},
	board.S:     color.RGBA{0x00, 0xFF, 0xFF, 0xFF},
	board.Grey:  color.RGBA{0x80, 0x80, 0x80, 0xFF},
	MarkerIndex: color.RGBA{0x10, 0x10, 0x10, 0xFF},
}

// Config holds the parameters of the renderer.
type Config struct {
	// BlockSize is the edge length of one board cell, in pixels.
	BlockSize int

	// BaseDelay is the delay between frames at speed 1, in hundredths of a
	// second.
	BaseDelay int

	// Palette must have exactly PaletteSize entries.
	Palette color.Palette
}

// DefaultConfig returns the configuration used by [Render].
func DefaultConfig() Config {
	pal := make(color.Palette, len(DefaultPalette))
	copy(pal, DefaultPalette)
	return Config{
		BlockSize: DefaultBlockSize,
		BaseDelay: DefaultBaseDelay,
		Palette:   pal,
	}
}

// ConfigError reports an invalid renderer configuration.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

// Validate checks that the configuration can be used for rendering.
func (c *Config) Validate() error {
	// the widest board must still fit into a GIF
	if c.BlockSize < 1 || board.Width*c.BlockSize > maxDimension {
		return &ConfigError{"block size", fmt.Sprintf("%d out of range", c.BlockSize)}
	}
	if c.BaseDelay < 0 || c.BaseDelay > maxDimension {
		return &ConfigError{"base delay", fmt.Sprintf("%d out of range", c.BaseDelay)}
	}
	if len(c.Palette) != PaletteSize {
		return &ConfigError{"palette", fmt.Sprintf("%d colours, want %d", len(c.Palette), PaletteSize)}
	}
	for i, col := range c.Palette {
		if col == nil {
			return &ConfigError{"palette", fmt.Sprintf("colour %d missing", i)}
		}
	}
	return nil
}

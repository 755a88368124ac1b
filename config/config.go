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

// Package config reads renderer settings from YAML files.
//
// A configuration file looks like this; every key is optional:
//
//	block_size: 16
//	base_delay: 50
//	palette:
//	  - "#404040"   # background
//	  - "#00ffff"   # I
//	  - "#ff8000"   # L
//	  - "#ffff00"   # O
//	  - "#ff0000"   # Z
//	  - "#8000ff"   # T
//	  - "#0020ff"   # J
//	  - "#00ffff"   # S
//	  - "#808080"   # garbage cells
//	  - "#101010"   # garbage marker
//
// The default palette draws S pieces in the colour of I pieces.  Setting
// the eighth entry, for example to "#00ff00", tells the two apart.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/fumengif"
)

type file struct {
	BlockSize *int     `yaml:"block_size"`
	BaseDelay *int     `yaml:"base_delay"`
	Palette   []string `yaml:"palette"`
}

// Read decodes a configuration from r.  Settings missing from the input
// keep the values of [fumengif.DefaultConfig].  The result is validated.
func Read(r io.Reader) (fumengif.Config, error) {
	cfg := fumengif.DefaultConfig()

	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: %w", err)
	}

	if f.BlockSize != nil {
		cfg.BlockSize = *f.BlockSize
	}
	if f.BaseDelay != nil {
		cfg.BaseDelay = *f.BaseDelay
	}
	if f.Palette != nil {
		pal, err := ParsePalette(f.Palette)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		cfg.Palette = pal
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Load reads the configuration file with the given name.
func Load(fname string) (cfg fumengif.Config, err error) {
	fd, err := os.Open(fname)
	if err != nil {
		return fumengif.DefaultConfig(), err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	return Read(fd)
}

// ParsePalette converts a list of hex colours ("#rrggbb" or "#rgb") into
// an opaque palette.
func ParsePalette(hex []string) (color.Palette, error) {
	pal := make(color.Palette, len(hex))
	for i, s := range hex {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		r, g, b := c.RGB255()
		pal[i] = color.RGBA{R: r, G: g, B: b, A: 0xFF}
	}
	return pal, nil
}

// Write encodes cfg as YAML.
func Write(w io.Writer, cfg fumengif.Config) error {
	f := file{
		BlockSize: &cfg.BlockSize,
		BaseDelay: &cfg.BaseDelay,
	}
	for _, c := range cfg.Palette {
		col, _ := colorful.MakeColor(c)
		f.Palette = append(f.Palette, col.Hex())
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return err
	}
	return enc.Close()
}

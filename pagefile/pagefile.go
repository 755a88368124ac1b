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

// Package pagefile reads and writes board sequences as YAML documents.
//
// A page file lists the pages of an animation.  Fields are written as
// rows of ten letters, top row first; '_' marks an empty cell, 'X' a grey
// garbage cell and the piece letters I, L, O, Z, T, J, S coloured cells.
//
//	options: speed=2
//	pages:
//	  - field: |
//	      ____T_____
//	      ___TTT____
//	    garbage: XXXXXXXXX_
//	    piece: {kind: I, rotation: east, x: 9, y: 1}
//	    comment: opener
//	  - next: true
//	    piece: {kind: O, rotation: north, x: 0, y: 0}
//
// A page with "next: true" starts from the previous page after its piece
// has locked and full rows have been cleared; a field given on such a page
// is ignored.  The garbage row is inherited as well.  A missing or empty
// "garbage" key keeps it, an all-empty row removes it:
//
//	  - next: true
//	    garbage: "__________"
package pagefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/fumengif/board"
)

// File is the content of a page file.
type File struct {
	Options string
	Pages   []board.Page
}

type yamlFile struct {
	Options string     `yaml:"options,omitempty"`
	Pages   []yamlPage `yaml:"pages"`
}

type yamlPage struct {
	Next    bool       `yaml:"next,omitempty"`
	Field   string     `yaml:"field,omitempty"`
	Garbage string     `yaml:"garbage,omitempty"`
	Piece   *yamlPiece `yaml:"piece,omitempty"`
	Comment string     `yaml:"comment,omitempty"`
}

type yamlPiece struct {
	Kind     string `yaml:"kind"`
	Rotation string `yaml:"rotation,omitempty"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
}

// ErrNoPages is returned by [Read] for a file without pages.
var ErrNoPages = errors.New("page file contains no pages")

// Read decodes a page file.
func Read(r io.Reader) (*File, error) {
	var yf yamlFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&yf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoPages
		}
		return nil, err
	}
	if len(yf.Pages) == 0 {
		return nil, ErrNoPages
	}

	res := &File{
		Options: yf.Options,
		Pages:   make([]board.Page, 0, len(yf.Pages)),
	}
	for i, yp := range yf.Pages {
		var page board.Page
		var err error
		if yp.Next {
			if i == 0 {
				return nil, fmt.Errorf("page %d: no previous page", i+1)
			}
			page = res.Pages[i-1].Next()
		} else {
			page.Field, err = parseField(yp.Field)
			if err != nil {
				return nil, fmt.Errorf("page %d: %w", i+1, err)
			}
		}
		if yp.Garbage != "" {
			page.Garbage, err = board.ParseRow(yp.Garbage)
			if err != nil {
				return nil, fmt.Errorf("page %d: garbage: %w", i+1, err)
			}
		}
		if yp.Piece != nil {
			page.Piece, err = parsePiece(yp.Piece)
			if err != nil {
				return nil, fmt.Errorf("page %d: %w", i+1, err)
			}
		}
		page.Comment = yp.Comment
		res.Pages = append(res.Pages, page)
	}
	return res, nil
}

// Load reads the page file with the given name.
func Load(fname string) (f *File, err error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	return Read(fd)
}

func parseField(s string) ([]board.Row, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > board.MaxHeight {
		return nil, fmt.Errorf("field has %d rows, maximum is %d", len(lines), board.MaxHeight)
	}

	field := make([]board.Row, len(lines))
	for i, line := range lines {
		row, err := board.ParseRow(line)
		if err != nil {
			return nil, err
		}
		field[len(lines)-1-i] = row
	}
	return field, nil
}

func parsePiece(yp *yamlPiece) (*board.Placement, error) {
	kind, err := board.ParseKind(yp.Kind)
	if err != nil {
		return nil, err
	}
	rot := board.North
	if yp.Rotation != "" {
		rot, err = board.ParseRotation(yp.Rotation)
		if err != nil {
			return nil, err
		}
	}
	return &board.Placement{Kind: kind, Rotation: rot, X: yp.X, Y: yp.Y}, nil
}

// Write encodes f as YAML.  Every page is written with its full field,
// so that the output can be read back without "next" pages.
func Write(w io.Writer, f *File) error {
	yf := yamlFile{Options: f.Options}
	for i := range f.Pages {
		p := &f.Pages[i]
		yp := yamlPage{Comment: p.Comment}

		var b strings.Builder
		for y := len(p.Field) - 1; y >= 0; y-- {
			b.WriteString(p.Field[y].String())
			b.WriteByte('\n')
		}
		yp.Field = b.String()

		if !p.Garbage.IsEmpty() {
			yp.Garbage = p.Garbage.String()
		}
		if p.Piece != nil {
			yp.Piece = &yamlPiece{
				Kind:     p.Piece.Kind.String(),
				Rotation: p.Piece.Rotation.String(),
				X:        p.Piece.X,
				Y:        p.Piece.Y,
			}
		}
		yf.Pages = append(yf.Pages, yp)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yf); err != nil {
		return err
	}
	return enc.Close()
}

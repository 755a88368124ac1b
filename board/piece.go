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

package board

import (
	"fmt"
	"strings"
)

// Kind identifies one of the seven tetrominoes.
type Kind uint8

// The tetrominoes, in palette order.
const (
	KindI Kind = iota
	KindL
	KindO
	KindZ
	KindT
	KindJ
	KindS
)

var kindNames = [...]string{"I", "L", "O", "Z", "T", "J", "S"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Color returns the cell colour used for pieces of kind k.
func (k Kind) Color() Color {
	return Color(k) + I
}

// ParseKind converts a piece letter ("T", "i", ...) into a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("invalid piece %q", s)
}

// Rotation is the orientation of a piece.
// Each step rotates the piece clockwise by a quarter turn.
type Rotation uint8

// The four orientations.
const (
	North Rotation = iota
	East
	South
	West
)

var rotationNames = [...]string{"north", "east", "south", "west"}

func (r Rotation) String() string {
	if int(r) < len(rotationNames) {
		return rotationNames[r]
	}
	return fmt.Sprintf("Rotation(%d)", uint8(r))
}

// ParseRotation converts "north", "east", "south" or "west" (or the first
// letter of these, or the spawn-relative names "spawn", "right", "reverse",
// "left") into a Rotation.
func ParseRotation(s string) (Rotation, error) {
	switch strings.ToLower(s) {
	case "north", "n", "spawn", "0":
		return North, nil
	case "east", "e", "right", "r", "1":
		return East, nil
	case "south", "s", "reverse", "2":
		return South, nil
	case "west", "w", "left", "l", "3":
		return West, nil
	}
	return 0, fmt.Errorf("invalid rotation %q", s)
}

// Cell is an absolute board coordinate.  Y counts rows from the bottom.
type Cell struct {
	X, Y int
}

// Placement is an active piece at a given position and orientation.
type Placement struct {
	Kind     Kind
	Rotation Rotation
	X, Y     int
}

// northOffsets lists the cells of each piece, relative to its anchor,
// in spawn orientation.
var northOffsets = [...][4]Cell{
	KindI: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	KindL: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
	KindO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	KindZ: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
	KindT: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
	KindJ: {{-1, 0}, {0, 0}, {1, 0}, {-1, 1}},
	KindS: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
}

// offsets holds northOffsets rotated into each orientation.
var offsets = func() (res [len(northOffsets)][4][4]Cell) {
	for k, cells := range northOffsets {
		for i, c := range cells {
			res[k][North][i] = c
			res[k][East][i] = Cell{c.Y, -c.X}
			res[k][South][i] = Cell{-c.X, -c.Y}
			res[k][West][i] = Cell{-c.Y, c.X}
		}
	}
	return res
}()

// Cells returns the board cells covered by the piece.
func (p *Placement) Cells() [4]Cell {
	rel := offsets[p.Kind%Kind(len(offsets))][p.Rotation%4]
	var res [4]Cell
	for i, c := range rel {
		res[i] = Cell{p.X + c.X, p.Y + c.Y}
	}
	return res
}

// Color returns the cell colour of the piece.
func (p *Placement) Color() Color {
	return p.Kind.Color()
}

func (p *Placement) String() string {
	return fmt.Sprintf("%s-%s@(%d,%d)", p.Kind, p.Rotation, p.X, p.Y)
}

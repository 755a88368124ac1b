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
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/fumengif/board"
	"seehuhn.de/go/fumengif/testcases"
)

func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				// load reference image
				refPath := filepath.Join("testdata", "reference", name+".gif")
				ref, err := os.ReadFile(refPath)
				if errors.Is(err, os.ErrNotExist) {
					t.Skipf("no reference image, run go generate")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				actual, err := Render(tc.Pages, tc.Options)
				if err != nil {
					t.Fatal(err)
				}

				if !bytes.Equal(ref, actual) {
					writeDebugImages(name, actual)
					t.Errorf("output differs from %s", refPath)
				}
			})
		}
	}
}

// writeDebugImages stores the frames of a failed test as PNG files.
func writeDebugImages(name string, data []byte) {
	anim, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return
	}
	os.MkdirAll("debug", 0755)
	for i, frame := range anim.Image {
		f, err := os.Create(filepath.Join("debug", fmt.Sprintf("%s_%02d.png", name, i)))
		if err != nil {
			return
		}
		png.Encode(f, frame)
		f.Close()
	}
}

func decode(t *testing.T, data []byte) *gif.GIF {
	t.Helper()
	anim, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	return anim
}

func render(t *testing.T, pages []board.Page, options string) *gif.GIF {
	t.Helper()
	data, err := Render(pages, options)
	if err != nil {
		t.Fatal(err)
	}
	return decode(t, data)
}

func findCase(t *testing.T, category, name string) testcases.TestCase {
	t.Helper()
	for _, tc := range testcases.All[category] {
		if tc.Name == name {
			return tc
		}
	}
	t.Fatalf("test case %s_%s not found", category, name)
	return testcases.TestCase{}
}

// TestCanvasUniform checks that all frames of every test case have the
// same size, and that the width is determined by the block size.
func TestCanvasUniform(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				anim := render(t, tc.Pages, tc.Options)
				if len(anim.Image) != len(tc.Pages) {
					t.Fatalf("got %d frames, want %d", len(anim.Image), len(tc.Pages))
				}
				want := image.Rect(0, 0, 10*DefaultBlockSize, anim.Config.Height)
				if anim.Config.Width != want.Dx() {
					t.Errorf("canvas width %d, want %d", anim.Config.Width, want.Dx())
				}
				for i, frame := range anim.Image {
					if frame.Bounds() != want {
						t.Errorf("frame %d: bounds %v, want %v", i, frame.Bounds(), want)
					}
				}
				if anim.LoopCount != 0 {
					t.Errorf("loop count %d, want 0 (forever)", anim.LoopCount)
				}
			})
		}
	}
}

func TestEmptyBoard(t *testing.T) {
	anim := render(t, []board.Page{{}}, "")
	if anim.Config.Width != 10*DefaultBlockSize || anim.Config.Height != DefaultBlockSize {
		t.Fatalf("canvas %dx%d, want %dx%d",
			anim.Config.Width, anim.Config.Height, 10*DefaultBlockSize, DefaultBlockSize)
	}
	for i, c := range anim.Image[0].Pix {
		if c != 0 {
			t.Fatalf("pixel %d has index %d, want 0", i, c)
		}
	}
}

func TestHeightGrowsByBlock(t *testing.T) {
	for _, garbage := range []board.Row{{}, {board.Grey}} {
		prev := -1
		for rows := 1; rows <= board.MaxHeight; rows++ {
			field := make([]board.Row, rows)
			field[rows-1][0] = board.T
			anim := render(t, []board.Page{{Field: field, Garbage: garbage}}, "")

			h := anim.Config.Height
			want := rows * DefaultBlockSize
			if !garbage.IsEmpty() {
				want += DefaultBlockSize + MarkerHeight
			}
			if h != want {
				t.Errorf("%d rows: height %d, want %d", rows, h, want)
			}
			if prev >= 0 && h-prev != DefaultBlockSize {
				t.Errorf("%d rows: height grew by %d", rows, h-prev)
			}
			prev = h
		}
	}
}

func TestGarbageStripOnAllFrames(t *testing.T) {
	tc := findCase(t, "garbage", "garbage_second_page")
	anim := render(t, tc.Pages, tc.Options)

	const bs = DefaultBlockSize
	if want := 2*bs + bs + MarkerHeight; anim.Config.Height != want {
		t.Fatalf("height %d, want %d", anim.Config.Height, want)
	}

	width := anim.Config.Width
	for i, frame := range anim.Image {
		// the marker band is drawn even where the garbage row is empty
		for y := 2 * bs; y < 2*bs+MarkerHeight; y++ {
			for x := range width {
				if c := frame.ColorIndexAt(x, y); c != MarkerIndex {
					t.Fatalf("frame %d: marker pixel (%d,%d) = %d", i, x, y, c)
				}
			}
		}
	}

	// first frame: empty garbage row renders as background below the marker
	for y := 2*bs + MarkerHeight; y < anim.Config.Height; y++ {
		for x := range width {
			if c := anim.Image[0].ColorIndexAt(x, y); c != 0 {
				t.Fatalf("frame 0: pixel (%d,%d) = %d, want 0", x, y, c)
			}
		}
	}

	// second frame: "_XXXXXXXXX"
	y := 2*bs + MarkerHeight + bs/2
	if c := anim.Image[1].ColorIndexAt(bs/2, y); c != 0 {
		t.Errorf("empty garbage cell has index %d", c)
	}
	if c := anim.Image[1].ColorIndexAt(bs+bs/2, y); c != uint8(board.Grey) {
		t.Errorf("garbage cell has index %d, want %d", c, board.Grey)
	}
}

func TestBottomRowPlacement(t *testing.T) {
	const bs = DefaultBlockSize
	for height := 1; height <= 20; height++ {
		field := make([]board.Row, height)
		field[0][3] = board.L
		field[height-1][9] = board.O
		for _, garbage := range []bool{false, true} {
			page := board.Page{Field: field}
			if garbage {
				page.Garbage[0] = board.Grey
			}
			anim := render(t, []board.Page{page}, "")
			frame := anim.Image[0]

			// bottom row is the last tile row above the garbage strip
			top := (height - 1) * bs
			for y := top; y < top+bs; y++ {
				if c := frame.ColorIndexAt(3*bs, y); c != uint8(board.L) {
					t.Fatalf("height %d: pixel (%d,%d) = %d, want %d", height, 3*bs, y, c, board.L)
				}
			}
			if height > 1 {
				if c := frame.ColorIndexAt(3*bs, top-1); c != 0 {
					t.Errorf("height %d: pixel above bottom row = %d", height, c)
				}
			}
			// top row starts at pixel row 0
			if c := frame.ColorIndexAt(9*bs, 0); c != uint8(board.O) {
				t.Errorf("height %d: top row pixel = %d, want %d", height, c, board.O)
			}
		}
	}
}

func TestPieceHidesBoard(t *testing.T) {
	tc := findCase(t, "piece", "overlap")
	anim := render(t, tc.Pages, tc.Options)
	frame := anim.Image[0]

	const bs = DefaultBlockSize
	// O at (4,0) covers columns 4, 5 of rows 0, 1; row 0 is also filled
	bottom := bs // tile row of board row 0
	for _, x := range []int{4, 5} {
		if c := frame.ColorIndexAt(x*bs, bottom); c != uint8(board.O) {
			t.Errorf("column %d: index %d, want piece colour %d", x, c, board.O)
		}
	}
	if c := frame.ColorIndexAt(3*bs, bottom); c != uint8(board.Grey) {
		t.Errorf("column 3: index %d, want board colour %d", c, board.Grey)
	}
}

func TestSpeed(t *testing.T) {
	cases := []struct {
		name  string
		delay int
	}{
		{"speed_default", DefaultBaseDelay},
		{"speed_double", DefaultBaseDelay / 2},
		{"speed_half", DefaultBaseDelay * 2},
		{"speed_invalid", DefaultBaseDelay},
		{"speed_with_other_keys", 13},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tc := findCase(t, "speed", c.name)
			anim := render(t, tc.Pages, tc.Options)
			for i, d := range anim.Delay {
				if d != c.delay {
					t.Errorf("frame %d: delay %d, want %d", i, d, c.delay)
				}
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			a, err := Render(tc.Pages, tc.Options)
			if err != nil {
				t.Fatal(err)
			}
			b, err := Render(tc.Pages, tc.Options)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(a, b) {
				t.Errorf("%s_%s: output differs between runs", category, tc.Name)
			}
		}
	}
}

func TestRenderDoesNotModifyPages(t *testing.T) {
	tc := findCase(t, "analysis", "stack_with_garbage")
	before := make([]board.Page, len(tc.Pages))
	for i, p := range tc.Pages {
		before[i] = p
		before[i].Field = slices.Clone(p.Field)
	}
	if _, err := Render(tc.Pages, ""); err != nil {
		t.Fatal(err)
	}
	for i := range tc.Pages {
		if !slices.Equal(before[i].Field, tc.Pages[i].Field) || before[i].Garbage != tc.Pages[i].Garbage {
			t.Errorf("page %d was modified", i)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(nil, ""); !errors.Is(err, ErrNoPages) {
		t.Errorf("no pages: got %v, want %v", err, ErrNoPages)
	}

	cfg := DefaultConfig()
	cfg.Palette = cfg.Palette[:4]
	data, err := cfg.Render([]board.Page{{}}, "")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("short palette: got %v, want ConfigError", err)
	}
	if data != nil {
		t.Error("data returned on error")
	}
}

func TestEncodingError(t *testing.T) {
	err := error(&EncodingError{Frame: 3, Err: ErrFrameSize})
	if !errors.Is(err, ErrEncoding) {
		t.Error("EncodingError does not match ErrEncoding")
	}
	if !errors.Is(err, ErrFrameSize) {
		t.Error("EncodingError does not match its cause")
	}
	want := "render failed: frame 3: frame size does not match canvas"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestCustomConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BlockSize = 3
	cfg.BaseDelay = 10

	pages := []board.Page{{Garbage: board.Row{board.Z}}}
	data, err := cfg.Render(pages, "speed=4")
	if err != nil {
		t.Fatal(err)
	}
	anim := decode(t, data)
	if anim.Config.Width != 30 || anim.Config.Height != 3+3+MarkerHeight {
		t.Errorf("canvas %dx%d", anim.Config.Width, anim.Config.Height)
	}
	if anim.Delay[0] != 3 { // round(2.5)
		t.Errorf("delay %d, want 3", anim.Delay[0])
	}
	if c := anim.Image[0].ColorIndexAt(0, anim.Config.Height-1); c != uint8(board.Z) {
		t.Errorf("garbage band index %d, want %d", c, board.Z)
	}
}

func TestFramesMatchRender(t *testing.T) {
	tc := findCase(t, "analysis", "clear_two_lines")
	cfg := DefaultConfig()
	frames, err := cfg.Frames(tc.Pages)
	if err != nil {
		t.Fatal(err)
	}
	anim := render(t, tc.Pages, tc.Options)
	for i := range frames {
		if !bytes.Equal(frames[i].Pix, anim.Image[i].Pix) {
			t.Errorf("frame %d differs", i)
		}
	}
}

// TestContainerLayout checks the bytes of a one-page animation up to the
// image data: header, global colour table, loop extension, frame delay
// and image descriptor.
func TestContainerLayout(t *testing.T) {
	data, err := Render([]board.Page{{}}, "speed=2")
	if err != nil {
		t.Fatal(err)
	}

	var want []byte
	want = append(want, "GIF89a"...)
	want = append(want,
		0xA0, 0x00, // width 160
		0x10, 0x00, // height 16
		0x83,       // global colour table with 16 entries
		0x00, 0x00, // background index, aspect ratio
	)
	for _, c := range DefaultPalette {
		rgba := c.(color.RGBA)
		want = append(want, rgba.R, rgba.G, rgba.B)
	}
	want = append(want, make([]byte, 3*(16-PaletteSize))...)
	want = append(want, 0x21, 0xFF, 0x0B)
	want = append(want, "NETSCAPE2.0"...)
	want = append(want, 0x03, 0x01, 0x00, 0x00, 0x00) // loop forever
	want = append(want,
		0x21, 0xF9, 0x04, 0x00, // graphic control, no transparency
		25, 0x00,               // delay 50/2
		0x00, 0x00,
	)
	want = append(want,
		0x2C,
		0x00, 0x00, 0x00, 0x00, // origin
		0xA0, 0x00, 0x10, 0x00, // size
		0x00,                   // no local colour table
	)

	if !bytes.HasPrefix(data, want) {
		n := min(len(data), len(want))
		t.Fatalf("container prefix\n got % x\nwant % x", data[:n], want)
	}
	if data[len(data)-1] != 0x3B {
		t.Errorf("missing trailer, last byte %#x", data[len(data)-1])
	}

	anim := decode(t, data)
	for i, c := range anim.Image[0].Pix {
		if c != 0 {
			t.Fatalf("pixel %d has index %d", i, c)
		}
	}
}

func TestDefaultPalette(t *testing.T) {
	want := []uint32{
		0x404040, // background
		0x00FFFF, // I
		0xFF8000, // L
		0xFFFF00, // O
		0xFF0000, // Z
		0x8000FF, // T
		0x0020FF, // J
		0x00FFFF, // S
		0x808080, // garbage
		0x101010, // marker
	}
	if len(DefaultPalette) != len(want) {
		t.Fatalf("%d colours, want %d", len(DefaultPalette), len(want))
	}
	for i, rgb := range want {
		c := color.RGBA{uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb), 0xFF}
		if DefaultPalette[i] != c {
			t.Errorf("colour %d: got %v, want %v", i, DefaultPalette[i], c)
		}
	}

	// the rendered file carries the palette in index order
	anim := render(t, []board.Page{{}}, "")
	pal := anim.Config.ColorModel.(color.Palette)
	for i := range want {
		if pal[i] != DefaultPalette[i] {
			t.Errorf("global table entry %d: got %v, want %v", i, pal[i], DefaultPalette[i])
		}
	}
}

func TestSinglePageLoops(t *testing.T) {
	data, err := Render([]board.Page{{Field: []board.Row{{board.T}}}}, "")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("NETSCAPE2.0")) {
		t.Error("loop extension missing")
	}
	if anim := decode(t, data); anim.LoopCount != 0 {
		t.Errorf("loop count %d, want 0", anim.LoopCount)
	}
}

func TestCanvasTooLarge(t *testing.T) {
	pages := []board.Page{
		{Piece: &board.Placement{Kind: board.KindO, X: 4, Y: 5000}},
	}
	cfg := DefaultConfig()

	if _, err := cfg.Render(pages, ""); !errors.Is(err, ErrCanvasSize) {
		t.Errorf("Render: got %v, want %v", err, ErrCanvasSize)
	}
	if _, err := cfg.Frames(pages); !errors.Is(err, ErrCanvasSize) {
		t.Errorf("Frames: got %v, want %v", err, ErrCanvasSize)
	}
	if _, err := cfg.Still(pages, 0); !errors.Is(err, ErrCanvasSize) {
		t.Errorf("Still: got %v, want %v", err, ErrCanvasSize)
	}

	// the same placement fits with one-pixel blocks
	cfg.BlockSize = 1
	if _, err := cfg.Frames(pages); err != nil {
		t.Errorf("block size 1: %v", err)
	}
}

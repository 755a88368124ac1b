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

// Command genpdf writes the final page of every test case as a monochrome
// PDF, for printing and for visual review of the reference images.
// With -png, the PDF files are also rendered using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/fumengif"
	"seehuhn.de/go/fumengif/testcases"
)

const pdfDir = "testdata/pdf"

var withPNG = flag.Bool("png", false, "render the PDF files to PNG using Ghostscript")

func main() {
	flag.Parse()

	if err := os.MkdirAll(pdfDir, 0755); err != nil {
		panic(err)
	}

	cfg := fumengif.DefaultConfig()
	grey := greyLevels(&cfg)

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(pdfDir, name+".pdf")

			if err := generatePDF(&cfg, grey, tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *withPNG {
				pngPath := filepath.Join(pdfDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

// greyLevels maps every palette entry to its CIE lightness.
func greyLevels(cfg *fumengif.Config) []float64 {
	res := make([]float64, len(cfg.Palette))
	for i, col := range cfg.Palette {
		c, ok := colorful.MakeColor(col)
		if !ok {
			continue
		}
		l, _, _ := c.Lab()
		res[i] = min(max(l, 0), 1)
	}
	return res
}

func generatePDF(cfg *fumengif.Config, grey []float64, tc testcases.TestCase, pdfPath string) error {
	img, err := cfg.Still(tc.Pages, len(tc.Pages)-1)
	if err != nil {
		return err
	}
	b := img.Bounds()

	// Page size in points (1 point = 1 pixel at 72 DPI)
	bounds := fumengif.NewCanvas(tc.Pages, cfg.BlockSize).Bounds()
	paper := (*pdf.Rectangle)(&bounds)
	height := bounds.URy

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; image rows start at the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	// Horizontal runs of equal palette index are collected per colour,
	// so that every colour is filled once.
	for idx := range grey {
		first := true
		for y := range b.Dy() {
			row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()]
			for x := 0; x < len(row); {
				if int(row[x]) != idx {
					x++
					continue
				}
				start := x
				for x < len(row) && int(row[x]) == idx {
					x++
				}
				if first {
					page.SetFillColor(color.DeviceGray(grey[idx]))
					first = false
				}
				page.Rectangle(float64(start), float64(y), float64(x-start), 1)
			}
		}
		if !first {
			page.Fill()
		}
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

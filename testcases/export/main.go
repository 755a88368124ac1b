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

// Command export writes the test cases as page files, together with
// reference animations rendered by the current code.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/fumengif"
	"seehuhn.de/go/fumengif/pagefile"
	"seehuhn.de/go/fumengif/testcases"
)

const (
	caseDir = "testdata/cases"
	refDir  = "testdata/reference"
)

func main() {
	for _, dir := range []string{caseDir, refDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(name, tc); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(name string, tc testcases.TestCase) error {
	fd, err := os.Create(filepath.Join(caseDir, name+".yaml"))
	if err != nil {
		return err
	}
	err = pagefile.Write(fd, &pagefile.File{Options: tc.Options, Pages: tc.Pages})
	if cerr := fd.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	data, err := fumengif.Render(tc.Pages, tc.Options)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(refDir, name+".gif"), data, 0644)
}

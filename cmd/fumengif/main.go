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

// Command fumengif renders page files as animated GIF images.
//
// Every page file given on the command line is rendered into a GIF file
// of the same name with the extension replaced by ".gif".  With -png, a
// scaled still image of one page is written as well.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	log "github.com/mgutz/logxi/v1"

	"seehuhn.de/go/fumengif"
	"seehuhn.de/go/fumengif/config"
	"seehuhn.de/go/fumengif/dispatch"
	"seehuhn.de/go/fumengif/pagefile"
)

var (
	logger = log.New("fumengif")

	verbose    = flag.Bool("v", false, "print internal logging")
	configFile = flag.String("config", "", "read renderer settings from this YAML `file`")
	options    = flag.String("options", "", "render options, overriding those of the page files")
	outDir     = flag.String("o", "", "write output files into this `directory`")
	still      = flag.Int("png", -1, "also write a PNG still of this `page` (0-based)")
	stillWidth = flag.Int("width", 320, "width of the PNG still in pixels")
	workers    = flag.Int("j", runtime.NumCPU(), "number of concurrent renders")
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", filepath.Base(os.Args[0]), "[options] file.yaml ...")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "fumengif renders Tetris board sequences as animated GIF images.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		logger.SetLevel(log.LevelDebug)
	}

	if err := run(flag.Args()); err != nil {
		logger.Error("fumengif failed", "err", err)
		os.Exit(1)
	}
}

func run(names []string) error {
	cfg := fumengif.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			return err
		}
	}

	files := make([]*pagefile.File, len(names))
	jobs := make([]dispatch.Job, len(names))
	for i, name := range names {
		f, err := pagefile.Load(name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		files[i] = f

		opt := f.Options
		if *options != "" {
			opt = *options
		}
		jobs[i] = dispatch.Job{ID: name, Pages: f.Pages, Options: opt}
	}

	pool := dispatch.New(cfg, *workers, logger)
	results, err := pool.RenderAll(context.Background(), jobs)
	if err != nil {
		return err
	}

	for i, res := range results {
		out := outputName(names[i], ".gif")
		if err := os.WriteFile(out, res.Data, 0644); err != nil {
			return err
		}
		logger.Info("wrote animation", "file", out, "pages", len(files[i].Pages))

		if *still >= 0 {
			if err := writeStill(cfg, files[i], outputName(names[i], ".png")); err != nil {
				return fmt.Errorf("%s: %w", names[i], err)
			}
		}
	}
	return nil
}

func writeStill(cfg fumengif.Config, f *pagefile.File, out string) (err error) {
	img, err := cfg.Still(f.Pages, *still)
	if err != nil {
		return err
	}
	thumb := fumengif.Thumbnail(img, *stillWidth)

	fd, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(fd, thumb)
}

func outputName(in, ext string) string {
	base := strings.TrimSuffix(in, filepath.Ext(in)) + ext
	if *outDir != "" {
		base = filepath.Join(*outDir, filepath.Base(base))
	}
	return base
}

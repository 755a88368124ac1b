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

// Command fumenplay plays a page file in the terminal.
//
// The frames are rendered with one pixel per board cell and shown using
// the same palette and frame delay as the GIF output.  Space pauses,
// the arrow keys step through the pages, q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/mgutz/logxi/v1"

	"seehuhn.de/go/fumengif"
	"seehuhn.de/go/fumengif/config"
	"seehuhn.de/go/fumengif/pagefile"
)

var (
	logger = log.New("fumenplay")

	configFile = flag.String("config", "", "read renderer settings from this YAML `file`")
	options    = flag.String("options", "", "render options, overriding those of the page file")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: fumenplay [options] file.yaml")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		logger.Error("fumenplay failed", "err", err)
		os.Exit(1)
	}
}

func run(fname string) error {
	cfg := fumengif.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			return err
		}
	}
	cfg.BlockSize = 1

	f, err := pagefile.Load(fname)
	if err != nil {
		return err
	}
	opt := f.Options
	if *options != "" {
		opt = *options
	}

	frames, err := cfg.Frames(f.Pages)
	if err != nil {
		return err
	}
	delay := time.Duration(fumengif.ParseOptions(opt).Delay(cfg.BaseDelay)) * 10 * time.Millisecond
	delay = max(delay, 10*time.Millisecond)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	p := &player{
		screen: screen,
		frames: frames,
		styles: paletteStyles(&cfg),
	}
	return p.loop(delay)
}

type player struct {
	screen tcell.Screen
	frames []*image.Paletted
	styles []tcell.Style
	pos    int
	paused bool
}

func paletteStyles(cfg *fumengif.Config) []tcell.Style {
	styles := make([]tcell.Style, len(cfg.Palette))
	for i, col := range cfg.Palette {
		r, g, b, _ := col.RGBA()
		bg := tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
		styles[i] = tcell.StyleDefault.Background(bg)
	}
	return styles
}

func (p *player) loop(delay time.Duration) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	p.draw()
	for {
		select {
		case ev := <-events:
			if !p.handle(ev) {
				return nil
			}
			p.draw()
		case <-ticker.C:
			if !p.paused {
				p.pos = (p.pos + 1) % len(p.frames)
				p.draw()
			}
		}
	}
}

// handle processes one terminal event and reports whether to continue.
func (p *player) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			p.paused = true
			p.pos = (p.pos + len(p.frames) - 1) % len(p.frames)
		case tcell.KeyRight:
			p.paused = true
			p.pos = (p.pos + 1) % len(p.frames)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				p.paused = !p.paused
			}
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

func (p *player) draw() {
	p.screen.Clear()
	img := p.frames[p.pos]
	b := img.Bounds()
	for y := range b.Dy() {
		for x := range b.Dx() {
			style := p.styles[img.ColorIndexAt(b.Min.X+x, b.Min.Y+y)]
			// two terminal cells per pixel keep the tiles roughly square
			p.screen.SetContent(2*x, y, ' ', nil, style)
			p.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}

	status := fmt.Sprintf("%d/%d", p.pos+1, len(p.frames))
	if p.paused {
		status += " paused"
	}
	for i, r := range status {
		p.screen.SetContent(i, b.Dy()+1, r, nil, tcell.StyleDefault)
	}
	p.screen.Show()
}

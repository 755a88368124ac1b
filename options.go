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
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Options are the per-request settings given as a string of key=value
// tokens, for example "speed=2".
type Options struct {
	// Speed scales the playback rate.  The frame delay is divided by
	// this value.
	Speed float64
}

// DefaultOptions returns the options used when no option string is given.
func DefaultOptions() Options {
	return Options{Speed: 1}
}

var optionToken = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_-]*)=(.*)$`)

func isOptionSeparator(r rune) bool {
	return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// ParseOptions extracts render options from s.
//
// Tokens are separated by white space, commas or semicolons.
// Unknown keys, tokens without '=' and malformed values are ignored,
// so that any string can be passed without causing an error.
func ParseOptions(s string) Options {
	opt := DefaultOptions()
	for _, tok := range strings.FieldsFunc(s, isOptionSeparator) {
		m := optionToken.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		switch strings.ToLower(m[1]) {
		case "speed":
			v, err := strconv.ParseFloat(m[2], 64)
			if err != nil || !(v > 0) || math.IsInf(v, 0) {
				continue
			}
			opt.Speed = v
		}
	}
	return opt
}

// Delay returns the frame delay for the given base delay, in hundredths of
// a second.  The result is clamped to the range a GIF can store.
func (o Options) Delay(base int) int {
	speed := o.Speed
	if !(speed > 0) || math.IsInf(speed, 0) {
		speed = 1
	}
	d := math.Round(float64(base) / speed)
	return int(max(0, min(d, maxDimension)))
}

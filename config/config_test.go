package config

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/fumengif"
)

func TestReadEmpty(t *testing.T) {
	cfg, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, fumengif.DefaultConfig(), cfg)
}

func TestReadPartial(t *testing.T) {
	cfg, err := Read(strings.NewReader("block_size: 8\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.BlockSize)
	assert.Equal(t, fumengif.DefaultBaseDelay, cfg.BaseDelay)
	assert.Equal(t, fumengif.DefaultPalette, cfg.Palette)
}

func TestReadPalette(t *testing.T) {
	in := `
base_delay: 20
palette: ["#000", "#fff", "#f00", "#0f0", "#00f", "#ff0", "#0ff", "#f0f", "#888888", "#123456"]
`
	cfg, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.BaseDelay)
	require.Len(t, cfg.Palette, fumengif.PaletteSize)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, cfg.Palette[0])
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, cfg.Palette[1])
	assert.Equal(t, color.RGBA{0x12, 0x34, 0x56, 255}, cfg.Palette[9])
}

func TestReadErrors(t *testing.T) {
	cases := map[string]string{
		"short palette": `palette: ["#000", "#fff"]`,
		"bad colour":    `palette: ["#000", "#fff", "#f00", "#0f0", "#00f", "#ff0", "#0ff", "#f0f", "grey", "#123456"]`,
		"block size":    "block_size: 0",
		"base delay":    "base_delay: -5",
		"unknown key":   "blocksize: 4",
		"not yaml":      "block_size: [",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestWriteRead(t *testing.T) {
	cfg := fumengif.DefaultConfig()
	cfg.BlockSize = 12
	cfg.BaseDelay = 33

	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, cfg))
	assert.Contains(t, buf.String(), "block_size: 12")

	got, err := Read(buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

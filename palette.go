package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Swatch is one selectable palette entry. Pressed is the only field that
// changes after startup.
type Swatch struct {
	X, Y    int
	Color   uint32
	Label   string
	Pressed bool
}

// Palette is the ordered column of swatches, top to bottom.
type Palette []Swatch

// paletteEntry is a color with its label, before layout assigns positions.
type paletteEntry struct {
	Color uint32
	Label string
}

var nordEntries = []paletteEntry{
	{nord0, "nord0"}, {nord1, "nord1"}, {nord2, "nord2"}, {nord3, "nord3"},
	{nord4, "nord4"}, {nord5, "nord5"}, {nord6, "nord6"}, {nord7, "nord7"},
	{nord8, "nord8"}, {nord9, "nord9"}, {nord10, "nord10"}, {nord11, "nord11"},
	{nord12, "nord12"}, {nord13, "nord13"}, {nord14, "nord14"}, {nord15, "nord15"},
}

// NewPalette stacks the entries vertically with uniform padding gaps,
// left-aligned at x = padding.
func NewPalette(entries []paletteEntry, l Layout) Palette {
	p := make(Palette, len(entries))
	for i, e := range entries {
		p[i] = Swatch{
			X:     dockPadding,
			Y:     dockPadding + i*(l.Edge+dockPadding),
			Color: e.Color,
			Label: e.Label,
		}
	}
	return p
}

// Find returns the index of the swatch containing the point, or -1. The
// square is inclusive of its boundary on all sides.
func (p Palette) Find(x, y, edge int) int {
	for i := range p {
		s := &p[i]
		if x >= s.X && x <= s.X+edge && y >= s.Y && y <= s.Y+edge {
			return i
		}
	}
	return -1
}

// paletteFile is the YAML shape of an optional palette override.
type paletteFile struct {
	Colors []struct {
		Label string `yaml:"label"`
		Hex   string `yaml:"hex"`
	} `yaml:"colors"`
}

// loadPaletteFile reads a palette override. Colors accept "#RRGGBB" or
// "0xRRGGBB" spellings.
func loadPaletteFile(path string) ([]paletteEntry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf paletteFile
	if err := yaml.Unmarshal(b, &pf); err != nil {
		return nil, err
	}
	if len(pf.Colors) == 0 {
		return nil, fmt.Errorf("palette file %s lists no colors", path)
	}
	entries := make([]paletteEntry, 0, len(pf.Colors))
	for i, c := range pf.Colors {
		rgb, err := parseHexColor(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		entries = append(entries, paletteEntry{Color: rgb, Label: c.Label})
	}
	return entries, nil
}

func parseHexColor(s string) (uint32, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "#")
	t = strings.TrimPrefix(t, "0x")
	if len(t) != 6 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	return uint32(v), nil
}

// loadPalette resolves the palette for this run: $NORD_DOCK_PALETTE if set,
// else ~/.config/arctic-nord-dock/palette.yml, else the built-in Nord
// palette. A missing file is silent; a broken one logs and falls back.
func loadPalette() []paletteEntry {
	path := os.Getenv("NORD_DOCK_PALETTE")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nordEntries
		}
		path = filepath.Join(home, ".config", "arctic-nord-dock", "palette.yml")
	}
	entries, err := loadPaletteFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("palette file %s: %v; using built-in palette", path, err)
		}
		return nordEntries
	}
	return entries
}

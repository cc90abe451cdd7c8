package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewPalettePositions(t *testing.T) {
	l := ComputeLayout(1000, len(nordEntries), dockPadding) // edge 50
	p := NewPalette(nordEntries, l)

	if len(p) != 16 {
		t.Fatalf("palette has %d swatches, want 16", len(p))
	}
	for i := range p {
		wantY := dockPadding + i*(l.Edge+dockPadding)
		if p[i].X != dockPadding || p[i].Y != wantY {
			t.Errorf("swatch %d at (%d, %d), want (%d, %d)", i, p[i].X, p[i].Y, dockPadding, wantY)
		}
		if p[i].Pressed {
			t.Errorf("swatch %d starts pressed", i)
		}
	}
	if p[0].Color != nord0 || p[0].Label != "nord0" {
		t.Errorf("swatch 0 = %+v, want nord0", p[0])
	}
	if p[15].Color != nord15 || p[15].Label != "nord15" {
		t.Errorf("swatch 15 = %+v, want nord15", p[15])
	}
}

func TestPaletteFind(t *testing.T) {
	l := ComputeLayout(1000, len(nordEntries), dockPadding)
	p := NewPalette(nordEntries, l)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"center of first", 30, 30, 0},
		{"top-left corner inclusive", 5, 5, 0},
		{"bottom-right corner inclusive", 55, 55, 0},
		{"just right of swatch", 56, 30, -1},
		{"left margin", 4, 30, -1},
		{"padding gap between 0 and 1", 30, 57, -1},
		{"top of second", 30, 60, 1},
		{"last swatch", 30, 5 + 15*55 + 25, 15},
		{"below the column", 30, 5 + 16*55 + 10, -1},
		{"negative coordinates", -3, -3, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Find(tt.x, tt.y, l.Edge); got != tt.want {
				t.Errorf("Find(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"#FF0000", 0xFF0000, false},
		{"0x8fbcbb", 0x8FBCBB, false},
		{"2E3440", 0x2E3440, false},
		{" #81A1C1 ", 0x81A1C1, false},
		{"#FFF", 0, true},
		{"#GGGGGG", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseHexColor(%q) succeeded with %#06x", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseHexColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseHexColor(%q) = %#06x, want %#06x", tt.in, got, tt.want)
		}
	}
}

func TestLoadPaletteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yml")
	content := `colors:
  - label: crimson
    hex: "#BF616A"
  - label: frost
    hex: 0x8FBCBB
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := loadPaletteFile(path)
	if err != nil {
		t.Fatalf("loadPaletteFile: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Label != "crimson" || entries[0].Color != 0xBF616A {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if entries[1].Label != "frost" || entries[1].Color != 0x8FBCBB {
		t.Errorf("entry 1 = %+v", entries[1])
	}
}

func TestLoadPaletteFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := loadPaletteFile(filepath.Join(dir, "absent.yml")); !os.IsNotExist(err) {
		t.Errorf("missing file: err = %v, want not-exist", err)
	}

	bad := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(bad, []byte("colors:\n  - label: x\n    hex: nope\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadPaletteFile(bad); err == nil {
		t.Error("bad hex value parsed without error")
	}

	empty := filepath.Join(dir, "empty.yml")
	if err := os.WriteFile(empty, []byte("colors: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadPaletteFile(empty); err == nil {
		t.Error("empty color list accepted")
	}
}

func TestLoadPaletteFallsBackToBuiltin(t *testing.T) {
	t.Setenv("NORD_DOCK_PALETTE", filepath.Join(t.TempDir(), "nowhere.yml"))
	entries := loadPalette()
	if len(entries) != len(nordEntries) {
		t.Fatalf("fallback palette has %d entries, want %d", len(entries), len(nordEntries))
	}
	if entries[0] != nordEntries[0] {
		t.Errorf("fallback entry 0 = %+v", entries[0])
	}
}

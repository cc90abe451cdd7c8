package main

import "testing"

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name         string
		screenHeight int
		paletteLen   int
		padding      int
		want         Layout
	}{
		{
			name:         "1000px screen, 16 colors",
			screenHeight: 1000,
			paletteLen:   16,
			padding:      5,
			want:         Layout{Edge: 50, DockWidth: 60, DockHeight: 885},
		},
		{
			name:         "1080p screen, 16 colors",
			screenHeight: 1080,
			paletteLen:   16,
			padding:      5,
			want:         Layout{Edge: 54, DockWidth: 64, DockHeight: 949},
		},
		{
			name:         "short palette",
			screenHeight: 1000,
			paletteLen:   4,
			padding:      5,
			want:         Layout{Edge: 200, DockWidth: 210, DockHeight: 825},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLayout(tt.screenHeight, tt.paletteLen, tt.padding)
			if got != tt.want {
				t.Errorf("ComputeLayout(%d, %d, %d) = %+v, want %+v",
					tt.screenHeight, tt.paletteLen, tt.padding, got, tt.want)
			}
		})
	}
}

func TestComputeLayoutFitsScreen(t *testing.T) {
	for _, h := range []int{600, 768, 900, 1080, 1440, 2160} {
		l := ComputeLayout(h, 16, 5)
		if l.DockHeight > h {
			t.Errorf("screen %d: dock height %d exceeds screen", h, l.DockHeight)
		}
		if l.Edge <= 0 {
			t.Errorf("screen %d: non-positive edge %d", h, l.Edge)
		}
	}
}

package main

// Layout consolidates the derived geometry of the dock. Everything follows
// from the screen height and the palette length; it never changes after
// startup.
type Layout struct {
	Edge       int // Side length of one swatch square
	DockWidth  int
	DockHeight int
}

// ComputeLayout derives the swatch edge length and the dock dimensions.
// The dock keeps a vertical margin of dockHeightMargin times the screen
// height, split between top and bottom by the window placement.
func ComputeLayout(screenHeight, paletteLen, padding int) Layout {
	edge := int((float64(screenHeight) - dockHeightMargin*float64(screenHeight)) / float64(paletteLen))
	return Layout{
		Edge:       edge,
		DockWidth:  2*padding + edge,
		DockHeight: paletteLen*(edge+padding) + padding,
	}
}

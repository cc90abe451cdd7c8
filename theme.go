package main

// Color Palette (Arctic Nord)
const (
	nord0  = 0x2E3440
	nord1  = 0x3B4252
	nord2  = 0x434C5E
	nord3  = 0x4C566A
	nord4  = 0xD8DEE9
	nord5  = 0xE5E9F0
	nord6  = 0xECEFF4
	nord7  = 0x8FBCBB
	nord8  = 0x88C0D0
	nord9  = 0x81A1C1
	nord10 = 0x5E81AC
	nord11 = 0xBF616A
	nord12 = 0xD08770
	nord13 = 0xEBCB8B
	nord14 = 0xA3BE8C
	nord15 = 0xB48EAD
)

// UI colors
const (
	colorBackground = 0x000000 // Label backing rectangles, dark menu text
	colorWhite      = 0xFFFFFF // Menu hover fill, light menu text
	colorLightGrey  = 0xCCCCCC // Menu background
	colorDarkGrey   = 0x555555 // Active-format row fill
	colorLabelText  = nord6    // Swatch label text
)

// Layout Constants
const (
	dockPadding      = 5    // Gap between swatches and around the column
	dockHeightMargin = 0.20 // Dock height stays at 80% of the screen height
	pressedInset     = 5    // Pressed swatch shrinks by this many pixels
	pressedShift     = 2    // Pressed swatch shifts down-right by this much

	menuItemHeight  = 20
	menuItemPadding = 5
	menuWidth       = 80
)

const clipboardBufferSize = 64

package main

// menuSession is the state of one popup-menu invocation: an ephemeral
// surface near the invoking click showing the format list. It lives until a
// press resolves it to a selection or a cancel. The session's event handling
// is a plain step function so the modal loop around it stays trivial.
type menuSession struct {
	x, y          int // clamped top-left, root coordinates
	width, height int
	hover         int // row under the pointer, -1 none
	selected      int // chosen row, -1 cancelled
	done          bool
	active        ColorFormat // highlighted as the current format
}

// newMenuSession places the menu at the click position, reflected back
// inside the display: off the right edge it shifts left past the dock
// column, off the bottom it shifts up against the dock's vertical band.
func newMenuSession(x, y int, active ColorFormat, screenW, screenH, dockW, dockH int) *menuSession {
	height := menuItemHeight * int(formatCount)
	if x+menuWidth > screenW {
		x = screenW - menuWidth - dockW
	}
	band := dockH + (screenH-dockH)/2
	if y+height > band {
		y = band - height
	}
	return &menuSession{
		x:        x,
		y:        y,
		width:    menuWidth,
		height:   height,
		hover:    -1,
		selected: -1,
		active:   active,
	}
}

type menuEventKind int

const (
	menuExpose menuEventKind = iota
	menuMotion
	menuLeave
	menuPressInside  // primary press on the menu surface, Y relative to it
	menuPressOutside // primary press anywhere else
)

// menuEvent is one input to the session. Y is relative to the menu surface
// and only meaningful for motion and inside presses.
type menuEvent struct {
	kind menuEventKind
	y    int
}

// step advances the session by one event and reports whether the surface
// needs a repaint.
func (m *menuSession) step(ev menuEvent) bool {
	switch ev.kind {
	case menuExpose:
		return true
	case menuMotion:
		hover := -1
		if ev.y >= 0 && ev.y < m.height {
			hover = ev.y / menuItemHeight
		}
		if hover != m.hover {
			m.hover = hover
			return true
		}
	case menuLeave:
		if m.hover != -1 {
			m.hover = -1
			return true
		}
	case menuPressInside:
		if ev.y >= 0 && ev.y < m.height {
			m.selected = ev.y / menuItemHeight
		}
		m.done = true
	case menuPressOutside:
		m.done = true
	}
	return false
}

// draw renders all rows. Hovered rows get a light fill with dark text, the
// active format a dark fill with light text, the rest dark text on the light
// menu background.
func (m *menuSession) draw(s surface) {
	s.FillRect(0, 0, m.width, m.height, colorLightGrey)
	for i, name := range formatNames {
		rowY := i * menuItemHeight
		fill := uint32(colorLightGrey)
		text := uint32(colorBackground)
		switch {
		case i == m.hover:
			fill = colorWhite
		case ColorFormat(i) == m.active:
			fill = colorDarkGrey
			text = colorWhite
		}
		if fill != colorLightGrey {
			s.FillRect(0, rowY, m.width, menuItemHeight, fill)
		}
		s.DrawText(menuItemPadding, rowY+menuItemHeight-menuItemPadding, text, fill, name)
	}
}

package main

import (
	"log"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// surface is the minimal drawing capability the dock and menu consume:
// filled rectangles, text, and text measurement on one window.
type surface interface {
	FillRect(x, y, w, h int, rgb uint32)
	ClearArea(x, y, w, h int)
	// DrawText draws s with its baseline at y, fg on bg.
	DrawText(x, y int, fg, bg uint32, s string)
	// TextExtents returns the rendered width and height (ascent+descent).
	TextExtents(s string) (w, h int)
}

// formatMenu runs a modal format-selection session at root coordinates and
// returns the chosen format index, or -1 when cancelled.
type formatMenu interface {
	ShowMenu(rootX, rootY int, active ColorFormat) int
}

const (
	buttonLeft  = 1
	buttonRight = 3
)

// App owns all mutable dock state and routes events to it. Handlers run to
// completion before the next event is fetched, so none of this needs
// locking.
type App struct {
	layout  Layout
	palette Palette
	format  ColorFormat
	input   *InputState
	clip    *Clipboard
	dock    surface
	menu    formatMenu
}

func NewApp(layout Layout, entries []paletteEntry, clip *Clipboard, dock surface, menu formatMenu) *App {
	return &App{
		layout:  layout,
		palette: NewPalette(entries, layout),
		format:  FormatHTMLHex,
		input:   NewInputState(),
		clip:    clip,
		dock:    dock,
		menu:    menu,
	}
}

// commitSwatch formats the swatch's color in the current format and commits
// it to the clipboard. A failed ownership claim is logged and tolerated; the
// staged buffer is already correct.
func (a *App) commitSwatch(i int) {
	text := FormatColor(a.palette[i].Color, a.format)
	if err := a.clip.Commit(text); err != nil {
		log.Printf("clipboard: %v", err)
	}
}

// onRightClick opens the format menu for the swatch under the pointer. A
// valid selection becomes the new format and immediately re-copies that
// swatch's color.
func (a *App) onRightClick(x, y, rootX, rootY int) {
	i := a.palette.Find(x, y, a.layout.Edge)
	if i < 0 {
		return
	}
	chosen := a.menu.ShowMenu(rootX, rootY, a.format)
	if chosen < 0 || chosen >= int(formatCount) {
		return
	}
	a.format = ColorFormat(chosen)
	a.commitSwatch(i)
}

func (a *App) drawAll() {
	for i := range a.palette {
		a.drawSwatch(i)
	}
}

// drawSwatch paints one swatch square and its label. A pressed swatch is
// drawn slightly smaller and shifted to read as pushed in.
func (a *App) drawSwatch(i int) {
	s := &a.palette[i]
	edge := a.layout.Edge
	x, y, size := s.X, s.Y, edge
	if s.Pressed {
		size -= pressedInset
		x += pressedShift
		y += pressedShift
	}

	a.dock.ClearArea(s.X, s.Y, edge, edge)
	a.dock.FillRect(x, y, size, size, s.Color)

	if s.Label == "" {
		return
	}
	labelW, labelH := a.dock.TextExtents(s.Label)
	rectW := labelW + dockPadding
	rectH := labelH + dockPadding
	rectX := x
	rectY := y + size - rectH
	if rectY < y {
		rectY = y
		rectH = size
	}
	a.dock.FillRect(rectX, rectY, rectW, rectH, colorBackground)
	a.dock.DrawText(rectX+2, rectY+(rectH+labelH)/2, colorLabelText, colorBackground, s.Label)
}

// dispatch routes one X event. It returns true when the window manager
// asked the dock to close. Events it does not understand are ignored.
func (a *App) dispatch(ev xgb.Event, wmDelete xproto.Atom) (quit bool) {
	switch e := ev.(type) {
	case xproto.ExposeEvent:
		if e.Count == 0 {
			a.drawAll()
		}
	case xproto.ButtonPressEvent:
		switch e.Detail {
		case buttonLeft:
			a.input.OnPress(a, int(e.EventX), int(e.EventY))
		case buttonRight:
			a.onRightClick(int(e.EventX), int(e.EventY), int(e.RootX), int(e.RootY))
		}
	case xproto.ButtonReleaseEvent:
		if e.Detail == buttonLeft {
			a.input.OnRelease(a, int(e.EventX), int(e.EventY))
		}
	case xproto.MotionNotifyEvent:
		a.input.OnMotion(a, int(e.EventX), int(e.EventY))
	case xproto.SelectionRequestEvent:
		a.clip.HandleRequest(&e)
	case xproto.ClientMessageEvent:
		if len(e.Data.Data32) > 0 && xproto.Atom(e.Data.Data32[0]) == wmDelete {
			return true
		}
	}
	return false
}

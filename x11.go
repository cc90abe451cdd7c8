package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const (
	dockTitle    = "Arctic Nord"
	dockFontName = "fixed"
)

// atomTable caches every atom the dock interns at startup.
type atomTable struct {
	wmProtocols     xproto.Atom
	wmDelete        xproto.Atom
	motifWMHints    xproto.Atom
	netWMName       xproto.Atom
	netWMState      xproto.Atom
	netWMStateAbove xproto.Atom
	utf8String      xproto.Atom
	compoundText    xproto.Atom
	clipboard       xproto.Atom
	targets         xproto.Atom
}

// xDisplay owns the X connection and every server-side resource: the dock
// window, its graphics context, the label font, and any ephemeral menu
// window while it exists.
type xDisplay struct {
	conn   *xgb.Conn
	screen *xproto.ScreenInfo
	window xproto.Window
	gc     xproto.Gcontext
	font   xproto.Font
	atoms  atomTable
	layout Layout
}

// openDisplay connects to the X server named by $DISPLAY.
func openDisplay() (*xDisplay, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("open display: %w", err)
	}
	return &xDisplay{
		conn:   conn,
		screen: xproto.Setup(conn).DefaultScreen(conn),
	}, nil
}

func (d *xDisplay) intern(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(d.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return xproto.AtomNone, fmt.Errorf("intern %s: %w", name, err)
	}
	return reply.Atom, nil
}

func (d *xDisplay) internAtoms() error {
	var err error
	for _, a := range []struct {
		dst  *xproto.Atom
		name string
	}{
		{&d.atoms.wmProtocols, "WM_PROTOCOLS"},
		{&d.atoms.wmDelete, "WM_DELETE_WINDOW"},
		{&d.atoms.motifWMHints, "_MOTIF_WM_HINTS"},
		{&d.atoms.netWMName, "_NET_WM_NAME"},
		{&d.atoms.netWMState, "_NET_WM_STATE"},
		{&d.atoms.netWMStateAbove, "_NET_WM_STATE_ABOVE"},
		{&d.atoms.utf8String, "UTF8_STRING"},
		{&d.atoms.compoundText, "COMPOUND_TEXT"},
		{&d.atoms.clipboard, "CLIPBOARD"},
		{&d.atoms.targets, "TARGETS"},
	} {
		if *a.dst, err = d.intern(a.name); err != nil {
			return err
		}
	}
	return nil
}

// initDock creates the undecorated always-on-top dock window at the right
// screen edge, vertically centered, and the drawing resources it uses.
func (d *xDisplay) initDock(l Layout) error {
	d.layout = l
	if err := d.internAtoms(); err != nil {
		return err
	}

	wid, err := xproto.NewWindowId(d.conn)
	if err != nil {
		return fmt.Errorf("allocate window id: %w", err)
	}
	d.window = wid

	winX := int(d.screen.WidthInPixels) - l.DockWidth
	winY := (int(d.screen.HeightInPixels) - l.DockHeight) / 2
	err = xproto.CreateWindowChecked(d.conn, d.screen.RootDepth, d.window, d.screen.Root,
		int16(winX), int16(winY), uint16(l.DockWidth), uint16(l.DockHeight), 0,
		xproto.WindowClassInputOutput, d.screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			d.screen.BlackPixel,
			xproto.EventMaskExposure | xproto.EventMaskButtonPress |
				xproto.EventMaskButtonRelease | xproto.EventMaskPointerMotion |
				xproto.EventMaskPropertyChange,
		}).Check()
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	// Motif hints: decorations off, everything else untouched.
	motif := make([]byte, 20)
	xgb.Put32(motif[0:], 2) // flags: MWM_HINTS_DECORATIONS
	xproto.ChangeProperty(d.conn, xproto.PropModeReplace, d.window,
		d.atoms.motifWMHints, d.atoms.motifWMHints, 32, 5, motif)

	xproto.ChangeProperty(d.conn, xproto.PropModeReplace, d.window,
		d.atoms.wmProtocols, xproto.AtomAtom, 32, 1, atomBytes([]xproto.Atom{d.atoms.wmDelete}))

	xproto.ChangeProperty(d.conn, xproto.PropModeReplace, d.window,
		d.atoms.netWMName, d.atoms.utf8String, 8, uint32(len(dockTitle)), []byte(dockTitle))

	class := "arctic_nord\x00ArcticNordDock\x00"
	xproto.ChangeProperty(d.conn, xproto.PropModeReplace, d.window,
		xproto.AtomWmClass, xproto.AtomString, 8, uint32(len(class)), []byte(class))

	fid, err := xproto.NewFontId(d.conn)
	if err != nil {
		return fmt.Errorf("allocate font id: %w", err)
	}
	d.font = fid
	if err := xproto.OpenFontChecked(d.conn, d.font, uint16(len(dockFontName)), dockFontName).Check(); err != nil {
		return fmt.Errorf("open font %s: %w", dockFontName, err)
	}

	gid, err := xproto.NewGcontextId(d.conn)
	if err != nil {
		return fmt.Errorf("allocate gc id: %w", err)
	}
	d.gc = gid
	err = xproto.CreateGCChecked(d.conn, d.gc, xproto.Drawable(d.window),
		xproto.GcForeground|xproto.GcBackground|xproto.GcFont,
		[]uint32{d.screen.WhitePixel, d.screen.BlackPixel, uint32(d.font)}).Check()
	if err != nil {
		return fmt.Errorf("create gc: %w", err)
	}

	xproto.MapWindow(d.conn, d.window)

	// Some window managers reposition on map; move back and re-assert.
	xproto.ConfigureWindow(d.conn, d.window,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(winX), uint32(winY)})
	d.setAboveState()

	return nil
}

// setAboveState asks the window manager to keep the dock above its peers.
func (d *xDisplay) setAboveState() {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: d.window,
		Type:   d.atoms.netWMState,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			1, // _NET_WM_STATE_ADD
			uint32(d.atoms.netWMStateAbove),
			0, 1, 0,
		}),
	}
	xproto.SendEvent(d.conn, false, d.screen.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()))
}

// close releases every server-side resource. Safe on partially initialized
// displays.
func (d *xDisplay) close() {
	if d.gc != 0 {
		xproto.FreeGC(d.conn, d.gc)
		d.gc = 0
	}
	if d.font != 0 {
		xproto.CloseFont(d.conn, d.font)
		d.font = 0
	}
	if d.window != 0 {
		xproto.DestroyWindow(d.conn, d.window)
		d.window = 0
	}
	d.conn.Close()
}

// selectionAtoms exposes the clipboard-related atoms for the Clipboard.
func (d *xDisplay) selectionAtoms() selectionAtoms {
	return selectionAtoms{
		Clipboard:    d.atoms.clipboard,
		Targets:      d.atoms.targets,
		UTF8String:   d.atoms.utf8String,
		CompoundText: d.atoms.compoundText,
	}
}

var errSelectionLost = errors.New("another client owns the CLIPBOARD selection")

// AssertOwnership claims the CLIPBOARD selection for the dock window and
// verifies the claim with a round-trip.
func (d *xDisplay) AssertOwnership() error {
	xproto.SetSelectionOwner(d.conn, d.window, d.atoms.clipboard, xproto.TimeCurrentTime)
	reply, err := xproto.GetSelectionOwner(d.conn, d.atoms.clipboard).Reply()
	if err != nil {
		return fmt.Errorf("query selection owner: %w", err)
	}
	if reply.Owner != d.window {
		return errSelectionLost
	}
	return nil
}

func (d *xDisplay) ReplyProperty(req *xproto.SelectionRequestEvent, typ xproto.Atom, format byte, data []byte) {
	dataLen := uint32(len(data))
	if format == 32 {
		dataLen /= 4
	}
	xproto.ChangeProperty(d.conn, xproto.PropModeReplace, req.Requestor,
		req.Property, typ, format, dataLen, data)
}

func (d *xDisplay) NotifyRequestor(req *xproto.SelectionRequestEvent, property xproto.Atom) {
	ev := xproto.SelectionNotifyEvent{
		Time:      req.Time,
		Requestor: req.Requestor,
		Selection: req.Selection,
		Target:    req.Target,
		Property:  property,
	}
	xproto.SendEvent(d.conn, true, req.Requestor, xproto.EventMaskNoEvent, string(ev.Bytes()))
}

// windowSurface adapts one window to the surface contract using the shared
// graphics context.
type windowSurface struct {
	d   *xDisplay
	win xproto.Window
}

func (s *windowSurface) FillRect(x, y, w, h int, rgb uint32) {
	xproto.ChangeGC(s.d.conn, s.d.gc, xproto.GcForeground, []uint32{rgb})
	xproto.PolyFillRectangle(s.d.conn, xproto.Drawable(s.win), s.d.gc,
		[]xproto.Rectangle{{X: int16(x), Y: int16(y), Width: uint16(w), Height: uint16(h)}})
}

func (s *windowSurface) ClearArea(x, y, w, h int) {
	xproto.ClearArea(s.d.conn, false, s.win, int16(x), int16(y), uint16(w), uint16(h))
}

func (s *windowSurface) DrawText(x, y int, fg, bg uint32, text string) {
	if text == "" {
		return
	}
	if len(text) > 255 {
		text = text[:255]
	}
	xproto.ChangeGC(s.d.conn, s.d.gc, xproto.GcForeground|xproto.GcBackground, []uint32{fg, bg})
	xproto.ImageText8(s.d.conn, byte(len(text)), xproto.Drawable(s.win), s.d.gc,
		int16(x), int16(y), text)
}

func (s *windowSurface) TextExtents(text string) (w, h int) {
	chars := make([]xproto.Char2b, len(text))
	for i := 0; i < len(text); i++ {
		chars[i] = xproto.Char2b{Byte1: 0, Byte2: text[i]}
	}
	reply, err := xproto.QueryTextExtents(s.d.conn, xproto.Fontable(s.d.font), chars, uint16(len(chars))).Reply()
	if err != nil {
		return 0, 0
	}
	return int(reply.OverallWidth), int(reply.FontAscent) + int(reply.FontDescent)
}

// dockSurface returns the drawing surface for the dock window itself.
func (d *xDisplay) dockSurface() surface {
	return &windowSurface{d: d, win: d.window}
}

// ShowMenu runs the modal format menu. It creates an override-redirect
// window, takes over event handling until the session resolves, and tears
// the window down again. Nothing else, swatch presses included, is
// observable while it runs.
func (d *xDisplay) ShowMenu(rootX, rootY int, active ColorFormat) int {
	m := newMenuSession(rootX, rootY, active,
		int(d.screen.WidthInPixels), int(d.screen.HeightInPixels),
		d.layout.DockWidth, d.layout.DockHeight)

	win, err := xproto.NewWindowId(d.conn)
	if err != nil {
		log.Printf("menu window: %v", err)
		return -1
	}
	err = xproto.CreateWindowChecked(d.conn, d.screen.RootDepth, win, d.screen.Root,
		int16(m.x), int16(m.y), uint16(m.width), uint16(m.height), 1,
		xproto.WindowClassInputOutput, d.screen.RootVisual,
		xproto.CwBackPixel|xproto.CwOverrideRedirect|xproto.CwEventMask,
		[]uint32{
			colorLightGrey,
			1, // override-redirect: no WM decoration or focus handling
			xproto.EventMaskExposure | xproto.EventMaskButtonPress |
				xproto.EventMaskPointerMotion | xproto.EventMaskLeaveWindow,
		}).Check()
	if err != nil {
		log.Printf("menu window: %v", err)
		return -1
	}
	defer xproto.DestroyWindow(d.conn, win)

	xproto.MapWindow(d.conn, win)
	xproto.ConfigureWindow(d.conn, win,
		xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove})

	surf := &windowSurface{d: d, win: win}
	m.draw(surf)

	for !m.done {
		ev, xerr := d.conn.WaitForEvent()
		if ev == nil && xerr == nil {
			break // connection gone
		}
		if xerr != nil {
			log.Printf("x11: %v", xerr)
			continue
		}
		me, ok := translateMenuEvent(ev, win)
		if !ok {
			continue
		}
		if m.step(me) {
			m.draw(surf)
		}
	}

	xproto.UnmapWindow(d.conn, win)
	return m.selected
}

// translateMenuEvent maps an X event onto the menu session's event set.
// Events for other windows are dropped, except button presses, which cancel
// the session.
func translateMenuEvent(ev xgb.Event, win xproto.Window) (menuEvent, bool) {
	switch e := ev.(type) {
	case xproto.ExposeEvent:
		if e.Window == win && e.Count == 0 {
			return menuEvent{kind: menuExpose}, true
		}
	case xproto.MotionNotifyEvent:
		if e.Event == win {
			return menuEvent{kind: menuMotion, y: int(e.EventY)}, true
		}
	case xproto.LeaveNotifyEvent:
		if e.Event == win {
			return menuEvent{kind: menuLeave}, true
		}
	case xproto.ButtonPressEvent:
		if e.Event == win {
			return menuEvent{kind: menuPressInside, y: int(e.EventY)}, true
		}
		return menuEvent{kind: menuPressOutside}, true
	}
	return menuEvent{}, false
}

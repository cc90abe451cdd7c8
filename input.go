package main

// InputState tracks which swatch, if any, is currently held down. It owns
// the transient pointer state; the App retains the higher-level state like
// the current format and the clipboard.
//
// A press commits the color immediately; release only clears the pressed
// visual. Dragging off a pressed swatch cancels the visual the same way.
type InputState struct {
	pressed int // palette index, -1 when idle
}

func NewInputState() *InputState {
	return &InputState{pressed: -1}
}

// OnPress handles a primary-button press. Landing on a swatch copies its
// color in the current format and marks it pressed.
func (in *InputState) OnPress(a *App, x, y int) {
	i := a.palette.Find(x, y, a.layout.Edge)
	if i < 0 {
		return
	}
	a.commitSwatch(i)
	a.palette[i].Pressed = true
	a.drawSwatch(i)
	in.pressed = i
}

// OnRelease clears the pressed visual when the button is released over the
// pressed swatch or over empty dock space. No clipboard write happens here;
// the commit already happened on press.
func (in *InputState) OnRelease(a *App, x, y int) {
	if in.pressed < 0 {
		return
	}
	i := a.palette.Find(x, y, a.layout.Edge)
	if i == in.pressed || i < 0 {
		in.clear(a)
	}
}

// OnMotion cancels the pressed visual as soon as the pointer leaves the
// pressed swatch.
func (in *InputState) OnMotion(a *App, x, y int) {
	if in.pressed < 0 {
		return
	}
	if a.palette.Find(x, y, a.layout.Edge) != in.pressed {
		in.clear(a)
	}
}

func (in *InputState) clear(a *App) {
	i := in.pressed
	in.pressed = -1
	a.palette[i].Pressed = false
	a.drawSwatch(i)
}

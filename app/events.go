package app

import "github.com/talanapp/talan"

// Event is a native input or window event, already decoupled from the
// windowing library. Each event is consumed once by Platform.HandleEvent.
type Event interface {
	event()
}

// Modifiers is the modifier key state carried by key events.
type Modifiers struct {
	Ctrl, Shift, Alt, Super bool
}

// CursorMoved reports the cursor position in window coordinates.
type CursorMoved struct {
	X, Y float64
}

// CursorEntered reports the cursor entering or leaving the window.
type CursorEntered struct {
	Entered bool
}

// MouseButtonChanged reports a button press or release.
type MouseButtonChanged struct {
	Button gui.MouseButton
	Down   bool
}

// Scrolled reports wheel or touchpad scrolling, in lines.
type Scrolled struct {
	X, Y float64
}

// KeyChanged reports a key press, repeat or release.
type KeyChanged struct {
	Key  gui.Key
	Down bool
	Mods Modifiers
}

// CharTyped reports a Unicode character produced by the keyboard.
type CharTyped struct {
	Char rune
}

// Resized reports a new window size. Width and Height are in window
// coordinates; the framebuffer size is in pixels.
type Resized struct {
	Width, Height                       int
	FramebufferWidth, FramebufferHeight int
}

// ScaleChanged reports a new native content scale, for example after the
// window moved to another monitor.
type ScaleChanged struct {
	X, Y float32
}

// FocusChanged reports the window gaining or losing keyboard focus.
type FocusChanged struct {
	Focused bool
}

// CloseRequested reports that the user asked to close the window.
type CloseRequested struct{}

func (CursorMoved) event()        {}
func (CursorEntered) event()      {}
func (MouseButtonChanged) event() {}
func (Scrolled) event()           {}
func (KeyChanged) event()         {}
func (CharTyped) event()          {}
func (Resized) event()            {}
func (ScaleChanged) event()       {}
func (FocusChanged) event()       {}
func (CloseRequested) event()     {}

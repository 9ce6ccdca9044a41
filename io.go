package gui

import "time"

// MouseCursor is the cursor shape the UI requests from the platform.
type MouseCursor int

const (
	MouseCursorNone MouseCursor = iota - 1
	MouseCursorArrow
	MouseCursorTextInput
	MouseCursorHand
	MouseCursorResizeEW
	MouseCursorResizeNS
	MouseCursorCount
)

// IO is the exchange area between the platform layer and the UI context.
// The platform writes display metrics and input; the UI writes back
// capture flags and the requested cursor.
type IO struct {
	// DisplaySize is the window size in logical units.
	DisplaySize Vec2
	// DisplayFramebufferScale maps logical units to framebuffer pixels.
	DisplayFramebufferScale Vec2

	// DeltaTime is the time since the previous frame, in seconds.
	DeltaTime float32

	// FontGlobalScale multiplies every glyph size at layout time.
	// Fonts rasterized at physical size use 1/scale to stay DPI independent.
	FontGlobalScale float32

	// MouseDrawCursor asks the UI to draw its own cursor and hide the OS one.
	MouseDrawCursor bool

	Input *InputState

	// Outputs, valid after the callback returns.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
	WantTextInput       bool
	MouseCursor         MouseCursor
}

func newIO() *IO {
	return &IO{
		DisplaySize:             Vec2{X: 1024, Y: 768},
		DisplayFramebufferScale: Vec2{X: 1, Y: 1},
		DeltaTime:               1.0 / 60.0,
		FontGlobalScale:         1,
		Input:                   NewInputState(),
		MouseCursor:             MouseCursorArrow,
	}
}

// UpdateDeltaTime stores now-last as DeltaTime and returns now, which the
// caller keeps as the next frame's reference instant.
// A clock that steps backwards yields a zero delta and keeps last.
func (io *IO) UpdateDeltaTime(last, now time.Time) time.Time {
	if now.Before(last) {
		io.DeltaTime = 0
		return last
	}
	io.DeltaTime = float32(now.Sub(last).Seconds())
	return now
}

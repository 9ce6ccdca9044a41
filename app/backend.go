package app

import "github.com/talanapp/talan"

// EventSource delivers native events.
type EventSource interface {
	// Poll hands every pending event to fn, in arrival order, and returns
	// without waiting for new ones.
	Poll(fn func(Event))
}

// Window is the native window the UI is shown in.
type Window interface {
	// Exists reports whether the native window is still alive.
	Exists() bool
	// Size returns the window size in window coordinates.
	Size() (width, height int)
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)
	// ContentScale returns the native DPI scale of the window's monitor.
	ContentScale() (x, y float32)
	// SetCursor changes the OS cursor shape.
	SetCursor(c gui.MouseCursor)
	// SetCursorVisible shows or hides the OS cursor over the window.
	SetCursorVisible(visible bool)
	// Destroy releases the window and its platform resources.
	Destroy()
}

// Target is one frame's drawing surface. Exactly one of Finish or Discard
// ends it.
type Target interface {
	Clear(r, g, b, a float32)
	// Finish presents the frame.
	Finish() error
	// Discard drops the frame without presenting it.
	Discard()
}

// Display hands out frame targets.
type Display interface {
	Draw() (Target, error)
}

// Renderer draws UI draw data onto the current target.
type Renderer interface {
	Render(data *gui.DrawData) error
	// ReloadAtlas replaces the font texture with a rebuilt atlas and
	// records the new texture ID on it.
	ReloadAtlas(atlas *gui.FontAtlas) error
	// Close releases GPU resources.
	Close()
}

// Backend bundles a windowing library and a graphics API.
type Backend interface {
	Events() EventSource
	Window() Window
	Display() Display
	// Clipboard returns the system clipboard, or nil if there is none.
	Clipboard() gui.ClipboardProvider
	// NewRenderer uploads the built font atlas and records its texture ID
	// on the atlas.
	NewRenderer(atlas *gui.FontAtlas) (Renderer, error)
}

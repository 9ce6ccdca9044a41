package app

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/talanapp/talan"
)

type hiDPIKind int

const (
	hiDPIDefault hiDPIKind = iota
	hiDPIRounded
	hiDPILocked
)

// HiDPIMode decides how the native content scale becomes the UI scale
// factor.
type HiDPIMode struct {
	kind  hiDPIKind
	value float32
}

var (
	// HiDPIDefault uses the native scale unchanged.
	HiDPIDefault = HiDPIMode{kind: hiDPIDefault}
	// HiDPIRounded rounds the native scale to the nearest integer, at least 1.
	HiDPIRounded = HiDPIMode{kind: hiDPIRounded}
)

// HiDPILocked ignores the native scale and always uses v.
func HiDPILocked(v float32) HiDPIMode {
	return HiDPIMode{kind: hiDPILocked, value: v}
}

// Resolve returns the scale factor for a native content scale.
// Non-positive results fall back to 1.
func (m HiDPIMode) Resolve(native float32) float32 {
	var f float32
	switch m.kind {
	case hiDPIRounded:
		f = max(1, float32(math.Round(float64(native))))
	case hiDPILocked:
		f = m.value
	default:
		f = native
	}
	if f <= 0 || math.IsNaN(float64(f)) {
		return 1
	}
	return f
}

func (m HiDPIMode) String() string {
	switch m.kind {
	case hiDPIRounded:
		return "rounded"
	case hiDPILocked:
		return fmt.Sprintf("locked(%g)", m.value)
	default:
		return "default"
	}
}

// Platform translates native window state and events into gui.IO.
//
// The UI works in logical units: DisplaySize is the framebuffer size
// divided by the scale factor, and cursor positions are converted from
// window coordinates through the framebuffer ratio.
type Platform struct {
	logger *slog.Logger

	mode     HiDPIMode
	scale    float32
	attached bool

	winW, winH int
	fbW, fbH   int

	cursor        gui.MouseCursor
	cursorVisible bool
}

// NewPlatform creates an unattached platform. A nil logger discards logs.
func NewPlatform(logger *slog.Logger) *Platform {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Platform{
		logger:        logger,
		scale:         1,
		cursor:        gui.MouseCursorArrow,
		cursorVisible: true,
	}
}

// Attach binds the platform to a window and fills the display metrics.
func (p *Platform) Attach(io *gui.IO, w Window, mode HiDPIMode) error {
	if p.attached {
		return ErrAlreadyAttached
	}
	p.attached = true
	p.mode = mode
	sx, _ := w.ContentScale()
	p.scale = mode.Resolve(sx)
	p.refreshSize(io, w)
	p.logger.Debug("platform attached",
		"hidpi", mode.String(),
		"native_scale", sx,
		"scale", p.scale,
		"display", fmt.Sprintf("%gx%g", io.DisplaySize.X, io.DisplaySize.Y))
	return nil
}

// ScaleFactor returns the resolved UI scale factor.
func (p *Platform) ScaleFactor() float32 {
	return p.scale
}

func (p *Platform) refreshSize(io *gui.IO, w Window) {
	p.winW, p.winH = w.Size()
	p.fbW, p.fbH = w.FramebufferSize()
	p.updateDisplay(io)
}

func (p *Platform) updateDisplay(io *gui.IO) {
	io.DisplaySize = gui.Vec2{X: float32(p.fbW) / p.scale, Y: float32(p.fbH) / p.scale}
	io.DisplayFramebufferScale = gui.Vec2{X: p.scale, Y: p.scale}
}

// toLogical converts window coordinates to logical units.
func (p *Platform) toLogical(x, y float64) (float32, float32) {
	rx, ry := 1.0, 1.0
	if p.winW > 0 && p.winH > 0 {
		rx = float64(p.fbW) / float64(p.winW)
		ry = float64(p.fbH) / float64(p.winH)
	}
	s := float64(p.scale)
	return float32(x * rx / s), float32(y * ry / s)
}

// HandleEvent applies one native event to io. Unknown events are ignored.
func (p *Platform) HandleEvent(io *gui.IO, ev Event) {
	in := io.Input
	switch e := ev.(type) {
	case CursorMoved:
		in.SetMousePos(p.toLogical(e.X, e.Y))
	case CursorEntered:
		if !e.Entered {
			in.MouseValid = false
		}
	case MouseButtonChanged:
		in.SetMouseButton(e.Button, e.Down)
	case Scrolled:
		in.AddMouseWheel(float32(e.X), float32(e.Y))
	case KeyChanged:
		in.ModCtrl = e.Mods.Ctrl
		in.ModShift = e.Mods.Shift
		in.ModAlt = e.Mods.Alt
		in.ModSuper = e.Mods.Super
		in.SetKey(e.Key, e.Down)
	case CharTyped:
		in.AddInputChar(e.Char)
	case Resized:
		p.winW, p.winH = e.Width, e.Height
		p.fbW, p.fbH = e.FramebufferWidth, e.FramebufferHeight
		p.updateDisplay(io)
	case ScaleChanged:
		prev := p.scale
		p.scale = p.mode.Resolve(e.X)
		p.updateDisplay(io)
		if p.scale != prev {
			p.logger.Info("content scale changed", "from", prev, "to", p.scale)
		}
	case FocusChanged:
		if !e.Focused {
			in.ReleaseAll()
		}
	}
}

// PrepareFrame refreshes display metrics from the window and applies the
// cursor shape the UI requested last frame.
func (p *Platform) PrepareFrame(io *gui.IO, w Window) error {
	if !w.Exists() {
		return ErrWindowGone
	}
	p.refreshSize(io, w)
	if c := io.MouseCursor; c != gui.MouseCursorNone && c != p.cursor {
		w.SetCursor(c)
		p.cursor = c
	}
	return nil
}

// PrepareRender shows or hides the OS cursor. It is hidden when the UI
// draws its own cursor or requested MouseCursorNone.
func (p *Platform) PrepareRender(io *gui.IO, w Window) {
	visible := !io.MouseDrawCursor && io.MouseCursor != gui.MouseCursorNone
	if visible != p.cursorVisible {
		w.SetCursorVisible(visible)
		p.cursorVisible = visible
	}
}

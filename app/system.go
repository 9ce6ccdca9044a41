// Package app runs a gui.Context inside a native window.
//
// A System owns the window, its event source, the renderer and the UI
// context. Backends such as backend/opengl assemble one through New:
//
//	sys, err := opengl.Init("talan")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = sys.MainLoop(func(run *bool, ui *gui.UI) {
//	    if ui.Button("Quit") {
//	        *run = false
//	    }
//	})
//
// Everything runs on the calling goroutine, which must be locked to the
// OS main thread.
package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/talanapp/talan"
)

// System is the runtime handle. MainLoop consumes it.
type System struct {
	events   EventSource
	window   Window
	display  Display
	ctx      *gui.Context
	platform *Platform
	renderer Renderer

	fontSize    float32
	fontScale   float32
	fontSources FontSourcesFunc
	clock       func() time.Time
	logger      *slog.Logger

	state    LoopState
	consumed bool
}

// New wires a backend into a System: context and theme, platform attach,
// font atlas, then renderer. New owns the backend's window from here on
// and destroys it if any step fails.
func New(b Backend, opts ...Option) (*System, error) {
	cfg := NewConfig(opts...)
	win := b.Window()

	s, err := newSystem(b, cfg)
	if err != nil {
		win.Destroy()
		return nil, err
	}
	return s, nil
}

func newSystem(b Backend, cfg Config) (*System, error) {
	ctx := gui.NewContext(gui.WithClipboard(b.Clipboard()))
	if err := ctx.SetTheme(cfg.Theme); err != nil {
		return nil, fmt.Errorf("app: set theme: %w", err)
	}

	win := b.Window()
	platform := NewPlatform(cfg.Logger)
	if err := platform.Attach(ctx.IO(), win, cfg.HiDPI); err != nil {
		return nil, fmt.Errorf("app: attach platform: %w", err)
	}

	fontSize, err := SetupFonts(ctx, platform.ScaleFactor(), cfg.FontSources)
	if err != nil {
		return nil, err
	}

	renderer, err := b.NewRenderer(ctx.Fonts())
	if err != nil {
		return nil, fmt.Errorf("app: create renderer: %w", err)
	}

	cfg.Logger.Info("runtime initialized",
		"scale", platform.ScaleFactor(),
		"font_px", fontSize,
		"glyphs", ctx.Fonts().GlyphCount())

	return &System{
		events:      b.Events(),
		window:      win,
		display:     b.Display(),
		ctx:         ctx,
		platform:    platform,
		renderer:    renderer,
		fontSize:    fontSize,
		fontScale:   platform.ScaleFactor(),
		fontSources: cfg.FontSources,
		clock:       cfg.Clock,
		logger:      cfg.Logger,
	}, nil
}

// Context returns the UI context.
func (s *System) Context() *gui.Context {
	return s.ctx
}

// Platform returns the platform bridge.
func (s *System) Platform() *Platform {
	return s.platform
}

// FontSize returns the raster pixel size of the font atlas.
func (s *System) FontSize() float32 {
	return s.fontSize
}

// syncFontScale rebuilds and re-uploads the font atlas when the content
// scale changed since it was last rasterized.
func (s *System) syncFontScale() error {
	scale := s.platform.ScaleFactor()
	if scale == s.fontScale {
		return nil
	}
	size, err := RebuildFonts(s.ctx, scale, s.fontSources)
	if err != nil {
		return err
	}
	if err := s.renderer.ReloadAtlas(s.ctx.Fonts()); err != nil {
		return fmt.Errorf("app: upload font atlas: %w", err)
	}
	s.logger.Info("font atlas rebuilt",
		"scale", scale,
		"font_px", size,
		"glyphs", s.ctx.Fonts().GlyphCount())
	s.fontScale = scale
	s.fontSize = size
	return nil
}

// State returns the loop state.
func (s *System) State() LoopState {
	return s.state
}

// DisplayTitle returns the part of title after its last '/', so a binary
// path can be used as a window title.
func DisplayTitle(title string) string {
	if i := strings.LastIndexByte(title, '/'); i >= 0 {
		return title[i+1:]
	}
	return title
}

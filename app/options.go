package app

import (
	"log/slog"
	"os"
	"time"

	"github.com/talanapp/talan"
)

// appLogLevel gates the default logger. SetVerbose(true) lowers it to Debug.
var appLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for the runtime and the
// gui package.
func SetVerbose(v bool) {
	if v {
		appLogLevel.Set(slog.LevelDebug)
	} else {
		appLogLevel.Set(slog.LevelInfo)
	}
	gui.SetVerbose(v)
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: appLogLevel}))
}

// Default window geometry, in window coordinates.
const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
)

// FontSourcesFunc builds the font source list for a raster pixel size.
type FontSourcesFunc func(pixelSize float32) []gui.FontSource

// Config is the resolved option set. Backends read the window fields;
// New reads the rest.
type Config struct {
	Theme        gui.Theme
	FontSources  FontSourcesFunc
	HiDPI        HiDPIMode
	Clock        func() time.Time
	Logger       *slog.Logger
	WindowWidth  int
	WindowHeight int
	VSync        bool
}

// Option configures a System.
type Option func(*Config)

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		Theme:        gui.TalanTheme(),
		FontSources:  DefaultFontSources,
		HiDPI:        HiDPIRounded,
		Clock:        time.Now,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		VSync:        true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = defaultLogger()
	}
	return cfg
}

// WithTheme sets the theme installed before the first frame.
func WithTheme(t gui.Theme) Option {
	return func(c *Config) { c.Theme = t }
}

// WithFontSources replaces the default font list.
func WithFontSources(fn FontSourcesFunc) Option {
	return func(c *Config) {
		if fn != nil {
			c.FontSources = fn
		}
	}
}

// WithHiDPIMode sets the scale factor policy.
func WithHiDPIMode(m HiDPIMode) Option {
	return func(c *Config) { c.HiDPI = m }
}

// WithClock replaces time.Now as the frame clock.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		if now != nil {
			c.Clock = now
		}
	}
}

// WithLogger sets the lifecycle logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithWindowSize sets the initial window size in window coordinates.
// Non-positive values keep the default.
func WithWindowSize(width, height int) Option {
	return func(c *Config) {
		if width > 0 && height > 0 {
			c.WindowWidth, c.WindowHeight = width, height
		}
	}
}

// WithVSync enables or disables waiting for vertical sync on present.
func WithVSync(on bool) Option {
	return func(c *Config) { c.VSync = on }
}

package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/talanapp/talan"
	"github.com/talanapp/talan/app"
)

// Init opens a window titled after the last path component of title,
// creates an OpenGL 4.1 core context and returns a System ready for
// MainLoop. It must be called from the main OS thread.
//
// Window size and vsync come from app.WithWindowSize and app.WithVSync;
// the other options are passed to app.New.
func Init(title string, opts ...app.Option) (sys *app.System, err error) {
	cfg := app.NewConfig(opts...)

	var w *Window
	defer func() {
		if r := recover(); r != nil {
			if w != nil {
				w.Destroy()
			} else {
				glfw.Terminate()
			}
			sys, err = nil, fmt.Errorf("opengl: init: %v", r)
		}
	}()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("opengl: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	win, err := glfw.CreateWindow(cfg.WindowWidth, cfg.WindowHeight, app.DisplayTitle(title), nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("opengl: create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w = newWindow(win)
	if err := gl.Init(); err != nil {
		w.Destroy()
		return nil, fmt.Errorf("opengl: gl init: %w", err)
	}
	cfg.Logger.Debug("opengl context created",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	// app.New destroys the window on failure.
	return app.New(backend{w: w}, opts...)
}

// backend adapts a Window to app.Backend.
type backend struct {
	w *Window
}

func (b backend) Events() app.EventSource { return b.w }
func (b backend) Window() app.Window { return b.w }
func (b backend) Display() app.Display { return b.w }

func (b backend) Clipboard() gui.ClipboardProvider {
	return clipboard{win: b.w.win}
}

func (b backend) NewRenderer(atlas *gui.FontAtlas) (app.Renderer, error) {
	r, err := NewRenderer(atlas)
	if err != nil {
		return nil, err
	}
	return r, nil
}

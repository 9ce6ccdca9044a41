package app_test

import (
	"log/slog"
	"time"

	"github.com/talanapp/talan"
	"github.com/talanapp/talan/app"
)

// callLog records backend calls in order.
type callLog struct {
	calls []string
}

func (l *callLog) add(s string) { l.calls = append(l.calls, s) }

func (l *callLog) has(s string) bool {
	for _, c := range l.calls {
		if c == s {
			return true
		}
	}
	return false
}

func (l *callLog) count(s string) int {
	n := 0
	for _, c := range l.calls {
		if c == s {
			n++
		}
	}
	return n
}

type fakeEvents struct {
	log    *callLog
	frames [][]app.Event
	polled int
}

func (e *fakeEvents) Poll(fn func(app.Event)) {
	e.log.add("poll")
	if e.polled < len(e.frames) {
		for _, ev := range e.frames[e.polled] {
			fn(ev)
		}
	}
	e.polled++
}

type fakeWindow struct {
	gone      bool
	w, h      int
	fbW, fbH  int
	scale     float32
	cursors   []gui.MouseCursor
	visible   []bool
	destroyed int
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{w: 1024, h: 768, fbW: 1024, fbH: 768, scale: 1}
}

func (w *fakeWindow) Exists() bool { return !w.gone }
func (w *fakeWindow) Size() (int, int) { return w.w, w.h }
func (w *fakeWindow) FramebufferSize() (int, int) { return w.fbW, w.fbH }
func (w *fakeWindow) ContentScale() (float32, float32) { return w.scale, w.scale }
func (w *fakeWindow) SetCursor(c gui.MouseCursor) { w.cursors = append(w.cursors, c) }
func (w *fakeWindow) SetCursorVisible(visible bool) { w.visible = append(w.visible, visible) }
func (w *fakeWindow) Destroy() { w.destroyed++ }

type fakeTarget struct {
	log       *callLog
	finishErr error
}

func (t *fakeTarget) Clear(r, g, b, a float32) { t.log.add("clear") }
func (t *fakeTarget) Finish() error {
	t.log.add("finish")
	return t.finishErr
}
func (t *fakeTarget) Discard() { t.log.add("discard") }

type fakeDisplay struct {
	log       *callLog
	drawErr   error
	finishErr error
}

func (d *fakeDisplay) Draw() (app.Target, error) {
	if d.drawErr != nil {
		return nil, d.drawErr
	}
	d.log.add("draw")
	return &fakeTarget{log: d.log, finishErr: d.finishErr}, nil
}

type fakeRenderer struct {
	log       *callLog
	renderErr error
	reloadErr error
	frames    []*gui.DrawData
	reloaded  []*gui.FontAtlas
	closed    int
}

func (r *fakeRenderer) Render(data *gui.DrawData) error {
	r.log.add("render")
	r.frames = append(r.frames, data)
	return r.renderErr
}

func (r *fakeRenderer) ReloadAtlas(atlas *gui.FontAtlas) error {
	r.log.add("reload")
	if r.reloadErr != nil {
		return r.reloadErr
	}
	r.reloaded = append(r.reloaded, atlas)
	atlas.SetTextureID(8)
	return nil
}

func (r *fakeRenderer) Close() { r.closed++ }

type fakeBackend struct {
	log      *callLog
	events   *fakeEvents
	window   *fakeWindow
	display  *fakeDisplay
	renderer *fakeRenderer

	newRendererErr error
	atlasAtUpload  *gui.FontAtlas
	builtAtUpload  bool
}

func newFakeBackend(frames ...[]app.Event) *fakeBackend {
	log := &callLog{}
	return &fakeBackend{
		log:      log,
		events:   &fakeEvents{log: log, frames: frames},
		window:   newFakeWindow(),
		display:  &fakeDisplay{log: log},
		renderer: &fakeRenderer{log: log},
	}
}

func (b *fakeBackend) Events() app.EventSource { return b.events }
func (b *fakeBackend) Window() app.Window { return b.window }
func (b *fakeBackend) Display() app.Display { return b.display }
func (b *fakeBackend) Clipboard() gui.ClipboardProvider { return nil }

func (b *fakeBackend) NewRenderer(atlas *gui.FontAtlas) (app.Renderer, error) {
	if b.newRendererErr != nil {
		return nil, b.newRendererErr
	}
	b.atlasAtUpload = atlas
	b.builtAtUpload = atlas.Built()
	atlas.SetTextureID(7)
	return b.renderer, nil
}

// defaultFontOnly keeps tests fast by skipping TrueType rasterization.
func defaultFontOnly(px float32) []gui.FontSource {
	return []gui.FontSource{{Name: "default", Default: true, Config: gui.FontConfig{SizePixels: px}}}
}

// stepClock advances by step on every call.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func newTestSystem(b *fakeBackend, opts ...app.Option) (*app.System, error) {
	clock := &stepClock{now: time.Unix(1000, 0), step: 16 * time.Millisecond}
	base := []app.Option{
		app.WithFontSources(defaultFontOnly),
		app.WithClock(clock.Now),
		app.WithLogger(discardLogger()),
	}
	return app.New(b, append(base, opts...)...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

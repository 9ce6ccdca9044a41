package app_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/talanapp/talan"
	"github.com/talanapp/talan/app"
)

func TestMainLoopFrameOrder(t *testing.T) {
	b := newFakeBackend()
	sys, err := newTestSystem(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	frames := 0
	err = sys.MainLoop(func(run *bool, ui *gui.UI) {
		b.log.add("callback")
		frames++
		ui.Text("hello")
		if frames == 2 {
			*run = false
		}
	})
	if err != nil {
		t.Fatalf("MainLoop: %v", err)
	}

	want := []string{
		"poll", "callback", "draw", "clear", "render", "finish",
		"poll", "callback", "draw", "clear", "render", "finish",
	}
	if !slices.Equal(b.log.calls, want) {
		t.Errorf("calls = %v, want %v", b.log.calls, want)
	}
	if sys.State() != app.LoopExiting {
		t.Errorf("state = %v, want exiting", sys.State())
	}
	if b.renderer.closed != 1 || b.window.destroyed != 1 {
		t.Errorf("closed=%d destroyed=%d, want 1 and 1", b.renderer.closed, b.window.destroyed)
	}
}

func TestMainLoopCloseRequestedDrainsQueue(t *testing.T) {
	b := newFakeBackend([]app.Event{
		app.CloseRequested{},
		app.CharTyped{Char: 'x'},
	})
	sys, err := newTestSystem(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var chars []rune
	frames := 0
	err = sys.MainLoop(func(run *bool, ui *gui.UI) {
		frames++
		if *run {
			t.Error("run should already be false after CloseRequested")
		}
		chars = append(chars, ui.Input().InputChars...)
	})
	if err != nil {
		t.Fatalf("MainLoop: %v", err)
	}
	if frames != 1 {
		t.Errorf("frames = %d, want 1", frames)
	}
	if string(chars) != "x" {
		t.Errorf("chars after close = %q, want %q", string(chars), "x")
	}
	if !b.log.has("finish") {
		t.Error("closing frame was not presented")
	}
}

func TestMainLoopConsumesSystem(t *testing.T) {
	b := newFakeBackend()
	sys, err := newTestSystem(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	stop := func(run *bool, ui *gui.UI) { *run = false }

	if err := sys.MainLoop(stop); err != nil {
		t.Fatalf("first MainLoop: %v", err)
	}
	if err := sys.MainLoop(stop); !errors.Is(err, app.ErrSystemConsumed) {
		t.Errorf("second MainLoop = %v, want ErrSystemConsumed", err)
	}
	if b.window.destroyed != 1 {
		t.Errorf("window destroyed %d times, want 1", b.window.destroyed)
	}
}

func TestMainLoopCallbackError(t *testing.T) {
	b := newFakeBackend()
	sys, err := newTestSystem(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	errBoom := errors.New("boom")
	err = sys.MainLoopE(func(run *bool, ui *gui.UI) error {
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("MainLoopE = %v, want wrapped boom", err)
	}
	if b.log.has("finish") || b.log.has("render") {
		t.Errorf("failed frame reached the renderer: %v", b.log.calls)
	}
	if sys.Context().InFrame() {
		t.Error("frame left open after callback error")
	}
}

func TestMainLoopRenderErrorDiscardsTarget(t *testing.T) {
	b := newFakeBackend()
	errGPU := errors.New("gpu lost")
	b.renderer.renderErr = errGPU
	sys, err := newTestSystem(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = sys.MainLoop(func(run *bool, ui *gui.UI) {})
	if !errors.Is(err, errGPU) {
		t.Fatalf("MainLoop = %v, want wrapped gpu error", err)
	}
	if !b.log.has("discard") {
		t.Errorf("target not discarded: %v", b.log.calls)
	}
	if b.log.has("finish") {
		t.Errorf("target presented after render error: %v", b.log.calls)
	}
}

func TestMainLoopPresentError(t *testing.T) {
	b := newFakeBackend()
	errSwap := errors.New("swap failed")
	b.display.finishErr = errSwap
	sys, err := newTestSystem(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = sys.MainLoop(func(run *bool, ui *gui.UI) {})
	if !errors.Is(err, errSwap) {
		t.Fatalf("MainLoop = %v, want wrapped swap error", err)
	}
	if b.log.has("discard") {
		t.Error("target discarded after Finish ran")
	}
}

func TestMainLoopWindowGone(t *testing.T) {
	b := newFakeBackend()
	sys, err := newTestSystem(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.window.gone = true

	called := false
	err = sys.MainLoop(func(run *bool, ui *gui.UI) { called = true })
	if !errors.Is(err, app.ErrWindowGone) {
		t.Fatalf("MainLoop = %v, want ErrWindowGone", err)
	}
	if called {
		t.Error("callback ran without a window")
	}
}

func TestMainLoopCallbackPanicClosesFrame(t *testing.T) {
	b := newFakeBackend()
	sys, err := newTestSystem(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	func() {
		defer func() {
			if r := recover(); r != "bad frame" {
				t.Errorf("recover = %v, want bad frame", r)
			}
		}()
		_ = sys.MainLoop(func(run *bool, ui *gui.UI) { panic("bad frame") })
	}()

	if sys.Context().InFrame() {
		t.Error("frame left open after panic")
	}
	if b.window.destroyed != 1 {
		t.Errorf("window destroyed %d times, want 1", b.window.destroyed)
	}
}

func TestMainLoopUIHandleExpires(t *testing.T) {
	b := newFakeBackend()
	sys, err := newTestSystem(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var kept *gui.UI
	err = sys.MainLoop(func(run *bool, ui *gui.UI) {
		kept = ui
		*run = false
	})
	if err != nil {
		t.Fatalf("MainLoop: %v", err)
	}
	if kept.Valid() {
		t.Fatal("handle still valid after the loop")
	}

	defer func() {
		if r := recover(); r != gui.ErrFrameEnded {
			t.Errorf("recover = %v, want ErrFrameEnded", r)
		}
	}()
	kept.Text("late")
}

func TestMainLoopDeltaTime(t *testing.T) {
	b := newFakeBackend()
	sys, err := newTestSystem(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var deltas []float32
	err = sys.MainLoop(func(run *bool, ui *gui.UI) {
		deltas = append(deltas, ui.DeltaTime())
		if len(deltas) == 3 {
			*run = false
		}
	})
	if err != nil {
		t.Fatalf("MainLoop: %v", err)
	}
	for i, d := range deltas {
		if d < 0.0159 || d > 0.0161 {
			t.Errorf("frame %d delta = %v, want 0.016", i, d)
		}
	}
}

func TestMainLoopDrawDataMatchesDisplay(t *testing.T) {
	b := newFakeBackend()
	b.window.fbW, b.window.fbH = 2048, 1536
	b.window.scale = 2
	sys, err := newTestSystem(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = sys.MainLoop(func(run *bool, ui *gui.UI) {
		ui.Button("OK")
		*run = false
	})
	if err != nil {
		t.Fatalf("MainLoop: %v", err)
	}
	if len(b.renderer.frames) != 1 {
		t.Fatalf("rendered %d frames, want 1", len(b.renderer.frames))
	}
	data := b.renderer.frames[0]
	if data.DisplaySize != (gui.Vec2{X: 1024, Y: 768}) {
		t.Errorf("DisplaySize = %v, want 1024x768", data.DisplaySize)
	}
	if data.FramebufferScale != (gui.Vec2{X: 2, Y: 2}) {
		t.Errorf("FramebufferScale = %v, want 2x2", data.FramebufferScale)
	}
	if data.TotalVtxCount() == 0 {
		t.Error("button produced no vertices")
	}
}

func TestMainLoopScaleChangeRebuildsAtlas(t *testing.T) {
	b := newFakeBackend([]app.Event{app.ScaleChanged{X: 2, Y: 2}})
	sys, err := newTestSystem(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first := sys.Context().Fonts()

	var global float32
	err = sys.MainLoop(func(run *bool, ui *gui.UI) {
		global = sys.Context().IO().FontGlobalScale
		*run = false
	})
	if err != nil {
		t.Fatalf("MainLoop: %v", err)
	}

	if got := sys.Platform().ScaleFactor(); got != 2 {
		t.Errorf("ScaleFactor = %v, want 2", got)
	}
	if got := sys.FontSize(); got != 26 {
		t.Errorf("FontSize = %v, want 26", got)
	}
	if global != 0.5 {
		t.Errorf("FontGlobalScale during frame = %v, want 0.5", global)
	}
	atlas := sys.Context().Fonts()
	if atlas == first {
		t.Fatal("atlas was not replaced")
	}
	if got := atlas.SizePixels(); got != 26 {
		t.Errorf("atlas SizePixels = %v, want 26", got)
	}
	if len(b.renderer.reloaded) != 1 || b.renderer.reloaded[0] != atlas {
		t.Errorf("reloaded = %v, want the new atlas once", b.renderer.reloaded)
	}
	if atlas.TextureID() != 8 {
		t.Errorf("TextureID = %d, want 8", atlas.TextureID())
	}
	want := []string{"poll", "reload", "draw", "clear", "render", "finish"}
	if !slices.Equal(b.log.calls, want) {
		t.Errorf("calls = %v, want %v", b.log.calls, want)
	}
}

func TestMainLoopScaleUnchangedKeepsAtlas(t *testing.T) {
	b := newFakeBackend([]app.Event{app.ScaleChanged{X: 1, Y: 1}})
	sys, err := newTestSystem(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first := sys.Context().Fonts()

	if err := sys.MainLoop(func(run *bool, ui *gui.UI) { *run = false }); err != nil {
		t.Fatalf("MainLoop: %v", err)
	}
	if sys.Context().Fonts() != first || len(b.renderer.reloaded) != 0 {
		t.Error("atlas rebuilt without a scale change")
	}
}

func TestMainLoopReloadErrorEndsLoop(t *testing.T) {
	b := newFakeBackend([]app.Event{app.ScaleChanged{X: 2, Y: 2}})
	errUpload := errors.New("texture upload failed")
	b.renderer.reloadErr = errUpload
	sys, err := newTestSystem(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	called := false
	err = sys.MainLoop(func(run *bool, ui *gui.UI) { called = true })
	if !errors.Is(err, errUpload) {
		t.Fatalf("MainLoop = %v, want wrapped upload error", err)
	}
	if called {
		t.Error("callback ran after the atlas upload failed")
	}
	if b.renderer.closed != 1 {
		t.Errorf("renderer closed %d times, want 1", b.renderer.closed)
	}
}

func TestMainLoopRunsUntilCloseRequested(t *testing.T) {
	const n = 50
	events := make([][]app.Event, n)
	events[n-1] = []app.Event{app.CloseRequested{}}
	b := newFakeBackend(events...)
	sys, err := newTestSystem(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	frames := 0
	err = sys.MainLoop(func(run *bool, ui *gui.UI) {
		frames++
		ui.Text("tick")
	})
	if err != nil {
		t.Fatalf("MainLoop: %v", err)
	}
	if frames != n {
		t.Errorf("frames = %d, want %d", frames, n)
	}
	if len(b.renderer.frames) != n {
		t.Errorf("rendered %d frames, want %d", len(b.renderer.frames), n)
	}
	if got := b.log.count("finish"); got != n {
		t.Errorf("presented %d frames, want %d", got, n)
	}
	if sys.State() != app.LoopExiting {
		t.Errorf("state = %v, want exiting", sys.State())
	}
}

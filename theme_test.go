package gui_test

import (
	"errors"
	"testing"

	"github.com/talanapp/talan"
)

func TestApplyTalanStyle(t *testing.T) {
	th := gui.DefaultTheme()
	th.WindowRounding = 9
	th.FrameRounding = 4
	gui.ApplyTalanStyle(&th)

	if th.WindowRounding != 0 || th.ChildRounding != 0 || th.PopupRounding != 0 || th.FrameRounding != 0 {
		t.Errorf("roundings = %v %v %v %v, want all 0",
			th.WindowRounding, th.ChildRounding, th.PopupRounding, th.FrameRounding)
	}
	if th.FrameBorderSize != 1 {
		t.Errorf("FrameBorderSize = %v, want 1", th.FrameBorderSize)
	}
	if th.Colors[gui.StyleColorText] != (gui.Color4{0, 0, 0, 1}) {
		t.Errorf("Text = %v, want opaque black", th.Colors[gui.StyleColorText])
	}
	if th.Colors[gui.StyleColorWindowBg] != (gui.Color4{0.94, 0.94, 0.94, 1}) {
		t.Errorf("WindowBg = %v", th.Colors[gui.StyleColorWindowBg])
	}
	if th.Colors[gui.StyleColorTextDisabled] != (gui.Color4{1, 1, 0.6, 1}) {
		t.Errorf("TextDisabled = %v, want pale yellow", th.Colors[gui.StyleColorTextDisabled])
	}
	if got := th.Color(gui.StyleColorTextDisabled); got != gui.RGBA(255, 255, 153, 255) {
		t.Errorf("TextDisabled packed = %#08x, want %#08x", got, gui.RGBA(255, 255, 153, 255))
	}
	if th.Colors[gui.StyleColorNavHighlight] != th.Colors[gui.StyleColorHeaderHovered] {
		t.Error("NavHighlight should match HeaderHovered")
	}
}

func TestApplyTalanStyleIdempotent(t *testing.T) {
	once := gui.DefaultTheme()
	gui.ApplyTalanStyle(&once)
	twice := once
	gui.ApplyTalanStyle(&twice)
	if once != twice {
		t.Error("applying the style twice changed the theme")
	}
	if once != gui.TalanTheme() {
		t.Error("TalanTheme differs from DefaultTheme + ApplyTalanStyle")
	}
}

func TestTalanStyleChannelsInRange(t *testing.T) {
	th := gui.TalanTheme()
	for c := gui.StyleColor(0); c < gui.StyleColorCount; c++ {
		for i, v := range th.Colors[c] {
			if v < 0 || v > 1 {
				t.Errorf("%v channel %d = %v, out of [0, 1]", c, i, v)
			}
		}
	}
}

func TestThemeLockedAfterFirstFrame(t *testing.T) {
	ctx := gui.NewContext()
	if err := ctx.SetTheme(gui.TalanTheme()); err != nil {
		t.Fatalf("SetTheme before first frame: %v", err)
	}

	frame(ctx, nil, func(ui *gui.UI) {
		if ui.Theme() != gui.TalanTheme() {
			t.Error("frame does not see the installed theme")
		}
	})

	if err := ctx.SetTheme(gui.DefaultTheme()); !errors.Is(err, gui.ErrThemeLocked) {
		t.Errorf("SetTheme after first frame = %v, want ErrThemeLocked", err)
	}
	if ctx.Theme() != gui.TalanTheme() {
		t.Error("theme changed despite the lock")
	}
}

func TestStyleColorString(t *testing.T) {
	if got := gui.StyleColorFrameBgHovered.String(); got != "FrameBgHovered" {
		t.Errorf("String = %q", got)
	}
	if got := gui.StyleColor(-1).String(); got != "StyleColor(?)" {
		t.Errorf("invalid String = %q", got)
	}
}

func TestThemeColorPacking(t *testing.T) {
	th := gui.TalanTheme()
	if got := th.Color(gui.StyleColorText); got != gui.ColorBlack {
		t.Errorf("Text packed = %#08x, want %#08x", got, gui.ColorBlack)
	}
	if got := th.Color(gui.StyleColorCount); got != gui.ColorTransparent {
		t.Errorf("out of range role = %#08x, want transparent", got)
	}
}

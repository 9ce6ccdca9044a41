package gui

// UI is the per-frame handle widgets are drawn through. It is returned by
// Context.NewFrame and stops working when the frame is rendered: every
// method panics with ErrFrameEnded after that. Do not keep it across frames.
//
// UI exposes no way to change the theme; theme changes go through
// Context.SetTheme before the first frame.
type UI struct {
	ctx *Context
	gen uint64
}

// c returns the context, panicking if the handle's frame is over.
func (ui *UI) c() *Context {
	if ui == nil || ui.ctx == nil || !ui.ctx.inFrame || ui.ctx.gen != ui.gen {
		panic(ErrFrameEnded)
	}
	return ui.ctx
}

// Valid reports whether the handle's frame is still open.
func (ui *UI) Valid() bool {
	return ui != nil && ui.ctx != nil && ui.ctx.inFrame && ui.ctx.gen == ui.gen
}

// DisplaySize returns the viewport size in logical units.
func (ui *UI) DisplaySize() Vec2 {
	return ui.c().io.DisplaySize
}

// DeltaTime returns the seconds since the previous frame.
func (ui *UI) DeltaTime() float32 {
	return ui.c().io.DeltaTime
}

// FrameCount returns the number of the current frame, starting at 1.
func (ui *UI) FrameCount() uint64 {
	return ui.c().frameCount
}

// Input returns this frame's input. Treat it as read-only.
func (ui *UI) Input() *InputState {
	return ui.c().io.Input
}

// Theme returns a copy of the active theme.
func (ui *UI) Theme() Theme {
	return ui.c().theme
}

// LineHeight returns the height of one line of text.
func (ui *UI) LineHeight() float32 {
	return ui.c().lineHeight()
}

// MeasureText returns the size text would take when drawn.
func (ui *UI) MeasureText(text string) Vec2 {
	return ui.c().measureText(text)
}

// DrawList returns the background draw list for custom drawing.
func (ui *UI) DrawList() *DrawList {
	return ui.c().drawList
}

// ForegroundDrawList returns the overlay draw list, drawn after everything else.
func (ui *UI) ForegroundDrawList() *DrawList {
	return ui.c().foregroundDrawList
}

// SetMouseCursor requests a cursor shape for this frame.
// MouseCursorNone hides the cursor.
func (ui *UI) SetMouseCursor(c MouseCursor) {
	ui.c().io.MouseCursor = c
}

// SetMouseDrawCursor asks for a software-drawn cursor in place of the OS one.
func (ui *UI) SetMouseDrawCursor(v bool) {
	ui.c().io.MouseDrawCursor = v
}

// IsItemHovered reports whether the previous item is under the mouse.
func (ui *UI) IsItemHovered() bool {
	ctx := ui.c()
	return ctx.isHovered(ctx.layout.lastItem)
}

// WantCaptureMouse reports whether the UI has claimed the mouse so far this frame.
func (ui *UI) WantCaptureMouse() bool {
	return ui.c().io.WantCaptureMouse
}

// WantCaptureKeyboard reports whether a widget has claimed the keyboard so far this frame.
func (ui *UI) WantCaptureKeyboard() bool {
	return ui.c().io.WantCaptureKeyboard
}

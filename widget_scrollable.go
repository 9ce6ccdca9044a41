package gui

// ScrollbarVisibility controls when a scrollable region shows its scrollbar.
type ScrollbarVisibility int

const (
	ScrollbarAuto   ScrollbarVisibility = iota // Show only when content exceeds the viewport
	ScrollbarAlways                            // Always reserve and draw the scrollbar
	ScrollbarNever                             // Wheel and keys only
)

// ScrollbarSide controls which side the scrollbar appears on.
type ScrollbarSide int

const (
	ScrollbarRight ScrollbarSide = iota
	ScrollbarLeft
)

// Scroll tuning, in logical units.
const (
	scrollWheelStep    = 30
	scrollMinThumb     = 20
	scrollPageFraction = 0.8
)

// Scrollable runs body in a clipped region of the given height that
// scrolls vertically. Widgets in body use the normal flow layout. The
// region is one item in the outer layout, as wide as the line unless
// WithWidth is given.
//
// Content height is measured while body runs, so the scrollbar and scroll
// limits follow the content of the previous frame.
//
// Usage:
//
//	ui.Scrollable("tasks", 200)(func() {
//	    for _, t := range tasks {
//	        ui.Text(t)
//	    }
//	})
func (ui *UI) Scrollable(id string, height float32, opts ...Option) func(body func()) {
	return func(body func()) {
		ctx := ui.c()
		t := &ctx.theme
		o := applyOptions(opts)
		in := ctx.io.Input

		sid := ctx.GetID(id)
		state := GetState(ctx, sid, ScrollableState{})
		state.ViewHeight = height
		state.ScrollY = maxf(0, state.ScrollY)

		pos := ctx.itemPos()
		w := GetOpt(o, OptWidth)
		if w <= 0 {
			w = ctx.availableWidth()
		}
		view := Rect{X: pos.X, Y: pos.Y, W: w, H: height}

		vis := GetOpt(o, OptScrollbarVisibility)
		barW := float32(0)
		if vis == ScrollbarAlways || (vis == ScrollbarAuto && state.ContentHeight > height) {
			barW = t.ScrollbarSize
		}
		content := Rect{X: view.X, Y: view.Y, W: w - barW, H: height}
		bar := Rect{X: view.X + w - barW, Y: view.Y, W: barW, H: height}
		if GetOpt(o, OptScrollbarSide) == ScrollbarLeft {
			content.X = view.X + barW
			bar.X = view.X
		}

		if bg := t.Color(StyleColorChildBg); bg>>24 != 0 {
			ctx.drawList.AddRect(view.X, view.Y, view.W, view.H, bg)
		}

		saved := ctx.layout
		savedClip, savedClipped := ctx.hitClip, ctx.hitClipped
		ctx.hitClip = content
		if savedClipped {
			ctx.hitClip = savedClip.intersect(content)
		}
		ctx.hitClipped = true
		ctx.idStack = append(ctx.idStack, sid)

		origin := Vec2{X: content.X, Y: content.Y - state.ScrollY}
		ctx.layout.reset(origin, content.X+content.W)
		ctx.drawList.PushClipRect(content.X, content.Y, content.X+content.W, content.Y+content.H)

		body()

		// The body may have ended the frame; c panics in that case.
		ctx = ui.c()
		ctx.drawList.PopClipRect()
		state.ContentHeight = maxf(0, ctx.layout.cursor.Y-t.ItemSpacing.Y-origin.Y)
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
		ctx.hitClip, ctx.hitClipped = savedClip, savedClipped
		ctx.layout = saved

		maxScroll := maxf(0, state.ContentHeight-height)
		if ctx.isHovered(view) {
			if in.MouseWheelY != 0 {
				state.ScrollY -= in.MouseWheelY * scrollWheelStep
			}
			// Keys belong to a text field being edited in the region.
			if !ctx.io.WantTextInput {
				page := height * scrollPageFraction
				switch {
				case in.KeyPressed(KeyPageDown):
					state.ScrollY += page
				case in.KeyPressed(KeyPageUp):
					state.ScrollY -= page
				case in.KeyPressed(KeyHome):
					state.ScrollY = 0
				case in.KeyPressed(KeyEnd):
					state.ScrollY = maxScroll
				}
			}
		}
		state.ScrollY = clampf(state.ScrollY, 0, maxScroll)

		if barW > 0 {
			ctx.scrollbar(sid, bar, maxScroll, &state)
		}

		SetState(ctx, sid, state)
		ctx.advanceCursor(pos, Vec2{X: w, Y: height})
	}
}

// scrollbar draws the track and thumb of a vertical scrollbar and handles
// thumb dragging and paging clicks on the track.
func (ctx *Context) scrollbar(id ID, bar Rect, maxScroll float32, state *ScrollableState) {
	t := &ctx.theme
	in := ctx.io.Input
	dl := ctx.drawList

	dl.AddRect(bar.X, bar.Y, bar.W, bar.H, t.Color(StyleColorScrollbarBg))
	if maxScroll <= 0 {
		state.Dragging = false
		return
	}

	thumbH := clampf(bar.H*bar.H/state.ContentHeight, minf(scrollMinThumb, bar.H), bar.H)
	track := bar.H - thumbH
	thumb := Rect{X: bar.X, Y: bar.Y + state.ScrollY/maxScroll*track, W: bar.W, H: thumbH}
	thumbHovered := ctx.isHovered(thumb)

	switch {
	case state.Dragging:
		if in.MouseDown(MouseButtonLeft) {
			if track > 0 {
				state.ScrollY = clampf(state.DragStartScroll+(in.MouseY-state.DragStartY)*maxScroll/track, 0, maxScroll)
			}
		} else {
			state.Dragging = false
		}
	case ctx.isClicked(id, thumb):
		state.Dragging = true
		state.DragStartY = in.MouseY
		state.DragStartScroll = state.ScrollY
	case ctx.isClicked(id, bar):
		if in.MouseY < thumb.Y {
			state.ScrollY = clampf(state.ScrollY-bar.H, 0, maxScroll)
		} else {
			state.ScrollY = clampf(state.ScrollY+bar.H, 0, maxScroll)
		}
	}
	thumb.Y = bar.Y + state.ScrollY/maxScroll*track

	color := t.Color(StyleColorScrollbarGrab)
	switch {
	case state.Dragging:
		color = t.Color(StyleColorScrollbarGrabActive)
	case thumbHovered:
		color = t.Color(StyleColorScrollbarGrabHovered)
	}
	dl.AddRect(thumb.X, thumb.Y, thumb.W, thumb.H, color)
}

// EnsureScrollVisible scrolls the region named id so content offset y is
// in view with padding above and below. The region must have been drawn
// in an earlier frame under the same ID scope; the new offset applies on
// its next frame.
//
//	if added {
//	    ui.EnsureScrollVisible("tasks", float32(len(tasks))*rowH, rowH)
//	}
func (ui *UI) EnsureScrollVisible(id string, y, padding float32) {
	ctx := ui.c()
	sid := ctx.GetID(id)
	state := GetState(ctx, sid, ScrollableState{})
	if state.ViewHeight <= 0 {
		return
	}
	switch {
	case y-padding < state.ScrollY:
		state.ScrollY = maxf(0, y-padding)
	case y+padding > state.ScrollY+state.ViewHeight:
		state.ScrollY = y + padding - state.ViewHeight
	}
	SetState(ctx, sid, state)
}

// ScrollY returns the scroll offset of the region named id, or zero if it
// has not been drawn.
func (ui *UI) ScrollY(id string) float32 {
	ctx := ui.c()
	return GetState(ctx, ctx.GetID(id), ScrollableState{}).ScrollY
}

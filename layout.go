package gui

// layoutState is the flow cursor: items stack vertically, and SameLine
// places the next item to the right of the previous one.
type layoutState struct {
	cursor    Vec2
	lineStart float32 // X where a new line begins, indent included
	maxX      float32 // right edge of the content region
	indent    float32

	lineY    float32 // top of the current line
	lineMaxH float32 // tallest item on the current line

	sameLine        bool
	sameLineSpacing float32

	lastItem Rect
}

func (l *layoutState) reset(origin Vec2, maxX float32) {
	*l = layoutState{
		cursor:    origin,
		lineStart: origin.X,
		maxX:      maxX,
		lineY:     origin.Y,
	}
}

// itemPos returns where the next item goes.
func (ctx *Context) itemPos() Vec2 {
	l := &ctx.layout
	if l.sameLine {
		return Vec2{X: l.lastItem.X + l.lastItem.W + l.sameLineSpacing, Y: l.lineY}
	}
	return l.cursor
}

// advanceCursor records an item of the given size at pos and moves the
// cursor to the start of the next line.
func (ctx *Context) advanceCursor(pos, size Vec2) {
	l := &ctx.layout
	if l.sameLine {
		l.lineMaxH = maxf(l.lineMaxH, size.Y)
	} else {
		l.lineY = pos.Y
		l.lineMaxH = size.Y
	}
	l.sameLine = false
	l.lastItem = Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	l.cursor = Vec2{
		X: l.lineStart,
		Y: l.lineY + l.lineMaxH + ctx.theme.ItemSpacing.Y,
	}
}

// availableWidth returns the width left on the current line.
func (ctx *Context) availableWidth() float32 {
	return maxf(0, ctx.layout.maxX-ctx.itemPos().X)
}

// windowFrame saves the outer layout while a window body runs.
type windowFrame struct {
	id    ID
	rect  Rect
	saved layoutState
}

// SameLine places the next item on the current line.
// Negative spacing means the theme's horizontal item spacing.
func (ui *UI) SameLine(spacing float32) {
	ctx := ui.c()
	if spacing < 0 {
		spacing = ctx.theme.ItemSpacing.X
	}
	ctx.layout.sameLine = true
	ctx.layout.sameLineSpacing = spacing
}

// NewLine ends the current line, leaving an empty line behind.
func (ui *UI) NewLine() {
	ctx := ui.c()
	pos := ctx.itemPos()
	ctx.advanceCursor(pos, Vec2{Y: ctx.lineHeight()})
}

// Spacing adds vertical space of one item spacing.
func (ui *UI) Spacing() {
	ctx := ui.c()
	ctx.layout.sameLine = false
	ctx.layout.cursor.Y += ctx.theme.ItemSpacing.Y
}

// Indent moves the line start right. Zero means the theme's indent spacing.
func (ui *UI) Indent(w float32) {
	ctx := ui.c()
	if w == 0 {
		w = ctx.theme.IndentSpacing
	}
	ctx.layout.indent += w
	ctx.layout.lineStart += w
	ctx.layout.cursor.X = ctx.layout.lineStart
}

// Unindent reverses Indent.
func (ui *UI) Unindent(w float32) {
	ctx := ui.c()
	if w == 0 {
		w = ctx.theme.IndentSpacing
	}
	ctx.layout.indent -= w
	ctx.layout.lineStart -= w
	ctx.layout.cursor.X = ctx.layout.lineStart
}

// CursorPos returns where the next item will be placed.
func (ui *UI) CursorPos() Vec2 {
	return ui.c().itemPos()
}

// SetCursorPos moves the cursor. The next item starts a new line there.
func (ui *UI) SetCursorPos(p Vec2) {
	ctx := ui.c()
	ctx.layout.sameLine = false
	ctx.layout.cursor = p
}

// LastItemRect returns the bounds of the previous item.
func (ui *UI) LastItemRect() Rect {
	return ui.c().layout.lastItem
}

// ContentRegionAvail returns the width left on the current line.
func (ui *UI) ContentRegionAvail() float32 {
	return ui.c().availableWidth()
}

// Window draws a titled, bordered region at an absolute position and runs
// body inside it. The outer flow cursor is left where it was.
//
//	ui.Window("Tasks", gui.Rect{X: 10, Y: 10, W: 300, H: 200})(func() {
//	    ui.Text("inside")
//	})
func (ui *UI) Window(title string, rect Rect) func(body func()) {
	return func(body func()) {
		ctx := ui.c()
		t := &ctx.theme
		id := ctx.GetID(title)

		dl := ctx.drawList
		dl.AddRect(rect.X, rect.Y, rect.W, rect.H, t.Color(StyleColorWindowBg))
		if t.WindowBorderSize > 0 {
			dl.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, t.Color(StyleColorBorder), t.WindowBorderSize)
		}

		titleH := ctx.lineHeight() + t.FramePadding.Y*2
		dl.AddRect(rect.X, rect.Y, rect.W, titleH, t.Color(StyleColorTitleBgActive))
		ctx.addText(rect.X+t.FramePadding.X, rect.Y+t.FramePadding.Y, displayLabel(title), t.Color(StyleColorText))

		// Claim the mouse over the whole window, not just its widgets.
		ctx.isHovered(rect)

		ctx.windowStack = append(ctx.windowStack, windowFrame{id: id, rect: rect, saved: ctx.layout})
		ctx.idStack = append(ctx.idStack, id)

		origin := Vec2{X: rect.X + t.WindowPadding.X, Y: rect.Y + titleH + t.WindowPadding.Y}
		ctx.layout.reset(origin, rect.X+rect.W-t.WindowPadding.X)
		dl.PushClipRect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H)

		body()

		// The body may have ended the frame; c panics in that case.
		ctx = ui.c()
		ctx.drawList.PopClipRect()
		n := len(ctx.windowStack)
		frame := ctx.windowStack[n-1]
		ctx.windowStack = ctx.windowStack[:n-1]
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
		ctx.layout = frame.saved
		ctx.layout.lastItem = rect
	}
}

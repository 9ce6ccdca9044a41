package gui

// Text draws text at the current cursor position.
func (ui *UI) Text(text string) {
	ctx := ui.c()
	ctx.textItem(text, ctx.theme.Color(StyleColorText))
}

// TextColored draws text with a specific color.
func (ui *UI) TextColored(color Color4, text string) {
	ui.c().textItem(text, color.Packed())
}

// TextDisabled draws text with the disabled color.
func (ui *UI) TextDisabled(text string) {
	ctx := ui.c()
	ctx.textItem(text, ctx.theme.Color(StyleColorTextDisabled))
}

func (ctx *Context) textItem(text string, color uint32) {
	pos := ctx.itemPos()
	ctx.addText(pos.X, pos.Y, text, color)
	size := ctx.measureText(text)
	size.Y = maxf(size.Y, ctx.lineHeight())
	ctx.advanceCursor(pos, size)
}

// LabelText draws a label followed by a value on one line.
func (ui *UI) LabelText(label, value string) {
	ui.Text(displayLabel(label))
	ui.SameLine(-1)
	ui.Text(value)
}

// Separator draws a horizontal rule across the content region.
func (ui *UI) Separator() {
	ctx := ui.c()
	ctx.layout.sameLine = false
	pos := ctx.itemPos()
	w := maxf(ctx.layout.maxX-pos.X, 0)
	ctx.drawList.AddRect(pos.X, pos.Y, w, 1, ctx.theme.Color(StyleColorSeparator))
	ctx.advanceCursor(pos, Vec2{X: w, Y: 1})
}

// frameHeight is the height of a framed widget: one text line plus padding.
func (ctx *Context) frameHeight() float32 {
	return ctx.lineHeight() + ctx.theme.FramePadding.Y*2
}

// renderFrame draws a widget frame, with a border when the theme asks for one.
func (ctx *Context) renderFrame(dl *DrawList, r Rect, bg uint32) {
	dl.AddRect(r.X, r.Y, r.W, r.H, bg)
	if b := ctx.theme.FrameBorderSize; b > 0 {
		dl.AddRectOutline(r.X, r.Y, r.W, r.H, ctx.theme.Color(StyleColorBorder), b)
	}
}

// disabledColor fades a role color for disabled widgets.
func (ctx *Context) disabledColor(c StyleColor) uint32 {
	col := ctx.theme.Colors[c]
	col[3] *= 0.5
	return col.Packed()
}

// Button draws a button and returns true if clicked.
func (ui *UI) Button(label string, opts ...Option) bool {
	ctx := ui.c()
	return ctx.button(label, ctx.theme.FramePadding, applyOptions(opts))
}

// SmallButton draws a button without vertical padding, for use inside text lines.
func (ui *UI) SmallButton(label string, opts ...Option) bool {
	ctx := ui.c()
	return ctx.button(label, Vec2{X: ctx.theme.FramePadding.X}, applyOptions(opts))
}

func (ctx *Context) button(label string, padding Vec2, o options) bool {
	t := &ctx.theme
	pos := ctx.itemPos()
	id := ctx.widgetID(label, o)
	text := displayLabel(label)

	textSize := ctx.measureText(text)
	size := Vec2{X: textSize.X + padding.X*2, Y: textSize.Y + padding.Y*2}
	if w := GetOpt(o, OptWidth); w > 0 {
		size.X = w
	}
	if h := GetOpt(o, OptHeight); h > 0 {
		size.Y = h
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	disabled := GetOpt(o, OptDisabled)
	clicked := !disabled && ctx.isClicked(id, rect)
	hovered := !disabled && ctx.isHovered(rect)
	pressed := !disabled && ctx.isPressed(id, rect)

	bg := t.Color(StyleColorButton)
	switch {
	case disabled:
		bg = ctx.disabledColor(StyleColorButton)
	case pressed:
		bg = t.Color(StyleColorButtonActive)
	case hovered:
		bg = t.Color(StyleColorButtonHovered)
	}
	ctx.renderFrame(ctx.drawList, rect, bg)

	textColor := t.Color(StyleColorText)
	if disabled {
		textColor = t.Color(StyleColorTextDisabled)
	}
	ctx.addText(pos.X+(size.X-textSize.X)/2, pos.Y+(size.Y-textSize.Y)/2, text, textColor)

	ctx.advanceCursor(pos, size)
	return clicked
}

// Selectable draws a full-width row that highlights when selected or hovered.
// Returns true if clicked.
func (ui *UI) Selectable(label string, selected bool, opts ...Option) bool {
	ctx := ui.c()
	t := &ctx.theme
	o := applyOptions(opts)
	pos := ctx.itemPos()
	id := ctx.widgetID(label, o)
	text := displayLabel(label)

	w := ctx.availableWidth()
	if ow := GetOpt(o, OptWidth); ow > 0 {
		w = ow
	}
	h := ctx.lineHeight()
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	disabled := GetOpt(o, OptDisabled)
	clicked := !disabled && ctx.isClicked(id, rect)
	hovered := !disabled && ctx.isHovered(rect)
	pressed := !disabled && ctx.isPressed(id, rect)

	switch {
	case pressed:
		ctx.drawList.AddRect(rect.X, rect.Y, rect.W, rect.H, t.Color(StyleColorHeaderActive))
	case hovered:
		ctx.drawList.AddRect(rect.X, rect.Y, rect.W, rect.H, t.Color(StyleColorHeaderHovered))
	case selected:
		ctx.drawList.AddRect(rect.X, rect.Y, rect.W, rect.H, t.Color(StyleColorHeader))
	}

	textColor := t.Color(StyleColorText)
	if disabled {
		textColor = t.Color(StyleColorTextDisabled)
	}
	ctx.addText(pos.X, pos.Y, text, textColor)

	ctx.advanceCursor(pos, Vec2{X: w, Y: h})
	return clicked
}

// Checkbox draws a checkbox with label.
// Returns true if the value changed.
func (ui *UI) Checkbox(label string, value *bool, opts ...Option) bool {
	ctx := ui.c()
	t := &ctx.theme
	o := applyOptions(opts)
	pos := ctx.itemPos()
	id := ctx.widgetID(label, o)
	text := displayLabel(label)

	box := ctx.frameHeight()
	totalWidth := box
	if text != "" {
		totalWidth += t.ItemSpacing.X + ctx.measureText(text).X
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: totalWidth, H: box}

	disabled := GetOpt(o, OptDisabled)
	changed := false
	if !disabled && ctx.isClicked(id, rect) {
		*value = !*value
		changed = true
	}
	hovered := !disabled && ctx.isHovered(rect)
	pressed := !disabled && ctx.isPressed(id, rect)

	bg := t.Color(StyleColorFrameBg)
	switch {
	case disabled:
		bg = ctx.disabledColor(StyleColorFrameBg)
	case pressed:
		bg = t.Color(StyleColorFrameBgActive)
	case hovered:
		bg = t.Color(StyleColorFrameBgHovered)
	}
	ctx.renderFrame(ctx.drawList, Rect{X: pos.X, Y: pos.Y, W: box, H: box}, bg)

	if *value {
		pad := box * 0.25
		mark := t.Color(StyleColorCheckMark)
		x1, y1 := pos.X+pad, pos.Y+box*0.5
		x2, y2 := pos.X+box*0.45, pos.Y+box-pad
		x3, y3 := pos.X+box-pad, pos.Y+pad
		thickness := maxf(1, box/8)
		ctx.drawList.AddLine(x1, y1, x2, y2, mark, thickness)
		ctx.drawList.AddLine(x2, y2, x3, y3, mark, thickness)
	}

	if text != "" {
		textColor := t.Color(StyleColorText)
		if disabled {
			textColor = t.Color(StyleColorTextDisabled)
		}
		ctx.addText(pos.X+box+t.ItemSpacing.X, pos.Y+t.FramePadding.Y, text, textColor)
	}

	ctx.advanceCursor(pos, Vec2{X: totalWidth, Y: box})
	return changed
}

// ProgressBar draws a bar filled to fraction, clamped to [0, 1].
func (ui *UI) ProgressBar(fraction float32, opts ...Option) {
	ctx := ui.c()
	t := &ctx.theme
	o := applyOptions(opts)
	pos := ctx.itemPos()

	w := ctx.availableWidth()
	if ow := GetOpt(o, OptWidth); ow > 0 {
		w = ow
	}
	h := ctx.frameHeight()
	fraction = clampf(fraction, 0, 1)

	ctx.renderFrame(ctx.drawList, Rect{X: pos.X, Y: pos.Y, W: w, H: h}, t.Color(StyleColorFrameBg))
	if fill := w * fraction; fill > 0 {
		ctx.drawList.AddRect(pos.X, pos.Y, fill, h, t.Color(StyleColorPlotHistogram))
	}
	ctx.advanceCursor(pos, Vec2{X: w, Y: h})
}

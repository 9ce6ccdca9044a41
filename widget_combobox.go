package gui

// defaultMaxDropdownHeight bounds the open list when no option is given.
const defaultMaxDropdownHeight = 200

// ComboBox draws a dropdown selection widget with its label on the right.
// Clicking the header opens the list; clicking an item selects it and
// closes the list. Returns true only if *selectedIndex changed.
//
// Usage:
//
//	items := []string{"Low", "Medium", "High"}
//	if ui.ComboBox("Quality", &selectedIndex, items) {
//	    applyQuality(selectedIndex)
//	}
func (ui *UI) ComboBox(label string, selectedIndex *int, items []string, opts ...Option) bool {
	ctx := ui.c()
	t := &ctx.theme
	o := applyOptions(opts)
	pos := ctx.itemPos()
	id := ctx.widgetID(label, o)
	text := displayLabel(label)

	state := GetState(ctx, id, ComboBoxState{HoveredIndex: -1, KeyboardIndex: -1})
	ctx.hitOwner = id
	defer func() { ctx.hitOwner = 0 }()

	// Another combo took the popup.
	if state.Open && ctx.openPopupID != id {
		state.Open = false
	}

	h := ctx.frameHeight()
	arrowSize := ctx.lineHeight() * 0.5
	comboWidth := GetOpt(o, OptWidth)
	if comboWidth <= 0 {
		comboWidth = 120
		for _, item := range items {
			comboWidth = maxf(comboWidth, ctx.measureText(item).X+t.FramePadding.X*3+arrowSize)
		}
	}

	header := Rect{X: pos.X, Y: pos.Y, W: comboWidth, H: h}
	disabled := GetOpt(o, OptDisabled)
	changed := false

	selected := func(i int) {
		if i != *selectedIndex {
			*selectedIndex = i
			changed = true
		}
		state.Open = false
	}
	open := func() {
		state.Open = true
		state.HoveredIndex = -1
		state.KeyboardIndex = *selectedIndex
		ctx.openPopupID = id
	}

	justOpened := false
	if !disabled && ctx.isClicked(id, header) {
		if state.Open {
			state.Open = false
		} else {
			open()
			justOpened = true
		}
	}

	bg := t.Color(StyleColorFrameBg)
	switch {
	case disabled:
		bg = ctx.disabledColor(StyleColorFrameBg)
	case state.Open:
		bg = t.Color(StyleColorFrameBgActive)
	case ctx.isHovered(header):
		bg = t.Color(StyleColorFrameBgHovered)
	}
	ctx.renderFrame(ctx.drawList, header, bg)

	textY := header.Y + t.FramePadding.Y
	if *selectedIndex >= 0 && *selectedIndex < len(items) {
		ctx.drawList.PushClipRect(header.X, header.Y, header.X+comboWidth-arrowSize-t.FramePadding.X, header.Y+h)
		ctx.addText(header.X+t.FramePadding.X, textY, items[*selectedIndex], t.Color(StyleColorText))
		ctx.drawList.PopClipRect()
	}

	// Arrow button area.
	arrowX := header.X + comboWidth - t.FramePadding.X - arrowSize
	arrowY := header.Y + h/2
	arrowColor := t.Color(StyleColorText)
	if state.Open {
		ctx.drawList.AddTriangle(
			arrowX+arrowSize/2, arrowY-arrowSize/3,
			arrowX, arrowY+arrowSize/3,
			arrowX+arrowSize, arrowY+arrowSize/3,
			arrowColor)
	} else {
		ctx.drawList.AddTriangle(
			arrowX, arrowY-arrowSize/3,
			arrowX+arrowSize, arrowY-arrowSize/3,
			arrowX+arrowSize/2, arrowY+arrowSize/3,
			arrowColor)
	}

	if text != "" {
		ctx.addText(header.X+comboWidth+t.ItemSpacing.X, textY, text, t.Color(StyleColorText))
	}

	if state.Open {
		maxH := GetOpt(o, OptMaxDropdownHeight)
		if maxH <= 0 {
			maxH = defaultMaxDropdownHeight
		}
		ctx.comboDropdown(header, maxH, items, *selectedIndex, &state, justOpened, selected)
	}

	if !state.Open && ctx.openPopupID == id {
		ctx.openPopupID = 0
	}
	SetState(ctx, id, state)

	totalW := comboWidth
	if text != "" {
		totalW += t.ItemSpacing.X + ctx.measureText(text).X
	}
	if state.Open {
		ctx.io.WantCaptureKeyboard = true
	}
	ctx.advanceCursor(pos, Vec2{X: totalW, Y: h})
	return changed
}

// comboDropdown draws the open list on the foreground layer and handles
// item clicks, scrolling and keyboard navigation.
func (ctx *Context) comboDropdown(header Rect, maxH float32, items []string, current int, state *ComboBoxState, justOpened bool, selected func(int)) {
	t := &ctx.theme
	in := ctx.io.Input
	fg := ctx.foregroundDrawList

	itemHeight := ctx.lineHeight() + t.ItemSpacing.Y

	contentH := float32(len(items)) * itemHeight
	listH := minf(contentH, maxH)
	list := Rect{X: header.X, Y: header.Y + header.H, W: header.W, H: listH}
	ctx.popupRect = list

	// The list is drawn on top of everything, outside any scrolled region.
	clip, clipped := ctx.hitClip, ctx.hitClipped
	ctx.hitClipped = false
	defer func() { ctx.hitClip, ctx.hitClipped = clip, clipped }()

	maxScroll := maxf(0, contentH-listH)
	if ctx.isHovered(list) && in.MouseWheelY != 0 {
		state.ScrollY -= in.MouseWheelY * itemHeight * 3
	}
	state.ScrollY = clampf(state.ScrollY, 0, maxScroll)

	fg.AddRect(list.X, list.Y, list.W, list.H, t.Color(StyleColorPopupBg))
	fg.AddRectOutline(list.X, list.Y, list.W, list.H, t.Color(StyleColorBorder), 1)
	fg.PushClipRect(list.X, list.Y, list.X+list.W, list.Y+list.H)

	clicked := in.MouseClicked(MouseButtonLeft)
	state.HoveredIndex = -1
	for i, item := range items {
		y := list.Y + float32(i)*itemHeight - state.ScrollY
		if y+itemHeight <= list.Y || y >= list.Y+list.H {
			continue
		}
		row := Rect{X: list.X, Y: y, W: list.W, H: itemHeight}
		hovered := ctx.isHovered(row) && ctx.isHovered(list)
		if hovered {
			state.HoveredIndex = i
		}

		switch {
		case hovered:
			fg.AddRect(row.X, row.Y, row.W, row.H, t.Color(StyleColorHeaderHovered))
		case i == state.KeyboardIndex:
			fg.AddRect(row.X, row.Y, row.W, row.H, t.Color(StyleColorNavHighlight))
		case i == current:
			fg.AddRect(row.X, row.Y, row.W, row.H, t.Color(StyleColorHeader))
		}
		ctx.addTextTo(fg, row.X+t.FramePadding.X, y+t.ItemSpacing.Y/2, item, t.Color(StyleColorText))

		if hovered && clicked && !justOpened {
			selected(i)
		}
	}
	fg.PopClipRect()

	if !state.Open {
		return
	}

	if clicked && !justOpened && !ctx.isHovered(header) && !ctx.isHovered(list) {
		state.Open = false
		return
	}
	if in.KeyPressed(KeyEscape) {
		state.Open = false
		return
	}

	if in.KeyRepeated(KeyUp) && state.KeyboardIndex > 0 {
		state.KeyboardIndex--
	}
	if in.KeyRepeated(KeyDown) && state.KeyboardIndex < len(items)-1 {
		state.KeyboardIndex++
	}
	if !justOpened && in.KeyPressed(KeyEnter) && state.KeyboardIndex >= 0 && state.KeyboardIndex < len(items) {
		selected(state.KeyboardIndex)
	}
}

// Combo is ComboBox over any string-like item type, such as a named
// enumeration. The item strings are shared with the caller, not copied.
func Combo[S ~string](ui *UI, label string, selectedIndex *int, items []S, opts ...Option) bool {
	views := make([]string, len(items))
	for i, it := range items {
		views[i] = string(it)
	}
	return ui.ComboBox(label, selectedIndex, views, opts...)
}

// ComboFunc is ComboBox over arbitrary items, labelled by name.
func ComboFunc[T any](ui *UI, label string, selectedIndex *int, items []T, name func(T) string, opts ...Option) bool {
	views := make([]string, len(items))
	for i, it := range items {
		views[i] = name(it)
	}
	return ui.ComboBox(label, selectedIndex, views, opts...)
}

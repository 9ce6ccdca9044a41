package gui

// RadioButton draws a round toggle with its label on the right.
// Returns true if clicked; the caller owns the selection.
func (ui *UI) RadioButton(label string, active bool, opts ...Option) bool {
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
	clicked := !disabled && ctx.isClicked(id, rect)
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

	cx, cy, r := pos.X+box/2, pos.Y+box/2, box/2
	if b := t.FrameBorderSize; b > 0 {
		ctx.drawList.AddCircleFilled(cx, cy, r, t.Color(StyleColorBorder), 0)
		r -= b
	}
	ctx.drawList.AddCircleFilled(cx, cy, r, bg, 0)
	if active {
		ctx.drawList.AddCircleFilled(cx, cy, box/4, t.Color(StyleColorCheckMark), 0)
	}

	if text != "" {
		textColor := t.Color(StyleColorText)
		if disabled {
			textColor = t.Color(StyleColorTextDisabled)
		}
		ctx.addText(pos.X+box+t.ItemSpacing.X, pos.Y+t.FramePadding.Y, text, textColor)
	}

	ctx.advanceCursor(pos, Vec2{X: totalWidth, Y: box})
	return clicked
}

// RadioGroup draws one radio button per item, below an optional label.
// WithColumns(n) fills n columns top to bottom. Returns true if the
// selection changed.
//
// Usage:
//
//	items := []string{"Low", "Medium", "High"}
//	if ui.RadioGroup("Quality", &selectedIndex, items) {
//	    applyQuality(selectedIndex)
//	}
func (ui *UI) RadioGroup(label string, selectedIndex *int, items []string, opts ...Option) bool {
	o := applyOptions(opts)
	columns := max(GetOpt(o, OptColumns), 1)
	rows := (len(items) + columns - 1) / columns

	return ui.radioItems(label, o, func(place func(i int)) {
		for row := range rows {
			for col := range columns {
				if i := row + col*rows; i < len(items) {
					if col > 0 {
						ui.SameLine(ui.c().theme.ItemSpacing.X * 2)
					}
					place(i)
				}
			}
		}
	}, selectedIndex, items)
}

// RadioGroupHorizontal draws the whole group on one line after the label.
func (ui *UI) RadioGroupHorizontal(label string, selectedIndex *int, items []string, opts ...Option) bool {
	o := applyOptions(opts)
	return ui.radioItems(label, o, func(place func(i int)) {
		for i := range items {
			if i > 0 || displayLabel(label) != "" {
				ui.SameLine(-1)
			}
			place(i)
		}
	}, selectedIndex, items)
}

func (ui *UI) radioItems(label string, o options, layout func(place func(i int)), selectedIndex *int, items []string) bool {
	if text := displayLabel(label); text != "" {
		ui.Text(text)
	}

	scope := label
	if optID := GetOpt(o, OptID); optID != "" {
		scope = optID
	}
	ui.PushID(scope)
	defer ui.PopID()

	disabled := GetOpt(o, OptDisabled)
	changed := false
	layout(func(i int) {
		ui.PushIDInt(i)
		clicked := ui.RadioButton(items[i], i == *selectedIndex, WithDisabled(disabled))
		ui.PopID()
		if clicked && i != *selectedIndex {
			*selectedIndex = i
			changed = true
		}
	})
	return changed
}

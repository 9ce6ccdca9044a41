package gui

import "unicode"

// defaultInputWidth is the field width when no WithWidth option is given.
const defaultInputWidth = 200

// InputText draws a single-line text field with its label on the right.
// Click to edit; Enter, Escape or a click elsewhere stops editing.
// Supports cursor keys, Shift selection, Ctrl+A and clipboard Ctrl+C/X/V.
// Returns true if the value changed.
func (ui *UI) InputText(label string, value *string, opts ...Option) bool {
	ctx := ui.c()
	t := &ctx.theme
	o := applyOptions(opts)
	pos := ctx.itemPos()
	id := ctx.widgetID(label, o)
	text := displayLabel(label)
	in := ctx.io.Input

	state := GetState(ctx, id, InputTextState{
		CursorPos:      len([]rune(*value)),
		SelectionStart: -1,
		SelectionEnd:   -1,
	})

	w := float32(defaultInputWidth)
	if ow := GetOpt(o, OptWidth); ow > 0 {
		w = ow
	}
	h := ctx.frameHeight()
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	disabled := GetOpt(o, OptDisabled)
	hovered := !disabled && ctx.isHovered(rect)
	if hovered {
		ctx.io.MouseCursor = MouseCursorTextInput
	}

	runes := []rune(*value)
	textX := pos.X + t.FramePadding.X
	textY := pos.Y + t.FramePadding.Y
	innerW := w - t.FramePadding.X*2

	if !disabled && ctx.isClicked(id, rect) {
		state.Editing = true
		state.CursorBlinkTime = 0
		state.CursorPos = ctx.runeIndexAt(runes, in.MouseX-textX+state.ScrollOffset)
		state.ClearSelection()
	} else if state.Editing && in.MouseClicked(MouseButtonLeft) && !rect.Contains(ctx.mousePos()) {
		state.Editing = false
	}
	if disabled {
		state.Editing = false
	}

	changed := false
	if state.Editing {
		ctx.io.WantCaptureKeyboard = true
		ctx.io.WantTextInput = true
		changed = ctx.processInputTextKeyboard(value, &state, &runes, GetOpt(o, OptMaxLength))
	}
	state.CursorPos = max(0, min(state.CursorPos, len(runes)))

	// Keep the cursor inside the visible part of the field.
	cursorX := ctx.measureText(string(runes[:state.CursorPos])).X
	if cursorX-state.ScrollOffset > innerW {
		state.ScrollOffset = cursorX - innerW
	}
	if cursorX < state.ScrollOffset {
		state.ScrollOffset = cursorX
	}
	state.ScrollOffset = maxf(state.ScrollOffset, 0)

	bg := t.Color(StyleColorFrameBg)
	switch {
	case disabled:
		bg = ctx.disabledColor(StyleColorFrameBg)
	case state.Editing:
		bg = t.Color(StyleColorFrameBgActive)
	case hovered:
		bg = t.Color(StyleColorFrameBgHovered)
	}
	ctx.renderFrame(ctx.drawList, rect, bg)

	dl := ctx.drawList
	dl.PushClipRect(textX, pos.Y, textX+innerW, pos.Y+h)
	if state.Editing && state.HasSelection() {
		start, end := state.SelectedRange()
		x0 := ctx.measureText(string(runes[:start])).X - state.ScrollOffset
		x1 := ctx.measureText(string(runes[:end])).X - state.ScrollOffset
		dl.AddRect(textX+x0, textY, x1-x0, ctx.lineHeight(), t.Color(StyleColorTextSelectedBg))
	}
	switch {
	case len(runes) > 0:
		ctx.addText(textX-state.ScrollOffset, textY, string(runes), t.Color(StyleColorText))
	case !state.Editing:
		if hint := GetOpt(o, OptHint); hint != "" {
			ctx.addText(textX, textY, hint, t.Color(StyleColorTextDisabled))
		}
	}
	dl.PopClipRect()

	if state.Editing {
		state.CursorBlinkTime += ctx.io.DeltaTime
		if int(state.CursorBlinkTime*2)%2 == 0 {
			x := textX + cursorX - state.ScrollOffset
			dl.AddLine(x, textY, x, textY+ctx.lineHeight(), t.Color(StyleColorText), 1)
		}
	}

	totalW := w
	if text != "" {
		ctx.addText(pos.X+w+t.ItemSpacing.X, textY, text, t.Color(StyleColorText))
		totalW += t.ItemSpacing.X + ctx.measureText(text).X
	}

	SetState(ctx, id, state)
	ctx.advanceCursor(pos, Vec2{X: totalW, Y: h})
	return changed
}

// runeIndexAt returns the caret position nearest to x, measured from the
// start of the text.
func (ctx *Context) runeIndexAt(runes []rune, x float32) int {
	best := 0
	for i := 1; i <= len(runes); i++ {
		if ctx.measureText(string(runes[:i])).X > x {
			break
		}
		best = i
	}
	return best
}

// processInputTextKeyboard applies this frame's keys and characters.
// Returns true if the value changed.
func (ctx *Context) processInputTextKeyboard(value *string, state *InputTextState, runes *[]rune, maxLen int) bool {
	in := ctx.io.Input
	changed := false

	commit := func() {
		*value = string(*runes)
		changed = true
	}
	deleteSelection := func() bool {
		if !state.HasSelection() {
			return false
		}
		start, end := state.SelectedRange()
		*runes = append((*runes)[:start], (*runes)[end:]...)
		state.CursorPos = start
		state.ClearSelection()
		commit()
		return true
	}
	insert := func(ins []rune) {
		deleteSelection()
		if maxLen > 0 {
			room := maxLen - len(*runes)
			if room <= 0 {
				return
			}
			if len(ins) > room {
				ins = ins[:room]
			}
		}
		tail := append([]rune(nil), (*runes)[state.CursorPos:]...)
		*runes = append(append((*runes)[:state.CursorPos], ins...), tail...)
		state.CursorPos += len(ins)
		commit()
	}
	move := func(to int) {
		from := state.CursorPos
		state.CursorPos = max(0, min(to, len(*runes)))
		if in.ModShift {
			if state.SelectionStart < 0 {
				state.SelectionStart = from
			}
			state.SelectionEnd = state.CursorPos
		} else {
			state.ClearSelection()
		}
		state.CursorBlinkTime = 0
	}

	if in.ModCtrl {
		switch {
		case in.KeyPressed(KeyA):
			state.SelectAll(len(*runes))
			return false
		case in.KeyPressed(KeyC):
			if state.HasSelection() {
				start, end := state.SelectedRange()
				ctx.clipboardSet(string((*runes)[start:end]))
			}
			return false
		case in.KeyPressed(KeyX):
			if state.HasSelection() {
				start, end := state.SelectedRange()
				ctx.clipboardSet(string((*runes)[start:end]))
				deleteSelection()
			}
			return changed
		case in.KeyPressed(KeyV):
			if clip := ctx.clipboardGet(); clip != "" {
				insert(printable([]rune(clip)))
			}
			return changed
		}
	}

	switch {
	case in.KeyRepeated(KeyLeft):
		if state.HasSelection() && !in.ModShift {
			start, _ := state.SelectedRange()
			move(start)
		} else {
			move(state.CursorPos - 1)
		}
	case in.KeyRepeated(KeyRight):
		if state.HasSelection() && !in.ModShift {
			_, end := state.SelectedRange()
			move(end)
		} else {
			move(state.CursorPos + 1)
		}
	case in.KeyPressed(KeyHome):
		move(0)
	case in.KeyPressed(KeyEnd):
		move(len(*runes))
	case in.KeyRepeated(KeyBackspace):
		if !deleteSelection() && state.CursorPos > 0 {
			*runes = append((*runes)[:state.CursorPos-1], (*runes)[state.CursorPos:]...)
			state.CursorPos--
			commit()
		}
		state.CursorBlinkTime = 0
	case in.KeyRepeated(KeyDelete):
		if !deleteSelection() && state.CursorPos < len(*runes) {
			*runes = append((*runes)[:state.CursorPos], (*runes)[state.CursorPos+1:]...)
			commit()
		}
		state.CursorBlinkTime = 0
	case in.KeyPressed(KeyEnter), in.KeyPressed(KeyEscape):
		state.Editing = false
		state.ClearSelection()
		return changed
	}

	if chars := printable(in.InputChars); len(chars) > 0 {
		insert(chars)
	}
	return changed
}

// printable drops control characters.
func printable(rs []rune) []rune {
	out := make([]rune, 0, len(rs))
	for _, r := range rs {
		if !unicode.IsControl(r) {
			out = append(out, r)
		}
	}
	return out
}

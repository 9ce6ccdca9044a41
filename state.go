package gui

// StateStore persists widget state between frames.
// Unlike ImGui's hidden state, this is explicit and inspectable.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// MapStateStore is a simple in-memory StateStore implementation.
type MapStateStore map[ID]any

// Get retrieves a value from the store.
func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

// Set stores a value in the store.
func (m MapStateStore) Set(id ID, value any) {
	m[id] = value
}

// Delete removes a value from the store.
func (m MapStateStore) Delete(id ID) {
	delete(m, id)
}

// GetState retrieves typed state from the context.
// Returns defaultVal if the state doesn't exist or has wrong type.
func GetState[T any](ctx *Context, id ID, defaultVal T) T {
	if v, ok := ctx.stateStore.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return defaultVal
}

// SetState stores typed state in the context.
func SetState[T any](ctx *Context, id ID, value T) {
	ctx.stateStore.Set(id, value)
}

// DeleteState removes state from the context.
func DeleteState(ctx *Context, id ID) {
	ctx.stateStore.Delete(id)
}

// InputTextState tracks state for text input widgets.
type InputTextState struct {
	// Editing is true while the field owns the keyboard.
	Editing bool

	// Cursor position (in runes, not bytes)
	CursorPos int

	// Selection range (in runes). SelectionStart is the anchor point,
	// SelectionEnd follows the cursor. -1 means no selection.
	SelectionStart int
	SelectionEnd   int

	// Horizontal scroll offset for text wider than the field
	ScrollOffset float32

	CursorBlinkTime float32
}

// HasSelection returns true if there's an active text selection.
func (s *InputTextState) HasSelection() bool {
	return s.SelectionStart >= 0 && s.SelectionStart != s.SelectionEnd
}

// SelectedRange returns the selection as (start, end) with start <= end,
// or (-1, -1) without a selection.
func (s *InputTextState) SelectedRange() (start, end int) {
	if !s.HasSelection() {
		return -1, -1
	}
	if s.SelectionStart < s.SelectionEnd {
		return s.SelectionStart, s.SelectionEnd
	}
	return s.SelectionEnd, s.SelectionStart
}

// ClearSelection removes the selection.
func (s *InputTextState) ClearSelection() {
	s.SelectionStart = -1
	s.SelectionEnd = -1
}

// SelectAll selects all text.
func (s *InputTextState) SelectAll(textLen int) {
	s.SelectionStart = 0
	s.SelectionEnd = textLen
	s.CursorPos = textLen
}

// ScrollableState tracks state for scrollable regions.
type ScrollableState struct {
	ScrollY         float32 // Vertical scroll offset
	ContentHeight   float32 // Content height measured last frame
	ViewHeight      float32 // Viewport height
	Dragging        bool    // True while the scrollbar thumb is dragged
	DragStartY      float32 // Mouse Y when the drag started
	DragStartScroll float32 // ScrollY when the drag started
}

// ComboBoxState tracks state for combo box widgets.
type ComboBoxState struct {
	Open          bool    // True when dropdown is open
	ScrollY       float32 // Scroll position in dropdown
	HoveredIndex  int     // Currently hovered item index (-1 = none)
	KeyboardIndex int     // Currently keyboard-selected index (-1 = none)
}

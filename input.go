package gui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the UI reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyCount
)

// Key repeat timing, in seconds.
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

// InputState holds input for the current frame in logical coordinates.
// The platform bridge writes it between frames; widgets only read it.
type InputState struct {
	MouseX, MouseY float32
	// MouseValid is false while the cursor is outside the window.
	MouseValid bool

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool
	mouseUp      [MouseButtonCount]bool

	MouseWheelX float32
	MouseWheelY float32

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyUp       [KeyCount]bool
	keyHoldTime [KeyCount]float32
	keyPrevHold [KeyCount]float32

	// InputChars holds the Unicode characters typed since the last frame.
	InputChars []rune

	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// EndFrame clears single-frame edges after widgets have consumed them.
func (s *InputState) EndFrame() {
	clear(s.mouseClicked[:])
	clear(s.mouseUp[:])
	clear(s.keyPressed[:])
	clear(s.keyUp[:])
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
	s.MouseValid = true
}

// SetMouseButton sets mouse button state and records press/release edges.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state and records press/release edges.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down != wasDown {
		s.keyHoldTime[key] = 0
		s.keyPrevHold[key] = 0
	}
	if down && !wasDown {
		s.keyPressed[key] = true
	}
	if !down && wasDown {
		s.keyUp[key] = true
	}
}

// AdvanceKeyRepeat accumulates hold time for held keys.
func (s *InputState) AdvanceKeyRepeat(dt float32) {
	for key := Key(0); key < KeyCount; key++ {
		s.keyPrevHold[key] = s.keyHoldTime[key]
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

// AddMouseWheel accumulates wheel deltas until the frame ends.
func (s *InputState) AddMouseWheel(x, y float32) {
	s.MouseWheelX += x
	s.MouseWheelY += y
}

// AddInputChar adds a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// ReleaseAll drops every held button and key, used when the window loses focus.
func (s *InputState) ReleaseAll() {
	for b := MouseButton(0); b < MouseButtonCount; b++ {
		s.SetMouseButton(b, false)
	}
	for k := KeyNone + 1; k < KeyCount; k++ {
		s.SetKey(k, false)
	}
	s.ModCtrl, s.ModShift, s.ModAlt, s.ModSuper = false, false, false, false
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was released this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyRepeated returns true on the initial press, then once per
// KeyRepeatInterval after the key has been held for KeyRepeatDelay.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] || s.keyHoldTime[key] < KeyRepeatDelay {
		return false
	}
	prev := int((s.keyPrevHold[key] - KeyRepeatDelay) / KeyRepeatInterval)
	if s.keyPrevHold[key] < KeyRepeatDelay {
		prev = -1
	}
	cur := int((s.keyHoldTime[key] - KeyRepeatDelay) / KeyRepeatInterval)
	return cur > prev
}

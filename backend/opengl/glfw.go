package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/talanapp/talan"
	"github.com/talanapp/talan/app"
)

// Window wraps a GLFW window with a current OpenGL context. It is the
// event source, the app.Window and the app.Display of the runtime.
// GLFW callbacks queue events; Poll hands them out in arrival order.
type Window struct {
	win     *glfw.Window
	queue   []app.Event
	cursors map[gui.MouseCursor]*glfw.Cursor
	gone    bool
}

func newWindow(win *glfw.Window) *Window {
	w := &Window{
		win:     win,
		queue:   make([]app.Event, 0, 64),
		cursors: make(map[gui.MouseCursor]*glfw.Cursor),
	}

	win.SetKeyCallback(w.keyCallback)
	win.SetCharCallback(w.charCallback)
	win.SetMouseButtonCallback(w.mouseButtonCallback)
	win.SetScrollCallback(w.scrollCallback)
	win.SetCursorPosCallback(w.cursorPosCallback)
	win.SetCursorEnterCallback(w.cursorEnterCallback)
	win.SetSizeCallback(w.sizeCallback)
	win.SetFramebufferSizeCallback(w.sizeCallback)
	win.SetContentScaleCallback(w.contentScaleCallback)
	win.SetFocusCallback(w.focusCallback)
	win.SetCloseCallback(w.closeCallback)

	return w
}

// Poll processes pending GLFW events and delivers the queued ones.
func (w *Window) Poll(fn func(app.Event)) {
	if w.gone {
		return
	}
	glfw.PollEvents()
	for _, ev := range w.queue {
		fn(ev)
	}
	clear(w.queue)
	w.queue = w.queue[:0]
}

func (w *Window) push(ev app.Event) {
	w.queue = append(w.queue, ev)
}

// Exists reports whether Destroy has not been called yet.
func (w *Window) Exists() bool {
	return !w.gone
}

// Size returns the window size in screen coordinates.
func (w *Window) Size() (int, int) {
	if w.gone {
		return 0, 0
	}
	return w.win.GetSize()
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	if w.gone {
		return 0, 0
	}
	return w.win.GetFramebufferSize()
}

// ContentScale returns the monitor content scale of the window.
func (w *Window) ContentScale() (float32, float32) {
	if w.gone {
		return 1, 1
	}
	return w.win.GetContentScale()
}

// SetCursor switches to the standard GLFW cursor for c.
func (w *Window) SetCursor(c gui.MouseCursor) {
	if w.gone {
		return
	}
	cur, ok := w.cursors[c]
	if !ok {
		shape, known := glfwCursorShape(c)
		if !known {
			return
		}
		cur = glfw.CreateStandardCursor(shape)
		w.cursors[c] = cur
	}
	w.win.SetCursor(cur)
}

// SetCursorVisible shows or hides the cursor over the window.
func (w *Window) SetCursorVisible(visible bool) {
	if w.gone {
		return
	}
	mode := glfw.CursorHidden
	if visible {
		mode = glfw.CursorNormal
	}
	w.win.SetInputMode(glfw.CursorMode, mode)
}

// Destroy releases the window and terminates GLFW. Safe to call twice.
func (w *Window) Destroy() {
	if w.gone {
		return
	}
	w.gone = true
	for _, cur := range w.cursors {
		cur.Destroy()
	}
	clear(w.cursors)
	w.win.Destroy()
	glfw.Terminate()
}

// Draw starts a frame on the default framebuffer.
func (w *Window) Draw() (app.Target, error) {
	if w.gone {
		return nil, app.ErrWindowGone
	}
	return &frame{w: w}, nil
}

// frame is the back buffer of one frame.
type frame struct {
	w *Window
}

func (f *frame) Clear(r, g, b, a float32) {
	fbW, fbH := f.w.FramebufferSize()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Finish swaps buffers. GLFW reports platform errors by panicking; those
// are returned as errors.
func (f *frame) Finish() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("opengl: swap buffers: %v", r)
		}
	}()
	f.w.win.SwapBuffers()
	return nil
}

// Discard leaves the back buffer alone; the next frame clears it.
func (f *frame) Discard() {}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	// Modifier keys themselves are not UI keys but still update the
	// modifier state, so they are forwarded as KeyNone.
	w.push(app.KeyChanged{
		Key:  glfwKeyToGUIKey(key),
		Down: action != glfw.Release,
		Mods: modifiers(win),
	})
}

func (w *Window) charCallback(win *glfw.Window, char rune) {
	w.push(app.CharTyped{Char: char})
}

func (w *Window) mouseButtonCallback(win *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton := glfwMouseButtonToGUI(button)
	if guiButton < 0 {
		return
	}
	w.push(app.MouseButtonChanged{Button: guiButton, Down: action == glfw.Press})
}

func (w *Window) scrollCallback(win *glfw.Window, xoff, yoff float64) {
	w.push(app.Scrolled{X: xoff, Y: yoff})
}

func (w *Window) cursorPosCallback(win *glfw.Window, xpos, ypos float64) {
	w.push(app.CursorMoved{X: xpos, Y: ypos})
}

func (w *Window) cursorEnterCallback(win *glfw.Window, entered bool) {
	w.push(app.CursorEntered{Entered: entered})
}

func (w *Window) sizeCallback(win *glfw.Window, _, _ int) {
	width, height := win.GetSize()
	fbW, fbH := win.GetFramebufferSize()
	w.push(app.Resized{Width: width, Height: height, FramebufferWidth: fbW, FramebufferHeight: fbH})
}

func (w *Window) contentScaleCallback(win *glfw.Window, x, y float32) {
	w.push(app.ScaleChanged{X: x, Y: y})
}

func (w *Window) focusCallback(win *glfw.Window, focused bool) {
	w.push(app.FocusChanged{Focused: focused})
}

func (w *Window) closeCallback(win *glfw.Window) {
	w.push(app.CloseRequested{})
}

// modifiers reads the held modifier keys from the window.
func modifiers(win *glfw.Window) app.Modifiers {
	down := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if win.GetKey(k) == glfw.Press {
				return true
			}
		}
		return false
	}
	return app.Modifiers{
		Ctrl:  down(glfw.KeyLeftControl, glfw.KeyRightControl),
		Shift: down(glfw.KeyLeftShift, glfw.KeyRightShift),
		Alt:   down(glfw.KeyLeftAlt, glfw.KeyRightAlt),
		Super: down(glfw.KeyLeftSuper, glfw.KeyRightSuper),
	}
}

// clipboard reads and writes the system clipboard through GLFW.
type clipboard struct {
	win *glfw.Window
}

// GetText returns "" when the clipboard holds no text. GLFW panics in
// that case on some platforms.
func (c clipboard) GetText() (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	return c.win.GetClipboardString()
}

func (c clipboard) SetText(text string) {
	c.win.SetClipboardString(text)
}

// glfwKeyToGUIKey maps GLFW keys to GUI keys.
func glfwKeyToGUIKey(key glfw.Key) gui.Key {
	switch key {
	case glfw.KeyTab:
		return gui.KeyTab
	case glfw.KeyLeft:
		return gui.KeyLeft
	case glfw.KeyRight:
		return gui.KeyRight
	case glfw.KeyUp:
		return gui.KeyUp
	case glfw.KeyDown:
		return gui.KeyDown
	case glfw.KeyPageUp:
		return gui.KeyPageUp
	case glfw.KeyPageDown:
		return gui.KeyPageDown
	case glfw.KeyHome:
		return gui.KeyHome
	case glfw.KeyEnd:
		return gui.KeyEnd
	case glfw.KeyInsert:
		return gui.KeyInsert
	case glfw.KeyDelete:
		return gui.KeyDelete
	case glfw.KeyBackspace:
		return gui.KeyBackspace
	case glfw.KeySpace:
		return gui.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return gui.KeyEnter
	case glfw.KeyEscape:
		return gui.KeyEscape
	case glfw.KeyA:
		return gui.KeyA
	case glfw.KeyC:
		return gui.KeyC
	case glfw.KeyV:
		return gui.KeyV
	case glfw.KeyX:
		return gui.KeyX
	default:
		return gui.KeyNone
	}
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) gui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle
	default:
		return -1
	}
}

// glfwCursorShape maps UI cursors to GLFW standard cursor shapes.
func glfwCursorShape(c gui.MouseCursor) (glfw.StandardCursor, bool) {
	switch c {
	case gui.MouseCursorArrow:
		return glfw.ArrowCursor, true
	case gui.MouseCursorTextInput:
		return glfw.IBeamCursor, true
	case gui.MouseCursorHand:
		return glfw.HandCursor, true
	case gui.MouseCursorResizeEW:
		return glfw.HResizeCursor, true
	case gui.MouseCursorResizeNS:
		return glfw.VResizeCursor, true
	default:
		return 0, false
	}
}

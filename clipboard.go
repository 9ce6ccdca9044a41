package gui

// ClipboardProvider abstracts system clipboard access.
// The GLFW backend implements it on top of the window's clipboard.
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

func (ctx *Context) clipboardGet() string {
	if ctx.clipboard != nil {
		return ctx.clipboard.GetText()
	}
	return ""
}

func (ctx *Context) clipboardSet(text string) {
	if ctx.clipboard != nil {
		ctx.clipboard.SetText(text)
	}
}

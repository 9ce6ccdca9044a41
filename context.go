package gui

import (
	"errors"
	"log/slog"
	"os"
)

// guiLogLevel controls the log level for GUI debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var guiLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for GUI components.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// guiVerbose returns true if GUI debug logging is enabled.
func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

// guiLogger is the logger for GUI context debugging.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

var (
	// ErrThemeLocked is returned by SetTheme once the first frame has started.
	ErrThemeLocked = errors.New("gui: theme is locked after the first frame")
	// ErrFrameEnded is the panic value when a UI handle outlives its frame.
	ErrFrameEnded = errors.New("gui: UI handle used after its frame ended")
	// ErrFrameOpen is returned by operations that must run between frames.
	ErrFrameOpen = errors.New("gui: frame in progress")
)

// Context holds all UI state that outlives a single frame: IO, theme,
// fonts, and persisted widget state. This is NOT context.Context.
//
// A frame is bracketed by NewFrame and Render. Widgets are only reachable
// through the *UI handle returned by NewFrame.
type Context struct {
	io    *IO
	theme Theme
	fonts *FontAtlas

	stateStore StateStore
	clipboard  ClipboardProvider

	// Frame bookkeeping. gen changes on every NewFrame and Render so stale
	// handles can be detected.
	gen        uint64
	frameCount uint64
	inFrame    bool
	started    bool

	drawList           *DrawList
	foregroundDrawList *DrawList
	drawData           DrawData

	layout      layoutState
	windowStack []windowFrame

	idStack []ID

	activeID    ID
	openPopupID ID

	// popupRect is the open popup's area drawn this frame. At NewFrame it
	// moves to popupBlock, which hides the mouse from every widget but
	// hitOwner while it is over the popup.
	popupRect       Rect
	popupBlock      Rect
	popupBlockOwner ID
	hitOwner        ID

	// hitClip limits hovering to the visible part of a scrolled region.
	hitClip    Rect
	hitClipped bool

	glyphBuffer      []GlyphQuad
	textMeasureCache map[string]Vec2
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithStateStore sets a custom state store.
func WithStateStore(store StateStore) ContextOption {
	return func(ctx *Context) { ctx.stateStore = store }
}

// WithClipboard sets the clipboard used by text inputs.
func WithClipboard(cp ClipboardProvider) ContextOption {
	return func(ctx *Context) { ctx.clipboard = cp }
}

// NewContext creates a context with the default theme and an empty font atlas.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{
		io:               newIO(),
		theme:            DefaultTheme(),
		fonts:            NewFontAtlas(),
		stateStore:       make(MapStateStore),
		idStack:          make([]ID, 0, 32),
		windowStack:      make([]windowFrame, 0, 4),
		glyphBuffer:      make([]GlyphQuad, 0, 256),
		textMeasureCache: make(map[string]Vec2, 64),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// IO returns the exchange area shared with the platform layer.
func (ctx *Context) IO() *IO {
	return ctx.io
}

// Theme returns a copy of the active theme.
func (ctx *Context) Theme() Theme {
	return ctx.theme
}

// SetTheme replaces the theme. It fails with ErrThemeLocked once the first
// frame has started.
func (ctx *Context) SetTheme(t Theme) error {
	if ctx.started {
		return ErrThemeLocked
	}
	ctx.theme = t
	return nil
}

// Fonts returns the font atlas.
func (ctx *Context) Fonts() *FontAtlas {
	return ctx.fonts
}

// SetFonts replaces the font atlas, for example after a DPI change.
// It must be called between frames.
func (ctx *Context) SetFonts(atlas *FontAtlas) error {
	if ctx.inFrame {
		return ErrFrameOpen
	}
	ctx.fonts = atlas
	return nil
}

// SetClipboard sets the clipboard used by text inputs. Nil disables it.
func (ctx *Context) SetClipboard(cp ClipboardProvider) {
	ctx.clipboard = cp
}

// FrameCount returns the number of frames started so far.
func (ctx *Context) FrameCount() uint64 {
	return ctx.frameCount
}

// InFrame reports whether a frame is between NewFrame and Render.
func (ctx *Context) InFrame() bool {
	return ctx.inFrame
}

// NewFrame starts a frame and returns the handle widgets are drawn through.
// Draw data from the previous Render is recycled here. Calling NewFrame
// while a frame is open abandons that frame.
func (ctx *Context) NewFrame() *UI {
	if ctx.inFrame {
		guiLogger.Debug("NewFrame: abandoning open frame", "frame", ctx.frameCount)
		ctx.endFrame()
	}
	ctx.releaseDrawLists()

	ctx.gen++
	ctx.frameCount++
	ctx.inFrame = true
	ctx.started = true

	ctx.drawList = AcquireDrawList()
	ctx.foregroundDrawList = AcquireDrawList()

	io := ctx.io
	io.Input.AdvanceKeyRepeat(io.DeltaTime)
	io.WantCaptureMouse = false
	io.WantCaptureKeyboard = false
	io.WantTextInput = false
	io.MouseCursor = MouseCursorArrow

	ctx.popupBlock, ctx.popupBlockOwner = Rect{}, 0
	if ctx.openPopupID != 0 {
		ctx.popupBlock, ctx.popupBlockOwner = ctx.popupRect, ctx.openPopupID
	}
	ctx.popupRect = Rect{}
	ctx.hitOwner = 0
	ctx.hitClip, ctx.hitClipped = Rect{}, false

	ctx.idStack = ctx.idStack[:0]
	ctx.windowStack = ctx.windowStack[:0]
	clear(ctx.textMeasureCache)
	ctx.layout.reset(ctx.theme.WindowPadding, io.DisplaySize.X-ctx.theme.WindowPadding.X)

	return &UI{ctx: ctx, gen: ctx.gen}
}

// Render ends the frame and returns its draw data. The UI handle of the
// frame is invalid afterwards. The draw data stays valid until the next
// NewFrame.
func (ctx *Context) Render() *DrawData {
	if !ctx.inFrame {
		return &ctx.drawData
	}
	ctx.endFrame()

	ctx.drawList.Finalize()
	ctx.foregroundDrawList.Finalize()

	ctx.drawData = DrawData{
		Lists:            ctx.drawData.Lists[:0],
		DisplaySize:      ctx.io.DisplaySize,
		FramebufferScale: ctx.io.DisplayFramebufferScale,
	}
	ctx.drawData.Lists = append(ctx.drawData.Lists, ctx.drawList)
	if len(ctx.foregroundDrawList.CmdBuffer) > 0 {
		ctx.drawData.Lists = append(ctx.drawData.Lists, ctx.foregroundDrawList)
	}
	return &ctx.drawData
}

// endFrame invalidates the frame's handle and consumes single-frame input.
func (ctx *Context) endFrame() {
	ctx.gen++
	ctx.inFrame = false
	if ctx.activeID != 0 && !ctx.io.Input.MouseDown(MouseButtonLeft) {
		ctx.activeID = 0
	}
	ctx.io.Input.EndFrame()
}

func (ctx *Context) releaseDrawLists() {
	if ctx.drawList != nil {
		ReleaseDrawList(ctx.drawList)
		ctx.drawList = nil
	}
	if ctx.foregroundDrawList != nil {
		ReleaseDrawList(ctx.foregroundDrawList)
		ctx.foregroundDrawList = nil
	}
	clear(ctx.drawData.Lists)
	ctx.drawData.Lists = ctx.drawData.Lists[:0]
}

// font returns the active font, or nil before the atlas is built.
func (ctx *Context) font() Font {
	if ctx.fonts != nil && ctx.fonts.Built() {
		return ctx.fonts
	}
	return nil
}

// Metrics of the built-in 7x13 face, used before an atlas exists.
const (
	fallbackCharWidth  = 7
	fallbackCharHeight = 13
)

func (ctx *Context) lineHeight() float32 {
	if f := ctx.font(); f != nil {
		return f.LineHeight(ctx.io.FontGlobalScale)
	}
	return fallbackCharHeight * ctx.io.FontGlobalScale
}

// measureText returns the size of rendered text, cached per frame.
func (ctx *Context) measureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}

	var result Vec2
	if f := ctx.font(); f != nil {
		result = f.MeasureText(text, ctx.io.FontGlobalScale)
	} else {
		scale := ctx.io.FontGlobalScale
		result = Vec2{
			X: float32(len([]rune(text))) * fallbackCharWidth * scale,
			Y: fallbackCharHeight * scale,
		}
	}

	ctx.textMeasureCache[text] = result
	return result
}

// addTextTo draws text with its top-left at (x, y).
// Without a built atlas nothing is drawn; layout still advances.
func (ctx *Context) addTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	f := ctx.font()
	if f == nil || text == "" {
		return
	}
	ctx.glyphBuffer = f.AppendGlyphQuads(ctx.glyphBuffer[:0], text, x, y, ctx.io.FontGlobalScale)
	dl.SetTexture(f.TextureID())
	dl.AddGlyphQuads(ctx.glyphBuffer, color)
	dl.SetTexture(0)
}

func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.addTextTo(ctx.drawList, x, y, text, color)
}

func (ctx *Context) mousePos() Vec2 {
	return Vec2{X: ctx.io.Input.MouseX, Y: ctx.io.Input.MouseY}
}

// isHovered returns true if rect is under the mouse cursor and no popup
// owned by another widget covers the cursor.
// Hovering anything the UI drew means the UI wants the mouse.
func (ctx *Context) isHovered(rect Rect) bool {
	in := ctx.io.Input
	if !in.MouseValid {
		return false
	}
	mouse := Vec2{X: in.MouseX, Y: in.MouseY}
	if !rect.Contains(mouse) || (ctx.hitClipped && !ctx.hitClip.Contains(mouse)) {
		return false
	}
	ctx.io.WantCaptureMouse = true
	if ctx.popupBlockOwner != 0 && ctx.hitOwner != ctx.popupBlockOwner && ctx.popupBlock.Contains(mouse) {
		return false
	}
	return true
}

// isClicked returns true if rect was clicked this frame.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	hovered := ctx.isHovered(rect)
	clicked := ctx.io.Input.MouseClicked(MouseButtonLeft)

	if clicked && guiVerbose() {
		guiLogger.Debug("click",
			"id", id,
			"rect", rect,
			"mouse", ctx.mousePos(),
			"hit", hovered)
	}

	if hovered && clicked {
		ctx.activeID = id
		return true
	}
	return false
}

// isPressed returns true if rect is being held down.
func (ctx *Context) isPressed(id ID, rect Rect) bool {
	return ctx.activeID == id && ctx.isHovered(rect) && ctx.io.Input.MouseDown(MouseButtonLeft)
}

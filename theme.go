package gui

// StyleColor names a semantic slot in the theme palette.
type StyleColor int

const (
	StyleColorText StyleColor = iota
	StyleColorTextDisabled
	StyleColorWindowBg
	StyleColorChildBg
	StyleColorPopupBg
	StyleColorBorder
	StyleColorBorderShadow
	StyleColorFrameBg
	StyleColorFrameBgHovered
	StyleColorFrameBgActive
	StyleColorTitleBg
	StyleColorTitleBgActive
	StyleColorTitleBgCollapsed
	StyleColorMenuBarBg
	StyleColorScrollbarBg
	StyleColorScrollbarGrab
	StyleColorScrollbarGrabHovered
	StyleColorScrollbarGrabActive
	StyleColorCheckMark
	StyleColorSliderGrab
	StyleColorSliderGrabActive
	StyleColorButton
	StyleColorButtonHovered
	StyleColorButtonActive
	StyleColorHeader
	StyleColorHeaderHovered
	StyleColorHeaderActive
	StyleColorSeparator
	StyleColorSeparatorHovered
	StyleColorSeparatorActive
	StyleColorResizeGrip
	StyleColorResizeGripHovered
	StyleColorResizeGripActive
	StyleColorPlotLines
	StyleColorPlotLinesHovered
	StyleColorPlotHistogram
	StyleColorPlotHistogramHovered
	StyleColorTextSelectedBg
	StyleColorDragDropTarget
	StyleColorNavHighlight
	StyleColorNavWindowingHighlight
	StyleColorNavWindowingDimBg
	StyleColorModalWindowDimBg
	StyleColorCount
)

var styleColorNames = [StyleColorCount]string{
	"Text", "TextDisabled", "WindowBg", "ChildBg", "PopupBg", "Border", "BorderShadow",
	"FrameBg", "FrameBgHovered", "FrameBgActive", "TitleBg", "TitleBgActive",
	"TitleBgCollapsed", "MenuBarBg", "ScrollbarBg", "ScrollbarGrab",
	"ScrollbarGrabHovered", "ScrollbarGrabActive", "CheckMark", "SliderGrab",
	"SliderGrabActive", "Button", "ButtonHovered", "ButtonActive", "Header",
	"HeaderHovered", "HeaderActive", "Separator", "SeparatorHovered", "SeparatorActive",
	"ResizeGrip", "ResizeGripHovered", "ResizeGripActive", "PlotLines",
	"PlotLinesHovered", "PlotHistogram", "PlotHistogramHovered", "TextSelectedBg",
	"DragDropTarget", "NavHighlight", "NavWindowingHighlight", "NavWindowingDimBg",
	"ModalWindowDimBg",
}

func (c StyleColor) String() string {
	if c < 0 || c >= StyleColorCount {
		return "StyleColor(?)"
	}
	return styleColorNames[c]
}

// Theme is the visual configuration of the UI context.
// It is assembled by the caller, handed to Context.SetTheme once,
// and read-only once the first frame has started.
type Theme struct {
	Colors [StyleColorCount]Color4

	WindowRounding   float32
	ChildRounding    float32
	PopupRounding    float32
	FrameRounding    float32
	WindowBorderSize float32
	FrameBorderSize  float32

	WindowPadding Vec2
	FramePadding  Vec2
	ItemSpacing   Vec2
	IndentSpacing float32
	ScrollbarSize float32
}

// Color returns the packed vertex color of a role.
func (t *Theme) Color(c StyleColor) uint32 {
	if c < 0 || c >= StyleColorCount {
		return ColorTransparent
	}
	return t.Colors[c].Packed()
}

// DefaultTheme returns the baseline geometry with a neutral dark palette.
func DefaultTheme() Theme {
	t := Theme{
		WindowRounding:   7,
		ChildRounding:    0,
		PopupRounding:    0,
		FrameRounding:    0,
		WindowBorderSize: 1,
		FrameBorderSize:  0,
		WindowPadding:    Vec2{X: 8, Y: 8},
		FramePadding:     Vec2{X: 4, Y: 3},
		ItemSpacing:      Vec2{X: 8, Y: 4},
		IndentSpacing:    21,
		ScrollbarSize:    14,
	}
	for i := range t.Colors {
		t.Colors[i] = Color4{0.20, 0.20, 0.22, 1.00}
	}
	t.Colors[StyleColorText] = Color4{1.00, 1.00, 1.00, 1.00}
	t.Colors[StyleColorTextDisabled] = Color4{0.50, 0.50, 0.50, 1.00}
	t.Colors[StyleColorWindowBg] = Color4{0.06, 0.06, 0.06, 0.94}
	t.Colors[StyleColorPopupBg] = Color4{0.08, 0.08, 0.08, 0.94}
	t.Colors[StyleColorBorder] = Color4{0.43, 0.43, 0.50, 0.50}
	t.Colors[StyleColorButton] = Color4{0.26, 0.59, 0.98, 0.40}
	t.Colors[StyleColorButtonHovered] = Color4{0.26, 0.59, 0.98, 1.00}
	t.Colors[StyleColorButtonActive] = Color4{0.06, 0.53, 0.98, 1.00}
	t.Colors[StyleColorHeader] = Color4{0.26, 0.59, 0.98, 0.31}
	t.Colors[StyleColorHeaderHovered] = Color4{0.26, 0.59, 0.98, 0.80}
	t.Colors[StyleColorCheckMark] = Color4{0.26, 0.59, 0.98, 1.00}
	return t
}

// ApplyTalanStyle writes the light, square-cornered talan palette into t.
// Every role and the rounding/border scalars are overwritten, so applying
// it twice gives the same theme as applying it once.
func ApplyTalanStyle(t *Theme) {
	// Rectangles everywhere.
	t.ChildRounding = 0
	t.PopupRounding = 0
	t.FrameRounding = 0
	t.WindowRounding = 0
	t.FrameBorderSize = 1

	c := &t.Colors
	c[StyleColorText] = Color4{0.00, 0.00, 0.00, 1.00}
	c[StyleColorTextDisabled] = Color4{1.00, 1.00, 0.60, 1.00}
	c[StyleColorWindowBg] = Color4{0.94, 0.94, 0.94, 1.00}
	c[StyleColorChildBg] = Color4{0.00, 0.00, 0.00, 0.00}
	c[StyleColorPopupBg] = Color4{1.00, 1.00, 1.00, 0.98}
	c[StyleColorBorder] = Color4{0.00, 0.00, 0.00, 0.30}
	c[StyleColorBorderShadow] = Color4{0.00, 0.00, 0.00, 0.00}
	c[StyleColorFrameBg] = Color4{1.00, 1.00, 1.00, 1.00}
	c[StyleColorFrameBgHovered] = Color4{0.26, 0.59, 0.98, 0.40}
	c[StyleColorFrameBgActive] = Color4{0.26, 0.59, 0.98, 0.67}
	c[StyleColorTitleBg] = Color4{0.96, 0.96, 0.96, 1.00}
	c[StyleColorTitleBgActive] = Color4{0.82, 0.82, 0.82, 1.00}
	c[StyleColorTitleBgCollapsed] = Color4{1.00, 1.00, 1.00, 0.51}
	c[StyleColorMenuBarBg] = Color4{0.86, 0.86, 0.86, 1.00}
	c[StyleColorScrollbarBg] = Color4{0.98, 0.98, 0.98, 0.53}
	c[StyleColorScrollbarGrab] = Color4{0.69, 0.69, 0.69, 0.80}
	c[StyleColorScrollbarGrabHovered] = Color4{0.49, 0.49, 0.49, 0.80}
	c[StyleColorScrollbarGrabActive] = Color4{0.49, 0.49, 0.49, 1.00}
	c[StyleColorCheckMark] = Color4{0.26, 0.59, 0.98, 1.00}
	c[StyleColorSliderGrab] = Color4{0.26, 0.59, 0.98, 0.78}
	c[StyleColorSliderGrabActive] = Color4{0.46, 0.54, 0.80, 0.60}
	c[StyleColorButton] = Color4{0.26, 0.59, 0.98, 0.40}
	c[StyleColorButtonHovered] = Color4{0.26, 0.59, 0.98, 1.00}
	c[StyleColorButtonActive] = Color4{0.06, 0.53, 0.98, 1.00}
	c[StyleColorHeader] = Color4{0.26, 0.59, 0.98, 0.31}
	c[StyleColorHeaderHovered] = Color4{0.26, 0.59, 0.98, 0.80}
	c[StyleColorHeaderActive] = Color4{0.26, 0.59, 0.98, 1.00}
	c[StyleColorSeparator] = Color4{0.39, 0.39, 0.39, 1.00}
	c[StyleColorSeparatorHovered] = Color4{0.14, 0.44, 0.80, 0.78}
	c[StyleColorSeparatorActive] = Color4{0.14, 0.44, 0.80, 1.00}
	c[StyleColorResizeGrip] = Color4{0.80, 0.80, 0.80, 0.56}
	c[StyleColorResizeGripHovered] = Color4{0.26, 0.59, 0.98, 0.67}
	c[StyleColorResizeGripActive] = Color4{0.26, 0.59, 0.98, 0.95}
	c[StyleColorPlotLines] = Color4{0.39, 0.39, 0.39, 1.00}
	c[StyleColorPlotLinesHovered] = Color4{1.00, 0.43, 0.35, 1.00}
	c[StyleColorPlotHistogram] = Color4{0.90, 0.70, 0.00, 1.00}
	c[StyleColorPlotHistogramHovered] = Color4{1.00, 0.45, 0.00, 1.00}
	c[StyleColorTextSelectedBg] = Color4{0.26, 0.59, 0.98, 0.35}
	c[StyleColorDragDropTarget] = Color4{0.26, 0.59, 0.98, 0.95}
	c[StyleColorNavHighlight] = c[StyleColorHeaderHovered]
	c[StyleColorNavWindowingHighlight] = Color4{0.70, 0.70, 0.70, 0.70}
	c[StyleColorNavWindowingDimBg] = Color4{0.20, 0.20, 0.20, 0.20}
	c[StyleColorModalWindowDimBg] = Color4{0.20, 0.20, 0.20, 0.35}
}

// TalanTheme returns DefaultTheme with ApplyTalanStyle applied.
func TalanTheme() Theme {
	t := DefaultTheme()
	ApplyTalanStyle(&t)
	return t
}

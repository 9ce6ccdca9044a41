package gui

// Option configures a UI widget.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = gui.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	ctx.MyWidget("id", gui.WithOpt(OptCustomThing, value))
//
//	// Read in widget implementation
//	value := gui.GetOpt(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// --- Core Options ---
var (
	OptID       = NewOptKey("id", "")
	OptDisabled = NewOptKey("disabled", false)
	OptWidth    = NewOptKey[float32]("width", 0)
	OptHeight   = NewOptKey[float32]("height", 0)
)

// --- ComboBox Options ---
var (
	OptMaxDropdownHeight = NewOptKey[float32]("maxDropdownHeight", 0)
)

// --- InputText Options ---
var (
	OptHint      = NewOptKey("hint", "")
	OptMaxLength = NewOptKey("maxLength", 0)
)

// --- RadioGroup Options ---
var (
	OptColumns = NewOptKey("columns", 0)
)

// --- Scrollable Options ---
var (
	OptScrollbarVisibility = NewOptKey("scrollbarVisibility", ScrollbarAuto)
	OptScrollbarSide       = NewOptKey("scrollbarSide", ScrollbarRight)
)

// WithID overrides the label-derived widget ID.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled draws the widget greyed out and ignores input.
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth sets a fixed widget width in logical units.
func WithWidth(w float32) Option { return WithOpt(OptWidth, w) }

// WithHeight sets a fixed widget height in logical units.
func WithHeight(h float32) Option { return WithOpt(OptHeight, h) }

// WithMaxDropdownHeight limits the open list of a combo box.
func WithMaxDropdownHeight(h float32) Option { return WithOpt(OptMaxDropdownHeight, h) }

// WithHint shows greyed text in an empty input field.
func WithHint(hint string) Option { return WithOpt(OptHint, hint) }

// WithMaxLength limits an input field to n runes.
func WithMaxLength(n int) Option { return WithOpt(OptMaxLength, n) }

// WithColumns lays a radio group out in n columns.
func WithColumns(n int) Option { return WithOpt(OptColumns, n) }

// ShowScrollbar controls scrollbar visibility.
func ShowScrollbar(always bool) Option {
	if always {
		return WithOpt(OptScrollbarVisibility, ScrollbarAlways)
	}
	return WithOpt(OptScrollbarVisibility, ScrollbarAuto)
}

// HideScrollbar scrolls by wheel and keys only.
func HideScrollbar() Option { return WithOpt(OptScrollbarVisibility, ScrollbarNever) }

// ScrollbarPosition sets which side the scrollbar appears on.
func ScrollbarPosition(side ScrollbarSide) Option { return WithOpt(OptScrollbarSide, side) }

// widgetID returns the ID for a widget, honoring OptID.
func (ctx *Context) widgetID(label string, o options) ID {
	if optID := GetOpt(o, OptID); optID != "" {
		return ctx.GetID(optID)
	}
	return ctx.GetID(label)
}

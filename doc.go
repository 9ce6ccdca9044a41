/*
Package gui provides an immediate-mode GUI core in the style of Dear ImGui,
written as idiomatic Go around a dedicated Context type.

# Overview

The UI is rebuilt every frame. There is no widget tree: widgets are method
calls on a per-frame *UI handle and return their interaction result
directly. State that has to survive between frames (open combo boxes, text
cursors) lives in a StateStore keyed by widget ID.

The package does not open windows or talk to the GPU. A platform layer
fills IO (display size, framebuffer scale, delta time, input) and a
renderer consumes the DrawData returned by Render. The app package wires
both around a frame loop.

# Frame Lifecycle

	ctx := gui.NewContext()
	_ = ctx.SetTheme(gui.TalanTheme()) // only before the first frame

	for running {
	    // platform writes ctx.IO() here
	    ui := ctx.NewFrame()
	    ui.Text("Hello")
	    if ui.Button("Quit") {
	        running = false
	    }
	    data := ctx.Render() // ui is dead from here on
	    renderer.Render(data)
	}

The *UI handle belongs to one frame. Using it after Render panics with
ErrFrameEnded. The theme is fixed once the first frame starts; SetTheme
returns ErrThemeLocked afterwards.

# Coordinates

Layout happens in logical units. IO.DisplayFramebufferScale maps them to
framebuffer pixels. Fonts are rasterized at physical size and drawn with
IO.FontGlobalScale, which keeps text sharp on HiDPI displays.

# Fonts

FontAtlas rasterizes an ordered list of FontSource values into one alpha
texture. A code point is taken from the first source that has it, so a
large TrueType face can be followed by the built-in 7x13 face as a
fallback. Until the atlas is built, text still lays out with 7x13 metrics
but draws nothing.

# Widget IDs

IDs are hashed from labels inside the current PushID scope. Everything
after "##" in a label is used for the ID and hidden from display:

	ui.Button("Remove##3")

# Keyboard Shortcuts

InputText:

	Left/Right       Move cursor (Shift extends selection)
	Home/End         Jump to start/end (Shift extends selection)
	Ctrl+A           Select all
	Ctrl+C/X/V       Copy, cut, paste through the Context clipboard
	Backspace/Delete Delete before/after cursor, or the selection
	Enter/Escape     Stop editing

ComboBox (while open):

	Up/Down          Move highlight
	Enter            Select highlighted item
	Escape           Close
	Mouse Wheel      Scroll long lists
*/
package gui

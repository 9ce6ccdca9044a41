package gui_test

import (
	"testing"

	"github.com/talanapp/talan"
)

// scrollRig draws a 200x50 region holding ten text lines and a button,
// and records where things landed.
type scrollRig struct {
	opts    []gui.Option
	first   gui.Rect
	button  gui.Rect
	after   gui.Rect
	pressed bool
	scrollY float32
}

func (r *scrollRig) body(ui *gui.UI) {
	opts := append([]gui.Option{gui.WithWidth(200)}, r.opts...)
	ui.Scrollable("list", 50, opts...)(func() {
		for i := range 10 {
			ui.Text("line")
			if i == 0 {
				r.first = ui.LastItemRect()
			}
		}
		r.pressed = ui.Button("Go")
		r.button = ui.LastItemRect()
	})
	r.scrollY = ui.ScrollY("list")
	ui.Text("after")
	r.after = ui.LastItemRect()
}

func wheel(dy float32) func(*gui.InputState) {
	return func(in *gui.InputState) {
		in.SetMousePos(20, 20)
		in.AddMouseWheel(0, dy)
	}
}

func TestScrollableLayout(t *testing.T) {
	ctx := gui.NewContext()
	r := &scrollRig{}
	frame(ctx, nil, r.body)

	if r.first.X != 8 || r.first.Y != 8 {
		t.Errorf("first line at %v, want (8,8)", r.first)
	}
	// Ten 13px lines and a 19px button, 4px apart.
	if r.button.Y != 8+10*17 {
		t.Errorf("button Y = %v, want %v", r.button.Y, 8+10*17)
	}
	if r.after.Y != 8+50+4 {
		t.Errorf("item after the region at Y = %v, want 62", r.after.Y)
	}
	state := gui.GetState(ctx, ctx.GetID("list"), gui.ScrollableState{})
	if state.ContentHeight != 10*17+19 || state.ViewHeight != 50 {
		t.Errorf("content %v view %v, want 189 and 50", state.ContentHeight, state.ViewHeight)
	}
}

func TestScrollableWheel(t *testing.T) {
	ctx := gui.NewContext()
	r := &scrollRig{}
	frame(ctx, nil, r.body)

	frame(ctx, wheel(-1), r.body)
	if r.scrollY != 30 {
		t.Fatalf("ScrollY after one notch = %v, want 30", r.scrollY)
	}
	frame(ctx, nil, r.body)
	if r.first.Y != 8-30 {
		t.Errorf("first line at Y = %v, want -22", r.first.Y)
	}

	frame(ctx, wheel(-20), r.body)
	if r.scrollY != 189-50 {
		t.Errorf("ScrollY = %v, want clamped to 139", r.scrollY)
	}
	frame(ctx, wheel(50), r.body)
	if r.scrollY != 0 {
		t.Errorf("ScrollY = %v, want clamped to 0", r.scrollY)
	}
	if !ctx.IO().WantCaptureMouse {
		t.Error("hovered region should capture the mouse")
	}
}

func TestScrollableClipsInput(t *testing.T) {
	ctx := gui.NewContext()
	r := &scrollRig{}
	frame(ctx, nil, r.body)

	// The button is laid out below the visible part of the region.
	frame(ctx, clickAt(gui.Vec2{X: r.button.X + 4, Y: r.button.Y + 4}), r.body)
	if r.pressed {
		t.Error("button outside the viewport took a click")
	}

	frame(ctx, func(in *gui.InputState) {
		releaseMouse(in)
		in.SetMousePos(20, 20)
		pressKey(gui.KeyEnd)(in)
	}, r.body)
	if r.scrollY != 139 {
		t.Fatalf("End: ScrollY = %v, want 139", r.scrollY)
	}
	frame(ctx, nil, r.body)
	if r.button.Y != 8+170-139 {
		t.Fatalf("button Y after scrolling = %v, want 39", r.button.Y)
	}
	frame(ctx, clickAt(gui.Vec2{X: r.button.X + 4, Y: r.button.Y + 4}), r.body)
	if !r.pressed {
		t.Error("visible button did not take the click")
	}
}

func TestScrollableKeys(t *testing.T) {
	ctx := gui.NewContext()
	r := &scrollRig{}
	frame(ctx, nil, r.body)

	press := func(k gui.Key) func(*gui.InputState) {
		return func(in *gui.InputState) {
			in.SetMousePos(20, 20)
			pressKey(k)(in)
		}
	}
	frame(ctx, press(gui.KeyPageDown), r.body)
	if r.scrollY != 40 {
		t.Errorf("PageDown: ScrollY = %v, want 40", r.scrollY)
	}
	frame(ctx, press(gui.KeyPageUp), r.body)
	if r.scrollY != 0 {
		t.Errorf("PageUp: ScrollY = %v, want 0", r.scrollY)
	}

	// Keys need the mouse over the region.
	frame(ctx, func(in *gui.InputState) {
		in.SetMousePos(600, 600)
		pressKey(gui.KeyEnd)(in)
	}, r.body)
	if r.scrollY != 0 {
		t.Errorf("End away from the region scrolled to %v", r.scrollY)
	}
}

func TestScrollableScrollbar(t *testing.T) {
	ctx := gui.NewContext()
	r := &scrollRig{}
	frame(ctx, nil, r.body)

	// Content overflows, so the second frame reserves the bar.
	data := frame(ctx, nil, r.body)
	th := ctx.Theme()
	if !hasColor(data, th.Color(gui.StyleColorScrollbarBg)) || !hasColor(data, th.Color(gui.StyleColorScrollbarGrab)) {
		t.Fatal("scrollbar not drawn")
	}
	if got := r.first.X; got != 8 {
		t.Errorf("content X = %v, want 8", got)
	}

	// Bar spans x 194..208. The 20px thumb starts at the top of a 30px track.
	barX := float32(8 + 200 - 14 + 7)
	data = frame(ctx, clickAt(gui.Vec2{X: barX, Y: 15}), r.body)
	if !hasColor(data, th.Color(gui.StyleColorScrollbarGrabActive)) {
		t.Error("dragged thumb not drawn active")
	}
	frame(ctx, func(in *gui.InputState) { in.SetMousePos(barX, 30) }, r.body)
	if want := float32(15) * 139 / 30; r.scrollY != want {
		t.Errorf("drag: ScrollY = %v, want %v", r.scrollY, want)
	}
	frame(ctx, releaseMouse, r.body)
	state := gui.GetState(ctx, ctx.GetID("list"), gui.ScrollableState{})
	if state.Dragging {
		t.Error("still dragging after release")
	}

	// Clicking the track above the thumb pages up by one viewport.
	frame(ctx, clickAt(gui.Vec2{X: barX, Y: 10}), r.body)
	if want := float32(69.5 - 50); r.scrollY != want {
		t.Errorf("track click: ScrollY = %v, want %v", r.scrollY, want)
	}
}

func TestScrollableScrollbarHidden(t *testing.T) {
	ctx := gui.NewContext()
	r := &scrollRig{opts: []gui.Option{gui.HideScrollbar()}}
	frame(ctx, nil, r.body)
	data := frame(ctx, nil, r.body)
	th := ctx.Theme()
	if hasColor(data, th.Color(gui.StyleColorScrollbarBg)) {
		t.Error("hidden scrollbar was drawn")
	}
}

func TestScrollableScrollbarLeft(t *testing.T) {
	ctx := gui.NewContext()
	r := &scrollRig{opts: []gui.Option{gui.ShowScrollbar(true), gui.ScrollbarPosition(gui.ScrollbarLeft)}}
	frame(ctx, nil, r.body)
	if r.first.X != 8+14 {
		t.Errorf("content X = %v, want 22 with the bar on the left", r.first.X)
	}
}

func TestEnsureScrollVisible(t *testing.T) {
	ctx := gui.NewContext()
	r := &scrollRig{}
	frame(ctx, nil, r.body)

	frame(ctx, nil, func(ui *gui.UI) {
		ui.EnsureScrollVisible("list", 150, 13)
		r.body(ui)
	})
	if r.scrollY != 150+13-50 {
		t.Errorf("ScrollY = %v, want 113", r.scrollY)
	}

	frame(ctx, nil, func(ui *gui.UI) {
		ui.EnsureScrollVisible("list", 20, 13)
		r.body(ui)
	})
	if r.scrollY != 7 {
		t.Errorf("ScrollY = %v, want 7", r.scrollY)
	}
}

func TestScrollableComboListEscapesClip(t *testing.T) {
	ctx := gui.NewContext()
	selected := 0
	var header gui.Rect
	body := func(ui *gui.UI) {
		ui.Scrollable("box", 30, gui.WithWidth(200))(func() {
			ui.ComboBox("Job", &selected, jobs)
			header = ui.LastItemRect()
		})
	}
	frame(ctx, nil, body)
	frame(ctx, clickAt(gui.Vec2{X: header.X + 5, Y: header.Y + 5}), body)

	// Item 1 lies below the 30px viewport.
	itemH := float32(13 + 4)
	frame(ctx, clickAt(gui.Vec2{X: header.X + 5, Y: header.Y + header.H + itemH*1.5}), body)
	if selected != 1 {
		t.Errorf("selected = %d, want 1", selected)
	}
}

func hasColor(data *gui.DrawData, c uint32) bool {
	for _, dl := range data.Lists {
		for _, v := range dl.VtxBuffer {
			if v.Color == c {
				return true
			}
		}
	}
	return false
}

package gui

// DrawData is the output of one frame: draw lists in back-to-front order.
// It is only valid until the next Context.NewFrame, which recycles the lists.
type DrawData struct {
	Lists []*DrawList

	// DisplayPos is the top-left of the viewport in logical units.
	DisplayPos Vec2
	// DisplaySize is the viewport size in logical units.
	DisplaySize Vec2
	// FramebufferScale converts logical units to framebuffer pixels.
	FramebufferScale Vec2
}

// TotalVtxCount returns the number of vertices across all lists.
func (d *DrawData) TotalVtxCount() int {
	n := 0
	for _, dl := range d.Lists {
		n += len(dl.VtxBuffer)
	}
	return n
}

// TotalIdxCount returns the number of indices across all lists.
func (d *DrawData) TotalIdxCount() int {
	n := 0
	for _, dl := range d.Lists {
		n += len(dl.IdxBuffer)
	}
	return n
}

// FramebufferSize returns the viewport size in framebuffer pixels.
func (d *DrawData) FramebufferSize() (w, h int) {
	return int(d.DisplaySize.X * d.FramebufferScale.X), int(d.DisplaySize.Y * d.FramebufferScale.Y)
}

package gui

import (
	"math"
	"sync"
)

// drawListPool recycles DrawList buffers between frames.
// Every frame rebuilds its lists from scratch, so the backing arrays are
// the only thing worth keeping.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for one layer of a frame.
// Primitives are batched by texture and clip rectangle.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data, relative to each command's VertexOffset

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // Vertex offset for current command
	idxCmdOffset uint32 // Index offset for current command
	finalized    bool
}

// Clear resets the DrawList for a new frame, retaining capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
	dl.finalized = false
}

// PushClipRect pushes a new clip rectangle onto the stack.
// The rectangle is intersected with the current one.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	cur := dl.currentClip
	dl.currentClip = [4]float32{maxf(x1, cur[0]), maxf(y1, cur[1]), minf(x2, cur[2]), minf(y2, cur[3])}
	dl.splitDraw()
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// ClipRect returns the active clip rectangle.
func (dl *DrawList) ClipRect() [4]float32 {
	return dl.currentClip
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the index of the first one
// relative to the current command.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	// uint16 indices: start a new command before the relative index overflows.
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > math.MaxUint16 {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *DrawList) addQuad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.addQuad(x, y, x+w, y+h, 0, 0, 0, 0, color)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 || thickness <= 0 {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line between two points as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2)
}

// AddCircleFilled draws a filled circle as a triangle fan.
// Fewer than 3 segments means 12.
func (dl *DrawList) AddCircleFilled(cx, cy, r float32, color uint32, segments int) {
	if color&0xFF000000 == 0 || r <= 0 {
		return
	}
	if segments < 3 {
		segments = 12
	}
	verts := make([]Vertex, 0, segments+1)
	verts = append(verts, Vertex{Pos: [2]float32{cx, cy}, Color: color})
	for i := range segments {
		a := 2 * math.Pi * float64(i) / float64(segments)
		verts = append(verts, Vertex{
			Pos:   [2]float32{cx + r*float32(math.Cos(a)), cy + r*float32(math.Sin(a))},
			Color: color,
		})
	}
	idx := dl.addVertices(verts...)
	for i := range segments {
		next := (i+1)%segments + 1
		dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+uint16(i+1), idx+uint16(next))
	}
}

// GlyphQuad is one positioned glyph: screen rectangle plus atlas UVs.
type GlyphQuad struct {
	X0, Y0 float32
	X1, Y1 float32
	U0, V0 float32
	U1, V1 float32
}

// AddGlyphQuads draws glyph quads sampled from the bound texture.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	for _, q := range quads {
		dl.addQuad(q.X0, q.Y0, q.X1, q.Y1, q.U0, q.V0, q.U1, q.V1, color)
	}
}

// Finalize closes the last command and drops empty ones.
// It is safe to call more than once.
func (dl *DrawList) Finalize() {
	if dl.finalized {
		return
	}
	dl.finalized = true

	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

package gui_test

import (
	"testing"

	"github.com/talanapp/talan"
)

const opaque = 0xFF00FF00

func TestDrawListAddRect(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(10, 20, 30, 40, opaque)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 || len(dl.IdxBuffer) != 6 {
		t.Fatalf("vertices=%d indices=%d, want 4 and 6", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if got := dl.VtxBuffer[2].Pos; got != [2]float32{40, 60} {
		t.Errorf("far corner = %v, want [40 60]", got)
	}
	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].ElemCount != 6 {
		t.Errorf("commands = %+v", dl.CmdBuffer)
	}
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, 0x00FFFFFF)
	dl.AddLine(0, 0, 10, 10, 0x00FFFFFF, 1)
	dl.AddTriangle(0, 0, 1, 0, 0, 1, 0)
	dl.AddRectOutline(0, 0, 10, 10, opaque, 0)
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Errorf("invisible primitives produced %d vertices and %d commands", len(dl.VtxBuffer), len(dl.CmdBuffer))
	}
}

func TestDrawListClipStack(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	outer := dl.ClipRect()
	dl.PushClipRect(10, 10, 100, 100)
	if got := dl.ClipRect(); got != [4]float32{10, 10, 100, 100} {
		t.Errorf("first clip = %v", got)
	}
	dl.PushClipRect(50, 0, 200, 50)
	if got := dl.ClipRect(); got != [4]float32{50, 10, 100, 50} {
		t.Errorf("nested clip = %v, want intersection [50 10 100 50]", got)
	}
	dl.PopClipRect()
	dl.PopClipRect()
	dl.PopClipRect() // extra pop is ignored
	if got := dl.ClipRect(); got != outer {
		t.Errorf("clip after pops = %v, want %v", got, outer)
	}
}

func TestDrawListCommandSplits(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, opaque)
	dl.PushClipRect(0, 0, 5, 5)
	dl.AddRect(0, 0, 10, 10, opaque)
	dl.PopClipRect()
	dl.SetTexture(9)
	dl.AddGlyphQuads([]gui.GlyphQuad{{X1: 1, Y1: 1}, {X0: 2, X1: 3, Y1: 1}}, opaque)
	dl.SetTexture(0)
	dl.Finalize()
	dl.Finalize()

	cmds := dl.CmdBuffer
	if len(cmds) != 3 {
		t.Fatalf("commands = %d, want 3 (empty ones dropped)", len(cmds))
	}
	if cmds[1].ClipRect != [4]float32{0, 0, 5, 5} {
		t.Errorf("second command clip = %v", cmds[1].ClipRect)
	}
	if cmds[1].VertexOffset != 4 || cmds[1].IndexOffset != 6 {
		t.Errorf("second command offsets = %d/%d, want 4/6", cmds[1].VertexOffset, cmds[1].IndexOffset)
	}
	if cmds[2].TextureID != 9 || cmds[2].ElemCount != 12 {
		t.Errorf("glyph command texture=%d elems=%d, want 9 and 12", cmds[2].TextureID, cmds[2].ElemCount)
	}
	// Indices restart at zero for every command.
	if dl.IdxBuffer[6] != 0 || dl.IdxBuffer[12] != 0 || dl.IdxBuffer[18] != 4 {
		t.Errorf("indices not relative to command: %v", dl.IdxBuffer)
	}
}

func TestDrawListOutline(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRectOutline(0, 0, 20, 10, opaque, 1)
	dl.AddTriangle(0, 0, 4, 0, 0, 4, opaque)
	dl.AddLine(0, 0, 10, 0, opaque, 2)
	if got := len(dl.VtxBuffer); got != 16+3+4 {
		t.Errorf("vertices = %d, want 23", got)
	}
	if got := len(dl.IdxBuffer); got != 24+3+6 {
		t.Errorf("indices = %d, want 33", got)
	}
	// A horizontal line of thickness 2 spans y in [-1, 1].
	line := dl.VtxBuffer[19:23]
	if line[0].Pos[1] != 1 || line[3].Pos[1] != -1 {
		t.Errorf("line quad = %v", line)
	}
}

func TestAcquireDrawListIsCleared(t *testing.T) {
	dl := gui.AcquireDrawList()
	dl.PushClipRect(0, 0, 1, 1)
	dl.SetTexture(4)
	dl.AddRect(0, 0, 1, 1, opaque)
	dl.Finalize()
	gui.ReleaseDrawList(dl)
	gui.ReleaseDrawList(nil)

	next := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(next)
	if len(next.VtxBuffer) != 0 || len(next.IdxBuffer) != 0 || len(next.CmdBuffer) != 0 {
		t.Fatal("pooled list not cleared")
	}
	next.AddRect(0, 0, 1, 1, opaque)
	next.Finalize()
	if cmd := next.CmdBuffer[0]; cmd.TextureID != 0 || cmd.ClipRect[2] != 1e9 {
		t.Errorf("pooled list kept texture or clip: %+v", cmd)
	}
}

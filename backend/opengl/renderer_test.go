package opengl

import (
	"math"
	"testing"

	"github.com/talanapp/talan"
)

func TestScissorRect(t *testing.T) {
	tests := []struct {
		name       string
		clip       [4]float32
		scale      gui.Vec2
		x, y, w, h int32
		ok         bool
	}{
		{
			name:  "unit scale flips y",
			clip:  [4]float32{10, 20, 110, 70},
			scale: gui.Vec2{X: 1, Y: 1},
			x:     10, y: 768 - 70, w: 100, h: 50, ok: true,
		},
		{
			name:  "scaled to framebuffer pixels",
			clip:  [4]float32{10, 20, 110, 70},
			scale: gui.Vec2{X: 2, Y: 2},
			x:     20, y: 768 - 140, w: 200, h: 100, ok: true,
		},
		{
			name:  "unbounded clip covers the framebuffer",
			clip:  [4]float32{-1e9, -1e9, 1e9, 1e9},
			scale: gui.Vec2{X: 1, Y: 1},
			x:     0, y: 0, w: 1024, h: 768, ok: true,
		},
		{
			name:  "offscreen clip is skipped",
			clip:  [4]float32{2000, 0, 2100, 100},
			scale: gui.Vec2{X: 1, Y: 1},
		},
		{
			name:  "empty clip is skipped",
			clip:  [4]float32{50, 50, 50, 80},
			scale: gui.Vec2{X: 1, Y: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h, ok := scissorRect(tt.clip, gui.Vec2{}, tt.scale, 1024, 768)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("scissor = (%d, %d, %d, %d), want (%d, %d, %d, %d)", x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestOrthoMatrixMapsDisplayCorners(t *testing.T) {
	m := orthoMatrix(0, 1024, 768, 0, -1, 1)
	apply := func(x, y float32) (float32, float32) {
		return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
	}

	near := func(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

	if x, y := apply(0, 0); !near(x, -1) || !near(y, 1) {
		t.Errorf("top-left -> (%v, %v), want (-1, 1)", x, y)
	}
	if x, y := apply(1024, 768); !near(x, 1) || !near(y, -1) {
		t.Errorf("bottom-right -> (%v, %v), want (1, -1)", x, y)
	}
}

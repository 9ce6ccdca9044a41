// Package opengl runs the UI on GLFW with an OpenGL 4.1 core renderer.
//
// All functions must be called from the main OS thread; lock it with
// runtime.LockOSThread in an init function of package main.
package opengl

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/talanapp/talan"
)

// ErrAtlasNotBuilt is returned by NewRenderer for an unbuilt font atlas.
var ErrAtlasNotBuilt = errors.New("opengl: font atlas not built")

// Renderer draws gui.DrawData with OpenGL. It implements app.Renderer.
type Renderer struct {
	shader    uint32
	vao, vbo  uint32
	ebo       uint32
	fontTex   uint32
	projLoc   int32
	texLoc    int32
	useTexLoc int32
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Fragment shader source. The font atlas is single channel: R is coverage.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D fontTexture;
uniform bool useTexture;

void main() {
    if (useTexture) {
        FragColor = vec4(Color.rgb, Color.a * texture(fontTexture, TexCoord).r);
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// NewRenderer compiles the shaders, creates the vertex buffers and uploads
// the built font atlas. The texture handle is stored on the atlas.
func NewRenderer(atlas *gui.FontAtlas) (*Renderer, error) {
	if !atlas.Built() {
		return nil, ErrAtlasNotBuilt
	}
	r := &Renderer{}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("opengl: create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("fontTexture\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats) + Color (1 uint32)
	stride := int32(unsafe.Sizeof(gui.Vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(gui.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	// Color attribute (normalized uint8x4)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(gui.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	r.fontTex = uploadAtlas(atlas)
	atlas.SetTextureID(r.fontTex)

	if err := glError("create renderer"); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// FontTextureID returns the OpenGL texture ID of the font atlas.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex
}

// ReloadAtlas replaces the font texture with one built from atlas.
func (r *Renderer) ReloadAtlas(atlas *gui.FontAtlas) error {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	r.fontTex = uploadAtlas(atlas)
	atlas.SetTextureID(r.fontTex)
	return glError("reload font atlas")
}

// Render draws every list in data. Nothing is drawn for an empty or
// minimized viewport.
func (r *Renderer) Render(data *gui.DrawData) error {
	fbW, fbH := data.FramebufferSize()
	if fbW <= 0 || fbH <= 0 || data.TotalVtxCount() == 0 {
		return nil
	}

	// Save GL state
	var lastProgram, lastTexture, lastVAO int32
	var lastBlendSrc, lastBlendDst int32
	var lastScissorBox, lastViewport [4]int32
	var blendEnabled, depthEnabled, cullEnabled, scissorEnabled bool

	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &lastVAO)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	gl.GetIntegerv(gl.VIEWPORT, &lastViewport[0])
	blendEnabled = gl.IsEnabled(gl.BLEND)
	depthEnabled = gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled = gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled = gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, int32(fbW), int32(fbH))

	gl.UseProgram(r.shader)

	pos, size := data.DisplayPos, data.DisplaySize
	proj := orthoMatrix(pos.X, pos.X+size.X, pos.Y+size.Y, pos.Y, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)
	gl.BindVertexArray(r.vao)

	for _, dl := range data.Lists {
		if len(dl.VtxBuffer) == 0 {
			continue
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(gui.Vertex{})),
			gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)

		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
			gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

		for _, cmd := range dl.CmdBuffer {
			if cmd.ElemCount == 0 {
				continue
			}
			x, y, w, h, ok := scissorRect(cmd.ClipRect, pos, data.FramebufferScale, fbW, fbH)
			if !ok {
				continue
			}
			gl.Scissor(x, y, w, h)

			if cmd.TextureID != 0 {
				gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
				gl.Uniform1i(r.useTexLoc, 1)
			} else {
				gl.Uniform1i(r.useTexLoc, 0)
			}

			gl.DrawElementsBaseVertexWithOffset(
				gl.TRIANGLES,
				int32(cmd.ElemCount),
				gl.UNSIGNED_SHORT,
				uintptr(cmd.IndexOffset)*2,
				int32(cmd.VertexOffset),
			)
		}
	}

	// Restore GL state
	gl.UseProgram(uint32(lastProgram))
	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
	gl.BindVertexArray(uint32(lastVAO))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))
	setEnabled(gl.BLEND, blendEnabled)
	setEnabled(gl.DEPTH_TEST, depthEnabled)
	setEnabled(gl.CULL_FACE, cullEnabled)
	setEnabled(gl.SCISSOR_TEST, scissorEnabled)
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])
	gl.Viewport(lastViewport[0], lastViewport[1], lastViewport[2], lastViewport[3])

	return glError("render")
}

// Close releases OpenGL resources.
func (r *Renderer) Close() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
		r.fontTex = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
		r.shader = 0
	}
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// scissorRect converts a clip rectangle in logical units to a GL scissor
// box in framebuffer pixels, with the origin at the bottom left.
func scissorRect(clip [4]float32, displayPos, scale gui.Vec2, fbW, fbH int) (x, y, w, h int32, ok bool) {
	x0 := clampPx((clip[0]-displayPos.X)*scale.X, fbW)
	y0 := clampPx((clip[1]-displayPos.Y)*scale.Y, fbH)
	x1 := clampPx((clip[2]-displayPos.X)*scale.X, fbW)
	y1 := clampPx((clip[3]-displayPos.Y)*scale.Y, fbH)
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return int32(x0), int32(float32(fbH) - y1), int32(x1 - x0), int32(y1 - y0), true
}

func clampPx(v float32, limit int) float32 {
	return min(max(v, 0), float32(limit))
}

// uploadAtlas creates an R8 texture from the atlas coverage pixels.
func uploadAtlas(atlas *gui.FontAtlas) uint32 {
	pix, w, h := atlas.TexData()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}

// glError drains the GL error queue and reports the first error.
func glError(op string) error {
	first := uint32(gl.NO_ERROR)
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		if first == gl.NO_ERROR {
			first = code
		}
	}
	if first != gl.NO_ERROR {
		return fmt.Errorf("opengl: %s: GL error 0x%04x", op, first)
	}
	return nil
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	// Compile vertex shader
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(vertexShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(vertexShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("vertex shader compilation failed: %s", string(log))
	}

	// Compile fragment shader
	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(fragmentShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(fragmentShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("fragment shader compilation failed: %s", string(log))
	}

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	// Cleanup shaders (they're linked into the program now)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

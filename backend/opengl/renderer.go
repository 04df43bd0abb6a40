// Package opengl replays the command stream with OpenGL 4.1 and feeds
// GLFW input into a Context. Quads are batched into one vertex buffer
// and flushed on scissor changes, so a typical frame is a handful of
// draw calls. Text and icons come from a built-in 8x8 bitmap atlas; the
// atlas also carries a solid white cell that untextured rectangles
// sample, keeping everything in a single texture.
package opengl

import (
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/hdooley/microui"
)

// vertex layout uploaded to the GPU: position, atlas UV, packed RGBA.
type vertex struct {
	pos   [2]float32
	uv    [2]float32
	color uint32
}

// maxQuads bounds one batch; the batch flushes early when full.
const maxQuads = 16384

// Renderer owns the GL objects needed to replay a frame.
type Renderer struct {
	shader   uint32
	vao      uint32
	vbo, ebo uint32
	fontTex  uint32
	projLoc  int32
	texLoc   int32

	width  int
	height int

	vertices []vertex
	indices  []uint32
	scissor  microui.Rect
}

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

// The atlas is alpha-only: the R channel is coverage, the vertex color
// supplies RGB. Solid rects sample the white cell so coverage is 1.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D atlas;

void main() {
    FragColor = vec4(Color.rgb, Color.a * texture(atlas, TexCoord).r);
}
` + "\x00"

// NewRenderer creates the shader, vertex buffers and font atlas. An
// OpenGL 4.1 context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:    width,
		height:   height,
		vertices: make([]vertex, 0, maxQuads*4),
		indices:  make([]uint32, 0, maxQuads*6),
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("atlas\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	stride := int32(unsafe.Sizeof(vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(vertex{}.uv))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(vertex{}.color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	r.fontTex = createAtlasTexture()

	return r, nil
}

// Resize updates the viewport size used for projection and scissoring.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// TextWidth measures a string for the built-in monospace font. Assign
// it to Context.TextWidth.
func (r *Renderer) TextWidth(_ microui.Font, s string) int {
	return glyphSize * utf8.RuneCountInString(s)
}

// TextHeight reports the built-in font's line height. Assign it to
// Context.TextHeight.
func (r *Renderer) TextHeight(_ microui.Font) int {
	return glyphSize
}

// Render replays the frame produced by the last Begin/End pair. Call it
// after End, once per frame, with the GL context current.
func (r *Renderer) Render(ctx *microui.Context) {
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled := gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled := gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
	gl.Uniform1i(r.texLoc, 0)
	gl.BindVertexArray(r.vao)

	r.scissor = microui.Rect{X: 0, Y: 0, W: r.width, H: r.height}

	for it := ctx.Commands(); it.Next(); {
		switch cmd := it.Command(); cmd.Type {
		case microui.CommandClip:
			r.flush()
			r.scissor = cmd.Clip.Rect
		case microui.CommandRect:
			r.pushRect(cmd.Rect.Rect, cmd.Rect.Color)
		case microui.CommandText:
			r.pushText(cmd.Text.Str, cmd.Text.Pos, cmd.Text.Color)
		case microui.CommandIcon:
			r.pushIcon(cmd.Icon.Icon, cmd.Icon.Rect, cmd.Icon.Color)
		}
	}
	r.flush()

	gl.BindVertexArray(0)
	if !blendEnabled {
		gl.Disable(gl.BLEND)
	}
	if depthEnabled {
		gl.Enable(gl.DEPTH_TEST)
	}
	if cullEnabled {
		gl.Enable(gl.CULL_FACE)
	}
	if !scissorEnabled {
		gl.Disable(gl.SCISSOR_TEST)
	}
}

// Delete releases the GL objects.
func (r *Renderer) Delete() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

func packColor(c microui.Color) uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

func (r *Renderer) pushQuad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	if len(r.vertices) >= maxQuads*4 {
		r.flush()
	}
	base := uint32(len(r.vertices))
	r.vertices = append(r.vertices,
		vertex{pos: [2]float32{x0, y0}, uv: [2]float32{u0, v0}, color: color},
		vertex{pos: [2]float32{x1, y0}, uv: [2]float32{u1, v0}, color: color},
		vertex{pos: [2]float32{x1, y1}, uv: [2]float32{u1, v1}, color: color},
		vertex{pos: [2]float32{x0, y1}, uv: [2]float32{u0, v1}, color: color},
	)
	r.indices = append(r.indices, base, base+1, base+2, base, base+2, base+3)
}

func (r *Renderer) pushRect(rect microui.Rect, color microui.Color) {
	u0, v0, u1, v1 := cellUV(cellWhite)
	// sample the cell center so filtering never bleeds a neighbor in
	uc := (u0 + u1) / 2
	vc := (v0 + v1) / 2
	r.pushQuad(float32(rect.X), float32(rect.Y),
		float32(rect.X+rect.W), float32(rect.Y+rect.H),
		uc, vc, uc, vc, packColor(color))
}

func (r *Renderer) pushGlyph(cell int, x, y float32, color uint32) {
	u0, v0, u1, v1 := cellUV(cell)
	r.pushQuad(x, y, x+glyphSize, y+glyphSize, u0, v0, u1, v1, color)
}

func (r *Renderer) pushText(s string, pos microui.Vec2, color microui.Color) {
	c := packColor(color)
	x := float32(pos.X)
	y := float32(pos.Y)
	for _, ch := range s {
		r.pushGlyph(glyphCell(ch), x, y, c)
		x += glyphSize
	}
}

func (r *Renderer) pushIcon(icon microui.Icon, rect microui.Rect, color microui.Color) {
	var cell int
	switch icon {
	case microui.IconClose:
		cell = cellIconClose
	case microui.IconCheck:
		cell = cellIconCheck
	case microui.IconCollapsed:
		cell = cellIconCollapsed
	case microui.IconExpanded:
		cell = cellIconExpanded
	default:
		return
	}
	x := float32(rect.X + (rect.W-glyphSize)/2)
	y := float32(rect.Y + (rect.H-glyphSize)/2)
	r.pushGlyph(cell, x, y, packColor(color))
}

// flush uploads the batch and issues one draw call under the current
// scissor.
func (r *Renderer) flush() {
	if len(r.vertices) == 0 {
		return
	}

	// UI coordinates are y-down; GL scissor is y-up from the bottom.
	x := clamp32(r.scissor.X, 0, r.width)
	y := clamp32(r.scissor.Y, 0, r.height)
	x2 := clamp32(r.scissor.X+r.scissor.W, 0, r.width)
	y2 := clamp32(r.scissor.Y+r.scissor.H, 0, r.height)
	gl.Scissor(int32(x), int32(r.height-y2), int32(x2-x), int32(y2-y))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.vertices)*int(unsafe.Sizeof(vertex{})),
		gl.Ptr(r.vertices), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(r.indices)*4,
		gl.Ptr(r.indices), gl.STREAM_DRAW)

	gl.DrawElements(gl.TRIANGLES, int32(len(r.indices)), gl.UNSIGNED_INT, nil)

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

func clamp32(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func createAtlasTexture() uint32 {
	data := buildAtlas()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, atlasWidth, atlasHeight, 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	compile := func(kind uint32, source string) (uint32, error) {
		shader := gl.CreateShader(kind)
		csource, free := gl.Strs(source)
		gl.ShaderSource(shader, 1, csource, nil)
		free()
		gl.CompileShader(shader)

		var status int32
		gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
		if status == gl.FALSE {
			var logLength int32
			gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
			log := make([]byte, logLength+1)
			gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
			return 0, fmt.Errorf("shader compilation failed: %s", string(log))
		}
		return shader, nil
	}

	vertexShader, err := compile(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compile(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

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

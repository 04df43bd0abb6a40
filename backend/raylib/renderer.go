// Package raylib replays the command stream with raylib's immediate
// drawing calls and polls raylib input into a Context. It is the short
// path to a running UI: no shader or buffer management, one drawing
// call per command, scissor mode for clipping.
package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/hdooley/microui"
)

// scrollSpeed converts one wheel notch into scroll pixels.
const scrollSpeed = 30

// Renderer draws a Context's command stream with raylib and uses
// raylib's default font for text.
type Renderer struct {
	fontSize int32
}

// New returns a renderer drawing text at the given font size.
func New(fontSize int) *Renderer {
	return &Renderer{fontSize: int32(fontSize)}
}

// Bind assigns the renderer's text measurement callbacks to ctx.
func (r *Renderer) Bind(ctx *microui.Context) {
	ctx.TextWidth = r.TextWidth
	ctx.TextHeight = r.TextHeight
}

// TextWidth measures a string with raylib's default font.
func (r *Renderer) TextWidth(_ microui.Font, s string) int {
	return int(rl.MeasureText(s, r.fontSize))
}

// TextHeight reports the line height.
func (r *Renderer) TextHeight(_ microui.Font) int {
	return int(r.fontSize)
}

var mouseButtons = []struct {
	rl rl.MouseButton
	mu microui.Mouse
}{
	{rl.MouseButtonLeft, microui.MouseLeft},
	{rl.MouseButtonRight, microui.MouseRight},
	{rl.MouseButtonMiddle, microui.MouseMiddle},
}

var keys = []struct {
	rl int32
	mu microui.Key
}{
	{rl.KeyLeftShift, microui.KeyShift},
	{rl.KeyRightShift, microui.KeyShift},
	{rl.KeyLeftControl, microui.KeyCtrl},
	{rl.KeyRightControl, microui.KeyCtrl},
	{rl.KeyLeftAlt, microui.KeyAlt},
	{rl.KeyRightAlt, microui.KeyAlt},
	{rl.KeyBackspace, microui.KeyBackspace},
	{rl.KeyEnter, microui.KeyReturn},
	{rl.KeyKpEnter, microui.KeyReturn},
}

// ProcessInput polls raylib's input state into ctx. Call once per
// frame, before Begin.
func (r *Renderer) ProcessInput(ctx *microui.Context) {
	pos := rl.GetMousePosition()
	x, y := int(pos.X), int(pos.Y)
	ctx.InputMouseMove(x, y)

	for _, b := range mouseButtons {
		if rl.IsMouseButtonPressed(b.rl) {
			ctx.InputMouseDown(x, y, b.mu)
		}
		if rl.IsMouseButtonReleased(b.rl) {
			ctx.InputMouseUp(x, y, b.mu)
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		ctx.InputScroll(0, int(-wheel*scrollSpeed))
	}

	for _, k := range keys {
		if rl.IsKeyPressed(k.rl) {
			ctx.InputKeyDown(k.mu)
		}
		if rl.IsKeyReleased(k.rl) {
			ctx.InputKeyUp(k.mu)
		}
	}

	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		ctx.InputText(string(ch))
	}
}

// Render replays the frame. Call between rl.BeginDrawing and
// rl.EndDrawing, after End.
func (r *Renderer) Render(ctx *microui.Context) {
	scissored := false
	for it := ctx.Commands(); it.Next(); {
		switch cmd := it.Command(); cmd.Type {
		case microui.CommandClip:
			if scissored {
				rl.EndScissorMode()
			}
			c := cmd.Clip.Rect
			rl.BeginScissorMode(int32(c.X), int32(c.Y), int32(c.W), int32(c.H))
			scissored = true
		case microui.CommandRect:
			rc := cmd.Rect.Rect
			rl.DrawRectangle(int32(rc.X), int32(rc.Y), int32(rc.W), int32(rc.H),
				color(cmd.Rect.Color))
		case microui.CommandText:
			rl.DrawText(cmd.Text.Str, int32(cmd.Text.Pos.X), int32(cmd.Text.Pos.Y),
				r.fontSize, color(cmd.Text.Color))
		case microui.CommandIcon:
			r.drawIcon(cmd.Icon.Icon, cmd.Icon.Rect, color(cmd.Icon.Color))
		}
	}
	if scissored {
		rl.EndScissorMode()
	}
}

// drawIcon renders the built-in glyphs as text; crude but legible at UI
// sizes.
func (r *Renderer) drawIcon(icon microui.Icon, rect microui.Rect, c rl.Color) {
	var s string
	switch icon {
	case microui.IconClose:
		s = "x"
	case microui.IconCheck:
		s = "*"
	case microui.IconCollapsed:
		s = ">"
	case microui.IconExpanded:
		s = "v"
	default:
		return
	}
	w := rl.MeasureText(s, r.fontSize)
	x := int32(rect.X) + (int32(rect.W)-w)/2
	y := int32(rect.Y) + (int32(rect.H)-r.fontSize)/2
	rl.DrawText(s, x, y, r.fontSize, c)
}

func color(c microui.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

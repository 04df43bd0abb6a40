package microui

// Draw primitives. Every primitive consults the active clip rectangle
// before emitting commands: fully clipped draws cost nothing, partially
// clipped draws are bracketed with explicit Clip commands so renderers
// that cannot clip text or icons geometrically still get pixel-exact
// output from their scissor.

// unclippedRect is "no clipping": large enough to contain any on-screen
// geometry without overflowing intersection arithmetic.
var unclippedRect = Rect{X: 0, Y: 0, W: 0x1000000, H: 0x1000000}

const (
	clipNone = iota // rect fully visible
	clipPart        // rect straddles the clip boundary
	clipAll         // rect fully clipped away
)

// PushClipRect intersects rect with the current clip rectangle and makes
// the result current.
func (ctx *Context) PushClipRect(rect Rect) {
	ctx.clipStack.push(rect.Intersect(ctx.ClipRect()))
}

// PopClipRect restores the clip rectangle active before the matching
// PushClipRect.
func (ctx *Context) PopClipRect() {
	ctx.clipStack.pop()
}

// ClipRect returns the current clip rectangle.
func (ctx *Context) ClipRect() Rect {
	return ctx.clipStack.peek()
}

// checkClip classifies r against the current clip rectangle.
func (ctx *Context) checkClip(r Rect) int {
	cr := ctx.ClipRect()
	if r.X > cr.X+cr.W || r.X+r.W < cr.X ||
		r.Y > cr.Y+cr.H || r.Y+r.H < cr.Y {
		return clipAll
	}
	if r.X >= cr.X && r.X+r.W <= cr.X+cr.W &&
		r.Y >= cr.Y && r.Y+r.H <= cr.Y+cr.H {
		return clipNone
	}
	return clipPart
}

// SetClip emits a command setting the renderer's scissor to rect.
func (ctx *Context) SetClip(rect Rect) {
	cmd := ctx.pushCommand(CommandClip)
	cmd.Clip.Rect = rect
}

// DrawRect fills rect with color, pre-clipped against the current clip
// rectangle so no Clip command is needed.
func (ctx *Context) DrawRect(rect Rect, color Color) {
	rect = rect.Intersect(ctx.ClipRect())
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	cmd := ctx.pushCommand(CommandRect)
	cmd.Rect.Rect = rect
	cmd.Rect.Color = color
}

// DrawBox outlines rect with a 1px border in color.
func (ctx *Context) DrawBox(rect Rect, color Color) {
	ctx.DrawRect(Rect{X: rect.X + 1, Y: rect.Y, W: rect.W - 2, H: 1}, color)
	ctx.DrawRect(Rect{X: rect.X + 1, Y: rect.Y + rect.H - 1, W: rect.W - 2, H: 1}, color)
	ctx.DrawRect(Rect{X: rect.X, Y: rect.Y, W: 1, H: rect.H}, color)
	ctx.DrawRect(Rect{X: rect.X + rect.W - 1, Y: rect.Y, W: 1, H: rect.H}, color)
}

// DrawText draws str at pos. Partially visible text is bracketed with
// Clip commands; the renderer's scissor does the fine clipping.
func (ctx *Context) DrawText(font Font, str string, pos Vec2, color Color) {
	rect := Rect{
		X: pos.X, Y: pos.Y,
		W: ctx.textWidth(font, str),
		H: ctx.textHeight(font),
	}
	clipped := ctx.checkClip(rect)
	if clipped == clipAll {
		return
	}
	if clipped == clipPart {
		ctx.SetClip(ctx.ClipRect())
	}
	cmd := ctx.pushCommand(CommandText)
	cmd.Text.Font = font
	cmd.Text.Pos = pos
	cmd.Text.Color = color
	cmd.Text.Str = str
	if clipped == clipPart {
		ctx.SetClip(unclippedRect)
	}
}

// DrawIcon draws icon centered in rect, bracketing with Clip commands
// when partially visible.
func (ctx *Context) DrawIcon(icon Icon, rect Rect, color Color) {
	clipped := ctx.checkClip(rect)
	if clipped == clipAll {
		return
	}
	if clipped == clipPart {
		ctx.SetClip(ctx.ClipRect())
	}
	cmd := ctx.pushCommand(CommandIcon)
	cmd.Icon.Icon = icon
	cmd.Icon.Rect = rect
	cmd.Icon.Color = color
	if clipped == clipPart {
		ctx.SetClip(unclippedRect)
	}
}

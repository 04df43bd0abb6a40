package microui

const (
	relativeNext = 1
	absoluteNext = 2
)

// layout is one frame of the layout stack: the cursor state for a single
// container body or column. Rects are allocated row-major from position;
// max tracks the furthest extent claimed, which becomes the owning
// container's ContentSize.
type layout struct {
	body     Rect // content area, scroll already subtracted
	next     Rect // one-shot rect set by SetLayoutNext
	position Vec2 // cursor, relative to body
	size     Vec2 // current default item size
	max      Vec2 // furthest extent, in body coordinates

	widths    [maxWidths]int
	items     int // columns in the current row
	itemIndex int // next column to fill
	nextRow   int // y where the next row starts
	nextType  int // relativeNext/absoluteNext, 0 when unset
	indent    int
}

func (ctx *Context) pushLayout(body Rect, scroll Vec2) {
	lay := layout{
		body: Rect{X: body.X - scroll.X, Y: body.Y - scroll.Y, W: body.W, H: body.H},
		max:  Vec2{X: -0x1000000, Y: -0x1000000},
	}
	ctx.layoutStack.push(lay)
	ctx.LayoutRow([]int{0}, 0)
}

func (ctx *Context) currentLayout() *layout {
	n := ctx.layoutStack.len()
	expect(n > 0, "currentLayout", "no layout pushed")
	return &ctx.layoutStack.items[n-1]
}

// LayoutRow starts a new row of len(widths) columns with the given item
// height. A width of 0 takes the style's default control width, a
// negative width ends that many pixels left of the body's right edge,
// and the same rules apply to height against the bottom edge. Widths nil
// keeps the previous row's column widths.
func (ctx *Context) LayoutRow(widths []int, height int) {
	lay := ctx.currentLayout()
	if widths != nil {
		expect(len(widths) <= maxWidths, "LayoutRow",
			"%d columns exceeds the maximum of %d", len(widths), maxWidths)
		copy(lay.widths[:], widths)
		lay.items = len(widths)
	}
	lay.position = Vec2{X: lay.indent, Y: lay.nextRow}
	lay.size.Y = height
	lay.itemIndex = 0
}

// layoutRowKeep rewraps to a fresh row keeping the current column widths.
func (ctx *Context) layoutRowKeep(height int) {
	lay := ctx.currentLayout()
	lay.position = Vec2{X: lay.indent, Y: lay.nextRow}
	lay.size.Y = height
	lay.itemIndex = 0
}

// LayoutWidth overrides the default item width used when a row has no
// explicit column widths.
func (ctx *Context) LayoutWidth(width int) {
	ctx.currentLayout().size.X = width
}

// LayoutHeight overrides the default item height for the current row.
func (ctx *Context) LayoutHeight(height int) {
	ctx.currentLayout().size.Y = height
}

// SetLayoutNext overrides the rect the next LayoutNext call returns.
// A relative rect is offset by the body origin and advances the cursor;
// an absolute rect is returned as-is and leaves the cursor alone.
func (ctx *Context) SetLayoutNext(r Rect, relative bool) {
	lay := ctx.currentLayout()
	lay.next = r
	if relative {
		lay.nextType = relativeNext
	} else {
		lay.nextType = absoluteNext
	}
}

// LayoutBeginColumn nests a fresh layout inside the next allocated rect,
// letting several rows stack within one column of the parent row.
func (ctx *Context) LayoutBeginColumn() {
	ctx.pushLayout(ctx.LayoutNext(), Vec2{})
}

// LayoutEndColumn pops the column and folds its cursor and extent back
// into the parent layout.
func (ctx *Context) LayoutEndColumn() {
	b := ctx.layoutStack.pop()
	a := ctx.currentLayout()
	a.position.X = maxi(a.position.X, b.position.X+b.body.X-a.body.X)
	a.nextRow = maxi(a.nextRow, b.nextRow+b.body.Y-a.body.Y)
	a.max.X = maxi(a.max.X, b.max.X)
	a.max.Y = maxi(a.max.Y, b.max.Y)
}

// LayoutNext allocates and returns the next control rect in screen
// coordinates, wrapping to a new row when the current one is full.
func (ctx *Context) LayoutNext() Rect {
	lay := ctx.currentLayout()
	style := ctx.Style
	var res Rect

	if lay.nextType != 0 {
		nextType := lay.nextType
		lay.nextType = 0
		res = lay.next
		if nextType == absoluteNext {
			ctx.lastRect = res
			return res
		}
	} else {
		if lay.itemIndex == lay.items {
			ctx.layoutRowKeep(lay.size.Y)
		}

		res.X = lay.position.X
		res.Y = lay.position.Y

		if lay.items > 0 {
			res.W = lay.widths[lay.itemIndex]
		} else {
			res.W = lay.size.X
		}
		res.H = lay.size.Y
		if res.W == 0 {
			res.W = style.Size.X + style.Padding*2
		}
		if res.H == 0 {
			res.H = style.Size.Y + style.Padding*2
		}
		if res.W < 0 {
			res.W += lay.body.W - res.X + 1
		}
		if res.H < 0 {
			res.H += lay.body.H - res.Y + 1
		}

		lay.itemIndex++
	}

	lay.position.X += res.W + style.Spacing
	lay.nextRow = maxi(lay.nextRow, res.Y+res.H+style.Spacing)

	res.X += lay.body.X
	res.Y += lay.body.Y

	lay.max.X = maxi(lay.max.X, res.X+res.W)
	lay.max.Y = maxi(lay.max.Y, res.Y+res.H)

	ctx.lastRect = res
	return res
}

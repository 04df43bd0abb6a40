package microui

// Windows, panels and popups. A window is a root container: it owns a
// span of the command buffer bracketed by jump links so End can replay
// the roots in z-order no matter the order they were declared in.

const (
	minWindowW = 96
	minWindowH = 64
)

func (ctx *Context) popContainer() {
	cnt := ctx.CurrentContainer()
	lay := ctx.currentLayout()
	cnt.ContentSize.X = lay.max.X - lay.body.X
	cnt.ContentSize.Y = lay.max.Y - lay.body.Y
	ctx.containerStack.pop()
	ctx.layoutStack.pop()
	ctx.PopID()
}

func (ctx *Context) beginRootContainer(cnt *Container) {
	ctx.containerStack.push(cnt)
	ctx.rootList.push(cnt)
	cnt.headIdx = ctx.pushJump(-1)
	// Adopt as next frame's hover root if the mouse is over this
	// container and nothing above it has claimed the spot.
	if cnt.Rect.Contains(ctx.mousePos) &&
		(ctx.nextHoverRoot == nil || cnt.ZIndex > ctx.nextHoverRoot.ZIndex) {
		ctx.nextHoverRoot = cnt
	}
	// Reset clipping so a root container declared inside another's
	// begin/end block is not clipped to the outer one.
	ctx.clipStack.push(unclippedRect)
}

func (ctx *Context) endRootContainer() {
	// The tail jump exits the container's span; the head jump skips it.
	// End patches both into the z-ordered chain.
	cnt := ctx.CurrentContainer()
	cnt.tailIdx = ctx.pushJump(-1)
	ctx.commands[cnt.headIdx].Jump.Dst = len(ctx.commands)
	ctx.PopClipRect()
	ctx.popContainer()
}

// scrollbar lays out one scrollbar along the vertical axis when vert is
// true, otherwise the horizontal one. body has already been shrunk to
// make room.
func (ctx *Context) scrollbar(cnt *Container, body Rect, cs Vec2, vert bool) {
	var maxscroll, bodyExtent int
	if vert {
		maxscroll = cs.Y - body.H
		bodyExtent = body.H
	} else {
		maxscroll = cs.X - body.W
		bodyExtent = body.W
	}
	if maxscroll <= 0 || bodyExtent <= 0 {
		if vert {
			cnt.Scroll.Y = 0
		} else {
			cnt.Scroll.X = 0
		}
		return
	}

	var id ID
	base := body
	if vert {
		id = ctx.GetID("!scrollbary")
		base.X = body.X + body.W
		base.W = ctx.Style.ScrollbarSize
	} else {
		id = ctx.GetID("!scrollbarx")
		base.Y = body.Y + body.H
		base.H = ctx.Style.ScrollbarSize
	}

	ctx.updateControl(id, base, 0)
	if ctx.focus == id && ctx.mouseDown == MouseLeft {
		if vert {
			cnt.Scroll.Y += ctx.mouseDelta.Y * cs.Y / base.H
		} else {
			cnt.Scroll.X += ctx.mouseDelta.X * cs.X / base.W
		}
	}
	if vert {
		cnt.Scroll.Y = clampi(cnt.Scroll.Y, 0, maxscroll)
	} else {
		cnt.Scroll.X = clampi(cnt.Scroll.X, 0, maxscroll)
	}

	ctx.DrawFrame(ctx, base, ColorScrollBase)
	thumb := base
	if vert {
		thumb.H = maxi(ctx.Style.ThumbSize, base.H*body.H/cs.Y)
		thumb.Y += cnt.Scroll.Y * (base.H - thumb.H) / maxscroll
	} else {
		thumb.W = maxi(ctx.Style.ThumbSize, base.W*body.W/cs.X)
		thumb.X += cnt.Scroll.X * (base.W - thumb.W) / maxscroll
	}
	ctx.DrawFrame(ctx, thumb, ColorScrollThumb)

	// The hovered container receives the mousewheel at End.
	if ctx.mouseOver(body) {
		ctx.scrollTarget = cnt
	}
}

func (ctx *Context) scrollbars(cnt *Container, body Rect) Rect {
	sz := ctx.Style.ScrollbarSize
	cs := cnt.ContentSize
	cs.X += ctx.Style.Padding * 2
	cs.Y += ctx.Style.Padding * 2
	ctx.PushClipRect(body)
	if cs.Y > cnt.Body.H {
		body.W -= sz
	}
	if cs.X > cnt.Body.W {
		body.H -= sz
	}
	ctx.scrollbar(cnt, body, cs, true)
	ctx.scrollbar(cnt, body, cs, false)
	ctx.PopClipRect()
	return body
}

func (ctx *Context) pushContainerBody(cnt *Container, body Rect, opt Opt) {
	if opt&OptNoScroll == 0 {
		body = ctx.scrollbars(cnt, body)
	}
	ctx.pushLayout(body.Expand(-ctx.Style.Padding), cnt.Scroll)
	cnt.Body = body
}

// BeginWindow is BeginWindowEx with default options.
func (ctx *Context) BeginWindow(title string, rect Rect) bool {
	return ctx.BeginWindowEx(title, rect, 0)
}

// BeginWindowEx opens a window. rect only positions the window the
// first time it appears; afterwards the retained, user-dragged geometry
// wins. It returns false when the window is closed, in which case the
// caller must skip its contents and must not call EndWindow.
func (ctx *Context) BeginWindowEx(title string, rect Rect, opt Opt) bool {
	id := ctx.GetID(title)
	cnt := ctx.getContainer(id, opt)
	if cnt == nil || !cnt.Open {
		return false
	}
	ctx.idStack.push(id)

	if cnt.Rect.W == 0 {
		cnt.Rect = rect
	}
	ctx.beginRootContainer(cnt)
	rect = cnt.Rect
	body := cnt.Rect

	if opt&OptNoFrame == 0 {
		ctx.DrawFrame(ctx, rect, ColorWindowBG)
	}

	if opt&OptNoTitle == 0 {
		tr := rect
		tr.H = ctx.Style.TitleHeight
		ctx.DrawFrame(ctx, tr, ColorTitleBG)

		// title text doubles as the drag handle
		{
			id := ctx.GetID("!title")
			ctx.updateControl(id, tr, opt)
			ctx.DrawControlText(title, tr, ColorTitleText, opt)
			if id == ctx.focus && ctx.mouseDown == MouseLeft {
				cnt.Rect.X += ctx.mouseDelta.X
				cnt.Rect.Y += ctx.mouseDelta.Y
			}
			body.Y += tr.H
			body.H -= tr.H
		}

		if opt&OptNoClose == 0 {
			id := ctx.GetID("!close")
			r := Rect{X: tr.X + tr.W - tr.H, Y: tr.Y, W: tr.H, H: tr.H}
			tr.W -= r.W
			ctx.DrawIcon(IconClose, r, ctx.Style.Colors[ColorTitleText])
			ctx.updateControl(id, r, opt)
			if ctx.mousePressed == MouseLeft && id == ctx.focus {
				cnt.Open = false
			}
		}
	}

	ctx.pushContainerBody(cnt, body, opt)

	if opt&OptNoResize == 0 {
		sz := ctx.Style.TitleHeight
		id := ctx.GetID("!resize")
		r := Rect{X: rect.X + rect.W - sz, Y: rect.Y + rect.H - sz, W: sz, H: sz}
		ctx.updateControl(id, r, opt)
		if id == ctx.focus && ctx.mouseDown == MouseLeft {
			cnt.Rect.W = maxi(minWindowW, cnt.Rect.W+ctx.mouseDelta.X)
			cnt.Rect.H = maxi(minWindowH, cnt.Rect.H+ctx.mouseDelta.Y)
		}
	}

	if opt&OptAutoSize != 0 {
		r := ctx.currentLayout().body
		cnt.Rect.W = cnt.ContentSize.X + (cnt.Rect.W - r.W)
		cnt.Rect.H = cnt.ContentSize.Y + (cnt.Rect.H - r.H)
	}

	// A popup belongs to the mouse: clicking anywhere else closes it.
	if opt&OptPopup != 0 && ctx.mousePressed != 0 && ctx.hoverRoot != cnt {
		cnt.Open = false
	}

	ctx.PushClipRect(cnt.Body)
	return true
}

// EndWindow closes the window opened by a BeginWindow that returned
// true.
func (ctx *Context) EndWindow() {
	ctx.PopClipRect()
	ctx.endRootContainer()
}

// OpenPopup opens the named popup at the mouse position and raises it.
// Call it from the triggering event, then declare the popup with
// BeginPopup each frame.
func (ctx *Context) OpenPopup(name string) {
	cnt := ctx.GetContainer(name)
	// hover root too, so the popup does not close itself this frame
	ctx.hoverRoot = cnt
	ctx.nextHoverRoot = cnt
	cnt.Rect = Rect{X: ctx.mousePos.X, Y: ctx.mousePos.Y, W: 1, H: 1}
	cnt.Open = true
	ctx.BringToFront(cnt)
}

// BeginPopup declares the named popup: an auto-sized, titleless window
// that closes when the mouse is pressed elsewhere. Returns false while
// the popup is closed.
func (ctx *Context) BeginPopup(name string) bool {
	opt := OptPopup | OptAutoSize | OptNoResize | OptNoScroll |
		OptNoTitle | OptClosed
	return ctx.BeginWindowEx(name, Rect{}, opt)
}

// EndPopup closes the popup opened by a BeginPopup that returned true.
func (ctx *Context) EndPopup() {
	ctx.EndWindow()
}

// BeginPanel is BeginPanelEx with default options.
func (ctx *Context) BeginPanel(name string) {
	ctx.BeginPanelEx(name, 0)
}

// BeginPanelEx opens a scrollable sub-region inside the current
// container, sized by the enclosing layout. Unlike a window it always
// opens and has no return value to check.
func (ctx *Context) BeginPanelEx(name string, opt Opt) {
	ctx.PushID(name)
	cnt := ctx.getContainer(ctx.lastID, opt)
	cnt.Rect = ctx.LayoutNext()
	if opt&OptNoFrame == 0 {
		ctx.DrawFrame(ctx, cnt.Rect, ColorPanelBG)
	}
	ctx.containerStack.push(cnt)
	ctx.pushContainerBody(cnt, cnt.Rect, opt)
	ctx.PushClipRect(cnt.Body)
}

// EndPanel closes the panel opened by the matching BeginPanel.
func (ctx *Context) EndPanel() {
	ctx.PopClipRect()
	ctx.popContainer()
}

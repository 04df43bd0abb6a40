package microui

// Container is the retained state of a window, panel or popup: the only
// geometry that survives across frames. Containers live in a fixed LRU
// pool keyed by id, so one that is not declared for long enough may be
// recycled and comes back with fresh state.
type Container struct {
	// Rect is the container's outer rectangle in screen space.
	Rect Rect
	// Body is the content area: Rect minus title bar and scrollbars.
	Body Rect
	// ContentSize is last frame's laid-out content extent, measured by
	// the layout engine and consumed by the scrollbars.
	ContentSize Vec2
	// Scroll is the current scroll offset.
	Scroll Vec2
	// ZIndex orders root containers back-to-front.
	ZIndex int
	// Open is false once the window's close box was clicked; BeginWindow
	// then returns false until the host re-opens it.
	Open bool

	// Command-list bounds of the container's root chain, patched by
	// endRootContainer and End.
	headIdx, tailIdx int
}

// getContainer finds or creates the pooled container for id. With
// OptClosed set, a missing or closed container is not revived and nil is
// returned.
func (ctx *Context) getContainer(id ID, opt Opt) *Container {
	idx := ctx.poolGet(ctx.containerPool[:], id)
	if idx >= 0 {
		if ctx.containers[idx].Open || opt&OptClosed == 0 {
			ctx.poolUpdate(ctx.containerPool[:], idx)
		}
		return &ctx.containers[idx]
	}
	if opt&OptClosed != 0 {
		return nil
	}
	idx = ctx.poolInit(ctx.containerPool[:], id)
	cnt := &ctx.containers[idx]
	*cnt = Container{Open: true, headIdx: -1, tailIdx: -1}
	ctx.BringToFront(cnt)
	return cnt
}

// GetContainer returns the container for the window or panel with the
// given name, creating it if needed. Lets the host manipulate a window
// from outside its Begin/End pair: resize it, scroll it, or toggle Open.
func (ctx *Context) GetContainer(name string) *Container {
	return ctx.getContainer(ctx.GetID(name), 0)
}

// CurrentContainer returns the container whose Begin is innermost on the
// container stack.
func (ctx *Context) CurrentContainer() *Container {
	return ctx.containerStack.peek()
}

// BringToFront gives cnt the highest z-index, drawing it over every
// other root container from the next End on.
func (ctx *Context) BringToFront(cnt *Container) {
	ctx.lastZIndex++
	cnt.ZIndex = ctx.lastZIndex
}

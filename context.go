package microui

import "sort"

// Fixed capacities. All storage is allocated once in New; blowing a
// limit panics with a *ContractError instead of growing.
const (
	commandListSize    = 4096
	rootListSize       = 32
	containerStackSize = 32
	clipStackSize      = 32
	idStackSize        = 32
	layoutStackSize    = 16
	containerPoolSize  = 48
	treeNodePoolSize   = 48
	maxWidths          = 16
	maxTextInput       = 32
)

// Context owns the entire UI state: per-frame stacks and the command
// buffer, retained pools, input, and the style. One Context per UI; all
// methods must be called from a single goroutine, with each frame
// wrapped in one Begin/End pair.
type Context struct {
	// TextWidth and TextHeight measure text for the host's font. Both
	// must be set before the first frame that draws text.
	TextWidth  func(font Font, s string) int
	TextHeight func(font Font) int

	// DrawFrame draws the background of a control. Overridable for
	// custom chrome; the default fills the rect and borders everything
	// except title bars and scrollbars.
	DrawFrame func(ctx *Context, rect Rect, colorID ColorID)

	// Style is the active theme. Points at context-owned storage by
	// default; assign a new pointer to swap themes wholesale.
	Style *Style

	styleStorage Style

	hover        ID
	focus        ID
	lastID       ID
	lastRect     Rect
	lastZIndex   int
	updatedFocus bool
	frame        int

	hoverRoot     *Container
	nextHoverRoot *Container
	scrollTarget  *Container

	numberEditBuf string
	numberEdit    ID

	commands       []Command
	rootList       stack[*Container]
	containerStack stack[*Container]
	clipStack      stack[Rect]
	idStack        stack[ID]
	layoutStack    stack[layout]

	containers    [containerPoolSize]Container
	containerPool [containerPoolSize]poolItem
	treeNodePool  [treeNodePoolSize]poolItem

	mousePos     Vec2
	lastMousePos Vec2
	mouseDelta   Vec2
	scrollDelta  Vec2
	mouseDown    Mouse
	mousePressed Mouse
	keyDown      Key
	keyPressed   Key
	textInput    []byte
}

// New returns a ready Context with the default style. The text callbacks
// still have to be assigned by the host before the first frame.
func New() *Context {
	ctx := &Context{
		commands:       make([]Command, 0, commandListSize),
		rootList:       newStack[*Container](rootListSize),
		containerStack: newStack[*Container](containerStackSize),
		clipStack:      newStack[Rect](clipStackSize),
		idStack:        newStack[ID](idStackSize),
		layoutStack:    newStack[layout](layoutStackSize),
		textInput:      make([]byte, 0, maxTextInput),
	}
	ctx.styleStorage = DefaultStyle()
	ctx.Style = &ctx.styleStorage
	ctx.DrawFrame = drawDefaultFrame
	return ctx
}

func drawDefaultFrame(ctx *Context, rect Rect, colorID ColorID) {
	ctx.DrawRect(rect, ctx.Style.Colors[colorID])
	if colorID == ColorScrollBase || colorID == ColorScrollThumb ||
		colorID == ColorTitleBG {
		return
	}
	if ctx.Style.Colors[ColorBorder].A != 0 {
		ctx.DrawBox(rect.Expand(1), ctx.Style.Colors[ColorBorder])
	}
}

func (ctx *Context) textWidth(font Font, s string) int {
	expect(ctx.TextWidth != nil, "textWidth", "TextWidth callback not set")
	return ctx.TextWidth(font, s)
}

func (ctx *Context) textHeight(font Font) int {
	expect(ctx.TextHeight != nil, "textHeight", "TextHeight callback not set")
	return ctx.TextHeight(font)
}

// Begin starts a frame: resets the command buffer and root list, derives
// the mouse delta, and promotes the hover root computed last frame. All
// input events for the frame must be fed in before Begin.
func (ctx *Context) Begin() {
	expect(ctx.TextWidth != nil && ctx.TextHeight != nil, "Begin",
		"TextWidth and TextHeight callbacks must be set")
	ctx.commands = ctx.commands[:0]
	ctx.rootList.clear()
	ctx.scrollTarget = nil
	ctx.hoverRoot = ctx.nextHoverRoot
	ctx.nextHoverRoot = nil
	ctx.mouseDelta = ctx.mousePos.Sub(ctx.lastMousePos)
	ctx.frame++
}

// End finishes the frame: verifies every Begin* had its End*, applies
// the mousewheel to the hovered container, drops focus that no control
// renewed, raises a clicked root container, resets the one-shot input
// state, and stitches the root containers' command spans into one chain
// ordered by z-index.
func (ctx *Context) End() {
	expect(ctx.containerStack.len() == 0, "End", "container stack not empty")
	expect(ctx.clipStack.len() == 0, "End", "clip stack not empty")
	expect(ctx.idStack.len() == 0, "End", "id stack not empty")
	expect(ctx.layoutStack.len() == 0, "End", "layout stack not empty")

	if ctx.scrollTarget != nil {
		ctx.scrollTarget.Scroll.X += ctx.scrollDelta.X
		ctx.scrollTarget.Scroll.Y += ctx.scrollDelta.Y
	}

	// Focus not re-declared this frame belongs to a widget that
	// disappeared; drop it.
	if !ctx.updatedFocus {
		ctx.focus = 0
	}
	ctx.updatedFocus = false

	if ctx.mousePressed != 0 && ctx.nextHoverRoot != nil &&
		ctx.nextHoverRoot.ZIndex < ctx.lastZIndex &&
		ctx.nextHoverRoot.ZIndex >= 0 {
		logger.Debug("bring to front", "zindex", ctx.nextHoverRoot.ZIndex)
		ctx.BringToFront(ctx.nextHoverRoot)
	}

	ctx.mousePressed = 0
	ctx.keyPressed = 0
	ctx.scrollDelta = Vec2{}
	ctx.textInput = ctx.textInput[:0]
	ctx.lastMousePos = ctx.mousePos

	// Chain the root containers in ascending z-index: the buffer's
	// leading jump enters the bottom container, each tail jump hops to
	// the next, and the topmost tail exits past the end.
	roots := ctx.rootList.items
	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].ZIndex < roots[j].ZIndex
	})
	for i, cnt := range roots {
		if i == 0 {
			ctx.commands[0].Jump.Dst = cnt.headIdx + 1
		} else {
			prev := roots[i-1]
			ctx.commands[prev.tailIdx].Jump.Dst = cnt.headIdx + 1
		}
		if i == len(roots)-1 {
			ctx.commands[cnt.tailIdx].Jump.Dst = len(ctx.commands)
		}
	}
}

// SetFocus forces keyboard/mouse focus to the given id (0 clears it).
// Focus set during a frame is renewed for that frame automatically.
func (ctx *Context) SetFocus(id ID) {
	if id != ctx.focus {
		logger.Debug("focus changed", "from", ctx.focus, "to", id)
	}
	ctx.focus = id
	ctx.updatedFocus = true
}

// MouseDelta returns the mouse movement since the previous frame, for
// drag-style custom widgets.
func (ctx *Context) MouseDelta() Vec2 {
	return ctx.mouseDelta
}

// MousePos returns the current mouse position.
func (ctx *Context) MousePos() Vec2 {
	return ctx.mousePos
}

// inHoverRoot reports whether the innermost root container on the stack
// is the one the mouse hovers. Controls in windows covered by a
// higher-z window fail this test and never see the mouse.
func (ctx *Context) inHoverRoot() bool {
	for i := ctx.containerStack.len() - 1; i >= 0; i-- {
		cnt := ctx.containerStack.items[i]
		if cnt == ctx.hoverRoot {
			return true
		}
		// Only root containers own a command span; reaching one means
		// the hover root is elsewhere.
		if cnt.headIdx >= 0 {
			break
		}
	}
	return false
}

// mouseOver reports whether the mouse is over rect, inside the current
// clip rect, and inside the hovered root container.
func (ctx *Context) mouseOver(rect Rect) bool {
	return rect.Contains(ctx.mousePos) &&
		ctx.ClipRect().Contains(ctx.mousePos) &&
		ctx.inHoverRoot()
}

// updateControl is the one hover/focus arbitration policy every control
// funnels through: renew held focus, set hover while no button is down,
// grant focus on press, and clear focus on press-elsewhere or on
// release unless the control holds focus.
func (ctx *Context) updateControl(id ID, rect Rect, opt Opt) {
	mouseover := ctx.mouseOver(rect)

	if ctx.focus == id {
		ctx.updatedFocus = true
	}
	if opt&OptNoInteract != 0 {
		return
	}
	if mouseover && ctx.mouseDown == 0 {
		ctx.hover = id
	}

	if ctx.focus == id {
		if ctx.mousePressed != 0 && !mouseover {
			ctx.SetFocus(0)
		}
		if ctx.mouseDown == 0 && opt&OptHoldFocus == 0 {
			ctx.SetFocus(0)
		}
	}

	if ctx.hover == id {
		if ctx.mousePressed != 0 {
			ctx.SetFocus(id)
		} else if !mouseover {
			ctx.hover = 0
		}
	}
}

package microui

// Vec2 represents a 2D point or size in pixels.
type Vec2 struct {
	X, Y int
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Expand returns the rectangle grown by n pixels on every side.
func (r Rect) Expand(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + n*2, H: r.H + n*2}
}

// Intersect returns the overlap of two rectangles. A result with zero or
// negative area is normalized to zero width/height.
func (r Rect) Intersect(other Rect) Rect {
	x1 := maxi(r.X, other.X)
	y1 := maxi(r.Y, other.Y)
	x2 := mini(r.X+r.W, other.X+other.W)
	y2 := mini(r.Y+r.H, other.Y+other.H)
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Font is an opaque handle owned by the host's renderer. The core never
// inspects it; it is only passed back through the TextWidth and TextHeight
// callbacks.
type Font any

// Res is a bit-set of per-frame widget results.
type Res int

const (
	// ResActive is set while the widget holds focus (held button,
	// editing textbox, expanded header).
	ResActive Res = 1 << iota
	// ResSubmit fires on the frame an action completes (button press,
	// textbox return).
	ResSubmit
	// ResChange fires on the frame a widget mutates its bound value.
	ResChange
)

// Opt is a bit-set of widget and window behavior flags accepted by the
// Ex control variants.
type Opt int

const (
	// OptAlignCenter centers the control's text.
	OptAlignCenter Opt = 1 << iota
	// OptAlignRight right-aligns the control's text.
	OptAlignRight
	// OptNoInteract disables hit-testing for the control.
	OptNoInteract
	// OptNoFrame suppresses the control's background frame.
	OptNoFrame
	// OptNoResize removes a window's resize handle.
	OptNoResize
	// OptNoScroll disables a container's scrollbars.
	OptNoScroll
	// OptNoClose removes a window's close box.
	OptNoClose
	// OptNoTitle removes a window's title bar.
	OptNoTitle
	// OptHoldFocus keeps focus after mouse release (textboxes).
	OptHoldFocus
	// OptAutoSize fits a window to its content each frame.
	OptAutoSize
	// OptPopup closes the window when the mouse is pressed elsewhere.
	OptPopup
	// OptClosed starts a window closed.
	OptClosed
	// OptExpanded starts a tree node expanded.
	OptExpanded
)

// Icon selects one of the built-in glyphs drawn by the renderer.
type Icon int

const (
	IconNone Icon = iota
	IconClose
	IconCheck
	IconCollapsed
	IconExpanded
)

// Mouse is a bit-set of mouse buttons.
type Mouse int

const (
	MouseLeft Mouse = 1 << iota
	MouseRight
	MouseMiddle
)

// Key is a bit-set of the modifier and editing keys the core reacts to.
type Key int

const (
	KeyShift Key = 1 << iota
	KeyCtrl
	KeyAlt
	KeyBackspace
	KeyReturn
)

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampi(v, lo, hi int) int {
	return mini(hi, maxi(lo, v))
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

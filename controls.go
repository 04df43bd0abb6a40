package microui

import (
	"fmt"
	"strconv"
)

const (
	sliderFmt = "%.2f"
	numberFmt = "%.3g"
)

// DrawControlFrame draws a control's background through DrawFrame,
// promoting the color role by hover/focus state.
func (ctx *Context) DrawControlFrame(id ID, rect Rect, colorID ColorID, opt Opt) {
	if opt&OptNoFrame != 0 {
		return
	}
	if ctx.focus == id {
		colorID += 2
	} else if ctx.hover == id {
		colorID += 1
	}
	ctx.DrawFrame(ctx, rect, colorID)
}

// DrawControlText draws a control's label clipped to rect, vertically
// centered and horizontally placed per the align options.
func (ctx *Context) DrawControlText(str string, rect Rect, colorID ColorID, opt Opt) {
	font := ctx.Style.Font
	tw := ctx.textWidth(font, str)
	ctx.PushClipRect(rect)
	var pos Vec2
	pos.Y = rect.Y + (rect.H-ctx.textHeight(font))/2
	switch {
	case opt&OptAlignCenter != 0:
		pos.X = rect.X + (rect.W-tw)/2
	case opt&OptAlignRight != 0:
		pos.X = rect.X + rect.W - tw - ctx.Style.Padding
	default:
		pos.X = rect.X + ctx.Style.Padding
	}
	ctx.DrawText(font, str, pos, ctx.Style.Colors[colorID])
	ctx.PopClipRect()
}

// Text draws multi-line text, greedily word-wrapped to the available
// width. Newlines force a break.
func (ctx *Context) Text(text string) {
	font := ctx.Style.Font
	color := ctx.Style.Colors[ColorText]
	ctx.LayoutBeginColumn()
	ctx.LayoutRow([]int{-1}, ctx.textHeight(font))
	p := 0
	for {
		r := ctx.LayoutNext()
		w := 0
		start, end := p, p
		// take words until the line overflows; always take at least one
		for {
			wordStart := p
			for p < len(text) && text[p] != ' ' && text[p] != '\n' {
				p++
			}
			w += ctx.textWidth(font, text[wordStart:p])
			if w > r.W && end != start {
				break
			}
			if p < len(text) {
				w += ctx.textWidth(font, text[p:p+1])
			}
			end = p
			p = end + 1
			if end >= len(text) || text[end] == '\n' {
				break
			}
		}
		ctx.DrawText(font, text[start:end], Vec2{X: r.X, Y: r.Y}, color)
		p = end + 1
		if end >= len(text) {
			break
		}
	}
	ctx.LayoutEndColumn()
}

// Label draws a single line of text in the next layout rect.
func (ctx *Context) Label(text string) {
	ctx.DrawControlText(text, ctx.LayoutNext(), ColorText, 0)
}

// Button is ButtonEx with a centered label and no icon.
func (ctx *Context) Button(label string) Res {
	return ctx.ButtonEx(label, IconNone, OptAlignCenter)
}

// ButtonEx draws a push button with a label, an icon, or both, and
// reports ResSubmit on the frame it is pressed.
func (ctx *Context) ButtonEx(label string, icon Icon, opt Opt) Res {
	var res Res
	var id ID
	if label != "" {
		id = ctx.GetID(label)
	} else {
		id = ctx.getIDBytes([]byte{byte(icon)})
	}
	r := ctx.LayoutNext()
	ctx.updateControl(id, r, opt)
	if ctx.mousePressed == MouseLeft && ctx.focus == id {
		res |= ResSubmit
	}
	ctx.DrawControlFrame(id, r, ColorButton, opt)
	if label != "" {
		ctx.DrawControlText(label, r, ColorText, opt)
	}
	if icon != IconNone {
		ctx.DrawIcon(icon, r, ctx.Style.Colors[ColorText])
	}
	return res
}

// Checkbox toggles state on click, reporting ResChange on the toggling
// frame. The label doubles as the widget's identity.
func (ctx *Context) Checkbox(label string, state *bool) Res {
	var res Res
	id := ctx.GetID(label)
	r := ctx.LayoutNext()
	box := Rect{X: r.X, Y: r.Y, W: r.H, H: r.H}
	ctx.updateControl(id, r, 0)
	if ctx.mousePressed == MouseLeft && ctx.focus == id {
		res |= ResChange
		*state = !*state
	}
	ctx.DrawControlFrame(id, box, ColorBase, 0)
	if *state {
		ctx.DrawIcon(IconCheck, box, ctx.Style.Colors[ColorText])
	}
	r = Rect{X: r.X + box.W, Y: r.Y, W: r.W - box.W, H: r.H}
	ctx.DrawControlText(label, r, ColorText, 0)
	return res
}

// textboxRaw is the editing core shared by Textbox and the numeric
// shift-click editors. It holds focus until return or a click elsewhere.
func (ctx *Context) textboxRaw(buf *string, id ID, r Rect, opt Opt) Res {
	var res Res
	ctx.updateControl(id, r, opt|OptHoldFocus)

	if ctx.focus == id {
		if len(ctx.textInput) > 0 {
			*buf += string(ctx.textInput)
			res |= ResChange
		}
		if ctx.keyPressed&KeyBackspace != 0 && len(*buf) > 0 {
			*buf = string(deleteLastRune([]byte(*buf)))
			res |= ResChange
		}
		if ctx.keyPressed&KeyReturn != 0 {
			ctx.SetFocus(0)
			res |= ResSubmit
		}
	}

	ctx.DrawControlFrame(id, r, ColorBase, opt)
	if ctx.focus == id {
		color := ctx.Style.Colors[ColorText]
		font := ctx.Style.Font
		textw := ctx.textWidth(font, *buf)
		texth := ctx.textHeight(font)
		ofx := r.W - ctx.Style.Padding - textw - 1
		textx := r.X + mini(ofx, ctx.Style.Padding)
		texty := r.Y + (r.H-texth)/2
		ctx.PushClipRect(r)
		ctx.DrawText(font, *buf, Vec2{X: textx, Y: texty}, color)
		ctx.DrawRect(Rect{X: textx + textw, Y: texty, W: 1, H: texth}, color)
		ctx.PopClipRect()
	} else {
		ctx.DrawControlText(*buf, r, ColorText, opt)
	}
	return res
}

// Textbox edits buf in place. ResChange fires per edit, ResSubmit on
// return. The key names the widget and scopes its retained focus.
func (ctx *Context) Textbox(key string, buf *string) Res {
	return ctx.TextboxEx(key, buf, 0)
}

// TextboxEx is Textbox with behavior options.
func (ctx *Context) TextboxEx(key string, buf *string, opt Opt) Res {
	id := ctx.GetID(key)
	r := ctx.LayoutNext()
	return ctx.textboxRaw(buf, id, r, opt)
}

// numberTextbox runs the shift-click text-edit override for numeric
// controls. It reports true while the edit is in progress, in which case
// the calling control must not draw or process its normal mode. On
// commit the buffer is parsed; unparsable input keeps the prior value.
func (ctx *Context) numberTextbox(value *float32, r Rect, id ID) bool {
	if ctx.mousePressed == MouseLeft && ctx.keyDown&KeyShift != 0 &&
		ctx.hover == id {
		ctx.numberEdit = id
		ctx.numberEditBuf = fmt.Sprintf(numberFmt, *value)
	}
	if ctx.numberEdit == id {
		res := ctx.textboxRaw(&ctx.numberEditBuf, id, r, 0)
		if res&ResSubmit != 0 || ctx.focus != id {
			if v, err := strconv.ParseFloat(ctx.numberEditBuf, 32); err == nil {
				*value = float32(v)
			} else {
				logger.Debug("number edit not parsable", "input", ctx.numberEditBuf)
			}
			ctx.numberEdit = 0
		} else {
			return true
		}
	}
	return false
}

// Slider is SliderEx with no step and the default value format.
func (ctx *Context) Slider(key string, value *float32, lo, hi float32) Res {
	return ctx.SliderEx(key, value, lo, hi, 0, sliderFmt, OptAlignCenter)
}

// SliderEx drags value across [lo, hi], snapped to step when step is
// nonzero. Shift-click opens a text editor on the value. ResChange fires
// on the frame the value moves.
func (ctx *Context) SliderEx(key string, value *float32, lo, hi, step float32, format string, opt Opt) Res {
	var res Res
	last := *value
	v := last
	id := ctx.GetID(key)
	base := ctx.LayoutNext()

	if ctx.numberTextbox(value, base, id) {
		return res
	}

	ctx.updateControl(id, base, opt)

	if ctx.focus == id && (ctx.mouseDown|ctx.mousePressed)&MouseLeft != 0 {
		v = lo + float32(ctx.mousePos.X-base.X)*(hi-lo)/float32(base.W)
		if step != 0 {
			v = float32(int64((v+step/2)/step)) * step
		}
	}
	v = clampf(v, lo, hi)
	*value = v
	if last != v {
		res |= ResChange
	}

	ctx.DrawControlFrame(id, base, ColorBase, opt)
	w := ctx.Style.ThumbSize
	x := int(float32(base.W-w) * (v - lo) / (hi - lo))
	thumb := Rect{X: base.X + x, Y: base.Y, W: w, H: base.H}
	ctx.DrawControlFrame(id, thumb, ColorButton, opt)
	ctx.DrawControlText(fmt.Sprintf(format, v), base, ColorText, opt)
	return res
}

// Number is NumberEx with the default format.
func (ctx *Context) Number(key string, value *float32, step float32) Res {
	return ctx.NumberEx(key, value, step, numberFmt, OptAlignCenter)
}

// NumberEx adjusts value by horizontal mouse drag, step units per pixel.
// Shift-click opens a text editor on the value.
func (ctx *Context) NumberEx(key string, value *float32, step float32, format string, opt Opt) Res {
	var res Res
	last := *value
	id := ctx.GetID(key)
	base := ctx.LayoutNext()

	if ctx.numberTextbox(value, base, id) {
		return res
	}

	ctx.updateControl(id, base, opt)

	if ctx.focus == id && ctx.mouseDown == MouseLeft {
		*value += float32(ctx.mouseDelta.X) * step
	}
	if *value != last {
		res |= ResChange
	}

	ctx.DrawControlFrame(id, base, ColorBase, opt)
	ctx.DrawControlText(fmt.Sprintf(format, *value), base, ColorText, opt)
	return res
}

// header implements Header and the tree-node headers. Expansion is
// retained in the tree-node pool; the click toggle takes effect on the
// next frame's expanded computation.
func (ctx *Context) header(label string, isTreeNode bool, opt Opt) Res {
	id := ctx.GetID(label)
	idx := ctx.poolGet(ctx.treeNodePool[:], id)
	ctx.LayoutRow([]int{-1}, 0)

	active := idx >= 0
	expanded := active
	if opt&OptExpanded != 0 {
		expanded = !active
	}
	r := ctx.LayoutNext()
	ctx.updateControl(id, r, 0)

	if ctx.mousePressed == MouseLeft && ctx.focus == id {
		active = !active
	}

	if idx >= 0 {
		if active {
			ctx.poolUpdate(ctx.treeNodePool[:], idx)
		} else {
			ctx.treeNodePool[idx] = poolItem{}
		}
	} else if active {
		ctx.poolInit(ctx.treeNodePool[:], id)
	}

	if isTreeNode {
		if ctx.hover == id {
			ctx.DrawFrame(ctx, r, ColorButtonHover)
		}
	} else {
		ctx.DrawControlFrame(id, r, ColorButton, 0)
	}
	icon := IconCollapsed
	if expanded {
		icon = IconExpanded
	}
	ctx.DrawIcon(icon, Rect{X: r.X, Y: r.Y, W: r.H, H: r.H},
		ctx.Style.Colors[ColorText])
	r.X += r.H - ctx.Style.Padding
	r.W -= r.H - ctx.Style.Padding
	ctx.DrawControlText(label, r, ColorText, 0)

	if expanded {
		return ResActive
	}
	return 0
}

// Header draws a full-width collapsible header, reporting ResActive
// while expanded.
func (ctx *Context) Header(label string) Res {
	return ctx.header(label, false, 0)
}

// HeaderEx is Header with options; OptExpanded starts it expanded.
func (ctx *Context) HeaderEx(label string, opt Opt) Res {
	return ctx.header(label, false, opt)
}

// BeginTreeNode opens a collapsible, indented scope. When it reports
// ResActive the caller must declare the children and call EndTreeNode.
func (ctx *Context) BeginTreeNode(label string) Res {
	return ctx.BeginTreeNodeEx(label, 0)
}

// BeginTreeNodeEx is BeginTreeNode with options.
func (ctx *Context) BeginTreeNodeEx(label string, opt Opt) Res {
	res := ctx.header(label, true, opt)
	if res&ResActive != 0 {
		ctx.currentLayout().indent += ctx.Style.IndentSize
		ctx.idStack.push(ctx.lastID)
	}
	return res
}

// EndTreeNode closes the scope opened by a BeginTreeNode that reported
// ResActive.
func (ctx *Context) EndTreeNode() {
	ctx.currentLayout().indent -= ctx.Style.IndentSize
	ctx.PopID()
}

package microui

import "unicode/utf8"

// Input ingestion. The host translates its windowing events into these
// calls before Begin; the core only ever reads the accumulated state.
// "Pressed" and keyPressed edges accumulate until End resets them, so
// several events between frames are not lost.

// InputMouseMove reports the current mouse position in UI coordinates.
func (ctx *Context) InputMouseMove(x, y int) {
	ctx.mousePos = Vec2{X: x, Y: y}
}

// InputMouseDown reports a button press at the given position.
func (ctx *Context) InputMouseDown(x, y int, btn Mouse) {
	ctx.InputMouseMove(x, y)
	ctx.mouseDown |= btn
	ctx.mousePressed |= btn
}

// InputMouseUp reports a button release at the given position.
func (ctx *Context) InputMouseUp(x, y int, btn Mouse) {
	ctx.InputMouseMove(x, y)
	ctx.mouseDown &^= btn
}

// InputScroll accumulates mousewheel movement for this frame. Positive y
// scrolls content down.
func (ctx *Context) InputScroll(x, y int) {
	ctx.scrollDelta.X += x
	ctx.scrollDelta.Y += y
}

// InputKeyDown reports a key press.
func (ctx *Context) InputKeyDown(key Key) {
	ctx.keyDown |= key
	ctx.keyPressed |= key
}

// InputKeyUp reports a key release.
func (ctx *Context) InputKeyUp(key Key) {
	ctx.keyDown &^= key
}

// InputText appends UTF-8 text for the focused textbox to consume. The
// per-frame buffer is bounded; input past the bound is dropped whole so
// a rune is never split.
func (ctx *Context) InputText(text string) {
	if len(ctx.textInput)+len(text) > maxTextInput {
		logger.Debug("text input dropped", "len", len(text))
		return
	}
	ctx.textInput = append(ctx.textInput, text...)
}

// deleteLastRune removes the final UTF-8 rune from buf.
func deleteLastRune(buf []byte) []byte {
	if len(buf) == 0 {
		return buf
	}
	_, size := utf8.DecodeLastRune(buf)
	return buf[:len(buf)-size]
}

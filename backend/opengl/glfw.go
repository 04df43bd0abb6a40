package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hdooley/microui"
)

// scrollSpeed converts one wheel notch into scroll pixels.
const scrollSpeed = 30

// GLFWInputAdapter forwards GLFW events into a Context's input methods.
// Construct it once after creating the window; the callbacks stay
// installed for the window's lifetime.
type GLFWInputAdapter struct {
	window *glfw.Window
	ctx    *microui.Context
}

// NewGLFWInputAdapter installs input callbacks on the window that feed
// ctx.
func NewGLFWInputAdapter(window *glfw.Window, ctx *microui.Context) *GLFWInputAdapter {
	a := &GLFWInputAdapter{window: window, ctx: ctx}

	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)

	return a
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.ctx.InputMouseMove(int(xpos), int(ypos))
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	btn := glfwMouseButton(button)
	if btn == 0 {
		return
	}
	x, y := w.GetCursorPos()
	switch action {
	case glfw.Press:
		a.ctx.InputMouseDown(int(x), int(y), btn)
	case glfw.Release:
		a.ctx.InputMouseUp(int(x), int(y), btn)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.ctx.InputScroll(int(-xoff*scrollSpeed), int(-yoff*scrollSpeed))
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKey(key)
	if k == 0 {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		a.ctx.InputKeyDown(k)
	case glfw.Release:
		a.ctx.InputKeyUp(k)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.ctx.InputText(string(char))
}

func glfwMouseButton(button glfw.MouseButton) microui.Mouse {
	switch button {
	case glfw.MouseButtonLeft:
		return microui.MouseLeft
	case glfw.MouseButtonRight:
		return microui.MouseRight
	case glfw.MouseButtonMiddle:
		return microui.MouseMiddle
	default:
		return 0
	}
}

func glfwKey(key glfw.Key) microui.Key {
	switch key {
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return microui.KeyShift
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return microui.KeyCtrl
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return microui.KeyAlt
	case glfw.KeyBackspace:
		return microui.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return microui.KeyReturn
	default:
		return 0
	}
}

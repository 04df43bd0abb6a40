// Example demonstrates the UI running on the OpenGL backend: two
// windows with buttons, tree nodes, a popup, a textbox-driven log and
// background-color sliders bound to the clear color.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hdooley/microui"
	"github.com/hdooley/microui/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "microui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the demo's widget-bound state across frames.
type app struct {
	checks    [3]bool
	textbox   string
	log       strings.Builder
	logUpdate bool
	bg        [3]float32
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("ui renderer: %w", err)
	}
	defer renderer.Delete()

	ctx := microui.New()
	ctx.TextWidth = renderer.TextWidth
	ctx.TextHeight = renderer.TextHeight
	opengl.NewGLFWInputAdapter(window, ctx)

	a := &app{bg: [3]float32{90, 95, 100}}

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(a.bg[0]/255, a.bg[1]/255, a.bg[2]/255, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx.Begin()
		a.demoWindow(ctx)
		a.logWindow(ctx)
		ctx.End()

		renderer.Render(ctx)
		window.SwapBuffers()
	}

	return nil
}

func (a *app) writeLog(text string) {
	a.log.WriteString(text)
	a.log.WriteByte('\n')
	a.logUpdate = true
}

func (a *app) demoWindow(ctx *microui.Context) {
	if !ctx.BeginWindow("Demo Window", microui.Rect{X: 40, Y: 40, W: 300, H: 450}) {
		return
	}
	defer ctx.EndWindow()

	win := ctx.CurrentContainer()
	win.Rect.W = max(win.Rect.W, 240)
	win.Rect.H = max(win.Rect.H, 300)

	if ctx.Header("Window Info")&microui.ResActive != 0 {
		ctx.LayoutRow([]int{54, -1}, 0)
		ctx.Label("Position:")
		ctx.Label(fmt.Sprintf("%d, %d", win.Rect.X, win.Rect.Y))
		ctx.Label("Size:")
		ctx.Label(fmt.Sprintf("%d, %d", win.Rect.W, win.Rect.H))
	}

	if ctx.HeaderEx("Test Buttons", microui.OptExpanded)&microui.ResActive != 0 {
		ctx.LayoutRow([]int{86, -110, -1}, 0)
		ctx.Label("Test buttons 1:")
		if ctx.Button("Button 1")&microui.ResSubmit != 0 {
			a.writeLog("Pressed button 1")
		}
		if ctx.Button("Button 2")&microui.ResSubmit != 0 {
			a.writeLog("Pressed button 2")
		}
		ctx.Label("Test buttons 2:")
		if ctx.Button("Button 3")&microui.ResSubmit != 0 {
			a.writeLog("Pressed button 3")
		}
		if ctx.Button("Popup")&microui.ResSubmit != 0 {
			ctx.OpenPopup("Test Popup")
		}
		if ctx.BeginPopup("Test Popup") {
			ctx.Button("Hello")
			ctx.Button("World")
			ctx.EndPopup()
		}
	}

	if ctx.HeaderEx("Tree and Text", microui.OptExpanded)&microui.ResActive != 0 {
		ctx.LayoutRow([]int{140, -1}, 0)
		ctx.LayoutBeginColumn()
		if ctx.BeginTreeNode("Test 1")&microui.ResActive != 0 {
			if ctx.BeginTreeNode("Test 1a")&microui.ResActive != 0 {
				ctx.Label("Hello")
				ctx.Label("world")
				ctx.EndTreeNode()
			}
			if ctx.BeginTreeNode("Test 1b")&microui.ResActive != 0 {
				if ctx.Button("Button 1")&microui.ResSubmit != 0 {
					a.writeLog("Pressed button 1 in tree")
				}
				ctx.EndTreeNode()
			}
			ctx.EndTreeNode()
		}
		if ctx.BeginTreeNode("Test 2")&microui.ResActive != 0 {
			ctx.LayoutRow([]int{54, 54}, 0)
			ctx.Checkbox("Checkbox 1", &a.checks[0])
			ctx.Checkbox("Checkbox 2", &a.checks[1])
			ctx.Checkbox("Checkbox 3", &a.checks[2])
			ctx.EndTreeNode()
		}
		ctx.LayoutEndColumn()

		ctx.LayoutBeginColumn()
		ctx.LayoutRow([]int{-1}, 0)
		ctx.Text("Lorem ipsum dolor sit amet, consectetur adipiscing " +
			"elit. Maecenas lacinia, sem eu lacinia molestie, mi risus " +
			"faucibus ipsum, eu varius magna felis a nulla.")
		ctx.LayoutEndColumn()
	}

	if ctx.HeaderEx("Background Color", microui.OptExpanded)&microui.ResActive != 0 {
		ctx.LayoutRow([]int{-78, -1}, 74)
		ctx.LayoutBeginColumn()
		ctx.LayoutRow([]int{46, -1}, 0)
		ctx.Label("Red:")
		ctx.Slider("bg-red", &a.bg[0], 0, 255)
		ctx.Label("Green:")
		ctx.Slider("bg-green", &a.bg[1], 0, 255)
		ctx.Label("Blue:")
		ctx.Slider("bg-blue", &a.bg[2], 0, 255)
		ctx.LayoutEndColumn()
		// color preview
		r := ctx.LayoutNext()
		ctx.DrawRect(r, microui.Color{
			R: uint8(a.bg[0]), G: uint8(a.bg[1]), B: uint8(a.bg[2]), A: 255,
		})
		ctx.DrawControlText(fmt.Sprintf("#%02X%02X%02X",
			int(a.bg[0]), int(a.bg[1]), int(a.bg[2])),
			r, microui.ColorText, microui.OptAlignCenter)
	}
}

func (a *app) logWindow(ctx *microui.Context) {
	if !ctx.BeginWindow("Log Window", microui.Rect{X: 360, Y: 40, W: 340, H: 200}) {
		return
	}
	defer ctx.EndWindow()

	ctx.LayoutRow([]int{-1}, -25)
	ctx.BeginPanel("Log Output")
	panel := ctx.CurrentContainer()
	ctx.LayoutRow([]int{-1}, -1)
	ctx.Text(a.log.String())
	if a.logUpdate {
		panel.Scroll.Y = panel.ContentSize.Y
		a.logUpdate = false
	}
	ctx.EndPanel()

	submitted := false
	ctx.LayoutRow([]int{-70, -1}, 0)
	if ctx.Textbox("log-input", &a.textbox)&microui.ResSubmit != 0 {
		ctx.SetFocus(ctx.LastID())
		submitted = true
	}
	if ctx.Button("Submit")&microui.ResSubmit != 0 {
		submitted = true
	}
	if submitted && a.textbox != "" {
		a.writeLog(a.textbox)
		a.textbox = ""
	}
}

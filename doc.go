/*
Package microui implements a small immediate-mode UI core: the host feeds
input events and declares the interface every frame, and the library
answers with a flat list of drawing commands for the host's renderer to
execute. The core does no rendering and opens no windows itself; it only
computes layout, hit-testing, focus and hover state, and persistent
container geometry.

# Quick Start

	ctx := microui.New()
	ctx.TextWidth = myTextWidth   // required host callbacks
	ctx.TextHeight = myTextHeight

	// Per frame:
	ctx.InputMouseMove(mx, my)    // ...and the rest of the input events

	ctx.Begin()
	if ctx.BeginWindow("Demo", microui.Rect{X: 40, Y: 40, W: 300, H: 240}) {
	    if ctx.Button("Click Me")&microui.ResSubmit != 0 {
	        // button was pressed
	    }
	    ctx.EndWindow()
	}
	ctx.End()

	for it := ctx.Commands(); it.Next(); {
	    switch cmd := it.Command(); cmd.Type {
	    case microui.CommandRect: // fill cmd.Rect.Rect with cmd.Rect.Color
	    case microui.CommandText: // draw cmd.Text.Str at cmd.Text.Pos
	    case microui.CommandIcon: // draw cmd.Icon.Icon inside cmd.Icon.Rect
	    case microui.CommandClip: // set scissor to cmd.Clip.Rect
	    }
	}

Ready-made renderers and input adapters for OpenGL/GLFW and raylib live
under backend/.

# Model

Widgets hold no objects: a widget is a function call that claims a layout
rectangle, consults the input state captured before the frame, pushes draw
commands, and returns a result bit-set (ResActive, ResSubmit, ResChange).
The only state that survives a frame is keyed by stable 32-bit ids:
hover/focus ownership, pooled container geometry and scroll offsets, and
tree-node expansion flags. Ids are derived from labels (scoped with
PushID/PopID), so the same call site produces the same id every frame.

All buffers are fixed-capacity and owned by the Context. Overflowing a
stack or the command list, or unbalanced Begin/End pairs, is a programming
error and panics with a *ContractError; see that type for how embedding
hosts can intercept the failure.

The API is strictly single-threaded: one Begin/End pair per frame, all
calls from the same goroutine, and the command stream must be fully
drained before the next Begin.
*/
package microui

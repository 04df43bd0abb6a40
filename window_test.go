package microui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdooley/microui"
)

func TestOverlappedWindowDoesNotReceiveInput(t *testing.T) {
	ctx := newTestContext()
	var resBelow, resAbove microui.Res
	declare := func() {
		// both windows occupy the same rect; "above" is created second
		// so it starts with the higher z-index
		if ctx.BeginWindow("below", microui.Rect{X: 0, Y: 0, W: 100, H: 100}) {
			ctx.LayoutRow([]int{-1}, 0)
			resBelow = ctx.Button("under")
			ctx.EndWindow()
		}
		if ctx.BeginWindow("above", microui.Rect{X: 0, Y: 0, W: 100, H: 100}) {
			ctx.LayoutRow([]int{-1}, 0)
			resAbove = ctx.Button("over")
			ctx.EndWindow()
		}
	}

	ctx.InputMouseMove(50, 45)
	frame(ctx, declare)
	frame(ctx, declare)
	ctx.InputMouseDown(50, 45, microui.MouseLeft)
	frame(ctx, declare)

	assert.Zero(t, resBelow, "occluded button must not fire")
	assert.Equal(t, microui.ResSubmit, resAbove&microui.ResSubmit)
}

func TestCloseBoxClosesAndHostReopens(t *testing.T) {
	ctx := newTestContext()
	open := false
	declare := func() {
		open = ctx.BeginWindow("closable", microui.Rect{X: 0, Y: 0, W: 100, H: 100})
		if open {
			ctx.EndWindow()
		}
	}

	// the close box occupies the title bar's right square {76,0,24,24}
	ctx.InputMouseMove(88, 12)
	frame(ctx, declare)
	frame(ctx, declare)
	ctx.InputMouseDown(88, 12, microui.MouseLeft)
	frame(ctx, declare)
	assert.True(t, open, "window still draws on the closing frame")

	ctx.InputMouseUp(88, 12, microui.MouseLeft)
	frame(ctx, declare)
	assert.False(t, open, "window stays closed on later frames")

	// closing only clears the retained flag; the host can flip it back
	ctx.GetContainer("closable").Open = true
	frame(ctx, declare)
	assert.True(t, open)
}

func TestWindowRectRetainedAcrossFrames(t *testing.T) {
	ctx := newTestContext()
	declare := func(rect microui.Rect) {
		if ctx.BeginWindow("retained", rect) {
			ctx.EndWindow()
		}
	}
	frame(ctx, func() { declare(microui.Rect{X: 30, Y: 30, W: 120, H: 90}) })
	// the rect argument only seeds the first appearance
	frame(ctx, func() { declare(microui.Rect{X: 999, Y: 999, W: 1, H: 1}) })
	cnt := ctx.GetContainer("retained")
	assert.Equal(t, microui.Rect{X: 30, Y: 30, W: 120, H: 90}, cnt.Rect)
}

func TestTitleDragMovesWindow(t *testing.T) {
	ctx := newTestContext()
	declare := func() {
		if ctx.BeginWindowEx("drag", microui.Rect{X: 0, Y: 0, W: 100, H: 100},
			microui.OptNoClose) {
			ctx.EndWindow()
		}
	}

	ctx.InputMouseMove(50, 12)
	frame(ctx, declare)
	frame(ctx, declare)
	ctx.InputMouseDown(50, 12, microui.MouseLeft)
	frame(ctx, declare)
	ctx.InputMouseMove(70, 22)
	frame(ctx, declare)

	cnt := ctx.GetContainer("drag")
	assert.Equal(t, 20, cnt.Rect.X)
	assert.Equal(t, 10, cnt.Rect.Y)
}

func TestResizeHandleEnforcesMinimum(t *testing.T) {
	ctx := newTestContext()
	declare := func() {
		if ctx.BeginWindowEx("sizable", microui.Rect{X: 0, Y: 0, W: 100, H: 100},
			microui.OptNoClose) {
			ctx.EndWindow()
		}
	}

	// resize handle is the bottom-right title-height square {76,76,24,24}
	ctx.InputMouseMove(88, 88)
	frame(ctx, declare)
	frame(ctx, declare)
	ctx.InputMouseDown(88, 88, microui.MouseLeft)
	frame(ctx, declare)
	ctx.InputMouseMove(38, 38) // drag 50px up-left, past the minimum
	frame(ctx, declare)

	cnt := ctx.GetContainer("sizable")
	assert.Equal(t, 96, cnt.Rect.W)
	assert.Equal(t, 64, cnt.Rect.H)
}

func TestPopupClosesOnClickElsewhere(t *testing.T) {
	ctx := newTestContext()
	var open bool
	declare := func() {
		if open = ctx.BeginPopup("menu"); open {
			ctx.LayoutRow([]int{-1}, 0)
			ctx.Label("item")
			ctx.EndPopup()
		}
	}

	ctx.InputMouseMove(50, 50)
	frame(ctx, func() {
		ctx.OpenPopup("menu")
		declare()
	})
	require.True(t, open)

	// moving away does not close it
	ctx.InputMouseMove(300, 300)
	frame(ctx, declare)
	assert.True(t, open)

	// clicking away does
	ctx.InputMouseDown(300, 300, microui.MouseLeft)
	frame(ctx, declare)
	ctx.InputMouseUp(300, 300, microui.MouseLeft)
	frame(ctx, declare)
	assert.False(t, open)
}

func TestPopupOpensAtMouse(t *testing.T) {
	ctx := newTestContext()
	ctx.InputMouseMove(123, 77)
	frame(ctx, func() {
		ctx.OpenPopup("at-mouse")
		if ctx.BeginPopup("at-mouse") {
			ctx.EndPopup()
		}
	})
	cnt := ctx.GetContainer("at-mouse")
	assert.Equal(t, 123, cnt.Rect.X)
	assert.Equal(t, 77, cnt.Rect.Y)
}

func TestMousewheelScrollsHoveredContainer(t *testing.T) {
	ctx := newTestContext()
	declare := func() {
		if ctx.BeginWindow("scrolly", microui.Rect{X: 0, Y: 0, W: 100, H: 100}) {
			ctx.LayoutRow([]int{-1}, 30)
			for i := 0; i < 5; i++ {
				ctx.LayoutNext()
			}
			ctx.EndWindow()
		}
	}

	ctx.InputMouseMove(50, 50)
	frame(ctx, declare) // measures content, no scrollbars yet
	ctx.InputScroll(0, 30)
	frame(ctx, declare)
	cnt := ctx.GetContainer("scrolly")
	assert.Equal(t, 30, cnt.Scroll.Y)

	// scrolling far past the end clamps to the max scroll offset
	ctx.InputScroll(0, 100000)
	frame(ctx, declare)
	frame(ctx, declare)
	maxScroll := cnt.ContentSize.Y + 2*ctx.Style.Padding - cnt.Body.H
	assert.Equal(t, maxScroll, cnt.Scroll.Y)
}

func TestPanelScrollsIndependently(t *testing.T) {
	ctx := newTestContext()
	var panel *microui.Container
	declare := func() {
		if ctx.BeginWindow("host", microui.Rect{X: 0, Y: 0, W: 200, H: 150}) {
			ctx.LayoutRow([]int{-1}, -1)
			ctx.BeginPanel("inner")
			panel = ctx.CurrentContainer()
			ctx.LayoutRow([]int{-1}, 30)
			for i := 0; i < 10; i++ {
				ctx.LayoutNext()
			}
			ctx.EndPanel()
			ctx.EndWindow()
		}
	}

	ctx.InputMouseMove(100, 80)
	frame(ctx, declare)
	ctx.InputScroll(0, 40)
	frame(ctx, declare)

	assert.Equal(t, 40, panel.Scroll.Y)
	assert.Zero(t, ctx.GetContainer("host").Scroll.Y,
		"wheel goes to the innermost hovered container")
}

func TestAutoSizeWindowFitsContent(t *testing.T) {
	ctx := newTestContext()
	declare := func() {
		if ctx.BeginWindowEx("auto", microui.Rect{X: 0, Y: 0, W: 300, H: 300},
			microui.OptAutoSize|microui.OptNoTitle|microui.OptNoResize|
				microui.OptNoScroll|microui.OptNoClose) {
			ctx.LayoutRow([]int{50}, 40)
			ctx.LayoutNext()
			ctx.EndWindow()
		}
	}
	frame(ctx, declare)
	frame(ctx, declare)

	cnt := ctx.GetContainer("auto")
	// content 50x40 plus the padding ring
	assert.Equal(t, 50+2*ctx.Style.Padding, cnt.Rect.W)
	assert.Equal(t, 40+2*ctx.Style.Padding, cnt.Rect.H)
}

func TestEndPanicsOnUnbalancedWindow(t *testing.T) {
	ctx := newTestContext()
	defer func() {
		r := recover()
		require.NotNil(t, r, "End must reject an unclosed window")
		_, ok := r.(*microui.ContractError)
		require.True(t, ok, "panic value is %T, want *ContractError", r)
	}()
	ctx.Begin()
	ctx.BeginWindow("leak", microui.Rect{W: 100, H: 100})
	ctx.End()
}

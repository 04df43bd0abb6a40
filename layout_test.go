package microui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdooley/microui"
)

// plainWindow opens a chrome-less window so the layout body is the
// window rect inset by the style padding.
func plainWindow(ctx *microui.Context, name string, rect microui.Rect) bool {
	return ctx.BeginWindowEx(name, rect,
		microui.OptNoTitle|microui.OptNoResize|microui.OptNoScroll|microui.OptNoClose)
}

func TestLayoutRowWidths(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, func() {
		require.True(t, plainWindow(ctx, "layout", microui.Rect{W: 200, H: 200}))
		// body is {5,5,190,190} with the default padding of 5
		ctx.LayoutRow([]int{50, 50, -1}, 20)
		assert.Equal(t, microui.Rect{X: 5, Y: 5, W: 50, H: 20}, ctx.LayoutNext())
		assert.Equal(t, microui.Rect{X: 59, Y: 5, W: 50, H: 20}, ctx.LayoutNext())
		// -1 ends at the body's right edge: 190 - (50+4+50+4) = 82
		assert.Equal(t, microui.Rect{X: 113, Y: 5, W: 82, H: 20}, ctx.LayoutNext())
		// row is full: wraps below the tallest item plus spacing
		assert.Equal(t, microui.Rect{X: 5, Y: 29, W: 50, H: 20}, ctx.LayoutNext())
		ctx.EndWindow()
	})
}

func TestLayoutZeroMeansStyleDefault(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, func() {
		require.True(t, plainWindow(ctx, "layout", microui.Rect{W: 200, H: 200}))
		ctx.LayoutRow([]int{0}, 0)
		r := ctx.LayoutNext()
		style := ctx.Style
		assert.Equal(t, style.Size.X+style.Padding*2, r.W)
		assert.Equal(t, style.Size.Y+style.Padding*2, r.H)
		ctx.EndWindow()
	})
}

func TestLayoutWidthHeightOverride(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, func() {
		require.True(t, plainWindow(ctx, "layout", microui.Rect{W: 200, H: 200}))
		ctx.LayoutRow([]int{}, 0)
		ctx.LayoutWidth(40)
		ctx.LayoutHeight(30)
		r := ctx.LayoutNext()
		assert.Equal(t, 40, r.W)
		assert.Equal(t, 30, r.H)
		ctx.EndWindow()
	})
}

func TestSetLayoutNextAbsolute(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, func() {
		require.True(t, plainWindow(ctx, "layout", microui.Rect{W: 200, H: 200}))
		want := microui.Rect{X: 30, Y: 40, W: 25, H: 25}
		ctx.SetLayoutNext(want, false)
		assert.Equal(t, want, ctx.LayoutNext())
		// one-shot: the next rect comes from the normal flow again
		assert.Equal(t, 5, ctx.LayoutNext().X)
		ctx.EndWindow()
	})
}

func TestSetLayoutNextRelative(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, func() {
		require.True(t, plainWindow(ctx, "layout", microui.Rect{W: 200, H: 200}))
		ctx.SetLayoutNext(microui.Rect{X: 10, Y: 10, W: 25, H: 25}, true)
		r := ctx.LayoutNext()
		// relative rects are offset by the body origin
		assert.Equal(t, microui.Rect{X: 15, Y: 15, W: 25, H: 25}, r)
		ctx.EndWindow()
	})
}

func TestLayoutColumns(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, func() {
		require.True(t, plainWindow(ctx, "layout", microui.Rect{W: 200, H: 200}))
		ctx.LayoutRow([]int{60, -1}, 20)
		ctx.LayoutBeginColumn()
		ctx.LayoutRow([]int{-1}, 20)
		// rows inside the column stack vertically within the claimed cell
		assert.Equal(t, microui.Rect{X: 5, Y: 5, W: 60, H: 20}, ctx.LayoutNext())
		assert.Equal(t, microui.Rect{X: 5, Y: 29, W: 60, H: 20}, ctx.LayoutNext())
		ctx.LayoutEndColumn()

		// the parent row continues beside the column
		r := ctx.LayoutNext()
		assert.Equal(t, 69, r.X)
		assert.Equal(t, 5, r.Y)
		ctx.EndWindow()
	})
}

func TestContentSizeTracksMaxExtent(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, func() {
		require.True(t, plainWindow(ctx, "content", microui.Rect{W: 200, H: 200}))
		ctx.LayoutRow([]int{40}, 30)
		for i := 0; i < 3; i++ {
			ctx.LayoutNext()
		}
		ctx.EndWindow()
	})
	cnt := ctx.GetContainer("content")
	assert.Equal(t, 40, cnt.ContentSize.X)
	// 3 rows of 30 with 4px spacing between them
	assert.Equal(t, 98, cnt.ContentSize.Y)
}

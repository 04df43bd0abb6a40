package microui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdooley/microui"
)

func TestIteratorHidesJumps(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, func() {
		require.True(t, ctx.BeginWindow("win", microui.Rect{X: 10, Y: 10, W: 200, H: 150}))
		ctx.Label("hello")
		ctx.EndWindow()
	})

	n := 0
	for it := ctx.Commands(); it.Next(); {
		cmd := it.Command()
		assert.NotEqual(t, microui.CommandJump, cmd.Type)
		n++
	}
	assert.Greater(t, n, 0)
}

func TestIteratorRestartable(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, func() {
		require.True(t, ctx.BeginWindow("win", microui.Rect{X: 10, Y: 10, W: 200, H: 150}))
		ctx.Label("hello")
		ctx.EndWindow()
	})

	first := 0
	for it := ctx.Commands(); it.Next(); {
		first++
	}
	second := 0
	for it := ctx.Commands(); it.Next(); {
		second++
	}
	assert.Equal(t, first, second)
}

func TestEmptyFrameYieldsNoCommands(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, func() {})
	it := ctx.Commands()
	assert.False(t, it.Next())
}

func TestRootContainersDrainInZOrder(t *testing.T) {
	ctx := newTestContext()
	declare := func() {
		if ctx.BeginWindow("win-a", microui.Rect{X: 0, Y: 0, W: 100, H: 100}) {
			ctx.EndWindow()
		}
		if ctx.BeginWindow("win-b", microui.Rect{X: 150, Y: 0, W: 100, H: 100}) {
			ctx.EndWindow()
		}
	}

	// win-b was declared last so it starts on top; declaration order
	// must not affect draw order.
	ctx.InputMouseMove(50, 50)
	frame(ctx, declare)
	assert.Equal(t, []string{"win-a", "win-b"}, drainTexts(ctx))

	// Clicking win-a raises it above win-b.
	ctx.InputMouseDown(50, 50, microui.MouseLeft)
	frame(ctx, declare)
	ctx.InputMouseUp(50, 50, microui.MouseLeft)
	frame(ctx, declare)
	assert.Equal(t, []string{"win-b", "win-a"}, drainTexts(ctx))
}

func TestPartiallyClippedTextIsBracketed(t *testing.T) {
	ctx := newTestContext()
	longLabel := "a label much too long for a narrow window body"
	frame(ctx, func() {
		require.True(t, ctx.BeginWindow("narrow", microui.Rect{X: 0, Y: 0, W: 100, H: 100}))
		ctx.Label(longLabel)
		ctx.EndWindow()
	})

	// The overflowing label must be wrapped in a scissor set and a
	// scissor reset so the renderer clips it exactly.
	var cmds []microui.Command
	for it := ctx.Commands(); it.Next(); {
		cmds = append(cmds, *it.Command())
	}
	textIdx := -1
	for i, cmd := range cmds {
		if cmd.Type == microui.CommandText && cmd.Text.Str == longLabel {
			textIdx = i
		}
	}
	require.GreaterOrEqual(t, textIdx, 1, "clipped text not emitted")
	require.Less(t, textIdx, len(cmds)-1)
	before := cmds[textIdx-1]
	after := cmds[textIdx+1]
	require.Equal(t, microui.CommandClip, before.Type)
	assert.Less(t, before.Clip.Rect.W, 0x1000000)
	require.Equal(t, microui.CommandClip, after.Type)
	assert.GreaterOrEqual(t, after.Clip.Rect.W, 0x1000000)
}

func TestFullyClippedDrawsEmitNothing(t *testing.T) {
	ctx := newTestContext()
	frame(ctx, func() {
		require.True(t, ctx.BeginWindow("win", microui.Rect{X: 0, Y: 0, W: 100, H: 100}))
		// way outside the window body
		ctx.DrawText(ctx.Style.Font, "invisible", microui.Vec2{X: 5000, Y: 5000},
			microui.Color{A: 255})
		ctx.DrawRect(microui.Rect{X: 5000, Y: 5000, W: 10, H: 10}, microui.Color{A: 255})
		ctx.EndWindow()
	})
	for it := ctx.Commands(); it.Next(); {
		if cmd := it.Command(); cmd.Type == microui.CommandText {
			assert.NotEqual(t, "invisible", cmd.Text.Str)
		}
	}
}

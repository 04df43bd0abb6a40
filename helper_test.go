package microui_test

import (
	"github.com/hdooley/microui"
)

// newTestContext returns a Context with fixed-metric text callbacks:
// 8px per byte wide, 8px tall. Predictable geometry keeps the layout
// assertions exact.
func newTestContext() *microui.Context {
	ctx := microui.New()
	ctx.TextWidth = func(_ microui.Font, s string) int { return 8 * len(s) }
	ctx.TextHeight = func(_ microui.Font) int { return 8 }
	return ctx
}

// frame runs fn between Begin and End.
func frame(ctx *microui.Context, fn func()) {
	ctx.Begin()
	fn()
	ctx.End()
}

// drainTexts collects the Str of every text command in draw order.
func drainTexts(ctx *microui.Context) []string {
	var out []string
	for it := ctx.Commands(); it.Next(); {
		if cmd := it.Command(); cmd.Type == microui.CommandText {
			out = append(out, cmd.Text.Str)
		}
	}
	return out
}

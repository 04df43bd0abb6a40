package microui

import (
	"strings"
	"testing"
)

func TestInputTextBounded(t *testing.T) {
	ctx := New()
	ctx.InputText(strings.Repeat("a", maxTextInput))
	if got := len(ctx.textInput); got != maxTextInput {
		t.Fatalf("buffered %d bytes, want %d", got, maxTextInput)
	}
	// Past the bound the whole event is dropped, never truncated.
	ctx.InputText("é")
	if got := len(ctx.textInput); got != maxTextInput {
		t.Fatalf("overflow input changed buffer to %d bytes", got)
	}
}

func TestDeleteLastRune(t *testing.T) {
	if got := string(deleteLastRune([]byte("abé"))); got != "ab" {
		t.Fatalf("deleteLastRune(abé) = %q, want \"ab\"", got)
	}
	if got := string(deleteLastRune([]byte("a"))); got != "" {
		t.Fatalf("deleteLastRune(a) = %q, want empty", got)
	}
	if got := deleteLastRune(nil); len(got) != 0 {
		t.Fatalf("deleteLastRune(nil) = %v, want empty", got)
	}
}

func TestMousePressedAccumulates(t *testing.T) {
	ctx := New()
	ctx.InputMouseDown(10, 10, MouseLeft)
	ctx.InputMouseUp(10, 10, MouseLeft)
	if ctx.mouseDown != 0 {
		t.Fatalf("mouseDown = %v, want 0", ctx.mouseDown)
	}
	// The press edge survives the release until End consumes it.
	if ctx.mousePressed != MouseLeft {
		t.Fatalf("mousePressed = %v, want MouseLeft", ctx.mousePressed)
	}
}

func TestFocusDroppedWhenNotRedeclared(t *testing.T) {
	ctx := newTestCtx()

	ctx.Begin()
	ctx.SetFocus(ctx.GetID("ghost"))
	ctx.End()
	if ctx.focus == 0 {
		t.Fatal("focus should survive the frame it was set in")
	}

	// No control renews the focus this frame, so End drops it.
	ctx.Begin()
	ctx.End()
	if ctx.focus != 0 {
		t.Fatalf("focus = %#x, want 0 after a frame with no claimant", ctx.focus)
	}
}

func TestBeginWithoutCallbacksPanics(t *testing.T) {
	ctx := New()
	expectContractPanic(t, func() { ctx.Begin() })
}

func newTestCtx() *Context {
	ctx := New()
	ctx.TextWidth = func(_ Font, s string) int { return 8 * len(s) }
	ctx.TextHeight = func(_ Font) int { return 8 }
	return ctx
}

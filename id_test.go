package microui

import "testing"

func TestGetIDKnownVector(t *testing.T) {
	ctx := New()
	// FNV-1a 32-bit of "a" seeded with the offset basis.
	if got := ctx.GetID("a"); got != 0xE40C292C {
		t.Fatalf("GetID(\"a\") = %#x, want 0xe40c292c", got)
	}
}

func TestGetIDDeterministic(t *testing.T) {
	ctx := New()
	a := ctx.GetID("button")
	b := ctx.GetID("button")
	if a != b {
		t.Fatalf("same label hashed to %#x and %#x", a, b)
	}
	if c := ctx.GetID("other"); c == a {
		t.Fatalf("distinct labels collided on %#x", a)
	}
}

func TestPushIDScopesHash(t *testing.T) {
	ctx := New()
	plain := ctx.GetID("item")

	ctx.PushID("scope")
	scoped := ctx.GetID("item")
	ctx.PopID()

	if plain == scoped {
		t.Fatal("scoped id should differ from unscoped id")
	}
	if got := ctx.GetID("item"); got != plain {
		t.Fatalf("id after PopID = %#x, want %#x", got, plain)
	}
}

func TestNestedScopesAreOrderSensitive(t *testing.T) {
	ctx := New()

	ctx.PushID("a")
	ctx.PushID("b")
	ab := ctx.GetID("item")
	ctx.PopID()
	ctx.PopID()

	ctx.PushID("b")
	ctx.PushID("a")
	ba := ctx.GetID("item")
	ctx.PopID()
	ctx.PopID()

	if ab == ba {
		t.Fatal("swapped scope order should change the id")
	}
}

func TestLastID(t *testing.T) {
	ctx := New()
	id := ctx.GetID("tracked")
	if got := ctx.LastID(); got != id {
		t.Fatalf("LastID = %#x, want %#x", got, id)
	}
}

package microui

import "testing"

func TestPoolGetMiss(t *testing.T) {
	ctx := New()
	items := make([]poolItem, 4)
	if idx := ctx.poolGet(items, 123); idx != -1 {
		t.Fatalf("poolGet on empty pool = %d, want -1", idx)
	}
}

func TestPoolInitAndGet(t *testing.T) {
	ctx := New()
	items := make([]poolItem, 4)
	ctx.frame = 1
	idx := ctx.poolInit(items, 42)
	if got := ctx.poolGet(items, 42); got != idx {
		t.Fatalf("poolGet = %d, want %d", got, idx)
	}
	if items[idx].lastUpdate != 1 {
		t.Fatalf("lastUpdate = %d, want 1", items[idx].lastUpdate)
	}
}

func TestPoolEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := New()
	items := make([]poolItem, 2)
	ctx.frame = 1
	ctx.poolInit(items, 1)
	ctx.frame = 2
	ctx.poolInit(items, 2)

	// Touch id 1 so id 2 becomes the stale entry.
	ctx.frame = 3
	ctx.poolUpdate(items, ctx.poolGet(items, 1))

	ctx.frame = 4
	ctx.poolInit(items, 3)

	if idx := ctx.poolGet(items, 2); idx != -1 {
		t.Fatalf("id 2 should have been evicted, found at %d", idx)
	}
	if idx := ctx.poolGet(items, 1); idx == -1 {
		t.Fatal("id 1 should have survived")
	}
	if idx := ctx.poolGet(items, 3); idx == -1 {
		t.Fatal("id 3 should be present")
	}
}

func TestPoolZeroLengthPanics(t *testing.T) {
	ctx := New()
	expectContractPanic(t, func() { ctx.poolInit(nil, 1) })
}

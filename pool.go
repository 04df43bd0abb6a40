package microui

// poolItem is one slot of a least-recently-used pool. Containers and
// tree-node flags persist across frames in fixed slot arrays; a slot is
// "touched" (lastUpdate = current frame) whenever its widget is declared,
// and the stalest slot is recycled when a new id needs one. Running out
// of slots is therefore not an error, it just forgets the state of the
// UI element that has been off-screen longest.
type poolItem struct {
	id         ID
	lastUpdate int
}

// poolGet returns the slot index holding id, or -1.
func (ctx *Context) poolGet(items []poolItem, id ID) int {
	for i := range items {
		if items[i].id == id {
			return i
		}
	}
	return -1
}

// poolInit claims a slot for id, evicting the least-recently-updated
// entry, and stamps it with the current frame.
func (ctx *Context) poolInit(items []poolItem, id ID) int {
	expect(len(items) > 0, "poolInit", "zero-length pool")
	n := -1
	f := ctx.frame
	for i := range items {
		if items[i].lastUpdate < f {
			f = items[i].lastUpdate
			n = i
		}
	}
	expect(n > -1, "poolInit", "no evictable slot")
	if items[n].id != 0 {
		logger.Debug("pool slot recycled", "evicted", items[n].id, "for", id)
	}
	items[n].id = id
	ctx.poolUpdate(items, n)
	return n
}

// poolUpdate marks slot idx as used this frame.
func (ctx *Context) poolUpdate(items []poolItem, idx int) {
	items[idx].lastUpdate = ctx.frame
}

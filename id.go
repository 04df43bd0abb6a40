package microui

// ID is a 32-bit hash identifying a widget across frames. Retained state
// (focus, hover, container geometry, tree-node expansion) is keyed by ID,
// so a widget's identity is its label combined with the id stack that was
// active when it was declared.
type ID uint32

// FNV-1a, 32 bit.
const (
	idInitial ID = 2166136261
	idPrime   ID = 16777619
)

func hashBytes(h ID, data []byte) ID {
	for _, b := range data {
		h = (h ^ ID(b)) * idPrime
	}
	return h
}

// GetID returns the id for data, seeded by the top of the id stack so
// that identical labels in different PushID scopes stay distinct. The
// result is also recorded as the seed TreeNode and window internals
// derive their sub-ids from.
func (ctx *Context) GetID(data string) ID {
	return ctx.getIDBytes([]byte(data))
}

func (ctx *Context) getIDBytes(data []byte) ID {
	seed := idInitial
	if ctx.idStack.len() > 0 {
		seed = ctx.idStack.peek()
	}
	ctx.lastID = hashBytes(seed, data)
	return ctx.lastID
}

// PushID opens an id scope: ids generated until the matching PopID are
// seeded by hash(data) instead of the root seed. Used to disambiguate
// identical labels, e.g. the same button text in a loop.
func (ctx *Context) PushID(data string) {
	ctx.idStack.push(ctx.GetID(data))
}

// PopID closes the scope opened by the matching PushID.
func (ctx *Context) PopID() {
	ctx.idStack.pop()
}

// LastID returns the id generated by the most recent GetID call,
// including the ones controls make internally. Useful for custom widgets
// built on top of the public primitives.
func (ctx *Context) LastID() ID {
	return ctx.lastID
}

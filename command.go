package microui

// CommandType tags the active variant of a Command.
type CommandType int

const (
	// CommandJump redirects iteration to another buffer index. Jumps
	// are internal plumbing that stitches root containers into z-order;
	// the iterator follows them, so renderers never see one.
	CommandJump CommandType = iota + 1
	// CommandClip sets the scissor rectangle for subsequent commands.
	CommandClip
	// CommandRect fills a rectangle with a solid color.
	CommandRect
	// CommandText draws a string at a position with the given font.
	CommandText
	// CommandIcon draws a built-in glyph centered in a rectangle.
	CommandIcon
)

// JumpCommand holds the buffer index iteration continues from. Indices
// are only meaningful within the frame that produced them.
type JumpCommand struct {
	Dst int
}

// ClipCommand sets the clip rectangle. Renderers must apply it exactly;
// the core emits commands that rely on the scissor for correctness.
type ClipCommand struct {
	Rect Rect
}

// RectCommand fills Rect with Color.
type RectCommand struct {
	Rect  Rect
	Color Color
}

// TextCommand draws Str with Font at Pos in Color.
type TextCommand struct {
	Font  Font
	Pos   Vec2
	Color Color
	Str   string
}

// IconCommand draws Icon centered in Rect in Color.
type IconCommand struct {
	Rect  Rect
	Icon  Icon
	Color Color
}

// Command is a tagged union of the draw variants. Type selects which
// field is valid; the others are zero.
type Command struct {
	Type CommandType
	Jump JumpCommand
	Clip ClipCommand
	Rect RectCommand
	Text TextCommand
	Icon IconCommand
}

// pushCommand appends a command of the given type and returns a pointer
// to it for the caller to fill in. The pointer is only valid until the
// next push since the buffer has fixed capacity and is never grown.
func (ctx *Context) pushCommand(typ CommandType) *Command {
	expect(len(ctx.commands) < cap(ctx.commands), "pushCommand",
		"command buffer full (%d)", cap(ctx.commands))
	ctx.commands = append(ctx.commands, Command{Type: typ})
	return &ctx.commands[len(ctx.commands)-1]
}

// pushJump appends a jump command with a placeholder destination and
// returns its index so End can patch the link once the target is known.
func (ctx *Context) pushJump(dst int) int {
	cmd := ctx.pushCommand(CommandJump)
	cmd.Jump.Dst = dst
	return len(ctx.commands) - 1
}

// CommandIterator walks the frame's command list in draw order,
// following jump links so root containers come out in ascending z-index
// regardless of declaration order.
type CommandIterator struct {
	ctx *Context
	idx int
	cur int
}

// Commands returns an iterator over the commands produced by the last
// Begin/End frame. The commands stay valid until the next Begin.
func (ctx *Context) Commands() CommandIterator {
	return CommandIterator{ctx: ctx}
}

// Next advances to the next drawable command, returning false when the
// frame is exhausted.
func (it *CommandIterator) Next() bool {
	cmds := it.ctx.commands
	for it.idx < len(cmds) {
		if cmds[it.idx].Type == CommandJump {
			it.idx = cmds[it.idx].Jump.Dst
			continue
		}
		it.cur = it.idx
		it.idx++
		return true
	}
	return false
}

// Command returns the command Next advanced to. The pointer is valid
// until the next Begin.
func (it *CommandIterator) Command() *Command {
	return &it.ctx.commands[it.cur]
}

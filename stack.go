package microui

// stack is a fixed-capacity LIFO backed by a preallocated slice. Every
// per-frame stack in the Context (ids, clip rects, layouts, containers,
// roots) is one of these; exceeding the capacity or popping an empty
// stack is a contract violation rather than a silent reallocation, which
// keeps frame cost flat and catches unbalanced begin/end pairs early.
type stack[T any] struct {
	items []T
}

func newStack[T any](capacity int) stack[T] {
	return stack[T]{items: make([]T, 0, capacity)}
}

func (s *stack[T]) push(item T) {
	expect(len(s.items) < cap(s.items), "stack.push",
		"capacity %d exceeded", cap(s.items))
	s.items = append(s.items, item)
}

func (s *stack[T]) pop() T {
	expect(len(s.items) > 0, "stack.pop", "empty stack")
	item := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return item
}

// peek returns the top item without removing it.
func (s *stack[T]) peek() T {
	expect(len(s.items) > 0, "stack.peek", "empty stack")
	return s.items[len(s.items)-1]
}

func (s *stack[T]) len() int {
	return len(s.items)
}

// clear empties the stack without releasing its backing array.
func (s *stack[T]) clear() {
	s.items = s.items[:0]
}

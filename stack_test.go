package microui

import "testing"

// expectContractPanic fails the test unless fn panics with a
// *ContractError.
func expectContractPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		if _, ok := r.(*ContractError); !ok {
			t.Fatalf("panic value is %T, want *ContractError", r)
		}
	}()
	fn()
}

func TestStackPushPop(t *testing.T) {
	s := newStack[int](4)
	s.push(1)
	s.push(2)
	s.push(3)
	if got := s.len(); got != 3 {
		t.Fatalf("len = %d, want 3", got)
	}
	if got := s.peek(); got != 3 {
		t.Fatalf("peek = %d, want 3", got)
	}
	if got := s.pop(); got != 3 {
		t.Fatalf("pop = %d, want 3", got)
	}
	if got := s.pop(); got != 2 {
		t.Fatalf("pop = %d, want 2", got)
	}
	s.clear()
	if got := s.len(); got != 0 {
		t.Fatalf("len after clear = %d, want 0", got)
	}
}

func TestStackOverflowPanics(t *testing.T) {
	s := newStack[int](2)
	s.push(1)
	s.push(2)
	expectContractPanic(t, func() { s.push(3) })
}

func TestStackPopEmptyPanics(t *testing.T) {
	s := newStack[int](2)
	expectContractPanic(t, func() { s.pop() })
}

func TestStackPeekEmptyPanics(t *testing.T) {
	s := newStack[int](2)
	expectContractPanic(t, func() { s.peek() })
}

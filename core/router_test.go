package core

import "testing"

func TestScreenStackLIFO(t *testing.T) {
	var s ScreenStack
	if s.Top() != nil {
		t.Fatalf("empty stack should have no top")
	}
	a := newJumpPickerScreen(nil)
	b := newJumpPickerScreen(nil)
	s.Push(a)
	s.Push(b)
	if s.Len() != 2 || s.Top() != b {
		t.Fatalf("top = %v, want last pushed", s.Top())
	}
	if got := s.Pop(); got != b {
		t.Fatalf("pop = %v, want b", got)
	}
	if got := s.Pop(); got != a {
		t.Fatalf("pop = %v, want a", got)
	}
	if s.Pop() != nil {
		t.Fatalf("pop on empty stack should be nil")
	}
}

func TestSwapTopReplacesOnlyActiveScreen(t *testing.T) {
	var s ScreenStack
	a := newJumpPickerScreen(nil)
	b := newJumpPickerScreen(nil)
	c := newJumpPickerScreen(nil)

	s.SwapTop(c)
	if s.Len() != 0 {
		t.Fatalf("swap on an empty stack must be a no-op")
	}

	s.Push(a)
	s.Push(b)
	s.SwapTop(c)
	if s.Top() != c {
		t.Fatalf("top = %v, want swapped screen", s.Top())
	}
	s.Pop()
	if s.Top() != a {
		t.Fatalf("swap must not touch screens below the top")
	}
}

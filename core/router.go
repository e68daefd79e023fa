package core

// ScreenStack layers modal screens over the tab row. The picker keeps it
// shallow: a search or editor modal, occasionally with the jump picker on
// top of it.
type ScreenStack struct {
	screens []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.screens = append(s.screens, screen)
}

func (s *ScreenStack) Pop() Screen {
	n := len(s.screens)
	if n == 0 {
		return nil
	}
	top := s.screens[n-1]
	s.screens = s.screens[:n-1]
	return top
}

func (s ScreenStack) Top() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// SwapTop installs the state a screen's Update returned without touching
// the rest of the stack.
func (s *ScreenStack) SwapTop(screen Screen) {
	if len(s.screens) == 0 || screen == nil {
		return
	}
	s.screens[len(s.screens)-1] = screen
}

func (s ScreenStack) Len() int {
	return len(s.screens)
}

package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"reportrange/core"
	"reportrange/period"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeString(t *testing.T, s core.Screen, text string) core.Screen {
	t.Helper()
	for _, r := range text {
		next, _, pop := s.Update(keyRunes(string(r)))
		if pop {
			t.Fatalf("typing %q closed the screen", text)
		}
		s = next
	}
	return s
}

func TestPresetSearchSelectEmitsChosenMsg(t *testing.T) {
	s := NewPresetSearchScreen()
	typeString(t, s, "last month")

	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatalf("enter should close the screen")
	}
	if cmd == nil {
		t.Fatalf("enter should emit a command")
	}
	msg, ok := cmd().(core.PresetChosenMsg)
	if !ok {
		t.Fatalf("got %T, want PresetChosenMsg", cmd())
	}
	if msg.Label != "Last month" {
		t.Fatalf("label = %q, want %q", msg.Label, "Last month")
	}
}

func TestPresetSearchEscCancelsWithoutMsg(t *testing.T) {
	s := NewPresetSearchScreen()
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !pop {
		t.Fatalf("esc should close the screen")
	}
	if cmd != nil {
		t.Fatalf("esc must not emit a message")
	}
}

func TestPresetSearchGroupsByCategory(t *testing.T) {
	s := NewPresetSearchScreen()
	view := s.View(60, 40)
	for _, section := range []string{"Month", "Quarter", "Calendar year", "Financial year"} {
		if !strings.Contains(view, section) {
			t.Fatalf("view missing section %q", section)
		}
	}
	if !strings.Contains(view, period.DefaultPresetLabel) {
		t.Fatalf("view missing default preset")
	}
}

func TestPresetSearchSuggestsOnNoMatch(t *testing.T) {
	s := NewPresetSearchScreen()
	typeString(t, s, "lsat mnth")
	view := s.View(60, 40)
	if !strings.Contains(view, "No matching presets") {
		t.Fatalf("expected empty result notice, got %q", view)
	}
	if !strings.Contains(view, "Did you mean") {
		t.Fatalf("expected a suggestion, got %q", view)
	}
}

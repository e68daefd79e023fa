package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// JumpTarget is a single-key shortcut to a pane on the active tab.
type JumpTarget struct {
	Key   string
	Label string
}

// JumpTargetProvider is implemented by tabs whose panes can be reached
// with jump keys.
type JumpTargetProvider interface {
	JumpTargets() []JumpTarget
	JumpToTarget(m *Model, key string) (bool, tea.Cmd)
}

type jumpPickerScreen struct {
	targets []JumpTarget
}

func newJumpPickerScreen(targets []JumpTarget) Screen {
	return &jumpPickerScreen{targets: targets}
}

func (s *jumpPickerScreen) Scope() string { return "screen:jump-picker" }
func (s *jumpPickerScreen) Title() string { return "Jump to pane" }

func (s *jumpPickerScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch keyMsg.String() {
	case "esc", "ctrl+c":
		return s, nil, true
	}
	if keyMsg.Type != tea.KeyRunes || len(keyMsg.Runes) != 1 {
		return s, nil, false
	}
	pressed := strings.ToLower(string(keyMsg.Runes))
	for _, t := range s.targets {
		if strings.EqualFold(t.Key, pressed) {
			return s, func() tea.Msg { return JumpTargetSelectedMsg{Key: t.Key} }, true
		}
	}
	return s, nil, false
}

func (s *jumpPickerScreen) View(width, height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(colorText)

	var b strings.Builder
	for i, t := range s.targets {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(keyStyle.Render(t.Key))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(t.Label))
	}
	body := b.String()
	if body == "" {
		body = lipgloss.NewStyle().Foreground(colorMuted).Render("No targets")
	}
	lines := strings.Split(body, "\n")
	for i := range lines {
		lines[i] = TrimToWidth(lines[i], width)
	}
	return ClipHeight(strings.Join(lines, "\n"), height)
}

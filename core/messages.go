package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

type TabSwitchMsg struct {
	Index int
}

type JumpTargetSelectedMsg struct {
	Key string
}

// PresetChosenMsg is emitted by the preset search screen when a catalog
// entry is selected.
type PresetChosenMsg struct {
	Label string
}

// BoundaryEnteredMsg carries a typed year/month for one range boundary.
// Start selects which boundary the value lands on.
type BoundaryEnteredMsg struct {
	Start bool
	Year  int
	Month time.Month
}

// OpenBoundaryEditorMsg asks the shell to open the boundary text editor.
type OpenBoundaryEditorMsg struct {
	Start bool
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PresetChosenMsg:
		r := m.Widget.SelectPreset(msg.Label)
		m.SetStatus(fmt.Sprintf("%s: %s", m.Widget.Label(), r.Format(m.DateFormat)))
		return m, nil
	case BoundaryEnteredMsg:
		if msg.Start {
			m.Widget.SetStartMonth(msg.Year, msg.Month)
		} else {
			m.Widget.SetEndMonth(msg.Year, msg.Month)
		}
		m.SetStatus("Range: " + m.FormatRange())
		return m, nil
	case OpenBoundaryEditorMsg:
		if m.OpenBoundaryEditor != nil {
			m.screens.Push(m.OpenBoundaryEditor(&m, msg.Start))
		}
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, nil
	case JumpTargetSelectedMsg:
		if len(m.tabs) == 0 {
			return m, nil
		}
		provider, ok := m.tabs[m.activeTab].(JumpTargetProvider)
		if !ok {
			return m, nil
		}
		_, cmd := provider.JumpToTarget(&m, msg.Key)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if cmd, handled := m.routeToTopScreen(msg); handled {
			return m, cmd
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			// Cancel: close without emitting. Mid-edit state stays so a
			// future open would show it, not the last applied range.
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, "apply", scope) {
			return m.applyAndClose()
		}
		if m.keys.IsAction(msg, "jump", scope) {
			return m, m.activateJumpPicker()
		}
		if len(m.tabs) > 0 {
			if handler, ok := m.tabs[m.activeTab].(PaneKeyHandler); ok {
				handled, cmd := handler.HandlePaneKey(&m, msg)
				if handled {
					return m, cmd
				}
			}
		}
		if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
			return m, nil
		}
		if m.keys.IsAction(msg, "open-preset-search", scope) && m.OpenPresetModal != nil {
			m.screens.Push(m.OpenPresetModal(&m))
			return m, nil
		}
		for i := range m.tabs {
			if m.keys.IsAction(msg, fmt.Sprintf("switch-tab-%d", i+1), scope) {
				m.SwitchTab(i)
				return m, nil
			}
		}
		if len(m.tabs) > 0 {
			return m, m.tabs[m.activeTab].Update(&m, msg)
		}
	}

	if cmd, handled := m.routeToTopScreen(msg); handled {
		return m, cmd
	}
	if len(m.tabs) > 0 {
		return m, m.tabs[m.activeTab].Update(&m, msg)
	}
	return m, nil
}

// routeToTopScreen hands a message to the active modal, if any, and
// applies the pop-or-swap result to the stack.
func (m *Model) routeToTopScreen(msg tea.Msg) (tea.Cmd, bool) {
	top := m.screens.Top()
	if top == nil {
		return nil, false
	}
	next, cmd, pop := top.Update(msg)
	if pop {
		m.screens.Pop()
		return cmd, true
	}
	m.screens.SwapTop(next)
	return cmd, true
}

// applyAndClose runs the apply gate: emit and close on a valid range,
// surface the validator message on an invalid one.
func (m Model) applyAndClose() (tea.Model, tea.Cmd) {
	event, ok := m.Widget.Apply()
	if !ok {
		m.SetError(m.Widget.Validation().Message)
		return m, nil
	}
	m.SetStatus("Applied " + event.Range.Format(m.DateFormat))
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) activateJumpPicker() tea.Cmd {
	if len(m.tabs) == 0 {
		return nil
	}
	provider, ok := m.tabs[m.activeTab].(JumpTargetProvider)
	if !ok {
		return StatusCmd("No jump targets on this tab")
	}
	targets := provider.JumpTargets()
	if len(targets) == 0 {
		return StatusCmd("No jump targets on this tab")
	}
	m.screens.Push(newJumpPickerScreen(targets))
	return nil
}

package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"reportrange/core"
)

type commandOption struct {
	id     string
	name   string
	desc   string
	reason string
}

func (i commandOption) Title() string {
	if i.reason != "" {
		return fmt.Sprintf("%s (%s)", i.name, i.reason)
	}
	return i.name
}
func (i commandOption) Description() string { return i.desc }
func (i commandOption) FilterValue() string { return i.name + " " + i.desc + " " + i.id }

// CommandScreen is the palette: a text filter over the command registry
// for the scope the palette was opened from.
type CommandScreen struct {
	scope  string
	search func(query string) []core.CommandResult
	input  textinput.Model
	list   list.Model
}

func NewCommandScreen(scope string, search func(query string) []core.CommandResult) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	s := &CommandScreen{scope: scope, search: search, input: inp, list: lst}
	s.refresh()
	return s
}

func (s *CommandScreen) Title() string { return "Command Palette" }
func (s *CommandScreen) Scope() string { return "screen:command" }

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, nil, true
		case "enter":
			if it, ok := s.list.SelectedItem().(commandOption); ok {
				if it.reason != "" {
					return s, core.StatusCmd(it.reason), true
				}
				id := it.id
				return s, func() tea.Msg { return core.CommandExecuteMsg{CommandID: id} }, true
			}
		}
	}
	var cmd1 tea.Cmd
	s.input, cmd1 = s.input.Update(msg)
	s.refresh()
	var cmd2 tea.Cmd
	s.list, cmd2 = s.list.Update(msg)
	return s, tea.Batch(cmd1, cmd2), false
}

func (s *CommandScreen) refresh() {
	query := strings.TrimSpace(s.input.Value())
	results := s.search(query)
	items := make([]list.Item, 0, len(results))
	for _, r := range results {
		items = append(items, commandOption{
			id:     r.CommandID,
			name:   r.Name,
			desc:   r.Desc,
			reason: r.Reason,
		})
	}
	_ = s.list.SetItems(items)
}

func (s *CommandScreen) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(6, height-4))
	return "Command Palette (scope: " + s.scope + ")\n" + s.input.View() + "\n" + s.list.View()
}

package core

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is a palette action. Gate returns a non-empty reason while the
// command is not actionable; the apply command routes the validator
// message through it so the palette and the status bar say the same
// thing.
type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Gate        func(m *Model) string
}

func (c Command) gateReason(m *Model) string {
	if c.Gate == nil {
		return ""
	}
	return c.Gate(m)
}

// CommandResult is one palette row. A non-empty Reason marks the command
// disabled.
type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Reason    string
}

func (r CommandResult) Disabled() bool { return r.Reason != "" }

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: make(map[string]Command, len(cmds))}
	for _, c := range cmds {
		reg.commands[c.ID] = c
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	r.commands[c.ID] = c
}

// Search filters the registry by scope and a case-insensitive substring
// of the name, description or ID. Enabled commands sort first.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]CommandResult, 0, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(c.Name+" "+c.Description+" "+c.ID), q) {
			continue
		}
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Reason:    c.gateReason(m),
		})
	}
	slices.SortFunc(results, func(a, b CommandResult) int {
		if a.Disabled() != b.Disabled() {
			if a.Disabled() {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return results
}

// Execute runs the named command unless its gate holds it closed, in
// which case the gate reason lands on the status bar.
func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if reason := c.gateReason(m); reason != "" {
		return StatusCmd(reason)
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}

package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"reportrange/core"
)

func staticSearch(results []core.CommandResult) func(string) []core.CommandResult {
	return func(query string) []core.CommandResult {
		if query == "" {
			return results
		}
		out := make([]core.CommandResult, 0, len(results))
		for _, r := range results {
			if strings.Contains(strings.ToLower(r.Name), strings.ToLower(query)) {
				out = append(out, r)
			}
		}
		return out
	}
}

func TestCommandScreenSelectEmitsExecuteMsg(t *testing.T) {
	s := NewCommandScreen("tab:presets", staticSearch([]core.CommandResult{
		{CommandID: "apply", Name: "Apply range", Desc: "emit and close"},
	}))
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatalf("enter should close the palette")
	}
	msg, ok := cmd().(core.CommandExecuteMsg)
	if !ok {
		t.Fatalf("got %T, want CommandExecuteMsg", cmd())
	}
	if msg.CommandID != "apply" {
		t.Fatalf("command = %q, want apply", msg.CommandID)
	}
}

func TestCommandScreenDisabledShowsReason(t *testing.T) {
	s := NewCommandScreen("tab:custom", staticSearch([]core.CommandResult{
		{CommandID: "apply", Name: "Apply range", Reason: "The selected date range must cover at least 1 year."},
	}))
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatalf("enter on a disabled command still closes the palette")
	}
	status, ok := cmd().(core.StatusMsg)
	if !ok {
		t.Fatalf("got %T, want StatusMsg", cmd())
	}
	if !strings.Contains(status.Text, "1 year") {
		t.Fatalf("status = %q, want the disable reason", status.Text)
	}
}

func TestCommandScreenFiltersByQuery(t *testing.T) {
	s := NewCommandScreen("tab:presets", staticSearch([]core.CommandResult{
		{CommandID: "apply", Name: "Apply range"},
		{CommandID: "reset-compare", Name: "Reset comparison options"},
	}))
	var scr core.Screen = s
	scr = typeString(t, scr, "reset")
	view := scr.View(60, 20)
	if !strings.Contains(view, "Reset comparison options") {
		t.Fatalf("expected filtered command in view")
	}
	if strings.Contains(view, "Apply range") {
		t.Fatalf("filter should drop non-matching commands")
	}
}

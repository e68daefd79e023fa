package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCommandSearchScopesAndFilters(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "apply", Name: "Apply range", Description: "emit and close"},
		{ID: "reset", Name: "Reset comparison options", Scopes: []string{"pane:compare:options"}},
	})
	m := newTestModel()

	everywhere := reg.Search("", "pane:presets:catalog", &m)
	if len(everywhere) != 1 || everywhere[0].CommandID != "apply" {
		t.Fatalf("results = %v, want only apply", everywhere)
	}

	compareScope := reg.Search("reset", "pane:compare:options", &m)
	if len(compareScope) != 1 || compareScope[0].CommandID != "reset" {
		t.Fatalf("results = %v, want reset", compareScope)
	}
}

func TestCommandSearchSortsGatedLast(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Aardvark", Gate: func(m *Model) string { return "not now" }},
		{ID: "z", Name: "Zebra"},
	})
	m := newTestModel()
	results := reg.Search("", "anything", &m)
	if len(results) != 2 || results[0].CommandID != "z" {
		t.Fatalf("results = %v, want enabled command first", results)
	}
	if !results[1].Disabled() || results[1].Reason != "not now" {
		t.Fatalf("gated entry should carry its reason, got %v", results[1])
	}
}

func TestExecuteGatedReturnsReason(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{
			ID:   "apply",
			Name: "Apply range",
			Execute: func(m *Model) tea.Cmd {
				t.Fatalf("gated command must not execute")
				return nil
			},
			Gate: func(m *Model) string {
				return "The selected date range must cover at least 1 year."
			},
		},
	})
	m := newTestModel()
	cmd := reg.Execute("apply", &m)
	if cmd == nil {
		t.Fatalf("expected a status command")
	}
	status, ok := cmd().(StatusMsg)
	if !ok {
		t.Fatalf("got %T, want StatusMsg", cmd())
	}
	if !strings.Contains(status.Text, "1 year") {
		t.Fatalf("status = %q, want the gate reason", status.Text)
	}
}

func TestExecuteRunsWhenGateClears(t *testing.T) {
	ran := false
	reg := NewCommandRegistry([]Command{
		{
			ID:      "apply",
			Name:    "Apply range",
			Execute: func(m *Model) tea.Cmd { ran = true; return nil },
			Gate:    func(m *Model) string { return "" },
		},
	})
	m := newTestModel()
	reg.Execute("apply", &m)
	if !ran {
		t.Fatalf("command with an open gate should execute")
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	reg := NewCommandRegistry(nil)
	m := newTestModel()
	cmd := reg.Execute("nope", &m)
	status, ok := cmd().(StatusMsg)
	if !ok || !strings.Contains(status.Text, "Unknown command") {
		t.Fatalf("got %v, want unknown command status", status)
	}
}

package core

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"reportrange/core/widgets"
)

// Pane is one focusable region inside a tab. Selection highlights a pane;
// focus routes keys into it until esc blurs it again.
type Pane interface {
	ID() string
	Title() string
	Scope() string
	JumpKey() byte
	Focusable() bool
	Update(msg tea.Msg) tea.Cmd
	View(width, height int, selected, focused bool) string
	OnFocus() tea.Cmd
	OnBlur() tea.Cmd
}

// StaticPane renders fixed text. Used for placeholder regions and tests.
type StaticPane struct {
	id    string
	title string
	scope string
	jump  byte
	focus bool
	text  string
}

func NewStaticPane(id, title, scope string, jumpKey byte, focusable bool, text string) *StaticPane {
	return &StaticPane{id: id, title: title, scope: scope, jump: jumpKey, focus: focusable, text: text}
}

func (p *StaticPane) ID() string                 { return p.id }
func (p *StaticPane) Title() string              { return p.title }
func (p *StaticPane) Scope() string              { return p.scope }
func (p *StaticPane) JumpKey() byte              { return p.jump }
func (p *StaticPane) Focusable() bool            { return p.focus }
func (p *StaticPane) Update(msg tea.Msg) tea.Cmd { return nil }
func (p *StaticPane) View(width, height int, selected, focused bool) string {
	return widgets.Pane{Title: p.title, Content: p.text, Selected: selected, Focused: focused}.Render(width, height)
}
func (p *StaticPane) OnFocus() tea.Cmd { return nil }
func (p *StaticPane) OnBlur() tea.Cmd  { return nil }

// PaneHost tracks which pane of a tab is selected and which, if any, is
// focused.
type PaneHost struct {
	panes    []Pane
	selected int
	focused  int
}

func NewPaneHost(panes ...Pane) PaneHost {
	seen := make(map[byte]string, len(panes))
	for _, pane := range panes {
		if pane == nil {
			continue
		}
		key := normalizePaneJumpKey(pane.JumpKey())
		if key == 0 {
			panic(fmt.Sprintf("pane %q must declare a single alphanumeric jump key", pane.ID()))
		}
		if other, exists := seen[key]; exists {
			panic(fmt.Sprintf("duplicate jump key %q across panes %q and %q", string(key), other, pane.ID()))
		}
		seen[key] = pane.ID()
	}
	return PaneHost{panes: panes, selected: 0, focused: -1}
}

func (h *PaneHost) Scope() string {
	if h.focused >= 0 && h.focused < len(h.panes) {
		return h.panes[h.focused].Scope()
	}
	if h.selected >= 0 && h.selected < len(h.panes) {
		return h.panes[h.selected].Scope()
	}
	return ""
}

func (h *PaneHost) ActivePaneTitle() string {
	if idx := h.activeIndex(); idx >= 0 {
		return h.panes[idx].Title()
	}
	return ""
}

func (h *PaneHost) activeIndex() int {
	if h.focused >= 0 && h.focused < len(h.panes) {
		return h.focused
	}
	if h.selected >= 0 && h.selected < len(h.panes) {
		return h.selected
	}
	return -1
}

func (h *PaneHost) UpdateActive(msg tea.Msg) tea.Cmd {
	idx := h.activeIndex()
	if idx < 0 {
		return nil
	}
	return h.panes[idx].Update(msg)
}

// HandlePaneKey implements the selection/focus protocol: arrows move the
// selection while nothing is focused, enter focuses, esc blurs. Keys not
// consumed here fall through to the active pane.
func (h *PaneHost) HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(h.panes) == 0 {
		return false, nil
	}
	if h.focused >= 0 && h.focused < len(h.panes) {
		if msg.String() == "esc" {
			return true, h.unfocus(m)
		}
		return false, nil
	}
	switch msg.String() {
	case "left", "up":
		return true, h.move(m, -1)
	case "right", "down":
		return true, h.move(m, 1)
	case "enter":
		return true, h.focusSelected(m)
	default:
		return false, nil
	}
}

func (h *PaneHost) move(m *Model, delta int) tea.Cmd {
	if len(h.panes) <= 1 {
		return nil
	}
	prev := h.selected
	h.selected = (h.selected + delta + len(h.panes)) % len(h.panes)
	if prev == h.selected {
		return nil
	}
	h.focused = -1
	m.SetStatus("Selected pane: " + h.panes[h.selected].Title())
	return nil
}

func (h *PaneHost) focusSelected(m *Model) tea.Cmd {
	if h.selected < 0 || h.selected >= len(h.panes) {
		return nil
	}
	if !h.panes[h.selected].Focusable() {
		m.SetStatus(h.panes[h.selected].Title() + " is read-only")
		return nil
	}
	prev := h.focused
	h.focused = h.selected
	m.SetStatus("Focused pane: " + h.panes[h.focused].Title())
	if prev >= 0 && prev < len(h.panes) && prev != h.focused {
		return tea.Batch(h.panes[prev].OnBlur(), h.panes[h.focused].OnFocus())
	}
	return h.panes[h.focused].OnFocus()
}

func (h *PaneHost) unfocus(m *Model) tea.Cmd {
	if h.focused < 0 || h.focused >= len(h.panes) {
		return nil
	}
	idx := h.focused
	h.focused = -1
	m.SetStatus("Pane unfocused: " + h.panes[idx].Title())
	return h.panes[idx].OnBlur()
}

type paneWidget struct {
	pane     Pane
	selected bool
	focused  bool
}

func (w paneWidget) Render(width, height int) string {
	if w.pane == nil {
		return widgets.Pane{Title: "Missing Pane"}.Render(width, height)
	}
	return w.pane.View(width, height, w.selected, w.focused)
}

// BuildPane wraps the named pane as a layout widget carrying the host's
// current selection/focus flags.
func (h *PaneHost) BuildPane(id string) widgets.Widget {
	for idx, p := range h.panes {
		if p.ID() == id {
			return paneWidget{pane: p, selected: idx == h.selected, focused: idx == h.focused}
		}
	}
	return widgets.Pane{Title: "Missing Pane", Content: id}
}

func (h *PaneHost) JumpTargets() []JumpTarget {
	out := make([]JumpTarget, 0, len(h.panes))
	for _, pane := range h.panes {
		if pane == nil || !pane.Focusable() {
			continue
		}
		key := normalizePaneJumpKey(pane.JumpKey())
		if key == 0 {
			continue
		}
		out = append(out, JumpTarget{Key: string(key), Label: pane.Title()})
	}
	return out
}

func (h *PaneHost) JumpToTarget(m *Model, key string) (bool, tea.Cmd) {
	jumpKey := normalizeJumpTargetKey(key)
	if jumpKey == 0 {
		return false, nil
	}
	target := -1
	for idx, pane := range h.panes {
		if pane == nil || !pane.Focusable() {
			continue
		}
		if normalizePaneJumpKey(pane.JumpKey()) == jumpKey {
			target = idx
			break
		}
	}
	if target < 0 {
		return false, nil
	}

	prevFocused := h.focused
	h.selected = target
	h.focused = target
	m.SetStatus("Focused pane: " + h.panes[target].Title())

	if prevFocused >= 0 && prevFocused < len(h.panes) && prevFocused != target {
		return true, tea.Batch(h.panes[prevFocused].OnBlur(), h.panes[target].OnFocus())
	}
	if prevFocused != target {
		return true, h.panes[target].OnFocus()
	}
	return true, nil
}

func normalizePaneJumpKey(key byte) byte {
	if key == 0 {
		return 0
	}
	r := rune(key)
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return 0
	}
	return byte(unicode.ToLower(r))
}

func normalizeJumpTargetKey(key string) byte {
	key = strings.TrimSpace(strings.ToLower(key))
	if len(key) != 1 {
		return 0
	}
	return normalizePaneJumpKey(key[0])
}

// LayoutBuilder arranges a tab's panes into a layout widget.
type LayoutBuilder func(host *PaneHost) widgets.Widget

// HostedTab is a Tab built from a pane host plus a layout function; all
// three picker tabs are HostedTabs.
type HostedTab struct {
	id     string
	title  string
	host   PaneHost
	layout LayoutBuilder
}

func NewHostedTab(id, title string, layout LayoutBuilder, panes ...Pane) *HostedTab {
	return &HostedTab{id: id, title: title, host: NewPaneHost(panes...), layout: layout}
}

func (t *HostedTab) ID() string              { return t.id }
func (t *HostedTab) Title() string           { return t.title }
func (t *HostedTab) Scope() string           { return t.host.Scope() }
func (t *HostedTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }

func (t *HostedTab) JumpTargets() []JumpTarget {
	return t.host.JumpTargets()
}

func (t *HostedTab) JumpToTarget(m *Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}

func (t *HostedTab) HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}

func (t *HostedTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(msg)
}

func (t *HostedTab) Build(m *Model) widgets.Widget {
	if t.layout == nil {
		return widgets.Pane{Title: t.title}
	}
	return t.layout(&t.host)
}

package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"reportrange/core/widgets"
	"reportrange/picker"
)

// Screen is a modal pushed over the tabs. Update's third result asks the
// shell to pop the screen.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

type PaneKeyHandler interface {
	HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
	ActivePaneTitle() string
}

// Model is the bubbletea root: tab shell, screen stack, and the shared
// picker widget every tab mutates.
type Model struct {
	width     int
	height    int
	tabs      []Tab
	activeTab int
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool

	DateFormat string
	Widget     *picker.Widget

	OpenCommandModal   func(m *Model, scope string) Screen
	OpenPresetModal    func(m *Model) Screen
	OpenBoundaryEditor func(m *Model, start bool) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, w *picker.Widget, dateFormat string) Model {
	return Model{
		tabs:       tabs,
		keys:       keys,
		commands:   commands,
		Widget:     w,
		DateFormat: dateFormat,
		status:     "Ready",
		width:      100,
		height:     32,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	m.activeTab = index
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

// FormatRange renders a range with the configured date layout.
func (m Model) FormatRange() string {
	return m.Widget.Range().Format(m.DateFormat)
}

package screens

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"reportrange/core"
	"reportrange/period"
)

const boundaryLayout = "2006-01"

// BoundaryEditor lets the user type a year-month for one range boundary.
// Enter parses and emits BoundaryEnteredMsg; a bad value keeps the editor
// open with an error line.
type BoundaryEditor struct {
	start   bool
	input   textinput.Model
	problem string
}

func NewBoundaryEditor(start bool, current period.Cursor) *BoundaryEditor {
	inp := textinput.New()
	inp.Prompt = "month> "
	inp.Placeholder = boundaryLayout
	inp.CharLimit = len(boundaryLayout)
	inp.SetValue(current.String())
	inp.Focus()
	return &BoundaryEditor{start: start, input: inp}
}

func (s *BoundaryEditor) Title() string {
	if s.start {
		return "Edit start month"
	}
	return "Edit end month"
}

func (s *BoundaryEditor) Scope() string { return "screen:boundary-editor" }

func (s *BoundaryEditor) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return s, nil, true
		case "enter":
			value := strings.TrimSpace(s.input.Value())
			parsed, err := time.Parse(boundaryLayout, value)
			if err != nil {
				s.problem = fmt.Sprintf("%q is not a valid month, use %s", value, boundaryLayout)
				return s, nil, false
			}
			start, year, month := s.start, parsed.Year(), parsed.Month()
			return s, func() tea.Msg {
				return core.BoundaryEnteredMsg{Start: start, Year: year, Month: month}
			}, true
		}
		// Only typing clears the error. Cursor blink ticks and other
		// background messages land here too and must leave it on screen.
		s.problem = ""
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

func (s *BoundaryEditor) View(width, height int) string {
	lines := []string{s.Title(), s.input.View()}
	if s.problem != "" {
		lines = append(lines, s.problem)
	}
	lines = append(lines, "", "enter: save  esc: cancel")
	return core.ClipHeight(strings.Join(lines, "\n"), max(4, height))
}

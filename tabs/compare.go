package tabs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"reportrange/core"
	"reportrange/core/widgets"
	"reportrange/period"
	"reportrange/picker"
)

const (
	compareRowPreviousPeriod = iota
	compareRowPeriodsCount
	compareRowPreviousYear
	compareRowFYToDate
	compareRowByCompany
	compareRowByCategory
	compareRowEnd
)

// ComparePane edits the comparison record. The periods-to-compare row only
// shows while previous-period comparison is on; the stored count survives
// the toggle either way.
type ComparePane struct {
	widget *picker.Widget
	cursor int
}

func NewComparePane(w *picker.Widget) *ComparePane {
	return &ComparePane{widget: w}
}

func (p *ComparePane) ID() string      { return "compare" }
func (p *ComparePane) Title() string   { return "Compare" }
func (p *ComparePane) Scope() string   { return "pane:compare:options" }
func (p *ComparePane) JumpKey() byte   { return 'c' }
func (p *ComparePane) Focusable() bool { return true }
func (p *ComparePane) OnFocus() tea.Cmd {
	return core.StatusCmd("Space toggles, h/l adjust periods, r resets")
}
func (p *ComparePane) OnBlur() tea.Cmd { return nil }

func (p *ComparePane) rows() []int {
	rows := []int{compareRowPreviousPeriod}
	if p.widget.Compare().ToPreviousPeriod {
		rows = append(rows, compareRowPeriodsCount)
	}
	return append(rows,
		compareRowPreviousYear,
		compareRowFYToDate,
		compareRowByCompany,
		compareRowByCategory,
	)
}

func (p *ComparePane) clampCursor() {
	if n := len(p.rows()); p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *ComparePane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	p.clampCursor()
	rows := p.rows()
	row := rows[p.cursor]
	switch keyMsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(rows)-1 {
			p.cursor++
		}
	case " ", "space", "enter":
		return p.toggle(row)
	case "h", "-":
		if row == compareRowPeriodsCount {
			p.widget.SetPeriodsToCompare(p.widget.Compare().PeriodsToCompare - 1)
			return p.statusCmd()
		}
	case "l", "+", "=":
		if row == compareRowPeriodsCount {
			p.widget.SetPeriodsToCompare(p.widget.Compare().PeriodsToCompare + 1)
			return p.statusCmd()
		}
	case "r":
		p.widget.ResetCompare()
		p.cursor = 0
		return core.StatusCmd("Comparison options reset")
	}
	return nil
}

func (p *ComparePane) toggle(row int) tea.Cmd {
	switch row {
	case compareRowPreviousPeriod:
		p.widget.ToggleToPreviousPeriod()
		p.clampCursor()
	case compareRowPreviousYear:
		p.widget.ToggleToPreviousYear()
	case compareRowFYToDate:
		p.widget.ToggleToFinancialYearToDate()
	case compareRowByCompany:
		p.widget.ToggleByCompany()
	case compareRowByCategory:
		p.widget.ToggleByCategoryClassLocation()
	case compareRowPeriodsCount:
		return nil
	}
	return p.statusCmd()
}

func (p *ComparePane) statusCmd() tea.Cmd {
	return core.StatusCmd(compareSummary(p.widget.Compare()))
}

func (p *ComparePane) View(width, height int, selected, focused bool) string {
	c := p.widget.Compare()
	rows := p.rows()
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		prefix := "  "
		if i == p.cursor {
			prefix = "> "
		}
		lines = append(lines, prefix+compareRowLabel(row, c))
	}
	return widgets.Pane{
		Title:    p.Title(),
		Content:  strings.Join(lines, "\n"),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

func compareRowLabel(row int, c period.CompareOptions) string {
	box := func(on bool) string {
		if on {
			return "[x] "
		}
		return "[ ] "
	}
	switch row {
	case compareRowPreviousPeriod:
		return box(c.ToPreviousPeriod) + "Compare to previous period"
	case compareRowPeriodsCount:
		return fmt.Sprintf("    Periods to compare: %d  (h/l)", c.PeriodsToCompare)
	case compareRowPreviousYear:
		return box(c.ToPreviousYear) + "Compare to previous year"
	case compareRowFYToDate:
		return box(c.ToFinancialYearToDate) + "Compare to financial year to date"
	case compareRowByCompany:
		return box(c.ByCompany) + "Compare by company"
	case compareRowByCategory:
		return box(c.ByCategoryClassLocation) + "Compare by category, class, location"
	}
	return ""
}

// NewCompareTab builds the third tab: the option editor beside the live
// selection summary.
func NewCompareTab(w *picker.Widget, dateFormat string) core.Tab {
	layout := func(host *core.PaneHost) widgets.Widget {
		return widgets.HStack{
			Widgets: []widgets.Widget{host.BuildPane("compare"), host.BuildPane("compare-summary")},
			Ratios:  []float64{0.6, 0.4},
			Gap:     1,
		}
	}
	summary := NewSummaryPane(w, dateFormat)
	return core.NewHostedTab("compare", "Compare", layout,
		NewComparePane(w),
		&renamedPane{Pane: summary, id: "compare-summary", jump: 'u'},
	)
}

// renamedPane reuses a pane under a different id and jump key so the same
// summary can sit on two tabs without colliding.
type renamedPane struct {
	core.Pane
	id   string
	jump byte
}

func (p *renamedPane) ID() string    { return p.id }
func (p *renamedPane) JumpKey() byte { return p.jump }

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

// DurationPane cycles the duration class. Choosing a class resets the
// range to the class's trailing default window.
type DurationPane struct {
	widget *picker.Widget
	cursor int
}

func NewDurationPane(w *picker.Widget) *DurationPane {
	p := &DurationPane{widget: w}
	for i, c := range period.Classes() {
		if c == w.Class() {
			p.cursor = i
		}
	}
	return p
}

func (p *DurationPane) ID() string      { return "duration" }
func (p *DurationPane) Title() string   { return "Duration" }
func (p *DurationPane) Scope() string   { return "pane:custom:duration" }
func (p *DurationPane) JumpKey() byte   { return 'd' }
func (p *DurationPane) Focusable() bool { return true }
func (p *DurationPane) OnFocus() tea.Cmd {
	return core.StatusCmd("Enter picks a duration and resets the range")
}
func (p *DurationPane) OnBlur() tea.Cmd { return nil }

func (p *DurationPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	classes := period.Classes()
	switch keyMsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(classes)-1 {
			p.cursor++
		}
	case "enter":
		class := classes[p.cursor]
		r := p.widget.SetClass(class)
		return core.StatusCmd(fmt.Sprintf("Duration %s: %s", class, r))
	}
	return nil
}

func (p *DurationPane) View(width, height int, selected, focused bool) string {
	lines := make([]string, 0, len(period.Classes()))
	for i, c := range period.Classes() {
		prefix := "  "
		if i == p.cursor {
			prefix = "> "
		}
		mark := "  "
		if c == p.widget.Class() {
			mark = " ●"
		}
		lines = append(lines, prefix+c.String()+mark)
	}
	return widgets.Pane{
		Title:    p.Title(),
		Content:  strings.Join(lines, "\n"),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

// BoundaryPane edits one end of the range a month at a time. Edits land
// on the widget immediately, so the opposite boundary clamps live.
type BoundaryPane struct {
	widget *picker.Widget
	start  bool
}

func NewBoundaryPane(w *picker.Widget, start bool) *BoundaryPane {
	return &BoundaryPane{widget: w, start: start}
}

func (p *BoundaryPane) ID() string {
	if p.start {
		return "start"
	}
	return "end"
}

func (p *BoundaryPane) Title() string {
	if p.start {
		return "From"
	}
	return "To"
}

func (p *BoundaryPane) Scope() string {
	return "pane:custom:" + p.ID()
}

func (p *BoundaryPane) JumpKey() byte {
	if p.start {
		return 'f'
	}
	return 'e'
}

func (p *BoundaryPane) Focusable() bool { return true }
func (p *BoundaryPane) OnFocus() tea.Cmd {
	return core.StatusCmd("Arrows step month/year, t types a month")
}
func (p *BoundaryPane) OnBlur() tea.Cmd { return nil }

func (p *BoundaryPane) cursor() period.Cursor {
	if p.start {
		return p.widget.StartCursor()
	}
	return p.widget.EndCursor()
}

func (p *BoundaryPane) commit(c period.Cursor) tea.Cmd {
	var r period.Range
	if p.start {
		r = p.widget.SetStartMonth(c.Year, c.Month)
	} else {
		r = p.widget.SetEndMonth(c.Year, c.Month)
	}
	return core.StatusCmd("Range: " + r.String())
}

func (p *BoundaryPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "left", "h":
		return p.commit(p.cursor().AddMonths(-1))
	case "right", "l":
		return p.commit(p.cursor().AddMonths(1))
	case "down", "j":
		return p.commit(p.cursor().AddYears(-1))
	case "up", "k":
		return p.commit(p.cursor().AddYears(1))
	case "t":
		start := p.start
		return func() tea.Msg { return core.OpenBoundaryEditorMsg{Start: start} }
	}
	return nil
}

func (p *BoundaryPane) View(width, height int, selected, focused bool) string {
	c := p.cursor()
	lines := []string{
		c.Month.String() + " " + fmt.Sprintf("%d", c.Year),
		"",
		"h/l month  j/k year",
		"t: type a month",
	}
	return widgets.Pane{
		Title:    p.Title(),
		Content:  strings.Join(lines, "\n"),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

// ValidationPane reports whether the current range satisfies the duration
// class rule.
type ValidationPane struct {
	widget *picker.Widget
}

func NewValidationPane(w *picker.Widget) *ValidationPane {
	return &ValidationPane{widget: w}
}

func (p *ValidationPane) ID() string                 { return "validation" }
func (p *ValidationPane) Title() string              { return "Validation" }
func (p *ValidationPane) Scope() string              { return "pane:custom:validation" }
func (p *ValidationPane) JumpKey() byte              { return 'v' }
func (p *ValidationPane) Focusable() bool            { return false }
func (p *ValidationPane) OnFocus() tea.Cmd           { return nil }
func (p *ValidationPane) OnBlur() tea.Cmd            { return nil }
func (p *ValidationPane) Update(msg tea.Msg) tea.Cmd { return nil }

func (p *ValidationPane) View(width, height int, selected, focused bool) string {
	v := p.widget.Validation()
	content := "Range covers " + p.widget.Class().String() + ". Ready to apply."
	if !v.OK {
		content = v.Message
	}
	return widgets.Pane{
		Title:    p.Title(),
		Content:  content,
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

// NewCustomTab builds the second tab: duration on the left, the two
// boundary editors in the middle, validation underneath.
func NewCustomTab(w *picker.Widget) core.Tab {
	layout := func(host *core.PaneHost) widgets.Widget {
		boundaries := widgets.HStack{
			Widgets: []widgets.Widget{host.BuildPane("start"), host.BuildPane("end")},
			Gap:     1,
		}
		right := widgets.VStack{
			Widgets: []widgets.Widget{boundaries, host.BuildPane("validation")},
			Ratios:  []float64{0.7, 0.3},
		}
		return widgets.HStack{
			Widgets: []widgets.Widget{host.BuildPane("duration"), right},
			Ratios:  []float64{0.3, 0.7},
			Gap:     1,
		}
	}
	return core.NewHostedTab("custom", "Custom Range", layout,
		NewDurationPane(w),
		NewBoundaryPane(w, true),
		NewBoundaryPane(w, false),
		NewValidationPane(w),
	)
}

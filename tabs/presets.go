package tabs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"reportrange/core"
	"reportrange/core/widgets"
	"reportrange/period"
	"reportrange/picker"
)

// PresetsPane lists the preset catalog grouped by category. Enter resolves
// the highlighted preset against the shared widget.
type PresetsPane struct {
	widget  *picker.Widget
	catalog []period.Preset
	cursor  int
}

func NewPresetsPane(w *picker.Widget) *PresetsPane {
	return &PresetsPane{widget: w, catalog: period.Catalog()}
}

func (p *PresetsPane) ID() string      { return "catalog" }
func (p *PresetsPane) Title() string   { return "Presets" }
func (p *PresetsPane) Scope() string   { return "pane:presets:catalog" }
func (p *PresetsPane) JumpKey() byte   { return 'p' }
func (p *PresetsPane) Focusable() bool { return true }
func (p *PresetsPane) OnFocus() tea.Cmd {
	return core.StatusCmd("Enter selects a preset, / searches")
}
func (p *PresetsPane) OnBlur() tea.Cmd { return nil }

func (p *PresetsPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.catalog)-1 {
			p.cursor++
		}
	case "enter":
		label := p.catalog[p.cursor].Label
		return func() tea.Msg { return core.PresetChosenMsg{Label: label} }
	}
	return nil
}

func (p *PresetsPane) View(width, height int, selected, focused bool) string {
	var b strings.Builder
	category := ""
	active := p.widget.Label()
	for i, preset := range p.catalog {
		if preset.Category != category {
			if category != "" {
				b.WriteString("\n")
			}
			category = preset.Category
			b.WriteString(category + "\n")
		}
		prefix := "  "
		if i == p.cursor {
			prefix = "> "
		}
		mark := "  "
		if preset.Label == active {
			mark = " ●"
		}
		b.WriteString(prefix + preset.Label + mark + "\n")
	}
	return widgets.Pane{
		Title:    p.Title(),
		Content:  strings.TrimRight(b.String(), "\n"),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

// SummaryPane mirrors the widget: active label or custom range, duration
// class, comparison summary, and the last applied event.
type SummaryPane struct {
	widget     *picker.Widget
	dateFormat string
}

func NewSummaryPane(w *picker.Widget, dateFormat string) *SummaryPane {
	return &SummaryPane{widget: w, dateFormat: dateFormat}
}

func (p *SummaryPane) ID() string                 { return "summary" }
func (p *SummaryPane) Title() string              { return "Selection" }
func (p *SummaryPane) Scope() string              { return "pane:presets:summary" }
func (p *SummaryPane) JumpKey() byte              { return 's' }
func (p *SummaryPane) Focusable() bool            { return false }
func (p *SummaryPane) OnFocus() tea.Cmd           { return nil }
func (p *SummaryPane) OnBlur() tea.Cmd            { return nil }
func (p *SummaryPane) Update(msg tea.Msg) tea.Cmd { return nil }

func (p *SummaryPane) View(width, height int, selected, focused bool) string {
	w := p.widget
	source := w.Label()
	if source == "" {
		source = "Custom range"
	}
	lines := []string{
		source,
		w.Range().Format(p.dateFormat),
		"",
		"Duration: " + w.Class().String(),
	}
	v := w.Validation()
	if v.OK {
		lines = append(lines, "Range OK")
	} else {
		lines = append(lines, v.Message)
	}
	lines = append(lines, "", compareSummary(w.Compare()))
	if last, ok := w.LastApplied(); ok {
		lines = append(lines, "", "Last applied: "+last.Range.Format(p.dateFormat))
	}
	return widgets.Pane{
		Title:    p.Title(),
		Content:  strings.Join(lines, "\n"),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

func compareSummary(c period.CompareOptions) string {
	on := make([]string, 0, 5)
	if c.ToPreviousPeriod {
		on = append(on, "previous period")
	}
	if c.ToPreviousYear {
		on = append(on, "previous year")
	}
	if c.ToFinancialYearToDate {
		on = append(on, "FY to date")
	}
	if c.ByCompany {
		on = append(on, "by company")
	}
	if c.ByCategoryClassLocation {
		on = append(on, "by category")
	}
	if len(on) == 0 {
		return "Compare: off"
	}
	return "Compare: " + strings.Join(on, ", ")
}

// NewPresetsTab builds the first tab: catalog on the left, live selection
// summary on the right.
func NewPresetsTab(w *picker.Widget, dateFormat string) core.Tab {
	layout := func(host *core.PaneHost) widgets.Widget {
		return widgets.HStack{
			Widgets: []widgets.Widget{host.BuildPane("catalog"), host.BuildPane("summary")},
			Ratios:  []float64{0.55, 0.45},
			Gap:     1,
		}
	}
	return core.NewHostedTab("presets", "Presets", layout,
		NewPresetsPane(w),
		NewSummaryPane(w, dateFormat),
	)
}

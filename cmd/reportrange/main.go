package main

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"reportrange/core"
	"reportrange/internal/config"
	"reportrange/period"
	"reportrange/picker"
	"reportrange/screens"
	"reportrange/tabs"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}

	class, ok := period.ParseClass(cfg.Report.DefaultDuration)
	if !ok {
		log.Printf("warn: unknown default duration %q, using %s", cfg.Report.DefaultDuration, class)
	}

	w := picker.New(
		picker.WithClock(func() time.Time { return time.Now().In(loc) }),
		picker.WithFinancialYearStart(time.Month(cfg.Report.FinancialYearStartMonth)),
		picker.WithClass(class),
		picker.WithPeriodsToCompare(cfg.Report.PeriodsToCompare),
	)

	tabList := []core.Tab{
		tabs.NewPresetsTab(w, cfg.UI.DateFormat),
		tabs.NewCustomTab(w),
		tabs.NewCompareTab(w, cfg.UI.DateFormat),
	}
	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	commands := core.NewCommandRegistry(defaultCommands())

	m := core.NewModel(tabList, keys, commands, w, cfg.UI.DateFormat)
	m.OpenCommandModal = func(m *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(scope, func(query string) []core.CommandResult {
			return m.CommandRegistry().Search(query, scope, m)
		})
	}
	m.OpenPresetModal = func(m *core.Model) core.Screen {
		return screens.NewPresetSearchScreen()
	}
	m.OpenBoundaryEditor = func(m *core.Model, start bool) core.Screen {
		cur := m.Widget.EndCursor()
		if start {
			cur = m.Widget.StartCursor()
		}
		return screens.NewBoundaryEditor(start, cur)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	if last, ok := w.LastApplied(); ok {
		fmt.Printf("%s  (compare: %+v)\n", last.Range.Format(cfg.UI.DateFormat), last.Compare)
	} else {
		fmt.Println("cancelled")
	}
}

func defaultCommands() []core.Command {
	return []core.Command{
		{
			ID:          "apply",
			Name:        "Apply range",
			Description: "Emit the selected range and close",
			Execute: func(m *core.Model) tea.Cmd {
				if _, ok := m.Widget.Apply(); !ok {
					return core.StatusCmd(m.Widget.Validation().Message)
				}
				return tea.Quit
			},
			Gate: func(m *core.Model) string {
				return m.Widget.Validation().Message
			},
		},
		{
			ID:          "reset-compare",
			Name:        "Reset comparison options",
			Description: "Back to defaults: nothing toggled, four periods",
			Execute: func(m *core.Model) tea.Cmd {
				m.Widget.ResetCompare()
				return core.StatusCmd("Comparison options reset")
			},
		},
		{
			ID:          "duration-1m",
			Name:        "Duration: 1 month",
			Description: "Switch class and reset the range",
			Execute:     setClassCmd(period.OneMonth),
		},
		{
			ID:          "duration-3m",
			Name:        "Duration: 3 months",
			Description: "Switch class and reset the range",
			Execute:     setClassCmd(period.ThreeMonths),
		},
		{
			ID:          "duration-6m",
			Name:        "Duration: 6 months",
			Description: "Switch class and reset the range",
			Execute:     setClassCmd(period.SixMonths),
		},
		{
			ID:          "duration-1y",
			Name:        "Duration: 1 year",
			Description: "Switch class and reset the range",
			Execute:     setClassCmd(period.OneYear),
		},
	}
}

func setClassCmd(c period.Class) func(m *core.Model) tea.Cmd {
	return func(m *core.Model) tea.Cmd {
		r := m.Widget.SetClass(c)
		return core.StatusCmd(fmt.Sprintf("Duration %s: %s", c, r))
	}
}

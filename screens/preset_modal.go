package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"reportrange/core"
	"reportrange/period"
)

// PresetSearchScreen is a fuzzy search over the preset catalog, grouped
// by category. Selecting an entry emits PresetChosenMsg.
type PresetSearchScreen struct {
	picker *core.Picker
}

func NewPresetSearchScreen() *PresetSearchScreen {
	catalog := period.Catalog()
	items := make([]core.PickerItem, 0, len(catalog))
	for _, p := range catalog {
		items = append(items, core.PickerItem{
			ID:      p.Label,
			Label:   p.Label,
			Section: p.Category,
			Search:  p.Label + " " + p.Category,
		})
	}
	return &PresetSearchScreen{picker: core.NewPicker(items)}
}

func (s *PresetSearchScreen) Title() string { return "Presets" }
func (s *PresetSearchScreen) Scope() string { return "screen:preset-picker" }

func (s *PresetSearchScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	result := s.picker.HandleKey(keyMsg.String())
	switch result.Action {
	case core.PickerActionCancelled:
		return s, nil, true
	case core.PickerActionSelected:
		label := result.Item.ID
		return s, func() tea.Msg { return core.PresetChosenMsg{Label: label} }, true
	default:
		return s, nil, false
	}
}

func (s *PresetSearchScreen) View(width, height int) string {
	filter := s.picker.Query()
	if filter == "" {
		filter = "(type to filter)"
	}
	lines := []string{"Presets", "Filter: " + filter, ""}

	items := s.picker.Items()
	if len(items) == 0 {
		lines = append(lines, "  No matching presets")
		if hint, dist := period.ClosestLabel(s.picker.Query()); hint != "" && dist <= 8 {
			lines = append(lines, "  Did you mean \""+hint+"\"?")
		}
	} else {
		section := ""
		row := 0
		for _, item := range items {
			if item.Section != section {
				if section != "" {
					lines = append(lines, "")
				}
				section = item.Section
				lines = append(lines, section)
			}
			prefix := "  "
			if row == s.picker.Cursor() {
				prefix = "> "
			}
			lines = append(lines, prefix+item.Label)
			row++
		}
	}
	lines = append(lines, "", "Enter select. Esc cancel.")
	return core.ClipHeight(strings.Join(lines, "\n"), max(6, height))
}

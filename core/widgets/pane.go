package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Widget is anything that can draw itself into a width x height cell.
type Widget interface {
	Render(width, height int) string
}

// Pane draws a rounded border with the title embedded in the top edge.
// Selected and Focused change the border colour and title marker.
type Pane struct {
	Title    string
	Content  string
	Selected bool
	Focused  bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	border := lipgloss.Color("#6c7086")
	marker := "  "
	if p.Selected {
		border = lipgloss.Color("#89b4fa")
		marker = "▶ "
	}
	if p.Focused {
		border = lipgloss.Color("#a6e3a1")
		marker = "● "
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	contentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
		innerWidth = contentWidth + 2
	}

	rows := make([]string, 0, height)
	rows = append(rows, p.topEdge(borderStyle, titleStyle, marker, innerWidth))

	v := borderStyle.Render("│")
	contentLines := strings.Split(p.Content, "\n")
	if strings.TrimSpace(p.Content) == "" {
		contentLines = nil
	}
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(contentLines) {
			line = ansi.Truncate(contentLines[i], contentWidth, "")
		}
		rows = append(rows, v+" "+contentStyle.Render(padRight(line, contentWidth))+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))

	return strings.Join(rows, "\n")
}

func (p Pane) topEdge(borderStyle, titleStyle lipgloss.Style, marker string, innerWidth int) string {
	title := " " + strings.TrimSpace(marker+p.Title) + " "
	if ansi.StringWidth(title) > innerWidth {
		title = " " + ansi.Truncate(strings.TrimSpace(marker+p.Title), max(1, innerWidth-2), "") + " "
	}
	dashes := innerWidth - ansi.StringWidth(title)
	if dashes < 0 {
		dashes = 0
	}
	leftDash := min(1, dashes)
	return borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(title) +
		borderStyle.Render(strings.Repeat("─", dashes-leftDash)+"╮")
}

package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets vertically. Ratios, when present, must have one
// entry per widget; otherwise the height is split evenly.
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := max(0, v.Spacing*(len(v.Widgets)-1))
	usable := max(1, height-spacingTotal)
	heights := splitExtents(usable, len(v.Widgets), v.Ratios)
	lines := make([]string, 0, len(v.Widgets)*2)
	for i, w := range v.Widgets {
		lines = append(lines, w.Render(width, max(1, heights[i])))
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

// HStack lays widgets side by side, padding shorter columns so rows align.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	usable := max(1, width-gapTotal)
	widths := splitExtents(usable, len(h.Widgets), h.Ratios)
	columns := make([][]string, len(h.Widgets))
	rows := 0
	for i, w := range h.Widgets {
		columns[i] = strings.Split(w.Render(max(1, widths[i]), height), "\n")
		if len(columns[i]) > rows {
			rows = len(columns[i])
		}
	}
	out := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		cells := make([]string, len(columns))
		for i := range columns {
			if row < len(columns[i]) {
				cells[i] = padRight(columns[i][row], widths[i])
			} else {
				cells[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cells, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

// splitExtents divides total across n slots, spreading the remainder from
// the left so no column loses more than one cell to rounding.
func splitExtents(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		out := make([]int, n)
		for i := range out {
			out[i] = total / n
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		w := int(math.Floor((ratios[i] / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

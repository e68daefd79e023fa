package core

import (
	"sort"
	"strings"
)

// PickerItem is one row of a searchable list, grouped into sections.
// Search widens the match text beyond the visible label when set.
type PickerItem struct {
	ID      string
	Label   string
	Section string
	Search  string
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionSelected
	PickerActionCancelled
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker is the shared cursor-plus-query state machine behind every
// searchable list screen.
type Picker struct {
	items    []PickerItem
	filtered []PickerItem
	query    string
	cursor   int
}

func NewPicker(items []PickerItem) *Picker {
	p := &Picker{}
	p.SetItems(items)
	return p
}

func (p *Picker) Query() string { return p.query }
func (p *Picker) Cursor() int   { return p.cursor }

func (p *Picker) Items() []PickerItem {
	return append([]PickerItem(nil), p.filtered...)
}

func (p *Picker) SetItems(items []PickerItem) {
	p.items = append([]PickerItem(nil), items...)
	p.rebuild()
}

func (p *Picker) SetQuery(q string) {
	p.query = q
	p.rebuild()
}

func (p *Picker) CursorUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *Picker) CursorDown() {
	if p.cursor < len(p.filtered)-1 {
		p.cursor++
	}
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	idx := min(max(p.cursor, 0), len(p.filtered)-1)
	return p.filtered[idx], true
}

// Sections lists the distinct sections in first-appearance order across
// the unfiltered items.
func (p *Picker) Sections() []string {
	seen := make(map[string]bool, len(p.items))
	out := make([]string, 0, len(p.items))
	for _, item := range p.items {
		if seen[item.Section] {
			continue
		}
		seen[item.Section] = true
		out = append(out, item.Section)
	}
	return out
}

// HandleKey feeds one key name through the picker. Printable characters
// extend the query; everything else maps to movement, selection, or
// cancellation.
func (p *Picker) HandleKey(keyName string) PickerResult {
	switch keyName {
	case "up", "ctrl+p":
		before := p.cursor
		p.CursorUp()
		if p.cursor != before {
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{}
	case "down", "ctrl+n":
		before := p.cursor
		p.CursorDown()
		if p.cursor != before {
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{}
	case "enter":
		item, ok := p.CurrentItem()
		if !ok {
			return PickerResult{}
		}
		return PickerResult{Action: PickerActionSelected, Item: item}
	case "esc":
		return PickerResult{Action: PickerActionCancelled}
	case "backspace":
		if len(p.query) > 0 {
			p.SetQuery(p.query[:len(p.query)-1])
		}
		return PickerResult{}
	default:
		if isPrintableASCIIKey(keyName) {
			p.SetQuery(p.query + keyName)
		}
		return PickerResult{}
	}
}

type scoredItem struct {
	item  PickerItem
	score int
	index int
}

func (p *Picker) rebuild() {
	q := strings.TrimSpace(p.query)
	bySection := make(map[string][]scoredItem)
	for idx, item := range p.items {
		search := strings.TrimSpace(item.Search)
		if search == "" {
			search = item.Label
		}
		matched, score := fuzzyScore(search, q)
		if !matched {
			continue
		}
		bySection[item.Section] = append(bySection[item.Section], scoredItem{item: item, score: score, index: idx})
	}

	out := make([]PickerItem, 0, len(p.items))
	for _, section := range p.Sections() {
		rows := bySection[section]
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].score != rows[j].score {
				return rows[i].score > rows[j].score
			}
			return rows[i].index < rows[j].index
		})
		for _, row := range rows {
			out = append(out, row.item)
		}
	}
	p.filtered = out

	if p.cursor > len(p.filtered)-1 {
		p.cursor = len(p.filtered) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// fuzzyScore matches query as a case-insensitive subsequence of label.
// Prefix matches, adjacent runs, and exact equality rank higher.
func fuzzyScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	positions := make([]int, 0, len(queryLower))
	from := 0
	for i := 0; i < len(queryLower); i++ {
		j := strings.IndexByte(labelLower[from:], queryLower[i])
		if j < 0 {
			return false, 0
		}
		positions = append(positions, from+j)
		from += j + 1
	}

	score := len(queryLower)
	if positions[0] == 0 {
		score += 10
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}

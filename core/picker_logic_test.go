package core

import "testing"

func presetItems() []PickerItem {
	return []PickerItem{
		{ID: "This month", Label: "This month", Section: "Month"},
		{ID: "Last month", Label: "Last month", Section: "Month"},
		{ID: "This calendar quarter", Label: "This calendar quarter", Section: "Quarter"},
		{ID: "This financial year", Label: "This financial year", Section: "Financial year"},
	}
}

func TestPickerFuzzyPrefersPrefixAndExact(t *testing.T) {
	p := NewPicker(presetItems())
	for _, r := range "last" {
		_ = p.HandleKey(string(r))
	}
	items := p.Items()
	if len(items) != 1 || items[0].ID != "Last month" {
		t.Fatalf("items = %v, want only Last month", items)
	}

	p.SetQuery("this")
	items = p.Items()
	if len(items) != 3 {
		t.Fatalf("expected three matches for %q, got %v", "this", items)
	}
	if items[0].ID != "This month" {
		t.Fatalf("first match = %q, want This month", items[0].ID)
	}
}

func TestPickerKeepsSectionOrder(t *testing.T) {
	p := NewPicker(presetItems())
	p.SetQuery("t")
	items := p.Items()
	lastSection := ""
	seen := map[string]bool{}
	for _, it := range items {
		if it.Section != lastSection {
			if seen[it.Section] {
				t.Fatalf("section %q split across the list", it.Section)
			}
			seen[it.Section] = true
			lastSection = it.Section
		}
	}
}

func TestPickerCursorClampsOnFilter(t *testing.T) {
	p := NewPicker(presetItems())
	_ = p.HandleKey("down")
	_ = p.HandleKey("down")
	_ = p.HandleKey("down")
	if p.Cursor() != 3 {
		t.Fatalf("cursor = %d, want 3", p.Cursor())
	}
	p.SetQuery("last")
	if p.Cursor() != 0 {
		t.Fatalf("cursor = %d, want clamp to 0", p.Cursor())
	}
}

func TestPickerEnterSelectsCurrent(t *testing.T) {
	p := NewPicker(presetItems())
	_ = p.HandleKey("down")
	res := p.HandleKey("enter")
	if res.Action != PickerActionSelected {
		t.Fatalf("action = %v, want selected", res.Action)
	}
	if res.Item.ID != "Last month" {
		t.Fatalf("item = %q, want Last month", res.Item.ID)
	}
}

func TestPickerEscCancels(t *testing.T) {
	p := NewPicker(presetItems())
	if res := p.HandleKey("esc"); res.Action != PickerActionCancelled {
		t.Fatalf("action = %v, want cancelled", res.Action)
	}
}

func TestPickerBackspaceNarrowsThenWidens(t *testing.T) {
	p := NewPicker(presetItems())
	p.SetQuery("lastx")
	if len(p.Items()) != 0 {
		t.Fatalf("expected no matches for %q", "lastx")
	}
	_ = p.HandleKey("backspace")
	if len(p.Items()) != 1 {
		t.Fatalf("expected one match after backspace, got %v", p.Items())
	}
}

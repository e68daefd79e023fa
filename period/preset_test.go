package period

import (
	"testing"
	"time"
)

func TestResolvePresets(t *testing.T) {
	now := date(2024, time.May, 15)
	cases := []struct {
		label string
		from  time.Time
		to    time.Time
	}{
		{"This month", date(2024, time.May, 1), date(2024, time.May, 31)},
		{"This month to date", date(2024, time.May, 1), date(2024, time.May, 15)},
		{"Last month", date(2024, time.April, 1), date(2024, time.April, 30)},
		{"This calendar quarter", date(2024, time.April, 1), date(2024, time.June, 30)},
		{"This calendar quarter to date", date(2024, time.April, 1), date(2024, time.May, 15)},
		{"Last calendar quarter", date(2024, time.January, 1), date(2024, time.March, 31)},
		{"This calendar year", date(2024, time.January, 1), date(2024, time.December, 31)},
		{"This calendar year to date", date(2024, time.January, 1), date(2024, time.May, 15)},
		{"Last calendar year", date(2023, time.January, 1), date(2023, time.December, 31)},
		{"Calendar year to last month", date(2024, time.January, 1), date(2024, time.April, 30)},
		{"This financial year", date(2023, time.July, 1), date(2024, time.June, 30)},
		{"This financial year to date", date(2023, time.July, 1), date(2024, time.May, 15)},
		{"Last financial year", date(2022, time.July, 1), date(2023, time.June, 30)},
		{"Financial year to last month", date(2023, time.July, 1), date(2024, time.April, 30)},
	}
	for _, tc := range cases {
		got := Resolve(tc.label, now, time.July)
		if !got.From.Equal(tc.from) || !got.To.Equal(tc.to) {
			t.Fatalf("%s = %s, want %s to %s", tc.label, got, tc.from.Format("2006-01-02"), tc.to.Format("2006-01-02"))
		}
		if got.Inverted() {
			t.Fatalf("%s produced inverted range %s", tc.label, got)
		}
	}
}

func TestResolveQuarterAcrossYearBoundary(t *testing.T) {
	now := date(2024, time.January, 20)
	got := Resolve("Last calendar quarter", now, time.July)
	if !got.From.Equal(date(2023, time.October, 1)) || !got.To.Equal(date(2023, time.December, 31)) {
		t.Fatalf("last quarter = %s", got)
	}
}

func TestResolveFinancialYearBeforeStartMonth(t *testing.T) {
	// May sits before a July financial-year start, so the year began the
	// previous July. August sits after it.
	may := date(2024, time.May, 15)
	if got := Resolve("This financial year", may, time.July); !got.From.Equal(date(2023, time.July, 1)) {
		t.Fatalf("fy from = %s, want 2023-07-01", got.From)
	}
	aug := date(2024, time.August, 15)
	if got := Resolve("This financial year", aug, time.July); !got.From.Equal(date(2024, time.July, 1)) {
		t.Fatalf("fy from = %s, want 2024-07-01", got.From)
	}
}

func TestResolveUnknownLabelFallsBackToThisMonth(t *testing.T) {
	now := date(2024, time.May, 15)
	got := Resolve("Some future preset", now, time.July)
	want := Resolve(DefaultPresetLabel, now, time.July)
	if !got.From.Equal(want.From) || !got.To.Equal(want.To) {
		t.Fatalf("fallback = %s, want %s", got, want)
	}
}

func TestCatalogCoversEveryRule(t *testing.T) {
	if len(Catalog()) != len(presetRules) {
		t.Fatalf("catalog has %d entries, rules have %d", len(Catalog()), len(presetRules))
	}
	for _, p := range Catalog() {
		if !IsPreset(p.Label) {
			t.Fatalf("catalog entry %q has no rule", p.Label)
		}
		if p.Category == "" {
			t.Fatalf("catalog entry %q has no category", p.Label)
		}
	}
}

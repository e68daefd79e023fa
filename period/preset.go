package period

import "time"

// Preset is a named, pre-defined date-range rule.
type Preset struct {
	Label    string
	Category string
}

const (
	CategoryMonth     = "Month"
	CategoryQuarter   = "Quarter"
	CategoryYear      = "Calendar year"
	CategoryFinancial = "Financial year"
)

// DefaultPresetLabel is what unrecognized labels resolve as.
const DefaultPresetLabel = "This month"

type presetRule func(now time.Time, fyStart time.Month) Range

var presetOrder = []Preset{
	{Label: "This month", Category: CategoryMonth},
	{Label: "This month to date", Category: CategoryMonth},
	{Label: "Last month", Category: CategoryMonth},
	{Label: "This calendar quarter", Category: CategoryQuarter},
	{Label: "This calendar quarter to date", Category: CategoryQuarter},
	{Label: "Last calendar quarter", Category: CategoryQuarter},
	{Label: "This calendar year", Category: CategoryYear},
	{Label: "This calendar year to date", Category: CategoryYear},
	{Label: "Last calendar year", Category: CategoryYear},
	{Label: "Calendar year to last month", Category: CategoryYear},
	{Label: "This financial year", Category: CategoryFinancial},
	{Label: "This financial year to date", Category: CategoryFinancial},
	{Label: "Last financial year", Category: CategoryFinancial},
	{Label: "Financial year to last month", Category: CategoryFinancial},
}

var presetRules = map[string]presetRule{
	"This month": func(now time.Time, _ time.Month) Range {
		return Range{From: MonthStart(now), To: MonthEnd(now)}
	},
	"This month to date": func(now time.Time, _ time.Month) Range {
		return Range{From: MonthStart(now), To: Day(now)}
	},
	"Last month": func(now time.Time, _ time.Month) Range {
		prev := MonthStart(now).AddDate(0, -1, 0)
		return Range{From: prev, To: MonthEnd(prev)}
	},
	"This calendar quarter": func(now time.Time, _ time.Month) Range {
		start := quarterStart(now)
		return Range{From: start, To: MonthEnd(start.AddDate(0, 2, 0))}
	},
	"This calendar quarter to date": func(now time.Time, _ time.Month) Range {
		return Range{From: quarterStart(now), To: Day(now)}
	},
	"Last calendar quarter": func(now time.Time, _ time.Month) Range {
		start := quarterStart(now).AddDate(0, -3, 0)
		return Range{From: start, To: MonthEnd(start.AddDate(0, 2, 0))}
	},
	"This calendar year": func(now time.Time, _ time.Month) Range {
		start := yearStart(now)
		return Range{From: start, To: MonthEnd(start.AddDate(0, 11, 0))}
	},
	"This calendar year to date": func(now time.Time, _ time.Month) Range {
		return Range{From: yearStart(now), To: Day(now)}
	},
	"Last calendar year": func(now time.Time, _ time.Month) Range {
		start := yearStart(now).AddDate(-1, 0, 0)
		return Range{From: start, To: MonthEnd(start.AddDate(0, 11, 0))}
	},
	"Calendar year to last month": func(now time.Time, _ time.Month) Range {
		return Range{From: yearStart(now), To: MonthEnd(MonthStart(now).AddDate(0, -1, 0))}
	},
	"This financial year": func(now time.Time, fyStart time.Month) Range {
		start := financialYearStart(now, fyStart)
		return Range{From: start, To: MonthEnd(start.AddDate(0, 11, 0))}
	},
	"This financial year to date": func(now time.Time, fyStart time.Month) Range {
		return Range{From: financialYearStart(now, fyStart), To: Day(now)}
	},
	"Last financial year": func(now time.Time, fyStart time.Month) Range {
		start := financialYearStart(now, fyStart).AddDate(-1, 0, 0)
		return Range{From: start, To: MonthEnd(start.AddDate(0, 11, 0))}
	},
	"Financial year to last month": func(now time.Time, fyStart time.Month) Range {
		return Range{From: financialYearStart(now, fyStart), To: MonthEnd(MonthStart(now).AddDate(0, -1, 0))}
	},
}

// Catalog returns the preset entries in display order.
func Catalog() []Preset {
	return append([]Preset(nil), presetOrder...)
}

// IsPreset reports whether label names a known preset.
func IsPreset(label string) bool {
	_, ok := presetRules[label]
	return ok
}

// Resolve maps a preset label to a concrete range anchored at now.
// Financial-year presets count from fyStart. Unrecognized labels resolve
// as DefaultPresetLabel; absence of a match is not a failure.
func Resolve(label string, now time.Time, fyStart time.Month) Range {
	rule, ok := presetRules[label]
	if !ok {
		rule = presetRules[DefaultPresetLabel]
	}
	return rule(now, fyStart)
}

func quarterStart(t time.Time) time.Time {
	month := time.Month((int(t.Month())-1)/3*3 + 1)
	return time.Date(t.Year(), month, 1, 0, 0, 0, 0, t.Location())
}

func yearStart(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// financialYearStart finds the most recent fyStart month on or before now.
// Months outside 1..12 fall back to July.
func financialYearStart(now time.Time, fyStart time.Month) time.Time {
	if fyStart < time.January || fyStart > time.December {
		fyStart = time.July
	}
	year := now.Year()
	if now.Month() < fyStart {
		year--
	}
	return time.Date(year, fyStart, 1, 0, 0, 0, 0, now.Location())
}

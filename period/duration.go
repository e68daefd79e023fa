package period

import (
	"strings"
	"time"
)

// Class is the period duration bucket. It drives two things: the default
// trailing window picked when the class is chosen, and the minimum-span
// rule the validator applies to a custom range.
type Class int

const (
	OneMonth Class = iota
	ThreeMonths
	SixMonths
	OneYear
)

type classRule struct {
	label  string
	months int
}

var classRules = map[Class]classRule{
	OneMonth:    {label: "1 month", months: 1},
	ThreeMonths: {label: "3 months", months: 3},
	SixMonths:   {label: "6 months", months: 6},
	OneYear:     {label: "1 year", months: 12},
}

// Classes returns the duration classes in display order.
func Classes() []Class {
	return []Class{OneMonth, ThreeMonths, SixMonths, OneYear}
}

func (c Class) String() string {
	if r, ok := classRules[c]; ok {
		return r.label
	}
	return "unknown"
}

// Months is the window length the class names.
func (c Class) Months() int {
	if r, ok := classRules[c]; ok {
		return r.months
	}
	return 1
}

// RequiredDiff is the minimum whole-month difference between range
// boundaries: an N-month window has boundaries N-1 months apart.
func (c Class) RequiredDiff() int {
	return c.Months() - 1
}

// DefaultWindow is the trailing window ending at now's month: the current
// month plus however many preceding months the class needs. Six months at
// 2024-05-15 spans 2023-12-01 through 2024-05-31.
func (c Class) DefaultWindow(now time.Time) Range {
	from := MonthStart(now).AddDate(0, -(c.Months() - 1), 0)
	return Range{From: from, To: MonthEnd(now)}
}

// ParseClass maps a config value such as "6 months" to its class. The
// boolean reports whether the value was recognized.
func ParseClass(s string) (Class, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Classes() {
		if s == c.String() {
			return c, true
		}
	}
	return ThreeMonths, false
}

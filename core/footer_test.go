package core

import (
	"strings"
	"testing"
	"time"

	"reportrange/period"
	"reportrange/picker"
)

func TestStatusBarWarnsWhileRangeInvalid(t *testing.T) {
	w := picker.New(picker.WithClock(fixedClock), picker.WithClass(period.OneYear))
	w.SetStartMonth(2024, time.January)
	w.SetEndMonth(2024, time.March)
	if w.CanApply() {
		t.Fatalf("two months should not satisfy a one year class")
	}
	m := NewModel(nil, NewKeyRegistry(DefaultKeyBindings()), NewCommandRegistry(nil), w, "02 Jan 2006")
	m.SetStatus("Range: 01 Jan 2024 to 31 Mar 2024")

	bar := RenderStatusBar(m)
	if !strings.Contains(bar, "Range: 01 Jan 2024") {
		t.Fatalf("status bar lost its message: %q", bar)
	}
	if statusWarnBarStyle.GetForeground() != colorWarning {
		t.Fatalf("warn bar must use the warning colour")
	}
}

func TestStatusBarErrorOutranksWarning(t *testing.T) {
	w := picker.New(picker.WithClock(fixedClock), picker.WithClass(period.OneYear))
	w.SetStartMonth(2024, time.January)
	w.SetEndMonth(2024, time.March)
	m := NewModel(nil, NewKeyRegistry(DefaultKeyBindings()), NewCommandRegistry(nil), w, "02 Jan 2006")
	m.SetError("The selected date range must cover at least 1 year.")

	bar := RenderStatusBar(m)
	if !strings.Contains(bar, "at least 1 year") {
		t.Fatalf("status bar lost the error message: %q", bar)
	}
}

package period

import (
	"testing"
	"time"
)

func TestClassRequiredDiff(t *testing.T) {
	cases := []struct {
		class Class
		want  int
	}{
		{OneMonth, 0},
		{ThreeMonths, 2},
		{SixMonths, 5},
		{OneYear, 11},
	}
	for _, tc := range cases {
		if got := tc.class.RequiredDiff(); got != tc.want {
			t.Fatalf("%s required diff = %d, want %d", tc.class, got, tc.want)
		}
	}
}

func TestDefaultWindowTrailsCurrentMonth(t *testing.T) {
	now := date(2024, time.May, 15)
	cases := []struct {
		class Class
		from  time.Time
	}{
		{OneMonth, date(2024, time.May, 1)},
		{ThreeMonths, date(2024, time.March, 1)},
		{SixMonths, date(2023, time.December, 1)},
		{OneYear, date(2023, time.June, 1)},
	}
	for _, tc := range cases {
		got := tc.class.DefaultWindow(now)
		if !got.From.Equal(tc.from) {
			t.Fatalf("%s window from = %s, want %s", tc.class, got.From, tc.from)
		}
		if !got.To.Equal(date(2024, time.May, 31)) {
			t.Fatalf("%s window to = %s, want 2024-05-31", tc.class, got.To)
		}
	}
}

func TestDefaultWindowAlwaysValidates(t *testing.T) {
	now := date(2024, time.May, 15)
	for _, class := range Classes() {
		w := class.DefaultWindow(now)
		if v := Validate(w.From, w.To, class); !v.OK {
			t.Fatalf("%s default window invalid: %s", class, v.Message)
		}
	}
}

func TestParseClass(t *testing.T) {
	if c, ok := ParseClass(" 6 Months "); !ok || c != SixMonths {
		t.Fatalf("ParseClass(6 months) = %v, %v", c, ok)
	}
	if c, ok := ParseClass("fortnight"); ok || c != ThreeMonths {
		t.Fatalf("expected fallback class for unknown input, got %v, %v", c, ok)
	}
}

package period

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthBoundaries(t *testing.T) {
	cases := []struct {
		in    time.Time
		start time.Time
		end   time.Time
	}{
		{date(2024, time.May, 15), date(2024, time.May, 1), date(2024, time.May, 31)},
		{date(2024, time.February, 10), date(2024, time.February, 1), date(2024, time.February, 29)},
		{date(2023, time.February, 10), date(2023, time.February, 1), date(2023, time.February, 28)},
		{date(2024, time.December, 31), date(2024, time.December, 1), date(2024, time.December, 31)},
	}
	for _, tc := range cases {
		if got := MonthStart(tc.in); !got.Equal(tc.start) {
			t.Fatalf("MonthStart(%s) = %s, want %s", tc.in, got, tc.start)
		}
		if got := MonthEnd(tc.in); !got.Equal(tc.end) {
			t.Fatalf("MonthEnd(%s) = %s, want %s", tc.in, got, tc.end)
		}
	}
}

func TestMonthsBetweenIgnoresDays(t *testing.T) {
	cases := []struct {
		a, b time.Time
		want int
	}{
		{date(2023, time.December, 1), date(2024, time.May, 31), 5},
		{date(2024, time.May, 31), date(2024, time.May, 1), 0},
		{date(2024, time.May, 1), date(2024, time.April, 30), -1},
		{date(2022, time.November, 20), date(2024, time.January, 2), 14},
	}
	for _, tc := range cases {
		if got := MonthsBetween(tc.a, tc.b); got != tc.want {
			t.Fatalf("MonthsBetween(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCursorAddMonthsCarries(t *testing.T) {
	c := Cursor{Year: 2024, Month: time.January}
	if got := c.AddMonths(-1); got.Year != 2023 || got.Month != time.December {
		t.Fatalf("AddMonths(-1) = %v", got)
	}
	if got := c.AddMonths(12); got.Year != 2025 || got.Month != time.January {
		t.Fatalf("AddMonths(12) = %v", got)
	}
	if got := c.AddYears(-2); got.Year != 2022 || got.Month != time.January {
		t.Fatalf("AddYears(-2) = %v", got)
	}
}

func TestCursorBoundaryDates(t *testing.T) {
	c := Cursor{Year: 2024, Month: time.February}
	if got := c.Start(time.UTC); !got.Equal(date(2024, time.February, 1)) {
		t.Fatalf("Start = %s", got)
	}
	if got := c.End(time.UTC); !got.Equal(date(2024, time.February, 29)) {
		t.Fatalf("End = %s", got)
	}
	if got := c.String(); got != "2024-02" {
		t.Fatalf("String = %q", got)
	}
}

func TestNewRangeOrdersPair(t *testing.T) {
	r := NewRange(date(2024, time.June, 1), date(2024, time.January, 1))
	if r.Inverted() {
		t.Fatalf("NewRange left range inverted: %s", r)
	}
	if !r.From.Equal(date(2024, time.January, 1)) || !r.To.Equal(date(2024, time.June, 1)) {
		t.Fatalf("unexpected range %s", r)
	}
}

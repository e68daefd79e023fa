package period

import (
	"strings"
	"testing"
	"time"
)

func TestValidateShortRangeNamesClass(t *testing.T) {
	// Exactly 10 whole months apart: one short of the 1 year requirement.
	start := date(2023, time.July, 1)
	end := date(2024, time.May, 31)
	v := Validate(start, end, OneYear)
	if v.OK {
		t.Fatalf("expected 10-month range to fail 1 year validation")
	}
	if !strings.Contains(v.Message, "1 year") {
		t.Fatalf("message %q does not name the duration class", v.Message)
	}
}

func TestValidateBoundaryIsInclusive(t *testing.T) {
	cases := []struct {
		class  Class
		months int
		ok     bool
	}{
		{OneMonth, 0, true},
		{ThreeMonths, 1, false},
		{ThreeMonths, 2, true},
		{SixMonths, 4, false},
		{SixMonths, 5, true},
		{OneYear, 11, true},
		{OneYear, 10, false},
	}
	start := date(2023, time.January, 1)
	for _, tc := range cases {
		end := MonthEnd(start.AddDate(0, tc.months, 0))
		v := Validate(start, end, tc.class)
		if v.OK != tc.ok {
			t.Fatalf("%s at %d months diff: ok = %v, want %v (%s)", tc.class, tc.months, v.OK, tc.ok, v.Message)
		}
		if tc.ok && v.Message != "" {
			t.Fatalf("valid result carries message %q", v.Message)
		}
		if !tc.ok && v.Message == "" {
			t.Fatalf("invalid result carries no message")
		}
	}
}

func TestValidateIgnoresDayOfMonth(t *testing.T) {
	// 2023-12-01 to 2024-05-31 is a 5-month difference, enough for 6 months.
	v := Validate(date(2023, time.December, 1), date(2024, time.May, 31), SixMonths)
	if !v.OK {
		t.Fatalf("expected valid, got %q", v.Message)
	}
}

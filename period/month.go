package period

import (
	"fmt"
	"time"
)

// MonthStart returns midnight on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns midnight on the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

// Day strips t's clock, leaving midnight on the same calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthsBetween counts whole calendar months from a's month to b's month.
// The day component is ignored: Dec 2023 to May 2024 is 5 regardless of
// which days the two dates fall on. Negative when b is in an earlier month.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// Cursor is a year/month position used to page a month picker. It is not
// the selected boundary itself; the boundary is a full date normalized to
// a month edge once the cursor position is committed.
type Cursor struct {
	Year  int
	Month time.Month
}

// CursorAt positions a cursor on t's month.
func CursorAt(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// AddMonths moves the cursor by n months, carrying across year boundaries.
func (c Cursor) AddMonths(n int) Cursor {
	t := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// AddYears moves the cursor by n years, month unchanged.
func (c Cursor) AddYears(n int) Cursor {
	return Cursor{Year: c.Year + n, Month: c.Month}
}

// Start is midnight on the first day of the cursor's month.
func (c Cursor) Start(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, loc)
}

// End is midnight on the last day of the cursor's month.
func (c Cursor) End(loc *time.Location) time.Time {
	return MonthEnd(c.Start(loc))
}

func (c Cursor) String() string {
	return fmt.Sprintf("%04d-%02d", c.Year, int(c.Month))
}

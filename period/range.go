package period

import "time"

// Range is an inclusive from/to date pair. Every constructor and every
// mutation path in this module keeps From on or before To.
type Range struct {
	From time.Time
	To   time.Time
}

// NewRange builds a range, swapping the pair if it arrives inverted so the
// ordering invariant holds on every construction path.
func NewRange(from, to time.Time) Range {
	if to.Before(from) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Inverted reports whether the pair violates the ordering invariant.
func (r Range) Inverted() bool {
	return r.To.Before(r.From)
}

func (r Range) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Months is the whole-month difference between the two boundaries.
func (r Range) Months() int {
	return MonthsBetween(r.From, r.To)
}

func (r Range) String() string {
	return r.From.Format("2006-01-02") + " to " + r.To.Format("2006-01-02")
}

// Format renders both boundaries with the given date layout.
func (r Range) Format(layout string) string {
	if layout == "" {
		return r.String()
	}
	return r.From.Format(layout) + " to " + r.To.Format(layout)
}

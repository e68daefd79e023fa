package period

import (
	"fmt"
	"time"
)

// Validation is the outcome of the minimum-span check. A failed check is
// presentation state for the caller (disabled apply, inline message), not
// an error.
type Validation struct {
	OK      bool
	Message string
}

// Validate checks that the whole-month difference between end and start
// covers the class's minimum span. It is a pure function of its three
// inputs and must be recomputed whenever any of them changes.
func Validate(start, end time.Time, class Class) Validation {
	if MonthsBetween(start, end) < class.RequiredDiff() {
		return Validation{
			Message: fmt.Sprintf("The selected date range must cover at least %s.", class),
		}
	}
	return Validation{OK: true}
}

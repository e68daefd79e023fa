package period

// CompareOptions describes how a caller should slice and compare the
// resolved range. The fields carry no invariants between them; each is
// independently toggleable.
type CompareOptions struct {
	ToPreviousPeriod        bool
	ToPreviousYear          bool
	ToFinancialYearToDate   bool
	ByCompany               bool
	ByCategoryClassLocation bool
	PeriodsToCompare        int
}

const (
	MinPeriodsToCompare = 1
	MaxPeriodsToCompare = 6

	defaultPeriodsToCompare = 4
)

// DefaultCompareOptions is the fixed initial record: nothing toggled and
// four periods to compare.
func DefaultCompareOptions() CompareOptions {
	return CompareOptions{PeriodsToCompare: defaultPeriodsToCompare}
}

// ClampPeriods bounds a periods-to-compare value to the 1..6 selector range.
func ClampPeriods(n int) int {
	if n < MinPeriodsToCompare {
		return MinPeriodsToCompare
	}
	if n > MaxPeriodsToCompare {
		return MaxPeriodsToCompare
	}
	return n
}

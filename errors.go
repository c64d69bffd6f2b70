package cronspec

import "fmt"

// ParseError reports a schedule expression that could not be parsed: wrong
// field count, a token that is neither "*" nor an integer, or a fixed value
// outside its field's range.
type ParseError struct {
	Expr   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cronspec: parsing %q: %s", e.Expr, e.Reason)
}

// DayOfMonthError reports a fixed day-of-month that no calendar date can
// ever satisfy under the schedule's month field. Month is zero when the
// month field is a wildcard.
type DayOfMonthError struct {
	Day   int
	Month int
}

func (e *DayOfMonthError) Error() string {
	if e.Month == 0 {
		return fmt.Sprintf("cronspec: day %d is not valid in any month", e.Day)
	}
	return fmt.Sprintf("cronspec: day %d is never valid in month %d", e.Day, e.Month)
}

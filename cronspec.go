// Package cronspec computes occurrence times for four-field schedule
// expressions of the form "minute hour day-of-month month", where each field
// is either "*" or a fixed integer. Resolution is one minute. Ranges, lists,
// step values, named months, and timezone conversions are not supported;
// computation is calendar arithmetic in the input timestamp's location.
package cronspec

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"
)

// scheduleUnits is the fixed field order of an expression, finest granularity
// first. The chain alignment algorithm depends on this ordering.
var scheduleUnits = [4]Unit{UnitMinute, UnitHour, UnitDay, UnitMonth}

// Schedule is a parsed, validated schedule expression. It is immutable and
// safe for concurrent use; Next is a pure function of its input.
type Schedule struct {
	expr  string
	chain chain
}

// Parse parses an expression of exactly four space-separated fields in the
// fixed order "minute hour day-of-month month". It returns a *ParseError for
// malformed input and a *DayOfMonthError for a fixed day-of-month that can
// never occur under the month field (such as "* * 31 4"), so impossible
// schedules fail here instead of never firing.
func Parse(expr string) (*Schedule, error) {
	tokens := strings.Split(expr, " ")
	if len(tokens) != 4 {
		return nil, &ParseError{Expr: expr, Reason: fmt.Sprintf("want 4 fields, got %d", len(tokens))}
	}

	var fields [4]field
	for i, unit := range scheduleUnits {
		f, err := parseField(unit, tokens[i])
		if err != nil {
			return nil, &ParseError{Expr: expr, Reason: err.Error()}
		}
		fields[i] = f
	}

	if day := fields[2]; !day.wildcard {
		if err := validateDayOfMonth(day, fields[3]); err != nil {
			return nil, err
		}
	}

	return &Schedule{
		expr:  expr,
		chain: chain{fields[0], fields[1], fields[2], fields[3]},
	}, nil
}

// MustParse is like Parse but panics if the expression is invalid. Use for
// expressions known valid at compile time.
func MustParse(expr string) *Schedule {
	s, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return s
}

// parseField parses one token for the given unit. Day-of-month bounds are
// not checked here; validateDayOfMonth owns them so they surface as a
// *DayOfMonthError rather than a generic range failure.
func parseField(unit Unit, token string) (field, error) {
	if token == "*" {
		return field{unit: unit, wildcard: true}, nil
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return field{}, fmt.Errorf("%s field %q is neither \"*\" nor an integer", unit, token)
	}
	if unit != UnitDay && (v < unit.Min() || v > unit.Max()) {
		return field{}, fmt.Errorf("%s value %d out of range %d-%d", unit, v, unit.Min(), unit.Max())
	}
	return field{unit: unit, value: v}, nil
}

// validateDayOfMonth rejects fixed days that no date can ever hold: out of
// the 1-31 range, or beyond the fixed month's greatest possible length.
// Day 29 with month 2 passes because leap years exist.
func validateDayOfMonth(day, month field) error {
	if day.value < UnitDay.Min() || day.value > UnitDay.Max() {
		return &DayOfMonthError{Day: day.value}
	}
	if month.wildcard {
		return nil
	}
	// 2000 is a leap year, so February's longest possible length applies.
	if day.value > daysIn(2000, time.Month(month.value)) {
		return &DayOfMonthError{Day: day.value, Month: month.value}
	}
	return nil
}

// String returns the expression the schedule was parsed from.
func (s *Schedule) String() string {
	return s.expr
}

// Next returns the smallest timestamp strictly after from, at minute
// resolution, that satisfies every field. Sub-minute precision in from is
// discarded, not rounded, before computation; a from already satisfying the
// schedule is therefore never returned as-is. Next cannot fail and always
// terminates for a parsed Schedule.
func (s *Schedule) Next(from time.Time) time.Time {
	year, month, day := from.Date()
	t := time.Date(year, month, day, from.Hour(), from.Minute(), 0, 0, from.Location())
	t = t.Add(time.Minute)
	return s.chain.align(t)
}

// Times returns an infinite sequence of successive occurrences after from;
// from itself is never yielded even if it satisfies the schedule. Each
// element is computed on demand; the consumer stops the sequence by breaking
// out of the loop.
func (s *Schedule) Times(from time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		t := from
		for {
			t = s.Next(t)
			if !yield(t) {
				return
			}
		}
	}
}

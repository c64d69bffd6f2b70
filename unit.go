package cronspec

import "time"

// Unit is one calendar granularity a schedule field can constrain, ordered
// from finest (UnitMinute) to coarsest (UnitYear). Year exists only as a
// rollover target; expressions cannot constrain it.
type Unit int

const (
	UnitMinute Unit = iota
	UnitHour
	UnitDay
	UnitMonth
	UnitYear
)

// String returns the lowercase unit name.
func (u Unit) String() string {
	switch u {
	case UnitMinute:
		return "minute"
	case UnitHour:
		return "hour"
	case UnitDay:
		return "day"
	case UnitMonth:
		return "month"
	case UnitYear:
		return "year"
	}
	return "unknown"
}

// Coarser returns the next-coarser unit. It panics on UnitYear; a four-field
// schedule never rolls past years.
func (u Unit) Coarser() Unit {
	if u == UnitYear {
		panic("cronspec: no unit coarser than year")
	}
	return u + 1
}

// Min returns the smallest legal value for the unit.
func (u Unit) Min() int {
	if u == UnitDay || u == UnitMonth {
		return 1
	}
	return 0
}

// Max returns the largest value the unit can hold in any context. For UnitDay
// this is the 31-day upper bound; see MaxAt for the per-month value.
func (u Unit) Max() int {
	switch u {
	case UnitMinute:
		return 59
	case UnitHour:
		return 23
	case UnitDay:
		return 31
	case UnitMonth:
		return 12
	}
	panic("cronspec: unit has no context-free maximum")
}

// MaxAt returns the largest legal value for the unit at t. Only UnitDay
// varies with context (28-31 depending on t's month and year).
func (u Unit) MaxAt(t time.Time) int {
	if u == UnitDay {
		return daysIn(t.Year(), t.Month())
	}
	return u.Max()
}

// Value extracts the unit's value from t.
func (u Unit) Value(t time.Time) int {
	switch u {
	case UnitMinute:
		return t.Minute()
	case UnitHour:
		return t.Hour()
	case UnitDay:
		return t.Day()
	case UnitMonth:
		return int(t.Month())
	case UnitYear:
		return t.Year()
	}
	panic("cronspec: unknown unit")
}

// WithValue returns t with this unit set to v, finer units left intact and
// seconds dropped. Setting UnitMonth or UnitYear clamps day-of-month to the
// length of the resulting month rather than spilling into the next one.
// v must be legal for the unit; for UnitDay it must not exceed MaxAt(t).
func (u Unit) WithValue(t time.Time, v int) time.Time {
	year, month, day := t.Date()
	hour, minute := t.Hour(), t.Minute()
	switch u {
	case UnitMinute:
		minute = v
	case UnitHour:
		hour = v
	case UnitDay:
		day = v
	case UnitMonth:
		month = time.Month(v)
		day = min(day, daysIn(year, month))
	case UnitYear:
		year = v
		day = min(day, daysIn(year, month))
	}
	return time.Date(year, month, day, hour, minute, 0, 0, t.Location())
}

// Step advances t by exactly one of this unit, cascading standard calendar
// carries (minute 59 rolls the hour, December rolls the year). Stepping
// UnitMonth or UnitYear clamps day-of-month to the target month's length.
func (u Unit) Step(t time.Time) time.Time {
	switch u {
	case UnitMinute:
		return t.Add(time.Minute)
	case UnitHour:
		return t.Add(time.Hour)
	case UnitDay:
		return t.AddDate(0, 0, 1)
	case UnitMonth:
		year, month, day := t.Date()
		if month == time.December {
			year, month = year+1, time.January
		} else {
			month++
		}
		day = min(day, daysIn(year, month))
		return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, t.Location())
	case UnitYear:
		year, month, day := t.Date()
		year++
		day = min(day, daysIn(year, month))
		return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, t.Location())
	}
	panic("cronspec: unknown unit")
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	// Day zero of the following month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

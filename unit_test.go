package cronspec

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestUnit_String(t *testing.T) {
	names := map[Unit]string{
		UnitMinute: "minute",
		UnitHour:   "hour",
		UnitDay:    "day",
		UnitMonth:  "month",
		UnitYear:   "year",
	}
	for unit, want := range names {
		if got := unit.String(); got != want {
			t.Errorf("Unit(%d).String() = %q, want %q", unit, got, want)
		}
	}
}

func TestUnit_Coarser(t *testing.T) {
	if got := UnitMinute.Coarser(); got != UnitHour {
		t.Errorf("minute coarser = %v, want hour", got)
	}
	if got := UnitMonth.Coarser(); got != UnitYear {
		t.Errorf("month coarser = %v, want year", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for year.Coarser()")
		}
	}()
	UnitYear.Coarser()
}

func TestUnit_Bounds(t *testing.T) {
	tests := []struct {
		unit     Unit
		min, max int
	}{
		{UnitMinute, 0, 59},
		{UnitHour, 0, 23},
		{UnitDay, 1, 31},
		{UnitMonth, 1, 12},
	}
	for _, tt := range tests {
		if got := tt.unit.Min(); got != tt.min {
			t.Errorf("%v.Min() = %d, want %d", tt.unit, got, tt.min)
		}
		if got := tt.unit.Max(); got != tt.max {
			t.Errorf("%v.Max() = %d, want %d", tt.unit, got, tt.max)
		}
	}
}

func TestUnit_MaxAt(t *testing.T) {
	tests := []struct {
		at   time.Time
		want int
	}{
		{date(2020, time.February, 1, 0, 0), 29}, // leap year
		{date(2021, time.February, 1, 0, 0), 28},
		{date(2100, time.February, 1, 0, 0), 28}, // century, not a leap year
		{date(2000, time.February, 1, 0, 0), 29}, // divisible by 400
		{date(2020, time.April, 15, 0, 0), 30},
		{date(2020, time.December, 31, 0, 0), 31},
	}
	for _, tt := range tests {
		if got := UnitDay.MaxAt(tt.at); got != tt.want {
			t.Errorf("day.MaxAt(%v) = %d, want %d", tt.at, got, tt.want)
		}
	}

	// Context-free units pass through to Max.
	if got := UnitMinute.MaxAt(date(2020, time.February, 1, 0, 0)); got != 59 {
		t.Errorf("minute.MaxAt = %d, want 59", got)
	}
}

func TestUnit_Value(t *testing.T) {
	at := date(2020, time.March, 27, 11, 42)
	tests := []struct {
		unit Unit
		want int
	}{
		{UnitMinute, 42},
		{UnitHour, 11},
		{UnitDay, 27},
		{UnitMonth, 3},
		{UnitYear, 2020},
	}
	for _, tt := range tests {
		if got := tt.unit.Value(at); got != tt.want {
			t.Errorf("%v.Value = %d, want %d", tt.unit, got, tt.want)
		}
	}
}

func TestUnit_WithValue(t *testing.T) {
	t.Run("simple fields", func(t *testing.T) {
		at := date(2020, time.March, 27, 11, 42)
		if got, want := UnitMinute.WithValue(at, 5), date(2020, time.March, 27, 11, 5); !got.Equal(want) {
			t.Errorf("set minute: got %v, want %v", got, want)
		}
		if got, want := UnitHour.WithValue(at, 0), date(2020, time.March, 27, 0, 42); !got.Equal(want) {
			t.Errorf("set hour: got %v, want %v", got, want)
		}
		if got, want := UnitDay.WithValue(at, 1), date(2020, time.March, 1, 11, 42); !got.Equal(want) {
			t.Errorf("set day: got %v, want %v", got, want)
		}
	})

	t.Run("setting month clamps day", func(t *testing.T) {
		jan31 := date(2020, time.January, 31, 10, 30)
		if got, want := UnitMonth.WithValue(jan31, 2), date(2020, time.February, 29, 10, 30); !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
		jan31 = date(2021, time.January, 31, 10, 30)
		if got, want := UnitMonth.WithValue(jan31, 2), date(2021, time.February, 28, 10, 30); !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("setting year clamps leap day", func(t *testing.T) {
		feb29 := date(2020, time.February, 29, 0, 0)
		if got, want := UnitYear.WithValue(feb29, 2021), date(2021, time.February, 28, 0, 0); !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("drops seconds", func(t *testing.T) {
		at := time.Date(2020, time.March, 27, 11, 0, 30, 123, time.UTC)
		if got := UnitMinute.WithValue(at, 5); got.Second() != 0 || got.Nanosecond() != 0 {
			t.Errorf("seconds survived: %v", got)
		}
	})
}

func TestUnit_Step(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
		at   time.Time
		want time.Time
	}{
		{"minute", UnitMinute, date(2020, time.March, 27, 11, 0), date(2020, time.March, 27, 11, 1)},
		{"minute rolls hour", UnitMinute, date(2020, time.March, 27, 11, 59), date(2020, time.March, 27, 12, 0)},
		{"hour rolls day", UnitHour, date(2020, time.March, 27, 23, 15), date(2020, time.March, 28, 0, 15)},
		{"day rolls month", UnitDay, date(2020, time.February, 29, 8, 0), date(2020, time.March, 1, 8, 0)},
		{"day rolls year", UnitDay, date(2020, time.December, 31, 0, 0), date(2021, time.January, 1, 0, 0)},
		{"month", UnitMonth, date(2020, time.April, 15, 6, 30), date(2020, time.May, 15, 6, 30)},
		{"month clamps day", UnitMonth, date(2020, time.January, 31, 0, 0), date(2020, time.February, 29, 0, 0)},
		{"month clamps to 30", UnitMonth, date(2020, time.March, 31, 0, 0), date(2020, time.April, 30, 0, 0)},
		{"month rolls year", UnitMonth, date(2020, time.December, 31, 0, 0), date(2021, time.January, 31, 0, 0)},
		{"year", UnitYear, date(2020, time.June, 1, 12, 0), date(2021, time.June, 1, 12, 0)},
		{"year clamps leap day", UnitYear, date(2020, time.February, 29, 0, 0), date(2021, time.February, 28, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.Step(tt.at); !got.Equal(tt.want) {
				t.Errorf("%v.Step(%v) = %v, want %v", tt.unit, tt.at, got, tt.want)
			}
		})
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2020, time.January, 31},
		{2020, time.February, 29},
		{2021, time.February, 28},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2020, time.April, 30},
		{2020, time.December, 31},
	}
	for _, tt := range tests {
		if got := daysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("daysIn(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

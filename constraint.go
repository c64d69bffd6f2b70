package cronspec

import "time"

// constraint is one requirement a timestamp must satisfy. A field covers a
// single unit; a chain composes fields into a full-schedule aligner. Both
// expose the same three operations so a chain can treat its members opaquely.
type constraint interface {
	// aligned reports whether t already satisfies the constraint.
	aligned(t time.Time) bool

	// align returns the smallest timestamp >= t satisfying the constraint.
	align(t time.Time) time.Time

	// reset returns t with the constraint's unit(s) set to their minimum.
	reset(t time.Time) time.Time
}

// field constrains a single unit to either any value (wildcard) or one fixed
// value.
type field struct {
	unit     Unit
	value    int
	wildcard bool
}

var _ constraint = field{}

func (f field) aligned(t time.Time) bool {
	return f.wildcard || f.unit.Value(t) == f.value
}

// align moves t forward to the nearest moment whose field holds the fixed
// value. If the value has already passed in the current coarser-unit
// instance, that coarser unit steps forward once. It then keeps stepping
// while the field cannot legally hold the value in the resulting context;
// this is what skips day 31 in 30-day months and February 29th outside leap
// years.
func (f field) align(t time.Time) time.Time {
	if f.wildcard {
		return t
	}
	if f.unit.Value(t) > f.value {
		t = f.unit.Coarser().Step(t)
	}
	for f.unit.MaxAt(t) < f.value {
		t = f.unit.Coarser().Step(t)
	}
	return f.unit.WithValue(t, f.value)
}

// reset applies to wildcard fields too: once a coarser field advances, finer
// fields restart from their minimum rather than keeping a stale value.
func (f field) reset(t time.Time) time.Time {
	return f.unit.WithValue(t, f.unit.Min())
}

// chain aligns a timestamp against all fields of a schedule. The slice must
// be ordered finest to coarsest; the coarsest misaligned field is found as
// the last misaligned entry in a single left-to-right scan.
type chain []constraint

var _ constraint = chain(nil)

func (c chain) aligned(t time.Time) bool {
	for _, f := range c {
		if !f.aligned(t) {
			return false
		}
	}
	return true
}

// align runs the fixed-point loop: each round aligns the coarsest misaligned
// field, then resets every finer field to its minimum, until a full scan
// finds no misalignment. Every round moves t forward, never backward, so the
// result is the smallest aligned timestamp >= t.
func (c chain) align(t time.Time) time.Time {
	for {
		coarsest := -1
		for i, f := range c {
			if !f.aligned(t) {
				coarsest = i
			}
		}
		if coarsest < 0 {
			return t
		}
		t = c[coarsest].align(t)
		for _, finer := range c[:coarsest] {
			t = finer.reset(t)
		}
	}
}

func (c chain) reset(t time.Time) time.Time {
	for _, f := range c {
		t = f.reset(t)
	}
	return t
}

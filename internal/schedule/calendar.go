// Package schedule holds the trip-window rules: calendar-day arithmetic,
// activity and trip window validation, and per-day bucketing of activities.
// Everything here is pure; no I/O and no clock reads (callers pass now).
package schedule

import "time"

const day = 24 * time.Hour

// Calendar performs day-granularity arithmetic in a single fixed location.
// Pick the location once at startup and share the Calendar; mixing locations
// is what produces off-by-one day buckets.
type Calendar struct {
	loc *time.Location
}

// UTC is the default calendar.
var UTC = NewCalendar(time.UTC)

// NewCalendar returns a Calendar bound to loc. A nil loc means UTC.
func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

// Location returns the location the calendar computes days in.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Day returns midnight of t's calendar date in the calendar's location.
func (c Calendar) Day(t time.Time) time.Time {
	y, m, d := t.In(c.Location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.Location())
}

// DaysBetween returns the number of calendar-day boundaries from start's date
// to end's date. Time of day is ignored, so 2024-01-01T23:00 and
// 2024-01-02T01:00 are one day apart. The result is negative when end's date
// precedes start's.
// Not an elapsed-time diff: 01-01T10:00 to 01-03T09:00 is 2 here, 1 in whole 24h periods.
func (c Calendar) DaysBetween(start, end time.Time) int {
	// Re-anchor both dates in UTC so DST transitions in loc cannot make a day
	// 23 or 25 hours long.
	sy, sm, sd := start.In(c.Location()).Date()
	ey, em, ed := end.In(c.Location()).Date()
	s := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	e := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s) / day)
}

// EnumerateDays returns count+1 consecutive calendar dates starting at
// start's date, in ascending order. A negative count yields no dates.
func (c Calendar) EnumerateDays(start time.Time, count int) []time.Time {
	if count < 0 {
		return []time.Time{}
	}
	first := c.Day(start)
	days := make([]time.Time, count+1)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

// SameCalendarDay reports whether a and b fall on the same date in the
// calendar's location.
func (c Calendar) SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.In(c.Location()).Date()
	by, bm, bd := b.In(c.Location()).Date()
	return ay == by && am == bm && ad == bd
}

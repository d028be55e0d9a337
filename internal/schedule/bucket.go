package schedule

import "github.com/pkordes/trip-planner/internal/domain"

// BucketActivitiesByDay partitions activities into one bucket per calendar day
// of the trip window, from the start date to the end date inclusive.
//
// Every day gets a bucket, empty or not. Activities keep the order they were
// passed in, so callers wanting a chronological view must pass them sorted by
// OccursAt. Activities dated outside the window match no bucket and are left
// out; that can only happen if the window changed after they were created.
func (c Calendar) BucketActivitiesByDay(trip domain.Trip, activities []domain.Activity) []domain.DayActivities {
	days := c.EnumerateDays(trip.StartsAt, c.DaysBetween(trip.StartsAt, trip.EndsAt))

	buckets := make([]domain.DayActivities, len(days))
	for i, d := range days {
		buckets[i] = domain.DayActivities{Date: d, Activities: []domain.Activity{}}
	}

	for _, a := range activities {
		// The offset from the first day is the bucket index; SameCalendarDay
		// guards against anything the offset arithmetic would misplace.
		i := c.DaysBetween(trip.StartsAt, a.OccursAt)
		if i < 0 || i >= len(buckets) || !c.SameCalendarDay(buckets[i].Date, a.OccursAt) {
			continue
		}
		buckets[i].Activities = append(buckets[i].Activities, a)
	}

	return buckets
}

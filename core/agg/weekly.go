package agg

import (
	"time"

	"github.com/huangsam/cardstats/schema"
)

// BucketWeekly splits events into numWeeks Sunday-aligned weeks, oldest first.
func BucketWeekly(events []schema.Event, numWeeks int, now time.Time) ([]schema.WeekBucket, error) {
	return BucketWeeklyAligned(events, numWeeks, now, time.Sunday)
}

// BucketWeeklyAligned splits events into numWeeks calendar weeks that start at
// local midnight on weekStart. The last week contains now.
//
// Week boundaries are inclusive at the start: an event exactly at a week-start
// instant belongs to the week it starts. Events before the first week or at or
// after the end of the last week are ignored, as are unknown categories.
func BucketWeeklyAligned(events []schema.Event, numWeeks int, now time.Time, weekStart time.Weekday) ([]schema.WeekBucket, error) {
	if err := validateWindow("weeks", numWeeks); err != nil {
		return nil, err
	}
	loc := now.Location()
	today := midnight(now, loc)
	offset := (int(today.Weekday()) - int(weekStart) + 7) % 7
	current := today.AddDate(0, 0, -offset)

	buckets := make([]schema.WeekBucket, numWeeks)
	for i := range buckets {
		buckets[i].WeekStart = current.AddDate(0, 0, -7*(numWeeks-1-i))
	}
	end := current.AddDate(0, 0, 7)

	for _, e := range events {
		t, ok := ParseTimestamp(e.Timestamp)
		if !ok {
			continue
		}
		if t.Before(buckets[0].WeekStart) || !t.Before(end) {
			continue
		}
		b := &buckets[weekIndex(buckets, t)]
		switch e.Category {
		case schema.CommitEvent:
			b.Commits++
		case schema.PullRequestEvent:
			b.PullRequests++
		case schema.IssueEvent:
			b.Issues++
		}
	}
	return buckets, nil
}

// weekIndex scans from the newest week and returns the first one that started
// at or before t. Callers guarantee t is not before the oldest week.
func weekIndex(buckets []schema.WeekBucket, t time.Time) int {
	for i := len(buckets) - 1; i > 0; i-- {
		if !t.Before(buckets[i].WeekStart) {
			return i
		}
	}
	return 0
}

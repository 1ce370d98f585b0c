// Package agg turns raw activity events into dense calendar buckets.
//
// Every function here is pure: the reference time zone is always the
// location of the supplied "now", and records whose timestamp cannot be
// parsed are skipped without failing the aggregation.
package agg

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/cardstats/schema"
)

// ErrInvalidWindow is returned when a window or week count is below 1.
var ErrInvalidWindow = errors.New("window must be at least 1")

// dateLayout is the calendar day key used for daily buckets and count records.
const dateLayout = "2006-01-02"

// ParseTimestamp parses an ISO-8601 instant. Fractional seconds are optional.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CountUnparsable reports how many events would be skipped for a bad timestamp.
func CountUnparsable(events []schema.Event) int {
	n := 0
	for _, e := range events {
		if _, ok := ParseTimestamp(e.Timestamp); !ok {
			n++
		}
	}
	return n
}

// midnight returns the start of t's calendar day in loc.
func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// newWindow builds a zero-filled series of windowDays days ending on now's
// calendar day, along with a lookup from day key to series index.
func newWindow(windowDays int, now time.Time) (schema.TimeSeries, map[string]int) {
	loc := now.Location()
	start := midnight(now, loc).AddDate(0, 0, -(windowDays - 1))

	series := make(schema.TimeSeries, windowDays)
	index := make(map[string]int, windowDays)
	for i := range series {
		day := start.AddDate(0, 0, i)
		series[i] = schema.DatedCount{Date: day}
		index[day.Format(dateLayout)] = i
	}
	return series, index
}

func validateWindow(name string, n int) error {
	if n < 1 {
		return fmt.Errorf("%s: %w (received %d)", name, ErrInvalidWindow, n)
	}
	return nil
}

// BucketDaily counts events per calendar day over the trailing windowDays days.
// The result always has exactly windowDays entries; days without events are zero.
func BucketDaily(events []schema.Event, windowDays int, now time.Time) (schema.TimeSeries, error) {
	if err := validateWindow("window days", windowDays); err != nil {
		return nil, err
	}
	loc := now.Location()
	series, index := newWindow(windowDays, now)

	for _, e := range events {
		t, ok := ParseTimestamp(e.Timestamp)
		if !ok {
			continue
		}
		if i, found := index[t.In(loc).Format(dateLayout)]; found {
			series[i].Count++
		}
	}
	return series, nil
}

// DailyFromCounts densifies pre-aggregated day counts into the same window shape
// as BucketDaily. Records with a bad date or a negative count are skipped,
// duplicate days are summed and days outside the window are ignored.
func DailyFromCounts(records []schema.DailyCountRecord, windowDays int, now time.Time) (schema.TimeSeries, error) {
	if err := validateWindow("window days", windowDays); err != nil {
		return nil, err
	}
	loc := now.Location()
	series, index := newWindow(windowDays, now)

	for _, r := range records {
		if r.Count < 0 {
			continue
		}
		day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(r.Date), loc)
		if err != nil {
			continue
		}
		if i, found := index[day.Format(dateLayout)]; found {
			series[i].Count += r.Count
		}
	}
	return series, nil
}

// CountBadRecords reports how many day records DailyFromCounts would skip.
func CountBadRecords(records []schema.DailyCountRecord) int {
	n := 0
	for _, r := range records {
		if _, err := time.Parse(dateLayout, strings.TrimSpace(r.Date)); err != nil || r.Count < 0 {
			n++
		}
	}
	return n
}

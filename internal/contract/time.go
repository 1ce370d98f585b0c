package contract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

// relativeTimeRe captures "N [units] ago", e.g. "3 days ago" or "1 week ago".
var relativeTimeRe = regexp.MustCompile(`^(\d+)\s+(year|month|week|day|hour|minute)s?\s+ago$`)

// lookbackDurationRe captures "N [units]", e.g. "30 days" or "2 weeks".
var lookbackDurationRe = regexp.MustCompile(`^(\d+)\s+(year|month|week|day|hour|minute)s?$`)

// ParseRelativeTime converts strings like "2 days ago" into an instant before now.
// Years and months follow the calendar, smaller units are fixed durations.
func ParseRelativeTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	matches := relativeTimeRe.FindStringSubmatch(s)
	if len(matches) == 0 {
		return time.Time{}, fmt.Errorf("invalid relative time format: %s", s)
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid relative time value: %w", err)
	}

	switch matches[2] {
	case "year":
		return now.AddDate(-value, 0, 0), nil
	case "month":
		return now.AddDate(0, -value, 0), nil
	default:
		return now.Add(-time.Duration(value) * unitDuration(matches[2])), nil
	}
}

// ParseLookbackDuration converts strings like "30 days" or "720h" into a time.Duration.
// Go duration syntax is tried first. A month counts as 30 days and a year as 365.
func ParseLookbackDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	if duration, err := time.ParseDuration(s); err == nil {
		if duration <= 0 {
			return 0, errors.New("lookback duration must be positive")
		}
		return duration, nil
	}

	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	matches := lookbackDurationRe.FindStringSubmatch(s)
	if len(matches) == 0 {
		return 0, fmt.Errorf("invalid lookback duration format: %s", s)
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid lookback value: %w", err)
	}
	total := time.Duration(value) * unitDuration(matches[2])
	if total <= 0 {
		return 0, errors.New("lookback duration must be positive")
	}
	return total, nil
}

// unitDuration returns the length of one unit.
func unitDuration(unit string) time.Duration {
	switch unit {
	case "year":
		return 365 * day
	case "month":
		return 30 * day
	case "week":
		return 7 * day
	case "day":
		return day
	case "hour":
		return time.Hour
	default:
		return time.Minute
	}
}

// ParseWindowDays parses a lookback such as "30 days" or "4 weeks" into a whole
// number of calendar days. Partial days are rejected.
func ParseWindowDays(s string) (int, error) {
	d, err := ParseLookbackDuration(s)
	if err != nil {
		return 0, err
	}
	if d%day != 0 {
		return 0, fmt.Errorf("window must be a whole number of days (received %s)", s)
	}
	return int(d / day), nil
}

// ParseReferenceTime resolves the instant a report is computed for. An empty
// string means now. Both RFC 3339 and "N [units] ago" are accepted. The result
// is expressed in loc so calendar days follow that zone.
func ParseReferenceTime(s string, now time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return now.In(loc), nil
	}
	if t, err := time.Parse(DateTimeFormat, s); err == nil {
		return t.In(loc), nil
	}
	t, err := ParseRelativeTime(s, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference time '%s'. Expected RFC 3339 or 'N [units] ago'", s)
	}
	return t.In(loc), nil
}

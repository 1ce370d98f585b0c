// Package schema has the models and enums shared by every part of cardstats.
package schema

import (
	"fmt"
	"time"
)

// DatedCount is the activity count observed on one calendar day.
type DatedCount struct {
	Date  time.Time `json:"date" yaml:"date"`   // Midnight of the day in the reference zone
	Count int       `json:"count" yaml:"count"` // Number of events on that day
}

// TimeSeries is a dense, strictly increasing run of consecutive days.
// The last entry is today in the reference zone.
type TimeSeries []DatedCount

// Counts returns the raw day counts in series order.
func (s TimeSeries) Counts() []int {
	out := make([]int, len(s))
	for i, d := range s {
		out[i] = d.Count
	}
	return out
}

// Values returns the day counts as floats for the numeric helpers.
func (s TimeSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, d := range s {
		out[i] = float64(d.Count)
	}
	return out
}

// Max returns the largest day count, or 0 for an empty series.
func (s TimeSeries) Max() int {
	m := 0
	for _, d := range s {
		if d.Count > m {
			m = d.Count
		}
	}
	return m
}

// WeekBucket holds per-category totals for one calendar week.
type WeekBucket struct {
	WeekStart    time.Time `json:"week_start" yaml:"week_start"`
	Commits      int       `json:"commits" yaml:"commits"`
	PullRequests int       `json:"pull_requests" yaml:"pull_requests"`
	Issues       int       `json:"issues" yaml:"issues"`
}

// Total is the sum of all three categories.
func (w WeekBucket) Total() int {
	return w.Commits + w.PullRequests + w.Issues
}

// Label renders the week start as month/day, e.g. "3/9".
func (w WeekBucket) Label() string {
	return fmt.Sprintf("%d/%d", int(w.WeekStart.Month()), w.WeekStart.Day())
}

// HourHistogram counts events per hour of day, index 0 through 23.
type HourHistogram [24]int

// Total returns the number of events in the histogram.
func (h HourHistogram) Total() int {
	sum := 0
	for _, c := range h {
		sum += c
	}
	return sum
}

// StreakResult is the current and longest run of active days.
// Current never exceeds Longest.
type StreakResult struct {
	Current int `json:"current" yaml:"current"`
	Longest int `json:"longest" yaml:"longest"`
}

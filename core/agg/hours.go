package agg

import (
	"time"

	"github.com/huangsam/cardstats/schema"
)

// BucketHourOfDay counts events by hour of day in loc, regardless of date.
// A nil loc means UTC.
func BucketHourOfDay(events []schema.Event, loc *time.Location) schema.HourHistogram {
	if loc == nil {
		loc = time.UTC
	}
	var hist schema.HourHistogram
	for _, e := range events {
		t, ok := ParseTimestamp(e.Timestamp)
		if !ok {
			continue
		}
		hist[t.In(loc).Hour()]++
	}
	return hist
}

// DefaultDayPeriods splits the day into six four-hour periods.
func DefaultDayPeriods() []schema.DayPeriod {
	return []schema.DayPeriod{
		{Label: "Late Night", StartHour: 0, EndHour: 4, Color: "#6E40AA"},
		{Label: "Early Morning", StartHour: 4, EndHour: 8, Color: "#7E6DAF"},
		{Label: "Morning", StartHour: 8, EndHour: 12, Color: "#B186D6"},
		{Label: "Afternoon", StartHour: 12, EndHour: 16, Color: "#C9A7E4"},
		{Label: "Evening", StartHour: 16, EndHour: 20, Color: "#E0C8F0"},
		{Label: "Night", StartHour: 20, EndHour: 24, Color: "#9B5FC0"},
	}
}

// SumPeriods folds an hour histogram into one donut input per period.
// Hours outside 0-23 are clamped away.
func SumPeriods(hist schema.HourHistogram, periods []schema.DayPeriod) []schema.DonutInput {
	out := make([]schema.DonutInput, len(periods))
	for i, p := range periods {
		sum := 0
		for h := max(p.StartHour, 0); h < min(p.EndHour, len(hist)); h++ {
			sum += hist[h]
		}
		out[i] = schema.DonutInput{Label: p.Label, Color: p.Color, Count: sum}
	}
	return out
}

// PeakPeriod returns the input with the largest count. Ties keep the first.
// It reports false when inputs is empty.
func PeakPeriod(inputs []schema.DonutInput) (schema.DonutInput, bool) {
	if len(inputs) == 0 {
		return schema.DonutInput{}, false
	}
	peak := inputs[0]
	for _, in := range inputs[1:] {
		if in.Count > peak.Count {
			peak = in
		}
	}
	return peak, true
}

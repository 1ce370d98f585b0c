package agg

import (
	"testing"
	"time"

	"github.com/huangsam/cardstats/schema"
	"github.com/stretchr/testify/assert"
)

func TestBucketHourOfDay(t *testing.T) {
	events := commitsAt(
		"2025-03-12T00:30:00Z",
		"2024-01-01T00:59:59Z", // any date counts
		"2025-03-11T23:00:00Z",
		"2025-03-11T16:00:00-07:00", // 23:00 UTC
		"bad",
	)

	hist := BucketHourOfDay(events, nil)
	assert.Equal(t, 2, hist[0])
	assert.Equal(t, 2, hist[23])
	assert.Equal(t, 4, hist.Total())

	shifted := BucketHourOfDay(events, time.FixedZone("UTC+9", 9*3600))
	assert.Equal(t, 2, shifted[9])
	assert.Equal(t, 2, shifted[8])
}

func TestSumPeriods(t *testing.T) {
	var hist schema.HourHistogram
	hist[1] = 3
	hist[3] = 1
	hist[4] = 2
	hist[13] = 5
	hist[23] = 4

	inputs := SumPeriods(hist, DefaultDayPeriods())

	counts := make([]int, len(inputs))
	for i, in := range inputs {
		counts[i] = in.Count
	}
	assert.Equal(t, []int{4, 2, 0, 5, 0, 4}, counts)
	assert.Equal(t, "Late Night", inputs[0].Label)
	assert.Equal(t, "#6E40AA", inputs[0].Color)

	clamped := SumPeriods(hist, []schema.DayPeriod{{Label: "all", StartHour: -5, EndHour: 99}})
	assert.Equal(t, hist.Total(), clamped[0].Count)
}

func TestPeakPeriod(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []schema.DonutInput
		expected string
		ok       bool
	}{
		{"single peak", []schema.DonutInput{{Label: "a", Count: 1}, {Label: "b", Count: 3}}, "b", true},
		{"tie keeps first", []schema.DonutInput{{Label: "a", Count: 3}, {Label: "b", Count: 3}}, "a", true},
		{"all zero", []schema.DonutInput{{Label: "a"}, {Label: "b"}}, "a", true},
		{"empty", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			peak, ok := PeakPeriod(tt.inputs)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, peak.Label)
		})
	}
}

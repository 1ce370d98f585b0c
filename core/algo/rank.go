package algo

import (
	"sort"

	"github.com/huangsam/cardstats/schema"
)

// RankDays sorts a copy of the series by count in descending order and
// returns the top 'limit' days. Ties keep calendar order, and days without
// activity are never ranked.
func RankDays(series schema.TimeSeries, limit int) []schema.DatedCount {
	days := make([]schema.DatedCount, 0, len(series))
	for _, d := range series {
		if d.Count > 0 {
			days = append(days, d)
		}
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Count > days[j].Count
	})
	if limit > 0 && len(days) > limit {
		return days[:limit]
	}
	return days
}

// RankWeeks sorts a copy of the weeks by total activity in descending order
// and returns the top 'limit' weeks.
func RankWeeks(weeks []schema.WeekBucket, limit int) []schema.WeekBucket {
	ranked := make([]schema.WeekBucket, len(weeks))
	copy(ranked, weeks)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total() > ranked[j].Total()
	})
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

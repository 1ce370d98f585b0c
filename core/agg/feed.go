package agg

import (
	"math"
	"sort"

	"github.com/huangsam/cardstats/schema"
)

// LanguageShares merges sizes by language name, computes each share of the
// grand total and returns the top limit languages by size.
// Percentages are relative to all languages, not just the ones returned.
func LanguageShares(sizes []schema.LanguageSize, limit int) []schema.LanguageShare {
	merged := make(map[string]*schema.LanguageShare)
	var order []string
	var total int64

	for _, s := range sizes {
		if s.Name == "" || s.Size <= 0 {
			continue
		}
		total += s.Size
		share, ok := merged[s.Name]
		if !ok {
			share = &schema.LanguageShare{Name: s.Name, Color: s.Color}
			merged[s.Name] = share
			order = append(order, s.Name)
		}
		share.Size += s.Size
		if share.Color == "" {
			share.Color = s.Color
		}
	}

	shares := make([]schema.LanguageShare, 0, len(order))
	for _, name := range order {
		share := *merged[name]
		share.Percent = math.Round(float64(share.Size)/float64(max(total, 1))*1000) / 10
		shares = append(shares, share)
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Size > shares[j].Size
	})
	if limit > 0 && len(shares) > limit {
		return shares[:limit]
	}
	return shares
}

// RecentActivity returns the newest limit events with a parsable timestamp.
func RecentActivity(events []schema.Event, limit int) []schema.ActivityItem {
	items := make([]schema.ActivityItem, 0, len(events))
	for _, e := range events {
		t, ok := ParseTimestamp(e.Timestamp)
		if !ok {
			continue
		}
		items = append(items, schema.ActivityItem{
			Time:       t,
			Category:   e.Category,
			Repository: e.Repository,
			Message:    e.Message,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Time.After(items[j].Time)
	})
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

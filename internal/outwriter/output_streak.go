package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/cardstats/internal/contract"
	"github.com/huangsam/cardstats/internal/parquet"
	"github.com/huangsam/cardstats/schema"
)

// streakDay is one day of the streak view.
type streakDay struct {
	schema.EnrichedDay `yaml:",inline"`
	Rolling            float64 `json:"rolling" yaml:"rolling"`
}

// streakOutput is the JSON and YAML payload of the streak view.
type streakOutput struct {
	Streak     schema.StreakResult `json:"streak" yaml:"streak"`
	ActiveDays int                 `json:"active_days" yaml:"active_days"`
	Days       []streakDay         `json:"days" yaml:"days"`
	StreakBars []schema.Bar        `json:"streak_bars,omitempty" yaml:"streak_bars,omitempty"`
}

var streakView = view{
	name:   "streak",
	data:   func(r schema.Report) any { return buildStreakOutput(r) },
	header: []string{"date", "count", "rolling", "intensity", "label"},
	rows: func(r schema.Report, fmtFloat func(float64) string) [][]string {
		days := buildStreakOutput(r).Days
		rows := make([][]string, len(days))
		for i, d := range days {
			rows[i] = []string{
				d.Date.Format(dayFormat),
				strconv.Itoa(d.Count),
				fmtFloat(d.Rolling),
				fmtFloat(d.Intensity),
				d.Label,
			}
		}
		return rows
	},
	table: writeStreakTable,
	parquet: func(r schema.Report, path string) error {
		return parquet.WriteFile(parquet.DailyRows(r), path)
	},
}

func buildStreakOutput(r schema.Report) streakOutput {
	enriched := schema.EnrichDaily(r.Daily)
	days := make([]streakDay, len(enriched))
	for i, d := range enriched {
		days[i] = streakDay{EnrichedDay: d}
		if i < len(r.Rolling) {
			days[i].Rolling = r.Rolling[i]
		}
	}
	return streakOutput{
		Streak:     r.Streak,
		ActiveDays: r.ActiveDays,
		Days:       days,
		StreakBars: r.StreakBars,
	}
}

func writeStreakTable(w io.Writer, r schema.Report, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "Current streak: %d | Longest streak: %d | Active days: %d of %d\n",
		r.Streak.Current, r.Streak.Longest, r.ActiveDays, len(r.Daily)); err != nil {
		return err
	}

	peak := r.Daily.Max()
	data := make([][]string, 0, len(r.Daily))
	for i, d := range r.Daily {
		label := schema.GetPlainLabel(d.Count, peak)
		if cfg.UseColors {
			label = contract.GetColorLabel(d.Count, peak)
		}
		rolling := ""
		if i < len(r.Rolling) {
			rolling = fmtFloat(r.Rolling[i])
		}
		data = append(data, []string{
			d.Date.Format(dayFormat),
			d.Date.Weekday().String()[:3],
			commaInt(d.Count),
			rolling,
			label,
		})
	}
	return renderTable(w, []string{"Date", "Day", "Count", "Rolling", "Activity"}, data)
}

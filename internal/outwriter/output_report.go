package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/cardstats/internal/contract"
	"github.com/huangsam/cardstats/internal/parquet"
	"github.com/huangsam/cardstats/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// dayFormat renders calendar days in tables and CSV.
const dayFormat = "2006-01-02"

var reportView = view{
	name:   "report",
	data:   func(r schema.Report) any { return r },
	header: []string{"metric", "value"},
	rows: func(r schema.Report, fmtFloat func(float64) string) [][]string {
		return summaryRows(r, fmtFloat, strconv.Itoa)
	},
	table: writeReportTable,
	parquet: func(r schema.Report, path string) error {
		return parquet.WriteFile(parquet.DailyRows(r), path)
	},
}

// renderTable writes a right aligned table with the given header.
func renderTable(w io.Writer, headers []string, data [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// summaryRows lists the scalar card values. fmtInt lets tables group digits
// while CSV keeps plain numbers.
func summaryRows(r schema.Report, fmtFloat func(float64) string, fmtInt func(int) string) [][]string {
	busiest := "-"
	if r.Summary.MaxIndex >= 0 && r.Summary.MaxIndex < len(r.Daily) && r.Summary.Max > 0 {
		busiest = r.Daily[r.Summary.MaxIndex].Date.Format(dayFormat)
	}
	peak := r.PeakPeriod
	if peak == "" {
		peak = "-"
	}
	return [][]string{
		{"window_days", fmtInt(r.WindowDays)},
		{"total", fmtInt(int(r.Summary.Total))},
		{"daily_mean", fmtFloat(r.Summary.Mean)},
		{"busiest_day", busiest},
		{"busiest_count", fmtInt(int(r.Summary.Max))},
		{"current_streak", fmtInt(r.Streak.Current)},
		{"longest_streak", fmtInt(r.Streak.Longest)},
		{"active_days", fmtInt(r.ActiveDays)},
		{"peak_period", peak},
		{"skipped", fmtInt(r.Skipped)},
	}
}

func commaInt(v int) string {
	return humanize.Comma(int64(v))
}

// writeReportTable prints the summary followed by the languages and recent
// activity cards when the feed has them.
func writeReportTable(w io.Writer, r schema.Report, cfg *contract.Config, fmtFloat func(float64) string) error {
	if err := renderTable(w, []string{"Metric", "Value"}, summaryRows(r, fmtFloat, commaInt)); err != nil {
		return err
	}

	if len(r.TopDays) > 0 {
		data := make([][]string, 0, len(r.TopDays))
		for _, d := range r.TopDays {
			data = append(data, []string{d.Date.Format(dayFormat), d.Date.Weekday().String(), commaInt(d.Count)})
		}
		if err := renderTable(w, []string{"Busiest Day", "Weekday", "Count"}, data); err != nil {
			return err
		}
	}

	if len(r.Languages) > 0 {
		data := make([][]string, 0, len(r.Languages))
		for _, l := range r.Languages {
			data = append(data, []string{
				l.Name,
				humanize.Bytes(uint64(max(l.Size, 0))),
				fmt.Sprintf("%.1f%%", l.Percent),
			})
		}
		if err := renderTable(w, []string{"Language", "Size", "Share"}, data); err != nil {
			return err
		}
	}

	if len(r.Recent) > 0 {
		msgWidth := getMaxMessageWidth(cfg)
		data := make([][]string, 0, len(r.Recent))
		for _, item := range r.Recent {
			data = append(data, []string{
				humanize.RelTime(item.Time, r.GeneratedAt, "ago", "from now"),
				string(item.Category),
				item.Repository,
				contract.Truncate(item.Message, msgWidth),
			})
		}
		if err := renderTable(w, []string{"When", "Category", "Repository", "Message"}, data); err != nil {
			return err
		}
	}
	return nil
}

// writeFooter closes every table view with timing and skip information.
func writeFooter(w io.Writer, r schema.Report, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "Report built in %v over %d days (%s)\n", duration, r.WindowDays, r.Timezone); err != nil {
		return err
	}
	if r.Skipped > 0 {
		if _, err := fmt.Fprintf(w, "Skipped %d unparsable %s\n", r.Skipped, pluralize(r.Skipped, "record", "records")); err != nil {
			return err
		}
	}
	return nil
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

package outwriter

import (
	"io"
	"strconv"

	"github.com/huangsam/cardstats/internal/contract"
	"github.com/huangsam/cardstats/internal/parquet"
	"github.com/huangsam/cardstats/schema"
)

var weeklyView = view{
	name:   "weekly buckets",
	data:   func(r schema.Report) any { return r.Weekly },
	header: []string{"week_start", "commits", "pull_requests", "issues", "total"},
	rows: func(r schema.Report, _ func(float64) string) [][]string {
		rows := make([][]string, len(r.Weekly))
		for i, b := range r.Weekly {
			rows[i] = []string{
				b.WeekStart.Format(dayFormat),
				strconv.Itoa(b.Commits),
				strconv.Itoa(b.PullRequests),
				strconv.Itoa(b.Issues),
				strconv.Itoa(b.Total()),
			}
		}
		return rows
	},
	table: writeWeeklyTable,
	parquet: func(r schema.Report, path string) error {
		return parquet.WriteFile(parquet.WeeklyRows(r), path)
	},
}

// writeWeeklyTable prints one row per week and a closing total row.
func writeWeeklyTable(w io.Writer, r schema.Report, _ *contract.Config, _ func(float64) string) error {
	var sum schema.WeekBucket
	data := make([][]string, 0, len(r.Weekly)+1)
	for _, b := range r.Weekly {
		data = append(data, []string{
			b.Label(),
			commaInt(b.Commits),
			commaInt(b.PullRequests),
			commaInt(b.Issues),
			commaInt(b.Total()),
		})
		sum.Commits += b.Commits
		sum.PullRequests += b.PullRequests
		sum.Issues += b.Issues
	}
	data = append(data, []string{
		"Total",
		commaInt(sum.Commits),
		commaInt(sum.PullRequests),
		commaInt(sum.Issues),
		commaInt(sum.Total()),
	})
	return renderTable(w, []string{"Week", "Commits", "PRs", "Issues", "Total"}, data)
}
